package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := 0
	for _, file := range inputs(args) {
		c, fmat, acct, err := readInput(cfg.MainConfig, cc.In, file)
		if err != nil {
			failed++
			theLog.Error("check failed", "file", file, "error", err)
			continue
		}
		theLog.Info("ok", "file", file, "format", fmat, "entries", c.Len(),
			"accounted", acct.Usage(), "quota", acct.Quota())
		fmt.Fprintf(cc.Out, "%s: ok\n", file)
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/neworld-site/go-nbt/export"

	"github.com/scott-cotton/cli"
)

func exportCmd(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		return err
	}
	as := cfg.As
	if as == "" {
		as = "json"
	}
	kind, err := export.ParseKind(as)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, file := range inputs(args) {
		c, _, _, err := readInput(cfg.MainConfig, cc.In, file)
		if err != nil {
			return err
		}
		if err := export.Write(c, cc.Out, kind); err != nil {
			return fmt.Errorf("error exporting %s as %s: %w", file, kind, err)
		}
	}
	return nil
}

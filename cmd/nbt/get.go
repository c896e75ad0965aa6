package main

import (
	"fmt"
	"io"

	"github.com/neworld-site/go-nbt/nbt"
	"github.com/neworld-site/go-nbt/snbt"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a tag path", cli.ErrUsage)
	}
	path := args[0]
	for _, file := range inputs(args[1:]) {
		c, _, _, err := readInput(cfg.MainConfig, cc.In, file)
		if err != nil {
			return err
		}
		t, err := nbt.GetPath(c, path)
		if err != nil {
			return fmt.Errorf("error getting %s from %s: %w", path, file, err)
		}
		if err := snbt.Encode(t, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		io.WriteString(cc.Out, "\n")
	}
	return nil
}

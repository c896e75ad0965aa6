package main

import (
	"fmt"

	"github.com/neworld-site/go-nbt/nbtio"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: convert takes at most one file, use -o for the output", cli.ErrUsage)
	}
	if cfg.OutFormat == nil {
		return fmt.Errorf("%w: convert requires -O", cli.ErrUsage)
	}
	file := inputs(args)[0]
	c, in, _, err := readInput(cfg.MainConfig, cc.In, file)
	if err != nil {
		return err
	}
	if err := nbtio.WriteFormat(c, cc.Out, *cfg.OutFormat); err != nil {
		return fmt.Errorf("error writing %s as %s: %w", file, *cfg.OutFormat, err)
	}
	theLog.Info("converted", "file", file, "from", in, "to", *cfg.OutFormat)
	return nil
}

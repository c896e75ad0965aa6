package main

import (
	"fmt"
	"io"

	"github.com/neworld-site/go-nbt/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 arguments, got %d", cli.ErrUsage, len(args))
	}
	from, _, _, err := readInput(cfg.MainConfig, cc.In, args[0])
	if err != nil {
		return err
	}
	to, _, _, err := readInput(cfg.MainConfig, cc.In, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		from, to = to, from
	}
	var out string
	if cfg.Structural {
		out = libdiff.Format(libdiff.Diff(from, to))
	} else {
		out = libdiff.Text(from, to)
	}
	if out == "" {
		return nil
	}
	io.WriteString(cc.Out, out)
	return cli.ExitCodeErr(1)
}

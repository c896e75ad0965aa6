package main

import (
	"fmt"
	"io"

	"github.com/neworld-site/go-nbt/snbt"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	files := inputs(args)
	for i, file := range files {
		if err := viewFile(cfg, cc, cc.Out, file); err != nil {
			return err
		}
		if i < len(files)-1 {
			io.WriteString(cc.Out, "\n---\n")
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, w io.Writer, file string) error {
	c, _, _, err := readInput(cfg.MainConfig, cc.In, file)
	if err != nil {
		return err
	}
	if err := snbt.Encode(c, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	_, err = io.WriteString(w, "\n")
	return err
}

package main

import (
	"fmt"

	"github.com/neworld-site/go-nbt/debug"
	"github.com/neworld-site/go-nbt/nbt"
	"github.com/neworld-site/go-nbt/nbtio"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: merge requires at least 2 files", cli.ErrUsage)
	}
	base, in, _, err := readInput(cfg.MainConfig, cc.In, args[0])
	if err != nil {
		return err
	}
	overlays := make([]*nbt.Compound, 0, len(args)-1)
	for _, file := range args[1:] {
		c, _, _, err := readInput(cfg.MainConfig, cc.In, file)
		if err != nil {
			return err
		}
		overlays = append(overlays, c)
	}
	res := mergeAll(base, overlays...)
	if err := nbtio.WriteFormat(res, cc.Out, cfg.outFormat(in)); err != nil {
		return fmt.Errorf("error writing merge result: %w", err)
	}
	return nil
}

// mergeAll merges overlays into base in order; later overlays win.
func mergeAll(base *nbt.Compound, overlays ...*nbt.Compound) *nbt.Compound {
	for i, o := range overlays {
		if debug.Merge() {
			debug.Logf("merge overlay %d into %v\n", i+1, base)
		}
		base.Merge(o)
	}
	return base
}

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/neworld-site/go-nbt/budget"
	"github.com/neworld-site/go-nbt/format"
	"github.com/neworld-site/go-nbt/nbt"
	"github.com/neworld-site/go-nbt/nbtio"
	"github.com/neworld-site/go-nbt/snbt"
)

// readInput decodes the root compound in file, or in stdin for "-",
// under a fresh accounter.  The compression is -I or detected.  Files
// named *.snbt are parsed as text and reported as NoneFormat.
func readInput(cfg *MainConfig, stdin io.Reader, file string) (*nbt.Compound, format.Format, *budget.Accounter, error) {
	r := stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, 0, nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	acct := cfg.accounter()
	if strings.HasSuffix(file, ".snbt") {
		d, err := io.ReadAll(r)
		if err != nil {
			return nil, 0, acct, err
		}
		c, err := snbt.ParseCompound(d)
		if err != nil {
			return nil, 0, acct, fmt.Errorf("error parsing %s: %w", file, err)
		}
		return c, format.NoneFormat, acct, nil
	}
	if cfg.InFormat != nil {
		c, err := nbtio.ReadFormat(r, *cfg.InFormat, acct)
		if err != nil {
			return nil, 0, acct, fmt.Errorf("error decoding %s: %w", file, err)
		}
		return c, *cfg.InFormat, acct, nil
	}
	c, fmat, err := nbtio.ReadAuto(r, acct)
	if err != nil {
		return nil, fmat, acct, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return c, fmat, acct, nil
}

// inputs is args, or stdin when args is empty.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

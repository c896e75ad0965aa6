package main

import (
	"fmt"
	"io"
	"os"

	"github.com/neworld-site/go-nbt/budget"
	"github.com/neworld-site/go-nbt/format"
	"github.com/neworld-site/go-nbt/snbt"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Quota  int  `cli:"name=quota desc='decoding memory quota in bytes, 0 for unlimited'"`
	Indent int  `cli:"name=indent desc='indent text output by n spaces per level'"`
	Gops   bool `cli:"name=gops desc='start a gops diagnostics agent'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) accounter() *budget.Accounter {
	if cfg.Quota <= 0 {
		return budget.Unlimited()
	}
	return budget.New(int64(cfg.Quota))
}

// outFormat is the compression for binary output, defaulting to the
// compression of the input.
func (cfg *MainConfig) outFormat(in format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return in
}

func (cfg *MainConfig) encOpts(w io.Writer) []snbt.EncodeOption {
	res := []snbt.EncodeOption{
		snbt.Indent(cfg.Indent),
	}
	if cfg.Color {
		res = append(res, snbt.EncodeColors(snbt.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, snbt.EncodeColors(snbt.NewColors()))
		return res
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	Max  int  `cli:"name=max desc='show at most n elements of each list and array'"`
	Flat bool `cli:"name=flat desc='single line output, ignoring -indent'"`
	View *cli.Command
}

func (cfg *ViewConfig) encOpts(w io.Writer) []snbt.EncodeOption {
	res := cfg.MainConfig.encOpts(w)
	if cfg.Flat {
		res = append(res, snbt.Indent(0))
	} else if cfg.Indent == 0 {
		res = append(res, snbt.Indent(2))
	}
	if cfg.Max > 0 {
		res = append(res, snbt.MaxElems(cfg.Max))
	}
	return res
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Structural bool `cli:"name=s desc='list structural changes instead of a text diff'"`
	Reverse    bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type ExportConfig struct {
	*MainConfig
	As string `cli:"name=as desc='export format: json, yaml or cbor' default=json"`

	Export *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Merge *cli.Command
}

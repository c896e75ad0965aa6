package main

import (
	"fmt"
	"io"

	"github.com/neworld-site/go-nbt/export"
	"github.com/neworld-site/go-nbt/nbt"
	"github.com/neworld-site/go-nbt/snbt"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	src := args[0]
	for _, file := range inputs(args[1:]) {
		c, _, _, err := readInput(cfg.MainConfig, cc.In, file)
		if err != nil {
			return err
		}
		res, err := evalQuery(c, src)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", file, err)
		}
		if err := writeResult(cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

func evalQuery(root *nbt.Compound, src string) (any, error) {
	env := queryEnv(root)
	prg, err := expr.Compile(src, append(exprOpts(root), expr.Env(env))...)
	if err != nil {
		return nil, err
	}
	return expr.Run(prg, env)
}

func queryEnv(root *nbt.Compound) map[string]any {
	env := export.ToAny(root).(map[string]any)
	res := make(map[string]any, len(env)+1)
	for k, v := range env {
		res[k] = v
	}
	res["root"] = env
	return res
}

func exprOpts(root *nbt.Compound) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			t, err := nbt.GetPath(root, params[0].(string))
			if err != nil {
				return nil, err
			}
			return export.ToAny(t), nil
		},
			new(func(string) any)),
		expr.Function("typeof", func(params ...any) (any, error) {
			t, err := nbt.GetPath(root, params[0].(string))
			if err != nil {
				return nil, err
			}
			return t.Type().PrettyName(), nil
		},
			new(func(string) string)),
		expr.Function("snbt", func(params ...any) (any, error) {
			t, err := nbt.GetPath(root, params[0].(string))
			if err != nil {
				return nil, err
			}
			return snbt.String(t), nil
		},
			new(func(string) string)),
	}
}

func writeResult(w io.Writer, res any) error {
	switch x := res.(type) {
	case string:
		_, err := fmt.Fprintln(w, x)
		return err
	case map[string]any, []any:
		return export.WriteJSONValue(x, w)
	default:
		_, err := fmt.Fprintf(w, "%v\n", x)
		return err
	}
}

package export

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/neworld-site/go-nbt/nbt"
)

func WriteYAML(t nbt.Tag, w io.Writer) error {
	enc := yaml.NewEncoder(w, yaml.Indent(2), yaml.IndentSequence(true))
	if err := enc.Encode(toAny(t, anyOpts{})); err != nil {
		return err
	}
	return enc.Close()
}

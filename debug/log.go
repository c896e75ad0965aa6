package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/neworld-site/go-nbt/nbt"
	"github.com/neworld-site/go-nbt/snbt"
)

type SNBT struct{ nbt.Tag }

func (y SNBT) String() string {
	if y.Tag == nil {
		return "<nil>"
	}
	return snbt.String(y.Tag, snbt.MaxElems(16))
}

// Logf writes to stderr, rendering tag arguments in their text form and
// maps and slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case nbt.Tag:
			args[i] = SNBT{x}.String()
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

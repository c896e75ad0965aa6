package export

import (
	"encoding/json"
	"io"

	"github.com/neworld-site/go-nbt/nbt"
)

// WriteJSON writes t as indented JSON.  Non-finite floats are written as
// the strings "NaN", "Infinity" and "-Infinity".
func WriteJSON(t nbt.Tag, w io.Writer) error {
	return WriteJSONValue(toAny(t, anyOpts{finite: true}), w)
}

// WriteJSONValue writes a value produced by ToAny, or part of one, as
// indented JSON.
func WriteJSONValue(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

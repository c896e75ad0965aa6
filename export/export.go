package export

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/neworld-site/go-nbt/nbt"
)

// Kind is an export target.
type Kind int

const (
	JSON Kind = iota
	YAML
	CBOR
)

var ErrBadKind = errors.New("bad export kind")

func ParseKind(v string) (Kind, error) {
	k, ok := map[string]Kind{
		"j":    JSON,
		"json": JSON,
		"y":    YAML,
		"yaml": YAML,
		"c":    CBOR,
		"cbor": CBOR,
	}[v]
	if ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadKind, v)
}

func (k Kind) String() string {
	switch k {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case CBOR:
		return "cbor"
	default:
		return fmt.Sprintf("<err: %d is not an export kind>", int(k))
	}
}

// Write exports t to w as k.
func Write(t nbt.Tag, w io.Writer, k Kind) error {
	switch k {
	case JSON:
		return WriteJSON(t, w)
	case YAML:
		return WriteYAML(t, w)
	case CBOR:
		return WriteCBOR(t, w)
	}
	return fmt.Errorf("%w: %d", ErrBadKind, int(k))
}

type anyOpts struct {
	binaryBytes bool
	finite      bool
}

// ToAny converts t to plain Go values: compounds become
// map[string]any, lists []any, arrays typed slices and numbers their
// sized Go types.  Tag types are lost.
func ToAny(t nbt.Tag) any {
	return toAny(t, anyOpts{})
}

func toAny(t nbt.Tag, o anyOpts) any {
	switch x := t.(type) {
	case nbt.End:
		return nil
	case nbt.Byte:
		return int8(x)
	case nbt.Short:
		return int16(x)
	case nbt.Int:
		return int32(x)
	case nbt.Long:
		return int64(x)
	case nbt.Float:
		return floatValue(float64(shortest(float32(x))), o)
	case nbt.Double:
		return floatValue(float64(x), o)
	case nbt.String:
		return string(x)
	case *nbt.ByteArray:
		if o.binaryBytes {
			return x.Bytes()
		}
		res := make([]int8, x.Len())
		for i, b := range x.Bytes() {
			res[i] = int8(b)
		}
		return res
	case *nbt.IntArray:
		return x.Ints()
	case *nbt.LongArray:
		return x.Longs()
	case *nbt.List:
		res := make([]any, 0, x.Len())
		for _, e := range x.All() {
			res = append(res, toAny(e, o))
		}
		return res
	case *nbt.Compound:
		res := make(map[string]any, x.Len())
		for k, v := range x.All() {
			res[k] = toAny(v, o)
		}
		return res
	}
	panic(fmt.Sprintf("unexpected tag %T", t))
}

// shortest widens f to the float64 with the same shortest decimal form,
// so 0.1f exports as 0.1.
func shortest(f float32) float64 {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return float64(f)
	}
	v, _ := strconv.ParseFloat(strconv.FormatFloat(float64(f), 'g', -1, 32), 64)
	return v
}

func floatValue(f float64, o anyOpts) any {
	if !o.finite {
		return f
	}
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return f
}

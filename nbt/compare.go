package nbt

import (
	"math"
	"slices"
)

// Equal reports whether a and b are structurally equal.  Floats compare
// by bit pattern, so a NaN equals an identical NaN and 0 differs from -0,
// which keeps Equal consistent with Hash.  Compound key order and the
// pools behind ByteOf and friends play no part.
func Equal(a, b Tag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	switch x := a.(type) {
	case Float:
		return math.Float32bits(float32(x)) == math.Float32bits(float32(b.(Float)))
	case Double:
		return math.Float64bits(float64(x)) == math.Float64bits(float64(b.(Double)))
	case End, Byte, Short, Int, Long, String:
		return a == b
	case *ByteArray:
		return slices.Equal(x.vals, b.(*ByteArray).vals)
	case *IntArray:
		return slices.Equal(x.vals, b.(*IntArray).vals)
	case *LongArray:
		return slices.Equal(x.vals, b.(*LongArray).vals)
	case *List:
		y := b.(*List)
		if x == y {
			return true
		}
		return slices.EqualFunc(x.elems, y.elems, Equal)
	case *Compound:
		y := b.(*Compound)
		if x == y {
			return true
		}
		if len(x.tags) != len(y.tags) {
			return false
		}
		for k, xv := range x.tags {
			yv, ok := y.tags[k]
			if !ok || !Equal(xv, yv) {
				return false
			}
		}
		return true
	}
	return false
}

package nbt

import (
	"math"
)

// Numeric is implemented by the six scalar number tags.  Conversions
// narrow or widen like the corresponding Go conversions, except that
// Float and Double are floored and saturated before conversion to an
// integer type.
type Numeric interface {
	Tag
	AsByte() int8
	AsShort() int16
	AsInt() int32
	AsLong() int64
	AsFloat() float32
	AsDouble() float64
}

type (
	Byte   int8
	Short  int16
	Int    int32
	Long   int64
	Float  float32
	Double float64
)

func (Byte) Type() Type   { return ByteType }
func (Short) Type() Type  { return ShortType }
func (Int) Type() Type    { return IntType }
func (Long) Type() Type   { return LongType }
func (Float) Type() Type  { return FloatType }
func (Double) Type() Type { return DoubleType }

func (v Byte) Copy() Tag   { return v }
func (v Short) Copy() Tag  { return v }
func (v Int) Copy() Tag    { return v }
func (v Long) Copy() Tag   { return v }
func (v Float) Copy() Tag  { return v }
func (v Double) Copy() Tag { return v }

func (Byte) tag()   {}
func (Short) tag()  {}
func (Int) tag()    {}
func (Long) tag()   {}
func (Float) tag()  {}
func (Double) tag() {}

func (v Byte) AsByte() int8       { return int8(v) }
func (v Byte) AsShort() int16     { return int16(v) }
func (v Byte) AsInt() int32       { return int32(v) }
func (v Byte) AsLong() int64      { return int64(v) }
func (v Byte) AsFloat() float32   { return float32(v) }
func (v Byte) AsDouble() float64  { return float64(v) }
func (v Short) AsByte() int8      { return int8(v) }
func (v Short) AsShort() int16    { return int16(v) }
func (v Short) AsInt() int32      { return int32(v) }
func (v Short) AsLong() int64     { return int64(v) }
func (v Short) AsFloat() float32  { return float32(v) }
func (v Short) AsDouble() float64 { return float64(v) }
func (v Int) AsByte() int8        { return int8(v) }
func (v Int) AsShort() int16      { return int16(v) }
func (v Int) AsInt() int32        { return int32(v) }
func (v Int) AsLong() int64       { return int64(v) }
func (v Int) AsFloat() float32    { return float32(v) }
func (v Int) AsDouble() float64   { return float64(v) }
func (v Long) AsByte() int8       { return int8(v) }
func (v Long) AsShort() int16     { return int16(v) }
func (v Long) AsInt() int32       { return int32(v) }
func (v Long) AsLong() int64      { return int64(v) }
func (v Long) AsFloat() float32   { return float32(v) }
func (v Long) AsDouble() float64  { return float64(v) }

func (v Float) AsByte() int8       { return int8(floorInt32(float64(v))) }
func (v Float) AsShort() int16     { return int16(floorInt32(float64(v))) }
func (v Float) AsInt() int32       { return floorInt32(float64(v)) }
func (v Float) AsLong() int64      { return floorInt64(float64(v)) }
func (v Float) AsFloat() float32   { return float32(v) }
func (v Float) AsDouble() float64  { return float64(v) }
func (v Double) AsByte() int8      { return int8(floorInt32(float64(v))) }
func (v Double) AsShort() int16    { return int16(floorInt32(float64(v))) }
func (v Double) AsInt() int32      { return floorInt32(float64(v)) }
func (v Double) AsLong() int64     { return floorInt64(float64(v)) }
func (v Double) AsFloat() float32  { return float32(v) }
func (v Double) AsDouble() float64 { return float64(v) }

func floorInt32(f float64) int32 {
	f = math.Floor(f)
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int32(f)
}

func floorInt64(f float64) int64 {
	f = math.Floor(f)
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

// Boxing a scalar into a Tag allocates for most values.  The pools
// below hold pre-boxed tags for the small values which dominate real
// data.  They are never consulted by Equal or Hash.
const (
	poolLow  = -128
	poolHigh = 1024
	poolSize = poolHigh - poolLow + 1
)

var (
	bytePool  [256]Tag
	shortPool [poolSize]Tag
	intPool   [poolSize]Tag
	longPool  [poolSize]Tag

	floatZero  Tag = Float(0)
	doubleZero Tag = Double(0)
)

func init() {
	for i := range bytePool {
		bytePool[i] = Byte(int8(i + math.MinInt8))
	}
	for i := range poolSize {
		shortPool[i] = Short(i + poolLow)
		intPool[i] = Int(i + poolLow)
		longPool[i] = Long(i + poolLow)
	}
}

// ByteOf returns v as a Tag.
func ByteOf(v int8) Tag {
	return bytePool[int(v)-math.MinInt8]
}

// BoolOf returns Byte(1) for true and Byte(0) for false.
func BoolOf(v bool) Tag {
	if v {
		return ByteOf(1)
	}
	return ByteOf(0)
}

func ShortOf(v int16) Tag {
	if v >= poolLow && v <= poolHigh {
		return shortPool[int(v)-poolLow]
	}
	return Short(v)
}

func IntOf(v int32) Tag {
	if v >= poolLow && v <= poolHigh {
		return intPool[int(v)-poolLow]
	}
	return Int(v)
}

func LongOf(v int64) Tag {
	if v >= poolLow && v <= poolHigh {
		return longPool[int(v)-poolLow]
	}
	return Long(v)
}

// FloatOf returns v as a Tag.  Only positive zero is pooled so that the
// sign of negative zero survives.
func FloatOf(v float32) Tag {
	if math.Float32bits(v) == 0 {
		return floatZero
	}
	return Float(v)
}

func DoubleOf(v float64) Tag {
	if math.Float64bits(v) == 0 {
		return doubleZero
	}
	return Double(v)
}

// AsNumeric returns t as a Numeric if its type is in the numeric set.
func AsNumeric(t Tag) (Numeric, bool) {
	if t == nil || !t.Type().IsNumeric() {
		return nil, false
	}
	n, ok := t.(Numeric)
	return n, ok
}

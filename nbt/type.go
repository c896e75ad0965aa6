package nbt

import "fmt"

// Type is the wire id of a tag kind.  The set of types is closed.
type Type uint8

const (
	EndType Type = iota
	ByteType
	ShortType
	IntType
	LongType
	FloatType
	DoubleType
	ByteArrayType
	StringType
	ListType
	CompoundType
	IntArrayType
	LongArrayType
)

// AnyNumericType is not a wire id.  Passed to [Compound.ContainsType] it
// matches any of the numeric types ByteType through DoubleType.
const AnyNumericType Type = 99

// NumTypes is the number of valid wire ids.
const NumTypes = int(LongArrayType) + 1

var typeNames = [NumTypes]struct {
	name, pretty string
}{
	EndType:       {"END", "TAG_End"},
	ByteType:      {"BYTE", "TAG_Byte"},
	ShortType:     {"SHORT", "TAG_Short"},
	IntType:       {"INT", "TAG_Int"},
	LongType:      {"LONG", "TAG_Long"},
	FloatType:     {"FLOAT", "TAG_Float"},
	DoubleType:    {"DOUBLE", "TAG_Double"},
	ByteArrayType: {"BYTE[]", "TAG_Byte_Array"},
	StringType:    {"STRING", "TAG_String"},
	ListType:      {"LIST", "TAG_List"},
	CompoundType:  {"COMPOUND", "TAG_Compound"},
	IntArrayType:  {"INT[]", "TAG_Int_Array"},
	LongArrayType: {"LONG[]", "TAG_Long_Array"},
}

// Valid reports whether t is one of the 13 wire ids.
func (t Type) Valid() bool {
	return int(t) < NumTypes
}

// Name returns the short upper case name of t, e.g. "BYTE[]".
func (t Type) Name() string {
	if !t.Valid() {
		return fmt.Sprintf("INVALID[%d]", t)
	}
	return typeNames[t].name
}

// PrettyName returns the descriptive name of t, e.g. "TAG_Byte_Array".
func (t Type) PrettyName() string {
	if !t.Valid() {
		return fmt.Sprintf("UNKNOWN_%d", t)
	}
	return typeNames[t].pretty
}

func (t Type) String() string {
	return t.Name()
}

// IsValue reports whether tags of type t are immutable leaves which may
// be shared rather than copied.
func (t Type) IsValue() bool {
	switch t {
	case EndType, ByteType, ShortType, IntType, LongType, FloatType, DoubleType, StringType:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether t is in the numeric set ByteType..DoubleType.
func (t Type) IsNumeric() bool {
	return t >= ByteType && t <= DoubleType
}

func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("<err: %d is not a tag type>", uint8(t))
	}
	return []byte(t.Name()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for i := range typeNames {
		if typeNames[i].name == string(d) || typeNames[i].pretty == string(d) {
			*t = Type(i)
			return nil
		}
	}
	return fmt.Errorf("unrecognized tag type %q", d)
}

// Types returns all valid types in id order.
func Types() []Type {
	res := make([]Type, NumTypes)
	for i := range res {
		res[i] = Type(i)
	}
	return res
}

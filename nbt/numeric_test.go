package nbt

import (
	"math"
	"testing"
)

func TestPooledConstructors(t *testing.T) {
	for _, v := range []int32{-129, -128, 0, 1024, 1025, math.MaxInt32} {
		if IntOf(v) != Int(v) {
			t.Errorf("IntOf(%d)", v)
		}
		if LongOf(int64(v)) != Long(v) {
			t.Errorf("LongOf(%d)", v)
		}
	}
	for v := math.MinInt8; v <= math.MaxInt8; v++ {
		if ByteOf(int8(v)) != Byte(v) {
			t.Errorf("ByteOf(%d)", v)
		}
	}
	for _, v := range []int16{math.MinInt16, -128, 5, 1024, math.MaxInt16} {
		if ShortOf(v) != Short(v) {
			t.Errorf("ShortOf(%d)", v)
		}
	}
	if BoolOf(true) != Byte(1) || BoolOf(false) != Byte(0) {
		t.Error("BoolOf")
	}
	if StringOf("") != String("") || StringOf("a") != String("a") {
		t.Error("StringOf")
	}
}

func TestNegativeZeroNotPooled(t *testing.T) {
	negZero := math.Copysign(0, -1)
	d := DoubleOf(negZero).(Double)
	if !math.Signbit(float64(d)) {
		t.Error("DoubleOf lost the sign of -0")
	}
	f := FloatOf(float32(negZero)).(Float)
	if !math.Signbit(float64(f)) {
		t.Error("FloatOf lost the sign of -0")
	}
	if Equal(Double(0), Double(negZero)) {
		t.Error("0 and -0 have different bit patterns")
	}
}

func TestNumericConversions(t *testing.T) {
	tests := []struct {
		name  string
		n     Numeric
		byte_ int8
		short int16
		int_  int32
		long  int64
	}{
		{"byte", Byte(-5), -5, -5, -5, -5},
		{"short narrow", Short(0x1281), -127, 0x1281, 0x1281, 0x1281},
		{"int narrow", Int(70000), 0x70, 4464, 70000, 70000},
		{"long narrow", Long(1<<33 + 1), 1, 1, 1, 1<<33 + 1},
		{"float floors", Float(-1.5), -2, -2, -2, -2},
		{"double floors", Double(2.9), 2, 2, 2, 2},
		{"double saturates", Double(1e20), -1, -1, math.MaxInt32, math.MaxInt64},
		{"nan", Double(math.NaN()), 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.n.AsByte(); got != tt.byte_ {
				t.Errorf("AsByte = %d want %d", got, tt.byte_)
			}
			if got := tt.n.AsShort(); got != tt.short {
				t.Errorf("AsShort = %d want %d", got, tt.short)
			}
			if got := tt.n.AsInt(); got != tt.int_ {
				t.Errorf("AsInt = %d want %d", got, tt.int_)
			}
			if got := tt.n.AsLong(); got != tt.long {
				t.Errorf("AsLong = %d want %d", got, tt.long)
			}
		})
	}
}

func TestScalarCopyIsIdentity(t *testing.T) {
	for _, tag := range []Tag{Byte(1), Short(2), Int(3), Long(4), Float(5), Double(6), String("s"), EndTag} {
		if tag.Copy() != tag {
			t.Errorf("%s copy differs", tag.Type())
		}
	}
}

func TestTypeNames(t *testing.T) {
	if ByteArrayType.Name() != "BYTE[]" || ByteArrayType.PrettyName() != "TAG_Byte_Array" {
		t.Error("byte array names")
	}
	if Type(13).Name() != "INVALID[13]" || Type(200).PrettyName() != "UNKNOWN_200" {
		t.Error("invalid names")
	}
	for _, typ := range Types() {
		want := typ <= DoubleType || typ == StringType
		if typ.IsValue() != want {
			t.Errorf("%s IsValue = %v", typ, typ.IsValue())
		}
		var back Type
		d, _ := typ.MarshalText()
		if err := back.UnmarshalText(d); err != nil || back != typ {
			t.Errorf("text round trip of %s: %v %v", typ, back, err)
		}
	}
}

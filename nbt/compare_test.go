package nbt

import (
	"math"
	"testing"
)

func sample() *Compound {
	c := NewCompound()
	c.PutInt("a", 1)
	l, _ := NewList(Int(1), Int(2))
	c.Put("b", l)
	c.PutByteArray("bytes", []byte{1, 2})
	c.PutString("s", "str")
	sub := NewCompound()
	sub.PutDouble("d", 0.5)
	c.Put("sub", sub)
	return c
}

func TestEqual(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name string
		a, b Tag
		want bool
	}{
		{"same int", Int(1), IntOf(1), true},
		{"int vs long", Int(1), Long(1), false},
		{"nan bits", Double(nan), Double(nan), true},
		{"strings", String("a"), String("b"), false},
		{"arrays", NewIntArray([]int32{1}), NewIntArray([]int32{1}), true},
		{"array content", NewIntArray([]int32{1}), NewIntArray([]int32{2}), false},
		{"empty byte arrays", NewByteArray(nil), NewByteArray([]byte{}), true},
		{"compounds", sample(), sample(), true},
		{"nil", nil, nil, true},
		{"nil vs tag", nil, Int(0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal = %v want %v", got, tt.want)
			}
			if tt.want && tt.a != nil && Hash(tt.a) != Hash(tt.b) {
				t.Errorf("equal tags hash differently")
			}
		})
	}
}

func TestEqualListOrder(t *testing.T) {
	a, _ := NewList(Int(1), Int(2))
	b, _ := NewList(Int(2), Int(1))
	if Equal(a, b) {
		t.Error("list order is significant")
	}
}

func TestHashCompoundOrderIndependent(t *testing.T) {
	a := NewCompound()
	b := NewCompound()
	keys := []string{"x", "y", "z", "w"}
	for i, k := range keys {
		a.PutInt(k, int32(i))
	}
	for i := len(keys) - 1; i >= 0; i-- {
		b.PutInt(keys[i], int32(i))
	}
	if Hash(a) != Hash(b) {
		t.Error("hash depends on insertion order")
	}
	b.PutInt("x", 9)
	if Hash(a) == Hash(b) {
		t.Error("hash ignores values")
	}
}

func TestHashFloatBits(t *testing.T) {
	if Hash(Float(1)) == Hash(Float(math.Float32frombits(math.Float32bits(1)+1))) {
		t.Error("adjacent floats should hash differently")
	}
	if Hash(Float(1)) == Hash(Int(1)) {
		t.Error("type is part of the hash")
	}
}

package nbt

import (
	"errors"
	"testing"
)

func TestListTypeFixedByFirstElement(t *testing.T) {
	l := &List{}
	if l.ElemType() != EndType {
		t.Fatalf("empty list type %s", l.ElemType())
	}
	if err := l.Add(Int(1)); err != nil {
		t.Fatal(err)
	}
	if l.ElemType() != IntType {
		t.Fatalf("got %s want INT", l.ElemType())
	}
	err := l.Add(String("x"))
	var tm *TypeMismatchError
	if !errors.As(err, &tm) {
		t.Fatalf("expected *TypeMismatchError, got %v", err)
	}
	if tm.Want != IntType || tm.Got != StringType {
		t.Errorf("got %+v", tm)
	}
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected ErrTypeMismatch")
	}
	if l.Len() != 1 || l.ElemType() != IntType {
		t.Errorf("list changed by rejected add: len=%d type=%s", l.Len(), l.ElemType())
	}
	if _, err := l.Set(0, Long(1)); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected mismatch on set, got %v", err)
	}
	if v, _ := l.Get(0); v != Int(1) {
		t.Errorf("set mutated list: %v", v)
	}
}

func TestListRejectsEnd(t *testing.T) {
	l := &List{}
	if err := l.Add(EndTag); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected mismatch, got %v", err)
	}
	if l.Len() != 0 || l.ElemType() != EndType {
		t.Errorf("list changed")
	}
}

func TestListRemoveResetsType(t *testing.T) {
	l, err := NewList(String("a"), String("b"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.Remove(0); err != nil {
		t.Fatal(err)
	}
	if l.ElemType() != StringType {
		t.Errorf("type reset too early")
	}
	old, err := l.Remove(0)
	if err != nil {
		t.Fatal(err)
	}
	if old != String("b") {
		t.Errorf("removed %v", old)
	}
	if l.ElemType() != EndType {
		t.Errorf("type not reset: %s", l.ElemType())
	}
	if err := l.Add(Double(1)); err != nil {
		t.Errorf("emptied list should accept any type: %v", err)
	}
}

func TestListIndexErrors(t *testing.T) {
	l, _ := NewList(Int(1))
	for _, f := range []func() error{
		func() error { _, err := l.Get(1); return err },
		func() error { _, err := l.Get(-1); return err },
		func() error { _, err := l.Set(1, Int(2)); return err },
		func() error { return l.Insert(2, Int(2)) },
		func() error { _, err := l.Remove(5); return err },
	} {
		if err := f(); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("expected ErrIndexOutOfRange, got %v", err)
		}
	}
}

func TestListInsertOrder(t *testing.T) {
	l, _ := NewList(Int(1), Int(3))
	if err := l.Insert(1, Int(2)); err != nil {
		t.Fatal(err)
	}
	if err := l.Insert(0, Int(0)); err != nil {
		t.Fatal(err)
	}
	for i := range 4 {
		if got := l.IntAt(i); got != int32(i) {
			t.Errorf("IntAt(%d) = %d", i, got)
		}
	}
}

func TestListCopy(t *testing.T) {
	inner := NewCompound()
	inner.PutInt("x", 1)
	l, _ := NewList(inner)
	cp := l.Copy().(*List)
	if cp == l {
		t.Fatal("copy is the same instance")
	}
	if !Equal(l, cp) {
		t.Fatal("copy not equal")
	}
	if cp.CompoundAt(0) == inner {
		t.Error("container elements must be deep copied")
	}
	cp.CompoundAt(0).PutInt("x", 2)
	if inner.GetInt("x") != 1 {
		t.Error("mutating copy changed original")
	}

	vals, _ := NewList(String("a"))
	vcp := vals.Copy().(*List)
	if vcp.elems[0] != vals.elems[0] {
		t.Error("value elements should be shared")
	}
	if err := vcp.Add(String("b")); err != nil {
		t.Fatal(err)
	}
	if vals.Len() != 1 {
		t.Error("adding to copy changed original")
	}
}

func TestListTypedAccessors(t *testing.T) {
	l, _ := NewList(Short(7))
	if l.ShortAt(0) != 7 {
		t.Errorf("ShortAt")
	}
	if l.IntAt(0) != 0 || l.DoubleAt(0) != 0 || l.FloatAt(0) != 0 || l.StringAt(0) != "" {
		t.Errorf("mismatched accessors should give zero values")
	}
	if l.ShortAt(3) != 0 {
		t.Errorf("out of range should give zero")
	}
	if c := l.CompoundAt(0); c == nil || c.Len() != 0 {
		t.Errorf("CompoundAt should give empty compound")
	}
	if x := l.ListAt(0); x == nil || x.Len() != 0 {
		t.Errorf("ListAt should give empty list")
	}
	if a := l.IntArrayAt(0); a == nil || len(a) != 0 {
		t.Errorf("IntArrayAt should give empty slice")
	}
}

func TestListClear(t *testing.T) {
	l, _ := NewList(Byte(1), Byte(2))
	l.Clear()
	if !l.IsEmpty() || l.ElemType() != EndType {
		t.Errorf("clear: len=%d type=%s", l.Len(), l.ElemType())
	}
}

func TestListOfChecksTypes(t *testing.T) {
	l, err := ListOf([]Tag{Int(1), Int(2)}, IntType)
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 2 || l.ElemType() != IntType {
		t.Errorf("len=%d type=%s", l.Len(), l.ElemType())
	}
	empty, err := ListOf(nil, StringType)
	if err != nil {
		t.Fatal(err)
	}
	if empty.ElemType() != EndType {
		t.Errorf("empty list type %s", empty.ElemType())
	}
	for _, tc := range []struct {
		elems    []Tag
		elemType Type
		got      Type
	}{
		{[]Tag{Int(1), String("x")}, IntType, StringType},
		{[]Tag{String("a")}, IntType, StringType},
		{[]Tag{Int(1)}, EndType, EndType},
		{[]Tag{Int(1), nil}, IntType, EndType},
	} {
		_, err := ListOf(tc.elems, tc.elemType)
		var tm *TypeMismatchError
		if !errors.As(err, &tm) {
			t.Errorf("ListOf(%v, %s): expected *TypeMismatchError, got %v", tc.elems, tc.elemType, err)
			continue
		}
		if tm.Want != tc.elemType || tm.Got != tc.got {
			t.Errorf("ListOf(%v, %s): got %+v", tc.elems, tc.elemType, tm)
		}
	}
}

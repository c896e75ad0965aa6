package nbt

import (
	"iter"
)

// List is an ordered sequence of tags which all have the same type.
//
// The element type is fixed by the first element stored and reset to
// EndType when the list becomes empty.
type List struct {
	elems    []Tag
	elemType Type
}

// NewList returns a list holding elems, in order.
func NewList(elems ...Tag) (*List, error) {
	l := &List{elems: make([]Tag, 0, len(elems))}
	for _, e := range elems {
		if err := l.Add(e); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// ListOf returns a list which takes ownership of elems, all of which
// must have type elemType.
func ListOf(elems []Tag, elemType Type) (*List, error) {
	if len(elems) == 0 {
		return &List{}, nil
	}
	if elemType == EndType {
		return nil, &TypeMismatchError{Want: elemType, Got: EndType}
	}
	for _, e := range elems {
		if e == nil || e.Type() != elemType {
			got := EndType
			if e != nil {
				got = e.Type()
			}
			return nil, &TypeMismatchError{Want: elemType, Got: got}
		}
	}
	return &List{elems: elems, elemType: elemType}, nil
}

func (*List) Type() Type { return ListType }
func (*List) tag()       {}

// ElemType returns the type shared by all elements, or EndType if empty.
func (l *List) ElemType() Type { return l.elemType }

func (l *List) Len() int { return len(l.elems) }

func (l *List) IsEmpty() bool { return len(l.elems) == 0 }

// All iterates over the elements in order.
func (l *List) All() iter.Seq2[int, Tag] {
	return func(yield func(int, Tag) bool) {
		for i, e := range l.elems {
			if !yield(i, e) {
				return
			}
		}
	}
}

// updateType is the single place which enforces list homogeneity.
func (l *List) updateType(t Tag) error {
	if t == nil || t.Type() == EndType {
		return &TypeMismatchError{Want: l.elemType, Got: EndType}
	}
	switch l.elemType {
	case EndType:
		l.elemType = t.Type()
		return nil
	case t.Type():
		return nil
	}
	return &TypeMismatchError{Want: l.elemType, Got: t.Type()}
}

func (l *List) Get(i int) (Tag, error) {
	if err := checkIndex(i, len(l.elems)); err != nil {
		return nil, err
	}
	return l.elems[i], nil
}

// Set replaces the element at i and returns the previous one.
func (l *List) Set(i int, t Tag) (Tag, error) {
	if err := checkIndex(i, len(l.elems)); err != nil {
		return nil, err
	}
	if err := l.updateType(t); err != nil {
		return nil, err
	}
	old := l.elems[i]
	l.elems[i] = t
	return old, nil
}

// Insert inserts t before index i; i == Len() appends.
func (l *List) Insert(i int, t Tag) error {
	if err := checkInsert(i, len(l.elems)); err != nil {
		return err
	}
	if len(l.elems) >= MaxArrayLen {
		return &IndexError{Index: i, Len: len(l.elems)}
	}
	if err := l.updateType(t); err != nil {
		return err
	}
	l.elems = append(l.elems, nil)
	copy(l.elems[i+1:], l.elems[i:])
	l.elems[i] = t
	return nil
}

// Add appends t.
func (l *List) Add(t Tag) error {
	return l.Insert(len(l.elems), t)
}

// Remove deletes and returns the element at i.
func (l *List) Remove(i int) (Tag, error) {
	if err := checkIndex(i, len(l.elems)); err != nil {
		return nil, err
	}
	old := l.elems[i]
	copy(l.elems[i:], l.elems[i+1:])
	l.elems[len(l.elems)-1] = nil
	l.elems = l.elems[:len(l.elems)-1]
	if len(l.elems) == 0 {
		l.elemType = EndType
	}
	return old, nil
}

func (l *List) Clear() {
	l.elems = nil
	l.elemType = EndType
}

// Copy shares the elements of lists of value types and deep copies the
// elements of lists of containers.
func (l *List) Copy() Tag {
	elems := make([]Tag, len(l.elems))
	if l.elemType.IsValue() {
		copy(elems, l.elems)
	} else {
		for i, e := range l.elems {
			elems[i] = e.Copy()
		}
	}
	return &List{elems: elems, elemType: l.elemType}
}

// typed accessors; a missing index or a different element type gives
// the zero value.

func (l *List) at(i int, t Type) Tag {
	if i < 0 || i >= len(l.elems) || l.elems[i].Type() != t {
		return nil
	}
	return l.elems[i]
}

// CompoundAt returns the compound at i, or a new empty compound.
func (l *List) CompoundAt(i int) *Compound {
	if c, ok := l.at(i, CompoundType).(*Compound); ok {
		return c
	}
	return NewCompound()
}

// ListAt returns the list at i, or a new empty list.
func (l *List) ListAt(i int) *List {
	if v, ok := l.at(i, ListType).(*List); ok {
		return v
	}
	return &List{}
}

func (l *List) ShortAt(i int) int16 {
	if v, ok := l.at(i, ShortType).(Short); ok {
		return int16(v)
	}
	return 0
}

func (l *List) IntAt(i int) int32 {
	if v, ok := l.at(i, IntType).(Int); ok {
		return int32(v)
	}
	return 0
}

func (l *List) IntArrayAt(i int) []int32 {
	if v, ok := l.at(i, IntArrayType).(*IntArray); ok {
		return v.vals
	}
	return []int32{}
}

func (l *List) FloatAt(i int) float32 {
	if v, ok := l.at(i, FloatType).(Float); ok {
		return float32(v)
	}
	return 0
}

func (l *List) DoubleAt(i int) float64 {
	if v, ok := l.at(i, DoubleType).(Double); ok {
		return float64(v)
	}
	return 0
}

// StringAt returns the string at i, or "" if there is no string there.
func (l *List) StringAt(i int) string {
	if v, ok := l.at(i, StringType).(String); ok {
		return string(v)
	}
	return ""
}

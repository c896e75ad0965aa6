package nbt

import "math"

// MaxArrayLen is the largest element count an array or list may hold;
// counts are signed 32-bit on the wire.
const MaxArrayLen = math.MaxInt32

// ByteArray is an owned buffer of signed bytes.  On the wire and in
// Bytes() the elements are raw bytes; Get and Set expose them as Byte.
type ByteArray struct {
	vals []byte
}

// IntArray is an owned buffer of 32-bit integers.
type IntArray struct {
	vals []int32
}

// LongArray is an owned buffer of 64-bit integers.
type LongArray struct {
	vals []int64
}

// NewByteArray returns an array owning vals.
func NewByteArray(vals []byte) *ByteArray {
	if vals == nil {
		vals = []byte{}
	}
	return &ByteArray{vals: vals}
}

// NewIntArray returns an array owning vals.
func NewIntArray(vals []int32) *IntArray {
	if vals == nil {
		vals = []int32{}
	}
	return &IntArray{vals: vals}
}

// NewLongArray returns an array owning vals.
func NewLongArray(vals []int64) *LongArray {
	if vals == nil {
		vals = []int64{}
	}
	return &LongArray{vals: vals}
}

func (*ByteArray) Type() Type { return ByteArrayType }
func (*IntArray) Type() Type  { return IntArrayType }
func (*LongArray) Type() Type { return LongArrayType }

func (*ByteArray) tag() {}
func (*IntArray) tag()  {}
func (*LongArray) tag() {}

func (a *ByteArray) Copy() Tag { return &ByteArray{vals: clone(a.vals)} }
func (a *IntArray) Copy() Tag  { return &IntArray{vals: clone(a.vals)} }
func (a *LongArray) Copy() Tag { return &LongArray{vals: clone(a.vals)} }

func (a *ByteArray) Len() int { return len(a.vals) }
func (a *IntArray) Len() int  { return len(a.vals) }
func (a *LongArray) Len() int { return len(a.vals) }

// Bytes returns the backing buffer.  It remains owned by the array.
func (a *ByteArray) Bytes() []byte  { return a.vals }
func (a *IntArray) Ints() []int32   { return a.vals }
func (a *LongArray) Longs() []int64 { return a.vals }

func (a *ByteArray) Clear() { a.vals = []byte{} }
func (a *IntArray) Clear()  { a.vals = []int32{} }
func (a *LongArray) Clear() { a.vals = []int64{} }

func (a *ByteArray) Get(i int) (Byte, error) {
	if err := checkIndex(i, len(a.vals)); err != nil {
		return 0, err
	}
	return Byte(int8(a.vals[i])), nil
}

// Set stores v at i and returns the previous element.
func (a *ByteArray) Set(i int, v Byte) (Byte, error) {
	old, err := a.Get(i)
	if err != nil {
		return 0, err
	}
	a.vals[i] = byte(v)
	return old, nil
}

// Insert inserts v before index i; i == Len() appends.
func (a *ByteArray) Insert(i int, v Byte) error {
	res, err := insertAt(a.vals, i, byte(v))
	if err != nil {
		return err
	}
	a.vals = res
	return nil
}

// Remove deletes and returns the element at i.
func (a *ByteArray) Remove(i int) (Byte, error) {
	old, err := a.Get(i)
	if err != nil {
		return 0, err
	}
	a.vals = removeAt(a.vals, i)
	return old, nil
}

// SetTag stores t at i truncated to a byte.  It returns false, leaving the
// array unchanged, if t is not numeric or i is out of range.
func (a *ByteArray) SetTag(i int, t Tag) bool {
	n, ok := AsNumeric(t)
	if !ok || checkIndex(i, len(a.vals)) != nil {
		return false
	}
	a.vals[i] = byte(n.AsByte())
	return true
}

// AddTag inserts t truncated to a byte before index i.  It returns false
// if t is not numeric or i is out of range.
func (a *ByteArray) AddTag(i int, t Tag) bool {
	n, ok := AsNumeric(t)
	if !ok {
		return false
	}
	return a.Insert(i, Byte(n.AsByte())) == nil
}

func (a *IntArray) Get(i int) (Int, error) {
	if err := checkIndex(i, len(a.vals)); err != nil {
		return 0, err
	}
	return Int(a.vals[i]), nil
}

func (a *IntArray) Set(i int, v Int) (Int, error) {
	old, err := a.Get(i)
	if err != nil {
		return 0, err
	}
	a.vals[i] = int32(v)
	return old, nil
}

func (a *IntArray) Insert(i int, v Int) error {
	res, err := insertAt(a.vals, i, int32(v))
	if err != nil {
		return err
	}
	a.vals = res
	return nil
}

func (a *IntArray) Remove(i int) (Int, error) {
	old, err := a.Get(i)
	if err != nil {
		return 0, err
	}
	a.vals = removeAt(a.vals, i)
	return old, nil
}

func (a *IntArray) SetTag(i int, t Tag) bool {
	n, ok := AsNumeric(t)
	if !ok || checkIndex(i, len(a.vals)) != nil {
		return false
	}
	a.vals[i] = n.AsInt()
	return true
}

func (a *IntArray) AddTag(i int, t Tag) bool {
	n, ok := AsNumeric(t)
	if !ok {
		return false
	}
	return a.Insert(i, Int(n.AsInt())) == nil
}

func (a *LongArray) Get(i int) (Long, error) {
	if err := checkIndex(i, len(a.vals)); err != nil {
		return 0, err
	}
	return Long(a.vals[i]), nil
}

func (a *LongArray) Set(i int, v Long) (Long, error) {
	old, err := a.Get(i)
	if err != nil {
		return 0, err
	}
	a.vals[i] = int64(v)
	return old, nil
}

func (a *LongArray) Insert(i int, v Long) error {
	res, err := insertAt(a.vals, i, int64(v))
	if err != nil {
		return err
	}
	a.vals = res
	return nil
}

func (a *LongArray) Remove(i int) (Long, error) {
	old, err := a.Get(i)
	if err != nil {
		return 0, err
	}
	a.vals = removeAt(a.vals, i)
	return old, nil
}

func (a *LongArray) SetTag(i int, t Tag) bool {
	n, ok := AsNumeric(t)
	if !ok || checkIndex(i, len(a.vals)) != nil {
		return false
	}
	a.vals[i] = n.AsLong()
	return true
}

func (a *LongArray) AddTag(i int, t Tag) bool {
	n, ok := AsNumeric(t)
	if !ok {
		return false
	}
	return a.Insert(i, Long(n.AsLong())) == nil
}

func clone[E any](s []E) []E {
	res := make([]E, len(s))
	copy(res, s)
	return res
}

// insertAt returns a new buffer with v inserted before index i.
func insertAt[E any](s []E, i int, v E) ([]E, error) {
	if err := checkInsert(i, len(s)); err != nil {
		return nil, err
	}
	if len(s) >= MaxArrayLen {
		return nil, &IndexError{Index: i, Len: len(s)}
	}
	res := make([]E, len(s)+1)
	copy(res, s[:i])
	res[i] = v
	copy(res[i+1:], s[i:])
	return res, nil
}

// removeAt returns a new buffer without the element at i, which must be
// in range.
func removeAt[E any](s []E, i int) []E {
	res := make([]E, len(s)-1)
	copy(res, s[:i])
	copy(res[i:], s[i+1:])
	return res
}

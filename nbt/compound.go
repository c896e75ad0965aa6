package nbt

import (
	"encoding/binary"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/google/uuid"
)

// Compound maps unique string keys to tags.  Key order is not
// significant.  A compound owns its values.
type Compound struct {
	tags map[string]Tag
}

func NewCompound() *Compound {
	return &Compound{tags: map[string]Tag{}}
}

func (*Compound) Type() Type { return CompoundType }
func (*Compound) tag()       {}

func (c *Compound) Len() int { return len(c.tags) }

func (c *Compound) IsEmpty() bool { return len(c.tags) == 0 }

// Keys returns the keys in sorted order.
func (c *Compound) Keys() []string {
	return slices.Sorted(maps.Keys(c.tags))
}

// All iterates over the entries in unspecified order.
func (c *Compound) All() iter.Seq2[string, Tag] {
	return maps.All(c.tags)
}

// Sorted iterates over the entries in key order.
func (c *Compound) Sorted() iter.Seq2[string, Tag] {
	return func(yield func(string, Tag) bool) {
		for _, k := range c.Keys() {
			if !yield(k, c.tags[k]) {
				return
			}
		}
	}
}

// Get returns the tag stored under key, or nil.
func (c *Compound) Get(key string) Tag {
	return c.tags[key]
}

// Put stores t under key and returns the previous value, if any.  End and
// nil tags cannot be stored.
func (c *Compound) Put(key string, t Tag) (Tag, error) {
	if t == nil || t.Type() == EndType {
		return nil, fmt.Errorf("%w: cannot store %s under %q", ErrTypeMismatch, EndType, key)
	}
	if c.tags == nil {
		c.tags = map[string]Tag{}
	}
	prev := c.tags[key]
	c.tags[key] = t
	return prev, nil
}

// set stores a tag known not to be End.
func (c *Compound) set(key string, t Tag) {
	if c.tags == nil {
		c.tags = map[string]Tag{}
	}
	c.tags[key] = t
}

// Remove deletes key and returns its previous value, if any.
func (c *Compound) Remove(key string) Tag {
	prev := c.tags[key]
	delete(c.tags, key)
	return prev
}

func (c *Compound) Contains(key string) bool {
	_, ok := c.tags[key]
	return ok
}

// TagType returns the type of the tag under key, or EndType if absent.
func (c *Compound) TagType(key string) Type {
	t, ok := c.tags[key]
	if !ok {
		return EndType
	}
	return t.Type()
}

// ContainsType reports whether key holds a tag of type want.  If want is
// AnyNumericType any numeric tag matches.
func (c *Compound) ContainsType(key string, want Type) bool {
	got := c.TagType(key)
	switch {
	case !c.Contains(key):
		return false
	case got == want:
		return true
	case want != AnyNumericType:
		return false
	}
	return got.IsNumeric()
}

func (c *Compound) PutByte(key string, v int8)      { c.set(key, ByteOf(v)) }
func (c *Compound) PutShort(key string, v int16)    { c.set(key, ShortOf(v)) }
func (c *Compound) PutInt(key string, v int32)      { c.set(key, IntOf(v)) }
func (c *Compound) PutLong(key string, v int64)     { c.set(key, LongOf(v)) }
func (c *Compound) PutFloat(key string, v float32)  { c.set(key, FloatOf(v)) }
func (c *Compound) PutDouble(key string, v float64) { c.set(key, DoubleOf(v)) }
func (c *Compound) PutString(key string, v string)  { c.set(key, StringOf(v)) }
func (c *Compound) PutBool(key string, v bool)      { c.set(key, BoolOf(v)) }

// PutByteArray stores an array owning v.
func (c *Compound) PutByteArray(key string, v []byte)  { c.set(key, NewByteArray(v)) }
func (c *Compound) PutIntArray(key string, v []int32)  { c.set(key, NewIntArray(v)) }
func (c *Compound) PutLongArray(key string, v []int64) { c.set(key, NewLongArray(v)) }

// numeric returns the tag under key if it is numeric.
func (c *Compound) numeric(key string) (Numeric, bool) {
	return AsNumeric(c.tags[key])
}

// GetByte returns the value under key narrowed to int8, or 0 if key is
// absent or not numeric.  The other numeric getters behave the same way.
func (c *Compound) GetByte(key string) int8 {
	if n, ok := c.numeric(key); ok {
		return n.AsByte()
	}
	return 0
}

func (c *Compound) GetShort(key string) int16 {
	if n, ok := c.numeric(key); ok {
		return n.AsShort()
	}
	return 0
}

func (c *Compound) GetInt(key string) int32 {
	if n, ok := c.numeric(key); ok {
		return n.AsInt()
	}
	return 0
}

func (c *Compound) GetLong(key string) int64 {
	if n, ok := c.numeric(key); ok {
		return n.AsLong()
	}
	return 0
}

func (c *Compound) GetFloat(key string) float32 {
	if n, ok := c.numeric(key); ok {
		return n.AsFloat()
	}
	return 0
}

func (c *Compound) GetDouble(key string) float64 {
	if n, ok := c.numeric(key); ok {
		return n.AsDouble()
	}
	return 0
}

func (c *Compound) GetBool(key string) bool {
	return c.GetByte(key) != 0
}

func (c *Compound) GetString(key string) string {
	if s, ok := c.tags[key].(String); ok {
		return string(s)
	}
	return ""
}

// GetByteArray returns the backing buffer of the byte array under key, or
// an empty slice.
func (c *Compound) GetByteArray(key string) []byte {
	if a, ok := c.tags[key].(*ByteArray); ok {
		return a.vals
	}
	return []byte{}
}

func (c *Compound) GetIntArray(key string) []int32 {
	if a, ok := c.tags[key].(*IntArray); ok {
		return a.vals
	}
	return []int32{}
}

func (c *Compound) GetLongArray(key string) []int64 {
	if a, ok := c.tags[key].(*LongArray); ok {
		return a.vals
	}
	return []int64{}
}

// GetCompound returns the compound under key, or a new empty compound
// which is not attached to c.
func (c *Compound) GetCompound(key string) *Compound {
	if v, ok := c.tags[key].(*Compound); ok {
		return v
	}
	return NewCompound()
}

// GetList returns the list under key if it is empty or has elements of
// type elemType.  Otherwise it returns a new empty list not attached to c.
func (c *Compound) GetList(key string, elemType Type) *List {
	if l, ok := c.tags[key].(*List); ok {
		if l.IsEmpty() || l.elemType == elemType {
			return l
		}
	}
	return &List{}
}

// PutUUID stores u as two longs under key+"Most" and key+"Least".
func (c *Compound) PutUUID(key string, u uuid.UUID) {
	c.PutLong(key+"Most", int64(binary.BigEndian.Uint64(u[:8])))
	c.PutLong(key+"Least", int64(binary.BigEndian.Uint64(u[8:])))
}

// GetUUID reassembles a UUID stored by PutUUID.  Missing halves are zero.
func (c *Compound) GetUUID(key string) uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint64(u[:8], uint64(c.GetLong(key+"Most")))
	binary.BigEndian.PutUint64(u[8:], uint64(c.GetLong(key+"Least")))
	return u
}

// HasUUID reports whether both halves of a UUID are stored as numbers.
func (c *Compound) HasUUID(key string) bool {
	return c.ContainsType(key+"Most", AnyNumericType) && c.ContainsType(key+"Least", AnyNumericType)
}

func (c *Compound) RemoveUUID(key string) {
	c.Remove(key + "Most")
	c.Remove(key + "Least")
}

// Copy returns a deep copy of c.
func (c *Compound) Copy() Tag {
	res := &Compound{tags: make(map[string]Tag, len(c.tags))}
	for k, v := range c.tags {
		res.tags[k] = v.Copy()
	}
	return res
}

// Merge merges other into c and returns c.  Entries where both sides
// hold a compound are merged recursively; every other entry of other is
// copied into c, replacing what was there.  c never aliases a container
// of other.
func (c *Compound) Merge(other *Compound) *Compound {
	for k, v := range other.tags {
		if oc, ok := v.(*Compound); ok {
			if mine, ok := c.tags[k].(*Compound); ok {
				mine.Merge(oc)
				continue
			}
		}
		c.set(k, v.Copy())
	}
	return c
}

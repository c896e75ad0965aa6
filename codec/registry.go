package codec

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/neworld-site/go-nbt/budget"
	"github.com/neworld-site/go-nbt/mutf8"
	"github.com/neworld-site/go-nbt/nbt"
)

// MaxDepth is the deepest nesting of compounds and lists accepted.
const MaxDepth = 512

// Fixed charges in bits approximating the in-memory cost of each tag.
// They are part of the format's behavior: data accepted under a quota
// by other implementations must be accepted here as well.
const (
	endBits       = 64
	byteBits      = 72
	shortBits     = 80
	intBits       = 96
	longBits      = 128
	floatBits     = 96
	doubleBits    = 128
	stringBits    = 288
	charBits      = 16
	arrayBits     = 192
	listBits      = 296
	listElemBits  = 32
	compoundBits  = 384
	entryBits     = 224
	duplicateBits = 288
)

// DecodeFunc decodes the payload of one tag.
type DecodeFunc func(r *Reader, depth int, acct *budget.Accounter) (nbt.Tag, error)

// Descriptor describes a tag type and how to decode its payload.
type Descriptor struct {
	id     nbt.Type
	decode DecodeFunc
}

func (d Descriptor) ID() nbt.Type       { return d.id }
func (d Descriptor) Name() string       { return d.id.Name() }
func (d Descriptor) PrettyName() string { return d.id.PrettyName() }
func (d Descriptor) IsValue() bool      { return d.id.IsValue() }
func (d Descriptor) String() string     { return d.id.PrettyName() }

// Decode reads a payload of the described type.
func (d Descriptor) Decode(r *Reader, depth int, acct *budget.Accounter) (nbt.Tag, error) {
	return d.decode(r, depth, acct)
}

// InvalidIDError reports a tag id outside the known set at a place
// where a payload had to be decoded.
type InvalidIDError struct {
	ID nbt.Type
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid tag id: %d", uint8(e.ID))
}

func (e *InvalidIDError) Unwrap() error { return nbt.ErrFormat }

var registry [nbt.NumTypes]DecodeFunc

func init() {
	registry = [nbt.NumTypes]DecodeFunc{
		nbt.EndType:       decodeEnd,
		nbt.ByteType:      decodeByte,
		nbt.ShortType:     decodeShort,
		nbt.IntType:       decodeInt,
		nbt.LongType:      decodeLong,
		nbt.FloatType:     decodeFloat,
		nbt.DoubleType:    decodeDouble,
		nbt.ByteArrayType: decodeByteArray,
		nbt.StringType:    decodeString,
		nbt.ListType:      decodeList,
		nbt.CompoundType:  decodeCompound,
		nbt.IntArrayType:  decodeIntArray,
		nbt.LongArrayType: decodeLongArray,
	}
}

// Resolve returns the descriptor for id.  Resolving an unknown id
// succeeds; decoding with the result fails with an *InvalidIDError.
func Resolve(id nbt.Type) Descriptor {
	if !id.Valid() {
		return Descriptor{id: id, decode: invalid(id)}
	}
	return Descriptor{id: id, decode: registry[id]}
}

func invalid(id nbt.Type) DecodeFunc {
	return func(*Reader, int, *budget.Accounter) (nbt.Tag, error) {
		return nil, &InvalidIDError{ID: id}
	}
}

func decodeEnd(_ *Reader, _ int, acct *budget.Accounter) (nbt.Tag, error) {
	if err := acct.AccountBits(endBits); err != nil {
		return nil, err
	}
	return nbt.EndTag, nil
}

func decodeByte(r *Reader, _ int, acct *budget.Accounter) (nbt.Tag, error) {
	if err := acct.AccountBits(byteBits); err != nil {
		return nil, err
	}
	v, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	return nbt.ByteOf(int8(v)), nil
}

func decodeShort(r *Reader, _ int, acct *budget.Accounter) (nbt.Tag, error) {
	if err := acct.AccountBits(shortBits); err != nil {
		return nil, err
	}
	v, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	return nbt.ShortOf(int16(v)), nil
}

func decodeInt(r *Reader, _ int, acct *budget.Accounter) (nbt.Tag, error) {
	if err := acct.AccountBits(intBits); err != nil {
		return nil, err
	}
	v, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	return nbt.IntOf(v), nil
}

func decodeLong(r *Reader, _ int, acct *budget.Accounter) (nbt.Tag, error) {
	if err := acct.AccountBits(longBits); err != nil {
		return nil, err
	}
	v, err := r.ReadI64()
	if err != nil {
		return nil, err
	}
	return nbt.LongOf(v), nil
}

func decodeFloat(r *Reader, _ int, acct *budget.Accounter) (nbt.Tag, error) {
	if err := acct.AccountBits(floatBits); err != nil {
		return nil, err
	}
	v, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	return nbt.FloatOf(math.Float32frombits(uint32(v))), nil
}

func decodeDouble(r *Reader, _ int, acct *budget.Accounter) (nbt.Tag, error) {
	if err := acct.AccountBits(doubleBits); err != nil {
		return nil, err
	}
	v, err := r.ReadI64()
	if err != nil {
		return nil, err
	}
	return nbt.DoubleOf(math.Float64frombits(uint64(v))), nil
}

func decodeString(r *Reader, _ int, acct *budget.Accounter) (nbt.Tag, error) {
	if err := acct.AccountBits(stringBits); err != nil {
		return nil, err
	}
	s, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	if err := acct.AccountBits(charBits * int64(mutf8.Units(s))); err != nil {
		return nil, err
	}
	return nbt.StringOf(s), nil
}

// readCount reads an i32 element count and charges elemBits for each
// element before anything is allocated.
func readCount(r *Reader, what string, elemBits int64, acct *budget.Accounter) (int, error) {
	n, err := r.ReadI32()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative %s length %d", nbt.ErrFormat, what, n)
	}
	if err := acct.AccountBits(elemBits * int64(n)); err != nil {
		return 0, err
	}
	return int(n), nil
}

func decodeByteArray(r *Reader, _ int, acct *budget.Accounter) (nbt.Tag, error) {
	if err := acct.AccountBits(arrayBits); err != nil {
		return nil, err
	}
	n, err := readCount(r, "byte array", 8, acct)
	if err != nil {
		return nil, err
	}
	b, err := r.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	return nbt.NewByteArray(b), nil
}

func decodeIntArray(r *Reader, _ int, acct *budget.Accounter) (nbt.Tag, error) {
	if err := acct.AccountBits(arrayBits); err != nil {
		return nil, err
	}
	n, err := readCount(r, "int array", 32, acct)
	if err != nil {
		return nil, err
	}
	vals, err := readInts(r, n, 4, func(b []byte) int32 {
		return int32(binary.BigEndian.Uint32(b))
	})
	if err != nil {
		return nil, err
	}
	return nbt.NewIntArray(vals), nil
}

func decodeLongArray(r *Reader, _ int, acct *budget.Accounter) (nbt.Tag, error) {
	if err := acct.AccountBits(arrayBits); err != nil {
		return nil, err
	}
	n, err := readCount(r, "long array", 64, acct)
	if err != nil {
		return nil, err
	}
	vals, err := readInts(r, n, 8, func(b []byte) int64 {
		return int64(binary.BigEndian.Uint64(b))
	})
	if err != nil {
		return nil, err
	}
	return nbt.NewLongArray(vals), nil
}

func checkDepth(depth int) error {
	if depth > MaxDepth {
		return fmt.Errorf("%w: tried to read tag with too high complexity, depth %d > %d",
			nbt.ErrDepthExceeded, depth, MaxDepth)
	}
	return nil
}

func decodeList(r *Reader, depth int, acct *budget.Accounter) (nbt.Tag, error) {
	if err := acct.AccountBits(listBits); err != nil {
		return nil, err
	}
	if err := checkDepth(depth); err != nil {
		return nil, err
	}
	id, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	elemType := nbt.Type(id)
	n, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	if elemType == nbt.EndType && n > 0 {
		return nil, fmt.Errorf("%w: missing type on list", nbt.ErrFormat)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative list length %d", nbt.ErrFormat, n)
	}
	if err := acct.AccountBits(listElemBits * int64(n)); err != nil {
		return nil, err
	}
	desc := Resolve(elemType)
	elems := make([]nbt.Tag, 0, min(int(n), chunkSize/16))
	for range n {
		e, err := desc.Decode(r, depth+1, acct)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	l, err := nbt.ListOf(elems, elemType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", nbt.ErrFormat, err)
	}
	return l, nil
}

func decodeCompound(r *Reader, depth int, acct *budget.Accounter) (nbt.Tag, error) {
	if err := acct.AccountBits(compoundBits); err != nil {
		return nil, err
	}
	if err := checkDepth(depth); err != nil {
		return nil, err
	}
	c := nbt.NewCompound()
	for {
		id, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		if nbt.Type(id) == nbt.EndType {
			return c, nil
		}
		name, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		if err := acct.AccountBits(entryBits + charBits*int64(mutf8.Units(name))); err != nil {
			return nil, err
		}
		v, err := Resolve(nbt.Type(id)).Decode(r, depth+1, acct)
		if err != nil {
			return nil, err
		}
		prev, err := c.Put(name, v)
		if err != nil {
			// only End can be refused, and End never reaches here.
			return nil, fmt.Errorf("%w: %w", nbt.ErrFormat, err)
		}
		if prev != nil {
			if err := acct.AccountBits(duplicateBits); err != nil {
				return nil, err
			}
		}
	}
}

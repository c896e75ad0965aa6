package codec

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/neworld-site/go-nbt/nbt"
)

// WriteNamedTag writes t with its id and name.  End is written as the
// single id byte.
func WriteNamedTag(w *Writer, name string, t nbt.Tag) error {
	if err := w.WriteU8(uint8(t.Type())); err != nil {
		return err
	}
	if t.Type() == nbt.EndType {
		return nil
	}
	if err := w.WriteString(name); err != nil {
		return err
	}
	return writePayload(w, t, 0)
}

// WritePayload writes the payload of t without id or name.
func WritePayload(w *Writer, t nbt.Tag) error {
	return writePayload(w, t, 0)
}

func writePayload(w *Writer, t nbt.Tag, depth int) error {
	switch x := t.(type) {
	case nbt.End:
		return nil
	case nbt.Byte:
		return w.WriteU8(uint8(x))
	case nbt.Short:
		return w.WriteU16(uint16(x))
	case nbt.Int:
		return w.WriteI32(int32(x))
	case nbt.Long:
		return w.WriteI64(int64(x))
	case nbt.Float:
		return w.WriteI32(int32(math.Float32bits(float32(x))))
	case nbt.Double:
		return w.WriteI64(int64(math.Float64bits(float64(x))))
	case nbt.String:
		return w.WriteString(string(x))
	case *nbt.ByteArray:
		if err := w.WriteI32(int32(x.Len())); err != nil {
			return err
		}
		_, err := w.Write(x.Bytes())
		return err
	case *nbt.IntArray:
		if err := w.WriteI32(int32(x.Len())); err != nil {
			return err
		}
		return writeInts(w, x.Ints(), 4, func(b []byte, v int32) []byte {
			return binary.BigEndian.AppendUint32(b, uint32(v))
		})
	case *nbt.LongArray:
		if err := w.WriteI32(int32(x.Len())); err != nil {
			return err
		}
		return writeInts(w, x.Longs(), 8, func(b []byte, v int64) []byte {
			return binary.BigEndian.AppendUint64(b, uint64(v))
		})
	case *nbt.List:
		return writeList(w, x, depth)
	case *nbt.Compound:
		return writeCompound(w, x, depth)
	}
	return fmt.Errorf("%w: cannot encode %T", nbt.ErrFormat, t)
}

func writeList(w *Writer, l *nbt.List, depth int) error {
	if err := checkDepth(depth); err != nil {
		return err
	}
	// the declared type always comes from the first element.
	elemType := nbt.EndType
	if first, err := l.Get(0); err == nil {
		elemType = first.Type()
	}
	if err := w.WriteU8(uint8(elemType)); err != nil {
		return err
	}
	if err := w.WriteI32(int32(l.Len())); err != nil {
		return err
	}
	for i, e := range l.All() {
		if e.Type() != elemType {
			return fmt.Errorf("%w: list element %d", &nbt.TypeMismatchError{Want: elemType, Got: e.Type()}, i)
		}
		if err := writePayload(w, e, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func writeCompound(w *Writer, c *nbt.Compound, depth int) error {
	if err := checkDepth(depth); err != nil {
		return err
	}
	for k, v := range c.Sorted() {
		if err := w.WriteU8(uint8(v.Type())); err != nil {
			return err
		}
		if err := w.WriteString(k); err != nil {
			return err
		}
		if err := writePayload(w, v, depth+1); err != nil {
			return err
		}
	}
	return w.WriteU8(uint8(nbt.EndType))
}

// WriteRoot writes c as an unnamed root compound.  Output goes through
// a bufio.Writer which is flushed before returning.
func WriteRoot(w io.Writer, c *nbt.Compound) error {
	bw := bufio.NewWriter(w)
	if err := WriteNamedTag(NewWriter(bw), "", c); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", nbt.ErrIO, err)
	}
	return nil
}

// Encode writes c as a root compound to w.
func Encode(c *nbt.Compound, w io.Writer) error {
	return WriteRoot(w, c)
}

// Marshal returns the encoding of c as a root compound.
func Marshal(c *nbt.Compound) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := WriteRoot(buf, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MustMarshal is like Marshal but panics on error.
func MustMarshal(c *nbt.Compound) []byte {
	d, err := Marshal(c)
	if err != nil {
		panic(err)
	}
	return d
}

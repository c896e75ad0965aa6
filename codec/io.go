package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/neworld-site/go-nbt/mutf8"
	"github.com/neworld-site/go-nbt/nbt"
)

// chunkSize bounds how much of a length-prefixed payload is allocated
// ahead of the bytes actually arriving, so a forged length on a short
// stream fails at end of input rather than at allocation.
const chunkSize = 64 << 10

// Reader reads big-endian primitives from an underlying stream.  It never
// seeks and reads no further than the primitives requested.
type Reader struct {
	r   io.Reader
	buf [8]byte
	n   int64
}

func NewReader(r io.Reader) *Reader {
	if rr, ok := r.(*Reader); ok {
		return rr
	}
	return &Reader{r: r}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 { return r.n }

func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	r.n += int64(n)
	return n, err
}

func (r *Reader) fill(n int) ([]byte, error) {
	if _, err := io.ReadFull(r, r.buf[:n]); err != nil {
		return nil, ioErr(err)
	}
	return r.buf[:n], nil
}

func ioErr(err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("%w: %w", nbt.ErrIO, err)
}

func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.fill(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.fill(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *Reader) ReadI32() (int32, error) {
	b, err := r.fill(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

func (r *Reader) ReadI64() (int64, error) {
	b, err := r.fill(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

// ReadBytes reads exactly n bytes, growing the result as data arrives.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	res := make([]byte, 0, min(n, chunkSize))
	for len(res) < n {
		k := min(n-len(res), chunkSize)
		start := len(res)
		res = append(res, make([]byte, k)...)
		if _, err := io.ReadFull(r, res[start:]); err != nil {
			return nil, ioErr(err)
		}
	}
	return res, nil
}

// ReadString reads a u16 length followed by that many bytes of modified
// UTF-8.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadU16()
	if err != nil {
		return "", err
	}
	b, err := r.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	s, err := mutf8.Decode(b)
	if err != nil {
		return "", fmt.Errorf("%w: %w", nbt.ErrFormat, err)
	}
	return s, nil
}

// Writer writes big-endian primitives to an underlying stream.
type Writer struct {
	w   io.Writer
	buf []byte
}

func NewWriter(w io.Writer) *Writer {
	if ww, ok := w.(*Writer); ok {
		return ww
	}
	return &Writer{w: w, buf: make([]byte, 0, 64)}
}

func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	if err != nil {
		return n, fmt.Errorf("%w: %w", nbt.ErrIO, err)
	}
	return n, nil
}

func (w *Writer) flush() error {
	_, err := w.Write(w.buf)
	w.buf = w.buf[:0]
	return err
}

func (w *Writer) WriteU8(v uint8) error {
	w.buf = append(w.buf, v)
	return w.flush()
}

func (w *Writer) WriteU16(v uint16) error {
	w.buf = binary.BigEndian.AppendUint16(w.buf, v)
	return w.flush()
}

func (w *Writer) WriteI32(v int32) error {
	w.buf = binary.BigEndian.AppendUint32(w.buf, uint32(v))
	return w.flush()
}

func (w *Writer) WriteI64(v int64) error {
	w.buf = binary.BigEndian.AppendUint64(w.buf, uint64(v))
	return w.flush()
}

// WriteString writes s as a u16 length and modified UTF-8 bytes.
func (w *Writer) WriteString(s string) error {
	w.buf = w.buf[:0]
	w.buf = append(w.buf, 0, 0)
	var err error
	w.buf, err = mutf8.Append(w.buf, s)
	if err != nil {
		w.buf = w.buf[:0]
		return fmt.Errorf("%w: %w", nbt.ErrFormat, err)
	}
	binary.BigEndian.PutUint16(w.buf, uint16(len(w.buf)-2))
	return w.flush()
}

// writeInts writes vals through a bounded buffer using put to encode
// each element.
func writeInts[E int32 | int64](w *Writer, vals []E, size int, put func([]byte, E) []byte) error {
	per := chunkSize / size
	for len(vals) > 0 {
		k := min(len(vals), per)
		for _, v := range vals[:k] {
			w.buf = put(w.buf, v)
		}
		if err := w.flush(); err != nil {
			return err
		}
		vals = vals[k:]
	}
	return nil
}

// readInts reads n fixed width integers in bounded chunks.
func readInts[E int32 | int64](r *Reader, n, size int, get func([]byte) E) ([]E, error) {
	per := chunkSize / size
	res := make([]E, 0, min(n, per))
	buf := make([]byte, min(n, per)*size)
	for len(res) < n {
		k := min(n-len(res), per)
		b := buf[:k*size]
		if _, err := io.ReadFull(r, b); err != nil {
			return nil, ioErr(err)
		}
		for i := 0; i < len(b); i += size {
			res = append(res, get(b[i:]))
		}
	}
	return res, nil
}

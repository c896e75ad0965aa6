package nbtio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/pierrec/lz4/v4"

	"github.com/neworld-site/go-nbt/budget"
	"github.com/neworld-site/go-nbt/codec"
	"github.com/neworld-site/go-nbt/format"
	"github.com/neworld-site/go-nbt/nbt"
)

// ReadCompressed reads a gzip compressed root compound from r without a
// memory quota.  r is not closed.
func ReadCompressed(r io.Reader) (*nbt.Compound, error) {
	return ReadFormat(r, format.GZIPFormat, nil)
}

// WriteCompressed writes c to w gzip compressed.  w is not closed.
func WriteCompressed(c *nbt.Compound, w io.Writer) error {
	return WriteFormat(c, w, format.GZIPFormat)
}

// Read reads an uncompressed root compound from r, charging acct.  A
// nil acct is unlimited.
func Read(r io.Reader, acct *budget.Accounter) (*nbt.Compound, error) {
	return codec.ReadRoot(r, acct)
}

// Write writes c to w uncompressed.
func Write(c *nbt.Compound, w io.Writer) error {
	return codec.WriteRoot(w, c)
}

// ReadFormat reads a root compound from r decompressing it with f.
// Bytes following the root in the decompressed stream are ignored.
func ReadFormat(r io.Reader, f format.Format, acct *budget.Accounter) (*nbt.Compound, error) {
	rc, err := NewReader(r, f)
	if err != nil {
		return nil, err
	}
	c, err := codec.ReadRoot(rc, acct)
	if cerr := rc.Close(); err == nil && cerr != nil {
		return nil, fmt.Errorf("%w: %s: %w", nbt.ErrIO, f, cerr)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// WriteFormat writes c to w compressed with f.  The compressor is
// flushed and closed; w is not.
func WriteFormat(c *nbt.Compound, w io.Writer, f format.Format) error {
	wc, err := NewWriter(w, f)
	if err != nil {
		return err
	}
	err = codec.WriteRoot(wc, c)
	if cerr := wc.Close(); err == nil && cerr != nil {
		return fmt.Errorf("%w: %s: %w", nbt.ErrIO, f, cerr)
	}
	return err
}

// NewReader returns a reader decompressing r with f.  Closing it
// releases the decompressor but never closes r.
func NewReader(r io.Reader, f format.Format) (io.ReadCloser, error) {
	switch f {
	case format.GZIPFormat:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: gzip: %w", nbt.ErrIO, eof(err))
		}
		return zr, nil
	case format.ZlibFormat:
		zr, err := zlib.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: zlib: %w", nbt.ErrIO, eof(err))
		}
		return zr, nil
	case format.LZ4Format:
		return io.NopCloser(lz4.NewReader(r)), nil
	case format.NoneFormat:
		return io.NopCloser(r), nil
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, int(f))
	}
}

// NewWriter returns a writer compressing into w with f.  It must be
// closed to flush the compressed stream; closing it does not close w.
func NewWriter(w io.Writer, f format.Format) (io.WriteCloser, error) {
	switch f {
	case format.GZIPFormat:
		return gzip.NewWriter(w), nil
	case format.ZlibFormat:
		return zlib.NewWriter(w), nil
	case format.LZ4Format:
		return lz4.NewWriter(w), nil
	case format.NoneFormat:
		return nopWriteCloser{w}, nil
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, int(f))
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func eof(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// Detect peeks at the head of br and reports its compression format.
func Detect(br *bufio.Reader) (format.Format, error) {
	head, err := br.Peek(format.MagicLen)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("%w: %w", nbt.ErrIO, err)
	}
	return format.Detect(head), nil
}

// ReadAuto reads a root compound from r, detecting its compression.
func ReadAuto(r io.Reader, acct *budget.Accounter) (*nbt.Compound, format.Format, error) {
	br := bufio.NewReader(r)
	f, err := Detect(br)
	if err != nil {
		return nil, 0, err
	}
	c, err := ReadFormat(br, f, acct)
	if err != nil {
		return nil, f, err
	}
	return c, f, nil
}

// ReadFile reads the root compound stored in path, detecting its
// compression.
func ReadFile(path string, acct *budget.Accounter) (*nbt.Compound, format.Format, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", nbt.ErrIO, err)
	}
	defer fd.Close()
	return ReadAuto(fd, acct)
}

// WriteFile writes c to path compressed with f, replacing the file.
func WriteFile(path string, c *nbt.Compound, f format.Format) (err error) {
	fd, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: %w", nbt.ErrIO, err)
	}
	defer func() {
		if cerr := fd.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("%w: %w", nbt.ErrIO, cerr)
		}
	}()
	bw := bufio.NewWriter(fd)
	if err := WriteFormat(c, bw, f); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", nbt.ErrIO, err)
	}
	return nil
}

package nbtio

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/neworld-site/go-nbt/budget"
	"github.com/neworld-site/go-nbt/format"
	"github.com/neworld-site/go-nbt/nbt"
	"github.com/neworld-site/go-nbt/snbt"
)

func sample() *nbt.Compound {
	c := nbt.NewCompound()
	c.PutString("name", "Bananrama")
	c.PutInt("level", 7)
	c.PutByteArray("blob", bytes.Repeat([]byte{1, 2, 3}, 1000))
	pos, _ := nbt.NewList(nbt.Double(1.5), nbt.Double(64), nbt.Double(-3))
	c.Put("Pos", pos)
	return c
}

type closeTracker struct {
	bytes.Buffer
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestRoundTripFormats(t *testing.T) {
	for _, f := range format.AllFormats() {
		t.Run(f.String(), func(t *testing.T) {
			buf := &closeTracker{}
			if err := WriteFormat(sample(), buf, f); err != nil {
				t.Fatal(err)
			}
			if buf.closed {
				t.Error("caller's writer was closed")
			}
			if got := format.Detect(buf.Bytes()); got != f {
				t.Errorf("detected %s", got)
			}
			c, err := ReadFormat(buf, f, budget.New(1<<20))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(snbt.String(sample()), snbt.String(c)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			if buf.closed {
				t.Error("caller's reader was closed")
			}
		})
	}
}

func TestCompressed(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WriteCompressed(sample(), buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte{0x1f, 0x8b}) {
		t.Fatalf("not gzip: % x", buf.Bytes()[:4])
	}
	c, err := ReadCompressed(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if !nbt.Equal(sample(), c) {
		t.Error("round trip not equal")
	}

	for _, n := range []int{0, 5, buf.Len() / 2} {
		_, err := ReadCompressed(bytes.NewReader(buf.Bytes()[:n]))
		if !errors.Is(err, nbt.ErrIO) {
			t.Errorf("truncated at %d: expected ErrIO, got %v", n, err)
		}
	}
}

func TestRaw(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Write(sample(), buf); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(bytes.NewReader(buf.Bytes()), budget.New(64)); !errors.Is(err, budget.ErrExceeded) {
		t.Errorf("expected ErrExceeded, got %v", err)
	}
	c, err := Read(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatal(err)
	}
	if c.GetString("name") != "Bananrama" {
		t.Errorf("name %q", c.GetString("name"))
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	for _, f := range format.AllFormats() {
		path := filepath.Join(dir, "level.dat"+f.Suffix())
		if err := WriteFile(path, sample(), f); err != nil {
			t.Fatal(err)
		}
		c, got, err := ReadFile(path, nil)
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if got != f {
			t.Errorf("detected %s want %s", got, f)
		}
		if !nbt.Equal(sample(), c) {
			t.Errorf("%s: round trip not equal", f)
		}
	}
	if _, _, err := ReadFile(filepath.Join(dir, "missing"), nil); !errors.Is(err, nbt.ErrIO) {
		t.Errorf("expected ErrIO, got %v", err)
	}
}

func TestBadFormat(t *testing.T) {
	if err := WriteFormat(sample(), &bytes.Buffer{}, format.Format(0)); !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
	if _, err := ReadFormat(&bytes.Buffer{}, format.Format(7), nil); !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

package format

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"gzip":    GZIPFormat,
		"gz":      GZIPFormat,
		"deflate": ZlibFormat,
		"zlib":    ZlibFormat,
		"raw":     NoneFormat,
		"lz4":     LZ4Format,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		if err != nil {
			t.Errorf("%s: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%s: got %s want %s", in, got, want)
		}
	}
	if _, err := ParseFormat("bz2"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestIDs(t *testing.T) {
	got := []int{}
	for _, f := range AllFormats() {
		got = append(got, f.ID())
		back, err := FromID(f.ID())
		if err != nil || back != f {
			t.Errorf("FromID(%d) = %s, %v", f.ID(), back, err)
		}
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := FromID(0); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestText(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("got %s want %s", g, f)
		}
	}
	if Format(9).String() != "<err: 9 is not a format>" {
		t.Errorf("got %q", Format(9).String())
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		head []byte
		want Format
	}{
		{[]byte{0x1f, 0x8b, 8, 0}, GZIPFormat},
		{[]byte{0x78, 0x9c}, ZlibFormat},
		{[]byte{0x78, 0x01}, ZlibFormat},
		{[]byte{0x04, 0x22, 0x4d, 0x18}, LZ4Format},
		{[]byte{0x0a, 0x00, 0x00}, NoneFormat},
		{nil, NoneFormat},
	}
	for _, tt := range tests {
		if got := Detect(tt.head); got != tt.want {
			t.Errorf("Detect(% x) = %s want %s", tt.head, got, tt.want)
		}
	}
}

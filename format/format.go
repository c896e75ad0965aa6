package format

import (
	"bytes"
	"errors"
	"fmt"
)

// Format is the compression wrapped around an encoded root compound.
// The numeric values are the ids used by region and network framing.
type Format int

const (
	GZIPFormat Format = 1 + iota
	ZlibFormat
	NoneFormat
	LZ4Format
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"g":       GZIPFormat,
		"gz":      GZIPFormat,
		"gzip":    GZIPFormat,
		"z":       ZlibFormat,
		"zlib":    ZlibFormat,
		"deflate": ZlibFormat,
		"n":       NoneFormat,
		"none":    NoneFormat,
		"raw":     NoneFormat,
		"l":       LZ4Format,
		"lz4":     LZ4Format,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromID returns the format with the numeric id.
func FromID(id int) (Format, error) {
	f := Format(id)
	if !f.Valid() {
		return 0, fmt.Errorf("%w: unknown compression id %d", ErrBadFormat, id)
	}
	return f, nil
}

func (f Format) Valid() bool { return f >= GZIPFormat && f <= LZ4Format }

func (f Format) ID() int { return int(f) }

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case GZIPFormat:
		return []byte("gzip"), nil
	case ZlibFormat:
		return []byte("zlib"), nil
	case NoneFormat:
		return []byte("none"), nil
	case LZ4Format:
		return []byte("lz4"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsGZIP() bool { return f == GZIPFormat }
func (f Format) IsZlib() bool { return f == ZlibFormat }
func (f Format) IsNone() bool { return f == NoneFormat }
func (f Format) IsLZ4() bool  { return f == LZ4Format }

// Suffix returns the file extension appended for this format (including
// the dot), or "" for uncompressed data.
func (f Format) Suffix() string {
	switch f {
	case GZIPFormat:
		return ".gz"
	case ZlibFormat:
		return ".zz"
	case LZ4Format:
		return ".lz4"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in id order.
func AllFormats() []Format {
	return []Format{GZIPFormat, ZlibFormat, NoneFormat, LZ4Format}
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// MagicLen is the number of leading bytes Detect looks at.
const MagicLen = 4

// Detect guesses the format of a stream from its first bytes.  Anything
// unrecognised is NoneFormat.
func Detect(head []byte) Format {
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		return GZIPFormat
	case bytes.HasPrefix(head, lz4Magic):
		return LZ4Format
	case len(head) >= 2 && head[0]&0x0f == 8 && (uint16(head[0])<<8|uint16(head[1]))%31 == 0:
		return ZlibFormat
	default:
		return NoneFormat
	}
}

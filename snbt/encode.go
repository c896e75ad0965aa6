package snbt

import (
	"bytes"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/neworld-site/go-nbt/nbt"
)

// EncState holds the state of one encoding.
type EncState struct {
	sorted   bool
	indent   int
	maxElems int
	Color    func(nbt.Type, ColorAttr, string) string

	buf   *bytes.Buffer
	level int
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{sorted: true, buf: bytes.NewBuffer(nil)}
	for _, opt := range opts {
		opt(es)
	}
	if es.Color == nil {
		es.Color = func(_ nbt.Type, _ ColorAttr, s string) string { return s }
	}
	return es
}

// Encode writes the textual form of t to w.
func Encode(t nbt.Tag, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	es.tag(t)
	_, err := w.Write(es.buf.Bytes())
	return err
}

// String returns the textual form of t.
func String(t nbt.Tag, opts ...EncodeOption) string {
	es := newEncState(opts)
	es.tag(t)
	return es.buf.String()
}

func (es *EncState) write(t nbt.Type, a ColorAttr, s string) {
	es.buf.WriteString(es.Color(t, a, s))
}

func (es *EncState) newline() {
	if es.indent <= 0 {
		return
	}
	es.buf.WriteByte('\n')
	es.buf.WriteString(strings.Repeat(" ", es.indent*es.level))
}

func (es *EncState) tag(t nbt.Tag) {
	switch x := t.(type) {
	case nil:
		es.write(nbt.EndType, ValueColor, "null")
	case nbt.End:
		es.write(nbt.EndType, ValueColor, "END")
	case nbt.Byte:
		es.number(t.Type(), strconv.FormatInt(int64(x), 10), "b")
	case nbt.Short:
		es.number(t.Type(), strconv.FormatInt(int64(x), 10), "s")
	case nbt.Int:
		es.number(t.Type(), strconv.FormatInt(int64(x), 10), "")
	case nbt.Long:
		es.number(t.Type(), strconv.FormatInt(int64(x), 10), "L")
	case nbt.Float:
		es.number(t.Type(), FormatFloat(float64(x), 32), "f")
	case nbt.Double:
		es.number(t.Type(), FormatFloat(float64(x), 64), "d")
	case nbt.String:
		es.write(nbt.StringType, ValueColor, Quote(string(x)))
	case *nbt.ByteArray:
		vals := make([]string, x.Len())
		for i, b := range x.Bytes() {
			vals[i] = strconv.Itoa(int(int8(b))) + "B"
		}
		es.array(t.Type(), "B", vals)
	case *nbt.IntArray:
		vals := make([]string, x.Len())
		for i, v := range x.Ints() {
			vals[i] = strconv.FormatInt(int64(v), 10)
		}
		es.array(t.Type(), "I", vals)
	case *nbt.LongArray:
		vals := make([]string, x.Len())
		for i, v := range x.Longs() {
			vals[i] = strconv.FormatInt(v, 10) + "L"
		}
		es.array(t.Type(), "L", vals)
	case *nbt.List:
		es.list(x)
	case *nbt.Compound:
		es.compound(x)
	}
}

func (es *EncState) number(t nbt.Type, digits, suffix string) {
	es.write(t, ValueColor, digits)
	if suffix != "" {
		es.write(t, SuffixColor, suffix)
	}
}

func (es *EncState) array(t nbt.Type, prefix string, vals []string) {
	es.write(t, SepColor, "[")
	es.write(t, SuffixColor, prefix)
	es.write(t, SepColor, ";")
	for i, v := range vals {
		if es.maxElems > 0 && i == es.maxElems {
			es.write(t, SepColor, ",")
			es.buf.WriteString("...")
			break
		}
		if i != 0 {
			es.write(t, SepColor, ",")
		}
		es.write(t, ValueColor, v)
	}
	es.write(t, SepColor, "]")
}

func (es *EncState) list(l *nbt.List) {
	es.write(nbt.ListType, SepColor, "[")
	es.level++
	for i, e := range l.All() {
		if i != 0 {
			es.write(nbt.ListType, SepColor, ",")
		}
		es.newline()
		if es.maxElems > 0 && i == es.maxElems {
			es.buf.WriteString("...")
			break
		}
		es.tag(e)
	}
	es.level--
	if l.Len() > 0 {
		es.newline()
	}
	es.write(nbt.ListType, SepColor, "]")
}

func (es *EncState) compound(c *nbt.Compound) {
	es.write(nbt.CompoundType, SepColor, "{")
	es.level++
	entries := c.All()
	if es.sorted {
		entries = c.Sorted()
	}
	i := 0
	for k, v := range entries {
		if i != 0 {
			es.write(nbt.CompoundType, SepColor, ",")
		}
		i++
		es.newline()
		es.write(nbt.CompoundType, KeyColor, Key(k))
		es.write(nbt.CompoundType, SepColor, ":")
		if es.indent > 0 {
			es.buf.WriteByte(' ')
		}
		es.tag(v)
	}
	es.level--
	if i > 0 {
		es.newline()
	}
	es.write(nbt.CompoundType, SepColor, "}")
}

// Key returns k bare if it is a simple identifier and quoted otherwise.
func Key(k string) string {
	if nbt.IsSimpleKey(k) {
		return k
	}
	return Quote(k)
}

// Quote quotes s with whichever of " or ' does not occur first in s,
// escaping backslashes and the chosen quote.
func Quote(s string) string {
	var quote byte
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			quote = '\''
			break
		}
		if s[i] == '\'' {
			quote = '"'
			break
		}
	}
	if quote == 0 {
		quote = '"'
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(quote)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' || c == quote {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte(quote)
	return b.String()
}

// FormatFloat formats f so that it always reads as a floating point
// number: integral values keep a trailing ".0".
func FormatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	s := strconv.FormatFloat(f, 'g', -1, bitSize)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

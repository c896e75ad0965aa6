package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/neworld-site/go-nbt/budget"
	"github.com/neworld-site/go-nbt/nbt"
)

// raw builds wire bytes by hand.
type raw struct{ bytes.Buffer }

func (r *raw) id(t nbt.Type) *raw { r.WriteByte(byte(t)); return r }
func (r *raw) name(s string) *raw {
	binary.Write(&r.Buffer, binary.BigEndian, uint16(len(s)))
	r.WriteString(s)
	return r
}
func (r *raw) i32(v int32) *raw { binary.Write(&r.Buffer, binary.BigEndian, v); return r }
func (r *raw) end() *raw        { return r.id(nbt.EndType) }

func rootStart() *raw {
	r := &raw{}
	return r.id(nbt.CompoundType).name("")
}

func sampleTree(t *testing.T) *nbt.Compound {
	t.Helper()
	c := nbt.NewCompound()
	c.PutByte("byte", -7)
	c.PutShort("short", 300)
	c.PutInt("int", math.MinInt32)
	c.PutLong("long", math.MaxInt64)
	c.PutFloat("float", 1.25)
	c.PutDouble("double", -0.5)
	c.PutString("string", "héllo\x00 😀")
	c.PutString("empty", "")
	c.PutByteArray("bytes", []byte{0, 1, 0xFF})
	c.PutIntArray("ints", []int32{1, -1, math.MaxInt32})
	c.PutLongArray("longs", []int64{math.MinInt64, 0})
	c.PutBool("flag", true)

	l, err := nbt.NewList(nbt.Int(3), nbt.Int(1), nbt.Int(2))
	if err != nil {
		t.Fatal(err)
	}
	c.Put("list", l)

	inner := nbt.NewCompound()
	inner.PutString("x", "y")
	nested, err := nbt.NewList(inner, nbt.NewCompound())
	if err != nil {
		t.Fatal(err)
	}
	c.Put("compounds", nested)

	lists, _ := nbt.NewList(&nbt.List{}, l.Copy())
	c.Put("lists", lists)
	c.Put("emptyList", &nbt.List{})

	sub := nbt.NewCompound()
	sub.Put("deeper", nbt.NewCompound())
	c.Put("sub", sub)
	return c
}

func TestRoundTrip(t *testing.T) {
	c := sampleTree(t)
	d, err := Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Unmarshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if !nbt.Equal(c, got) {
		t.Fatalf("round trip not equal")
	}
	if diff := cmp.Diff(c.Keys(), got.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int32{3, 1, 2}, []int32{
		got.GetList("list", nbt.IntType).IntAt(0),
		got.GetList("list", nbt.IntType).IntAt(1),
		got.GetList("list", nbt.IntType).IntAt(2),
	}); diff != "" {
		t.Errorf("list order (-want +got):\n%s", diff)
	}
	again, err := Marshal(got)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(d, again) {
		t.Error("encoding is not deterministic")
	}
}

type countWriter struct {
	bytes.Buffer
	calls int
}

func (w *countWriter) Write(p []byte) (int, error) {
	w.calls++
	return w.Buffer.Write(p)
}

func TestWriteRootBuffered(t *testing.T) {
	c := sampleTree(t)
	w := &countWriter{}
	if err := WriteRoot(w, c); err != nil {
		t.Fatal(err)
	}
	if w.calls != 1 {
		t.Errorf("%d writes to the sink", w.calls)
	}
	if diff := cmp.Diff(MustMarshal(c), w.Bytes()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestScenarioIntAndList(t *testing.T) {
	c := nbt.NewCompound()
	c.Put("a", nbt.Int(1))
	l, _ := nbt.NewList(nbt.Int(1), nbt.Int(2))
	c.Put("b", l)
	got, err := Unmarshal(MustMarshal(c))
	if err != nil {
		t.Fatal(err)
	}
	if got.Get("a") != nbt.Int(1) {
		t.Errorf("a = %v", got.Get("a"))
	}
	if got.Get("b").(*nbt.List).Len() != 2 {
		t.Errorf("b size = %d", got.Get("b").(*nbt.List).Len())
	}
}

func TestEncodeLayout(t *testing.T) {
	c := nbt.NewCompound()
	c.PutShort("s", 1)
	want := rootStart().id(nbt.ShortType).name("s")
	want.Write([]byte{0, 1})
	want.end()
	if diff := cmp.Diff(want.Bytes(), MustMarshal(c)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestListOfEncodes(t *testing.T) {
	l, err := nbt.ListOf([]nbt.Tag{nbt.Long(7), nbt.Long(8)}, nbt.LongType)
	if err != nil {
		t.Fatal(err)
	}
	c := nbt.NewCompound()
	c.Put("l", l)
	got, err := Unmarshal(MustMarshal(c))
	if err != nil {
		t.Fatal(err)
	}
	if !nbt.Equal(c, got) {
		t.Errorf("round trip not equal")
	}
	if _, err := nbt.ListOf([]nbt.Tag{nbt.Int(1), nbt.String("x")}, nbt.IntType); !errors.Is(err, nbt.ErrTypeMismatch) {
		t.Errorf("mixed list: expected ErrTypeMismatch, got %v", err)
	}
}

func TestListTypeRecomputedOnEncode(t *testing.T) {
	l, _ := nbt.NewList(nbt.String("a"))
	l.Remove(0)
	l.Add(nbt.Long(5))
	c := nbt.NewCompound()
	c.Put("l", l)
	d := MustMarshal(c)
	// root id, root name, entry id, entry name, then the element id.
	off := 1 + 2 + 1 + 2 + 1
	if d[off] != byte(nbt.LongType) {
		t.Errorf("element id %d", d[off])
	}

	c.Put("l", &nbt.List{})
	d = MustMarshal(c)
	if d[off] != byte(nbt.EndType) || !bytes.Equal(d[off+1:off+5], []byte{0, 0, 0, 0}) {
		t.Errorf("empty list header % x", d[off:off+5])
	}
}

func nestedCompounds(n int) []byte {
	r := rootStart()
	for range n {
		r.id(nbt.CompoundType).name("a")
	}
	for range n + 1 {
		r.end()
	}
	return r.Bytes()
}

func nestedLists(n int) []byte {
	r := rootStart().id(nbt.ListType).name("l")
	for range n - 1 {
		r.id(nbt.ListType).i32(1)
	}
	r.id(nbt.EndType).i32(0)
	r.end()
	return r.Bytes()
}

func TestDepthLimit(t *testing.T) {
	if _, err := Unmarshal(nestedCompounds(511)); err != nil {
		t.Errorf("511 levels: %v", err)
	}
	if _, err := Unmarshal(nestedCompounds(512)); err != nil {
		t.Errorf("512 levels: %v", err)
	}
	if _, err := Unmarshal(nestedCompounds(513)); !errors.Is(err, nbt.ErrDepthExceeded) {
		t.Errorf("513 levels: expected ErrDepthExceeded, got %v", err)
	}
	if _, err := Unmarshal(nestedLists(512)); err != nil {
		t.Errorf("512 nested lists: %v", err)
	}
	if _, err := Unmarshal(nestedLists(513)); !errors.Is(err, nbt.ErrDepthExceeded) {
		t.Errorf("513 nested lists: expected ErrDepthExceeded, got %v", err)
	}
}

func TestEncodeDepthLimit(t *testing.T) {
	root := nbt.NewCompound()
	cur := root
	for range 513 {
		next := nbt.NewCompound()
		cur.Put("a", next)
		cur = next
	}
	if _, err := Marshal(root); !errors.Is(err, nbt.ErrDepthExceeded) {
		t.Errorf("expected ErrDepthExceeded, got %v", err)
	}
}

func TestBudgetArrayNotAllocated(t *testing.T) {
	for _, typ := range []nbt.Type{nbt.ByteArrayType, nbt.IntArrayType, nbt.LongArrayType} {
		t.Run(typ.Name(), func(t *testing.T) {
			d := rootStart().id(typ).name("a").i32(1 << 30).Bytes()
			_, err := Unmarshal(d, WithQuota(1<<20))
			if !errors.Is(err, budget.ErrExceeded) {
				t.Fatalf("expected ErrExceeded, got %v", err)
			}
			// without a quota the short stream fails at its end.
			_, err = Unmarshal(d)
			if !errors.Is(err, nbt.ErrIO) {
				t.Fatalf("expected ErrIO, got %v", err)
			}
		})
	}
}

func TestBudgetListCount(t *testing.T) {
	d := rootStart().id(nbt.ListType).name("l").id(nbt.CompoundType).i32(math.MaxInt32).Bytes()
	if _, err := Unmarshal(d, WithQuota(1<<20)); !errors.Is(err, budget.ErrExceeded) {
		t.Fatalf("expected ErrExceeded, got %v", err)
	}
}

func TestBudgetEmptyContainerBomb(t *testing.T) {
	// many empty lists cost nothing on the wire beyond their headers but
	// are charged their in-memory overhead.
	const n = 10000
	r := rootStart().id(nbt.ListType).name("l").id(nbt.ListType).i32(n)
	for range n {
		r.id(nbt.EndType).i32(0)
	}
	r.end()
	if _, err := Unmarshal(r.Bytes(), WithQuota(64<<10)); !errors.Is(err, budget.ErrExceeded) {
		t.Fatalf("expected ErrExceeded, got %v", err)
	}
	if _, err := Unmarshal(r.Bytes()); err != nil {
		t.Fatalf("unlimited: %v", err)
	}
}

func TestDuplicateKey(t *testing.T) {
	d := rootStart().
		id(nbt.IntType).name("k").i32(1).
		id(nbt.IntType).name("k").i32(2).
		end().Bytes()
	acct := budget.New(1 << 20)
	c, err := Decode(bytes.NewReader(d), WithAccounter(acct))
	if err != nil {
		t.Fatal(err)
	}
	if c.GetInt("k") != 2 || c.Len() != 1 {
		t.Errorf("later entry should win: %d (%d entries)", c.GetInt("k"), c.Len())
	}
	// compound 384, two entries of 224+16 and 96 bits, duplicate 288.
	if acct.Usage() != 48+30+12+30+12+36 {
		t.Errorf("usage %d", acct.Usage())
	}
}

func TestRootTypeCheckedFirst(t *testing.T) {
	d := (&raw{}).id(nbt.ByteArrayType).name("").i32(1 << 30).Bytes()
	d = append(d, make([]byte, 16)...)
	br := bytes.NewReader(d)
	acct := budget.New(1 << 40)
	_, err := ReadRoot(br, acct)
	if !errors.Is(err, nbt.ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
	if read := len(d) - br.Len(); read != 1 {
		t.Errorf("read %d bytes past the root id", read-1)
	}
	if acct.Usage() != 0 {
		t.Errorf("usage %d", acct.Usage())
	}
}

func TestFormatErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"root not compound", (&raw{}).id(nbt.IntType).name("").i32(1).Bytes()},
		{"root end", []byte{0}},
		{"missing list type", rootStart().id(nbt.ListType).name("l").id(nbt.EndType).i32(1).Bytes()},
		{"negative list length", rootStart().id(nbt.ListType).name("l").id(nbt.IntType).i32(-1).Bytes()},
		{"negative array length", rootStart().id(nbt.IntArrayType).name("a").i32(-1).Bytes()},
		{"invalid id", rootStart().id(nbt.Type(13)).name("x").Bytes()},
		{"invalid list element", rootStart().id(nbt.ListType).name("l").id(nbt.Type(42)).i32(1).Bytes()},
		{"bad string", rootStart().id(nbt.StringType).name("s").name("\xF0").Bytes()},
		{"trailing", append(rootStart().end().Bytes(), 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Unmarshal(tt.data)
			if !errors.Is(err, nbt.ErrFormat) {
				t.Errorf("expected ErrFormat, got %v", err)
			}
			if c != nil {
				t.Errorf("partial tree returned")
			}
		})
	}
}

func TestTruncated(t *testing.T) {
	full := MustMarshal(sampleTree(t))
	for _, n := range []int{0, 1, 3, len(full) / 2, len(full) - 1} {
		_, err := Unmarshal(full[:n])
		if !errors.Is(err, nbt.ErrIO) {
			t.Errorf("truncated at %d: expected ErrIO, got %v", n, err)
		}
	}
}

func TestResolve(t *testing.T) {
	for _, typ := range nbt.Types() {
		d := Resolve(typ)
		if d.ID() != typ || d.Name() != typ.Name() || d.IsValue() != typ.IsValue() {
			t.Errorf("descriptor for %s: %+v", typ, d)
		}
	}
	d := Resolve(200)
	if d.Name() != "INVALID[200]" {
		t.Errorf("name %s", d.Name())
	}
	_, err := d.Decode(NewReader(bytes.NewReader(nil)), 0, nil)
	var ie *InvalidIDError
	if !errors.As(err, &ie) || ie.ID != 200 {
		t.Errorf("expected *InvalidIDError, got %v", err)
	}
}

func TestReadNamedTag(t *testing.T) {
	r := NewReader(bytes.NewReader((&raw{}).id(nbt.StringType).name("n").name("v").end().Bytes()))
	typ, name, tag, err := ReadNamedTag(r, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if typ != nbt.StringType || name != "n" || tag != nbt.String("v") {
		t.Errorf("got %s %q %v", typ, name, tag)
	}
	typ, name, tag, err = ReadNamedTag(r, 0, nil)
	if err != nil || typ != nbt.EndType || name != "" || tag != nbt.EndTag {
		t.Errorf("end: %s %q %v %v", typ, name, tag, err)
	}
}

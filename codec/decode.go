package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/neworld-site/go-nbt/budget"
	"github.com/neworld-site/go-nbt/debug"
	"github.com/neworld-site/go-nbt/nbt"
)

// ReadNamedTag reads one named tag.  An id of 0 ends a compound's
// entries: it carries no name or payload and is returned as
// (EndType, "", EndTag).
func ReadNamedTag(r *Reader, depth int, acct *budget.Accounter) (nbt.Type, string, nbt.Tag, error) {
	id, err := r.ReadU8()
	if err != nil {
		return 0, "", nil, err
	}
	typ := nbt.Type(id)
	if typ == nbt.EndType {
		return typ, "", nbt.EndTag, nil
	}
	name, err := r.ReadString()
	if err != nil {
		return 0, "", nil, err
	}
	t, err := Resolve(typ).Decode(r, depth, acct)
	if err != nil {
		return 0, "", nil, err
	}
	if debug.Decode() {
		debug.Logf("decoded %s %q at depth %d, offset %d: %v\n", typ.PrettyName(), name, depth, r.Offset(), t)
	}
	return typ, name, t, nil
}

// ReadRoot reads a root tag, which must be a compound.  Its name is
// read and discarded.  A nil acct is unlimited.
func ReadRoot(r io.Reader, acct *budget.Accounter) (*nbt.Compound, error) {
	rr := NewReader(r)
	id, err := rr.ReadU8()
	if err != nil {
		return nil, err
	}
	if typ := nbt.Type(id); typ != nbt.CompoundType {
		return nil, fmt.Errorf("%w: root tag must be a named compound tag, got %s", nbt.ErrFormat, typ)
	}
	if _, err := rr.ReadString(); err != nil {
		return nil, err
	}
	t, err := Resolve(nbt.CompoundType).Decode(rr, 0, acct)
	if err != nil {
		return nil, err
	}
	c := t.(*nbt.Compound)
	if debug.Budget() {
		debug.Logf("read root: %d bytes, %d accounted of quota %d\n", rr.Offset(), acct.Usage(), acct.Quota())
	}
	return c, nil
}

// DecodeOption configures Decode and Unmarshal.
type DecodeOption func(*decodeState)

type decodeState struct {
	acct *budget.Accounter
}

// WithQuota limits decoding to quota accounted bytes.  0 is unlimited.
func WithQuota(quota int64) DecodeOption {
	return func(ds *decodeState) { ds.acct = budget.New(quota) }
}

// WithAccounter charges decoding to acct, which may be shared across
// several decodes.
func WithAccounter(acct *budget.Accounter) DecodeOption {
	return func(ds *decodeState) { ds.acct = acct }
}

// Decode reads a root compound from r.  Without options it is unlimited.
func Decode(r io.Reader, opts ...DecodeOption) (*nbt.Compound, error) {
	ds := &decodeState{}
	for _, opt := range opts {
		opt(ds)
	}
	return ReadRoot(r, ds.acct)
}

// Unmarshal decodes a root compound from d.  Trailing bytes are an
// error.
func Unmarshal(d []byte, opts ...DecodeOption) (*nbt.Compound, error) {
	br := bytes.NewReader(d)
	c, err := Decode(br, opts...)
	if err != nil {
		return nil, err
	}
	if br.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after root", nbt.ErrFormat, br.Len())
	}
	return c, nil
}

package libdiff

import (
	"errors"
	"fmt"

	"github.com/neworld-site/go-nbt/nbt"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// ErrConflict is returned by Apply when a change does not match the
// tree it is applied to.
var ErrConflict = errors.New("patch conflict")

// Apply returns a copy of root with changes applied in order.  root is
// not modified.
func Apply(root nbt.Tag, changes []Change) (nbt.Tag, error) {
	res := root.Copy()
	for i := range changes {
		var err error
		res, err = applyChange(res, &changes[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func applyChange(root nbt.Tag, c *Change) (nbt.Tag, error) {
	if len(c.Path) == 0 {
		switch c.Op {
		case Replace:
			if !nbt.Equal(root, c.From) {
				return nil, conflict(c, root)
			}
			return c.To.Copy(), nil
		case Edit:
			return applyEdit(c, root)
		default:
			return nil, fmt.Errorf("%w: cannot %s the root", ErrConflict, c.Op)
		}
	}
	parent := root
	for _, s := range c.Path[:len(c.Path)-1] {
		next, err := step(parent, s)
		if err != nil {
			return nil, fmt.Errorf("%w: at %s: %w", ErrConflict, c.Path, err)
		}
		parent = next
	}
	last := c.Path[len(c.Path)-1]
	var err error
	switch p := parent.(type) {
	case *nbt.Compound:
		if last.IsIndex {
			return nil, fmt.Errorf("%w: at %s: index into compound", ErrConflict, c.Path)
		}
		err = applyCompound(p, last.Key, c)
	case *nbt.List:
		if !last.IsIndex {
			return nil, fmt.Errorf("%w: at %s: key into list", ErrConflict, c.Path)
		}
		err = applyList(p, last.Index, c)
	default:
		err = fmt.Errorf("%w: at %s: cannot patch inside %s", ErrConflict, c.Path, parent.Type())
	}
	if err != nil {
		return nil, err
	}
	return root, nil
}

func step(t nbt.Tag, s Step) (nbt.Tag, error) {
	if s.IsIndex {
		l, ok := t.(*nbt.List)
		if !ok {
			return nil, fmt.Errorf("%s is not a list", t.Type())
		}
		return l.Get(s.Index)
	}
	c, ok := t.(*nbt.Compound)
	if !ok {
		return nil, fmt.Errorf("%s is not a compound", t.Type())
	}
	v := c.Get(s.Key)
	if v == nil {
		return nil, fmt.Errorf("no key %q", s.Key)
	}
	return v, nil
}

func applyCompound(p *nbt.Compound, key string, c *Change) error {
	cur := p.Get(key)
	switch c.Op {
	case Insert:
		if cur != nil {
			return conflict(c, cur)
		}
		_, err := p.Put(key, c.To.Copy())
		return err
	case Delete:
		if cur == nil || !nbt.Equal(cur, c.From) {
			return conflict(c, cur)
		}
		p.Remove(key)
		return nil
	case Replace:
		if cur == nil || !nbt.Equal(cur, c.From) {
			return conflict(c, cur)
		}
		_, err := p.Put(key, c.To.Copy())
		return err
	case Edit:
		if cur == nil {
			return conflict(c, cur)
		}
		v, err := applyEdit(c, cur)
		if err != nil {
			return err
		}
		_, err = p.Put(key, v)
		return err
	}
	return fmt.Errorf("%w: bad op %s", ErrConflict, c.Op)
}

func applyList(p *nbt.List, i int, c *Change) error {
	if c.Op == Insert {
		return p.Insert(i, c.To.Copy())
	}
	cur, err := p.Get(i)
	if err != nil {
		return fmt.Errorf("%w: at %s: %w", ErrConflict, c.Path, err)
	}
	switch c.Op {
	case Delete:
		if !nbt.Equal(cur, c.From) {
			return conflict(c, cur)
		}
		_, err = p.Remove(i)
		return err
	case Replace:
		if !nbt.Equal(cur, c.From) {
			return conflict(c, cur)
		}
		// removing first lets the only element of a list change type.
		if _, err := p.Remove(i); err != nil {
			return err
		}
		return p.Insert(i, c.To.Copy())
	case Edit:
		v, err := applyEdit(c, cur)
		if err != nil {
			return err
		}
		_, err = p.Set(i, v)
		return err
	}
	return fmt.Errorf("%w: bad op %s", ErrConflict, c.Op)
}

func applyEdit(c *Change, cur nbt.Tag) (nbt.Tag, error) {
	s, ok := cur.(nbt.String)
	if !ok {
		return nil, conflict(c, cur)
	}
	res, applied := diffpatch.New().PatchApply(c.Patches, string(s))
	for _, ok := range applied {
		if !ok {
			return nil, fmt.Errorf("%w: at %s: text patch does not apply to %q", ErrConflict, c.Path, s)
		}
	}
	return nbt.String(res), nil
}

func conflict(c *Change, got nbt.Tag) error {
	want := c.From
	if c.Op == Insert {
		want = nil
	}
	return fmt.Errorf("%w: at %s: %s expected %v, found %v", ErrConflict, c.Path, c.Op, want, got)
}

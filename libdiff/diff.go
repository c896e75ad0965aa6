package libdiff

import (
	"github.com/neworld-site/go-nbt/debug"
	"github.com/neworld-site/go-nbt/nbt"
)

// DiffFunc appends the changes turning from into to at path.
type DiffFunc func(path Path, from, to nbt.Tag, res []Change) []Change

// Diff returns the changes which turn from into to.  Equal trees give
// no changes.
func Diff(from, to nbt.Tag) []Change {
	res := diff(nil, from, to, nil)
	if debug.Diff() {
		debug.Logf("diff of %v and %v: %d changes\n", from, to, len(res))
	}
	return res
}

func diff(path Path, from, to nbt.Tag, res []Change) []Change {
	if from.Type() != to.Type() {
		return append(res, MakeChange(path, from, to))
	}
	switch x := from.(type) {
	case *nbt.Compound:
		return DiffCompound(path, x, to.(*nbt.Compound), res)
	case *nbt.List:
		return DiffListByIndex(path, x, to.(*nbt.List), diff, res)
	case nbt.String:
		return DiffString(path, x, to.(nbt.String), res)
	default:
		return DiffValue(path, from, to, res)
	}
}

// DiffCompound diffs two compounds key by key in sorted key order.
func DiffCompound(path Path, from, to *nbt.Compound, res []Change) []Change {
	for k, fv := range from.Sorted() {
		tv := to.Get(k)
		if tv == nil {
			res = append(res, MakeChange(path.key(k), fv, nil))
			continue
		}
		res = diff(path.key(k), fv, tv, res)
	}
	for k, tv := range to.Sorted() {
		if !from.Contains(k) {
			res = append(res, MakeChange(path.key(k), nil, tv))
		}
	}
	return res
}

// DiffValue compares numbers and arrays as whole values.
func DiffValue(path Path, from, to nbt.Tag, res []Change) []Change {
	if nbt.Equal(from, to) {
		return res
	}
	return append(res, MakeChange(path, from, to))
}

package libdiff

import (
	"strconv"

	"github.com/neworld-site/go-nbt/nbt"
	"github.com/neworld-site/go-nbt/snbt"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffListByIndex aligns the elements of two lists and diffs them.
//
//  1. each element is summarised: containers by their type, values by
//     their type and text
//  2. the sequences of summaries are diffed as runes
//  3. aligned containers are diffed recursively with df
//  4. a delete directly followed by an insert becomes a replace
//
// Indices in the result count positions in the list as patched so far.
func DiffListByIndex(path Path, from, to *nbt.List, df DiffFunc, res []Change) []Change {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	fi, ti, ri := 0, 0, 0
	delAt := -1
	for i := range diffs {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			for range n {
				fv, _ := from.Get(fi)
				res = append(res, MakeChange(path.index(ri), fv, nil))
				delAt = len(res) - 1
				fi++
			}
		case diffpatch.DiffEqual:
			delAt = -1
			for range n {
				fv, _ := from.Get(fi)
				tv, _ := to.Get(ti)
				res = df(path.index(ri), fv, tv, res)
				ri++
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				tv, _ := to.Get(ti)
				if delAt >= 0 && delAt == len(res)-1 {
					del := res[delAt]
					res[delAt] = MakeChange(del.Path, del.From, tv)
				} else {
					res = append(res, MakeChange(path.index(ri), nil, tv))
				}
				delAt = -1
				ri++
				ti++
			}
		}
	}
	return res
}

func mapValues(m map[string]rune, l *nbt.List) []rune {
	rs := make([]rune, l.Len())
	for i, v := range l.All() {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			if r >= 0xD800 {
				r += 0x800
			}
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(t nbt.Tag) string {
	switch t.(type) {
	case *nbt.Compound, *nbt.List:
		return t.Type().String()
	default:
		return strconv.Itoa(int(t.Type())) + "-" + snbt.String(t)
	}
}

package libdiff

import "github.com/neworld-site/go-nbt/nbt"

// Step is one segment of a change path: a compound key or an element
// index.
type Step struct {
	Key     string
	Index   int
	IsIndex bool
}

// Path locates a change below the root being diffed.
type Path []Step

func (p Path) String() string {
	res := ""
	for _, s := range p {
		if s.IsIndex {
			res = nbt.PathIndex(res, s.Index)
			continue
		}
		res = nbt.PathKey(res, s.Key)
	}
	return res
}

func (p Path) key(k string) Path {
	return append(p[:len(p):len(p)], Step{Key: k})
}

func (p Path) index(i int) Path {
	return append(p[:len(p):len(p)], Step{Index: i, IsIndex: true})
}

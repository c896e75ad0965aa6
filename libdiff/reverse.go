package libdiff

import (
	"slices"

	"github.com/neworld-site/go-nbt/nbt"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Reverse returns the changes undoing changes.  Applying changes and
// then Reverse(changes) gives back the original tree.
func Reverse(changes []Change) []Change {
	res := make([]Change, 0, len(changes))
	for _, c := range slices.Backward(changes) {
		switch c.Op {
		case Insert:
			res = append(res, Change{Path: c.Path, Op: Delete, From: c.To})
		case Delete:
			res = append(res, Change{Path: c.Path, Op: Insert, To: c.From})
		case Replace:
			res = append(res, Change{Path: c.Path, Op: Replace, From: c.To, To: c.From})
		case Edit:
			from, to := string(c.To.(nbt.String)), string(c.From.(nbt.String))
			res = append(res, Change{
				Path:    c.Path,
				Op:      Edit,
				From:    c.To,
				To:      c.From,
				Patches: diffpatch.New().PatchMake(from, to),
			})
		}
	}
	return res
}

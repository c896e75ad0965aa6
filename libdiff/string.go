package libdiff

import (
	"github.com/neworld-site/go-nbt/nbt"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString records a text Edit when the strings share most of their
// content, and a Replace otherwise.
func DiffString(path Path, from, to nbt.String, res []Change) []Change {
	if from == to {
		return res
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(string(from), string(to), false)
	diffSize := 0
	for _, d := range diffs {
		if d.Type != diffpatch.DiffEqual {
			diffSize += len(d.Text)
		}
	}
	if diffSize > min(len(from), len(to))/2 {
		return append(res, MakeChange(path, from, to))
	}
	return append(res, Change{
		Path:    path,
		Op:      Edit,
		From:    from,
		To:      to,
		Patches: dmp.PatchMake(string(from), diffs),
	})
}

package libdiff

import (
	"fmt"
	"strings"

	"github.com/neworld-site/go-nbt/nbt"
	"github.com/neworld-site/go-nbt/snbt"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Change is one difference between two trees.  Changes of a diff are
// ordered: each path is valid in the tree produced by applying the
// changes before it.
type Change struct {
	Path Path
	Op   Op
	From nbt.Tag
	To   nbt.Tag

	// Patches holds the text edits of an Edit change.
	Patches []diffpatch.Patch
}

func MakeChange(path Path, from, to nbt.Tag) Change {
	switch {
	case from == nil:
		return Change{Path: path, Op: Insert, To: to}
	case to == nil:
		return Change{Path: path, Op: Delete, From: from}
	default:
		return Change{Path: path, Op: Replace, From: from, To: to}
	}
}

func (c Change) String() string {
	switch c.Op {
	case Insert:
		return fmt.Sprintf("+ %s: %s", c.Path, snbt.String(c.To))
	case Delete:
		return fmt.Sprintf("- %s: %s", c.Path, snbt.String(c.From))
	case Edit:
		txt := diffpatch.New().PatchToText(c.Patches)
		return fmt.Sprintf("~ %s: %s", c.Path, strings.TrimRight(txt, "\n"))
	default:
		return fmt.Sprintf("~ %s: %s -> %s", c.Path, snbt.String(c.From), snbt.String(c.To))
	}
}

// Format renders changes one per line.
func Format(changes []Change) string {
	var b strings.Builder
	for _, c := range changes {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}

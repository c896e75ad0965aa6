package libdiff

import (
	"strings"

	"github.com/neworld-site/go-nbt/nbt"
	"github.com/neworld-site/go-nbt/snbt"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Text renders from and to as indented text and returns a line diff in
// which each line is prefixed by "-", "+" or " ".  Equal trees give "".
func Text(from, to nbt.Tag, opts ...snbt.EncodeOption) string {
	opts = append([]snbt.EncodeOption{snbt.Indent(2)}, opts...)
	a := snbt.String(from, opts...) + "\n"
	b := snbt.String(to, opts...) + "\n"
	if a == b {
		return ""
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var out strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffDelete:
			prefix = "-"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(prefix)
			out.WriteString(line)
		}
	}
	return out.String()
}

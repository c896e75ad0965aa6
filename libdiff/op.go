package libdiff

import "fmt"

// Op is the kind of a Change.
type Op int

const (
	// Insert adds To at the path.
	Insert Op = iota + 1
	// Delete removes From from the path.
	Delete
	// Replace swaps From for To at the path.
	Replace
	// Edit changes a string in place with a text patch.
	Edit
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	case Edit:
		return "edit"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Sign is the single character used for o in rendered diffs.
func (o Op) Sign() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return "~"
	}
}

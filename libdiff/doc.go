// Package libdiff computes, renders and applies differences between tag
// trees.
//
// Diff produces an ordered list of Changes.  Compounds are compared key
// by key, lists are aligned element by element and strings which mostly
// agree become text Edits.  Numbers and arrays are compared as whole
// values.  Apply replays changes on a copy of a tree and Reverse inverts
// them.  Text gives a line oriented view of the same difference.
package libdiff

package snbt

type parseOpts struct {
	maxDepth int
}

type ParseOption func(*parseOpts)

// ParseMaxDepth limits the nesting of compounds and lists.  The default
// is the binary decoding limit of 512.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

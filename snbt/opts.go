package snbt

type EncodeOption func(*EncState)

// Sorted controls whether compound keys are written in sorted order.
// It defaults to true.
func Sorted(v bool) EncodeOption {
	return func(es *EncState) { es.sorted = v }
}

// Indent pretty prints containers with n spaces per level.  0, the
// default, gives the compact single line form.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeColors colors the output.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// MaxElems truncates lists and arrays after n elements, writing "..." in
// place of the rest.  0, the default, writes everything.
func MaxElems(n int) EncodeOption {
	return func(es *EncState) { es.maxElems = n }
}

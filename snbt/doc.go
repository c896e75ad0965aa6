// Package snbt renders tag trees in their canonical textual form.
//
// The form is intended for debugging and export and is not guaranteed to
// decode back to identical bytes:
//
//	{key:value,...}          compound; simple keys bare, others quoted
//	[v,v,...]                list
//	[B;1B,2B] [I;1,2] [L;1L] arrays
//	1b 2s 3 4L 5.0f 6.0d     byte short int long float double
//	"text" 'say "hi"'        strings
//
// # Usage
//
//	s := snbt.String(tag)
//	err := snbt.Encode(tag, os.Stdout, snbt.Indent(2), snbt.EncodeColors(snbt.NewColors()))
package snbt

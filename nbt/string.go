package nbt

// String is an immutable string tag.
type String string

var emptyString Tag = String("")

func (String) Type() Type  { return StringType }
func (s String) Copy() Tag { return s }
func (String) tag()        {}

// StringOf returns v as a Tag.  All empty strings share one instance.
func StringOf(v string) Tag {
	if v == "" {
		return emptyString
	}
	return String(v)
}

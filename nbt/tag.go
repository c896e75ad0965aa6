package nbt

// Tag is a node of a tag tree.
//
// The set of implementations is closed: End, the scalars Byte, Short,
// Int, Long, Float and Double, String, and the owning containers
// *ByteArray, *IntArray, *LongArray, *List and *Compound.
type Tag interface {
	// Type returns the wire id of the tag.
	Type() Type
	// Copy returns a tag equal to the receiver which shares no mutable
	// state with it.  Immutable tags return themselves.
	Copy() Tag

	tag()
}

// End terminates the entries of a compound on the wire and marks the
// element type of an empty list.  It is never stored as a value.
type End struct{}

// EndTag is the End instance.
var EndTag Tag = End{}

func (End) Type() Type  { return EndType }
func (e End) Copy() Tag { return e }
func (End) tag()        {}

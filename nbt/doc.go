// Package nbt provides the tag tree data model.
//
// # Overview
//
// A tag tree is a self-describing hierarchy of typed values.  Every tag
// has a wire id ([Type]) from a closed set of 13:
//
//   - EndType (0): terminates compound entries on the wire; never a value
//   - ByteType .. DoubleType (1-6): immutable numeric scalars
//   - ByteArrayType (7), IntArrayType (11), LongArrayType (12): owned
//     buffers of fixed width integers
//   - StringType (8): immutable string
//   - ListType (9): ordered sequence of tags of one type
//   - CompoundType (10): map from string key to tag
//
// Types report a short name ("BYTE[]"), a pretty name ("TAG_Byte_Array")
// and whether they are value types.  Value types (End, the scalars and
// String) are immutable and may be shared; containers are exclusively
// owned by their parent.
//
// # Creating Tags
//
// Scalars are plain Go values and may be created by conversion or with
// the pooled constructors, which avoid allocating for common values:
//
//	b := nbt.Byte(1)
//	i := nbt.IntOf(42)
//	s := nbt.StringOf("hello")
//
// Containers are created with constructors:
//
//	c := nbt.NewCompound()
//	c.PutInt("a", 1)
//	l, err := nbt.NewList(nbt.Int(1), nbt.Int(2))
//	c.Put("b", l)
//
// # Lists
//
// A list is constrained to one element type, fixed by the first element
// stored and reset when the list is emptied.  Storing a tag of another
// type fails with an error wrapping [ErrTypeMismatch] and leaves the list
// unchanged.
//
// # Compounds
//
// Typed getters such as [Compound.GetInt] and [Compound.GetString] never
// fail.  An absent key or a value of an incompatible type gives a zero
// value.  The numeric getters accept any numeric tag and convert it, so
// a Byte stored under "count" is returned by GetInt("count").
//
// [Compound.Merge] recursively merges nested compounds and otherwise
// replaces entries with copies of the other side.
//
// # Copying, Equality and Hashing
//
// Copy returns the receiver for value types and a deep copy for
// containers.  [Equal] compares trees structurally and [Hash] is
// consistent with it.
//
// # Thread Safety
//
// A completed tree may be read from many goroutines.  Containers are not
// synchronized; mutating one concurrently with any other access requires
// external locking.
//
// # Related Packages
//
//   - github.com/neworld-site/go-nbt/codec - binary encoding and decoding
//   - github.com/neworld-site/go-nbt/nbtio - compressed streams and files
//   - github.com/neworld-site/go-nbt/snbt - textual rendering
package nbt

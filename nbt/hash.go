package nbt

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// seed is shared by all hashes in a process so that equal trees hash
// equally.  Hashes are not stable across processes.
var seed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of t consistent with Equal.
// Float and Double hash their IEEE bit patterns.  Compound entries are
// combined independently of iteration order.
// It panics if t is nil.
func Hash(t Tag) uint64 {
	if t == nil {
		panic("nbt: Hash called on nil tag")
	}
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(byte(t.Type()))
	var b [8]byte
	putU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(b[:], v)
		h.Write(b[:])
	}
	switch x := t.(type) {
	case End:
	case Byte:
		h.WriteByte(byte(x))
	case Short:
		putU64(uint64(x))
	case Int:
		putU64(uint64(x))
	case Long:
		putU64(uint64(x))
	case Float:
		putU64(uint64(math.Float32bits(float32(x))))
	case Double:
		putU64(math.Float64bits(float64(x)))
	case String:
		h.WriteString(string(x))
	case *ByteArray:
		putU64(uint64(len(x.vals)))
		h.Write(x.vals)
	case *IntArray:
		putU64(uint64(len(x.vals)))
		for _, v := range x.vals {
			putU64(uint64(v))
		}
	case *LongArray:
		putU64(uint64(len(x.vals)))
		for _, v := range x.vals {
			putU64(uint64(v))
		}
	case *List:
		putU64(uint64(len(x.elems)))
		for _, e := range x.elems {
			putU64(Hash(e))
		}
	case *Compound:
		// xor keeps the result independent of map iteration order.
		var acc uint64
		for k, v := range x.tags {
			acc ^= entryHash(k, v)
		}
		putU64(uint64(len(x.tags)))
		putU64(acc)
	}
	return h.Sum64()
}

func entryHash(k string, v Tag) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteString(k)
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], Hash(v))
	h.Write(b[:])
	return h.Sum64()
}

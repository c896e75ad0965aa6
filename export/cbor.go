package export

import (
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/neworld-site/go-nbt/nbt"
)

// encMode uses Core Deterministic Encoding: the same tree always gives
// the same bytes.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("export: CBOR encoder initialization failed: " + err.Error())
	}
}

// WriteCBOR writes t as CBOR.  Byte arrays become byte strings.
func WriteCBOR(t nbt.Tag, w io.Writer) error {
	return encMode.NewEncoder(w).Encode(toAny(t, anyOpts{binaryBytes: true}))
}

// MarshalCBOR returns the CBOR encoding of t.
func MarshalCBOR(t nbt.Tag) ([]byte, error) {
	return encMode.Marshal(toAny(t, anyOpts{binaryBytes: true}))
}

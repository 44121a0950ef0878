// Package codec encodes the persisted structures of a compile as self-describing snapshots:
// a short header followed by a CBOR payload that is optionally zstd-compressed.
package codec

import (
	"github.com/fxamacker/cbor/v2"
)

// encMode uses Core Deterministic Encoding (RFC 8949 §4.2) so that equal structures always
// produce identical bytes.
var encMode cbor.EncMode

// decMode rejects duplicate map keys, which a deterministic encoder never writes.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

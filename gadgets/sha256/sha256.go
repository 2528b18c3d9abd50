// Package sha256 exposes byte-oriented SHA-256 for in-circuit use, built on
// gnark's std/hash/sha2, exactly as the teacher's hashPair helper in
// circuits/eth2_sc_update.go does for its Merkle-tree hashing (sha2.New,
// Write, Sum). The FIPS-180-4 bit-level schedule itself is gnark's own
// implementation; this package only adds the padding-agnostic
// variable-length byte API the spec's L6 component needs.
package sha256

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/sha2"
	"github.com/consensys/gnark/std/math/uints"
)

// Sum256 hashes an arbitrary-length byte sequence and returns the 32-byte
// digest. Message padding (0x80, zero bits, 64-bit big-endian length) is
// handled internally by sha2.Digest.
func Sum256(api frontend.API, data []uints.U8) ([32]uints.U8, error) {
	h, err := sha2.New(api)
	if err != nil {
		return [32]uints.U8{}, err
	}
	h.Write(data)
	sum := h.Sum()
	var out [32]uints.U8
	copy(out[:], sum)
	return out, nil
}

// MustSum256 panics on construction failure, matching the teacher's
// hashPair which treats a sha2.New error as unrecoverable circuit-build
// state rather than a runtime condition.
func MustSum256(api frontend.API, data []uints.U8) [32]uints.U8 {
	out, err := Sum256(api, data)
	if err != nil {
		panic(err)
	}
	return out
}

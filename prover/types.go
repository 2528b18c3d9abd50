// Package prover implements L11: precompute/prove/verify, the opaque
// ProverData/VerifierData artifacts, and the proof-compression scheme of
// §4.12 and §6.
package prover

import (
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/constraint"
)

// ProverData is built once by Precompute and reused across every prove()
// call. It is never mutated after construction.
type ProverData struct {
	CCS constraint.ConstraintSystem
	PK  plonk.ProvingKey
}

// VerifierData is built once by Precompute and reused across every
// verify() call. It is never mutated after construction.
type VerifierData struct {
	VK  plonk.VerifyingKey
	CCS constraint.ConstraintSystem
}

// Proof is the opaque compressed-proof byte blob returned by Prove.
//
// Unlike the plonky2 original, gnark's wire format already keeps proof
// bytes and the public-input vector as two separate objects rather than
// one blob with a truncatable suffix — Proof.Bytes is exactly the
// backend's own serialized plonk.Proof, with the public witness never
// serialized into it at all. Verify reconstructs that public witness from
// (E, R, P, CT) using the same deterministic encoding Prove used to
// populate it, which is the same semantic property §4.12 describes
// ("compress by dropping a reconstructible suffix"), expressed the way
// this backend's data model supports it.
type Proof struct {
	Bytes []byte
}

// Inputs bundles the raw byte-level arguments shared by Prove and Verify.
type Inputs struct {
	E  []byte // 65 bytes, SEC1 uncompressed
	R  []byte // 65 bytes, SEC1 uncompressed
	P  []byte // 65 bytes, SEC1 uncompressed
	CT []byte // 48 bytes, ciphertext||tag
}

// ProveInputs extends Inputs with the two secret scalars only the prover
// holds.
type ProveInputs struct {
	Inputs
	E32 []byte // 32 bytes, big-endian sender ephemeral secret e
	P32 []byte // 32 bytes, big-endian plaintext scalar p
}

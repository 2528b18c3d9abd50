package prover

import (
	"bytes"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/frontend"

	"github.com/muun/cosigning-zk/errs"
)

// Verify rebuilds the public witness deterministically from (E,R,P,CT) —
// the same encoding Prove used to populate the public half of the
// assignment — deserializes proof.Bytes, and checks it against vd.VK. A
// malformed Inputs encoding is a DecodingError/NotOnCurveError; a
// structurally valid but wrong proof is a VerificationFailureError; a
// proof blob that doesn't even parse is a ProofFormatError (§7).
func Verify(vd *VerifierData, proof *Proof, in Inputs) error {
	assignment, err := buildAssignment(in)
	if err != nil {
		return err
	}

	publicWitness, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return fmt.Errorf("build public witness: %w", err)
	}

	p := plonk.NewProof(ecc.BN254)
	if _, err := p.ReadFrom(bytes.NewReader(proof.Bytes)); err != nil {
		return errs.ProofFormatf("%v", err)
	}

	if err := plonk.Verify(p, vd.VK, publicWitness); err != nil {
		return errs.VerificationFailuref("%v", err)
	}
	return nil
}

package prover

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/kzg"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/scs"
	"github.com/consensys/gnark/logger"
	"github.com/consensys/gnark/test/unsafekzg"

	"github.com/muun/cosigning-zk/circuits/cosigning"
)

// Precompute compiles the predicate circuit exactly once and derives both
// halves of the circuit artifacts. Compilation is deterministic (no
// entropy, no wall clock, no environment lookups — §6), so two independent
// calls in the same process/build produce byte-identical VerifierData.
//
// srs/srsLagrange is the KZG structured reference string PLONK needs; load
// a canonical ceremony transcript in production (see LoadSRS) or pass an
// insecure test SRS from NewInsecureTestSRS for local iteration only.
func Precompute(srs, srsLagrange kzg.SRS) (*ProverData, *VerifierData, error) {
	logger.Disable() // gnark's own logger is noisy during CCS compilation

	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), scs.NewBuilder, &cosigning.Circuit{})
	if err != nil {
		return nil, nil, fmt.Errorf("compile circuit: %w", err)
	}

	pk, vk, err := plonk.Setup(ccs, srs, srsLagrange)
	if err != nil {
		return nil, nil, fmt.Errorf("plonk setup: %w", err)
	}

	return &ProverData{CCS: ccs, PK: pk}, &VerifierData{VK: vk, CCS: ccs}, nil
}

// NewInsecureTestSRS derives a KZG SRS from a throwaway random secret at
// the required size for the circuit. It is not safe for production use —
// its toxic waste is not destroyed — and exists only for local development
// and tests, mirroring the same "unsafe but convenient" stance
// test/unsafekzg takes across gnark's own PLONK examples.
func NewInsecureTestSRS() (srs, srsLagrange kzg.SRS, err error) {
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), scs.NewBuilder, &cosigning.Circuit{})
	if err != nil {
		return nil, nil, fmt.Errorf("compile circuit: %w", err)
	}
	return unsafekzg.NewSRS(ccs)
}

// PublicInputsLengthBytes reports 8 * (number of public-input wires), the
// quantity §4.12's compression step is defined in terms of, even though
// this backend never serializes that suffix into Proof.Bytes in the first
// place (see the Proof doc comment).
func PublicInputsLengthBytes(pd *ProverData) int {
	return 8 * pd.CCS.GetNbPublicVariables()
}

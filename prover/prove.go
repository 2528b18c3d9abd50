package prover

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/emulated"
	"github.com/consensys/gnark/std/math/uints"

	"github.com/muun/cosigning-zk/circuits/cosigning"
	"github.com/muun/cosigning-zk/errs"
	"github.com/muun/cosigning-zk/gadgets/curve"
	"github.com/muun/cosigning-zk/gadgets/windowedmul"
)

// Prove builds the full witness from the raw byte-level statement and the
// prover's two secret scalars, then runs the PLONK prover. A malformed
// encoding (wrong lengths, a P or R not on secp256k1) is rejected before
// ever reaching the solver and surfaces as a DecodingError or
// NotOnCurveError; a (e,p) that does not actually satisfy the predicate
// fails constraint solving and surfaces as WitnessInconsistencyError — the
// two failure families §7 asks callers to tell apart.
func Prove(pd *ProverData, in ProveInputs) (*Proof, error) {
	assignment, err := buildAssignment(in.Inputs)
	if err != nil {
		return nil, err
	}

	eScalar, err := decodeScalar32(in.E32)
	if err != nil {
		return nil, errs.Decodingf("ephemeral secret: %v", err)
	}
	pScalar, err := decodeScalar32(in.P32)
	if err != nil {
		return nil, errs.Decodingf("plaintext scalar: %v", err)
	}
	assignment.ESecret = emulated.ValueOf[windowedmul.Fn](eScalar)
	assignment.PSecret = emulated.ValueOf[windowedmul.Fn](pScalar)

	fullWitness, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("build witness: %w", err)
	}

	proof, err := plonk.Prove(pd.CCS, pd.PK, fullWitness)
	if err != nil {
		return nil, errs.WitnessInconsistencyf("%v", err)
	}

	var buf bytes.Buffer
	if _, err := proof.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("serialize proof: %w", err)
	}
	return &Proof{Bytes: buf.Bytes()}, nil
}

// buildAssignment decodes (E,R,P,CT) and constructs the public half of a
// cosigning.Circuit assignment, including rebuilding R's full windowed-mul
// table from the decoded receiver point — the table is a public input, not
// a derived value, so both Prove and Verify must build it identically from
// the same raw bytes (§4.6, §6).
func buildAssignment(in Inputs) (*cosigning.Circuit, error) {
	ex, ey, err := decodeSEC1(in.E)
	if err != nil {
		return nil, fmt.Errorf("E: %w", err)
	}
	rx, ry, err := decodeSEC1(in.R)
	if err != nil {
		return nil, fmt.Errorf("R: %w", err)
	}
	px, py, err := decodeSEC1(in.P)
	if err != nil {
		return nil, fmt.Errorf("P: %w", err)
	}
	ct, err := decodeCiphertext(in.CT)
	if err != nil {
		return nil, fmt.Errorf("CT: %w", err)
	}

	var eArr [65]uints.U8
	copy(eArr[:], uints.NewU8Array(sec1Bytes(ex, ey)))
	var ctArr [48]uints.U8
	copy(ctArr[:], uints.NewU8Array(ct))

	rTable := windowedmul.ConstantTable(windowedmul.BuildTable(windowedmul.HostPoint{X: rx, Y: ry}))

	return &cosigning.Circuit{
		E:  eArr,
		Px: emulated.ValueOf[curve.Fq](px),
		Py: emulated.ValueOf[curve.Fq](py),
		R:  *rTable,
		CT: ctArr,
	}, nil
}

func sec1Bytes(x, y *big.Int) []byte {
	out := make([]byte, 65)
	out[0] = 0x04
	xb := x.Bytes()
	yb := y.Bytes()
	copy(out[1+32-len(xb):33], xb)
	copy(out[33+32-len(yb):65], yb)
	return out
}

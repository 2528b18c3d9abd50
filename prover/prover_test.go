package prover_test

import (
	"testing"

	"github.com/muun/cosigning-zk/prover"
)

func precompute(t *testing.T) (*prover.ProverData, *prover.VerifierData) {
	t.Helper()
	srs, srsLagrange, err := prover.NewInsecureTestSRS()
	if err != nil {
		t.Fatalf("derive test SRS: %v", err)
	}
	pd, vd, err := prover.Precompute(srs, srsLagrange)
	if err != nil {
		t.Fatalf("precompute: %v", err)
	}
	return pd, vd
}

func TestProveVerify_RoundTrip(t *testing.T) {
	pd, vd := precompute(t)

	fixture, err := prover.NewRandomFixture()
	if err != nil {
		t.Fatalf("build fixture: %v", err)
	}

	proof, err := prover.Prove(pd, prover.ProveInputs{
		Inputs: prover.Inputs{E: fixture.E, R: fixture.R, P: fixture.P, CT: fixture.CT},
		E32:    fixture.E32,
		P32:    fixture.P32,
	})
	if err != nil {
		t.Fatalf("prove: %v", err)
	}

	err = prover.Verify(vd, proof, prover.Inputs{E: fixture.E, R: fixture.R, P: fixture.P, CT: fixture.CT})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestProve_RejectsInconsistentWitness(t *testing.T) {
	pd, _ := precompute(t)

	fixture, err := prover.NewRandomFixture()
	if err != nil {
		t.Fatalf("build fixture: %v", err)
	}
	other, err := prover.NewRandomFixture()
	if err != nil {
		t.Fatalf("build second fixture: %v", err)
	}

	_, err = prover.Prove(pd, prover.ProveInputs{
		Inputs: prover.Inputs{E: other.E, R: fixture.R, P: fixture.P, CT: fixture.CT},
		E32:    fixture.E32,
		P32:    fixture.P32,
	})
	if err == nil {
		t.Fatalf("expected prove to fail when E does not match the claimed secret e")
	}
}

func TestVerify_RejectsTamperedPublicInputs(t *testing.T) {
	pd, vd := precompute(t)

	fixture, err := prover.NewRandomFixture()
	if err != nil {
		t.Fatalf("build fixture: %v", err)
	}

	proof, err := prover.Prove(pd, prover.ProveInputs{
		Inputs: prover.Inputs{E: fixture.E, R: fixture.R, P: fixture.P, CT: fixture.CT},
		E32:    fixture.E32,
		P32:    fixture.P32,
	})
	if err != nil {
		t.Fatalf("prove: %v", err)
	}

	tamperedCT := append([]byte{}, fixture.CT...)
	tamperedCT[0] ^= 0x01

	err = prover.Verify(vd, proof, prover.Inputs{E: fixture.E, R: fixture.R, P: fixture.P, CT: tamperedCT})
	if err == nil {
		t.Fatalf("expected verify to fail against a tampered ciphertext")
	}
}

func TestVerify_RejectsProofFromDifferentStatement(t *testing.T) {
	pd, vd := precompute(t)

	fixture, err := prover.NewRandomFixture()
	if err != nil {
		t.Fatalf("build fixture: %v", err)
	}
	other, err := prover.NewRandomFixture()
	if err != nil {
		t.Fatalf("build second fixture: %v", err)
	}

	proof, err := prover.Prove(pd, prover.ProveInputs{
		Inputs: prover.Inputs{E: fixture.E, R: fixture.R, P: fixture.P, CT: fixture.CT},
		E32:    fixture.E32,
		P32:    fixture.P32,
	})
	if err != nil {
		t.Fatalf("prove: %v", err)
	}

	err = prover.Verify(vd, proof, prover.Inputs{E: other.E, R: other.R, P: other.P, CT: other.CT})
	if err == nil {
		t.Fatalf("expected verify to fail against a mismatched statement")
	}
}

package prover_test

import (
	"testing"

	"github.com/muun/cosigning-zk/prover"
)

func TestSerializeDeserializeVerifierData_RoundTrip(t *testing.T) {
	pd, vd := precompute(t)

	data, err := prover.SerializeVerifierData(vd)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	roundTripped, err := prover.DeserializeVerifierData(data)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}

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

	err = prover.Verify(roundTripped, proof, prover.Inputs{E: fixture.E, R: fixture.R, P: fixture.P, CT: fixture.CT})
	if err != nil {
		t.Fatalf("verify with round-tripped VerifierData: %v", err)
	}
}

func TestDeserializeVerifierData_RejectsGarbage(t *testing.T) {
	if _, err := prover.DeserializeVerifierData([]byte("not a verifier data blob")); err == nil {
		t.Fatalf("expected garbage input to be rejected")
	}
}

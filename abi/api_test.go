package abi_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muun/cosigning-zk/abi"
	"github.com/muun/cosigning-zk/prover"
)

func precomputeForABI(t *testing.T) (*prover.ProverData, *prover.VerifierData) {
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

func TestProveABI_VerifyABI_RoundTrip(t *testing.T) {
	pd, vd := precomputeForABI(t)

	fixture, err := prover.NewRandomFixture()
	if err != nil {
		t.Fatalf("build fixture: %v", err)
	}

	proveOut := abi.ProveABI(pd, fixture.E32, fixture.P32, fixture.E, fixture.R, fixture.P, fixture.CT)
	if !bytes.HasPrefix(proveOut, []byte("ok")) {
		t.Fatalf("ProveABI did not return the ok marker: %q", proveOut)
	}
	proofBytes := proveOut[len("ok"):]

	verifyOut := abi.VerifyABI(vd, proofBytes, fixture.E, fixture.R, fixture.P, fixture.CT)
	if !bytes.Equal(verifyOut, []byte("ok")) {
		t.Fatalf("VerifyABI did not return the bare ok marker: %q", verifyOut)
	}
}

func TestProveABI_ErrorMarkerOnBadInputs(t *testing.T) {
	pd, _ := precomputeForABI(t)

	out := abi.ProveABI(pd, []byte("too short"), nil, nil, nil, nil, nil)
	if !strings.HasPrefix(string(out), "error:") {
		t.Fatalf("expected error marker for malformed inputs, got %q", out)
	}
}

func TestVerifyABI_ErrorMarkerOnTamperedProof(t *testing.T) {
	pd, vd := precomputeForABI(t)

	fixture, err := prover.NewRandomFixture()
	if err != nil {
		t.Fatalf("build fixture: %v", err)
	}

	proveOut := abi.ProveABI(pd, fixture.E32, fixture.P32, fixture.E, fixture.R, fixture.P, fixture.CT)
	if !bytes.HasPrefix(proveOut, []byte("ok")) {
		t.Fatalf("ProveABI did not return the ok marker: %q", proveOut)
	}
	proofBytes := append([]byte{}, proveOut[len("ok"):]...)
	if len(proofBytes) > 0 {
		proofBytes[0] ^= 0xFF
	}

	verifyOut := abi.VerifyABI(vd, proofBytes, fixture.E, fixture.R, fixture.P, fixture.CT)
	if !strings.HasPrefix(string(verifyOut), "error:") {
		t.Fatalf("expected error marker for a tampered proof, got %q", verifyOut)
	}
}

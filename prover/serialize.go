package prover

import (
	"bytes"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/plonk"

	"github.com/muun/cosigning-zk/serialize"
)

// SerializeVerifierData writes the §6 wire format: the fixed gate registry
// header followed by the backend's own verifying-key bytes. Round-trips
// with DeserializeVerifierData.
func SerializeVerifierData(vd *VerifierData) ([]byte, error) {
	var buf bytes.Buffer
	if err := serialize.WriteRegistry(&buf); err != nil {
		return nil, fmt.Errorf("write registry header: %w", err)
	}
	if _, err := vd.VK.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write verifying key: %w", err)
	}
	return buf.Bytes(), nil
}

// DeserializeVerifierData parses the §6 wire format. It validates the gate
// registry header but does not reconstruct the ConstraintSystem half of
// VerifierData — Verify never needs it, only the VerifyingKey — so the
// returned VerifierData.CCS is nil.
func DeserializeVerifierData(data []byte) (*VerifierData, error) {
	payload, err := serialize.ReadAndCheckRegistry(data)
	if err != nil {
		return nil, err
	}
	vk := plonk.NewVerifyingKey(ecc.BN254)
	if _, err := vk.ReadFrom(bytes.NewReader(payload)); err != nil {
		return nil, fmt.Errorf("read verifying key: %w", err)
	}
	return &VerifierData{VK: vk}, nil
}

package sha256_test

import (
	"encoding/hex"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/uints"
	gnark_test "github.com/consensys/gnark/test"

	"github.com/muun/cosigning-zk/gadgets/sha256"
)

type sumCircuit struct {
	In   [3]frontend.Variable
	Want [32]frontend.Variable `gnark:",public"`
}

func (c *sumCircuit) Define(api frontend.API) error {
	in := make([]uints.U8, len(c.In))
	for i := range c.In {
		in[i] = uints.U8{Val: c.In[i]}
	}
	sum, err := sha256.Sum256(api, in)
	if err != nil {
		return err
	}
	for i := range sum {
		api.AssertIsEqual(sum[i].Val, c.Want[i])
	}
	return nil
}

// TestSum256_ABC checks the well-known FIPS 180-4 vector: SHA-256("abc").
func TestSum256_ABC(t *testing.T) {
	want, err := hex.DecodeString("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")
	if err != nil {
		t.Fatalf("bad hex literal: %v", err)
	}

	witness := &sumCircuit{In: [3]frontend.Variable{'a', 'b', 'c'}}
	for i, b := range want {
		witness.Want[i] = b
	}
	if err := gnark_test.IsSolved(&sumCircuit{}, witness, ecc.BN254.ScalarField()); err != nil {
		t.Fatalf("expected solve to succeed: %v", err)
	}
}

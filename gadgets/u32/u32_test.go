package u32_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	gnark_test "github.com/consensys/gnark/test"

	"github.com/muun/cosigning-zk/gadgets/u32"
)

type addCircuit struct {
	A, B      frontend.Variable
	WantSum   frontend.Variable `gnark:",public"`
	WantCarry frontend.Variable `gnark:",public"`
}

func (c *addCircuit) Define(api frontend.API) error {
	sum, carry := u32.AddU32(api, u32.Unsafe(c.A), u32.Unsafe(c.B))
	api.AssertIsEqual(sum.V, c.WantSum)
	api.AssertIsEqual(carry.V, c.WantCarry)
	return nil
}

func TestAddU32_Carry(t *testing.T) {
	witness := &addCircuit{A: uint32(1) << 31, B: uint32(1) << 31, WantSum: 0, WantCarry: 1}
	err := gnark_test.IsSolved(&addCircuit{}, witness, ecc.BN254.ScalarField())
	if err != nil {
		t.Fatalf("expected solve to succeed: %v", err)
	}
}

func TestAddU32_NoCarry(t *testing.T) {
	witness := &addCircuit{A: uint32(5), B: uint32(7), WantSum: uint32(12), WantCarry: 0}
	err := gnark_test.IsSolved(&addCircuit{}, witness, ecc.BN254.ScalarField())
	if err != nil {
		t.Fatalf("expected solve to succeed: %v", err)
	}
}

type rotlCircuit struct {
	In   frontend.Variable
	Want frontend.Variable `gnark:",public"`
	N    int
}

func (c *rotlCircuit) Define(api frontend.API) error {
	out := u32.Rotl(api, u32.Unsafe(c.In), c.N)
	api.AssertIsEqual(out.V, c.Want)
	return nil
}

func TestRotl(t *testing.T) {
	// 0x80000000 rotated left by 1 == 1.
	circuit := &rotlCircuit{N: 1}
	witness := &rotlCircuit{In: uint32(1) << 31, Want: uint32(1), N: 1}
	err := gnark_test.IsSolved(circuit, witness, ecc.BN254.ScalarField())
	if err != nil {
		t.Fatalf("expected solve to succeed: %v", err)
	}
}

type xorCircuit struct {
	A, B frontend.Variable
	Want frontend.Variable `gnark:",public"`
}

func (c *xorCircuit) Define(api frontend.API) error {
	out := u32.Xor(api, u32.Unsafe(c.A), u32.Unsafe(c.B))
	api.AssertIsEqual(out.V, c.Want)
	return nil
}

func TestXor(t *testing.T) {
	witness := &xorCircuit{A: uint32(0xFF00FF00), B: uint32(0x0F0F0F0F), Want: uint32(0xF00FF00F)}
	err := gnark_test.IsSolved(&xorCircuit{}, witness, ecc.BN254.ScalarField())
	if err != nil {
		t.Fatalf("expected solve to succeed: %v", err)
	}
}

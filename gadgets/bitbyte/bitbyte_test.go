package bitbyte_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	gnark_test "github.com/consensys/gnark/test"
	"github.com/consensys/gnark/std/math/uints"

	"github.com/muun/cosigning-zk/gadgets/bitbyte"
)

type packUnpackCircuit struct {
	In frontend.Variable
}

func (c *packUnpackCircuit) Define(api frontend.API) error {
	b := uints.U8{Val: c.In}
	bits := bitbyte.UnpackByteToBits(api, b)
	out := bitbyte.PackBitsToByte(api, bits)
	api.AssertIsEqual(out.Val, b.Val)
	return nil
}

func TestUnpackPackRoundTrip(t *testing.T) {
	for _, v := range []uint8{0x00, 0xFF, 0xA5, 0x01, 0x80} {
		witness := &packUnpackCircuit{In: v}
		if err := gnark_test.IsSolved(&packUnpackCircuit{}, witness, ecc.BN254.ScalarField()); err != nil {
			t.Fatalf("byte 0x%x: expected solve to succeed: %v", v, err)
		}
	}
}

type connectBytesCircuit struct {
	A, B [4]frontend.Variable
}

func (c *connectBytesCircuit) Define(api frontend.API) error {
	a := make([]uints.U8, 4)
	b := make([]uints.U8, 4)
	for i := range a {
		a[i] = uints.U8{Val: c.A[i]}
		b[i] = uints.U8{Val: c.B[i]}
	}
	return bitbyte.ConnectBytes(api, a, b)
}

func TestConnectBytes_Equal(t *testing.T) {
	witness := &connectBytesCircuit{
		A: [4]frontend.Variable{1, 2, 3, 4},
		B: [4]frontend.Variable{1, 2, 3, 4},
	}
	if err := gnark_test.IsSolved(&connectBytesCircuit{}, witness, ecc.BN254.ScalarField()); err != nil {
		t.Fatalf("expected solve to succeed: %v", err)
	}
}

func TestConnectBytes_Unequal(t *testing.T) {
	witness := &connectBytesCircuit{
		A: [4]frontend.Variable{1, 2, 3, 4},
		B: [4]frontend.Variable{1, 2, 3, 5},
	}
	if err := gnark_test.IsSolved(&connectBytesCircuit{}, witness, ecc.BN254.ScalarField()); err == nil {
		t.Fatalf("expected solve to fail on mismatched bytes")
	}
}

package nonnative_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/emulated"
	gnark_test "github.com/consensys/gnark/test"

	"github.com/muun/cosigning-zk/gadgets/nonnative"
)

type bytesRoundTripCircuit struct {
	In emulated.Element[nonnative.Fq]
}

func (c *bytesRoundTripCircuit) Define(api frontend.API) error {
	f, err := nonnative.New[nonnative.Fq](api)
	if err != nil {
		return err
	}
	bytesBE := f.ToBytesBE(&c.In)
	back := f.FromBytesBE(bytesBE)
	f.Inner().AssertIsEqual(&c.In, back)
	return nil
}

func TestToBytesBE_FromBytesBE_RoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, 255, 256, 65537} {
		circuit := &bytesRoundTripCircuit{In: emulated.ValueOf[nonnative.Fq](big.NewInt(0))}
		witness := &bytesRoundTripCircuit{In: emulated.ValueOf[nonnative.Fq](big.NewInt(v))}
		if err := gnark_test.IsSolved(circuit, witness, ecc.BN254.ScalarField()); err != nil {
			t.Fatalf("value %d: expected solve to succeed: %v", v, err)
		}
	}
}

type split4BitCircuit struct {
	In emulated.Element[nonnative.Fn]
}

func (c *split4BitCircuit) Define(api frontend.API) error {
	f, err := nonnative.New[nonnative.Fn](api)
	if err != nil {
		return err
	}
	digits := f.Split4BitLimbs(&c.In)
	if len(digits) != 64 {
		panic("expected 64 digits")
	}
	// Each digit must be in [0,16).
	for _, d := range digits {
		api.AssertIsLessOrEqual(d, frontend.Variable(15))
	}
	return nil
}

func TestSplit4BitLimbs_DigitsInRange(t *testing.T) {
	circuit := &split4BitCircuit{In: emulated.ValueOf[nonnative.Fn](big.NewInt(0))}
	witness := &split4BitCircuit{In: emulated.ValueOf[nonnative.Fn](big.NewInt(123456789))}
	if err := gnark_test.IsSolved(circuit, witness, ecc.BN254.ScalarField()); err != nil {
		t.Fatalf("expected solve to succeed: %v", err)
	}
}

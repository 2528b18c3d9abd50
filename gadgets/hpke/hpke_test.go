package hpke_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/emulated/sw_emulated"
	"github.com/consensys/gnark/std/math/emulated"
	"github.com/consensys/gnark/std/math/uints"
	gnark_test "github.com/consensys/gnark/test"

	"github.com/muun/cosigning-zk/gadgets/curve"
	"github.com/muun/cosigning-zk/gadgets/hpke"
	hpkeref "github.com/muun/cosigning-zk/gadgets/hpke/ref"
	"github.com/muun/cosigning-zk/gadgets/nonnative"
	"github.com/muun/cosigning-zk/gadgets/windowedmul"
	"github.com/muun/cosigning-zk/prover"
)

type sealCircuit struct {
	ESecret emulated.Element[windowedmul.Fn]
	RTable  windowedmul.Table
	PT      [32]frontend.Variable

	WantE  [65]frontend.Variable `gnark:",public"`
	WantCT [48]frontend.Variable `gnark:",public"`
}

func (c *sealCircuit) Define(api frontend.API) error {
	fq, err := nonnative.New[curve.Fq](api)
	if err != nil {
		return err
	}
	fn, err := nonnative.New[windowedmul.Fn](api)
	if err != nil {
		return err
	}
	crv, err := curve.New(api)
	if err != nil {
		return err
	}
	wm := windowedmul.New(api, crv)
	uapi, err := uints.NewBytes(api)
	if err != nil {
		return err
	}

	params := sw_emulated.GetSecp256k1Params()
	g := windowedmul.HostPoint{X: params.Gx, Y: params.Gy}
	gTable := windowedmul.ConstantTable(windowedmul.BuildTable(g))

	eDigits := fn.Split4BitLimbs(&c.ESecret)

	plaintext := make([]uints.U8, len(c.PT))
	for i, v := range c.PT {
		plaintext[i] = uints.U8{Val: v}
	}

	result, err := hpke.Seal(api, uapi, crv, wm, fq, eDigits, gTable, &c.RTable, plaintext)
	if err != nil {
		return err
	}
	for i, b := range result.E {
		api.AssertIsEqual(b.Val, c.WantE[i])
	}
	for i, b := range result.CT {
		api.AssertIsEqual(b.Val, c.WantCT[i])
	}
	return nil
}

// TestSeal_MatchesHostReference builds a self-consistent fixture (random
// e, random receiver keypair, random 32-byte plaintext) and checks that the
// in-circuit HPKE seal matches the host-side golang.org/x/crypto mirror
// bit for bit.
func TestSeal_MatchesHostReference(t *testing.T) {
	fixture, err := prover.NewRandomFixture()
	if err != nil {
		t.Fatalf("build fixture: %v", err)
	}

	rPoint := sec1ToHostPoint(t, fixture.R)
	rTable := windowedmul.ConstantTable(windowedmul.BuildTable(rPoint))

	want, err := hpkeref.Seal(fixture.E32, fixture.R, nil, fixture.P32)
	if err != nil {
		t.Fatalf("reference seal: %v", err)
	}

	var witness sealCircuit
	witness.ESecret = emulated.ValueOf[windowedmul.Fn](bytesToBigInt(fixture.E32))
	witness.RTable = *rTable
	for i, b := range fixture.P32 {
		witness.PT[i] = b
	}
	for i, b := range want.E {
		witness.WantE[i] = b
	}
	for i, b := range want.CT {
		witness.WantCT[i] = b
	}

	if err := gnark_test.IsSolved(&sealCircuit{}, &witness, ecc.BN254.ScalarField()); err != nil {
		t.Fatalf("expected solve to succeed: %v", err)
	}
}

func sec1ToHostPoint(t *testing.T, sec1 []byte) windowedmul.HostPoint {
	t.Helper()
	if len(sec1) != 65 || sec1[0] != 0x04 {
		t.Fatalf("expected 65-byte uncompressed SEC1 point")
	}
	return windowedmul.HostPoint{
		X: bytesToBigInt(sec1[1:33]),
		Y: bytesToBigInt(sec1[33:65]),
	}
}

func bytesToBigInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

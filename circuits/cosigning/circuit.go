// Package cosigning is the predicate circuit (§4.11): it wires together the
// curve, windowed-mul, and HPKE gadgets into the single statement this
// whole module exists to prove — "I know (e,p) such that E=e.G, P=p.G, and
// C is the HPKE-Base seal of be32(p) to R under e." The struct layout and
// public-input ordering below is deliberately fixed: any change to field
// order invalidates every previously-issued VerifierData blob (§6, §9).
package cosigning

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/emulated/sw_emulated"
	"github.com/consensys/gnark/std/math/emulated"
	"github.com/consensys/gnark/std/math/uints"

	"github.com/muun/cosigning-zk/gadgets/bitbyte"
	"github.com/muun/cosigning-zk/gadgets/curve"
	"github.com/muun/cosigning-zk/gadgets/hpke"
	"github.com/muun/cosigning-zk/gadgets/nonnative"
	"github.com/muun/cosigning-zk/gadgets/windowedmul"
)

// Circuit is the gnark frontend.Circuit for the cosigning-key predicate.
//
// Field order fixes the public-input layout from §6:
// E (65 bytes) -> P (x,y) -> R's table (64*16 points) -> CT||tag (48 bytes).
type Circuit struct {
	// Secret scalars.
	ESecret emulated.Element[windowedmul.Fn] `gnark:",secret"`
	PSecret emulated.Element[windowedmul.Fn] `gnark:",secret"`

	// Public inputs, in registration order.
	E  [65]uints.U8              `gnark:",public"`
	Px emulated.Element[curve.Fq] `gnark:",public"`
	Py emulated.Element[curve.Fq] `gnark:",public"`
	R  windowedmul.Table          `gnark:",public"`
	CT [48]uints.U8              `gnark:",public"`
}

// gTable caches the generator's constant windowed-mul table across Define
// calls within a single compile (gnark calls Define exactly once per
// compilation, but keeping this as a package-level lazy constant avoids
// recomputing the host-side table-build across multiple circuits sharing
// this package in the same process, e.g. in tests).
var gTable *windowedmul.Table

func generatorTable() *windowedmul.Table {
	if gTable != nil {
		return gTable
	}
	params := sw_emulated.GetSecp256k1Params()
	g := windowedmul.HostPoint{X: params.Gx, Y: params.Gy}
	gTable = windowedmul.ConstantTable(windowedmul.BuildTable(g))
	return gTable
}

func (c *Circuit) Define(api frontend.API) error {
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

	eDigits := fn.Split4BitLimbs(&c.ESecret)
	pDigits := fn.Split4BitLimbs(&c.PSecret)

	gt := generatorTable()

	pPoint := wm.ScalarMul(gt, pDigits)
	fq.Inner().AssertIsEqual(&pPoint.X, &c.Px)
	fq.Inner().AssertIsEqual(&pPoint.Y, &c.Py)

	plaintextVars := fn.ToBytesBE(&c.PSecret)
	plaintext := make([]uints.U8, len(plaintextVars))
	for i, v := range plaintextVars {
		plaintext[i] = uints.U8{Val: v}
	}

	result, err := hpke.Seal(api, uapi, crv, wm, fq, eDigits, gt, &c.R, plaintext)
	if err != nil {
		return err
	}

	if err := bitbyte.ConnectBytes(api, result.E[:], c.E[:]); err != nil {
		return err
	}
	if err := bitbyte.ConnectBytes(api, result.CT, c.CT[:]); err != nil {
		return err
	}
	return nil
}

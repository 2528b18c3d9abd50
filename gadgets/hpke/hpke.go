// Package hpke assembles the single-shot HPKE-Base seal (§4.10) from the
// curve, windowed-mul, hkdf and aead layers: DHKEM(secp256k1, HKDF-SHA256)
// encapsulation, the RFC 9180 key schedule, and a ChaCha20-Poly1305 seal.
package hpke

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/emulated"
	"github.com/consensys/gnark/std/math/uints"

	"github.com/muun/cosigning-zk/gadgets/aead"
	"github.com/muun/cosigning-zk/gadgets/curve"
	"github.com/muun/cosigning-zk/gadgets/hkdf"
	"github.com/muun/cosigning-zk/gadgets/nonnative"
	"github.com/muun/cosigning-zk/gadgets/windowedmul"
)

// Info is the fixed HPKE application info string baked into the predicate.
const Info = "muun.com/cosigning-key/2/2"

// Result bundles the circuit outputs a caller needs to register as public
// inputs: the ephemeral public key and the combined ciphertext||tag.
type Result struct {
	E  [65]uints.U8
	CT []uints.U8 // len = len(plaintext) + 16
}

// Seal runs encap -> key schedule -> AEAD seal for sender ephemeral secret e
// (split into 64 4-bit digits, see nonnative.Field.Split4BitLimbs), the
// generator's constant windowed-mul table, the receiver's windowed-mul
// table (a public input), and a plaintext byte sequence.
func Seal(
	api frontend.API,
	uapi *uints.BinaryField[uints.U8],
	c *curve.Curve,
	wm *windowedmul.Gadget,
	fq *nonnative.Field[curve.Fq],
	eDigits []frontend.Variable,
	gTable *windowedmul.Table,
	rTable *windowedmul.Table,
	plaintext []uints.U8,
) (*Result, error) {
	// Encap.
	ePoint := wm.ScalarMul(gTable, eDigits)
	rPoint := wm.AffinePoint(rTable)
	dhPoint := wm.ScalarMul(rTable, eDigits) // e*R, via R's table and the same digits as e*G

	eBytes := sec1Uncompressed(api, fq, ePoint)
	rBytes := sec1Uncompressed(api, fq, rPoint)
	dhXBytes := fieldBytesBE(api, fq, &dhPoint.X)

	kemContext := make([]uints.U8, 0, 130)
	kemContext = append(kemContext, eBytes[:]...)
	kemContext = append(kemContext, rBytes[:]...)

	eaePrk := hkdf.LabeledExtract(api, uapi, nil, hkdf.SuiteIDKEM(), "eae_prk", dhXBytes)
	sharedSecret := hkdf.LabeledExpand(api, uapi, eaePrk, hkdf.SuiteIDKEM(), "shared_secret", kemContext, 32)

	// Key schedule (mode_base, default psk/psk_id both empty).
	pskIDHash := hkdf.LabeledExtract(api, uapi, nil, hkdf.SuiteIDHPKE(), "psk_id_hash", nil)
	infoBytes := uints.NewU8Array([]byte(Info))
	infoHash := hkdf.LabeledExtract(api, uapi, nil, hkdf.SuiteIDHPKE(), "info_hash", infoBytes)

	ksCtx := make([]uints.U8, 0, 1+32+32)
	ksCtx = append(ksCtx, uints.NewU8(0x00))
	ksCtx = append(ksCtx, pskIDHash...)
	ksCtx = append(ksCtx, infoHash...)

	secret := hkdf.LabeledExtract(api, uapi, sharedSecret, hkdf.SuiteIDHPKE(), "secret", nil)
	key := hkdf.LabeledExpand(api, uapi, secret, hkdf.SuiteIDHPKE(), "key", ksCtx, 32)
	baseNonce := hkdf.LabeledExpand(api, uapi, secret, hkdf.SuiteIDHPKE(), "base_nonce", ksCtx, 12)

	var keyArr [32]uints.U8
	copy(keyArr[:], key)
	var nonceArr [12]uints.U8
	copy(nonceArr[:], baseNonce)

	ct, err := aead.Seal(api, uapi, keyArr, nonceArr, nil, plaintext)
	if err != nil {
		return nil, err
	}

	var eOut [65]uints.U8
	copy(eOut[:], eBytes[:])
	return &Result{E: eOut, CT: ct}, nil
}

// sec1Uncompressed encodes an affine point as 0x04 || X(32 BE) || Y(32 BE).
func sec1Uncompressed(api frontend.API, fq *nonnative.Field[curve.Fq], p *curve.Point) [65]uints.U8 {
	var out [65]uints.U8
	out[0] = uints.NewU8(0x04)
	xb := fieldBytesBE(api, fq, &p.X)
	yb := fieldBytesBE(api, fq, &p.Y)
	copy(out[1:33], xb)
	copy(out[33:65], yb)
	return out
}

func fieldBytesBE(api frontend.API, fq *nonnative.Field[curve.Fq], e *emulated.Element[curve.Fq]) []uints.U8 {
	vars := fq.ToBytesBE(e)
	out := make([]uints.U8, len(vars))
	for i, v := range vars {
		out[i] = uints.U8{Val: v}
	}
	return out
}

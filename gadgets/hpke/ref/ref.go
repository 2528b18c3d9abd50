// Package ref is the host-side HPKE-Base single-shot seal, assembled from
// gadgets/hkdf/ref and gadgets/aead/ref plus secp256k1 Diffie-Hellman via
// decred's pure-Go secp256k1 implementation, the same library family the
// other_examples qbtc circuits' host tooling favors for secp256k1 point
// math outside a circuit. Used to precompute the witness CT the in-circuit
// gadget must reproduce, and as the host-side reference the in-circuit seal
// is checked against on self-generated fixtures; no literal end-to-end test
// vector is reproduced.
package ref

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	aeadref "github.com/muun/cosigning-zk/gadgets/aead/ref"
	hkdfref "github.com/muun/cosigning-zk/gadgets/hkdf/ref"
)

const Info = "muun.com/cosigning-key/2/2"

// Result mirrors gadgets/hpke.Result.
type Result struct {
	E  [65]byte
	CT []byte
}

// Seal runs the full HPKE-Base single-shot seal for sender ephemeral secret
// e (32-byte big-endian scalar) and receiver public key R (65-byte SEC1
// uncompressed).
func Seal(eBE []byte, rSEC1 []byte, aad, plaintext []byte) (*Result, error) {
	e := new(big.Int).SetBytes(eBE)
	e.Mod(e, secp256k1.S256().N)

	_, ePub := secp256k1.PrivKeyFromBytes(leftPad32(e.Bytes()))
	eBytes := [65]byte{}
	copy(eBytes[:], ePub.SerializeUncompressed())

	rx, ry := new(big.Int).SetBytes(rSEC1[1:33]), new(big.Int).SetBytes(rSEC1[33:65])
	rField := secp256k1.FieldVal{}
	rField.SetByteSlice(rx.Bytes())
	ryField := secp256k1.FieldVal{}
	ryField.SetByteSlice(ry.Bytes())
	var rJac secp256k1.JacobianPoint
	rJac.X.Set(&rField)
	rJac.Y.Set(&ryField)
	rJac.Z.SetInt(1)

	var dhJac secp256k1.JacobianPoint
	var scalar secp256k1.ModNScalar
	scalar.SetByteSlice(leftPad32(e.Bytes()))
	secp256k1.ScalarMultNonConst(&scalar, &rJac, &dhJac)
	dhJac.ToAffine()
	dh := dhJac.X.Bytes()

	kemContext := make([]byte, 0, 130)
	kemContext = append(kemContext, eBytes[:]...)
	kemContext = append(kemContext, rSEC1...)

	eaePrk := hkdfref.LabeledExtract(nil, hkdfref.SuiteIDKEM(), "eae_prk", dh[:])
	sharedSecret := hkdfref.LabeledExpand(eaePrk, hkdfref.SuiteIDKEM(), "shared_secret", kemContext, 32)

	pskIDHash := hkdfref.LabeledExtract(nil, hkdfref.SuiteIDHPKE(), "psk_id_hash", nil)
	infoHash := hkdfref.LabeledExtract(nil, hkdfref.SuiteIDHPKE(), "info_hash", []byte(Info))

	ksCtx := make([]byte, 0, 65)
	ksCtx = append(ksCtx, 0x00)
	ksCtx = append(ksCtx, pskIDHash...)
	ksCtx = append(ksCtx, infoHash...)

	secret := hkdfref.LabeledExtract(sharedSecret, hkdfref.SuiteIDHPKE(), "secret", nil)
	key := hkdfref.LabeledExpand(secret, hkdfref.SuiteIDHPKE(), "key", ksCtx, 32)
	baseNonce := hkdfref.LabeledExpand(secret, hkdfref.SuiteIDHPKE(), "base_nonce", ksCtx, 12)

	ct, err := aeadref.Seal(key, baseNonce, aad, plaintext)
	if err != nil {
		return nil, err
	}
	return &Result{E: eBytes, CT: ct}, nil
}

func leftPad32(b []byte) []byte {
	if len(b) >= 32 {
		return b[len(b)-32:]
	}
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}

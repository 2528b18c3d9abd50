// Package hkdf implements HMAC-SHA256 (RFC 2104), HKDF-Extract/Expand
// (RFC 5869) and the RFC 9180 labeled variants, entirely in-circuit over
// byte wires. There is no gnark standard-library HMAC/HKDF gadget, so this
// is built directly from the sha256 and bitbyte packages, the way the
// teacher's own expandMessageXMD_SHA256 composes sha2.New + byte XOR for a
// different RFC-flavored hash construction in eth2_sc_update.go.
package hkdf

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/uints"

	"github.com/muun/cosigning-zk/gadgets/sha256"
)

const blockSize = 64
const hashSize = 32

var (
	ipadByte = byte(0x36)
	opadByte = byte(0x5c)
)

// HMAC computes HMAC-SHA256(key, msg) in-circuit. key may be any length;
// RFC 2104 hashing-down for oversize keys is applied first.
func HMAC(api frontend.API, uapi *uints.BinaryField[uints.U8], key, msg []uints.U8) []uints.U8 {
	k := key
	if len(k) > blockSize {
		sum := sha256.MustSum256(api, k)
		k = sum[:]
	}
	padded := make([]uints.U8, blockSize)
	for i := 0; i < blockSize; i++ {
		if i < len(k) {
			padded[i] = k[i]
		} else {
			padded[i] = uints.NewU8(0)
		}
	}
	ipad := make([]uints.U8, blockSize)
	opad := make([]uints.U8, blockSize)
	for i := 0; i < blockSize; i++ {
		ipad[i] = uapi.Xor(padded[i], uints.NewU8(ipadByte))
		opad[i] = uapi.Xor(padded[i], uints.NewU8(opadByte))
	}

	inner := append(append([]uints.U8{}, ipad...), msg...)
	innerSum := sha256.MustSum256(api, inner)

	outer := append(append([]uints.U8{}, opad...), innerSum[:]...)
	outerSum := sha256.MustSum256(api, outer)
	return outerSum[:]
}

// Extract implements HKDF-Extract(salt, IKM) = HMAC(salt, IKM).
func Extract(api frontend.API, uapi *uints.BinaryField[uints.U8], salt, ikm []uints.U8) []uints.U8 {
	return HMAC(api, uapi, salt, ikm)
}

// Expand implements HKDF-Expand(PRK, info, L): T_i = HMAC(PRK, T_{i-1} || info || i),
// T_0 = empty, concatenated and truncated to L bytes.
func Expand(api frontend.API, uapi *uints.BinaryField[uints.U8], prk, info []uints.U8, length int) []uints.U8 {
	out := make([]uints.U8, 0, length+hashSize)
	var prev []uints.U8
	counter := byte(1)
	for len(out) < length {
		msg := make([]uints.U8, 0, len(prev)+len(info)+1)
		msg = append(msg, prev...)
		msg = append(msg, info...)
		msg = append(msg, uints.NewU8(counter))
		t := HMAC(api, uapi, prk, msg)
		out = append(out, t...)
		prev = t
		counter++
	}
	return out[:length]
}

// Suite identifiers for RFC 9180 labeling, fixed by the chosen ciphersuite:
// DHKEM(secp256k1, HKDF-SHA256) = 0x0016, HKDF-SHA256 = 0x0001,
// ChaCha20Poly1305 = 0x0003.
var (
	kemSuiteID  = []byte{'K', 'E', 'M', 0x00, 0x16}
	hpkeSuiteID = []byte{'H', 'P', 'K', 'E', 0x00, 0x16, 0x00, 0x01, 0x00, 0x03}
)

// SuiteIDKEM and SuiteIDHPKE expose the suite identifiers to callers that
// build labeled_extract/labeled_expand inputs off-circuit (the host-side
// mirror) without duplicating the byte literals.
func SuiteIDKEM() []byte  { return append([]byte{}, kemSuiteID...) }
func SuiteIDHPKE() []byte { return append([]byte{}, hpkeSuiteID...) }

// LabeledExtract implements RFC 9180's LabeledExtract:
// HKDF-Extract(salt, "HPKE-v1" || suite_id || label || IKM).
func LabeledExtract(api frontend.API, uapi *uints.BinaryField[uints.U8], salt []uints.U8, suiteID []byte, label string, ikm []uints.U8) []uints.U8 {
	labeledIKM := make([]uints.U8, 0, 7+len(suiteID)+len(label)+len(ikm))
	labeledIKM = append(labeledIKM, uints.NewU8Array([]byte("HPKE-v1"))...)
	labeledIKM = append(labeledIKM, uints.NewU8Array(suiteID)...)
	labeledIKM = append(labeledIKM, uints.NewU8Array([]byte(label))...)
	labeledIKM = append(labeledIKM, ikm...)
	return Extract(api, uapi, salt, labeledIKM)
}

// LabeledExpand implements RFC 9180's LabeledExpand:
// HKDF-Expand(PRK, I2OSP(L,2) || "HPKE-v1" || suite_id || label || info, L).
func LabeledExpand(api frontend.API, uapi *uints.BinaryField[uints.U8], prk []uints.U8, suiteID []byte, label string, info []uints.U8, length int) []uints.U8 {
	labeledInfo := make([]uints.U8, 0, 2+7+len(suiteID)+len(label)+len(info))
	labeledInfo = append(labeledInfo, uints.NewU8(byte(length>>8)), uints.NewU8(byte(length)))
	labeledInfo = append(labeledInfo, uints.NewU8Array([]byte("HPKE-v1"))...)
	labeledInfo = append(labeledInfo, uints.NewU8Array(suiteID)...)
	labeledInfo = append(labeledInfo, uints.NewU8Array([]byte(label))...)
	labeledInfo = append(labeledInfo, info...)
	return Expand(api, uapi, prk, labeledInfo, length)
}

// Package ref is a host-side (out-of-circuit) mirror of gadgets/hkdf,
// built directly on golang.org/x/crypto/hkdf rather than hand-rolled
// HMAC/HKDF, since this code never runs inside the constraint system — it
// exists purely to precompute witnesses for the in-circuit gadget and to
// cross-check it against RFC 5869 test vectors.
package ref

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// Extract mirrors gadgets/hkdf.Extract.
func Extract(salt, ikm []byte) []byte {
	return hkdf.Extract(sha256.New, ikm, salt)
}

// Expand mirrors gadgets/hkdf.Expand.
func Expand(prk, info []byte, length int) []byte {
	r := hkdf.Expand(sha256.New, prk, info)
	out := make([]byte, length)
	if _, err := io.ReadFull(r, out); err != nil {
		panic(err)
	}
	return out
}

var (
	kemSuiteID  = []byte{'K', 'E', 'M', 0x00, 0x16}
	hpkeSuiteID = []byte{'H', 'P', 'K', 'E', 0x00, 0x16, 0x00, 0x01, 0x00, 0x03}
)

func SuiteIDKEM() []byte  { return append([]byte{}, kemSuiteID...) }
func SuiteIDHPKE() []byte { return append([]byte{}, hpkeSuiteID...) }

// LabeledExtract mirrors gadgets/hkdf.LabeledExtract.
func LabeledExtract(salt []byte, suiteID []byte, label string, ikm []byte) []byte {
	labeledIKM := make([]byte, 0, 7+len(suiteID)+len(label)+len(ikm))
	labeledIKM = append(labeledIKM, "HPKE-v1"...)
	labeledIKM = append(labeledIKM, suiteID...)
	labeledIKM = append(labeledIKM, label...)
	labeledIKM = append(labeledIKM, ikm...)
	return Extract(salt, labeledIKM)
}

// LabeledExpand mirrors gadgets/hkdf.LabeledExpand.
func LabeledExpand(prk []byte, suiteID []byte, label string, info []byte, length int) []byte {
	labeledInfo := make([]byte, 0, 2+7+len(suiteID)+len(label)+len(info))
	labeledInfo = append(labeledInfo, byte(length>>8), byte(length))
	labeledInfo = append(labeledInfo, "HPKE-v1"...)
	labeledInfo = append(labeledInfo, suiteID...)
	labeledInfo = append(labeledInfo, label...)
	labeledInfo = append(labeledInfo, info...)
	return Expand(prk, labeledInfo, length)
}

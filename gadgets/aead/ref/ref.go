// Package ref is a host-side mirror of gadgets/aead, built on
// golang.org/x/crypto/chacha20poly1305 — used for witness precomputation
// (the prover needs CT before it can assign the in-circuit witness that
// proves CT was derived correctly) and for RFC 8439 cross-checks.
package ref

import "golang.org/x/crypto/chacha20poly1305"

// Seal mirrors gadgets/aead.Seal: key must be 32 bytes, nonce 12 bytes.
// Returns ciphertext||tag.
func Seal(key, nonce, aad, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, nonce, plaintext, aad), nil
}

// Open mirrors the corresponding decrypt path, used only by tests (the
// predicate circuit itself never implements an open/decrypt gadget — that
// is an explicit non-goal).
func Open(key, nonce, aad, ciphertext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, nonce, ciphertext, aad)
}

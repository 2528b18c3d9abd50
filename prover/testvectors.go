package prover

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	hpkeref "github.com/muun/cosigning-zk/gadgets/hpke/ref"
)

// Fixture is a self-consistent statement-and-witness pair: (E,R,P,CT) with
// a matching (e,p) that actually satisfies the predicate, plus the
// receiver's secret key so a test can additionally exercise HPKE open/
// decrypt-style cross-checks outside the circuit if it wants to.
type Fixture struct {
	E32 []byte // sender ephemeral secret e, 32 bytes big-endian
	P32 []byte // plaintext scalar p, 32 bytes big-endian
	R32 []byte // receiver secret key, 32 bytes big-endian (not a circuit input)

	E  []byte // 65 bytes SEC1 uncompressed, e*G
	R  []byte // 65 bytes SEC1 uncompressed, receiver public key
	P  []byte // 65 bytes SEC1 uncompressed, p*G
	CT []byte // 48 bytes ciphertext||tag
}

// NewConsistentFixture draws two random secp256k1 scalars (e, p) and a
// random receiver keypair, then runs the real HPKE-Base seal so the
// returned Fixture is guaranteed to satisfy the predicate — the Go
// counterpart of the original implementation's testing harness that built
// fixtures this way rather than hand-crafting test-vector bytes.
func NewConsistentFixture(rnd io.Reader) (*Fixture, error) {
	n := secp256k1.S256().N

	e, err := randScalar(rnd, n)
	if err != nil {
		return nil, fmt.Errorf("draw e: %w", err)
	}
	p, err := randScalar(rnd, n)
	if err != nil {
		return nil, fmt.Errorf("draw p: %w", err)
	}
	r, err := randScalar(rnd, n)
	if err != nil {
		return nil, fmt.Errorf("draw r: %w", err)
	}

	ePub := scalarBaseMult(e)
	pPub := scalarBaseMult(p)
	rPub := scalarBaseMult(r)

	plaintext := leftPad32(p.Bytes())

	result, err := hpkeref.Seal(leftPad32(e.Bytes()), rPub, nil, plaintext)
	if err != nil {
		return nil, fmt.Errorf("seal: %w", err)
	}

	return &Fixture{
		E32: leftPad32(e.Bytes()),
		P32: leftPad32(p.Bytes()),
		R32: leftPad32(r.Bytes()),
		E:   result.E[:],
		R:   rPub,
		P:   pPub,
		CT:  result.CT,
	}, nil
}

// NewRandomFixture is NewConsistentFixture seeded from crypto/rand, the
// convenience entry point tests reach for when they don't need a
// reproducible seed.
func NewRandomFixture() (*Fixture, error) {
	return NewConsistentFixture(rand.Reader)
}

func randScalar(rnd io.Reader, n *big.Int) (*big.Int, error) {
	for {
		buf := make([]byte, 32)
		if _, err := io.ReadFull(rnd, buf); err != nil {
			return nil, err
		}
		v := new(big.Int).SetBytes(buf)
		if v.Sign() != 0 && v.Cmp(n) < 0 {
			return v, nil
		}
	}
}

func scalarBaseMult(k *big.Int) []byte {
	_, pub := secp256k1.PrivKeyFromBytes(leftPad32(k.Bytes()))
	return pub.SerializeUncompressed()
}

func leftPad32(b []byte) []byte {
	if len(b) >= 32 {
		return b[len(b)-32:]
	}
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}

package aead

import "math/big"

// Poly1305Field is a gnark emulated.FieldParams instance for p = 2^130-5,
// the Poly1305 one-time MAC's working field. gnark's std/math/emulated is
// explicitly designed to be instantiated for an arbitrary modulus (secp256k1's
// Fp/Fr are just two built-in instances of the same generic machinery), so
// Poly1305's accumulator is expressed the same way rather than as a bespoke
// 130-bit integer type.
type Poly1305Field struct{}

func (Poly1305Field) NbLimbs() uint     { return 4 }
func (Poly1305Field) BitsPerLimb() uint { return 64 }
func (Poly1305Field) IsPrime() bool     { return true }
func (Poly1305Field) Modulus() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 130)
	p.Sub(p, big.NewInt(5))
	return p
}

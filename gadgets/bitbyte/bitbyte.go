// Package bitbyte provides the bottom layer of the circuit stack: boolean
// and byte wires, constant/connect helpers, byte XOR, and bit<->byte
// packing. Bit ordering within a byte is MSB-first throughout, matching the
// wire convention used everywhere above this package.
package bitbyte

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/uints"
)

// ConstantBytes lifts a Go byte slice to a slice of constant uints.U8 wires.
func ConstantBytes(b []byte) []uints.U8 {
	return uints.NewU8Array(b)
}

// ConnectBytes asserts two byte sequences are equal, byte by byte. Mismatched
// lengths are a structural error caught at circuit-build time, same as the
// teacher's fixed-size [N]uints.U8 comparisons in eth2_sc_update.go.
func ConnectBytes(api frontend.API, a, b []uints.U8) error {
	if len(a) != len(b) {
		return &LengthMismatchError{Want: len(a), Got: len(b)}
	}
	for i := range a {
		api.AssertIsEqual(a[i].Val, b[i].Val)
	}
	return nil
}

// LengthMismatchError is returned by ConnectBytes when the two operands
// have different lengths.
type LengthMismatchError struct {
	Want, Got int
}

func (e *LengthMismatchError) Error() string {
	return "bitbyte: connect_bytes length mismatch"
}

// XorBytes XORs two equal-length byte sequences wire-wise.
func XorBytes(uapi *uints.BinaryField[uints.U8], a, b []uints.U8) []uints.U8 {
	out := make([]uints.U8, len(a))
	for i := range a {
		out[i] = uapi.Xor(a[i], b[i])
	}
	return out
}

// RegisterPublicBytes decomposes each byte of a sequence into its bits,
// MSB-first, and asserts every bit boolean. It creates no public wires
// itself; the predicate circuit declares E and CT as public byte fields
// (one variable per byte) and does not call this function.
func RegisterPublicBytes(api frontend.API, bytes []uints.U8) {
	for _, b := range bytes {
		bits := UnpackByteToBits(api, b)
		for _, bit := range bits {
			api.AssertIsBoolean(bit)
		}
	}
}

// UnpackByteToBits decomposes a single byte wire into 8 boolean wires,
// bit 0 = most significant, by decomposing b.Val with api.ToBinary (which
// yields LSB-first bits) and reversing the order.
func UnpackByteToBits(api frontend.API, b uints.U8) []frontend.Variable {
	bits := api.ToBinary(b.Val, 8) // LSB-first
	out := make([]frontend.Variable, 8)
	for i := 0; i < 8; i++ {
		out[i] = bits[8-1-i]
	}
	return out
}

// PackBitsToByte is the inverse of UnpackByteToBits.
func PackBitsToByte(api frontend.API, bitsMSBFirst []frontend.Variable) uints.U8 {
	v := frontend.Variable(0)
	for i := 0; i < 8; i++ {
		v = api.Add(api.Mul(v, 2), bitsMSBFirst[i])
	}
	return uints.U8{Val: v}
}

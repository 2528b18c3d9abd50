// Package u32 implements 32-bit limb arithmetic with explicit carry/borrow
// wires, following the bit-decomposition idiom the teacher circuit uses for
// its own limb serialization (serializeLimbTo8Bytes / serializeUint64ToChunk
// in eth2_sc_update.go): a limb is range-checked by decomposing it with
// api.ToBinary and reassembled with api.Add/api.Mul, rather than trusting an
// unconstrained frontend.Variable to already sit in [0, 2^32).
package u32

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
)

const bits = 32

// Wire is a 32-bit limb: a single frontend.Variable known (by construction
// or by an explicit RangeCheck call) to lie in [0, 2^32).
type Wire struct {
	V frontend.Variable
}

// Const builds a constant u32 wire from a Go value.
func Const(v uint32) Wire { return Wire{V: v} }

// Zero and One are the obvious constants.
func Zero() Wire { return Wire{V: 0} }
func One() Wire  { return Wire{V: 1} }

// RangeCheck asserts w lies in [0, 2^32) by decomposing it to 32 bits: the
// "strict range check" for a limb received from outside the circuit.
func RangeCheck(api frontend.API, w Wire) {
	api.ToBinary(w.V, bits)
}

// Unsafe wraps a variable as a u32 wire without emitting a range check, for
// callers who can prove the range holds externally (e.g. a windowed-mul
// table entry that is only ever read back through an already-checked
// random-access gadget).
func Unsafe(v frontend.Variable) Wire { return Wire{V: v} }

// ToBits splits w into 32 little-endian boolean wires.
func ToBits(api frontend.API, w Wire) []frontend.Variable {
	return api.ToBinary(w.V, bits)
}

// FromBits reassembles a little-endian bit list into a u32 wire.
func FromBits(api frontend.API, bitsLE []frontend.Variable) Wire {
	return Wire{V: api.FromBinary(bitsLE...)}
}

// AddU32 returns (sum, carry) for a+b, both already-range-checked u32s.
func AddU32(api frontend.API, a, b Wire) (Wire, Wire) {
	raw := api.Add(a.V, b.V)
	return splitSumCarry(api, raw)
}

// AddU32sWithCarry folds a list of u32s plus an incoming carry into a single
// (sum, carry-out) pair, covering the schoolbook "sum several limbs at once"
// case of a multi-term column sum.
func AddU32sWithCarry(api frontend.API, in []Wire, cin Wire) (Wire, Wire) {
	raw := frontend.Variable(cin.V)
	for _, w := range in {
		raw = api.Add(raw, w.V)
	}
	return splitWideSumCarry(api, raw, len(in)+1)
}

// splitSumCarry handles the two-operand case, where the sum fits in 33 bits.
func splitSumCarry(api frontend.API, raw frontend.Variable) (Wire, Wire) {
	bitsOut := api.ToBinary(raw, bits+1)
	sum := api.FromBinary(bitsOut[:bits]...)
	carry := bitsOut[bits]
	return Wire{V: sum}, Wire{V: carry}
}

// splitWideSumCarry handles up to n operands (sum fits in bits+ceil(log2 n)).
func splitWideSumCarry(api frontend.API, raw frontend.Variable, n int) (Wire, Wire) {
	extra := 1
	for (1 << extra) < n {
		extra++
	}
	bitsOut := api.ToBinary(raw, bits+extra)
	sum := api.FromBinary(bitsOut[:bits]...)
	carry := api.FromBinary(bitsOut[bits:]...)
	return Wire{V: sum}, Wire{V: carry}
}

// SubU32 returns (diff, borrow_out) for a-b-borrowIn, so that chaining it
// limb by limb propagates the borrow across a multi-limb subtraction.
func SubU32(api frontend.API, a, b, borrowIn Wire) (Wire, Wire) {
	// a - b - borrowIn, biased by 2^32 so the result is always non-negative
	// before range-checking: the high bit of the (bits+1)-bit decomposition
	// is the borrow-out, inverted.
	bias := new(big.Int).Lsh(big.NewInt(1), bits)
	raw := api.Add(a.V, bias)
	raw = api.Sub(raw, b.V)
	raw = api.Sub(raw, borrowIn.V)
	bitsOut := api.ToBinary(raw, bits+1)
	diff := api.FromBinary(bitsOut[:bits]...)
	borrowOut := api.Sub(1, bitsOut[bits])
	return Wire{V: diff}, Wire{V: borrowOut}
}

// MulAddU32 returns (lo, hi) for a*b+c, the schoolbook multiply-accumulate
// primitive.
func MulAddU32(api frontend.API, a, b, c Wire) (Wire, Wire) {
	raw := api.Add(api.Mul(a.V, b.V), c.V)
	bitsOut := api.ToBinary(raw, 2*bits)
	lo := api.FromBinary(bitsOut[:bits]...)
	hi := api.FromBinary(bitsOut[bits:]...)
	return Wire{V: lo}, Wire{V: hi}
}

// AddMod returns a+b mod 2^32, the ChaCha20 quarter-round addition (carry
// discarded, matching the RFC 8439 32-bit wraparound semantics).
func AddMod(api frontend.API, a, b Wire) Wire {
	sum, _ := AddU32(api, a, b)
	return sum
}

// Xor returns a^b bit-wise over 32-bit wires.
func Xor(api frontend.API, a, b Wire) Wire {
	ab := ToBits(api, a)
	bb := ToBits(api, b)
	out := make([]frontend.Variable, bits)
	for i := 0; i < bits; i++ {
		// x^y = x+y-2xy for boolean x,y
		out[i] = api.Sub(api.Add(ab[i], bb[i]), api.Mul(2, api.Mul(ab[i], bb[i])))
	}
	return FromBits(api, out)
}

// Rotl rotates w left by n bits (0 <= n < 32), the ChaCha20 quarter-round
// rotation step.
func Rotl(api frontend.API, w Wire, n int) Wire {
	n = n % bits
	if n == 0 {
		return w
	}
	b := ToBits(api, w) // little-endian
	out := make([]frontend.Variable, bits)
	for i := 0; i < bits; i++ {
		out[(i+n)%bits] = b[i]
	}
	return FromBits(api, out)
}

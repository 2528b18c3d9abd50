// Package windowedmul implements the precomputed-table windowed scalar
// multiplication scheme from §4.6: a 64x16 table of j*16^i*P + R_off,
// random-accessed per 4-bit scalar digit and summed from a second offset
// R_start, with both offsets subtracted at the end. Every intermediate sum
// is non-identity because each addend carries the same random shift, which
// is what makes it safe to use incomplete affine addition throughout.
package windowedmul

import (
	"crypto/sha256"
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/emulated"

	"github.com/muun/cosigning-zk/gadgets/curve"
)

const (
	NbRows    = 64
	NbCols    = 16
	digitBits = 4
)

// Fn is the secp256k1 scalar field, re-exported so callers splitting a
// scalar into digits (nonnative.Field[Fn].Split4BitLimbs) don't need to
// import gadgets/curve or gadgets/nonnative directly just for this alias.
type Fn = curve.Fn

// Table is the in-circuit table shape: NbRows*NbCols affine points.
type Table [NbRows][NbCols]curve.Point

// HostPoint is a plain (x,y) pair for host-side (witness-computation-time
// or table-building-time) elliptic curve arithmetic, kept deliberately free
// of any circuit dependency.
type HostPoint struct {
	X, Y *big.Int
}

// nothingUpMySleevePoint derives a deterministic secp256k1 point from a
// human-readable ASCII label via SHA-256 hash-and-increment on the
// x-coordinate, per the spec's "hashing a fixed ASCII string to a
// compressed-point byte" procedure. It never touches randomness, so calling
// it twice with the same label in the same process reproduces the same
// point bit-for-bit — required for VerifierData determinism.
func nothingUpMySleevePoint(label string) HostPoint {
	p := secp256k1FieldPrime()
	counter := uint32(0)
	for {
		h := sha256.Sum256(append([]byte(label), beUint32(counter)...))
		x := new(big.Int).SetBytes(h[:])
		x.Mod(x, p)
		if y, ok := liftX(x); ok {
			return HostPoint{X: x, Y: y}
		}
		counter++
	}
}

func beUint32(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

// ROffLabel and RStartLabel are the ASCII seeds for the two nothing-up-my-
// sleeve offsets windowed-mul needs.
const (
	ROffLabel   = "muun.com/cosigning-key/2/2/nums/R_off"
	RStartLabel = "muun.com/cosigning-key/2/2/nums/R_start"
)

// ROff and RStart are computed once, deterministically, and reused as
// circuit constants everywhere the windowed-mul gadget is instantiated.
func ROff() HostPoint   { return nothingUpMySleevePoint(ROffLabel) }
func RStart() HostPoint { return nothingUpMySleevePoint(RStartLabel) }

// BuildTable computes T[i][j] = j*16^i*P + R_off on the host, for use both
// as a witness (proving) and as the verifier's independent reconstruction
// of R's table from the raw receiver public key (the soundness-critical
// check of §4.6).
func BuildTable(p HostPoint) [NbRows][NbCols]HostPoint {
	var table [NbRows][NbCols]HostPoint
	roff := ROff()
	base := p
	for i := 0; i < NbRows; i++ {
		acc := base
		table[i][0] = roff
		for j := 1; j < NbCols; j++ {
			table[i][j] = hostAdd(acc, roff)
			acc = hostAdd(acc, base)
		}
		// base <- 16*base for the next row
		for k := 0; k < digitBits; k++ {
			base = hostDouble(base)
		}
	}
	return table
}

// GetAffinePoint recovers the underlying point P from its table:
// T[0][1] - R_off = P.
func GetAffinePoint(table [NbRows][NbCols]HostPoint) HostPoint {
	return hostSub(table[0][1], ROff())
}

// Gadget is the in-circuit random-access and accumulation engine.
type Gadget struct {
	c     *curve.Curve
	api   frontend.API
	rOff  curve.Point
	rStrt curve.Point
	// correction = 64 * R_off, subtracted once at the end together with
	// R_start, so the result equals the sum of the 64 unshifted digits.
	correction curve.Point
}

func New(api frontend.API, c *curve.Curve) *Gadget {
	roff := ROff()
	rstart := RStart()
	g := &Gadget{
		c:   c,
		api: api,
		rOff: curve.Point{
			X: emulated.ValueOf[curve.Fq](roff.X),
			Y: emulated.ValueOf[curve.Fq](roff.Y),
		},
		rStrt: curve.Point{
			X: emulated.ValueOf[curve.Fq](rstart.X),
			Y: emulated.ValueOf[curve.Fq](rstart.Y),
		},
	}
	corr := roff
	for i := 1; i < NbRows; i++ {
		corr = hostAdd(corr, roff)
	}
	g.correction = curve.Point{
		X: emulated.ValueOf[curve.Fq](corr.X),
		Y: emulated.ValueOf[curve.Fq](corr.Y),
	}
	return g
}

// ScalarMul computes k*P given a precomputed table for P (public input or
// constant) and k split into 64 little-endian 4-bit digits (see
// nonnative.Field.Split4BitLimbs).
func (g *Gadget) ScalarMul(table *Table, digits []frontend.Variable) *curve.Point {
	if len(digits) != NbRows {
		panic("windowedmul: expected 64 digits")
	}
	acc := g.rStrt
	for i := 0; i < NbRows; i++ {
		entry := g.randomAccessRow(table[i][:], digits[i])
		acc = *g.c.Add(&acc, entry)
	}
	acc = *g.c.Add(&acc, g.c.Neg(&g.rStrt))
	acc = *g.c.Add(&acc, g.c.Neg(&g.correction))
	return &acc
}

// ConstantTable lifts a host-computed table into circuit constants, used
// for the generator's table, which is baked into the circuit once at
// precompute() time rather than supplied as a witness or public input.
func ConstantTable(hostTable [NbRows][NbCols]HostPoint) *Table {
	var t Table
	for i := 0; i < NbRows; i++ {
		for j := 0; j < NbCols; j++ {
			t[i][j] = curve.Point{
				X: emulated.ValueOf[curve.Fq](hostTable[i][j].X),
				Y: emulated.ValueOf[curve.Fq](hostTable[i][j].Y),
			}
		}
	}
	return &t
}

// AffinePoint recovers the underlying point from its in-circuit table:
// table[0][1] - R_off, the in-circuit counterpart of the host-side
// GetAffinePoint used to build the witness in the first place.
func (g *Gadget) AffinePoint(table *Table) *curve.Point {
	return g.c.Add(&table[0][1], g.c.Neg(&g.rOff))
}

// randomAccessRow selects table[j] for the row's 4-bit digit value j, via a
// binary mux tree over the digit's bit decomposition — gnark's sw_emulated
// Select is the library's own conditional-point primitive; composing 15 of
// them is the standard way to build an n-ary lookup when the std library
// does not ship a point-valued lookup table gadget directly (it ships one
// for frontend.Variable via std/lookup, not for non-native curve points).
func (g *Gadget) randomAccessRow(row []curve.Point, digit frontend.Variable) *curve.Point {
	bits := g.api.ToBinary(digit, digitBits) // bits[0] = LSB
	cur := make([]curve.Point, len(row))
	copy(cur, row)
	for level := 0; level < digitBits; level++ {
		b := bits[level]
		next := make([]curve.Point, len(cur)/2)
		for i := range next {
			next[i] = *g.c.Select(b, &cur[2*i+1], &cur[2*i])
		}
		cur = next
	}
	return &cur[0]
}

// --- host-side secp256k1 arithmetic (pure big.Int, no circuit) ---

func secp256k1FieldPrime() *big.Int {
	p, _ := new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)
	return p
}

func secp256k1B() *big.Int {
	return big.NewInt(7)
}

// liftX returns y such that y^2 = x^3+7 mod p, preferring the even root, or
// ok=false if x is not a valid abscissa.
func liftX(x *big.Int) (*big.Int, bool) {
	p := secp256k1FieldPrime()
	rhs := new(big.Int).Exp(x, big.NewInt(3), p)
	rhs.Add(rhs, secp256k1B())
	rhs.Mod(rhs, p)
	// p ≡ 3 mod 4 for secp256k1, so sqrt(rhs) = rhs^((p+1)/4) mod p when a
	// root exists.
	exp := new(big.Int).Add(p, big.NewInt(1))
	exp.Rsh(exp, 2)
	y := new(big.Int).Exp(rhs, exp, p)
	check := new(big.Int).Exp(y, big.NewInt(2), p)
	if check.Cmp(rhs) != 0 {
		return nil, false
	}
	if y.Bit(0) != 0 {
		y.Sub(p, y)
	}
	return y, true
}

func hostDouble(a HostPoint) HostPoint {
	return hostAdd(a, a)
}

func hostAdd(a, b HostPoint) HostPoint {
	p := secp256k1FieldPrime()
	var lambda *big.Int
	if a.X.Cmp(b.X) == 0 && a.Y.Cmp(b.Y) == 0 {
		// doubling: lambda = 3x^2 / 2y
		num := new(big.Int).Mul(a.X, a.X)
		num.Mul(num, big.NewInt(3))
		den := new(big.Int).Mul(a.Y, big.NewInt(2))
		lambda = fieldDiv(num, den, p)
	} else {
		num := new(big.Int).Sub(b.Y, a.Y)
		den := new(big.Int).Sub(b.X, a.X)
		lambda = fieldDiv(num, den, p)
	}
	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, a.X)
	x3.Sub(x3, b.X)
	x3.Mod(x3, p)
	y3 := new(big.Int).Sub(a.X, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, a.Y)
	y3.Mod(y3, p)
	return HostPoint{X: x3, Y: y3}
}

func hostSub(a, b HostPoint) HostPoint {
	p := secp256k1FieldPrime()
	negB := HostPoint{X: new(big.Int).Set(b.X), Y: new(big.Int).Sub(p, b.Y)}
	negB.Y.Mod(negB.Y, p)
	return hostAdd(a, negB)
}

func fieldDiv(num, den, p *big.Int) *big.Int {
	inv := new(big.Int).ModInverse(den, p)
	out := new(big.Int).Mul(num, inv)
	out.Mod(out, p)
	return out
}

// Package aead implements ChaCha20-Poly1305 (RFC 8439) entirely in-circuit:
// the ChaCha20 block function and keystream, the Poly1305 one-time MAC, and
// the combined AEAD seal the HPKE layer calls. There is no existing gnark
// gadget for either primitive, so both are built from the u32 and bitbyte
// layers below, the same "compose from the layer beneath" discipline the
// teacher uses when its own eth2 circuit builds RFC 9380 hash-to-curve out
// of sha2.New and byte XOR.
package aead

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/emulated"
	"github.com/consensys/gnark/std/math/uints"

	"github.com/muun/cosigning-zk/gadgets/nonnative"
	"github.com/muun/cosigning-zk/gadgets/u32"
)

var chachaConstants = [4]uint32{0x61707865, 0x3320646e, 0x79622d32, 0x6b206574}

// wordLE packs 4 little-endian byte wires into a u32 wire.
func wordLE(api frontend.API, b0, b1, b2, b3 uints.U8) u32.Wire {
	bits := make([]frontend.Variable, 32)
	for i, bv := range []frontend.Variable{b0.Val, b1.Val, b2.Val, b3.Val} {
		bb := api.ToBinary(bv, 8)
		copy(bits[i*8:i*8+8], bb)
	}
	return u32.FromBits(api, bits)
}

// bytesLE unpacks a u32 wire into 4 little-endian byte wires.
func bytesLE(api frontend.API, w u32.Wire) [4]uints.U8 {
	bits := u32.ToBits(api, w)
	var out [4]uints.U8
	for i := 0; i < 4; i++ {
		out[i] = uints.U8{Val: api.FromBinary(bits[i*8 : i*8+8]...)}
	}
	return out
}

func wordsFromBytesLE(api frontend.API, b []uints.U8) []u32.Wire {
	n := len(b) / 4
	out := make([]u32.Wire, n)
	for i := 0; i < n; i++ {
		out[i] = wordLE(api, b[4*i], b[4*i+1], b[4*i+2], b[4*i+3])
	}
	return out
}

func bytesFromWordsLE(api frontend.API, w []u32.Wire) []uints.U8 {
	out := make([]uints.U8, 0, len(w)*4)
	for _, word := range w {
		bs := bytesLE(api, word)
		out = append(out, bs[:]...)
	}
	return out
}

func quarterRound(api frontend.API, a, b, c, d u32.Wire) (u32.Wire, u32.Wire, u32.Wire, u32.Wire) {
	a = u32.AddMod(api, a, b)
	d = u32.Xor(api, d, a)
	d = u32.Rotl(api, d, 16)

	c = u32.AddMod(api, c, d)
	b = u32.Xor(api, b, c)
	b = u32.Rotl(api, b, 12)

	a = u32.AddMod(api, a, b)
	d = u32.Xor(api, d, a)
	d = u32.Rotl(api, d, 8)

	c = u32.AddMod(api, c, d)
	b = u32.Xor(api, b, c)
	b = u32.Rotl(api, b, 7)

	return a, b, c, d
}

// block runs the ChaCha20 block function over a 16-word initial state and
// returns the 16-word output (after the final state-add), per RFC 8439 §2.3.
func block(api frontend.API, state [16]u32.Wire) [16]u32.Wire {
	working := state
	doubleRound := func(s [16]u32.Wire) [16]u32.Wire {
		s[0], s[4], s[8], s[12] = quarterRound(api, s[0], s[4], s[8], s[12])
		s[1], s[5], s[9], s[13] = quarterRound(api, s[1], s[5], s[9], s[13])
		s[2], s[6], s[10], s[14] = quarterRound(api, s[2], s[6], s[10], s[14])
		s[3], s[7], s[11], s[15] = quarterRound(api, s[3], s[7], s[11], s[15])
		s[0], s[5], s[10], s[15] = quarterRound(api, s[0], s[5], s[10], s[15])
		s[1], s[6], s[11], s[12] = quarterRound(api, s[1], s[6], s[11], s[12])
		s[2], s[7], s[8], s[13] = quarterRound(api, s[2], s[7], s[8], s[13])
		s[3], s[4], s[9], s[14] = quarterRound(api, s[3], s[4], s[9], s[14])
		return s
	}
	for i := 0; i < 10; i++ {
		working = doubleRound(working)
	}
	var out [16]u32.Wire
	for i := range out {
		out[i] = u32.AddMod(api, working[i], state[i])
	}
	return out
}

func initialState(api frontend.API, keyWords [8]u32.Wire, counter u32.Wire, nonceWords [3]u32.Wire) [16]u32.Wire {
	var s [16]u32.Wire
	for i, c := range chachaConstants {
		s[i] = u32.Const(c)
	}
	for i := 0; i < 8; i++ {
		s[4+i] = keyWords[i]
	}
	s[12] = counter
	s[13] = nonceWords[0]
	s[14] = nonceWords[1]
	s[15] = nonceWords[2]
	return s
}

// Keystream produces nbBlocks*64 bytes of ChaCha20 keystream starting at the
// given initial counter value.
func Keystream(api frontend.API, key [32]uints.U8, nonce [12]uints.U8, initialCounter uint32, nbBlocks int) []uints.U8 {
	keyWords := [8]u32.Wire{}
	kw := wordsFromBytesLE(api, key[:])
	copy(keyWords[:], kw)
	nonceWords := [3]u32.Wire{}
	nw := wordsFromBytesLE(api, nonce[:])
	copy(nonceWords[:], nw)

	out := make([]uints.U8, 0, nbBlocks*64)
	for b := 0; b < nbBlocks; b++ {
		counter := u32.Const(initialCounter + uint32(b))
		state := initialState(api, keyWords, counter, nonceWords)
		outState := block(api, state)
		out = append(out, bytesFromWordsLE(api, outState[:])...)
	}
	return out
}

// EncryptXOR encrypts (or decrypts) plaintext by XORing it with the ChaCha20
// keystream starting at counter=1, per RFC 8439's AEAD construction.
func EncryptXOR(api frontend.API, uapi *uints.BinaryField[uints.U8], key [32]uints.U8, nonce [12]uints.U8, plaintext []uints.U8) []uints.U8 {
	nbBlocks := (len(plaintext) + 63) / 64
	ks := Keystream(api, key, nonce, 1, nbBlocks)
	out := make([]uints.U8, len(plaintext))
	for i := range plaintext {
		out[i] = uapi.Xor(plaintext[i], ks[i])
	}
	return out
}

// Poly1305KeyPair splits a 32-byte one-time key into clamped r and s, per
// RFC 8439 §2.5.1.
func Poly1305KeyPair(api frontend.API, key [32]uints.U8) (r, s [16]uints.U8) {
	copy(r[:], key[:16])
	copy(s[:], key[16:])
	mask := func(i int, clearBits uint8) {
		bits := api.ToBinary(r[i].Val, 8)
		cleared := uint8(0)
		for bit := 0; bit < 8; bit++ {
			if clearBits&(1<<uint(bit)) != 0 {
				bits[bit] = 0
				cleared |= 1 << uint(bit)
			}
		}
		r[i] = uints.U8{Val: api.FromBinary(bits...)}
	}
	mask(3, 0xf0)
	mask(7, 0xf0)
	mask(11, 0xf0)
	mask(15, 0xf0)
	mask(4, 0x03)
	mask(8, 0x03)
	mask(12, 0x03)
	return r, s
}

// Poly1305MAC computes the 16-byte Poly1305 tag over msg using one-time key
// parts r (clamped) and s, per RFC 8439 §2.5.
func Poly1305MAC(api frontend.API, r, s [16]uints.U8, msg []uints.U8) ([16]uints.U8, error) {
	f, err := nonnative.New[Poly1305Field](api)
	if err != nil {
		return [16]uints.U8{}, err
	}
	rVal := bytesLEToElement(api, f, r[:])
	acc := f.Inner().Zero()

	n := len(msg)
	for off := 0; off < n; off += 16 {
		end := off + 16
		if end > n {
			end = n
		}
		chunk := msg[off:end]
		limbBytes := make([]frontend.Variable, 17)
		for i := range limbBytes {
			limbBytes[i] = frontend.Variable(0)
		}
		for i, b := range chunk {
			limbBytes[i] = b.Val
		}
		limbBytes[len(chunk)] = 1 // append the implicit 1 bit as a whole byte
		block := bytesLEToElementVar(api, f, limbBytes)
		acc = f.Inner().Add(acc, block)
		acc = f.Inner().Mul(acc, rVal)
	}
	// The tag is (acc + s) mod 2^128 over the integers, not mod p: add s to
	// the low 128 bits of the reduced accumulator natively and keep the low
	// 128 bits of that sum.
	accBits := f.Inner().ToBits(f.Inner().Reduce(acc))
	sum := api.FromBinary(accBits[:128]...)
	for i := 0; i < 16; i++ {
		sum = api.Add(sum, api.Mul(s[i].Val, new(big.Int).Lsh(big.NewInt(1), uint(8*i))))
	}
	tagBits := api.ToBinary(sum, 129)
	var tag [16]uints.U8
	for i := 0; i < 16; i++ {
		b := make([]frontend.Variable, 8)
		copy(b, tagBits[i*8:i*8+8])
		tag[i] = uints.U8{Val: api.FromBinary(b...)}
	}
	return tag, nil
}

func bytesLEToElement(api frontend.API, f *nonnative.Field[Poly1305Field], b []uints.U8) *emulated.Element[Poly1305Field] {
	vars := make([]frontend.Variable, len(b))
	for i, bb := range b {
		vars[i] = bb.Val
	}
	return bytesLEToElementVar(api, f, vars)
}

// pad16 appends zero bytes up to the next multiple of 16.
func pad16(b []uints.U8) []uints.U8 {
	rem := len(b) % 16
	if rem == 0 {
		return nil
	}
	out := make([]uints.U8, 16-rem)
	for i := range out {
		out[i] = uints.NewU8(0)
	}
	return out
}

func le64(api frontend.API, n uint64) []uints.U8 {
	out := make([]uints.U8, 8)
	for i := 0; i < 8; i++ {
		out[i] = uints.NewU8(byte(n >> (8 * i)))
	}
	return out
}

// Seal implements the RFC 8439 AEAD_CHACHA20_POLY1305 construction: derive
// the Poly1305 one-time key from block-0 keystream, encrypt with keystream
// starting at counter=1, then MAC AAD||pad16(AAD)||CT||pad16(CT)||le64(|AAD|)||le64(|CT|).
// Returns ciphertext||tag.
func Seal(api frontend.API, uapi *uints.BinaryField[uints.U8], key [32]uints.U8, nonce [12]uints.U8, aad, plaintext []uints.U8) ([]uints.U8, error) {
	otk := Keystream(api, key, nonce, 0, 1)
	var otkArr [32]uints.U8
	copy(otkArr[:], otk[:32])
	r, s := Poly1305KeyPair(api, otkArr)

	ct := EncryptXOR(api, uapi, key, nonce, plaintext)

	macInput := make([]uints.U8, 0, len(aad)+16+len(ct)+16+16)
	macInput = append(macInput, aad...)
	macInput = append(macInput, pad16(aad)...)
	macInput = append(macInput, ct...)
	macInput = append(macInput, pad16(ct)...)
	macInput = append(macInput, le64(api, uint64(len(aad)))...)
	macInput = append(macInput, le64(api, uint64(len(ct)))...)

	tag, err := Poly1305MAC(api, r, s, macInput)
	if err != nil {
		return nil, err
	}
	out := make([]uints.U8, 0, len(ct)+16)
	out = append(out, ct...)
	out = append(out, tag[:]...)
	return out, nil
}

func bytesLEToElementVar(api frontend.API, f *nonnative.Field[Poly1305Field], b []frontend.Variable) *emulated.Element[Poly1305Field] {
	acc := f.Inner().Zero()
	base := big.NewInt(256)
	for i := len(b) - 1; i >= 0; i-- {
		acc = f.Inner().MulConst(acc, base)
		acc = f.Inner().Add(acc, f.Inner().NewElement(b[i]))
	}
	return acc
}

package ring

import (
	"math/big"
	"math/bits"
)

// genBarrettConstant computes floor(2^128 / q) split into its high and low
// 64-bit words, the constant used by mulMod's Barrett reduction. Adapted
// from the teacher's BRedParams, which computes the same ratio for a
// radix of 2^128.
func genBarrettConstant(q uint64) (hi, lo uint64) {
	r := new(big.Int).Lsh(big.NewInt(1), 128)
	r.Div(r, new(big.Int).SetUint64(q))
	hi = new(big.Int).Rsh(r, 64).Uint64()
	lo = r.Uint64()
	return
}

// mulHi returns the high 64 bits of the 128-bit product a*b.
func mulHi(a, b uint64) uint64 {
	hi, _ := bits.Mul64(a, b)
	return hi
}

// div128By64 returns floor((numHi:numLo) / d) truncated to 64 bits.
// The core only ever calls this with numHi < d (see scaleShoup below),
// which is exactly the precondition math/bits.Div64 requires to avoid
// an overflow panic.
func div128By64(numHi, numLo, d uint64) uint64 {
	q, _ := bits.Div64(numHi, numLo, d)
	return q
}

// mulMod returns a*b mod q for a, b < q < 2^62, via a 128-bit product and
// Barrett reduction using q's precomputed constant. Adapted line-for-line
// from the teacher's BRed, renamed to this module's terms.
func mulMod(a, b uint64, q SmallModulus) uint64 {
	ahi, alo := bits.Mul64(a, b)

	lhi, _ := bits.Mul64(alo, q.bredLo)

	mhi, mlo := bits.Mul64(alo, q.bredHi)
	s0, carry := bits.Add64(mlo, lhi, 0)
	s1 := mhi + carry

	mhi, mlo = bits.Mul64(ahi, q.bredLo)
	_, carry = bits.Add64(mlo, s0, 0)
	lhi = mhi + carry

	s0 = ahi*q.bredHi + s1 + lhi

	r := alo - s0*q.value
	if r >= q.value {
		r -= q.value
	}
	return r
}

// div2Mod returns a/2 mod q for a < q.
func div2Mod(a uint64, q SmallModulus) uint64 {
	if a&1 == 0 {
		return a >> 1
	}
	return (a + q.value) >> 1
}

// bitReverse reverses the low k bits of i.
func bitReverse(i uint64, k int) uint64 {
	return bits.Reverse64(i) >> (64 - uint(k))
}

// modExp computes x^e mod q.value via square-and-multiply using mulMod,
// adapted from the teacher's Barrett-backed ModExp.
func modExp(x, e uint64, q SmallModulus) uint64 {
	result := uint64(1) % q.value
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = mulMod(result, x, q)
		}
		x = mulMod(x, x, q)
	}
	return result
}

// scaleShoup computes floor(v * 2^64 / q) for v < q, the Shoup-form
// scaled companion of a root power. Adapted from the original source's
// ntt_scale_powers_of_primitive_root, which performs the identical
// 128-by-64 division with numerator (v, 0).
func scaleShoup(v uint64, q SmallModulus) uint64 {
	return div128By64(v, 0, q.value)
}

// shoupMulLazy returns w*v mod q, lazily reduced to [0, 2q), using w's
// Shoup-form scaled companion wp = floor(w*2^64/q). This is the multiply
// half of the Harvey butterfly in both transform directions: it costs one
// 64-bit multiply-high and two 64-bit multiplies, no division, on the hot
// path.
func shoupMulLazy(v, w, wp, q uint64) uint64 {
	hi := mulHi(wp, v)
	return w*v - hi*q
}

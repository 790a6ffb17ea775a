package mathutil

import (
	"math/bits"
)

const (
	// LimbBits is the width of a single limb of a fixed-point magnitude.
	LimbBits = 32
	limbMask = 1<<LimbBits - 1
)

// Uint32Cmp returns -1 if a < b, 0 if a == b, 1 if a > b.
func Uint32Cmp(a, b uint32) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// CmpLimbs compares two magnitudes given as (hi, lo) limb pairs.
func CmpLimbs(hi1, lo1, hi2, lo2 uint32) int {
	if c := Uint32Cmp(hi1, hi2); c != 0 {
		return c
	}
	return Uint32Cmp(lo1, lo2)
}

// AddLimbs returns (hi1:lo1) + (hi2:lo2) truncated to 64 bits,
// and whether a carry left the high limb.
func AddLimbs(hi1, lo1, hi2, lo2 uint32) (hi, lo uint32, carry bool) {
	lo, c := bits.Add32(lo1, lo2, 0)
	hi, c = bits.Add32(hi1, hi2, c)
	return hi, lo, c != 0
}

// SubLimbs returns (hi1:lo1) - (hi2:lo2).
// The caller must ensure that the first operand is not less than the second one,
// otherwise the result wraps around.
func SubLimbs(hi1, lo1, hi2, lo2 uint32) (hi, lo uint32) {
	lo, b := bits.Sub32(lo1, lo2, 0)
	hi, _ = bits.Sub32(hi1, hi2, b)
	return hi, lo
}

// MulLimbs multiplies two 64-bit magnitudes, each given as a pair of 32-bit limbs,
// and returns the exact 128-bit product as four 32-bit words, w3 being the most significant.
//
//	        a1     a0
//	 x      b1     b0
//	 ------------------
//	            a0*b0
//	     a1*b0
//	     a0*b1
//	a1*b1
func MulLimbs(a1, a0, b1, b0 uint32) (w3, w2, w1, w0 uint32) {
	p00 := uint64(a0) * uint64(b0)
	p01 := uint64(a0) * uint64(b1)
	p10 := uint64(a1) * uint64(b0)
	p11 := uint64(a1) * uint64(b1)

	// every column sum below fits 64 bits: at most three values below 2^32 plus a carry.
	mid := p00>>LimbBits + p01&limbMask + p10&limbMask
	high := p01>>LimbBits + p10>>LimbBits + p11&limbMask + mid>>LimbBits
	top := p11>>LimbBits + high>>LimbBits

	return uint32(top), uint32(high), uint32(mid), uint32(p00)
}

// Join returns a 64-bit number made of two limbs.
func Join(hi, lo uint32) uint64 {
	return uint64(hi)<<LimbBits | uint64(lo)
}

// Split splits a 64-bit number into two limbs.
func Split(v uint64) (hi, lo uint32) {
	return uint32(v >> LimbBits), uint32(v)
}

package fixpoint

import (
	mu "github.com/avdva/fixpoint/internal/mathutil"
)

// Add returns a+b.
// If the magnitude of the sum doesn't fit, the truncated sum is returned with ResultOverflow.
// A truncated zero sum of two negative values stays negative, so it is printed as -0.0.
// Values of opposite signs never overflow.
func (v Value) Add(other Value) (Value, Result) {
	neg1, neg2 := v.negative(), other.negative()
	if neg1 == neg2 {
		// v1+v2
		// or -v1+(-v2) = -(v1+v2)
		return addMagnitudes(v, other, neg1)
	}
	switch v.Cmp(other) {
	case 1: // |v1| > |v2|, so the sign of v1 wins.
		return subMagnitudes(v, other), ResultOK
	case -1:
		return subMagnitudes(other, v), ResultOK
	default: // v1+(-v1) = 0
		return Zero, ResultOK
	}
}

// Sub returns a-b.
// It is exactly a.Add(b.Neg()), including the overflow result.
func (v Value) Sub(other Value) (Value, Result) {
	return v.Add(other.Neg()) // v1-v2 = v1+(-v2)
}

// Mul returns a*b.
// Both magnitudes are treated as 64-bit numbers, and the middle 64 bits of
// their exact 128-bit product form the result.
// ResultOverflow is set if any of the high 32 bits of the product is not zero,
// ResultUnderflow is set if any of the low 32 bits is not zero.
// Both flags can be set at once.
// A zero result is non-negative only if no bits were lost.
func (v Value) Mul(other Value) (Value, Result) {
	neg := v.negative() != other.negative()
	w3, w2, w1, w0 := mu.MulLimbs(v.whole, v.frac, other.whole, other.frac)

	result := ResultOK
	if w3 != 0 {
		result |= ResultOverflow
	}
	if w0 != 0 {
		result |= ResultUnderflow
	}

	product := Value{whole: w2, frac: w1, neg: neg}
	if product.IsZero() && result == ResultOK {
		product.neg = false
	}
	return product, result
}

func addMagnitudes(v1, v2 Value, neg bool) (Value, Result) {
	whole, frac, carry := mu.AddLimbs(v1.whole, v1.frac, v2.whole, v2.frac)
	sum := Value{whole: whole, frac: frac, neg: neg}
	result := ResultOK
	if carry {
		result = ResultOverflow
	}
	if sum.IsZero() && !(neg && carry) {
		sum.neg = false
	}
	return sum, result
}

// subMagnitudes returns larger-smaller with the sign of larger.
// |larger| must be greater than |smaller|.
func subMagnitudes(larger, smaller Value) Value {
	whole, frac := mu.SubLimbs(larger.whole, larger.frac, smaller.whole, smaller.frac)
	return New(whole, frac, larger.negative())
}

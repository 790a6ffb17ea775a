// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fixpoint implements a signed binary fixed-point number with
// a 32-bit whole part and a 32-bit fractional part.
//
// The sign is stored separately from the magnitude, so there is no
// two's complement wraparound: operations report overflow and underflow
// through a Result instead.
package fixpoint

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/zeebo/errs"

	mu "github.com/avdva/fixpoint/internal/mathutil"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("fixpoint")

const (
	fracScale = 1 << mu.LimbBits

	binaryLen = 4 + 4 + 1
)

var (
	// Zero is the zero value.
	Zero = Value{}
	// One is 1.0.
	One = Value{whole: 1}
	// Max is the value with the largest magnitude, ffffffff.ffffffff.
	Max = Value{whole: math.MaxUint32, frac: math.MaxUint32}
	// Min is the smallest positive value, 0.00000001.
	Min = Value{frac: 1}
)

// Value is a signed fixed-point number.
// The magnitude is whole + frac/2^32, the sign is kept in a separate flag.
//
// A value with a zero magnitude is never negative, unless it is the result
// of an overflowing operation on negative operands. See Add and Mul.
//
// Values are comparable with ==, which compares all three fields.
type Value struct {
	whole uint32
	frac  uint32
	neg   bool
}

// New returns a value for given whole and fractional parts.
// If both parts are zero, the value is non-negative regardless of neg.
func New(whole, frac uint32, neg bool) Value {
	if whole == 0 && frac == 0 {
		neg = false
	}
	return Value{whole: whole, frac: frac, neg: neg}
}

// FromRaw returns a value with the fields set as is, without zero normalization.
// FromRaw(0, 0, true) is a negative zero.
func FromRaw(whole, frac uint32, neg bool) Value {
	return Value{whole: whole, frac: frac, neg: neg}
}

// Whole returns the whole part of v's magnitude.
func (v Value) Whole() uint32 {
	return v.whole
}

// Frac returns the fractional part of v's magnitude, scaled by 2^32.
func (v Value) Frac() uint32 {
	return v.frac
}

// IsNeg returns v's sign flag.
func (v Value) IsNeg() bool {
	return v.neg
}

// Raw returns all the fields of v.
func (v Value) Raw() (whole, frac uint32, neg bool) {
	return v.whole, v.frac, v.neg
}

// IsZero returns true, if v's magnitude is zero. The sign is ignored.
func (v Value) IsZero() bool {
	return v.whole == 0 && v.frac == 0
}

// negative is the effective sign: a negative zero is treated as positive.
func (v Value) negative() bool {
	return v.neg && !v.IsZero()
}

// Sign returns -1 if v < 0, 0 if v = 0, 1 if v > 0.
func (v Value) Sign() int {
	switch {
	case v.IsZero():
		return 0
	case v.neg:
		return -1
	default:
		return 1
	}
}

// Neg returns -v.
// The sign of a non-zero value is flipped, a zero value stays non-negative.
func (v Value) Neg() Value {
	if v.IsZero() {
		return Zero
	}
	v.neg = !v.neg
	return v
}

// Normalized returns v with the zero rule applied: a zero value is never negative.
func (v Value) Normalized() Value {
	return New(v.whole, v.frac, v.neg)
}

// Abs returns |v|.
func (v Value) Abs() Value {
	v.neg = false
	return v
}

// Cmp compares the magnitudes of two values.
// Returns -1 if |a| < |b|, 0 if |a| == |b|, 1 if |a| > |b|.
// Signs are not taken into account, so Cmp(-2, 1) == 1.
func (v Value) Cmp(other Value) int {
	return mu.CmpLimbs(v.whole, v.frac, other.whole, other.frac)
}

// Eq returns true, if all the fields of both values are equal.
func (v Value) Eq(other Value) bool {
	return v == other
}

// Float64 returns an approximate float64 value.
func (v Value) Float64() float64 {
	f := float64(v.whole) + float64(v.frac)/fracScale
	if v.neg {
		f = -f
	}
	return f
}

// GoString returns debug string representation.
func (v Value) GoString() string {
	return v.String() + fmt.Sprintf(" {%#x, %#x, %v}", v.whole, v.frac, v.neg)
}

// MarshalText implements encoding.TextMarshaler.
func (v Value) MarshalText() ([]byte, error) {
	return appendHex(make([]byte, 0, MaxStrLen), v), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value) UnmarshalText(data []byte) error {
	value, err := FromString(string(data))
	if err != nil {
		return err
	}
	*v = value
	return nil
}

// MarshalJSON marshals v as a quoted hex string, like `"-1.8"`.
func (v Value) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, MaxStrLen+2)
	b = append(b, '"')
	b = appendHex(b, v)
	return append(b, '"'), nil
}

// UnmarshalJSON unmarshals a quoted hex string into a value.
// null is ignored.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return Error.New("json value must be a string")
	}
	value, err := FromString(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*v = value
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
// The result is a big-endian whole part, a big-endian fractional part, and a sign byte.
func (v Value) MarshalBinary() ([]byte, error) {
	data := make([]byte, binaryLen)
	binary.BigEndian.PutUint32(data, v.whole)
	binary.BigEndian.PutUint32(data[4:], v.frac)
	if v.neg {
		data[8] = 1
	}
	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// The sign byte is restored as is, so a negative zero survives a round trip.
func (v *Value) UnmarshalBinary(data []byte) error {
	if len(data) != binaryLen {
		return Error.New("bad binary length %d, want %d", len(data), binaryLen)
	}
	if data[8] > 1 {
		return Error.New("bad sign byte %#x", data[8])
	}
	*v = FromRaw(binary.BigEndian.Uint32(data), binary.BigEndian.Uint32(data[4:]), data[8] == 1)
	return nil
}

package fixpoint

// Result is a set of flags describing what was lost during an operation.
// The truncated value is always produced, Result only tells how exact it is.
type Result uint8

const (
	// ResultOK means the result is exact.
	ResultOK Result = 0
	// ResultOverflow means the magnitude didn't fit the 32-bit whole part.
	ResultOverflow Result = 1 << (iota - 1)
	// ResultUnderflow means some bits below the 32-bit fractional part were lost.
	ResultUnderflow
)

// OK returns true if no flags are set.
func (r Result) OK() bool {
	return r == ResultOK
}

// Overflowed returns true if the overflow flag is set.
func (r Result) Overflowed() bool {
	return r&ResultOverflow != 0
}

// Underflowed returns true if the underflow flag is set.
func (r Result) Underflowed() bool {
	return r&ResultUnderflow != 0
}

func (r Result) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultOverflow:
		return "overflow"
	case ResultUnderflow:
		return "underflow"
	case ResultOverflow | ResultUnderflow:
		return "overflow|underflow"
	default:
		return "invalid"
	}
}

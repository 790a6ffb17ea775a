package fixpoint

import (
	"errors"
	"fmt"
	"io"
	"math/bits"
	"strconv"
	"unicode/utf8"

	mu "github.com/avdva/fixpoint/internal/mathutil"
)

const (
	delim = '.'

	// partDigits is the maximum number of hex digits in the whole and in the fractional parts.
	partDigits = mu.LimbBits / 4

	// MaxStrLen is the maximum length of a formatted value: a sign,
	// up to 8 whole digits, a delimiter and up to 8 fractional digits.
	MaxStrLen = 1 + partDigits + 1 + partDigits

	hexDigits = "0123456789abcdef"
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

// Pos returns a 1-based position of the error in the input.
func (pe posError) Pos() int {
	return pe.pos
}

func addPosErrorOffset(err error, offset int) error {
	var pe *posError
	if !errors.As(err, &pe) { // try to locate error position.
		return err
	}
	pe.pos += offset
	return pe
}

// FormatHex returns v as a hex string, like `-1a.08`.
// The whole part has no leading zeros, the fractional part has no trailing zeros,
// but both have at least one digit, so zero is formatted as `0.0`.
// A minus is written for every value with the sign flag set, including a negative zero.
func FormatHex(v Value) string {
	var buf [MaxStrLen]byte
	return string(appendHex(buf[:0], v))
}

// String returns a hex string representation of the value. See FormatHex.
func (v Value) String() string {
	return FormatHex(v)
}

// Format implements fmt.Formatter.
// %s, %v and %x print the hex form, %#v prints the debug form.
func (v Value) Format(f fmt.State, c rune) {
	switch c {
	case 'v':
		if f.Flag('#') {
			io.WriteString(f, v.GoString())
			return
		}
		fallthrough
	case 's', 'x':
		var buf [MaxStrLen]byte
		f.Write(appendHex(buf[:0], v))
	default:
		fmt.Fprintf(f, "%%!%c(fixpoint.Value=%s)", c, v.String())
	}
}

func appendHex(b []byte, v Value) []byte {
	if v.neg {
		b = append(b, '-')
	}
	b = strconv.AppendUint(b, uint64(v.whole), 16)
	b = append(b, delim)
	return appendFracHex(b, v.frac)
}

// appendFracHex writes frac as 8 hex digits without trailing zeros.
func appendFracHex(b []byte, frac uint32) []byte {
	if frac == 0 {
		return append(b, '0')
	}
	digits := partDigits - bits.TrailingZeros32(frac)/4
	for i := 0; i < digits; i++ {
		shift := mu.LimbBits - 4*(i+1)
		b = append(b, hexDigits[frac>>shift&0xf])
	}
	return b
}

// ParseHex parses a string produced by FormatHex.
// The grammar is strict: an optional minus, 1 to 8 hex digits, a dot, and 1 to 8 hex digits.
// Spaces, a plus sign and a 0x prefix are not allowed.
// The fractional digits are aligned to the left, so `0.8` is one half.
// A parsed zero is never negative.
// Returns false, if s is malformed.
func ParseHex(s string) (Value, bool) {
	v, err := parseHex(s)
	if err != nil {
		return Zero, false
	}
	return v, true
}

// FromString parses a hex string like ParseHex, but returns an error
// with the position of the first bad symbol.
func FromString(s string) (Value, error) {
	v, err := parseHex(s)
	if err != nil {
		return Zero, Error.Wrap(err)
	}
	return v, nil
}

// MustFromString parses a hex string and panics on error.
func MustFromString(s string) Value {
	v, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func parseHex(s string) (Value, error) {
	if len(s) == 0 {
		return Zero, fmt.Errorf("empty input")
	}
	v, err := doParse(s)
	if err != nil {
		// +1 to start indices from 1.
		return Zero, fmt.Errorf("parsing failed: %w", addPosErrorOffset(err, 1))
	}
	return v, nil
}

func doParse(s string) (Value, error) {
	var neg bool
	pos := 0
	if s[0] == '-' {
		neg = true
		pos++
	}
	whole, pos, _, err := parseHexPart(s, pos)
	if err != nil {
		return Zero, err
	}
	if pos == len(s) {
		return Zero, newPosError("missing delimiter", pos)
	}
	if s[pos] != delim {
		return Zero, unexpectedSymbol(s, pos)
	}
	frac, pos, digits, err := parseHexPart(s, pos+1)
	if err != nil {
		return Zero, err
	}
	if pos != len(s) {
		return Zero, unexpectedSymbol(s, pos)
	}
	frac <<= 4 * uint(partDigits-digits)
	return New(whole, frac, neg), nil
}

// parseHexPart reads 1 to 8 hex digits starting from pos.
// Returns the parsed number, the position right after the last digit, and the number of digits.
func parseHexPart(s string, pos int) (value uint32, end, digits int, err error) {
	start := pos
	for ; pos < len(s); pos++ {
		d, ok := hexDigit(s[pos])
		if !ok {
			break
		}
		if pos-start == partDigits {
			return 0, pos, 0, newPosError(fmt.Sprintf("too many digits, max is %d", partDigits), pos)
		}
		value = value<<4 | uint32(d)
	}
	if pos == start {
		if pos == len(s) {
			return 0, pos, 0, newPosError("unexpected end of input", pos)
		}
		return 0, pos, 0, unexpectedSymbol(s, pos)
	}
	return value, pos, pos - start, nil
}

func unexpectedSymbol(s string, pos int) error {
	r, _ := utf8.DecodeRuneInString(s[pos:])
	return newPosError(fmt.Sprintf("unexpected symbol %q", r), pos)
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

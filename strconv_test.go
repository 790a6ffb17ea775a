package fixpoint

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatHex(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v Value
		s string
	}{
		{Zero, "0.0"},
		{One, "1.0"},
		{oneHalf, "0.8"},
		{Max, "ffffffff.ffffffff"},
		{negThreeEights, "-0.6"},
		{Min, "0.00000001"},
		{oneAndOneHalf, "1.8"},
		{oneHundred, "64.0"},
		{negEleven, "-b.0"},
		{negZero, "-0.0"},
		{FromRaw(0xad2b55b1, 0xcf5f4470, true), "-ad2b55b1.cf5f447"},
		{FromRaw(0x10, 0x08000000, false), "10.08"},
		{FromRaw(0, 0x00000010, false), "0.0000001"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			s := FormatHex(test.v)
			a.Equal(test.s, s)
			a.LessOrEqual(len(s), MaxStrLen)
			a.Equal(test.s, test.v.String())
			a.Equal(test.s, fmt.Sprintf("%v", test.v))
			a.Equal(test.s, fmt.Sprintf("%s", test.v))
			a.Equal(test.s, fmt.Sprintf("%x", test.v))
		})
	}
	a.Equal("%!d(fixpoint.Value=-b.0)", fmt.Sprintf("%d", negEleven))
}

func TestParseHex(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s string
		v Value
	}{
		{"0.0", Zero},
		{"1.0", One},
		{"0.8", oneHalf},
		{"ffffffff.ffffffff", Max},
		{"FFFFFFFF.FFFFFFFF", Max},
		{"-0.6", negThreeEights},
		{"0.00000001", Min},
		{"1.8", oneAndOneHalf},
		{"64.0", oneHundred},
		{"-b.0", negEleven},
		{"a.B", FromRaw(0xA, 0xB0000000, false)},
		{"-0.0", Zero},
		{"-00000000.00000000", Zero},
		{"00000001.10000000", FromRaw(1, 0x10000000, false)},
		{"-ad2b55b1.cf5f447", FromRaw(0xad2b55b1, 0xcf5f4470, true)},
		{"0.0000001", FromRaw(0, 0x10, false)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, ok := ParseHex(test.s)
			if a.True(ok) {
				a.Equal(test.v, v)
			}
			v, err := FromString(test.s)
			if a.NoError(err) {
				a.Equal(test.v, v)
			}
		})
	}
}

func TestParseHexErrors(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s   string
		err string
		pos int
	}{
		{"", "empty input", 0},
		{" 1.0", "unexpected symbol ' '", 1},
		{"1.0 ", "unexpected symbol ' '", 4},
		{"+1.0", "unexpected symbol '+'", 1},
		{"0x1.0", "unexpected symbol 'x'", 2},
		{"1", "missing delimiter", 2},
		{"1.", "unexpected end of input", 3},
		{".1", "unexpected symbol '.'", 1},
		{"-", "unexpected end of input", 2},
		{"--1.0", "unexpected symbol '-'", 2},
		{"123456789.0", "too many digits, max is 8", 9},
		{"0.123456789", "too many digits, max is 8", 11},
		{"1.0.0", "unexpected symbol '.'", 4},
		{"1.g", "unexpected symbol 'g'", 3},
		{"g.1", "unexpected symbol 'g'", 1},
		{"1,0", "unexpected symbol ','", 2},
		{"é.0", "unexpected symbol 'é'", 1},
		{"1.0\x00", "unexpected symbol '\\x00'", 4},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, ok := ParseHex(test.s)
			a.False(ok)
			a.Equal(Zero, v)

			_, err := FromString(test.s)
			require.Error(t, err)
			a.True(Error.Has(err))
			a.Contains(err.Error(), test.err)

			var pe *posError
			if test.pos == 0 {
				a.False(errors.As(err, &pe))
				return
			}
			if a.True(errors.As(err, &pe)) {
				a.Equal(test.pos, pe.Pos())
				a.EqualError(pe, fmt.Sprintf("%s at pos %d", test.err, test.pos))
			}
			a.Panics(func() {
				MustFromString(test.s)
			})
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < 10000; i++ {
		v := randValue(rnd).Normalized()
		s := FormatHex(v)
		parsed, ok := ParseHex(s)
		if a.True(ok, s) {
			a.Equal(v, parsed, s)
		}
	}
}

func FuzzParseHex(f *testing.F) {
	for _, s := range []string{"0.0", "-b.0", "ffffffff.ffffffff", "a.B", "-0.00000001", "1.", "+1.0"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		v, ok := ParseHex(s)
		if !ok {
			return
		}
		if v.IsZero() && v.IsNeg() {
			t.Fatalf("%q parsed as a negative zero", s)
		}
		formatted := FormatHex(v)
		if len(formatted) > MaxStrLen {
			t.Fatalf("%q is too long", formatted)
		}
		again, ok := ParseHex(formatted)
		if !ok || again != v {
			t.Fatalf("%q -> %#v -> %q -> %#v", s, v, formatted, again)
		}
	})
}

func BenchmarkFormatHex(b *testing.B) {
	v := FromRaw(0xad2b55b1, 0xcf5f4470, true)
	for i := 0; i < b.N; i++ {
		FormatHex(v)
	}
}

func BenchmarkParseHex(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ParseHex("-ad2b55b1.cf5f447")
	}
}

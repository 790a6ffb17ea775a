// Package calc evaluates one-line expressions over fixpoint values.
//
// An expression is one of
//
//	<a>
//	neg <a>
//	<a> + <b>
//	<a> - <b>
//	<a> * <b>
//	<a> cmp <b>
//
// where operands use the hex format of fixpoint.FormatHex, and tokens are separated by spaces.
package calc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zeebo/errs"

	"github.com/avdva/fixpoint"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("calc")

// Op is an operation of an expression.
type Op int

// Supported operations.
const (
	OpValue Op = iota
	OpNeg
	OpAdd
	OpSub
	OpMul
	OpCmp
)

var (
	binaryOps = map[string]Op{
		"+":   OpAdd,
		"-":   OpSub,
		"*":   OpMul,
		"cmp": OpCmp,
	}
	opNames = [...]string{"value", "neg", "+", "-", "*", "cmp"}
)

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return "op(" + strconv.Itoa(int(op)) + ")"
	}
	return opNames[op]
}

// Output is a result of an expression.
type Output struct {
	Op    Op
	Value fixpoint.Value
	Flags fixpoint.Result
	// Cmp is only set for OpCmp.
	Cmp int
}

// String returns the value with the flags in parens, if any, or the result of a comparison.
func (o Output) String() string {
	if o.Op == OpCmp {
		return strconv.Itoa(o.Cmp)
	}
	if o.Flags.OK() {
		return o.Value.String()
	}
	return fmt.Sprintf("%s (%s)", o.Value, o.Flags)
}

// Raw is a dump-friendly form of an output.
type Raw struct {
	Op    string
	Whole uint32
	Frac  uint32
	Neg   bool
	Flags string
	Cmp   int
}

// Raw returns all the fields of the output.
func (o Output) Raw() Raw {
	whole, frac, neg := o.Value.Raw()
	return Raw{
		Op:    o.Op.String(),
		Whole: whole,
		Frac:  frac,
		Neg:   neg,
		Flags: o.Flags.String(),
		Cmp:   o.Cmp,
	}
}

// Eval evaluates an expression.
func Eval(line string) (Output, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 0:
		return Output{}, Error.New("empty expression")
	case 1:
		v, err := operand(fields[0], 1)
		if err != nil {
			return Output{}, err
		}
		return Output{Op: OpValue, Value: v}, nil
	case 2:
		if fields[0] != "neg" {
			return Output{}, Error.New("unknown unary operator %q", fields[0])
		}
		v, err := operand(fields[1], 1)
		if err != nil {
			return Output{}, err
		}
		return Output{Op: OpNeg, Value: v.Neg()}, nil
	case 3:
		op, found := binaryOps[fields[1]]
		if !found {
			return Output{}, Error.New("unknown operator %q", fields[1])
		}
		a, err := operand(fields[0], 1)
		if err != nil {
			return Output{}, err
		}
		b, err := operand(fields[2], 2)
		if err != nil {
			return Output{}, err
		}
		return apply(op, a, b), nil
	default:
		return Output{}, Error.New("too many tokens: %d", len(fields))
	}
}

func apply(op Op, a, b fixpoint.Value) Output {
	out := Output{Op: op}
	switch op {
	case OpAdd:
		out.Value, out.Flags = a.Add(b)
	case OpSub:
		out.Value, out.Flags = a.Sub(b)
	case OpMul:
		out.Value, out.Flags = a.Mul(b)
	case OpCmp:
		out.Cmp = a.Cmp(b)
	}
	return out
}

func operand(s string, n int) (fixpoint.Value, error) {
	v, err := fixpoint.FromString(s)
	if err != nil {
		return fixpoint.Zero, Error.Wrap(fmt.Errorf("operand %d: %w", n, err))
	}
	return v, nil
}

package arith

import (
	"errors"
	"math"
	"strconv"
)

// Equation is a computed operation request.
type Equation struct {
	A      float64
	Op     Op
	B      float64
	Result float64
}

// String renders "<a> <sym> <b> = <result>".
func (e Equation) String() string {
	return FormatNumber(e.A) + " " + e.Op.Symbol() + " " + FormatNumber(e.B) + " = " + FormatNumber(e.Result)
}

// CheckDivisor reports ErrDivisionByZero when op is OpDivide and b is zero.
// Every entry point that takes operands from input calls this before Apply.
func CheckDivisor(op Op, b float64) error {
	if op == OpDivide && b == 0 {
		return ErrDivisionByZero
	}
	return nil
}

// Compute guards the divisor and applies op. It never panics for a valid op.
func Compute(op Op, a, b float64) (Equation, error) {
	if err := CheckDivisor(op, b); err != nil {
		return Equation{}, err
	}
	return Equation{A: a, Op: op, B: b, Result: op.Apply(a, b)}, nil
}

// ParseOperand parses a decimal literal. Out-of-range literals saturate to
// ±Inf rather than failing.
func ParseOperand(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f, nil
		}
		return 0, &NumberError{Literal: s}
	}
	return f, nil
}

// NumberError names the literal that failed to parse.
type NumberError struct {
	Literal string
}

func (e *NumberError) Error() string {
	return "'" + e.Literal + "' is " + ErrInvalidNumber.Error()
}

func (e *NumberError) Unwrap() error { return ErrInvalidNumber }

// FormatNumber renders f in shortest round-trip decimal form without an
// exponent: 15, 1.5, 0.1. Non-finite values print as inf, -inf and NaN.
func FormatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

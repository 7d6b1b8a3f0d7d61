// Package arith implements the four binary floating-point operations shared
// by the abacus and calculator binaries.
//
// Add, Subtract and Multiply are total. Divide is not: a zero divisor is a
// programming error and Divide panics with ErrDivisionByZero instead of
// returning an error. Callers that accept user input must go through
// CheckDivisor (or Compute, which calls it) before dividing.
package arith

// Add returns a + b.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns a - b.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns a * b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a / b. It panics with ErrDivisionByZero when b is zero
// (positive or negative).
func Divide(a, b float64) float64 {
	if b == 0 {
		panic(ErrDivisionByZero)
	}
	return a / b
}

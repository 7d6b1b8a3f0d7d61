package arith

import "errors"

var (
	// ErrDivisionByZero is both the panic value of Divide and the error
	// returned by CheckDivisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrUnknownOperator is returned when a token names no operator.
	ErrUnknownOperator = errors.New("unknown operator")
	// ErrInvalidNumber is returned when an operand literal does not parse.
	ErrInvalidNumber = errors.New("not a valid number")
)

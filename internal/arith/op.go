package arith

import (
	"fmt"
	"strings"
)

// Op selects one of the four operations.
type Op int

const (
	OpAdd Op = iota
	OpSubtract
	OpMultiply
	OpDivide
)

type opDef struct {
	op     Op
	symbol string
	name   string
	fn     func(a, b float64) float64
}

// ops is the single operator table. Both the symbol form used by the
// calculator binary and the name form used by `abacus math` resolve here.
var ops = []opDef{
	{OpAdd, "+", "add", Add},
	{OpSubtract, "-", "subtract", Subtract},
	{OpMultiply, "*", "multiply", Multiply},
	{OpDivide, "/", "divide", Divide},
}

// Ops lists every operator in table order.
func Ops() []Op {
	out := make([]Op, 0, len(ops))
	for _, s := range ops {
		out = append(out, s.op)
	}
	return out
}

func (o Op) def() (opDef, bool) {
	if o < 0 || int(o) >= len(ops) {
		return opDef{}, false
	}
	return ops[o], true
}

// Symbol returns the infix symbol, e.g. "+".
func (o Op) Symbol() string {
	s, ok := o.def()
	if !ok {
		return "?"
	}
	return s.symbol
}

// Name returns the word form, e.g. "add".
func (o Op) Name() string {
	s, ok := o.def()
	if !ok {
		return fmt.Sprintf("Op(%d)", int(o))
	}
	return s.name
}

func (o Op) String() string { return o.Name() }

// Apply runs the operation. OpDivide.Apply(a, 0) panics like Divide.
func (o Op) Apply(a, b float64) float64 {
	s, ok := o.def()
	if !ok {
		panic(fmt.Sprintf("arith: invalid operator %d", int(o)))
	}
	return s.fn(a, b)
}

// FromSymbol resolves "+", "-", "*" or "/".
func FromSymbol(tok string) (Op, error) {
	return resolve(tok, func(s opDef) string { return s.symbol })
}

// FromName resolves "add", "subtract", "multiply" or "divide".
func FromName(tok string) (Op, error) {
	return resolve(tok, func(s opDef) string { return s.name })
}

func resolve(tok string, key func(opDef) string) (Op, error) {
	for _, s := range ops {
		if key(s) == tok {
			return s.op, nil
		}
	}
	return 0, fmt.Errorf("%w '%s'", ErrUnknownOperator, tok)
}

// SymbolsCSV returns "+, -, *, /".
func SymbolsCSV() string {
	parts := make([]string, 0, len(ops))
	for _, s := range ops {
		parts = append(parts, s.symbol)
	}
	return strings.Join(parts, ", ")
}

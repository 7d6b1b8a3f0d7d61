package e2e

import "testing"

func TestCalculator_Add(t *testing.T) {
	bin := buildBinary(t, "calculator")
	assertRun(t, runCmd(t, bin, "10", "+", "5"), 0, "10 + 5 = 15\n", "")
}

func TestCalculator_DivideByZero(t *testing.T) {
	bin := buildBinary(t, "calculator")
	r := runCmd(t, bin, "5", "/", "0")
	// Exit 1 from the guard; an unguarded panic would exit 2.
	assertRun(t, r, 1, "", "Error: division by zero\n")
}

func TestCalculator_InvalidNumber(t *testing.T) {
	bin := buildBinary(t, "calculator")
	assertRun(t, runCmd(t, bin, "abc", "+", "5"), 1, "", "Error: 'abc' is not a valid number\n")
}

func TestCalculator_NegativeOperand(t *testing.T) {
	bin := buildBinary(t, "calculator")
	assertRun(t, runCmd(t, bin, "-5", "*", "3"), 0, "-5 * 3 = -15\n", "")
}

func TestCalculator_Usage(t *testing.T) {
	bin := buildBinary(t, "calculator")
	want := "Usage: calculator <number1> <operator> <number2>\nOperators: +, -, *, /\nExample: calculator 5 + 3\n"
	assertRun(t, runCmd(t, bin, "1", "+"), 1, "", want)
}

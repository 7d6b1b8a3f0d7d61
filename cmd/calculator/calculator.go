package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flarebyte/abacus/internal/arith"
	"github.com/flarebyte/abacus/internal/exitcode"
)

func newCmd(name string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <number1> <operator> <number2>",
		Short: "Evaluate a single arithmetic expression",
		// Operands such as -5 must not be taken for flags.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return usageError(name)
			}
			eq, err := evaluate(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), eq.String())
			return err
		},
	}
}

func usageError(name string) error {
	return &exitcode.UsageError{Text: fmt.Sprintf(
		"Usage: %s <number1> <operator> <number2>\nOperators: %s\nExample: %s 5 + 3",
		name, arith.SymbolsCSV(), name)}
}

// evaluate validates in order: first operand, second operand, operator,
// divisor. The first failure wins.
func evaluate(lhs, sym, rhs string) (arith.Equation, error) {
	a, err := arith.ParseOperand(lhs)
	if err != nil {
		return arith.Equation{}, exitcode.New(err)
	}
	b, err := arith.ParseOperand(rhs)
	if err != nil {
		return arith.Equation{}, exitcode.New(err)
	}
	op, err := arith.FromSymbol(sym)
	if err != nil {
		return arith.Equation{}, exitcode.New(err).WithHint("Supported operators: " + arith.SymbolsCSV())
	}
	eq, err := arith.Compute(op, a, b)
	if err != nil {
		return arith.Equation{}, exitcode.New(err)
	}
	return eq, nil
}

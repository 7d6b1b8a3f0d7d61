// Package mathcmd implements `abacus math <op> <a> <b>`.
package mathcmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/flarebyte/abacus/cmd/abacus/session"
	"github.com/flarebyte/abacus/internal/arith"
	"github.com/flarebyte/abacus/internal/exitcode"
	"github.com/flarebyte/abacus/internal/output"
)

// Result is the structured echo of one computation.
type Result struct {
	Operation string  `json:"operation" yaml:"operation"`
	A         float64 `json:"a" yaml:"a"`
	B         float64 `json:"b" yaml:"b"`
	Result    float64 `json:"result" yaml:"result"`
}

// NewCmd builds the `math` parent command with one child per operation.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "math",
		Short: "Perform math operations",
		Long: `Perform one of the four arithmetic operations.

Negative operands must follow "--", e.g. abacus math add -- -5 3.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return &exitcode.UsageError{Text: cmd.UsageString()}
		},
	}
	for _, op := range arith.Ops() {
		cmd.AddCommand(newOpCmd(op))
	}
	return cmd
}

func newOpCmd(op arith.Op) *cobra.Command {
	return &cobra.Command{
		Use:   op.Name() + " <a> <b>",
		Short: fmt.Sprintf("Compute a %s b", op.Symbol()),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, op, args)
		},
	}
}

func run(cmd *cobra.Command, op arith.Op, args []string) error {
	sess := session.From(cmd)
	a, err := arith.ParseOperand(args[0])
	if err != nil {
		return exitcode.New(err)
	}
	b, err := arith.ParseOperand(args[1])
	if err != nil {
		return exitcode.New(err)
	}
	eq, err := arith.Compute(op, a, b)
	if err != nil {
		sess.Log.Debug("rejected", zap.Stringer("op", op), zap.Error(err))
		return exitcode.New(err)
	}
	sess.Log.Debug("computed", zap.Stringer("op", op), zap.Float64("result", eq.Result))

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(out, eq.String()); err != nil {
		return err
	}
	return output.Echo(out, sess.Output, Result{
		Operation: op.Name(),
		A:         eq.A,
		B:         eq.B,
		Result:    eq.Result,
	})
}

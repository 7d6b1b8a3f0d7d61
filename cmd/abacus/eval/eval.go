package eval

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/flarebyte/abacus/cmd/abacus/session"
	"github.com/flarebyte/abacus/internal/arith"
	"github.com/flarebyte/abacus/internal/exitcode"
	"github.com/flarebyte/abacus/internal/output"
	"github.com/flarebyte/abacus/internal/script"
)

// Result is the structured echo of an evaluation.
type Result struct {
	Expression string  `json:"expression" yaml:"expression"`
	Result     float64 `json:"result" yaml:"result"`
}

// NewCmd builds `abacus eval <expression>`.
func NewCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an expression built from add, subtract, multiply and divide",
		Long: `Evaluate an expression built only from number literals, unary minus and
calls to add, subtract, multiply and divide. Lua operators such as "/" or "%"
and library calls are rejected.`,
		Example: `  abacus eval "divide(multiply(add(10, 5), 3), subtract(10, 5))"
  abacus eval "multiply(-2, add(1.5, 2.5))"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := session.From(cmd)
			expr := args[0]
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			start := time.Now()
			v, err := script.Eval(ctx, expr, script.Options{Timeout: timeout})
			sess.Log.Debug("eval", zap.String("expression", expr), zap.Duration("took", time.Since(start)), zap.Error(err))
			if err != nil {
				return exitcode.New(err)
			}
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "%s = %s\n", expr, arith.FormatNumber(v)); err != nil {
				return err
			}
			return output.Echo(out, sess.Output, Result{Expression: expr, Result: v})
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", script.DefaultTimeout, "Evaluation deadline")
	return cmd
}

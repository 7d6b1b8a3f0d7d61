package generate

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/flarebyte/abacus/cmd/abacus/session"
	"github.com/flarebyte/abacus/internal/exitcode"
	"github.com/flarebyte/abacus/internal/output"
	"github.com/flarebyte/abacus/internal/sample"
)

// NewCmd builds `abacus generate [--count N]`.
func NewCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate test data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return exitcode.New(fmt.Errorf("invalid count %d: must not be negative", count))
			}
			sess := session.From(cmd)
			items := sample.Items(count)
			sess.Log.Debug("generated", zap.Int("items", len(items)))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Generated %d test items:\n", len(items))
			for _, it := range items {
				fmt.Fprintf(out, "  %s\n", it)
			}
			return output.Echo(out, sess.Output, items)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "c", 10, "Number of items to generate")
	return cmd
}

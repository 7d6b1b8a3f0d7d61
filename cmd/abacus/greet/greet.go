package greet

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/flarebyte/abacus/cmd/abacus/session"
)

// NewCmd builds `abacus greet <name> [--count N]`.
func NewCmd() *cobra.Command {
	var count uint8

	cmd := &cobra.Command{
		Use:   "greet <name>",
		Short: "Say hello to someone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			session.From(cmd).Log.Debug("greet", zap.String("name", name), zap.Uint8("count", count))
			out := cmd.OutOrStdout()
			for i := 1; i <= int(count); i++ {
				if count > 1 {
					fmt.Fprintf(out, "%d. Hello, %s!\n", i, name)
				} else {
					fmt.Fprintf(out, "Hello, %s!\n", name)
				}
			}
			return nil
		},
	}

	cmd.Flags().Uint8VarP(&count, "count", "c", 1, "Number of times to greet")
	return cmd
}

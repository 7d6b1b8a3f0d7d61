package version

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/flarebyte/abacus/internal/buildinfo"
	"github.com/flarebyte/abacus/internal/output"
)

// NewCmd builds `abacus version [--short] [--json]`.
func NewCmd() *cobra.Command {
	var (
		flagShort bool
		flagJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagShort || !flagJSON {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "abacus %s\n", buildinfo.Summary())
				return err
			}

			// JSON goes to stdout, a human friendly line to stderr.
			fmt.Fprintf(cmd.ErrOrStderr(), "abacus version: %s\n", buildinfo.Summary())
			b, err := output.Marshal(output.JSON, map[string]any{
				"version":       buildinfo.Version,
				"commit":        buildinfo.Commit,
				"date":          buildinfo.Date,
				"built_by":      buildinfo.BuiltBy,
				"output_format": buildinfo.OutputFormat,
				"go":            runtime.Version(),
				"go_os":         runtime.GOOS,
				"go_arch":       runtime.GOARCH,
				"timestamp":     time.Now().UTC().Format(time.RFC3339Nano),
			})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}

	cmd.Flags().BoolVar(&flagShort, "short", false, "Print only the version string")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "Print detailed JSON version info")
	return cmd
}

package root

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/flarebyte/abacus/cmd/abacus/eval"
	"github.com/flarebyte/abacus/cmd/abacus/generate"
	"github.com/flarebyte/abacus/cmd/abacus/greet"
	"github.com/flarebyte/abacus/cmd/abacus/mathcmd"
	"github.com/flarebyte/abacus/cmd/abacus/session"
	"github.com/flarebyte/abacus/cmd/abacus/version"
	"github.com/flarebyte/abacus/internal/buildinfo"
	"github.com/flarebyte/abacus/internal/exitcode"
	"github.com/flarebyte/abacus/internal/logging"
	"github.com/flarebyte/abacus/internal/output"
)

// NewRootCmd creates the root command for abacus.
func NewRootCmd() *cobra.Command {
	var (
		verbose    bool
		outputName string
	)

	cmd := &cobra.Command{
		Use:   "abacus",
		Short: "A small calculator with greet, math and generate commands",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				fmt.Fprintln(cmd.OutOrStdout(), "Running in verbose mode")
			}
			name := buildinfo.OutputFormat
			if cmd.Flags().Changed("output") {
				name = outputName
			}
			format, err := output.Parse(name)
			if err != nil {
				return exitcode.New(err)
			}
			log := logging.New(cmd.ErrOrStderr(), verbose)
			log.Debug("dispatch",
				zap.String("command", cmd.CommandPath()),
				zap.Strings("args", args),
				zap.String("output", string(format)))
			session.Attach(cmd, &session.Session{Log: log, Output: format})
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = session.From(cmd).Log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "abacus is running successfully!")
			fmt.Fprintln(out, "Use --help for available commands.")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print diagnostics while running")
	cmd.PersistentFlags().StringVarP(&outputName, "output", "o", "", "Structured echo format: "+output.SupportedCSV()+" (default from build: "+buildinfo.OutputFormat+")")

	// Subcommands
	cmd.AddCommand(greet.NewCmd())
	cmd.AddCommand(mathcmd.NewCmd())
	cmd.AddCommand(generate.NewCmd())
	cmd.AddCommand(eval.NewCmd())
	cmd.AddCommand(version.NewCmd())

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/damedic/xpath-temporal/internal/conformance"
)

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <cases.yaml>...",
		Short: "Run conformance case files",
		Long: `Run one or more YAML case files and print a report per file.

The command exits with status 1 if any case fails.

Example:
  xqtemporal run internal/conformance/testdata/*.yaml
  xqtemporal run --implicit-timezone=-05:00 cases.yaml`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := rootOpts.evalContext(cmd.Context())
			out := cmd.OutOrStdout()

			failed := 0
			for _, path := range args {
				slog.DebugContext(ctx, "loading cases", "path", path)
				suite, err := conformance.LoadCases(path)
				if err != nil {
					return WrapExitError(ExitCommandError, "failed to load cases", err)
				}
				report := conformance.Run(ctx, suite)
				if err := report.WriteText(out); err != nil {
					return err
				}
				failed += report.Failed()
			}

			if failed > 0 {
				return NewExitError(ExitFailure, fmt.Sprintf("%d cases failed", failed))
			}
			return nil
		},
	}
}

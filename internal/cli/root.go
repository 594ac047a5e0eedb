// Package cli implements the xqtemporal commands.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cockroachdb/apd/v3"
	"github.com/spf13/cobra"

	"github.com/damedic/xpath-temporal/temporal"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose          bool
	ImplicitTimezone string
	// Precision is the number of significant digits of decimal results. 0 keeps the default.
	Precision uint32

	implicitTimezone temporal.Timezone
}

// NewRootCommand creates the root command for the xqtemporal CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "xqtemporal",
		Short: "XPath and XQuery date, time and duration arithmetic",
		Long: `Evaluate XPath and XQuery operators on dates, times and durations.

Operands are typed literals such as xs:date("2000-01-31") or numeric literals.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if opts.Verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))

			tz, err := temporal.ParseTimezone(opts.ImplicitTimezone)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid --implicit-timezone", err)
			}
			opts.implicitTimezone = tz
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.ImplicitTimezone, "implicit-timezone", "", `implicit timezone, e.g. "Z" or "-05:00" (default UTC)`)
	cmd.PersistentFlags().Uint32Var(&opts.Precision, "precision", 0, "significant digits of decimal results (default 34)")

	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))

	return cmd
}

// evalContext carries the evaluation settings of the global flags.
func (opts *RootOptions) evalContext(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = temporal.WithImplicitTimezone(ctx, opts.implicitTimezone)
	if opts.Precision > 0 {
		c := apd.BaseContext.WithPrecision(opts.Precision)
		c.Rounding = apd.RoundHalfEven
		ctx = temporal.WithAPDContext(ctx, c)
	}
	slog.DebugContext(ctx, "evaluation settings", "implicitTimezone", fmt.Sprint(temporal.ImplicitTimezone(ctx)), "precision", opts.Precision)
	return ctx
}

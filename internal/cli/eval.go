package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/damedic/xpath-temporal/internal/conformance"
	"github.com/damedic/xpath-temporal/temporal"
)

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <left> <op> <right>",
		Short: "Evaluate one binary operator",
		Long: `Evaluate one binary operator and print the canonical result.

Operators are + - * div eq ne lt le gt ge. Failures print the error code.

Example:
  xqtemporal eval 'xs:dateTime("2000-10-30T11:12:00")' + 'xs:dayTimeDuration("P3DT1H15M")'
  xqtemporal eval 'xs:yearMonthDuration("P2Y11M")' div 1.5`,
		Args:          cobra.ExactArgs(3),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := rootOpts.evalContext(cmd.Context())
			out := cmd.OutOrStdout()

			left, err := conformance.ParseLiteral(args[0])
			if err != nil {
				return reportEvalError(cmd, "left operand", err)
			}
			op, err := temporal.ParseOperator(args[1])
			if err != nil {
				return reportEvalError(cmd, "operator", err)
			}
			right, err := conformance.ParseLiteral(args[2])
			if err != nil {
				return reportEvalError(cmd, "right operand", err)
			}

			slog.DebugContext(ctx, "evaluating", "left", left, "op", op, "right", right)
			result, err := temporal.Evaluate(ctx, op, left, right)
			if err != nil {
				return reportEvalError(cmd, "evaluation", err)
			}
			_, err = fmt.Fprintln(out, result)
			return err
		},
	}
}

// reportEvalError prints domain errors as results. Other errors are command errors.
func reportEvalError(cmd *cobra.Command, what string, err error) error {
	if _, ok := temporal.Classify(err); !ok {
		return WrapExitError(ExitCommandError, "invalid "+what, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "error %v\n", err)
	return NewExitError(ExitFailure, what+" failed")
}

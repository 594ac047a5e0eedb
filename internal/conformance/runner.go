package conformance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/damedic/xpath-temporal/temporal"
)

// Result is the outcome of one case.
type Result struct {
	Case   Case
	Passed bool
	// Got is the canonical result, or "error CODE".
	Got string
	// Err is set when the case could not be evaluated as written,
	// e.g. an unreadable literal.
	Err error
}

// Run evaluates every case of suite. ctx supplies the defaults for cases without
// their own implicit timezone.
func Run(ctx context.Context, suite *Suite) Report {
	report := Report{Suite: suite.Name}
	for _, c := range suite.Cases {
		r := runCase(ctx, suite, c)
		if r.Passed {
			slog.DebugContext(ctx, "case passed", "suite", suite.Name, "case", c.Name, "got", r.Got)
		} else {
			slog.InfoContext(ctx, "case failed", "suite", suite.Name, "case", c.Name, "got", r.Got, "err", r.Err)
		}
		report.Results = append(report.Results, r)
	}
	return report
}

func runCase(ctx context.Context, suite *Suite, c Case) Result {
	r := Result{Case: c}

	tzLexical := c.ImplicitTimezone
	if tzLexical == "" {
		tzLexical = suite.ImplicitTimezone
	}
	if tzLexical != "" {
		tz, err := temporal.ParseTimezone(tzLexical)
		if err != nil {
			r.Err = fmt.Errorf("implicit timezone: %w", err)
			return r
		}
		ctx = temporal.WithImplicitTimezone(ctx, tz)
	}

	op, err := temporal.ParseOperator(c.Op)
	if err != nil {
		r.Err = err
		return r
	}
	// a malformed operand literal is a legitimate FORG0001 outcome
	left, err := ParseLiteral(c.Left)
	if err == nil {
		var right temporal.Value
		if right, err = ParseLiteral(c.Right); err == nil {
			var v temporal.Value
			if v, err = temporal.Evaluate(ctx, op, left, right); err == nil {
				r.Got = v.String()
			}
		}
	}

	if err != nil {
		kind, ok := temporal.Classify(err)
		if !ok {
			r.Err = err
			return r
		}
		r.Got = "error " + kind.Code()
		r.Passed = c.Error == kind.Code()
		if !r.Passed {
			r.Err = err
		}
		return r
	}
	r.Passed = c.Error == "" && r.Got == c.Result
	return r
}

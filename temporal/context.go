package temporal

import (
	"context"

	"github.com/cockroachdb/apd/v3"
)

type apdContextKey struct{}

// WithAPDContext sets the apd.Context used for decimal results of temporal operations,
// currently the ratio of two durations.
//
// The context controls precision and rounding. By default 34 significant digits are kept
// and ties are rounded half to even.
//
// Example:
//
//	ctx := temporal.WithAPDContext(context.Background(), apd.BaseContext.WithPrecision(10))
//	ratio, err := temporal.DivideDurationByDuration(ctx, a, b)
func WithAPDContext(
	ctx context.Context,
	apdContext *apd.Context,
) context.Context {
	return context.WithValue(ctx, apdContextKey{}, apdContext)
}

const defaultDecimalPrecision uint32 = 34

var defaultAPDContext = func() *apd.Context {
	c := apd.BaseContext.WithPrecision(defaultDecimalPrecision)
	c.Rounding = apd.RoundHalfEven
	return c
}()

func apdContext(ctx context.Context) *apd.Context {
	if ctx != nil {
		if apdContext, ok := ctx.Value(apdContextKey{}).(*apd.Context); ok && apdContext != nil {
			return apdContext
		}
	}
	return defaultAPDContext
}

type implicitTimezoneKey struct{}

// WithImplicitTimezone sets the implicit timezone of the evaluation.
//
// The implicit timezone is applied to operands without a timezone when they are compared
// with operands that have one, and by the one-argument timezone adjustment functions.
// Passing NoTimezone restores the default, which is UTC.
func WithImplicitTimezone(ctx context.Context, tz Timezone) context.Context {
	return context.WithValue(ctx, implicitTimezoneKey{}, tz)
}

// ImplicitTimezone returns the implicit timezone carried by ctx, or UTC.
func ImplicitTimezone(ctx context.Context) Timezone {
	if ctx != nil {
		if tz, ok := ctx.Value(implicitTimezoneKey{}).(Timezone); ok && tz.IsSet() {
			return tz
		}
	}
	return UTC
}

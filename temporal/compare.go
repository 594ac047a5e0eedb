package temporal

import (
	"context"
)

// Compare returns -1, 0 or 1 as a is before, equal to or after b.
//
// Calendar points compare with points of the same type. Operands without a timezone
// take the implicit timezone of ctx. yearMonthDuration and dayTimeDuration are
// totally ordered within their own type. Every other pair fails with KindTypeMismatch.
func Compare(ctx context.Context, a, b Value) (int, error) {
	switch x := a.(type) {
	case Date:
		if y, ok := b.(Date); ok {
			return compareInstants(ctx, x.midnight(), y.midnight())
		}
	case Time:
		if y, ok := b.(Time); ok {
			return compareInstants(ctx, x.anchored(), y.anchored())
		}
	case DateTime:
		if y, ok := b.(DateTime); ok {
			return compareInstants(ctx, x, y)
		}
	case YearMonthDuration:
		if y, ok := b.(YearMonthDuration); ok {
			return cmpInt(x.months, y.months), nil
		}
	case DayTimeDuration:
		if y, ok := b.(DayTimeDuration); ok {
			return decimalOrZero(x.seconds).Cmp(decimalOrZero(y.seconds)), nil
		}
	}
	return 0, typeMismatch("compare", a, b)
}

func compareInstants(ctx context.Context, a, b DateTime) (int, error) {
	implicit := ImplicitTimezone(ctx)
	x, ok := a.instant(implicit)
	if !ok {
		return 0, newError(KindOverflow, "compare", "%s out of range", a)
	}
	y, ok := b.instant(implicit)
	if !ok {
		return 0, newError(KindOverflow, "compare", "%s out of range", b)
	}
	return x.Cmp(y), nil
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Equal implements the eq operator. Any two durations are equal when both their
// month and second components are equal, so P0M eq PT0S.
func Equal(ctx context.Context, a, b Value) (bool, error) {
	am, as, aok := durationOf(a)
	bm, bs, bok := durationOf(b)
	if aok && bok {
		return am == bm && as.Cmp(bs) == 0, nil
	}
	c, err := Compare(ctx, a, b)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

// Less implements the lt operator.
func Less(ctx context.Context, a, b Value) (bool, error) {
	c, err := Compare(ctx, a, b)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// ValueCompare applies one of the value comparison operators eq, ne, lt, le, gt and ge.
func ValueCompare(ctx context.Context, op Operator, a, b Value) (bool, error) {
	switch op {
	case OpEq:
		return Equal(ctx, a, b)
	case OpNe:
		eq, err := Equal(ctx, a, b)
		return !eq && err == nil, err
	}
	c, err := Compare(ctx, a, b)
	if err != nil {
		return false, err
	}
	switch op {
	case OpLt:
		return c < 0, nil
	case OpLe:
		return c <= 0, nil
	case OpGt:
		return c > 0, nil
	case OpGe:
		return c >= 0, nil
	}
	return false, newError(KindTypeMismatch, op.String(), "not a comparison operator")
}

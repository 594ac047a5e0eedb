package temporal

import (
	"context"

	"github.com/cockroachdb/apd/v3"
	"github.com/damedic/xpath-temporal/temporal/internal/overflow"
)

// additive values support the + and - operators.
type additive interface {
	Value
	Add(ctx context.Context, other Value) (Value, error)
	Subtract(ctx context.Context, other Value) (Value, error)
}

// multiplicative values support the * and div operators.
type multiplicative interface {
	Value
	Multiply(ctx context.Context, other Value) (Value, error)
	Divide(ctx context.Context, other Value) (Value, error)
}

var (
	_ additive       = Date{}
	_ additive       = Time{}
	_ additive       = DateTime{}
	_ additive       = YearMonthDuration{}
	_ additive       = DayTimeDuration{}
	_ multiplicative = YearMonthDuration{}
	_ multiplicative = DayTimeDuration{}
	_ multiplicative = Numeric{}
)

func isPoint(v Value) bool {
	switch v.(type) {
	case Date, Time, DateTime:
		return true
	}
	return false
}

func isArithmeticDuration(v Value) bool {
	switch v.(type) {
	case YearMonthDuration, DayTimeDuration:
		return true
	}
	return false
}

func sameType(a, b Value) bool {
	return a != nil && b != nil && a.Type() == b.Type()
}

// AddDuration adds the duration d to the date, time or dateTime point.
func AddDuration(ctx context.Context, point, d Value) (Value, error) {
	p, ok := point.(additive)
	if !ok || !isPoint(point) || !isArithmeticDuration(d) {
		return nil, typeMismatch("add", point, d)
	}
	return p.Add(ctx, d)
}

// SubtractDuration subtracts the duration d from the date, time or dateTime point.
func SubtractDuration(ctx context.Context, point, d Value) (Value, error) {
	p, ok := point.(additive)
	if !ok || !isPoint(point) || !isArithmeticDuration(d) {
		return nil, typeMismatch("subtract", point, d)
	}
	return p.Subtract(ctx, d)
}

// AddDurations returns a + b for two durations of the same kind.
func AddDurations(ctx context.Context, a, b Value) (Value, error) {
	d, ok := a.(additive)
	if !ok || !isArithmeticDuration(a) || !sameType(a, b) {
		return nil, typeMismatch("add", a, b)
	}
	return d.Add(ctx, b)
}

// SubtractDurations returns a - b for two durations of the same kind.
func SubtractDurations(ctx context.Context, a, b Value) (Value, error) {
	d, ok := a.(additive)
	if !ok || !isArithmeticDuration(a) || !sameType(a, b) {
		return nil, typeMismatch("subtract", a, b)
	}
	return d.Subtract(ctx, b)
}

// MultiplyDuration returns d * n.
func MultiplyDuration(ctx context.Context, d Value, n Numeric) (Value, error) {
	m, ok := d.(multiplicative)
	if !ok || !isArithmeticDuration(d) {
		return nil, typeMismatch("multiply", d, n)
	}
	return m.Multiply(ctx, n)
}

// DivideDuration returns d div n.
//
// Dividing by zero fails with KindDivideByZeroNumeric, dividing by NaN with
// KindInvalidDivisor. Dividing by an infinity yields a zero duration.
func DivideDuration(ctx context.Context, d Value, n Numeric) (Value, error) {
	m, ok := d.(multiplicative)
	if !ok || !isArithmeticDuration(d) {
		return nil, typeMismatch("divide", d, n)
	}
	return m.Divide(ctx, n)
}

// DivideDurationByDuration returns the xs:decimal ratio a div b of two durations
// of the same kind, rounded by the apd.Context of ctx.
func DivideDurationByDuration(ctx context.Context, a, b Value) (Numeric, error) {
	if !isArithmeticDuration(a) || !sameType(a, b) {
		return Numeric{}, typeMismatch("divide", a, b)
	}
	x, y := scalar(a), scalar(b)
	if y.IsZero() {
		return Numeric{}, newError(KindDivideByZeroDuration, "divide", "%s div %s", a, b)
	}
	var res apd.Decimal
	if _, err := apdContext(ctx).Quo(&res, x, y); err != nil {
		return Numeric{}, newError(KindDurationOverflow, "divide", "%s div %s: %v", a, b, err)
	}
	return Numeric{typ: TypeDecimal, value: positiveZero(&res)}, nil
}

// Negate returns the unary minus of a duration.
func Negate(v Value) (Value, error) {
	switch d := v.(type) {
	case YearMonthDuration:
		return d.Negate(), nil
	case DayTimeDuration:
		return d.Negate(), nil
	case Duration:
		var n apd.Decimal
		n.Neg(decimalOrZero(d.seconds))
		return Duration{months: -d.months, seconds: positiveZero(&n)}, nil
	}
	return nil, typeMismatch("negate", v, nil)
}

// scalar returns the month or second count of a yearMonthDuration or dayTimeDuration.
func scalar(v Value) *apd.Decimal {
	switch d := v.(type) {
	case YearMonthDuration:
		return apd.New(d.months, 0)
	case DayTimeDuration:
		return decimalOrZero(d.seconds)
	}
	return apd.New(0, 0)
}

// checkFactor rejects NaN for both multiplication and division.
func checkFactor(op string, d Value, n Numeric) error {
	if n.IsNaN() {
		return newError(KindInvalidDivisor, op, "%s %s NaN", d, op)
	}
	return nil
}

func (d YearMonthDuration) Add(ctx context.Context, other Value) (Value, error) {
	switch o := other.(type) {
	case YearMonthDuration:
		sum, ok := overflow.Add(d.months, o.months)
		if !ok {
			return nil, newError(KindDurationOverflow, "add", "%s + %s", d, o)
		}
		return NewYearMonthDuration(sum)
	case Date, DateTime:
		return o.(additive).Add(ctx, d)
	}
	return nil, typeMismatch("add", d, other)
}

func (d YearMonthDuration) Subtract(ctx context.Context, other Value) (Value, error) {
	o, ok := other.(YearMonthDuration)
	if !ok {
		return nil, typeMismatch("subtract", d, other)
	}
	diff, ok := overflow.Sub(d.months, o.months)
	if !ok {
		return nil, newError(KindDurationOverflow, "subtract", "%s - %s", d, o)
	}
	return NewYearMonthDuration(diff)
}

// Multiply implements op:multiply-yearMonthDuration. The result is rounded
// half to even to whole months.
func (d YearMonthDuration) Multiply(ctx context.Context, other Value) (Value, error) {
	const op = "multiply"
	n, ok := other.(Numeric)
	if !ok {
		return nil, typeMismatch(op, d, other)
	}
	if err := checkFactor(op, d, n); err != nil {
		return nil, err
	}
	if n.IsInf() {
		return nil, newError(KindDurationOverflow, op, "%s * %s", d, n)
	}
	product, ok := exactMul(apd.New(d.months, 0), n.Decimal())
	if !ok {
		return nil, newError(KindDurationOverflow, op, "%s * %s", d, n)
	}
	return roundMonths(op, product, decimalOne)
}

// Divide implements op:divide-yearMonthDuration and
// op:divide-yearMonthDuration-by-yearMonthDuration.
func (d YearMonthDuration) Divide(ctx context.Context, other Value) (Value, error) {
	const op = "divide"
	switch o := other.(type) {
	case YearMonthDuration:
		return DivideDurationByDuration(ctx, d, o)
	case Numeric:
		if err := checkDivisor(op, d, o); err != nil {
			return nil, err
		}
		if o.IsInf() {
			return YearMonthDuration{}, nil
		}
		return roundMonths(op, apd.New(d.months, 0), o.Decimal())
	}
	return nil, typeMismatch(op, d, other)
}

func roundMonths(op string, x, y *apd.Decimal) (YearMonthDuration, error) {
	q, ok := quoHalfEven(x, y, 0)
	if !ok {
		return YearMonthDuration{}, newError(KindDurationOverflow, op, "months out of range")
	}
	months, err := q.Int64()
	if err != nil {
		return YearMonthDuration{}, newError(KindDurationOverflow, op, "%s months out of range", q.Text('f'))
	}
	return NewYearMonthDuration(months)
}

func checkDivisor(op string, d Value, n Numeric) error {
	if err := checkFactor(op, d, n); err != nil {
		return err
	}
	if n.IsZero() {
		return newError(KindDivideByZeroNumeric, op, "%s div %s", d, n)
	}
	return nil
}

func (d DayTimeDuration) Add(ctx context.Context, other Value) (Value, error) {
	switch o := other.(type) {
	case DayTimeDuration:
		sum, ok := exactAdd(decimalOrZero(d.seconds), decimalOrZero(o.seconds))
		if !ok {
			return nil, newError(KindDurationOverflow, "add", "%s + %s", d, o)
		}
		return dayTimeFromSeconds("add", sum)
	case Date, Time, DateTime:
		return o.(additive).Add(ctx, d)
	}
	return nil, typeMismatch("add", d, other)
}

func (d DayTimeDuration) Subtract(ctx context.Context, other Value) (Value, error) {
	o, ok := other.(DayTimeDuration)
	if !ok {
		return nil, typeMismatch("subtract", d, other)
	}
	diff, ok := exactAdd(decimalOrZero(d.seconds), o.Negate().seconds)
	if !ok {
		return nil, newError(KindDurationOverflow, "subtract", "%s - %s", d, o)
	}
	return dayTimeFromSeconds("subtract", diff)
}

// Multiply implements op:multiply-dayTimeDuration. The result keeps
// SecondsScale fractional digits, rounded half to even.
func (d DayTimeDuration) Multiply(ctx context.Context, other Value) (Value, error) {
	const op = "multiply"
	n, ok := other.(Numeric)
	if !ok {
		return nil, typeMismatch(op, d, other)
	}
	if err := checkFactor(op, d, n); err != nil {
		return nil, err
	}
	if n.IsInf() {
		return nil, newError(KindDurationOverflow, op, "%s * %s", d, n)
	}
	product, ok := exactMul(decimalOrZero(d.seconds), n.Decimal())
	if !ok {
		return nil, newError(KindDurationOverflow, op, "%s * %s", d, n)
	}
	return roundSeconds(op, product, decimalOne)
}

// Divide implements op:divide-dayTimeDuration and
// op:divide-dayTimeDuration-by-dayTimeDuration.
func (d DayTimeDuration) Divide(ctx context.Context, other Value) (Value, error) {
	const op = "divide"
	switch o := other.(type) {
	case DayTimeDuration:
		return DivideDurationByDuration(ctx, d, o)
	case Numeric:
		if err := checkDivisor(op, d, o); err != nil {
			return nil, err
		}
		if o.IsInf() {
			return DayTimeDuration{seconds: apd.New(0, 0)}, nil
		}
		return roundSeconds(op, decimalOrZero(d.seconds), o.Decimal())
	}
	return nil, typeMismatch(op, d, other)
}

func roundSeconds(op string, x, y *apd.Decimal) (DayTimeDuration, error) {
	q, ok := quoHalfEven(x, y, SecondsScale)
	if !ok {
		return DayTimeDuration{}, newError(KindDurationOverflow, op, "seconds out of range")
	}
	return dayTimeFromSeconds(op, q)
}

// Multiply implements number * duration.
func (n Numeric) Multiply(ctx context.Context, other Value) (Value, error) {
	if d, ok := other.(multiplicative); ok && isArithmeticDuration(other) {
		return d.Multiply(ctx, n)
	}
	return nil, typeMismatch("multiply", n, other)
}

// Divide is not defined with a numeric dividend here; numeric division belongs
// to the numeric tower.
func (n Numeric) Divide(ctx context.Context, other Value) (Value, error) {
	return nil, typeMismatch("divide", n, other)
}

package temporal

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Date is an xs:date: a calendar day with an optional timezone.
type Date struct {
	year       int64
	month, day uint8
	tz         Timezone
}

// NewDate returns the date year-month-day, validated against the proleptic
// Gregorian calendar.
func NewDate(year int64, month, day int, tz Timezone) (Date, error) {
	if err := validateDate("xs:date", year, month, day); err != nil {
		return Date{}, err
	}
	return Date{year: year, month: uint8(month), day: uint8(day), tz: tz}, nil
}

// ParseDate parses the lexical form [-]YYYY-MM-DD[timezone].
func ParseDate(s string) (Date, error) {
	const op = "parse xs:date"
	s = strings.TrimSpace(s)
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return Date{}, newError(KindParse, op, "invalid value %q", s)
	}
	y, mo, d, err := parseDateFields(op, m[1], m[2], m[3])
	if err != nil {
		return Date{}, err
	}
	tz, err := parseZone(op, m[4])
	if err != nil {
		return Date{}, err
	}
	return Date{year: y, month: uint8(mo), day: uint8(d), tz: tz}, nil
}

func (d Date) Year() int64        { return d.year }
func (d Date) Month() int         { return int(d.month) }
func (d Date) Day() int           { return int(d.day) }
func (d Date) Timezone() Timezone { return d.tz }
func (d Date) Type() Type         { return TypeDate }
func (d Date) isValue()           {}
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%s-%02d-%02d%s", formatYear(d.year), d.month, d.day, d.tz)
}

func formatYear(y int64) string {
	if y < 0 {
		return fmt.Sprintf("-%04d", -y)
	}
	return fmt.Sprintf("%04d", y)
}

// midnight returns the dateTime at the start of d.
func (d Date) midnight() DateTime {
	return DateTime{year: d.year, month: d.month, day: d.day, second: apd.New(0, 0), tz: d.tz}
}

// WithTimezone attaches tz to a date without a timezone.
func (d Date) WithTimezone(tz Timezone) (Date, error) {
	if d.tz.IsSet() {
		return Date{}, newError(KindTypeMismatch, "with timezone", "%v already has a timezone", d)
	}
	d.tz = tz
	return d, nil
}

// AdjustToTimezone implements fn:adjust-date-to-timezone.
func (d Date) AdjustToTimezone(tz Timezone) (Date, error) {
	dt, err := d.midnight().AdjustToTimezone(tz)
	if err != nil {
		return Date{}, err
	}
	return dt.Date(), nil
}

// AdjustToImplicitTimezone adjusts d to the implicit timezone of ctx.
func (d Date) AdjustToImplicitTimezone(ctx context.Context) (Date, error) {
	return d.AdjustToTimezone(ImplicitTimezone(ctx))
}

// Add implements op:add-yearMonthDuration-to-date and op:add-dayTimeDuration-to-date.
func (d Date) Add(ctx context.Context, other Value) (Value, error) {
	switch o := other.(type) {
	case YearMonthDuration:
		return d.addMonths("add", o.months)
	case DayTimeDuration:
		return d.addSeconds("add", o.TotalSeconds())
	}
	return nil, typeMismatch("add", d, other)
}

// Subtract implements op:subtract-yearMonthDuration-from-date and
// op:subtract-dayTimeDuration-from-date.
func (d Date) Subtract(ctx context.Context, other Value) (Value, error) {
	switch o := other.(type) {
	case YearMonthDuration:
		return d.addMonths("subtract", o.Negate().months)
	case DayTimeDuration:
		return d.addSeconds("subtract", o.Negate().TotalSeconds())
	}
	return nil, typeMismatch("subtract", d, other)
}

func (d Date) addMonths(op string, months int64) (Date, error) {
	y, m, day, err := shiftMonths(op, d.year, int(d.month), int(d.day), months)
	if err != nil {
		return Date{}, err
	}
	return Date{year: y, month: uint8(m), day: uint8(day), tz: d.tz}, nil
}

func (d Date) addSeconds(op string, secs *apd.Decimal) (Date, error) {
	dt, err := d.midnight().addSeconds(op, secs)
	if err != nil {
		return Date{}, err
	}
	return dt.Date(), nil
}

package temporal

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// DateTime is an xs:dateTime.
type DateTime struct {
	year                     int64
	month, day, hour, minute uint8
	second                   *apd.Decimal
	tz                       Timezone
}

// NewDateTime returns a validated dateTime. second may carry a fraction and
// must lie in [0, 60).
func NewDateTime(year int64, month, day, hour, minute int, second *apd.Decimal, tz Timezone) (DateTime, error) {
	const op = "xs:dateTime"
	if err := validateDate(op, year, month, day); err != nil {
		return DateTime{}, err
	}
	second = decimalOrZero(second)
	if err := validateClock(op, hour, minute, second); err != nil {
		return DateTime{}, err
	}
	return DateTime{
		year:   year,
		month:  uint8(month),
		day:    uint8(day),
		hour:   uint8(hour),
		minute: uint8(minute),
		second: new(apd.Decimal).Set(second),
		tz:     tz,
	}, nil
}

// ParseDateTime parses [-]YYYY-MM-DDThh:mm:ss[.f][timezone].
// A time of 24:00:00 denotes the first instant of the following day.
func ParseDateTime(s string) (DateTime, error) {
	const op = "parse xs:dateTime"
	s = strings.TrimSpace(s)
	m := dateTimePattern.FindStringSubmatch(s)
	if m == nil {
		return DateTime{}, newError(KindParse, op, "invalid value %q", s)
	}
	y, mo, d, err := parseDateFields(op, m[1], m[2], m[3])
	if err != nil {
		return DateTime{}, err
	}
	hour, minute, second, nextDay, err := parseClockFields(op, m[4], m[5], m[6])
	if err != nil {
		return DateTime{}, err
	}
	tz, err := parseZone(op, m[7])
	if err != nil {
		return DateTime{}, err
	}
	dt := DateTime{
		year:   y,
		month:  uint8(mo),
		day:    uint8(d),
		hour:   uint8(hour),
		minute: uint8(minute),
		second: second,
		tz:     tz,
	}
	if nextDay {
		return dt.addSeconds(op, secondsPerDay)
	}
	return dt, nil
}

// Combine implements fn:dateTime: the date of d at the time of t.
// If both carry a timezone the timezones must be equal.
func Combine(d Date, t Time) (DateTime, error) {
	tz := d.tz
	switch {
	case d.tz.IsSet() && t.tz.IsSet() && d.tz != t.tz:
		return DateTime{}, newError(KindTimezoneConflict, "dateTime", "%v and %v have different timezones", d, t)
	case !d.tz.IsSet():
		tz = t.tz
	}
	return DateTime{
		year:   d.year,
		month:  d.month,
		day:    d.day,
		hour:   t.hour,
		minute: t.minute,
		second: decimalOrZero(t.second),
		tz:     tz,
	}, nil
}

func (dt DateTime) Year() int64        { return dt.year }
func (dt DateTime) Month() int         { return int(dt.month) }
func (dt DateTime) Day() int           { return int(dt.day) }
func (dt DateTime) Hour() int          { return int(dt.hour) }
func (dt DateTime) Minute() int        { return int(dt.minute) }
func (dt DateTime) Timezone() Timezone { return dt.tz }
func (dt DateTime) Type() Type         { return TypeDateTime }
func (dt DateTime) isValue()           {}

// Second returns the seconds including the fraction.
func (dt DateTime) Second() *apd.Decimal {
	return new(apd.Decimal).Set(decimalOrZero(dt.second))
}

// Date returns the date part, keeping the timezone.
func (dt DateTime) Date() Date {
	return Date{year: dt.year, month: dt.month, day: dt.day, tz: dt.tz}
}

// Time returns the time part, keeping the timezone.
func (dt DateTime) Time() Time {
	return Time{hour: dt.hour, minute: dt.minute, second: decimalOrZero(dt.second), tz: dt.tz}
}

func (dt DateTime) String() string {
	return fmt.Sprintf("%s-%02d-%02dT%s%s",
		formatYear(dt.year), dt.month, dt.day,
		formatClock(int(dt.hour), int(dt.minute), decimalOrZero(dt.second)), dt.tz)
}

func (dt DateTime) MarshalText() ([]byte, error) {
	return []byte(dt.String()), nil
}

// WithTimezone attaches tz without shifting the clock. It fails for values
// that already have a timezone.
func (dt DateTime) WithTimezone(tz Timezone) (DateTime, error) {
	if dt.tz.IsSet() {
		return DateTime{}, newError(KindTypeMismatch, "with timezone", "%v already has a timezone", dt)
	}
	dt.tz = tz
	return dt, nil
}

// AdjustToTimezone implements fn:adjust-dateTime-to-timezone. NoTimezone removes the
// timezone, a local value gets tz attached, otherwise the clock is shifted to tz.
func (dt DateTime) AdjustToTimezone(tz Timezone) (DateTime, error) {
	switch {
	case !tz.IsSet(), !dt.tz.IsSet():
		dt.tz = tz
		return dt, nil
	case tz == dt.tz:
		return dt, nil
	}
	delta := apd.New(int64(tz.Minutes()-dt.tz.Minutes())*60, 0)
	shifted, err := dt.addSeconds("adjust to timezone", delta)
	if err != nil {
		return DateTime{}, err
	}
	shifted.tz = tz
	return shifted, nil
}

// AdjustToImplicitTimezone adjusts dt to the implicit timezone of ctx.
func (dt DateTime) AdjustToImplicitTimezone(ctx context.Context) (DateTime, error) {
	return dt.AdjustToTimezone(ImplicitTimezone(ctx))
}

// Add implements op:add-yearMonthDuration-to-dateTime and
// op:add-dayTimeDuration-to-dateTime.
func (dt DateTime) Add(ctx context.Context, other Value) (Value, error) {
	switch o := other.(type) {
	case YearMonthDuration:
		return dt.addMonths("add", o.months)
	case DayTimeDuration:
		return dt.addSeconds("add", o.TotalSeconds())
	}
	return nil, typeMismatch("add", dt, other)
}

// Subtract implements op:subtract-yearMonthDuration-from-dateTime and
// op:subtract-dayTimeDuration-from-dateTime.
func (dt DateTime) Subtract(ctx context.Context, other Value) (Value, error) {
	switch o := other.(type) {
	case YearMonthDuration:
		return dt.addMonths("subtract", o.Negate().months)
	case DayTimeDuration:
		return dt.addSeconds("subtract", o.Negate().TotalSeconds())
	}
	return nil, typeMismatch("subtract", dt, other)
}

func (dt DateTime) addMonths(op string, months int64) (DateTime, error) {
	y, m, d, err := shiftMonths(op, dt.year, int(dt.month), int(dt.day), months)
	if err != nil {
		return DateTime{}, err
	}
	dt.year, dt.month, dt.day = y, uint8(m), uint8(d)
	return dt, nil
}

// addSeconds moves the wall clock by secs. The timezone is kept as is.
func (dt DateTime) addSeconds(op string, secs *apd.Decimal) (DateTime, error) {
	local, ok := dt.localSeconds()
	if !ok {
		return DateTime{}, newError(KindOverflow, op, "%v out of range", dt)
	}
	sum, ok := exactAdd(local, secs)
	if !ok {
		return DateTime{}, newError(KindOverflow, op, "result out of range")
	}
	f, err := fromLocalSeconds(op, sum)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{
		year:   f.year,
		month:  uint8(f.month),
		day:    uint8(f.day),
		hour:   uint8(f.hour),
		minute: uint8(f.minute),
		second: f.second,
		tz:     dt.tz,
	}, nil
}

func (dt DateTime) localSeconds() (*apd.Decimal, bool) {
	return localSeconds(dt.year, int(dt.month), int(dt.day), int(dt.hour), int(dt.minute), dt.second)
}

// instant returns the seconds since 1970-01-01T00:00:00Z, using implicit for a
// value without timezone.
func (dt DateTime) instant(implicit Timezone) (*apd.Decimal, bool) {
	local, ok := dt.localSeconds()
	if !ok {
		return nil, false
	}
	tz := dt.tz
	if !tz.IsSet() {
		tz = implicit
	}
	return exactAdd(local, apd.New(-int64(tz.Minutes())*60, 0))
}

func formatClock(hour, minute int, second *apd.Decimal) string {
	var integ, frac apd.Decimal
	second.Modf(&integ, &frac)
	s, _ := integ.Int64()
	out := fmt.Sprintf("%02d:%02d:%02d", hour, minute, s)
	if !frac.IsZero() {
		// "0.5" -> ".5"
		out += strings.TrimPrefix(formatDecimal(&frac), "0")
	}
	return out
}

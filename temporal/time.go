package temporal

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Time is an xs:time: a time of day with an optional timezone.
type Time struct {
	hour, minute uint8
	second       *apd.Decimal
	tz           Timezone
}

// Times are compared and adjusted as dateTimes on this reference date.
var timeAnchor = Date{year: 1972, month: 12, day: 31}

// NewTime returns a validated time of day.
func NewTime(hour, minute int, second *apd.Decimal, tz Timezone) (Time, error) {
	second = decimalOrZero(second)
	if err := validateClock("xs:time", hour, minute, second); err != nil {
		return Time{}, err
	}
	return Time{hour: uint8(hour), minute: uint8(minute), second: new(apd.Decimal).Set(second), tz: tz}, nil
}

// ParseTime parses hh:mm:ss[.f][timezone]. 24:00:00 is read as 00:00:00.
func ParseTime(s string) (Time, error) {
	const op = "parse xs:time"
	s = strings.TrimSpace(s)
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return Time{}, newError(KindParse, op, "invalid value %q", s)
	}
	hour, minute, second, _, err := parseClockFields(op, m[1], m[2], m[3])
	if err != nil {
		return Time{}, err
	}
	tz, err := parseZone(op, m[4])
	if err != nil {
		return Time{}, err
	}
	return Time{hour: uint8(hour), minute: uint8(minute), second: second, tz: tz}, nil
}

func (t Time) Hour() int          { return int(t.hour) }
func (t Time) Minute() int        { return int(t.minute) }
func (t Time) Timezone() Timezone { return t.tz }
func (t Time) Type() Type         { return TypeTime }
func (t Time) isValue()           {}

// Second returns the seconds including the fraction.
func (t Time) Second() *apd.Decimal {
	return new(apd.Decimal).Set(decimalOrZero(t.second))
}

func (t Time) String() string {
	return fmt.Sprintf("%s%s", formatClock(int(t.hour), int(t.minute), decimalOrZero(t.second)), t.tz)
}

func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t Time) anchored() DateTime {
	dt, _ := Combine(Date{year: timeAnchor.year, month: timeAnchor.month, day: timeAnchor.day, tz: t.tz}, t)
	return dt
}

// WithTimezone attaches tz to a time without a timezone.
func (t Time) WithTimezone(tz Timezone) (Time, error) {
	if t.tz.IsSet() {
		return Time{}, newError(KindTypeMismatch, "with timezone", "%v already has a timezone", t)
	}
	t.tz = tz
	return t, nil
}

// AdjustToTimezone implements fn:adjust-time-to-timezone.
func (t Time) AdjustToTimezone(tz Timezone) (Time, error) {
	dt, err := t.anchored().AdjustToTimezone(tz)
	if err != nil {
		return Time{}, err
	}
	return dt.Time(), nil
}

// AdjustToImplicitTimezone adjusts t to the implicit timezone of ctx.
func (t Time) AdjustToImplicitTimezone(ctx context.Context) (Time, error) {
	return t.AdjustToTimezone(ImplicitTimezone(ctx))
}

// Add implements op:add-dayTimeDuration-to-time. The result wraps around midnight.
func (t Time) Add(ctx context.Context, other Value) (Value, error) {
	if o, ok := other.(DayTimeDuration); ok {
		return t.addSeconds("add", o.TotalSeconds())
	}
	return nil, typeMismatch("add", t, other)
}

// Subtract implements op:subtract-dayTimeDuration-from-time.
func (t Time) Subtract(ctx context.Context, other Value) (Value, error) {
	if o, ok := other.(DayTimeDuration); ok {
		return t.addSeconds("subtract", o.Negate().TotalSeconds())
	}
	return nil, typeMismatch("subtract", t, other)
}

func (t Time) addSeconds(op string, secs *apd.Decimal) (Time, error) {
	tod, ok := exactAdd(apd.New(int64(t.hour)*3600+int64(t.minute)*60, 0), decimalOrZero(t.second))
	if ok {
		tod, ok = exactAdd(tod, secs)
	}
	if !ok {
		return Time{}, newError(KindOverflow, op, "result out of range")
	}
	_, r, ok := floorDivMod(tod, secondsPerDay)
	if !ok {
		return Time{}, newError(KindOverflow, op, "result out of range")
	}
	hour, minute, second := splitDaySeconds(r)
	return Time{hour: uint8(hour), minute: uint8(minute), second: second, tz: t.tz}, nil
}

package temporal

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/damedic/xpath-temporal/temporal/internal/overflow"
)

// YearMonthDuration is an xs:yearMonthDuration, a signed number of months.
type YearMonthDuration struct {
	months int64
}

// DayTimeDuration is an xs:dayTimeDuration, a signed number of seconds.
// The whole seconds always fit an int64.
type DayTimeDuration struct {
	seconds *apd.Decimal
}

// Duration is an xs:duration with both a month and a second component.
// Both components carry the same sign.
type Duration struct {
	months  int64
	seconds *apd.Decimal
}

var (
	durationPattern   = regexp.MustCompile(`^(-)?P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d*)?|\.\d+)S)?)?$`)
	maxDayTimeSeconds = apd.New(math.MaxInt64, 0)
)

// NewYearMonthDuration returns a duration of months months.
func NewYearMonthDuration(months int64) (YearMonthDuration, error) {
	if months == math.MinInt64 {
		return YearMonthDuration{}, newError(KindDurationOverflow, "xs:yearMonthDuration", "%d months out of range", months)
	}
	return YearMonthDuration{months: months}, nil
}

// NewDayTimeDuration returns a duration of seconds seconds.
func NewDayTimeDuration(seconds *apd.Decimal) (DayTimeDuration, error) {
	return dayTimeFromSeconds("xs:dayTimeDuration", decimalOrZero(seconds))
}

// NewDuration returns an xs:duration. months and seconds must not have opposite signs.
func NewDuration(months int64, seconds *apd.Decimal) (Duration, error) {
	const op = "xs:duration"
	ym, err := NewYearMonthDuration(months)
	if err != nil {
		return Duration{}, err
	}
	dt, err := NewDayTimeDuration(seconds)
	if err != nil {
		return Duration{}, err
	}
	if (ym.months < 0 && dt.seconds.Sign() > 0) || (ym.months > 0 && dt.seconds.Sign() < 0) {
		return Duration{}, newError(KindParse, op, "components %d and %s have different signs", months, dt.seconds.Text('f'))
	}
	return Duration{months: ym.months, seconds: dt.seconds}, nil
}

func dayTimeFromSeconds(op string, secs *apd.Decimal) (DayTimeDuration, error) {
	var abs apd.Decimal
	abs.Abs(secs)
	if secs.Form != apd.Finite || abs.Cmp(maxDayTimeSeconds) > 0 {
		return DayTimeDuration{}, newError(KindDurationOverflow, op, "%s seconds out of range", secs.Text('f'))
	}
	return DayTimeDuration{seconds: positiveZero(new(apd.Decimal).Set(secs))}, nil
}

type durationParts struct {
	months       int64
	seconds      *apd.Decimal
	hasYearMonth bool
	hasDayTime   bool
}

func parseDurationParts(op, s string) (durationParts, error) {
	s = strings.TrimSpace(s)
	m := durationPattern.FindStringSubmatch(s)
	if m == nil || s == "P" || s == "-P" || strings.HasSuffix(s, "T") {
		return durationParts{}, newError(KindParse, op, "invalid value %q", s)
	}
	p := durationParts{
		hasYearMonth: m[2] != "" || m[3] != "",
		hasDayTime:   m[4] != "" || m[5] != "" || m[6] != "" || m[7] != "",
	}
	if !p.hasYearMonth && !p.hasDayTime {
		return durationParts{}, newError(KindParse, op, "invalid value %q", s)
	}

	years, err := parseDurationInt(op, m[2])
	if err != nil {
		return durationParts{}, err
	}
	months, err := parseDurationInt(op, m[3])
	if err != nil {
		return durationParts{}, err
	}
	total, ok := overflow.Mul(years, 12)
	if ok {
		total, ok = overflow.Add(total, months)
	}
	if !ok {
		return durationParts{}, newError(KindDurationOverflow, op, "%q out of range", s)
	}

	secs := apd.New(0, 0)
	for i, unit := range []*apd.Decimal{secondsPerDay, secondsPerHour, sixty, decimalOne} {
		lexical := m[4+i]
		if lexical == "" {
			continue
		}
		v, _, err := apd.NewFromString(lexical)
		if err != nil {
			return durationParts{}, newError(KindParse, op, "invalid component %q", lexical)
		}
		if v, ok = exactMul(v, unit); ok {
			secs, ok = exactAdd(secs, v)
		}
		if !ok {
			return durationParts{}, newError(KindDurationOverflow, op, "%q out of range", s)
		}
	}

	if m[1] == "-" {
		total = -total
		secs.Neg(secs)
	}
	dt, err := dayTimeFromSeconds(op, secs)
	if err != nil {
		return durationParts{}, err
	}
	p.months, p.seconds = total, dt.seconds
	return p, nil
}

func parseDurationInt(op, s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, newError(KindDurationOverflow, op, "component %s out of range", s)
	}
	if err != nil {
		return 0, newError(KindParse, op, "invalid component %q", s)
	}
	return v, nil
}

// ParseYearMonthDuration parses [-]PnYnM.
func ParseYearMonthDuration(s string) (YearMonthDuration, error) {
	const op = "parse xs:yearMonthDuration"
	p, err := parseDurationParts(op, s)
	if err != nil {
		return YearMonthDuration{}, err
	}
	if p.hasDayTime {
		return YearMonthDuration{}, newError(KindParse, op, "invalid value %q", s)
	}
	return YearMonthDuration{months: p.months}, nil
}

// ParseDayTimeDuration parses [-]PnDTnHnMnS.
func ParseDayTimeDuration(s string) (DayTimeDuration, error) {
	const op = "parse xs:dayTimeDuration"
	p, err := parseDurationParts(op, s)
	if err != nil {
		return DayTimeDuration{}, err
	}
	if p.hasYearMonth {
		return DayTimeDuration{}, newError(KindParse, op, "invalid value %q", s)
	}
	return DayTimeDuration{seconds: p.seconds}, nil
}

// ParseDuration parses [-]PnYnMnDTnHnMnS.
func ParseDuration(s string) (Duration, error) {
	p, err := parseDurationParts("parse xs:duration", s)
	if err != nil {
		return Duration{}, err
	}
	return Duration{months: p.months, seconds: p.seconds}, nil
}

func (d YearMonthDuration) Type() Type { return TypeYearMonthDuration }
func (d YearMonthDuration) isValue()   {}

// TotalMonths returns the length of d in months.
func (d YearMonthDuration) TotalMonths() int64 { return d.months }

// Years returns the years component, as fn:years-from-duration.
func (d YearMonthDuration) Years() int64 { return d.months / 12 }

// Months returns the months component, as fn:months-from-duration.
func (d YearMonthDuration) Months() int64 { return d.months % 12 }

// Negate returns -d.
func (d YearMonthDuration) Negate() YearMonthDuration {
	return YearMonthDuration{months: -d.months}
}

func (d YearMonthDuration) String() string {
	if d.months == 0 {
		return "P0M"
	}
	var b strings.Builder
	m := d.months
	if m < 0 {
		b.WriteByte('-')
		m = -m
	}
	b.WriteByte('P')
	writeYearMonth(&b, m)
	return b.String()
}

func (d YearMonthDuration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func writeYearMonth(b *strings.Builder, months int64) {
	if y := months / 12; y > 0 {
		fmt.Fprintf(b, "%dY", y)
	}
	if m := months % 12; m > 0 {
		fmt.Fprintf(b, "%dM", m)
	}
}

func (d DayTimeDuration) Type() Type { return TypeDayTimeDuration }
func (d DayTimeDuration) isValue()   {}

// TotalSeconds returns the length of d in seconds.
func (d DayTimeDuration) TotalSeconds() *apd.Decimal {
	return new(apd.Decimal).Set(decimalOrZero(d.seconds))
}

// Days returns the days component, as fn:days-from-duration.
func (d DayTimeDuration) Days() int64 {
	total, _ := d.split()
	return total / 86400
}

// Hours returns the hours component, as fn:hours-from-duration.
func (d DayTimeDuration) Hours() int64 {
	total, _ := d.split()
	return total % 86400 / 3600
}

// Minutes returns the minutes component, as fn:minutes-from-duration.
func (d DayTimeDuration) Minutes() int64 {
	total, _ := d.split()
	return total % 3600 / 60
}

// Seconds returns the seconds component including the fraction,
// as fn:seconds-from-duration.
func (d DayTimeDuration) Seconds() *apd.Decimal {
	total, frac := d.split()
	s, _ := exactAdd(apd.New(total%60, 0), frac)
	return s
}

// split returns the whole seconds and the fraction, both carrying the sign of d.
func (d DayTimeDuration) split() (int64, *apd.Decimal) {
	var integ, frac apd.Decimal
	decimalOrZero(d.seconds).Modf(&integ, &frac)
	total, _ := integ.Int64()
	return total, &frac
}

// Negate returns -d.
func (d DayTimeDuration) Negate() DayTimeDuration {
	var n apd.Decimal
	n.Neg(decimalOrZero(d.seconds))
	return DayTimeDuration{seconds: positiveZero(&n)}
}

func (d DayTimeDuration) String() string {
	secs := decimalOrZero(d.seconds)
	if secs.IsZero() {
		return "PT0S"
	}
	var b strings.Builder
	if secs.Negative {
		b.WriteByte('-')
	}
	b.WriteByte('P')
	writeDayTime(&b, secs)
	return b.String()
}

func (d DayTimeDuration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func writeDayTime(b *strings.Builder, secs *apd.Decimal) {
	var abs, integ, frac apd.Decimal
	abs.Abs(secs)
	abs.Modf(&integ, &frac)
	total, _ := integ.Int64()
	days, hours, minutes, seconds := total/86400, total%86400/3600, total%3600/60, total%60
	if days > 0 {
		fmt.Fprintf(b, "%dD", days)
	}
	if hours == 0 && minutes == 0 && seconds == 0 && frac.IsZero() {
		return
	}
	b.WriteByte('T')
	if hours > 0 {
		fmt.Fprintf(b, "%dH", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(b, "%dM", minutes)
	}
	if seconds > 0 || !frac.IsZero() {
		fmt.Fprintf(b, "%d", seconds)
		if !frac.IsZero() {
			b.WriteString(strings.TrimPrefix(formatDecimal(&frac), "0"))
		}
		b.WriteByte('S')
	}
}

func (d Duration) Type() Type { return TypeDuration }
func (d Duration) isValue()   {}

// YearMonth returns the month component as yearMonthDuration.
func (d Duration) YearMonth() YearMonthDuration {
	return YearMonthDuration{months: d.months}
}

// DayTime returns the second component as dayTimeDuration.
func (d Duration) DayTime() DayTimeDuration {
	return DayTimeDuration{seconds: decimalOrZero(d.seconds)}
}

func (d Duration) String() string {
	secs := decimalOrZero(d.seconds)
	if d.months == 0 {
		return d.DayTime().String()
	}
	var b strings.Builder
	m := d.months
	if m < 0 {
		b.WriteByte('-')
		m = -m
	}
	b.WriteByte('P')
	writeYearMonth(&b, m)
	if !secs.IsZero() {
		writeDayTime(&b, secs)
	}
	return b.String()
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// durationOf returns the month and second components of any duration value.
func durationOf(v Value) (months int64, seconds *apd.Decimal, ok bool) {
	switch d := v.(type) {
	case YearMonthDuration:
		return d.months, apd.New(0, 0), true
	case DayTimeDuration:
		return 0, decimalOrZero(d.seconds), true
	case Duration:
		return d.months, decimalOrZero(d.seconds), true
	}
	return 0, nil, false
}

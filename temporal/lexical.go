package temporal

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

var (
	datePattern     = regexp.MustCompile(`^(-?\d{4,})-(\d{2})-(\d{2})(Z|[+-]\d{2}:\d{2})?$`)
	timePattern     = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2}(?:\.\d+)?)(Z|[+-]\d{2}:\d{2})?$`)
	dateTimePattern = regexp.MustCompile(`^(-?\d{4,})-(\d{2})-(\d{2})T(\d{2}):(\d{2}):(\d{2}(?:\.\d+)?)(Z|[+-]\d{2}:\d{2})?$`)
)

func parseYear(op, s string) (int64, error) {
	digits := strings.TrimPrefix(s, "-")
	if len(digits) > 4 && digits[0] == '0' {
		return 0, newError(KindParse, op, "year %q has leading zeros", s)
	}
	y, err := strconv.ParseInt(s, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, newError(KindOverflow, op, "year %s out of range", s)
	}
	if err != nil {
		return 0, newError(KindParse, op, "invalid year %q", s)
	}
	if err := checkYear(op, y); err != nil {
		return 0, err
	}
	return y, nil
}

func validateDate(op string, y int64, m, d int) error {
	if err := checkYear(op, y); err != nil {
		return err
	}
	if m < 1 || m > 12 {
		return newError(KindParse, op, "month %d out of range", m)
	}
	if d < 1 || d > daysInMonth(y, m) {
		return newError(KindParse, op, "day %d out of range for %04d-%02d", d, y, m)
	}
	return nil
}

func parseDateFields(op, ys, ms, ds string) (y int64, m, d int, err error) {
	if y, err = parseYear(op, ys); err != nil {
		return 0, 0, 0, err
	}
	m, _ = strconv.Atoi(ms)
	d, _ = strconv.Atoi(ds)
	if err = validateDate(op, y, m, d); err != nil {
		return 0, 0, 0, err
	}
	return y, m, d, nil
}

var sixty = apd.New(60, 0)

func validateClock(op string, hour, minute int, second *apd.Decimal) error {
	if hour < 0 || hour > 23 {
		return newError(KindParse, op, "hour %d out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return newError(KindParse, op, "minute %d out of range", minute)
	}
	if second.Form != apd.Finite || second.Negative || second.Cmp(sixty) >= 0 {
		return newError(KindParse, op, "second %s out of range", second.Text('f'))
	}
	return nil
}

// parseClockFields parses hh, mm and ss[.f]. 24:00:00 is returned as 00:00:00 with
// nextDay set.
func parseClockFields(op, hs, ms, ss string) (hour, minute int, second *apd.Decimal, nextDay bool, err error) {
	hour, _ = strconv.Atoi(hs)
	minute, _ = strconv.Atoi(ms)
	second, _, err = apd.NewFromString(ss)
	if err != nil {
		return 0, 0, nil, false, newError(KindParse, op, "invalid seconds %q", ss)
	}
	if hour == 24 {
		if minute != 0 || !second.IsZero() {
			return 0, 0, nil, false, newError(KindParse, op, "24:%s:%s is not midnight", ms, ss)
		}
		return 0, 0, apd.New(0, 0), true, nil
	}
	if err = validateClock(op, hour, minute, second); err != nil {
		return 0, 0, nil, false, err
	}
	return hour, minute, second, false, nil
}

func parseZone(op, s string) (Timezone, error) {
	tz, err := ParseTimezone(s)
	if err != nil {
		return NoTimezone, newError(KindParse, op, "invalid timezone %q", s)
	}
	return tz, nil
}

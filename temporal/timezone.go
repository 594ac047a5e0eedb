package temporal

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Timezone is an optional offset from UTC in whole minutes.
type Timezone struct {
	offset int16
	set    bool
}

const maxTimezoneMinutes = 14 * 60

var (
	// NoTimezone marks a local value.
	NoTimezone = Timezone{}
	// UTC is the zero offset.
	UTC = Timezone{set: true}
)

// NewTimezone returns the offset of minutes east of UTC.
func NewTimezone(minutes int) (Timezone, error) {
	if minutes < -maxTimezoneMinutes || minutes > maxTimezoneMinutes {
		return NoTimezone, newError(KindInvalidTimezone, "timezone", "offset %d minutes outside -14:00..+14:00", minutes)
	}
	return Timezone{offset: int16(minutes), set: true}, nil
}

// TimezoneFromDuration converts a dayTimeDuration such as -PT5H to a timezone,
// as the timezone argument of the adjustment functions is given.
func TimezoneFromDuration(d DayTimeDuration) (Timezone, error) {
	secs := d.TotalSeconds()
	var minutes, rem apd.Decimal
	if _, err := exactContext.QuoInteger(&minutes, secs, apd.New(60, 0)); err != nil {
		return NoTimezone, newError(KindInvalidTimezone, "timezone", "invalid offset %v", d)
	}
	if _, err := exactContext.Rem(&rem, secs, apd.New(60, 0)); err != nil || !rem.IsZero() {
		return NoTimezone, newError(KindInvalidTimezone, "timezone", "offset %v is not a whole number of minutes", d)
	}
	m, err := minutes.Int64()
	if err != nil || m < -maxTimezoneMinutes || m > maxTimezoneMinutes {
		return NoTimezone, newError(KindInvalidTimezone, "timezone", "offset %v outside -PT14H..PT14H", d)
	}
	return Timezone{offset: int16(m), set: true}, nil
}

// ParseTimezone parses "Z", "+hh:mm" or "-hh:mm". The empty string is NoTimezone.
func ParseTimezone(s string) (Timezone, error) {
	switch {
	case s == "":
		return NoTimezone, nil
	case s == "Z":
		return UTC, nil
	case len(s) == 6 && (s[0] == '+' || s[0] == '-') && s[3] == ':':
		h, errH := strconv.Atoi(s[1:3])
		m, errM := strconv.Atoi(s[4:6])
		if errH != nil || errM != nil || !isDigits(s[1:3]) || !isDigits(s[4:6]) || m > 59 {
			break
		}
		if h*60+m > maxTimezoneMinutes {
			return NoTimezone, newError(KindParse, "parse timezone", "offset %q outside -14:00..+14:00", s)
		}
		minutes := h*60 + m
		if s[0] == '-' {
			minutes = -minutes
		}
		return Timezone{offset: int16(minutes), set: true}, nil
	}
	return NoTimezone, newError(KindParse, "parse timezone", "invalid timezone %q", s)
}

// IsSet reports whether tz carries an offset.
func (tz Timezone) IsSet() bool {
	return tz.set
}

// Minutes returns the offset east of UTC. It is 0 for NoTimezone.
func (tz Timezone) Minutes() int {
	return int(tz.offset)
}

// Duration returns the offset as dayTimeDuration, as fn:timezone-from-dateTime does.
func (tz Timezone) Duration() (DayTimeDuration, bool) {
	if !tz.set {
		return DayTimeDuration{}, false
	}
	return DayTimeDuration{seconds: apd.New(int64(tz.offset)*60, 0)}, true
}

// String returns "Z", "+hh:mm", "-hh:mm", or "" for NoTimezone.
func (tz Timezone) String() string {
	if !tz.set {
		return ""
	}
	if tz.offset == 0 {
		return "Z"
	}
	sign := '+'
	m := int(tz.offset)
	if m < 0 {
		sign = '-'
		m = -m
	}
	return fmt.Sprintf("%c%02d:%02d", sign, m/60, m%60)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

package temporal_test

import (
	"math"
	"testing"

	"github.com/damedic/xpath-temporal/temporal"
)

func TestParseCanonical(t *testing.T) {
	tests := []struct {
		name  string
		typ   temporal.Type
		input string
		want  string
	}{
		{"date", temporal.TypeDate, "2000-01-01", "2000-01-01"},
		{"date bce", temporal.TypeDate, "-0044-03-15", "-0044-03-15"},
		{"date zero offset", temporal.TypeDate, "2000-01-01+00:00", "2000-01-01Z"},
		{"year zero", temporal.TypeDate, "0000-01-01", "0000-01-01"},
		{"negative year zero", temporal.TypeDate, "-0000-01-01", "0000-01-01"},
		{"five digit year", temporal.TypeDate, "12345-06-07", "12345-06-07"},
		{"leap day", temporal.TypeDate, "2000-02-29", "2000-02-29"},
		{"time fraction", temporal.TypeTime, "13:20:00.500", "13:20:00.5"},
		{"time end of day", temporal.TypeTime, "24:00:00", "00:00:00"},
		{"time offset", temporal.TypeTime, "23:59:59.123-05:30", "23:59:59.123-05:30"},
		{"dateTime end of day", temporal.TypeDateTime, "1999-12-31T24:00:00", "2000-01-01T00:00:00"},
		{"dateTime zero fraction", temporal.TypeDateTime, "2000-01-01T00:00:00.000Z", "2000-01-01T00:00:00Z"},
		{"dateTime offset", temporal.TypeDateTime, "2002-04-02T12:00:00-01:00", "2002-04-02T12:00:00-01:00"},
		{"yearMonthDuration carry", temporal.TypeYearMonthDuration, "P1Y12M", "P2Y"},
		{"yearMonthDuration zero", temporal.TypeYearMonthDuration, "P0Y", "P0M"},
		{"yearMonthDuration negative", temporal.TypeYearMonthDuration, "-P15M", "-P1Y3M"},
		{"dayTimeDuration carry", temporal.TypeDayTimeDuration, "PT36H", "P1DT12H"},
		{"dayTimeDuration zero", temporal.TypeDayTimeDuration, "P0D", "PT0S"},
		{"dayTimeDuration negative zero", temporal.TypeDayTimeDuration, "-P0D", "PT0S"},
		{"dayTimeDuration fraction", temporal.TypeDayTimeDuration, "-PT0.50S", "-PT0.5S"},
		{"dayTimeDuration zero fraction", temporal.TypeDayTimeDuration, "P1DT0H0M0.000S", "P1D"},
		{"dayTimeDuration minutes", temporal.TypeDayTimeDuration, "PT90M", "PT1H30M"},
		{"duration", temporal.TypeDuration, "P1Y2M3DT4H5M6.7S", "P1Y2M3DT4H5M6.7S"},
		{"duration zero", temporal.TypeDuration, "P0Y0M0DT0S", "PT0S"},
		{"duration months only", temporal.TypeDuration, "P1MT0S", "P1M"},
		{"duration negative", temporal.TypeDuration, "-P1M", "-P1M"},
		{"integer", temporal.TypeInteger, "007", "7"},
		{"integer hundred", temporal.TypeInteger, "100", "100"},
		{"decimal", temporal.TypeDecimal, "1.50", "1.5"},
		{"decimal integral", temporal.TypeDecimal, "2.0", "2"},
		{"double exponent", temporal.TypeDouble, "1e7", "1.0E7"},
		{"double plain", temporal.TypeDouble, "1.5e0", "1.5"},
		{"double small", temporal.TypeDouble, "0.00000015", "1.5E-7"},
		{"double negative zero", temporal.TypeDouble, "-0", "-0"},
		{"double infinity", temporal.TypeDouble, "-INF", "-INF"},
		{"double nan", temporal.TypeDouble, "NaN", "NaN"},
		{"float", temporal.TypeFloat, "0.1", "0.1"},
		{"boolean", temporal.TypeBoolean, "1", "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := temporal.Parse(tt.typ, tt.input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got := v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if v.Type() != tt.typ {
				t.Errorf("Type() = %v, want %v", v.Type(), tt.typ)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		typ   temporal.Type
		input string
		want  temporal.ErrorKind
	}{
		{"no leap day", temporal.TypeDate, "2001-02-29", temporal.KindParse},
		{"century no leap day", temporal.TypeDate, "1900-02-29", temporal.KindParse},
		{"month 13", temporal.TypeDate, "2000-13-01", temporal.KindParse},
		{"leading zero year", temporal.TypeDate, "02000-01-01", temporal.KindParse},
		{"short year", temporal.TypeDate, "200-01-01", temporal.KindParse},
		{"year beyond range", temporal.TypeDate, "25252734927766555-01-01", temporal.KindOverflow},
		{"year beyond int64", temporal.TypeDate, "99999999999999999999-01-01", temporal.KindOverflow},
		{"time after midnight", temporal.TypeTime, "24:00:01", temporal.KindParse},
		{"minute 60", temporal.TypeTime, "12:60:00", temporal.KindParse},
		{"offset out of range", temporal.TypeTime, "12:00:00+15:00", temporal.KindParse},
		{"dateTime without time", temporal.TypeDateTime, "2000-01-01", temporal.KindParse},
		{"day in yearMonthDuration", temporal.TypeYearMonthDuration, "P1D", temporal.KindParse},
		{"empty duration", temporal.TypeYearMonthDuration, "P", temporal.KindParse},
		{"bare designator", temporal.TypeDuration, "PT", temporal.KindParse},
		{"trailing designator", temporal.TypeDuration, "P1YT", temporal.KindParse},
		{"years beyond int64", temporal.TypeYearMonthDuration, "P99999999999999999999Y", temporal.KindDurationOverflow},
		{"months beyond int64", temporal.TypeYearMonthDuration, "P768614336404564651Y", temporal.KindDurationOverflow},
		{"month in dayTimeDuration", temporal.TypeDayTimeDuration, "P1M", temporal.KindParse},
		{"seconds beyond int64", temporal.TypeDayTimeDuration, "P106751991167301D", temporal.KindDurationOverflow},
		{"integer with fraction", temporal.TypeInteger, "1.5", temporal.KindParse},
		{"decimal with exponent", temporal.TypeDecimal, "1e5", temporal.KindParse},
		{"double garbage", temporal.TypeDouble, "abc", temporal.KindParse},
		{"boolean garbage", temporal.TypeBoolean, "yes", temporal.KindParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := temporal.Parse(tt.typ, tt.input)
			if err == nil {
				t.Fatalf("Parse(%v, %q) succeeded, want %v", tt.typ, tt.input, tt.want)
			}
			if got := kindOf(t, err); got != tt.want {
				t.Errorf("kind = %v, want %v (%v)", got, tt.want, err)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	if _, err := temporal.NewDate(2001, 2, 29, temporal.NoTimezone); kindOf(t, err) != temporal.KindParse {
		t.Errorf("NewDate(2001-02-29) error = %v, want KindParse", err)
	}
	if _, err := temporal.NewDate(temporal.MaxYear+1, 1, 1, temporal.NoTimezone); kindOf(t, err) != temporal.KindOverflow {
		t.Errorf("NewDate(MaxYear+1) error = %v, want KindOverflow", err)
	}
	d, err := temporal.NewDate(temporal.MinYear, 1, 1, temporal.UTC)
	if err != nil {
		t.Fatalf("NewDate(MinYear) error = %v", err)
	}
	if d.Year() != temporal.MinYear {
		t.Errorf("Year() = %d, want %d", d.Year(), temporal.MinYear)
	}
	if _, err := temporal.NewTime(24, 0, nil, temporal.NoTimezone); kindOf(t, err) != temporal.KindParse {
		t.Errorf("NewTime(24, 0) error = %v, want KindParse", err)
	}
	if _, err := temporal.NewTimezone(841); kindOf(t, err) != temporal.KindInvalidTimezone {
		t.Errorf("NewTimezone(841) error = %v, want KindInvalidTimezone", err)
	}
	if _, err := temporal.NewYearMonthDuration(math.MinInt64); kindOf(t, err) != temporal.KindDurationOverflow {
		t.Errorf("NewYearMonthDuration(MinInt64) error = %v, want KindDurationOverflow", err)
	}
	tz, err := temporal.NewTimezone(-330)
	if err != nil {
		t.Fatalf("NewTimezone(-330) error = %v", err)
	}
	if got := tz.String(); got != "-05:30" {
		t.Errorf("String() = %q, want -05:30", got)
	}
}

func TestDurationComponents(t *testing.T) {
	ym := mustParse(t, temporal.TypeYearMonthDuration, "-P1Y3M").(temporal.YearMonthDuration)
	if ym.Years() != -1 || ym.Months() != -3 || ym.TotalMonths() != -15 {
		t.Errorf("components of %v = %d, %d, %d", ym, ym.Years(), ym.Months(), ym.TotalMonths())
	}

	dt := mustParse(t, temporal.TypeDayTimeDuration, "-P1DT2H3M4.5S").(temporal.DayTimeDuration)
	if dt.Days() != -1 || dt.Hours() != -2 || dt.Minutes() != -3 {
		t.Errorf("components of %v = %d, %d, %d", dt, dt.Days(), dt.Hours(), dt.Minutes())
	}
	if got := dt.Seconds().Text('f'); got != "-4.5" {
		t.Errorf("Seconds() = %s, want -4.5", got)
	}
	if got := dt.TotalSeconds().Text('f'); got != "-93784.5" {
		t.Errorf("TotalSeconds() = %s, want -93784.5", got)
	}
}

func TestTimezones(t *testing.T) {
	plus10, _ := temporal.NewTimezone(600)
	minus5, _ := temporal.NewTimezone(-300)
	minus10, _ := temporal.NewTimezone(-600)

	local := mustParse(t, temporal.TypeDateTime, "2002-03-07T10:00:00").(temporal.DateTime)
	zoned := mustParse(t, temporal.TypeDateTime, "2002-03-07T10:00:00-07:00").(temporal.DateTime)

	tests := []struct {
		name string
		dt   temporal.DateTime
		tz   temporal.Timezone
		want string
	}{
		{"attach to local", local, minus5, "2002-03-07T10:00:00-05:00"},
		{"shift", zoned, minus5, "2002-03-07T12:00:00-05:00"},
		{"shift across day", zoned, plus10, "2002-03-08T03:00:00+10:00"},
		{"shift back", zoned, minus10, "2002-03-07T07:00:00-10:00"},
		{"remove", zoned, temporal.NoTimezone, "2002-03-07T10:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.dt.AdjustToTimezone(tt.tz)
			if err != nil {
				t.Fatalf("AdjustToTimezone() error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("AdjustToTimezone() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := zoned.WithTimezone(minus5); kindOf(t, err) != temporal.KindTypeMismatch {
		t.Errorf("WithTimezone() on zoned value error = %v, want KindTypeMismatch", err)
	}
	withTZ, err := local.WithTimezone(minus5)
	if err != nil || withTZ.String() != "2002-03-07T10:00:00-05:00" {
		t.Errorf("WithTimezone() = %v, %v", withTZ, err)
	}

	tm := mustParse(t, temporal.TypeTime, "10:00:00-07:00").(temporal.Time)
	adjusted, err := tm.AdjustToTimezone(minus10)
	if err != nil || adjusted.String() != "07:00:00-10:00" {
		t.Errorf("Time.AdjustToTimezone() = %v, %v", adjusted, err)
	}

	d := mustParse(t, temporal.TypeDate, "2002-03-07-07:00").(temporal.Date)
	adjustedDate, err := d.AdjustToTimezone(minus10)
	if err != nil || adjustedDate.String() != "2002-03-06-10:00" {
		t.Errorf("Date.AdjustToTimezone() = %v, %v", adjustedDate, err)
	}
}

func TestCombine(t *testing.T) {
	d := mustParse(t, temporal.TypeDate, "1999-12-31").(temporal.Date)
	tm := mustParse(t, temporal.TypeTime, "12:00:00Z").(temporal.Time)
	dt, err := temporal.Combine(d, tm)
	if err != nil {
		t.Fatalf("Combine() error = %v", err)
	}
	if dt.String() != "1999-12-31T12:00:00Z" {
		t.Errorf("Combine() = %v", dt)
	}
	if dt.Date().String() != "1999-12-31Z" || dt.Time().String() != "12:00:00Z" {
		t.Errorf("Date(), Time() = %v, %v", dt.Date(), dt.Time())
	}

	zoned := mustParse(t, temporal.TypeDate, "1999-12-31+01:00").(temporal.Date)
	if _, err := temporal.Combine(zoned, tm); kindOf(t, err) != temporal.KindTimezoneConflict {
		t.Errorf("Combine() error = %v, want KindTimezoneConflict", err)
	}
}

func TestNumeric(t *testing.T) {
	tests := []struct {
		name string
		n    temporal.Numeric
		want string
	}{
		{"double ten million", temporal.Double(1e7), "1.0E7"},
		{"double one million", temporal.Double(1e6), "1.0E6"},
		{"double plain", temporal.Double(123456.5), "123456.5"},
		{"double tenth", temporal.Double(0.1), "0.1"},
		{"double negative zero", temporal.Double(math.Copysign(0, -1)), "-0"},
		{"double infinity", temporal.Double(math.Inf(1)), "INF"},
		{"float tenth", temporal.Float(0.1), "0.1"},
		{"integer", temporal.Integer(-42), "-42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.n.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}

	if !temporal.Double(math.NaN()).IsNaN() || !temporal.Double(math.Inf(-1)).IsInf() {
		t.Error("NaN or INF not detected")
	}
	if !temporal.Double(math.Copysign(0, -1)).IsZero() {
		t.Error("-0 not detected as zero")
	}
}

func TestMarshalText(t *testing.T) {
	values := []temporal.Value{
		mustParse(t, temporal.TypeDate, "2000-01-01Z"),
		mustParse(t, temporal.TypeDayTimeDuration, "PT1.5S"),
		mustParse(t, temporal.TypeYearMonthDuration, "P1Y"),
	}
	for _, v := range values {
		m, ok := v.(interface{ MarshalText() ([]byte, error) })
		if !ok {
			t.Fatalf("%T does not implement MarshalText", v)
		}
		b, err := m.MarshalText()
		if err != nil || string(b) != v.String() {
			t.Errorf("MarshalText() = %q, %v, want %q", b, err, v.String())
		}
	}
}

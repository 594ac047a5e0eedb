package temporal

import (
	"github.com/cockroachdb/apd/v3"
	"github.com/damedic/xpath-temporal/temporal/internal/overflow"
)

const (
	// MaxYear is the largest supported year. The day count of every supported
	// date fits an int64 with room to spare.
	MaxYear int64 = 25252734927766552
	// MinYear is the smallest supported year. It sits closer to zero than -MaxYear
	// because day counts are taken relative to 1970. Year 0 exists and precedes year 1.
	MinYear int64 = -25252734927762552
)

// daysFromEpoch of 0000-03-01, the start of the 400 year era used below.
const epochShift = 719468

func isLeapYear(y int64) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

func daysInMonth(y int64, m int) int {
	switch m {
	case 2:
		if isLeapYear(y) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	}
	return 31
}

func checkYear(op string, y int64) error {
	if y < MinYear || y > MaxYear {
		return newError(KindOverflow, op, "year %d outside %d..%d", y, MinYear, MaxYear)
	}
	return nil
}

// daysFromCivil returns the number of days from 1970-01-01 to y-m-d
// in the proleptic Gregorian calendar.
func daysFromCivil(y int64, m, d int) (int64, bool) {
	if m <= 2 {
		y--
	}
	era, yoe, ok := overflow.FloorDiv(y, 400)
	if !ok {
		return 0, false
	}
	mp := (m + 9) % 12
	doy := int64((153*mp+2)/5 + d - 1)
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	days, ok := overflow.Mul(era, 146097)
	if !ok {
		return 0, false
	}
	if days, ok = overflow.Add(days, doe); !ok {
		return 0, false
	}
	return overflow.Sub(days, epochShift)
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(z int64) (y int64, m, d int, ok bool) {
	if z, ok = overflow.Add(z, epochShift); !ok {
		return 0, 0, 0, false
	}
	era, doe, _ := overflow.FloorDiv(z, 146097)
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	if y, ok = overflow.Mul(era, 400); !ok {
		return 0, 0, 0, false
	}
	if y, ok = overflow.Add(y, yoe); !ok {
		return 0, 0, 0, false
	}
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := int((5*doy + 2) / 153)
	d = int(doy) - (153*mp+2)/5 + 1
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		if y, ok = overflow.Add(y, 1); !ok {
			return 0, 0, 0, false
		}
	}
	return y, m, d, true
}

// shiftMonths adds months to y-m and clamps d to the length of the resulting month.
func shiftMonths(op string, y int64, m, d int, months int64) (int64, int, int, error) {
	index, ok := overflow.Mul(y, 12)
	if ok {
		index, ok = overflow.Add(index, int64(m-1))
	}
	if ok {
		index, ok = overflow.Add(index, months)
	}
	if !ok {
		return 0, 0, 0, newError(KindOverflow, op, "year out of range")
	}
	ny, nm, _ := overflow.FloorDiv(index, 12)
	if err := checkYear(op, ny); err != nil {
		return 0, 0, 0, err
	}
	month := int(nm) + 1
	return ny, month, min(d, daysInMonth(ny, month)), nil
}

// localSeconds returns the seconds from 1970-01-01T00:00:00 to the given wall clock.
func localSeconds(y int64, m, d, hour, minute int, second *apd.Decimal) (*apd.Decimal, bool) {
	days, ok := daysFromCivil(y, m, d)
	if !ok {
		return nil, false
	}
	secs, ok := exactMul(apd.New(days, 0), secondsPerDay)
	if !ok {
		return nil, false
	}
	secs, ok = exactAdd(secs, apd.New(int64(hour)*3600+int64(minute)*60, 0))
	if !ok {
		return nil, false
	}
	return exactAdd(secs, decimalOrZero(second))
}

// fields is a decomposed wall clock.
type fields struct {
	year         int64
	month, day   int
	hour, minute int
	second       *apd.Decimal
}

// fromLocalSeconds decomposes seconds since 1970-01-01T00:00:00. The day count
// and the year are range checked before any field is produced.
func fromLocalSeconds(op string, secs *apd.Decimal) (fields, error) {
	q, r, ok := floorDivMod(secs, secondsPerDay)
	if !ok {
		return fields{}, newError(KindOverflow, op, "result out of range")
	}
	days, err := q.Int64()
	if err != nil {
		return fields{}, newError(KindOverflow, op, "result out of range")
	}
	y, m, d, ok := civilFromDays(days)
	if !ok {
		return fields{}, newError(KindOverflow, op, "result out of range")
	}
	if err := checkYear(op, y); err != nil {
		return fields{}, err
	}
	hour, minute, second := splitDaySeconds(r)
	return fields{year: y, month: m, day: d, hour: hour, minute: minute, second: second}, nil
}

// splitDaySeconds splits seconds within one day, 0 <= r < 86400, into clock fields.
func splitDaySeconds(r *apd.Decimal) (hour, minute int, second *apd.Decimal) {
	var integ, frac apd.Decimal
	r.Modf(&integ, &frac)
	sod, _ := integ.Int64()
	hour = int(sod / 3600)
	minute = int(sod % 3600 / 60)
	second, _ = exactAdd(apd.New(sod%60, 0), &frac)
	return hour, minute, second
}

package temporal

import (
	"github.com/cockroachdb/apd/v3"
)

// SecondsScale is the number of fractional second digits kept by
// dayTimeDuration multiplication and division.
const SecondsScale = 9

// exactContext carries enough digits that sums and products of calendar
// seconds never round. Callers still check for apd.Inexact.
var exactContext = apd.BaseContext.WithPrecision(200)

var (
	decimalOne     = apd.New(1, 0)
	decimalTwo     = apd.New(2, 0)
	secondsPerDay  = apd.New(86400, 0)
	secondsPerHour = apd.New(3600, 0)
)

func decimalOrZero(d *apd.Decimal) *apd.Decimal {
	if d == nil {
		return apd.New(0, 0)
	}
	return d
}

// positiveZero clears the sign of a zero so -0 never leaks into canonical forms.
func positiveZero(d *apd.Decimal) *apd.Decimal {
	if d.Form == apd.Finite && d.IsZero() {
		d.Negative = false
	}
	return d
}

func isIntegral(d *apd.Decimal) bool {
	var integ, frac apd.Decimal
	d.Modf(&integ, &frac)
	return frac.IsZero()
}

func exactAdd(x, y *apd.Decimal) (*apd.Decimal, bool) {
	var res apd.Decimal
	cond, err := exactContext.Add(&res, x, y)
	if err != nil || cond.Inexact() {
		return nil, false
	}
	return positiveZero(&res), true
}

func exactMul(x, y *apd.Decimal) (*apd.Decimal, bool) {
	var res apd.Decimal
	cond, err := exactContext.Mul(&res, x, y)
	if err != nil || cond.Inexact() {
		return nil, false
	}
	return positiveZero(&res), true
}

// floorDivMod splits x into floor(x/y) and the non-negative remainder for positive y.
func floorDivMod(x, y *apd.Decimal) (q, r *apd.Decimal, ok bool) {
	q, r = new(apd.Decimal), new(apd.Decimal)
	if _, err := exactContext.QuoInteger(q, x, y); err != nil {
		return nil, nil, false
	}
	if _, err := exactContext.Rem(r, x, y); err != nil {
		return nil, nil, false
	}
	if r.Negative && !r.IsZero() {
		if _, err := exactContext.Sub(q, q, decimalOne); err != nil {
			return nil, nil, false
		}
		if _, err := exactContext.Add(r, r, y); err != nil {
			return nil, nil, false
		}
	}
	return positiveZero(q), positiveZero(r), true
}

// quoHalfEven returns x/y rounded half to even at scale fractional digits.
// The quotient is computed exactly before rounding, so ties are real ties.
func quoHalfEven(x, y *apd.Decimal, scale int32) (*apd.Decimal, bool) {
	var xs apd.Decimal
	xs.Set(x)
	xs.Exponent += scale

	var q, r apd.Decimal
	if _, err := exactContext.QuoInteger(&q, &xs, y); err != nil {
		return nil, false
	}
	if _, err := exactContext.Rem(&r, &xs, y); err != nil {
		return nil, false
	}
	if !r.IsZero() {
		var twiceR, absY apd.Decimal
		twiceR.Abs(&r)
		if _, err := exactContext.Mul(&twiceR, &twiceR, decimalTwo); err != nil {
			return nil, false
		}
		absY.Abs(y)
		c := twiceR.Cmp(&absY)
		if c > 0 || (c == 0 && isOdd(&q)) {
			var err error
			if xs.Negative != y.Negative {
				_, err = exactContext.Sub(&q, &q, decimalOne)
			} else {
				_, err = exactContext.Add(&q, &q, decimalOne)
			}
			if err != nil {
				return nil, false
			}
		}
	}
	q.Exponent -= scale
	return positiveZero(&q), true
}

func isOdd(d *apd.Decimal) bool {
	var rem apd.Decimal
	if _, err := exactContext.Rem(&rem, d, decimalTwo); err != nil {
		return false
	}
	return !rem.IsZero()
}

// formatDecimal renders d without exponent and without trailing fractional zeros.
func formatDecimal(d *apd.Decimal) string {
	var r apd.Decimal
	r.Reduce(d)
	if r.IsZero() {
		return "0"
	}
	return r.Text('f')
}

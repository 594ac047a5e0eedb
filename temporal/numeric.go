package temporal

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Numeric is an xs:integer, xs:decimal, xs:float or xs:double operand.
//
// Numeric only carries what duration arithmetic needs from the numeric tower:
// the exact value, NaN, the infinities and negative zero.
type Numeric struct {
	typ   Type
	value *apd.Decimal
}

// Integer returns an xs:integer.
func Integer(v int64) Numeric {
	return Numeric{typ: TypeInteger, value: apd.New(v, 0)}
}

// NewDecimal returns an xs:decimal holding a copy of d.
func NewDecimal(d *apd.Decimal) Numeric {
	return Numeric{typ: TypeDecimal, value: new(apd.Decimal).Set(d)}
}

// Double returns an xs:double.
func Double(f float64) Numeric {
	return Numeric{typ: TypeDouble, value: decimalFromFloat(f, 64)}
}

// Float returns an xs:float.
func Float(f float32) Numeric {
	return Numeric{typ: TypeFloat, value: decimalFromFloat(float64(f), 32)}
}

func decimalFromFloat(f float64, bitSize int) *apd.Decimal {
	switch {
	case math.IsNaN(f):
		return &apd.Decimal{Form: apd.NaN}
	case math.IsInf(f, 0):
		return &apd.Decimal{Form: apd.Infinite, Negative: f < 0}
	}
	d, _, err := apd.NewFromString(strconv.FormatFloat(f, 'E', -1, bitSize))
	if err != nil {
		return &apd.Decimal{Form: apd.NaN}
	}
	return d
}

var (
	integerPattern = regexp.MustCompile(`^[+-]?\d+$`)
	decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)
	doublePattern  = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)
)

// ParseNumeric parses the lexical form of a numeric type.
func ParseNumeric(t Type, s string) (Numeric, error) {
	op := "parse " + t.String()
	s = strings.TrimSpace(s)
	switch t {
	case TypeInteger, TypeDecimal:
		pattern := decimalPattern
		if t == TypeInteger {
			pattern = integerPattern
		}
		if !pattern.MatchString(s) {
			return Numeric{}, newError(KindParse, op, "invalid value %q", s)
		}
		d, _, err := apd.NewFromString(s)
		if err != nil {
			return Numeric{}, newError(KindParse, op, "invalid value %q: %v", s, err)
		}
		return Numeric{typ: t, value: d}, nil
	case TypeFloat, TypeDouble:
		bitSize := 64
		if t == TypeFloat {
			bitSize = 32
		}
		var f float64
		switch s {
		case "NaN":
			f = math.NaN()
		case "INF", "+INF":
			f = math.Inf(1)
		case "-INF":
			f = math.Inf(-1)
		default:
			if !doublePattern.MatchString(s) {
				return Numeric{}, newError(KindParse, op, "invalid value %q", s)
			}
			var err error
			f, err = strconv.ParseFloat(s, bitSize)
			// out of range literals round to the infinities or zero
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				return Numeric{}, newError(KindParse, op, "invalid value %q: %v", s, err)
			}
		}
		return Numeric{typ: t, value: decimalFromFloat(f, bitSize)}, nil
	}
	return Numeric{}, newError(KindParse, op, "%v is not numeric", t)
}

func (n Numeric) Type() Type {
	if n.typ == 0 {
		return TypeInteger
	}
	return n.typ
}
func (n Numeric) isValue() {}

// Decimal returns the value as apd decimal. NaN and the infinities use the matching apd forms.
func (n Numeric) Decimal() *apd.Decimal {
	return decimalOrZero(n.value)
}

// IsNaN reports whether n is NaN.
func (n Numeric) IsNaN() bool {
	f := n.Decimal().Form
	return f == apd.NaN || f == apd.NaNSignaling
}

// IsInf reports whether n is positive or negative infinity.
func (n Numeric) IsInf() bool {
	return n.Decimal().Form == apd.Infinite
}

// IsZero reports whether n is positive or negative zero.
func (n Numeric) IsZero() bool {
	d := n.Decimal()
	return d.Form == apd.Finite && d.IsZero()
}

// String returns the canonical form as produced by fn:string.
func (n Numeric) String() string {
	d := n.Decimal()
	switch n.Type() {
	case TypeFloat, TypeDouble:
		return formatDouble(d, n.Type() == TypeFloat)
	}
	return formatDecimal(d)
}

func formatDouble(d *apd.Decimal, single bool) string {
	switch d.Form {
	case apd.NaN, apd.NaNSignaling:
		return "NaN"
	case apd.Infinite:
		if d.Negative {
			return "-INF"
		}
		return "INF"
	}
	if d.IsZero() {
		if d.Negative {
			return "-0"
		}
		return "0"
	}
	bitSize := 64
	if single {
		bitSize = 32
	}
	f, err := d.Float64()
	if err != nil {
		return "NaN"
	}
	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e6 {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	// 1.5E-7 style, with at least one fractional mantissa digit
	s := strconv.FormatFloat(f, 'E', -1, bitSize)
	mantissa, exponent, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	exp, _ := strconv.Atoi(exponent)
	return mantissa + "E" + strconv.Itoa(exp)
}

// MarshalText implements encoding.TextMarshaler.
func (n Numeric) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

package conformance

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/damedic/xpath-temporal/temporal"
)

var (
	constructorPattern = regexp.MustCompile(`^xs:(\w+)\(\s*(?:"([^"]*)"|'([^']*)')\s*\)$`)
	integerLiteral     = regexp.MustCompile(`^[+-]?\d+$`)
	decimalLiteral     = regexp.MustCompile(`^[+-]?(\d+\.\d*|\.\d+)$`)
	doubleLiteral      = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)[eE][+-]?\d+$`)
)

// ParseLiteral reads a constructor call xs:T("lexical") or a numeric literal.
// Numeric literals follow XPath: 2 is an integer, 1.5 a decimal and 1.5e0 a double.
func ParseLiteral(s string) (temporal.Value, error) {
	s = strings.TrimSpace(s)
	if m := constructorPattern.FindStringSubmatch(s); m != nil {
		t, ok := temporal.ParseType(m[1])
		if !ok {
			return nil, fmt.Errorf("unknown type xs:%s", m[1])
		}
		return temporal.Parse(t, m[2]+m[3])
	}

	switch {
	case integerLiteral.MatchString(s):
		return temporal.ParseNumeric(temporal.TypeInteger, s)
	case decimalLiteral.MatchString(s):
		return temporal.ParseNumeric(temporal.TypeDecimal, s)
	case doubleLiteral.MatchString(s):
		return temporal.ParseNumeric(temporal.TypeDouble, s)
	}
	return nil, fmt.Errorf("invalid literal %q", s)
}

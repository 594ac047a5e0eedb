package temporal

import (
	"context"
	"fmt"
	"strings"
)

// Operator is a binary XPath operator on temporal values.
type Operator uint8

const (
	OpAdd Operator = iota + 1
	OpSubtract
	OpMultiply
	OpDivide
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
)

var operatorSymbols = map[Operator]string{
	OpAdd:      "+",
	OpSubtract: "-",
	OpMultiply: "*",
	OpDivide:   "div",
	OpEq:       "eq",
	OpNe:       "ne",
	OpLt:       "lt",
	OpLe:       "le",
	OpGt:       "gt",
	OpGe:       "ge",
}

// general comparison spellings, accepted as aliases
var operatorAliases = map[string]Operator{
	"=":  OpEq,
	"!=": OpNe,
	"<":  OpLt,
	"<=": OpLe,
	">":  OpGt,
	">=": OpGe,
}

func (op Operator) String() string {
	if s, ok := operatorSymbols[op]; ok {
		return s
	}
	return fmt.Sprintf("Operator(%d)", uint8(op))
}

// IsComparison reports whether op is one of eq, ne, lt, le, gt and ge.
func (op Operator) IsComparison() bool {
	return op >= OpEq && op <= OpGe
}

// ParseOperator resolves an operator symbol.
func ParseOperator(s string) (Operator, error) {
	s = strings.TrimSpace(s)
	for op, sym := range operatorSymbols {
		if sym == s {
			return op, nil
		}
	}
	if op, ok := operatorAliases[s]; ok {
		return op, nil
	}
	return 0, newError(KindParse, "parse operator", "unknown operator %q", s)
}

// Evaluate applies op to a and b.
//
// Arithmetic returns the resulting point, duration or ratio, comparisons return a Boolean.
// Operand pairs the operator is not defined for fail with KindTypeMismatch.
func Evaluate(ctx context.Context, op Operator, a, b Value) (Value, error) {
	if a == nil || b == nil {
		return nil, typeMismatch(op.String(), a, b)
	}
	if op.IsComparison() {
		ok, err := ValueCompare(ctx, op, a, b)
		if err != nil {
			return nil, err
		}
		return Boolean(ok), nil
	}

	switch op {
	case OpAdd:
		if x, ok := a.(additive); ok {
			return x.Add(ctx, b)
		}
	case OpSubtract:
		if x, ok := a.(additive); ok {
			return x.Subtract(ctx, b)
		}
	case OpMultiply:
		if x, ok := a.(multiplicative); ok {
			return x.Multiply(ctx, b)
		}
	case OpDivide:
		if x, ok := a.(multiplicative); ok {
			return x.Divide(ctx, b)
		}
	}
	return nil, typeMismatch(op.String(), a, b)
}

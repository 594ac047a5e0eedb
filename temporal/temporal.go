// Package temporal implements the date, time and duration values of XPath and XQuery
// together with their arithmetic, comparison and canonical serialization as defined by
// the XPath and XQuery Functions and Operators.
//
// All values are immutable. Operations return new values or an *Error whose Kind
// identifies the fault:
//
//	dt, _ := temporal.ParseDateTime("2000-10-30T11:12:00")
//	d, _ := temporal.ParseDayTimeDuration("P3DT1H15M")
//	sum, err := temporal.AddDuration(ctx, dt, d) // 2000-11-02T12:27:00
//
// Decimal precision and the implicit timezone are taken from the context.Context,
// see WithAPDContext and WithImplicitTimezone.
package temporal

import (
	"fmt"
	"strings"
)

// Value is one of Boolean, Numeric, Date, Time, DateTime, Duration,
// YearMonthDuration or DayTimeDuration.
type Value interface {
	// Type returns the XML Schema type of the value.
	Type() Type
	// String returns the canonical lexical form.
	String() string
	isValue()
}

// Type identifies the XML Schema type of a Value.
type Type uint8

const (
	TypeBoolean Type = iota + 1
	TypeInteger
	TypeDecimal
	TypeFloat
	TypeDouble
	TypeDate
	TypeTime
	TypeDateTime
	TypeDuration
	TypeYearMonthDuration
	TypeDayTimeDuration
)

var typeNames = map[Type]string{
	TypeBoolean:           "xs:boolean",
	TypeInteger:           "xs:integer",
	TypeDecimal:           "xs:decimal",
	TypeFloat:             "xs:float",
	TypeDouble:            "xs:double",
	TypeDate:              "xs:date",
	TypeTime:              "xs:time",
	TypeDateTime:          "xs:dateTime",
	TypeDuration:          "xs:duration",
	TypeYearMonthDuration: "xs:yearMonthDuration",
	TypeDayTimeDuration:   "xs:dayTimeDuration",
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// ParseType resolves a type name with or without the xs: prefix.
func ParseType(name string) (Type, bool) {
	name = strings.TrimPrefix(strings.TrimSpace(name), "xs:")
	for t, n := range typeNames {
		if n[len("xs:"):] == name {
			return t, true
		}
	}
	return 0, false
}

// IsNumeric reports whether t is one of the numeric types.
func (t Type) IsNumeric() bool {
	return t == TypeInteger || t == TypeDecimal || t == TypeFloat || t == TypeDouble
}

// IsDuration reports whether t is xs:duration or one of its subtypes.
func (t Type) IsDuration() bool {
	return t == TypeDuration || t == TypeYearMonthDuration || t == TypeDayTimeDuration
}

// Parse parses a lexical value of type t.
func Parse(t Type, s string) (Value, error) {
	switch t {
	case TypeBoolean:
		return ParseBoolean(s)
	case TypeInteger, TypeDecimal, TypeFloat, TypeDouble:
		return ParseNumeric(t, s)
	case TypeDate:
		return ParseDate(s)
	case TypeTime:
		return ParseTime(s)
	case TypeDateTime:
		return ParseDateTime(s)
	case TypeDuration:
		return ParseDuration(s)
	case TypeYearMonthDuration:
		return ParseYearMonthDuration(s)
	case TypeDayTimeDuration:
		return ParseDayTimeDuration(s)
	}
	return nil, newError(KindParse, "parse", "unsupported type %v", t)
}

// Boolean is the result of value comparisons.
type Boolean bool

func (b Boolean) Type() Type { return TypeBoolean }
func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (b Boolean) isValue() {}

// ParseBoolean parses an xs:boolean.
func ParseBoolean(s string) (Boolean, error) {
	switch strings.TrimSpace(s) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, newError(KindParse, "parse xs:boolean", "invalid value %q", s)
}

package generate

import (
	"github.com/iancoleman/strcase"

	. "github.com/dave/jennifer/jen"
)

// ErrorKind is one row of the error taxonomy.
type ErrorKind struct {
	// Name is the lower case description, e.g. "divide by zero numeric".
	// Identifiers are derived from it.
	Name string
	Code string
	Doc  string
}

// ErrorKinds is the taxonomy of temporal operation faults, in declaration order.
var ErrorKinds = []ErrorKind{
	{Name: "overflow", Code: "FODT0001", Doc: "reports a date or time result outside the supported range."},
	{Name: "duration overflow", Code: "FODT0002", Doc: "reports a duration result outside the supported range."},
	{Name: "divide by zero numeric", Code: "FODT0002", Doc: "reports a duration divided by a numeric zero."},
	{Name: "divide by zero duration", Code: "FOAR0001", Doc: "reports a duration divided by a zero duration."},
	{Name: "invalid divisor", Code: "FOCA0005", Doc: "reports a NaN operand in duration arithmetic."},
	{Name: "type mismatch", Code: "XPTY0004", Doc: "reports operands an operator is not defined for."},
	{Name: "parse", Code: "FORG0001", Doc: "reports a malformed lexical value."},
	{Name: "invalid timezone", Code: "FODT0003", Doc: "reports a timezone outside -14:00..+14:00."},
	{Name: "timezone conflict", Code: "FORG0008", Doc: "reports a date and a time with different timezones."},
}

// UnknownCode is returned for kinds outside the table.
const UnknownCode = "FOER0000"

func (k ErrorKind) KindName() string     { return "Kind" + strcase.ToCamel(k.Name) }
func (k ErrorKind) SentinelName() string { return "Err" + strcase.ToCamel(k.Name) }

// ErrorKindGenerator emits the ErrorKind constants with their Code and String methods.
type ErrorKindGenerator struct {
	Kinds []ErrorKind
}

func (g ErrorKindGenerator) Generate(f *File) {
	f.Const().DefsFunc(func(d *Group) {
		for i, k := range g.Kinds {
			d.Comment(k.KindName() + " " + k.Doc)
			if i == 0 {
				d.Id(k.KindName()).Id("ErrorKind").Op("=").Iota().Op("+").Lit(1)
			} else {
				d.Id(k.KindName())
			}
		}
	})

	f.Comment("Code returns the error code surfaced to query authors.")
	f.Func().Params(Id("k").Id("ErrorKind")).Id("Code").Params().String().Block(
		Switch(Id("k")).BlockFunc(func(s *Group) {
			for _, k := range g.Kinds {
				s.Case(Id(k.KindName())).Block(Return(Lit(k.Code)))
			}
		}),
		Return(Lit(UnknownCode)),
	)

	f.Comment("String returns the name of the kind.")
	f.Func().Params(Id("k").Id("ErrorKind")).Id("String").Params().String().Block(
		Switch(Id("k")).BlockFunc(func(s *Group) {
			for _, k := range g.Kinds {
				s.Case(Id(k.KindName())).Block(Return(Lit(k.Name)))
			}
		}),
		Return(Lit("unknown")),
	)
}

// SentinelGenerator emits one *Error per kind for use with errors.Is.
type SentinelGenerator struct {
	Kinds []ErrorKind
}

func (g SentinelGenerator) Generate(f *File) {
	f.Comment("Sentinel errors for use with errors.Is.")
	f.Var().DefsFunc(func(d *Group) {
		for _, k := range g.Kinds {
			d.Id(k.SentinelName()).Op("=").Op("&").Id("Error").Values(
				Id("Kind").Op(":").Id(k.KindName()),
			)
		}
	})
}

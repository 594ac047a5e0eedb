package generate

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func render(t *testing.T) string {
	t.Helper()
	f := GenerateFile("temporal", ErrorKindGenerator{Kinds: ErrorKinds}, SentinelGenerator{Kinds: ErrorKinds})
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func TestIdentifiers(t *testing.T) {
	var got []string
	for _, k := range ErrorKinds {
		got = append(got, k.KindName(), k.SentinelName())
	}
	want := []string{
		"KindOverflow", "ErrOverflow",
		"KindDurationOverflow", "ErrDurationOverflow",
		"KindDivideByZeroNumeric", "ErrDivideByZeroNumeric",
		"KindDivideByZeroDuration", "ErrDivideByZeroDuration",
		"KindInvalidDivisor", "ErrInvalidDivisor",
		"KindTypeMismatch", "ErrTypeMismatch",
		"KindParse", "ErrParse",
		"KindInvalidTimezone", "ErrInvalidTimezone",
		"KindTimezoneConflict", "ErrTimezoneConflict",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("identifiers mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderedSource(t *testing.T) {
	src := render(t)
	if _, err := parser.ParseFile(token.NewFileSet(), "errors_gen.go", src, parser.ParseComments); err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, src)
	}
	if !strings.HasPrefix(src, "// "+GeneratedHeader) {
		t.Errorf("missing header:\n%s", src)
	}

	flat := strings.Join(strings.Fields(src), " ")
	for _, want := range []string{
		"KindOverflow ErrorKind = iota + 1",
		`case KindDivideByZeroNumeric: return "FODT0002"`,
		`case KindDivideByZeroDuration: return "FOAR0001"`,
		`return "FOER0000"`,
		`case KindTimezoneConflict: return "timezone conflict"`,
		"ErrInvalidDivisor = &Error{Kind: KindInvalidDivisor}",
	} {
		if !strings.Contains(flat, want) {
			t.Errorf("generated source lacks %q", want)
		}
	}
}

// The checked in table must be what the generator writes.
func TestCheckedInSourceIsCurrent(t *testing.T) {
	checkedIn, err := os.ReadFile("../../temporal/errors_gen.go")
	if err != nil {
		t.Fatal(err)
	}
	flat := func(s string) string { return strings.Join(strings.Fields(s), " ") }
	if diff := cmp.Diff(flat(render(t)), flat(string(checkedIn))); diff != "" {
		t.Errorf("temporal/errors_gen.go is stale, run go generate ./temporal (-want +got):\n%s", diff)
	}
}

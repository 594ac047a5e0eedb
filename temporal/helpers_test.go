package temporal_test

import (
	"testing"

	"github.com/damedic/xpath-temporal/temporal"
)

func mustParse(t *testing.T, typ temporal.Type, s string) temporal.Value {
	t.Helper()
	v, err := temporal.Parse(typ, s)
	if err != nil {
		t.Fatalf("Parse(%v, %q) error = %v", typ, s, err)
	}
	return v
}

func mustNumeric(t *testing.T, typ temporal.Type, s string) temporal.Numeric {
	t.Helper()
	n, err := temporal.ParseNumeric(typ, s)
	if err != nil {
		t.Fatalf("ParseNumeric(%v, %q) error = %v", typ, s, err)
	}
	return n
}

func kindOf(t *testing.T, err error) temporal.ErrorKind {
	t.Helper()
	if err == nil {
		return 0
	}
	kind, ok := temporal.Classify(err)
	if !ok {
		t.Fatalf("error %v is not a *temporal.Error", err)
	}
	return kind
}

package temporal_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/damedic/xpath-temporal/temporal"
)

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		kind temporal.ErrorKind
		code string
	}{
		{temporal.KindOverflow, "FODT0001"},
		{temporal.KindDurationOverflow, "FODT0002"},
		{temporal.KindDivideByZeroNumeric, "FODT0002"},
		{temporal.KindDivideByZeroDuration, "FOAR0001"},
		{temporal.KindInvalidDivisor, "FOCA0005"},
		{temporal.KindTypeMismatch, "XPTY0004"},
		{temporal.KindParse, "FORG0001"},
		{temporal.KindInvalidTimezone, "FODT0003"},
		{temporal.KindTimezoneConflict, "FORG0008"},
		{temporal.ErrorKind(0), "FOER0000"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Code(); got != tt.code {
				t.Errorf("Code() = %s, want %s", got, tt.code)
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	_, err := temporal.ParseDate("2001-02-29")
	if err == nil {
		t.Fatal("expected error")
	}
	if got, want := err.Error(), "FORG0001: parse xs:date: day 29 out of range for 2001-02"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	wrapped := fmt.Errorf("load case: %w", err)
	if !errors.Is(wrapped, temporal.ErrParse) {
		t.Error("errors.Is(wrapped, ErrParse) = false")
	}
	if errors.Is(wrapped, temporal.ErrOverflow) {
		t.Error("errors.Is(wrapped, ErrOverflow) = true")
	}
	if kind, ok := temporal.Classify(wrapped); !ok || kind != temporal.KindParse {
		t.Errorf("Classify() = %v, %v", kind, ok)
	}
	if _, ok := temporal.Classify(errors.New("io")); ok {
		t.Error("Classify() of a foreign error reported a kind")
	}
	if _, ok := temporal.Classify(nil); ok {
		t.Error("Classify(nil) reported a kind")
	}

	var e *temporal.Error
	if !errors.As(err, &e) || e.Op != "parse xs:date" {
		t.Errorf("errors.As() = %+v", e)
	}
}

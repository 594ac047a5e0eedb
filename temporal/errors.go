package temporal

import (
	"errors"
	"fmt"
)

//go:generate go run ../internal/cmd/generate -out errors_gen.go

// ErrorKind classifies a fault raised by a temporal operation.
//
// The kinds and their codes are generated, see errors_gen.go.
type ErrorKind uint8

// Error is the error returned by all operations of this package.
// Every Error carries exactly one ErrorKind.
type Error struct {
	Kind ErrorKind
	// Op names the operation that failed, e.g. "add" or "parse xs:date".
	Op  string
	Msg string
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %s", e.Kind.Code(), e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind.Code(), e.Op, e.Msg)
}

// Is reports whether target is an *Error of the same kind.
// This makes errors.Is(err, ErrOverflow) work for any overflow.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Classify returns the kind of the first *Error in err's chain.
func Classify(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func newError(kind ErrorKind, op string, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

func typeMismatch(op string, a, b Value) *Error {
	if b == nil {
		return newError(KindTypeMismatch, op, "not defined for %s", typeName(a))
	}
	return newError(KindTypeMismatch, op, "not defined for %s and %s", typeName(a), typeName(b))
}

func typeName(v Value) string {
	if v == nil {
		return "empty"
	}
	return v.Type().String()
}

package domain

import (
	"errors"
	"fmt"
)

// Kind is a stable category for programmatic error handling.
//
// Callers branch on Kind rather than matching error strings; use errors.As to
// extract *Error or the IsKind helper.
type Kind string

const (
	// KindInvalidLength covers zero lengths, lengths beyond a field width,
	// misaligned block lengths and unsupported digest lengths.
	KindInvalidLength Kind = "InvalidLength"
	// KindPrecondition covers operand >= modulus, even modulus and
	// over-long exponents.
	KindPrecondition Kind = "PreconditionViolated"
	// KindOverlap is returned when two regions share some but not all bytes
	// where only full aliasing or no aliasing is permitted.
	KindOverlap Kind = "OverlapViolation"
	// KindConfiguration covers unsupported algorithm or mode selections.
	KindConfiguration Kind = "ConfigurationError"
)

// Error is the structured error returned by every primitive.
//
// Op names the primitive that rejected the call. Message is for humans; do not
// match on it.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Op == "" {
		return e.Message
	}
	return e.Op + ": " + e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Errorf returns a new *Error of the given kind.
func Errorf(kind Kind, op, format string, args ...any) error {
	return &Error{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns a new *Error of the given kind carrying cause.
func Wrap(kind Kind, op, msg string, cause error) error {
	return &Error{Kind: kind, Op: op, Message: msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// KindOf returns the Kind of a structured error, or "" if err is not one.
func KindOf(err error) Kind {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Kind
}

// Status words reported by the command dispatch layer.
const (
	StatusOK              = 0x9000
	StatusWrongClass      = 0x6402
	StatusInsNotSupported = 0x6D00
	StatusWrongData       = 0x6A80
	StatusWrongLength     = 0x6700
	StatusWrongParameters = 0x6B00
	StatusWrongSignature  = 0x6982
)

// StatusWord maps a primitive error onto the status word the dispatch layer
// returns for it. Unstructured errors map to StatusWrongData.
func StatusWord(err error) uint16 {
	if err == nil {
		return StatusOK
	}
	switch KindOf(err) {
	case KindInvalidLength:
		return StatusWrongLength
	case KindConfiguration:
		return StatusWrongParameters
	default:
		return StatusWrongData
	}
}

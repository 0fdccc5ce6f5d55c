package ahocorasick

import (
	stderrs "errors"
	"fmt"
)

// ErrorCode classifies the error kinds an Automaton can return. Values are
// stable; add sparingly
type ErrorCode uint8

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodeEmptyPattern is returned by Add when the pattern has length 0
	ErrorCodeEmptyPattern

	// ErrorCodeNoPatterns is returned by Finalize when no pattern was ever added
	ErrorCodeNoPatterns

	// ErrorCodeNotFinalized is returned by any scan operation before Finalize
	ErrorCodeNotFinalized

	// ErrorCodeAlreadyFinalized is returned by a second call to Finalize
	ErrorCodeAlreadyFinalized

	// ErrorCodeNegativeStart is returned when a scan is given a negative offset
	ErrorCodeNegativeStart

	// ErrorCodeByteOutOfRange is returned by State.Goto for an argument outside 0..=255
	ErrorCodeByteOutOfRange

	// ErrorCodeInvalidHandle is returned when a State handle no longer refers to a live automaton
	ErrorCodeInvalidHandle
)

// Error is the structured error type returned across the package's
// surface. msg is human-facing, code is machine-facing
type Error struct {
	orig error
	msg  string
	code ErrorCode
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// As extracts an *Error from err, if it is (or wraps) one
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf extracts an ErrorCode from any error, defaulting to Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err has the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

func newErr(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

func newErrf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Sentinel errors for six of the seven kinds in the error handling design;
// the byte-out-of-range kind is built per value by errByteOutOfRange. These
// are also reachable through CodeOf/IsCode for callers that prefer
// matching by code rather than by identity
var (
	// ErrEmptyPattern is returned by Add for a zero-length pattern
	ErrEmptyPattern = newErr(ErrorCodeEmptyPattern, "ahocorasick: pattern must not be empty")

	// ErrNoPatterns is returned by Finalize when no pattern was added
	ErrNoPatterns = newErr(ErrorCodeNoPatterns, "ahocorasick: finalize called with no patterns added")

	// ErrNotFinalized is returned by scan operations before Finalize
	ErrNotFinalized = newErr(ErrorCodeNotFinalized, "ahocorasick: automaton is not finalized")

	// ErrAlreadyFinalized is returned by a second Finalize call
	ErrAlreadyFinalized = newErr(ErrorCodeAlreadyFinalized, "ahocorasick: automaton is already finalized")

	// ErrNegativeStart is returned when start < 0
	ErrNegativeStart = newErr(ErrorCodeNegativeStart, "ahocorasick: start offset must not be negative")

	// ErrInvalidHandle is returned when a State handle refers to a destroyed automaton
	ErrInvalidHandle = newErr(ErrorCodeInvalidHandle, "ahocorasick: state handle no longer refers to a live automaton")
)

// errByteOutOfRange builds the kind-6 error for a specific bad byte value
func errByteOutOfRange(b int) error {
	return newErrf(ErrorCodeByteOutOfRange, "ahocorasick: byte %d out of range 0..=255", b)
}

package gruby

import (
	"errors"
	"fmt"
)

var eRuntimeError = errors.New("RuntimeError")
var eTypeError = errors.New("TypeError")
var eArgumentError = errors.New("ArgumentError")
var eIndexError = errors.New("IndexError")
var eRangeError = errors.New("RangeError")
var eNameError = errors.New("NameError")
var eNoMethodError = errors.New("NoMethodError")
var eLocalJumpError = errors.New("LocalJumpError")
var eFrozenError = errors.New("FrozenError")
var eNotImplementedError = errors.New("NotImplementedError")
var eStandardError = errors.New("StandardError")
var eFatalError = errors.New("fatal")

func ERuntimeError(format string, args ...interface{}) error {
	return Raisef(eRuntimeError, format, args...)
}
func ETypeError(format string, args ...interface{}) error { return Raisef(eTypeError, format, args...) }
func EArgumentError(format string, args ...interface{}) error {
	return Raisef(eArgumentError, format, args...)
}
func EIndexError(format string, args ...interface{}) error {
	return Raisef(eIndexError, format, args...)
}
func ERangeError(format string, args ...interface{}) error {
	return Raisef(eRangeError, format, args...)
}
func ENameError(format string, args ...interface{}) error { return Raisef(eNameError, format, args...) }
func ENoMethodError(format string, args ...interface{}) error {
	return Raisef(eNoMethodError, format, args...)
}
func ELocalJumpError(format string, args ...interface{}) error {
	return Raisef(eLocalJumpError, format, args...)
}
func EFrozenError(format string, args ...interface{}) error {
	return Raisef(eFrozenError, format, args...)
}
func ENotImplementedError(format string, args ...interface{}) error {
	return Raisef(eNotImplementedError, format, args...)
}

// RaiseError carries an exception class sentinel and a message.
type RaiseError struct {
	err error
	msg string
}

// Raise builds an error that raises as the exception class of err.
func Raise(err error, msg string) error {
	return &RaiseError{err, msg}
}

// Raisef is Raise with a formatted message.
func Raisef(err error, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return Raise(err, msg)
}

// Error implements error interface
func (e *RaiseError) Error() string {
	return e.msg
}

// String implements stringer interface
func (e *RaiseError) String() string {
	return e.msg
}

// Unwrap returns inner error
func (e *RaiseError) Unwrap() error {
	return e.err
}

// ArgSelf marks the receiver slot in a ConvertError.
const ArgSelf = -1

// ConvertError reports that a value handle could not be converted to the
// Go type an adapter expected. Index is the positional argument that
// failed, or ArgSelf for the receiver.
type ConvertError struct {
	Index    int
	Expected string
	Got      string
	reason   error
}

func (e *ConvertError) Error() string {
	pos := fmt.Sprintf("argument %d", e.Index)
	if e.Index == ArgSelf {
		pos = "receiver"
	}
	if e.reason == eRangeError {
		return fmt.Sprintf("%s: %s out of range for %s", pos, e.Got, e.Expected)
	}
	return fmt.Sprintf("%s: no implicit conversion of %s into %s", pos, e.Got, e.Expected)
}

// Unwrap returns the exception class sentinel (TypeError or RangeError).
func (e *ConvertError) Unwrap() error { return e.reason }

func convError(expected, got string) *ConvertError {
	return &ConvertError{Index: ArgSelf, Expected: expected, Got: got, reason: eTypeError}
}

func rangeError(expected, got string) *ConvertError {
	return &ConvertError{Index: ArgSelf, Expected: expected, Got: got, reason: eRangeError}
}

// PanicError is a native panic caught at the trampoline boundary. The
// payload is kept best-effort: its message if one can be extracted,
// otherwise its verbatim formatting.
type PanicError struct {
	val interface{}
}

// Error implements error interface
func (e *PanicError) Error() string {
	switch v := e.val.(type) {
	case string:
		return v
	case error:
		return v.Error()
	default:
		return fmt.Sprintf("unhandled panic: %v", v)
	}
}

// Recovered returns the original panic payload.
func (e *PanicError) Recovered() interface{} { return e.val }

// Unwrap marks captured panics as fatal rather than StandardError, so
// rescue clauses do not swallow them by default.
func (e *PanicError) Unwrap() error { return eFatalError }

// tagArgIndex stamps the positional index on a conversion failure so the
// raised exception identifies the parameter. Other errors pass unchanged.
func tagArgIndex(err error, index int) error {
	var ce *ConvertError
	if errors.As(err, &ce) {
		ce.Index = index
	}
	return err
}

// panicHandler converts a panic in flight into an error. Deferred inside
// every trampoline; the capture region of the unwind bridge. Panic values
// that already are errors pass through unchanged so raising through panic
// keeps its exception class.
func panicHandler(err *error) {
	if r := recover(); r != nil {
		if e, ok := r.(error); ok {
			*err = e
			return
		}
		*err = &PanicError{val: r}
	}
}

// ExceptionClass resolves the Ruby exception class name to instantiate
// for err. Hosts use it when materializing the exception object in Raise.
func ExceptionClass(err error) string {
	for {
		switch err {
		case eRuntimeError, eTypeError, eArgumentError, eIndexError, eRangeError,
			eNameError, eNoMethodError, eLocalJumpError, eFrozenError,
			eNotImplementedError, eStandardError:
			return err.Error()
		case eFatalError:
			return "fatal"
		}
		next := errors.Unwrap(err)
		if next == nil {
			return "StandardError"
		}
		err = next
	}
}

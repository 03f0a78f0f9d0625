// Package apperr defines the error taxonomy shared by all benchlink layers.
//
// Every failure is one of four kinds: USB transport, HID transport, command
// parsing/execution, or general. Errors carry a human-readable message only;
// callers branch on the kind, not on structured data.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error. The numeric values double as process exit codes.
type Kind int

const (
	// KindUsb covers USB device operations (enumeration, open, transfers).
	KindUsb Kind = iota + 1

	// KindHid covers HID device operations, including framing and checksum
	// violations on the HID transport.
	KindHid

	// KindCommand covers malformed command tokens and failed command
	// execution against an open device.
	KindCommand

	// KindGeneral covers everything else.
	KindGeneral
)

// String returns the kind name used in log output.
func (k Kind) String() string {
	switch k {
	case KindUsb:
		return "usb"
	case KindHid:
		return "hid"
	case KindCommand:
		return "command"
	case KindGeneral:
		return "general"
	default:
		return fmt.Sprintf("unknown kind %d", int(k))
	}
}

// Error is a classified application error.
type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Kind returns the error classification.
func (e *Error) Kind() Kind { return e.kind }

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Usb builds a USB transport error.
func Usb(format string, args ...interface{}) *Error {
	return newError(KindUsb, format, args...)
}

// Hid builds a HID transport error.
func Hid(format string, args ...interface{}) *Error {
	return newError(KindHid, format, args...)
}

// Command builds a command error.
func Command(format string, args ...interface{}) *Error {
	return newError(KindCommand, format, args...)
}

// General builds a general application error.
func General(format string, args ...interface{}) *Error {
	return newError(KindGeneral, format, args...)
}

// Is reports whether err is (or wraps) an Error of the given kind.
func Is(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.kind == kind
}

// ExitCode maps an error to the process exit code. Unclassified errors map
// to the general code; nil maps to zero.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ae *Error
	if errors.As(err, &ae) {
		return int(ae.kind)
	}
	return int(KindGeneral)
}

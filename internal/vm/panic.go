package vm

import (
	"fmt"
	"strconv"

	"quill/internal/source"
)

// PanicCode identifies the type of VM panic.
type PanicCode int

// Stable panic codes - do not change values.
const (
	PanicDivisionByZero    PanicCode = 1001 // VM1001: division or modulo by zero
	PanicNarrowingOverflow PanicCode = 1002 // VM1002: value does not fit the target type
	PanicTypeMismatch      PanicCode = 1003 // VM1003: operand of the wrong runtime kind
	PanicMethodSubject     PanicCode = 1004 // VM1004: method called on the wrong subject
	PanicUnknownMethod     PanicCode = 1005 // VM1005: no such method
	PanicUndefinedName     PanicCode = 1006 // VM1006: name not bound at runtime
	PanicTooLarge          PanicCode = 1007 // VM1007: result exceeds size limits
	PanicUnimplemented     PanicCode = 1999 // VM1999: unsupported node
)

// String returns the code as "VM1001" format.
func (c PanicCode) String() string {
	return fmt.Sprintf("VM%d", c)
}

// VMError represents a runtime panic in the VM.
type VMError struct {
	Code    PanicCode
	Message string
	Span    source.Span // node that faulted
}

func (p *VMError) Error() string {
	return fmt.Sprintf("panic %s: %s", p.Code, p.Message)
}

// errorBuilder helps construct VMError values.
type errorBuilder struct{}

func (errorBuilder) makeError(code PanicCode, span source.Span, msg string) *VMError {
	return &VMError{Code: code, Message: msg, Span: span}
}

func (eb errorBuilder) divisionByZero(span source.Span, op string) *VMError {
	return eb.makeError(PanicDivisionByZero, span, fmt.Sprintf("integer %s by zero", op))
}

// truncatedDivisor reports a float // or % whose divisor truncates to 0.
func (eb errorBuilder) truncatedDivisor(span source.Span, op string, divisor float64) *VMError {
	return eb.makeError(PanicDivisionByZero, span,
		fmt.Sprintf("divisor %s of float %s truncates to zero", strconv.FormatFloat(divisor, 'g', -1, 64), op))
}

func (eb errorBuilder) narrowing(span source.Span, value, target string) *VMError {
	return eb.makeError(PanicNarrowingOverflow, span, fmt.Sprintf("value %s does not fit in %s", value, target))
}

func (eb errorBuilder) typeMismatch(span source.Span, expected string, got ValueKind) *VMError {
	return eb.makeError(PanicTypeMismatch, span, fmt.Sprintf("expected %s, got %s", expected, got))
}

func (eb errorBuilder) methodSubject(span source.Span, method string, got ValueKind) *VMError {
	return eb.makeError(PanicMethodSubject, span, fmt.Sprintf("method %q called on %s value", method, got))
}

func (eb errorBuilder) unknownMethod(span source.Span, method string) *VMError {
	return eb.makeError(PanicUnknownMethod, span, fmt.Sprintf("unknown method %q", method))
}

func (eb errorBuilder) undefined(span source.Span, name string) *VMError {
	return eb.makeError(PanicUndefinedName, span, fmt.Sprintf("name %q is not bound", name))
}

func (eb errorBuilder) unimplemented(span source.Span, what string) *VMError {
	return eb.makeError(PanicUnimplemented, span, "unsupported "+what)
}

package diag

import (
	"errors"
	"fmt"
)

// Error is the Go error form of a fatal diagnostic.
type Error struct {
	Diag Diagnostic
}

// Fail wraps d as an error.
func Fail(d Diagnostic) *Error {
	return &Error{Diag: d}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Diag.Code.ID(), e.Diag.Message)
}

// Code returns the diagnostic code.
func (e *Error) Code() Code {
	return e.Diag.Code
}

// AsError unwraps err into *Error if possible.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// Package yaerrors provides the coded, wrappable error type returned by every
// fallible component of GoYaTgMarkup. Codes follow the HTTP status convention
// so callers propagating an error to an API boundary get a sensible status
// without extra mapping. The pure transcoder itself never fails; these errors
// surface from the cache and codec layers.
package yaerrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/YaCodeDev/GoYaTgMarkup/yalogger"
)

// Error is a coded error that accumulates a traceback as it is wrapped on the
// way up the call stack.
type Error interface {
	error
	// Wrap adds a message to the error traceback, providing additional
	// context. Use it each time the error is returned to a higher level.
	Wrap(msg string) Error
	// WrapWithLog wraps like Wrap and also logs the message at Error level.
	WrapWithLog(msg string, log yalogger.Logger) Error
	// Code returns the HTTP-style code associated with this error.
	Code() int
	// Unwrap returns the original error that caused this one.
	Unwrap() error
	// UnwrapLastError returns only the most recent traceback segment.
	UnwrapLastError() string
}

const (
	codeSeparate  = " | "
	errorSeparate = " -> "
)

type yaError struct {
	code      int
	cause     error
	traceback string
}

// FromError wraps an existing error with a code and a context message.
//
// Example usage:
//
//	return yaerrors.FromError(http.StatusInternalServerError, err, "failed to fetch record")
func FromError(code int, cause error, wrap string) Error {
	return &yaError{
		code:      code,
		cause:     cause,
		traceback: fmt.Sprintf("%s: %v", wrap, cause),
	}
}

// FromString creates a new Error with the given code from a bare message.
func FromString(code int, msg string) Error {
	return &yaError{
		code:      code,
		cause:     errors.New(msg), //nolint:err113
		traceback: msg,
	}
}

func (e *yaError) Error() string {
	return fmt.Sprintf("%d%s%s", e.code, codeSeparate, e.traceback)
}

func (e *yaError) Unwrap() error {
	return e.cause
}

func (e *yaError) UnwrapLastError() string {
	end := strings.Index(e.traceback, errorSeparate)
	if end == -1 {
		return e.traceback
	}

	return e.traceback[:end]
}

func (e *yaError) Wrap(msg string) Error {
	e.traceback = fmt.Sprintf("%s%s%s", msg, errorSeparate, e.traceback)

	return e
}

func (e *yaError) WrapWithLog(msg string, log yalogger.Logger) Error {
	log.Error(msg)

	return e.Wrap(msg)
}

func (e *yaError) Code() int {
	return e.code
}

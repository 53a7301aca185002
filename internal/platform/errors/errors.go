// Package errors is the coded error type shared by every layer of the API.
// Import it as perr so it never shadows the standard errors package
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an error for clients; the numeric value goes on the wire
type ErrorCode uint16

// Codes are append-only, clients match on the numbers
const (
	ErrorCodeUnknown ErrorCode = iota
	ErrorCodeValidation
	ErrorCodeJSON
	ErrorCodeNotFound
	ErrorCodeConflict
	ErrorCodeComputation
	ErrorCodePanic
	ErrorCodeTimeout
	ErrorCodeUnavailable
)

type codeInfo struct {
	name   string
	status int
}

var codes = map[ErrorCode]codeInfo{
	ErrorCodeUnknown:     {"unknown", http.StatusInternalServerError},
	ErrorCodeValidation:  {"validation", http.StatusBadRequest},
	ErrorCodeJSON:        {"json", http.StatusBadRequest},
	ErrorCodeNotFound:    {"not_found", http.StatusNotFound},
	ErrorCodeConflict:    {"conflict", http.StatusConflict},
	ErrorCodeComputation: {"computation", http.StatusInternalServerError},
	ErrorCodePanic:       {"panic", http.StatusInternalServerError},
	ErrorCodeTimeout:     {"timeout", http.StatusGatewayTimeout},
	ErrorCodeUnavailable: {"unavailable", http.StatusServiceUnavailable},
}

func (c ErrorCode) info() codeInfo {
	if ci, ok := codes[c]; ok {
		return ci
	}
	return codes[ErrorCodeUnknown]
}

// String names the code for logs
func (c ErrorCode) String() string { return c.info().name }

// Status is the HTTP status a handler answers with for c
func (c ErrorCode) Status() int { return c.info().status }

// Error carries a client-facing message, a code and optionally the
// request field and operation it came from
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
	op    string
}

// Wire is the JSON form of an error
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.orig == nil:
		return e.msg
	}
	return e.msg + ": " + e.orig.Error()
}

func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending request field, if any
func (e *Error) Field() string { return e.field }

// Op returns the operation label, if set
func (e *Error) Op() string { return e.op }

// Message returns the message without the wrapped cause
func (e *Error) Message() string { return e.msg }

// New returns an *Error with code and msg
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf is New with a format
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap keeps orig as the cause of a coded error
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// NotFoundf reports a missing resource such as an unknown project id
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// Validationf reports a request that failed validation
func Validationf(format string, a ...any) error { return Newf(ErrorCodeValidation, format, a...) }

// JSONErrf reports an undecodable request body
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// PanicErrf reports a recovered panic
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

// As returns the first *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf is the code of err, Unknown for foreign errors
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus maps any error to a status
func HTTPStatus(err error) int { return CodeOf(err).Status() }

// Root follows Unwrap to the innermost cause
func Root(err error) error {
	for {
		next := stderrs.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// WireFrom converts any error into its wire form; nil gives the zero Wire
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return Wire{Code: e.code, Message: e.msg, Field: e.field}
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// WithField tags a copy of err with the request field. Foreign errors pass through
func WithField(err error, field string) error {
	return retag(err, func(e *Error) { e.field = field })
}

// WithOp tags a copy of err with the operation. Foreign errors pass through
func WithOp(err error, op string) error {
	return retag(err, func(e *Error) { e.op = op })
}

func retag(err error, set func(*Error)) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	cp := *e
	set(&cp)
	return &cp
}

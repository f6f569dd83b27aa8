package errors

import (
	stderrors "errors"
	"fmt"
)

// Error is a coded failure produced by validators and handlers.
// It carries everything needed to render a Failure envelope.
type Error struct {
	Code    ErrorCode
	Message string
	Details []string
	Err     error
}

// ErrorOption is a functional option for configuring errors
type ErrorOption func(*Error)

// WithDetails adds detail messages to the error
func WithDetails(details ...string) ErrorOption {
	return func(e *Error) {
		e.Details = append(e.Details, details...)
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(e *Error) {
		e.Message = message
	}
}

// WithCause attaches the underlying error for logging and errors.Is checks
func WithCause(err error) ErrorOption {
	return func(e *Error) {
		e.Err = err
	}
}

// New creates a coded error with the default message for the code
func New(code ErrorCode, opts ...ErrorOption) *Error {
	e := &Error{
		Code:    code,
		Message: GetErrorMessage(code),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status code for the error code
func (e *Error) HTTPStatus() int {
	return GetHTTPStatus(e.Code)
}

// IsClientError returns true if the error is a 4xx client error
func (e *Error) IsClientError() bool {
	status := e.HTTPStatus()
	return status >= 400 && status < 500
}

// IsServerError returns true if the error is a 5xx server error
func (e *Error) IsServerError() bool {
	return e.HTTPStatus() >= 500
}

// As extracts a coded error from an error chain
func As(err error) (*Error, bool) {
	var coded *Error
	if stderrors.As(err, &coded) {
		return coded, true
	}
	return nil, false
}

// HasCode reports whether err carries the given code anywhere in its chain
func HasCode(err error, code ErrorCode) bool {
	coded, ok := As(err)
	return ok && coded.Code == code
}

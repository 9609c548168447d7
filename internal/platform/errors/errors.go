// Package errors defines the structured error returned by handlers and the
// JSON body it renders to.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies an error for status mapping and log severity.
type ErrorType string

const (
	TypeValidation ErrorType = "validation"
	TypeInternal   ErrorType = "internal"
)

var statusByType = map[ErrorType]int{
	TypeValidation: http.StatusBadRequest,
	TypeInternal:   http.StatusInternalServerError,
}

// Error is a classified error with a client-safe message. Cause is logged but
// never rendered; Context is rendered as-is.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]any
}

func newError(t ErrorType, message string, cause error) *Error {
	return &Error{Type: t, Message: message, Cause: cause, Context: map[string]any{}}
}

// ValidationError reports a bad request.
func ValidationError(message string) *Error {
	return newError(TypeValidation, message, nil)
}

// InternalError reports a server-side failure; message is what the client sees.
func InternalError(message string, cause error) *Error {
	return newError(TypeInternal, message, cause)
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// HTTPStatus maps the type to a status code; unknown types are 500.
func (e *Error) HTTPStatus() int {
	if status, ok := statusByType[e.Type]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

func (e *Error) WithField(key string, value any) *Error {
	if e.Context == nil {
		e.Context = map[string]any{}
	}
	e.Context[key] = value
	return e
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Type    ErrorType      `json:"type"`
	Context map[string]any `json:"context,omitempty"`
}

func (e *Error) ToResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message, Type: e.Type, Context: e.Context}
}

// AsStructuredError finds an *Error in err's chain, or hides err behind a
// generic internal error.
func AsStructuredError(err error) *Error {
	if err == nil {
		return nil
	}
	if target := (*Error)(nil); errors.As(err, &target) {
		return target
	}
	return InternalError("internal server error", err)
}

// Package apperror defines the service's error taxonomy and the single code
// path that writes failures to the wire.
package apperror

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// Error is a classified failure carrying the HTTP status it maps to. The
// wrapped cause, if any, is surfaced only in non-production responses.
type Error struct {
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// WithCause attaches the underlying error for diagnostics.
func (e *Error) WithCause(err error) *Error {
	return &Error{Status: e.Status, Message: e.Message, cause: err}
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

func TooManyRequests(message string) *Error {
	return New(http.StatusTooManyRequests, message)
}

func Internal(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "Internal Server Error", cause: err}
}

type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// Responder serializes failures into the uniform {status, message} envelope.
// No other component writes errors to the response.
type Responder struct {
	includeDetail bool
}

// NewResponder returns a Responder; includeDetail should be true only
// outside production.
func NewResponder(includeDetail bool) *Responder {
	return &Responder{includeDetail: includeDetail}
}

// Write maps err onto the wire. Unclassified errors become a generic 500.
func (resp *Responder) Write(w http.ResponseWriter, err error) {
	appErr := &Error{}
	if !errors.As(err, &appErr) {
		appErr = Internal(err)
	}

	if appErr.Status >= http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
	}

	body := envelope{Status: "error", Message: appErr.Message}
	if resp.includeDetail && appErr.cause != nil {
		body.Detail = appErr.cause.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)
	json.NewEncoder(w).Encode(body)
}

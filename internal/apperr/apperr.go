// Package apperr carries client-safe application errors from the service
// layer to the HTTP handlers. Anything that is not an *Error is treated as
// an internal failure: logged server-side, surfaced as a generic 500.
package apperr

import (
	"errors"
	"net/http"
)

// Error pairs an HTTP status with a message safe to return to clients.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New creates an application error with an explicit status
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// BadRequest covers validation failures and conflicts (duplicate email,
// employee id, card number), which the API reports as 400
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// Unauthorized covers authentication failures
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

// Forbidden covers role rejections on admin- or employee-only routes
func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

// NotFound covers both absent resources and ownership rejections; the two
// are deliberately indistinguishable so ownership is never leaked
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// Internal is the generic server error; the real cause stays in the logs
func Internal(message string) *Error {
	return New(http.StatusInternalServerError, message)
}

// From extracts an *Error, or wraps unknown errors as a generic 500
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("Server error")
}

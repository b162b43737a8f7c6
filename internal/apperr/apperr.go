// Package apperr defines the service error taxonomy. Every layer returns
// *Error values upward; the HTTP boundary maps them to responses once.
package apperr

import "fmt"

// Error carries the HTTP status the failure maps to, a short label, and a
// human-readable message.
type Error struct {
	Status  int
	Label   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(format string, args ...interface{}) *Error {
	return &Error{Status: 400, Label: "Bad Request", Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Status: 404, Label: "Not Found", Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) *Error {
	return &Error{Status: 409, Label: "Conflict", Message: fmt.Sprintf(format, args...)}
}

func UnsupportedMedia(format string, args ...interface{}) *Error {
	return &Error{Status: 415, Label: "Unsupported media type", Message: fmt.Sprintf(format, args...)}
}

// Persistence wraps an underlying storage fault. The store has already
// rolled the mutation back by the time this is constructed.
func Persistence(err error) *Error {
	return &Error{Status: 500, Label: "Internal Server Error", Message: "storage error: " + err.Error()}
}

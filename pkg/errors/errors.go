// Package errors defines the coded errors returned at easybox's boundaries.
//
// The drag core never fails: a malformed transform degrades to "no
// position" and stray pointer events are ignored. Errors appear only where
// untrusted input enters, which is board files, decoded pointer events, and
// HTTP requests. Each carries a [Code] that the CLI prints and the HTTP API
// maps to a status with [Code.HTTPStatus].
//
//	err := errors.New(errors.ErrCodeBoxNotFound, "box %q not found", id)
//	if errors.Is(err, errors.ErrCodeBoxNotFound) {
//	    // 404
//	}
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a machine-readable error category.
type Code string

const (
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"
	ErrCodeInvalidEvent     Code = "INVALID_EVENT"
	ErrCodeInvalidTransform Code = "INVALID_TRANSFORM"

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeBoxNotFound  Code = "BOX_NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeDuplicateBox Code = "DUPLICATE_BOX"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// HTTPStatus returns the response status for errors with this code.
func (c Code) HTTPStatus() int {
	switch c {
	case ErrCodeInvalidInput, ErrCodeInvalidConfig, ErrCodeInvalidEvent, ErrCodeInvalidTransform:
		return http.StatusBadRequest
	case ErrCodeNotFound, ErrCodeBoxNotFound, ErrCodeFileNotFound:
		return http.StatusNotFound
	case ErrCodeDuplicateBox:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is an error with a code, a message for users, and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := string(e.Code) + ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an error with a formatted message that wraps cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// Is reports whether any coded error in err's chain has the given code.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode returns the code of the outermost coded error in err's chain, or
// "" when there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of the outermost coded error without its
// code, or err.Error() for uncoded errors.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

package store

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// Code is a stable error code surfaced to callers. The UI layer switches on
// these, never on message text.
type Code string

const (
	CodeNotFound      Code = "NOT_FOUND"
	CodeDuplicateName Code = "DUPLICATE_NAME"
	CodeInvalidData   Code = "INVALID_DATA"
	CodeStorageError  Code = "STORAGE_ERROR"
	CodeQuotaExceeded Code = "QUOTA_EXCEEDED"
	CodeCorruptedData Code = "CORRUPTED_DATA"
	CodeNotAvailable  Code = "NOT_AVAILABLE"
)

// Error is a store failure carrying a stable code.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func wrapError(code Code, err error, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Err: err}
}

// CodeOf extracts the store error code from an error chain. Errors that did
// not originate here map to STORAGE_ERROR.
func CodeOf(err error) Code {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return CodeStorageError
}

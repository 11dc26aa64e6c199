package utils

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
)

// Error codes carried in every failure envelope.
const (
	CodeNotFound          = "NOT_FOUND"
	CodeValidation        = "VALIDATION_ERROR"
	CodeDuplicateField    = "DUPLICATE_FIELD"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	CodeInternal          = "INTERNAL_ERROR"
	CodeFileTooLarge      = "FILE_TOO_LARGE"
	CodeTooManyFiles      = "TOO_MANY_FILES"
	CodeInvalidFileField  = "INVALID_FILE_FIELD"
)

// AppError is a failure already mapped to a public code and HTTP status.
type AppError struct {
	Status  int
	Code    string
	Message string
	Details any
	Err     error

	stack []byte
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// WithDetails returns a copy of e carrying details.
func (e *AppError) WithDetails(details any) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

func NotFound(resource string) *AppError {
	return &AppError{Status: http.StatusNotFound, Code: CodeNotFound, Message: resource + " not found"}
}

func Validation(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: CodeValidation, Message: message}
}

func Duplicate(field string) *AppError {
	return &AppError{
		Status:  http.StatusConflict,
		Code:    CodeDuplicateField,
		Message: field + " already exists",
		Details: map[string]string{"field": field},
	}
}

func Unauthorized(message string) *AppError {
	return &AppError{Status: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Status: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

func RateLimited(message string) *AppError {
	return &AppError{Status: http.StatusTooManyRequests, Code: CodeRateLimitExceeded, Message: message}
}

// Internal hides err from the caller; it is only logged. The stack is
// captured here so it points at the failing call site.
func Internal(err error) *AppError {
	return &AppError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
		stack:   debug.Stack(),
	}
}

// StackTrace is the stack at construction, empty for client errors.
func (e *AppError) StackTrace() string { return string(e.stack) }

func FileTooLarge(limit int64) *AppError {
	return &AppError{
		Status:  http.StatusRequestEntityTooLarge,
		Code:    CodeFileTooLarge,
		Message: "File too large",
		Details: map[string]int64{"maxBytes": limit},
	}
}

func TooManyFiles(limit int) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Code:    CodeTooManyFiles,
		Message: "Too many files",
		Details: map[string]int{"maxFiles": limit},
	}
}

func InvalidFileField(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: CodeInvalidFileField, Message: message}
}

// AsAppError maps any error to an AppError, defaulting to INTERNAL_ERROR.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

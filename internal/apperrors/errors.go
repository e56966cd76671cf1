package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnsupportedFormat indicates that an uploaded file is not one of the
// supported formats (xlsx, xls, csv, pdf).
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrEmptyDocument indicates that a supported file contained no data rows.
var ErrEmptyDocument = errors.New("no data found in file")

// ErrInvalidTransition indicates an attempt to move an upload backwards or out
// of a terminal lifecycle status.
var ErrInvalidTransition = errors.New("invalid upload status transition")

// AppError carries a status code alongside a wrapped cause. Used by the
// repository layer for infrastructure failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

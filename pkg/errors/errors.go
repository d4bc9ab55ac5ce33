package errors

import (
	"errors"
	"fmt"
)

// Process exit codes for the CLI.
const (
	ExitOK      = 0
	ExitQuery   = 1
	ExitLoad    = 2
	ExitUnknown = 3
)

var (
	ErrMalformedCategoryLine = errors.New("malformed category line")
	ErrCorpusParse           = errors.New("annotation corpus parse error")
	ErrRecordShape           = errors.New("annotation record shape error")
	ErrFileNotFound          = errors.New("file not found")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrInvalidCount          = errors.New("invalid count")
	ErrEmptyResult           = errors.New("empty result")
)

type AppError struct {
	Err      error
	Message  string
	ExitCode int
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(sentinel error, exitCode int, message string) *AppError {
	return &AppError{
		Err:      sentinel,
		Message:  message,
		ExitCode: exitCode,
	}
}

func Newf(sentinel error, exitCode int, format string, args ...any) *AppError {
	return &AppError{
		Err:      sentinel,
		Message:  fmt.Sprintf(format, args...),
		ExitCode: exitCode,
	}
}

// IsLoadError reports whether err aborts startup.
func IsLoadError(err error) bool {
	return errors.Is(err, ErrMalformedCategoryLine) ||
		errors.Is(err, ErrCorpusParse) ||
		errors.Is(err, ErrRecordShape) ||
		errors.Is(err, ErrFileNotFound)
}

// IsQueryError reports whether err is a local validation failure that the
// caller can recover from by asking again.
func IsQueryError(err error) bool {
	return errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrInvalidCount) ||
		errors.Is(err, ErrEmptyResult)
}

func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.ExitCode
	}

	switch {
	case IsLoadError(err):
		return ExitLoad
	case IsQueryError(err):
		return ExitQuery
	default:
		return ExitUnknown
	}
}

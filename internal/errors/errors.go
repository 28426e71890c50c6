// Package errors provides structured error types and exit codes for wscheck.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess     = 0 // Clean run, nothing flagged
	ExitFailure     = 1 // Issues found/corrected, or usage/config error
	ExitFatal       = 2 // Unrecoverable failure while rewriting a file
	ExitEnvironment = 3 // Environment error (no usable VCS, etc.)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindFatal
	KindEnvironment
)

// WscheckError is the base error type for wscheck.
type WscheckError struct {
	Kind    ErrorKind
	Message string
	Path    string // File path if applicable
	Cause   error  // Underlying error
}

func (e *WscheckError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

func (e *WscheckError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *WscheckError) ExitCode() int {
	switch e.Kind {
	case KindFatal:
		return ExitFatal
	case KindEnvironment:
		return ExitEnvironment
	default:
		return ExitFailure
	}
}

// New creates a new runtime error.
func New(message string) *WscheckError {
	return &WscheckError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *WscheckError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *WscheckError {
	return &WscheckError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *WscheckError {
	return Config(fmt.Sprintf(format, args...))
}

// Fatal creates an error that aborts the whole batch.
func Fatal(path, message string, cause error) *WscheckError {
	return &WscheckError{
		Kind:    KindFatal,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}

// Environment creates a new environment error.
func Environment(message string) *WscheckError {
	return &WscheckError{
		Kind:    KindEnvironment,
		Message: message,
	}
}

// Environmentf creates a new environment error with formatting.
func Environmentf(format string, args ...interface{}) *WscheckError {
	return Environment(fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *WscheckError {
	return &WscheckError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// PathError creates a runtime error attached to a file path.
func PathError(path, message string, cause error) *WscheckError {
	return &WscheckError{
		Kind:    KindRuntime,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}

// IsFatal reports whether err (or anything it wraps) aborts the batch.
func IsFatal(err error) bool {
	var we *WscheckError
	if stderrors.As(err, &we) {
		return we.Kind == KindFatal
	}
	return false
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var we *WscheckError
	if stderrors.As(err, &we) {
		return we.ExitCode()
	}
	return ExitFailure
}

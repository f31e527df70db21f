// Package errors provides standardized error handling for logsift.
// It defines the error kinds the tool distinguishes between and helper
// constructors for consistent error creation and wrapping.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions re-exported for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Config error kinds
	ConfigNotFound
	ConfigInvalid
	// Path error kinds
	PathNotFound
	NotADirectory
	// Per-file I/O error kinds
	IoFailure
)

// AppError is the base error type for all logsift errors
type AppError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *AppError) Kind() ErrorKind {
	return e.kind
}

// PathError represents errors tied to a filesystem path
type PathError struct {
	AppError
	path string
}

// NewPathError creates a new path error
func NewPathError(msg string, path string, kind ErrorKind, err error) *PathError {
	return &PathError{
		AppError: AppError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the path error message
func (e *PathError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.AppError.Error()
}

// Path returns the path associated with the error
func (e *PathError) Path() string {
	return e.path
}

// ConfigError represents errors related to the persisted configuration
type ConfigError struct {
	AppError
	configPath string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, configPath string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		AppError: AppError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		configPath: configPath,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.configPath != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.configPath, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.configPath)
	}
	return e.AppError.Error()
}

// ConfigPath returns the configuration file path associated with the error
func (e *ConfigError) ConfigPath() string {
	return e.configPath
}

// New creates a new error with a message
func New(msg string) error {
	return &AppError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &AppError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// NotFound creates a path-not-found error for the given path
func NotFound(path string) error {
	return NewPathError("path does not exist", path, PathNotFound, nil)
}

// NotDirectory creates a not-a-directory error for the given path
func NotDirectory(path string) error {
	return NewPathError("path is not a directory", path, NotADirectory, nil)
}

// IoError wraps a per-file read/write failure
func IoError(msg string, path string, err error) error {
	return NewPathError(msg, path, IoFailure, err)
}

// KindOf returns the kind of an error, or Unknown for errors
// created outside this package
func KindOf(err error) ErrorKind {
	var pe *PathError
	if As(err, &pe) {
		return pe.Kind()
	}
	var ce *ConfigError
	if As(err, &ce) {
		return ce.Kind()
	}
	var app *AppError
	if As(err, &app) {
		return app.Kind()
	}
	return Unknown
}

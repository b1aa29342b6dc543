// Package errors provides standardized error handling for the FunkHunt
// application. It defines common error types, constants, and helper
// functions for consistent error creation, wrapping, and handling.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions that we re-export for convenience
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
	InvalidConfig
	ConfigNotFound
	// Catalogue error kinds
	InvalidPattern
	ScanFailed
	// Viewer error kinds
	ViewerFailed
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// ConfigError represents errors related to configuration loading and
// validation
type ConfigError struct {
	ApplicationError
	field string
}

// NewConfigError creates a new config error
func NewConfigError(msg string, field string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		field: field,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.field != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.field, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.field)
	}
	return e.ApplicationError.Error()
}

// Field returns the config field associated with the error
func (e *ConfigError) Field() string {
	return e.field
}

// PatternError represents errors from compiling format patterns
type PatternError struct {
	ApplicationError
	pattern string
}

// NewPatternError creates a new pattern error
func NewPatternError(msg string, pattern string, err error) *PatternError {
	return &PatternError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: InvalidPattern,
		},
		pattern: pattern,
	}
}

// Error returns the pattern error message
func (e *PatternError) Error() string {
	if e.pattern != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %q: %v", e.msg, e.pattern, e.err)
		}
		return fmt.Sprintf("%s: %q", e.msg, e.pattern)
	}
	return e.ApplicationError.Error()
}

// Pattern returns the pattern associated with the error
func (e *PatternError) Pattern() string {
	return e.pattern
}

// ViewerError represents errors from launching the external viewer
type ViewerError struct {
	ApplicationError
	path string
}

// NewViewerError creates a new viewer error
func NewViewerError(msg string, path string, err error) *ViewerError {
	return &ViewerError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: ViewerFailed,
		},
		path: path,
	}
}

// Error returns the viewer error message
func (e *ViewerError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *ViewerError) Path() string {
	return e.path
}

// Package errors defines the typed errors returned while loading table
// definitions and parsing command line table state.
package errors

import (
	"fmt"
)

// ParseError represents a YAML or JSON decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures a definition field that failed validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DataError reports a record source that could not be read.
type DataError struct {
	Source string
	Err    error
}

// NewDataError constructs a DataError for the given source path.
func NewDataError(source string, err error) error {
	return &DataError{Source: source, Err: err}
}

func (e *DataError) Error() string {
	if e == nil {
		return ""
	}
	if e.Source != "" {
		return fmt.Sprintf("data error [%s]: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("data error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *DataError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ArgumentError reports a malformed command line value such as a sort or
// filter expression.
type ArgumentError struct {
	Flag    string
	Value   string
	Message string
}

// NewArgumentError constructs an ArgumentError.
func NewArgumentError(flag, value, message string) error {
	return &ArgumentError{Flag: flag, Value: value, Message: message}
}

func (e *ArgumentError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid --%s %q: %s", e.Flag, e.Value, e.Message)
}

package errors

import (
	"fmt"
)

// ParseError represents a YAML decoding failure with optional line metadata.
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

// ValidationError reports a configuration or result field that failed validation.
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

// RecordError is returned when a producer cannot finish recording a step result.
type RecordError struct {
	StepID string
	Err    error
}

// NewRecordError constructs a RecordError.
func NewRecordError(stepID string, err error) error {
	return &RecordError{StepID: stepID, Err: err}
}

func (e *RecordError) Error() string {
	if e == nil {
		return ""
	}
	if e.StepID != "" {
		return fmt.Sprintf("record error on step %s: %v", e.StepID, e.Err)
	}
	return fmt.Sprintf("record error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *RecordError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// MarkupError indicates markup that could not be parsed or rewritten.
type MarkupError struct {
	Operation string
	Message   string
	Err       error
}

// NewMarkupError constructs a MarkupError for the given operation.
func NewMarkupError(operation, message string, err error) error {
	if message == "" && err != nil {
		message = err.Error()
	}
	return &MarkupError{Operation: operation, Message: message, Err: err}
}

func (e *MarkupError) Error() string {
	if e == nil {
		return ""
	}
	if e.Operation != "" {
		return fmt.Sprintf("markup error [%s]: %s", e.Operation, e.Message)
	}
	return fmt.Sprintf("markup error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *MarkupError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

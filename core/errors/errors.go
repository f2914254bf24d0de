// Package errors provides standardized error types and helpers for the Cantus codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateName indicates a name that is already in use
	ErrDuplicateName = errors.New("duplicate name")
	// ErrInvalidOperation indicates an operation that would break a structural invariant
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrUnsupported indicates an unsupported operation or format
	ErrUnsupported = errors.New("unsupported")
)

// ParseError represents a format parsing error. Format readers return it
// for structurally invalid input; the target Song is left untouched.
type ParseError struct {
	Format  string // Format being parsed (e.g., "canonical", "chordpro")
	Line    int    // 1-based line number, 0 when unknown
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("failed to parse %s at line %d: %s", e.Format, e.Line, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// DuplicateNameError represents a unique-name constraint violation.
type DuplicateNameError struct {
	Kind string // Entity kind (e.g., "part")
	Name string // The name that is already taken
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s name already in use: %q", e.Kind, e.Name)
}

func (e *DuplicateNameError) Unwrap() error {
	return ErrDuplicateName
}

// InvalidOpError represents an operation rejected because it would break
// a structural invariant. The model is left unchanged.
type InvalidOpError struct {
	Operation string // Operation that was attempted
	Reason    string // Which invariant would have been violated
}

func (e *InvalidOpError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("cannot %s: %s", e.Operation, e.Reason)
	}
	return fmt.Sprintf("invalid operation: %s", e.Reason)
}

func (e *InvalidOpError) Unwrap() error {
	return ErrInvalidOperation
}

// NotFoundError represents a missing entity with context.
type NotFoundError struct {
	Kind string // Entity kind (e.g., "part", "format")
	ID   string // Identifier of the entity
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Kind)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// UnsupportedError represents an unsupported feature or format.
type UnsupportedError struct {
	Feature string // Feature or format that is unsupported
	Reason  string // Why it's not supported
}

func (e *UnsupportedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported %s: %s", e.Feature, e.Reason)
	}
	return fmt.Sprintf("unsupported %s", e.Feature)
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

// Helper functions for creating common errors

// NewParse creates a ParseError
func NewParse(format string, line int, message string) *ParseError {
	return &ParseError{Format: format, Line: line, Message: message}
}

// NewDuplicateName creates a DuplicateNameError
func NewDuplicateName(kind, name string) *DuplicateNameError {
	return &DuplicateNameError{Kind: kind, Name: name}
}

// NewInvalidOp creates an InvalidOpError
func NewInvalidOp(operation, reason string) *InvalidOpError {
	return &InvalidOpError{Operation: operation, Reason: reason}
}

// NewNotFound creates a NotFoundError
func NewNotFound(kind, id string) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

// NewUnsupported creates an UnsupportedError
func NewUnsupported(feature, reason string) *UnsupportedError {
	return &UnsupportedError{Feature: feature, Reason: reason}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Package parity structured error types for better error handling
package parity

import (
	"errors"
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Dataset/file errors
	ErrTypeData ErrorType = iota
	// Invalid argument errors
	ErrTypeInvalidArg
	// Kernel execution errors
	ErrTypeExecution
	// Numerical errors
	ErrTypeNumerical
)

// ParityError represents a structured error with context
type ParityError struct {
	Type    ErrorType
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error if any
}

// Error implements the error interface
func (e *ParityError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parity %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("parity %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *ParityError) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeData:
		return "Data"
	case ErrTypeInvalidArg:
		return "InvalidArgument"
	case ErrTypeExecution:
		return "Execution"
	case ErrTypeNumerical:
		return "Numerical"
	default:
		return "Unknown"
	}
}

// Common error constructors

// NewDataError creates a dataset or file access error
func NewDataError(op string, message string, err error) error {
	return &ParityError{
		Type:    ErrTypeData,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// NewInvalidArgError creates an invalid argument error
func NewInvalidArgError(op string, message string) error {
	return &ParityError{
		Type:    ErrTypeInvalidArg,
		Op:      op,
		Message: message,
	}
}

// NewExecutionError creates a kernel execution error
func NewExecutionError(op string, message string, err error) error {
	return &ParityError{
		Type:    ErrTypeExecution,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// IsDataError checks if an error is a dataset or file access error
func IsDataError(err error) bool {
	var e *ParityError
	if errors.As(err, &e) {
		return e.Type == ErrTypeData
	}
	return false
}

// IsInvalidArgError checks if an error is an invalid argument error
func IsInvalidArgError(err error) bool {
	var e *ParityError
	if errors.As(err, &e) {
		return e.Type == ErrTypeInvalidArg
	}
	return false
}

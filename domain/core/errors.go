package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Operator parameter errors
	ErrInvalidParams     = errors.New("invalid parameters")
	ErrInvalidColumnType = errors.New("invalid column type")
	ErrColumnNotFound    = fmt.Errorf("%w: column not found", ErrInvalidParams)

	// History errors
	ErrNoOp = errors.New("nothing to do")

	// Loader errors
	ErrParseFailure = errors.New("parse failure")

	// Session errors
	ErrNotFound        = errors.New("resource not found")
	ErrSessionNotFound = fmt.Errorf("%w: session", ErrNotFound)
	ErrNoDataset       = errors.New("no dataset loaded")
)

// Error constructors with context
func NewInvalidParamsError(param string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidParams, param, reason)
}

func NewColumnNotFoundError(column string) error {
	return fmt.Errorf("%w: %q", ErrColumnNotFound, column)
}

func NewColumnTypeError(column string, want string, got string) error {
	return fmt.Errorf("%w: column %q is %s, want %s", ErrInvalidColumnType, column, got, want)
}

func NewNoOpError(action string) error {
	return fmt.Errorf("%w: %s", ErrNoOp, action)
}

func NewParseError(source string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s", ErrParseFailure, source)
	}
	return fmt.Errorf("%w: %s: %v", ErrParseFailure, source, cause)
}

func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

// Error checking helpers
func IsInvalidParamsError(err error) bool {
	return errors.Is(err, ErrInvalidParams)
}

func IsColumnTypeError(err error) bool {
	return errors.Is(err, ErrInvalidColumnType)
}

func IsNoOpError(err error) bool {
	return errors.Is(err, ErrNoOp)
}

func IsParseError(err error) bool {
	return errors.Is(err, ErrParseFailure)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

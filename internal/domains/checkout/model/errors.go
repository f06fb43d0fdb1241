package model

import (
	"errors"
	"fmt"
)

// ===================================
// DOMAIN ERRORS
// ===================================

var (
	// ErrInvalidFormat is returned when purchase or Y/N input is malformed
	ErrInvalidFormat = errors.New("invalid input format")

	// ErrProductNotFound is returned when a requested product is not in the catalog
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock is returned when requested quantity exceeds combined stock
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvariantViolation is returned when settlement would produce negative stock or amount.
	// Không phải lỗi của user: transaction bị huỷ, không clamp giá trị.
	ErrInvariantViolation = errors.New("invariant violation")
)

// ===================================
// ERROR HELPERS
// ===================================

// NewFormatError creates error with the rejected input
func NewFormatError(input string) error {
	return fmt.Errorf("%w: %q", ErrInvalidFormat, input)
}

// NewProductNotFoundError creates error with product name
func NewProductNotFoundError(name string) error {
	return fmt.Errorf("%w: %s", ErrProductNotFound, name)
}

// NewInsufficientStockError creates error with stock details
func NewInsufficientStockError(name string, requested, available int) error {
	return fmt.Errorf("%w: product=%s, requested=%d, available=%d", ErrInsufficientStock, name, requested, available)
}

// NewInvariantViolationError wraps the underlying cause
func NewInvariantViolationError(cause error) error {
	return fmt.Errorf("%w: %v", ErrInvariantViolation, cause)
}

// IsFormatError checks if error is a format error
func IsFormatError(err error) bool {
	return errors.Is(err, ErrInvalidFormat)
}

// IsUserInputError checks if error can be recovered by asking the user again
func IsUserInputError(err error) bool {
	return errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrInsufficientStock)
}

// IsInvariantViolation checks if error is an internal invariant violation
func IsInvariantViolation(err error) bool {
	return errors.Is(err, ErrInvariantViolation)
}

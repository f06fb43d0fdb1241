package model

import (
	"errors"
	"fmt"
)

// ===================================
// DOMAIN ERRORS
// ===================================

var (
	// ErrInvalidHeader is returned when a flat file header does not match the expected columns
	ErrInvalidHeader = errors.New("invalid header")

	// ErrInvalidRow is returned when a data row cannot be parsed or fails validation
	ErrInvalidRow = errors.New("invalid row")

	// ErrEmptyFile is returned when a flat file has no header
	ErrEmptyFile = errors.New("file is empty")

	// ErrDuplicateBatch is returned when a product has two promotional or two plain batches
	ErrDuplicateBatch = errors.New("duplicate product batch")

	// ErrPriceMismatch is returned when batches of one product disagree on price
	ErrPriceMismatch = errors.New("product batches have different prices")

	// ErrDuplicatePromotion is returned when two promotions share a name
	ErrDuplicatePromotion = errors.New("duplicate promotion")

	// ErrProductNotFound is returned when no batch exists for a product name
	ErrProductNotFound = errors.New("product not found")

	// ErrNegativeStock is returned when a stock change would drive a batch below zero
	ErrNegativeStock = errors.New("stock cannot go negative")
)

// ===================================
// ERROR HELPERS
// ===================================

// NewInvalidHeaderError creates error with expected and actual header
func NewInvalidHeaderError(expected, actual []string) error {
	return fmt.Errorf("%w: expected %v, got %v", ErrInvalidHeader, expected, actual)
}

// NewInvalidRowError creates error pointing at the offending row (1-based, header = row 1)
func NewInvalidRowError(row int, cause error) error {
	return fmt.Errorf("%w %d: %v", ErrInvalidRow, row, cause)
}

// NewDuplicateBatchError creates error for duplicate batch of a product
func NewDuplicateBatchError(name string, promotional bool) error {
	kind := "plain"
	if promotional {
		kind = "promotional"
	}
	return fmt.Errorf("%w: %s already has a %s batch", ErrDuplicateBatch, name, kind)
}

// NewNegativeStockError creates error with stock details
func NewNegativeStockError(name string, available, delta int) error {
	return fmt.Errorf("%w: product=%s, available=%d, decrement=%d", ErrNegativeStock, name, available, delta)
}

// IsLoadError checks if error came from parsing or validating the flat files
func IsLoadError(err error) bool {
	return errors.Is(err, ErrInvalidHeader) ||
		errors.Is(err, ErrInvalidRow) ||
		errors.Is(err, ErrEmptyFile) ||
		errors.Is(err, ErrDuplicateBatch) ||
		errors.Is(err, ErrPriceMismatch) ||
		errors.Is(err, ErrDuplicatePromotion)
}

package service

import (
	"convenience-store/internal/domains/checkout/model"
)

// ServiceInterface defines the checkout engine.
// Các hàm đều thuần (input → result/error); vòng lặp hỏi lại khi nhập sai
// thuộc về handler.
type ServiceInterface interface {
	// ParsePurchase parses "[name-qty],[name-qty]" into line items
	// Returns ErrInvalidFormat on malformed syntax or zero quantity
	// Returns ErrProductNotFound if a name is not in the catalog
	// Returns ErrInsufficientStock if quantity exceeds promotional + plain stock
	// Does NOT touch stock
	ParsePurchase(input string) ([]*model.LineItem, error)

	// ResolvePromotions attaches the active promotion and computes bonus quantity
	// and whether the customer must be asked about the bonus
	ResolvePromotions(items []*model.LineItem) error

	// ParseAnswer parses a Y/N answer (case-insensitive)
	// Returns ErrInvalidFormat for anything else
	ParseAnswer(input string) (bool, error)

	// Settle computes the receipt and decrements stock, promotional batch first.
	// All-or-nothing: returns ErrInvariantViolation and mutates nothing if any
	// batch would go negative or the final amount would be negative
	Settle(items []*model.LineItem, membership bool) (*model.Receipt, error)
}

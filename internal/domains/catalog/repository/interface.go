package repository

import (
	"convenience-store/internal/domains/catalog/model"
)

// RepositoryInterface defines data access for products and promotions.
// Toàn bộ dữ liệu nằm trong memory, được load 1 lần khi process khởi động.
type RepositoryInterface interface {
	// Products returns a copy of every batch in file order
	Products() []model.Product

	// Promotions returns a copy of every promotion in file order
	Promotions() []model.Promotion

	// FindStock returns the promotional and plain batches of a product
	// Returns ErrProductNotFound if no batch has this name
	FindStock(name string) (model.ProductStock, error)

	// FindPromotion looks up a promotion by name
	FindPromotion(name string) (*model.Promotion, bool)

	// ApplyStockChanges decrements stock for all changes atomically.
	// Validates every change first; returns ErrNegativeStock and applies nothing
	// if any batch would drop below zero.
	ApplyStockChanges(changes []model.StockChange) error
}

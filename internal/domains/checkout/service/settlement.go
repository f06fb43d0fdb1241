package service

import (
	"fmt"

	catalogModel "convenience-store/internal/domains/catalog/model"
	"convenience-store/internal/domains/checkout/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Settle tính receipt rồi trừ kho.
// Toàn bộ giao dịch được tính xong trước khi đụng vào kho: hoặc trừ hết, hoặc không trừ gì.
func (s *CheckoutService) Settle(items []*model.LineItem, membership bool) (*model.Receipt, error) {
	// PHASE 1: lấy đơn giá + lên kế hoạch trừ kho
	priced := make([]PricedItem, 0, len(items))
	changes := make([]catalogModel.StockChange, 0, len(items))

	for _, item := range items {
		stock, err := s.store.FindStock(item.Name)
		if err != nil {
			return nil, model.NewInvariantViolationError(err)
		}

		priced = append(priced, PricedItem{Item: item, UnitPrice: unitPrice(stock)})

		if item.Quantity <= 0 {
			continue
		}
		change, err := planStockChange(item, stock)
		if err != nil {
			return nil, model.NewInvariantViolationError(err)
		}
		changes = append(changes, change)
	}

	// PHASE 2: tính tiền
	breakdown := s.calculator.Calculate(priced, membership)
	if breakdown.FinalAmount.IsNegative() {
		return nil, model.NewInvariantViolationError(
			fmt.Errorf("final amount is negative: %s", breakdown.FinalAmount),
		)
	}

	// PHASE 3: trừ kho (atomic trong store)
	if err := s.store.ApplyStockChanges(changes); err != nil {
		return nil, model.NewInvariantViolationError(err)
	}

	receipt := &model.Receipt{
		ID:                 uuid.New(),
		IssuedAt:           s.clock.Now(),
		Lines:              breakdown.Lines,
		Bonuses:            breakdown.Bonuses,
		TotalQuantity:      breakdown.TotalQuantity,
		TotalAmount:        breakdown.TotalAmount,
		EventDiscount:      breakdown.EventDiscount,
		MembershipDiscount: breakdown.MembershipDiscount,
		FinalAmount:        breakdown.FinalAmount,
	}

	log.Info().
		Str("receipt_id", receipt.ID.String()).
		Int("items", len(receipt.Lines)).
		Str("total", receipt.TotalAmount.String()).
		Str("event_discount", receipt.EventDiscount.String()).
		Str("membership_discount", receipt.MembershipDiscount.String()).
		Bool("membership_capped", breakdown.Capped).
		Str("final", receipt.FinalAmount.String()).
		Msg("Transaction settled")

	return receipt, nil
}

// planStockChange: batch khuyến mãi được trừ trước.
// Nếu batch khuyến mãi không đủ, nó về 0 và batch thường gánh phần thiếu
// (chính là OverQuantity khách đã đồng ý mua giá gốc).
func planStockChange(item *model.LineItem, stock catalogModel.ProductStock) (catalogModel.StockChange, error) {
	change := catalogModel.StockChange{Name: item.Name}

	promotional := stock.PromotionalQuantity()
	if promotional >= item.Quantity {
		change.PromotionalDelta = item.Quantity
		return change, nil
	}

	shortfall := item.Quantity - promotional
	if shortfall > stock.RegularQuantity() {
		return change, catalogModel.NewNegativeStockError(item.Name, stock.RegularQuantity(), shortfall)
	}
	if shortfall != item.OverQuantity {
		log.Debug().
			Str("product", item.Name).
			Int("shortfall", shortfall).
			Int("over_quantity", item.OverQuantity).
			Msg("Plain batch shortfall differs from over quantity")
	}

	change.PromotionalDelta = promotional
	change.RegularDelta = shortfall
	return change, nil
}

// Các batch cùng tên có cùng giá (store đã kiểm tra khi load)
func unitPrice(stock catalogModel.ProductStock) decimal.Decimal {
	if stock.Promotional != nil {
		return stock.Promotional.Price
	}
	if stock.Regular != nil {
		return stock.Regular.Price
	}
	return decimal.Zero
}

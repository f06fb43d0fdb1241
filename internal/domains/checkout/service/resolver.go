package service

import (
	"time"

	catalogModel "convenience-store/internal/domains/catalog/model"
	"convenience-store/internal/domains/checkout/model"
	"convenience-store/pkg/clock"

	"github.com/rs/zerolog/log"
)

// ResolvePromotions gắn promotion đang hiệu lực và tính quà tặng cho từng item.
// Ngày hiện tại lấy từ clock được inject.
func (s *CheckoutService) ResolvePromotions(items []*model.LineItem) error {
	today := clock.Today(s.clock)

	for _, item := range items {
		stock, err := s.store.FindStock(item.Name)
		if err != nil {
			return model.NewProductNotFoundError(item.Name)
		}

		var promo *catalogModel.Promotion
		if stock.Promotional != nil {
			promo, _ = s.store.FindPromotion(stock.Promotional.PromotionName)
		}

		resolveLineItem(item, stock, promo, today)

		log.Debug().
			Str("product", item.Name).
			Str("promotion", item.PromotionName).
			Int("quantity", item.Quantity).
			Int("over_quantity", item.OverQuantity).
			Int("additional_quantity", item.AdditionalQuantity).
			Bool("needs_confirmation", item.NeedsConfirmation).
			Msg("Promotion resolved")
	}
	return nil
}

// resolveLineItem áp dụng quy tắc mua N tặng M cho một item.
//
// Business Logic:
// 1. Không có promotion (hoặc promotion không tồn tại): item thường, bỏ OverQuantity
// 2. Promotion hết hạn / chưa bắt đầu: không tặng, GIỮ OverQuantity
// 3. Promotion hiệu lực, unit = buy + get, eligible = quantity - over:
//   - eligible chia hết cho unit → tặng eligible/unit
//   - eligible > unit → tặng floor(eligible/unit)
//   - eligible == buy → tặng get, phải hỏi khách (chỉ khi batch khuyến mãi còn đủ hàng tặng)
//   - còn lại → không tặng
func resolveLineItem(item *model.LineItem, stock catalogModel.ProductStock, promo *catalogModel.Promotion, today time.Time) {
	item.PromotionName = ""
	item.AdditionalQuantity = 0
	item.NeedsConfirmation = false

	if promo == nil {
		item.OverQuantity = 0
		return
	}

	if !promo.IsActiveOn(today) {
		return
	}

	item.PromotionName = promo.Name
	unit := promo.BundleSize()
	eligible := item.EligibleQuantity()

	switch {
	case eligible%unit == 0:
		item.AdditionalQuantity = eligible / unit
	case eligible > unit:
		item.AdditionalQuantity = eligible / unit
	case eligible == promo.Buy:
		if stock.PromotionalQuantity()-eligible >= promo.Get {
			item.AdditionalQuantity = promo.Get
			item.NeedsConfirmation = true
		}
	}
}

package service

import (
	"convenience-store/internal/domains/checkout/model"

	"github.com/shopspring/decimal"
)

var (
	// DefaultMembershipRate: 30% trên phần tiền không khuyến mãi
	DefaultMembershipRate = decimal.NewFromFloat(0.3)

	// DefaultMembershipCap: 0 = không giới hạn
	DefaultMembershipCap = decimal.Zero
)

// DiscountCalculator xử lý logic tính tiền và discount của một giao dịch
type DiscountCalculator struct {
	membershipRate decimal.Decimal
	membershipCap  decimal.Decimal
}

// NewDiscountCalculator tạo instance mới
func NewDiscountCalculator(membershipRate, membershipCap decimal.Decimal) *DiscountCalculator {
	return &DiscountCalculator{
		membershipRate: membershipRate,
		membershipCap:  membershipCap,
	}
}

// PricedItem là line item kèm đơn giá lấy từ catalog
type PricedItem struct {
	Item      *model.LineItem
	UnitPrice decimal.Decimal
}

// Calculate tính toán tổng tiền và các khoản giảm giá
//
// Business Logic:
// 1. amount = quantity × unitPrice, cộng dồn vào TotalAmount
// 2. Event discount = additionalQuantity × unitPrice (quà tặng đã nằm trong quantity)
// 3. Membership discount:
//   - Chỉ áp dụng cho item KHÔNG có promotion hiệu lực (không cộng dồn 2 loại giảm giá)
//   - floor(amount × rate) theo từng item
//   - Nếu có cap: tổng membership discount = min(tổng, cap)
//
// 4. FinalAmount = TotalAmount - EventDiscount - MembershipDiscount
func (c *DiscountCalculator) Calculate(items []PricedItem, membership bool) SettlementBreakdown {
	b := SettlementBreakdown{
		TotalAmount:           decimal.Zero,
		EventDiscount:         decimal.Zero,
		RawMembershipDiscount: decimal.Zero,
		MembershipDiscount:    decimal.Zero,
	}

	for _, p := range items {
		item := p.Item
		if item.Quantity <= 0 {
			continue
		}

		amount := p.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		b.Lines = append(b.Lines, model.ReceiptLine{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: p.UnitPrice,
			Amount:    amount,
		})
		b.TotalQuantity += item.Quantity
		b.TotalAmount = b.TotalAmount.Add(amount)

		if item.AdditionalQuantity > 0 {
			b.Bonuses = append(b.Bonuses, model.BonusLine{
				Name:     item.Name,
				Quantity: item.AdditionalQuantity,
			})
			b.EventDiscount = b.EventDiscount.Add(p.UnitPrice.Mul(decimal.NewFromInt(int64(item.AdditionalQuantity))))
		}

		if membership && !item.HasActivePromotion() {
			b.RawMembershipDiscount = b.RawMembershipDiscount.Add(c.MembershipDiscount(amount))
		}
	}

	b.MembershipDiscount = b.RawMembershipDiscount
	if c.membershipCap.IsPositive() && b.RawMembershipDiscount.GreaterThan(c.membershipCap) {
		b.MembershipDiscount = c.membershipCap
		b.Capped = true
	}

	b.FinalAmount = b.TotalAmount.Sub(b.EventDiscount).Sub(b.MembershipDiscount)
	return b
}

// MembershipDiscount = floor(amount × rate)
// VD: 3,000 × 0.3 = 900
func (c *DiscountCalculator) MembershipDiscount(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(c.membershipRate).Floor()
}

// SettlementBreakdown chứa chi tiết tính toán (dùng cho receipt và logging)
type SettlementBreakdown struct {
	Lines   []model.ReceiptLine
	Bonuses []model.BonusLine

	TotalQuantity         int
	TotalAmount           decimal.Decimal
	EventDiscount         decimal.Decimal
	RawMembershipDiscount decimal.Decimal // Trước khi cap
	MembershipDiscount    decimal.Decimal // Sau khi cap
	Capped                bool
	FinalAmount           decimal.Decimal
}

package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// PurchaseRequest là ý định mua thô của khách: [name-qty]
type PurchaseRequest struct {
	Name     string
	Quantity int
}

// Validate validates PurchaseRequest
func (r PurchaseRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("product name is required")),
		validation.Field(&r.Quantity, validation.Min(1).Error("quantity must be >= 1")),
	)
}

// LineItem là một dòng hàng trong giao dịch, được cập nhật qua từng bước:
// parser → resolver → các bước xác nhận → settlement.
type LineItem struct {
	Name string

	// Quantity: số lượng khách sẽ thanh toán (tăng lên nếu nhận thêm quà tặng)
	Quantity int

	// OverQuantity: phần vượt quá tồn kho khuyến mãi, phải mua giá gốc hoặc bỏ
	OverQuantity int

	// PromotionName: chỉ khác "" khi có promotion đang hiệu lực
	PromotionName string

	// AdditionalQuantity: số lượng được tặng
	AdditionalQuantity int

	// NeedsConfirmation: khách đang đúng mốc buy, cần hỏi có lấy thêm quà không
	NeedsConfirmation bool
}

// EligibleQuantity là phần được tồn kho khuyến mãi bao phủ
func (i *LineItem) EligibleQuantity() int {
	return i.Quantity - i.OverQuantity
}

// HasActivePromotion checks if an active promotion applies to this line
func (i *LineItem) HasActivePromotion() bool {
	return i.PromotionName != ""
}

// NeedsShortageConfirmation checks if customer must confirm buying OverQuantity at full price
func (i *LineItem) NeedsShortageConfirmation() bool {
	return i.OverQuantity > 0
}

// NeedsBonusConfirmation checks if customer must be offered the free bonus
func (i *LineItem) NeedsBonusConfirmation() bool {
	return i.NeedsConfirmation && i.AdditionalQuantity > 0
}

// DeclineOverQuantity: khách chỉ giữ phần được khuyến mãi bao phủ
func (i *LineItem) DeclineOverQuantity() {
	i.Quantity -= i.OverQuantity
	i.OverQuantity = 0
}

// AcceptBonus: quà tặng được cộng vào Quantity, giá trị của nó được trừ lại qua event discount
func (i *LineItem) AcceptBonus() {
	i.Quantity += i.AdditionalQuantity
	i.NeedsConfirmation = false
}

// DeclineBonus: giữ nguyên Quantity, bỏ quà tặng
func (i *LineItem) DeclineBonus() {
	i.AdditionalQuantity = 0
	i.NeedsConfirmation = false
}

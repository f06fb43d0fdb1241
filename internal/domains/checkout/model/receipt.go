package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptLine là một dòng trong phần danh sách hàng đã mua
type ReceiptLine struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Amount    decimal.Decimal
}

// BonusLine là một dòng trong phần quà tặng
type BonusLine struct {
	Name     string
	Quantity int
}

// Receipt là kết quả thanh toán của một giao dịch
type Receipt struct {
	ID       uuid.UUID
	IssuedAt time.Time

	Lines   []ReceiptLine
	Bonuses []BonusLine

	TotalQuantity      int
	TotalAmount        decimal.Decimal
	EventDiscount      decimal.Decimal
	MembershipDiscount decimal.Decimal
	FinalAmount        decimal.Decimal
}

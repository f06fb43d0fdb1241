package model

// StockChange là lượng trừ kho dự kiến cho một sản phẩm trong một giao dịch.
// Delta là số dương (số lượng bị trừ).
type StockChange struct {
	Name             string
	PromotionalDelta int
	RegularDelta     int
}

// Total trả về tổng số lượng bị trừ trên cả 2 batch
func (c StockChange) Total() int {
	return c.PromotionalDelta + c.RegularDelta
}

// ProductStock gom batch khuyến mãi và batch thường của cùng một sản phẩm
type ProductStock struct {
	Name        string
	Promotional *Product // nil nếu không có batch khuyến mãi
	Regular     *Product // nil nếu không có batch thường
}

// PromotionalQuantity trả về tồn kho batch khuyến mãi (0 nếu không có)
func (s ProductStock) PromotionalQuantity() int {
	if s.Promotional == nil {
		return 0
	}
	return s.Promotional.Quantity
}

// RegularQuantity trả về tồn kho batch thường (0 nếu không có)
func (s ProductStock) RegularQuantity() int {
	if s.Regular == nil {
		return 0
	}
	return s.Regular.Quantity
}

// TotalQuantity = promotional + regular
func (s ProductStock) TotalQuantity() int {
	return s.PromotionalQuantity() + s.RegularQuantity()
}

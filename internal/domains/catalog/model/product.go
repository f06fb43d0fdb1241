package model

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// NoPromotion là giá trị sentinel trong file inventory cho batch không khuyến mãi
const NoPromotion = "null"

// Product là một batch hàng trong kho.
// Một sản phẩm có thể có 2 batch cùng tên: batch khuyến mãi (PromotionName != "")
// và batch thường (PromotionName == "").
type Product struct {
	Name          string
	Price         decimal.Decimal
	Quantity      int
	PromotionName string
}

// IsPromotional checks if this batch carries a promotion reference
func (p *Product) IsPromotional() bool {
	return p.PromotionName != ""
}

// Validate validates Product
func (p Product) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name,
			validation.Required.Error("product name is required"),
			validation.By(validName),
		),
		validation.Field(&p.Price, validation.By(nonNegativeDecimal)),
		validation.Field(&p.Quantity, validation.Min(0).Error("quantity cannot be negative")),
	)
}

// Promotion là chương trình mua N tặng M, có hiệu lực trong [StartDate, EndDate]
type Promotion struct {
	Name      string
	Buy       int
	Get       int
	StartDate time.Time
	EndDate   time.Time
}

// Validate validates Promotion
func (p Promotion) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required.Error("promotion name is required")),
		validation.Field(&p.Buy, validation.Min(1).Error("buy must be >= 1")),
		validation.Field(&p.Get, validation.Min(1).Error("get must be >= 1")),
		validation.Field(&p.EndDate,
			validation.By(func(interface{}) error {
				if p.EndDate.Before(p.StartDate) {
					return errors.New("end_date must not be before start_date")
				}
				return nil
			}),
		),
	)
}

// IsActiveOn checks if the promotion is valid on the given day (both ends inclusive)
func (p *Promotion) IsActiveOn(day time.Time) bool {
	return !day.Before(p.StartDate) && !day.After(p.EndDate)
}

// BundleSize = buy + get
func (p *Promotion) BundleSize() int {
	return p.Buy + p.Get
}

func nonNegativeDecimal(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a decimal")
	}
	if d.IsNegative() {
		return errors.New("price cannot be negative")
	}
	if !d.Equal(d.Truncate(0)) {
		return errors.New("price must be a whole number")
	}
	return nil
}

// Tên sản phẩm không được chứa ký tự của cú pháp mua hàng [name-qty],...
func validName(value interface{}) error {
	name, _ := value.(string)
	if strings.ContainsAny(name, "[],") {
		return errors.New("product name cannot contain '[', ']' or ','")
	}
	return nil
}

package clock

import (
	"fmt"
	"time"
)

// DateLayout là format ngày dùng trong file promotion và CHECKOUT_DATE
const DateLayout = "2006-01-02"

// Clock cung cấp thời điểm hiện tại.
// Resolver nhận Clock thay vì gọi time.Now() để test được các mốc ngày khuyến mãi.
type Clock interface {
	Now() time.Time
}

// System trả về giờ hệ thống
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed luôn trả về cùng một thời điểm
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time {
	return f.At
}

// NewFixedDate parse "YYYY-MM-DD" thành Fixed clock
func NewFixedDate(date string) (Fixed, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return Fixed{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return Fixed{At: t}, nil
}

// Today cắt phần giờ, giữ lại ngày (UTC) để so sánh với StartDate/EndDate
func Today(c Clock) time.Time {
	now := c.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

package utils

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"golang.org/x/text/width"
)

// FormatMoney format số tiền với dấu phân cách hàng nghìn: 13100 → "13,100"
func FormatMoney(amount decimal.Decimal) string {
	return humanize.Comma(amount.IntPart())
}

// FormatDiscount hiển thị khoản giảm giá dạng âm, hoặc "0" nếu không giảm
func FormatDiscount(amount decimal.Decimal) string {
	if amount.IsZero() {
		return "0"
	}
	return "-" + FormatMoney(amount.Abs())
}

// DisplayWidth đếm số cột hiển thị trên terminal.
// Ký tự East Asian Wide/Fullwidth (VD: tiếng Hàn, tiếng Nhật) chiếm 2 cột.
func DisplayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}

// PadRight thêm khoảng trắng bên phải cho đủ n cột hiển thị
func PadRight(s string, n int) string {
	if gap := n - DisplayWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// PadLeft thêm khoảng trắng bên trái cho đủ n cột hiển thị
func PadLeft(s string, n int) string {
	if gap := n - DisplayWidth(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}

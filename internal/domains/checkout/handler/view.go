package handler

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	catalogModel "convenience-store/internal/domains/catalog/model"
	"convenience-store/internal/domains/checkout/model"
	"convenience-store/internal/shared/utils"
)

// Độ rộng cột của receipt (tính theo cột hiển thị)
const (
	nameColumn   = 20
	qtyColumn    = 6
	amountColumn = 12
	receiptWidth = nameColumn + qtyColumn + amountColumn
)

// RenderInventory in danh sách tồn kho hiện tại.
// Mỗi sản phẩm in batch khuyến mãi trước, sau đó batch thường;
// batch thường không có hoặc hết hàng hiển thị "out of stock".
func RenderInventory(w io.Writer, storeName string, products []catalogModel.Product) {
	fmt.Fprintf(w, "Hello. This is %s.\n", storeName)
	fmt.Fprintln(w, "Here are the products currently in stock.")
	fmt.Fprintln(w)

	var order []string
	groups := make(map[string]*catalogModel.ProductStock)
	for i := range products {
		p := products[i]
		g, ok := groups[p.Name]
		if !ok {
			g = &catalogModel.ProductStock{Name: p.Name}
			groups[p.Name] = g
			order = append(order, p.Name)
		}
		if p.IsPromotional() {
			g.Promotional = &p
		} else {
			g.Regular = &p
		}
	}

	for _, name := range order {
		g := groups[name]
		if g.Promotional != nil {
			fmt.Fprintln(w, inventoryLine(*g.Promotional))
		}
		regular := g.Regular
		if regular == nil {
			regular = &catalogModel.Product{Name: name, Price: g.Promotional.Price}
		}
		fmt.Fprintln(w, inventoryLine(*regular))
	}
}

func inventoryLine(p catalogModel.Product) string {
	stock := "out of stock"
	if p.Quantity > 0 {
		stock = fmt.Sprintf("%d units", p.Quantity)
	}
	line := fmt.Sprintf("- %s %s %s", p.Name, utils.FormatMoney(p.Price), stock)
	if p.IsPromotional() {
		line += " " + p.PromotionName
	}
	return line
}

// RenderReceipt in receipt dạng fixed-width
func RenderReceipt(w io.Writer, storeName string, r *model.Receipt) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, banner(storeName))
	fmt.Fprintln(w, row("Item", "Qty", "Amount"))
	for _, line := range r.Lines {
		fmt.Fprintln(w, row(line.Name, strconv.Itoa(line.Quantity), utils.FormatMoney(line.Amount)))
	}

	fmt.Fprintln(w, banner("BONUS"))
	for _, bonus := range r.Bonuses {
		fmt.Fprintln(w, row(bonus.Name, strconv.Itoa(bonus.Quantity), ""))
	}

	fmt.Fprintln(w, strings.Repeat("=", receiptWidth))
	fmt.Fprintln(w, row("Total", strconv.Itoa(r.TotalQuantity), utils.FormatMoney(r.TotalAmount)))
	fmt.Fprintln(w, row("Event discount", "", utils.FormatDiscount(r.EventDiscount)))
	fmt.Fprintln(w, row("Membership discount", "", utils.FormatDiscount(r.MembershipDiscount)))
	fmt.Fprintln(w, row("Payable", "", utils.FormatMoney(r.FinalAmount)))
}

func row(name, qty, amount string) string {
	return utils.PadRight(name, nameColumn) +
		utils.PadLeft(qty, qtyColumn) +
		utils.PadLeft(amount, amountColumn)
}

// banner: "======== TITLE ========" canh giữa theo receiptWidth
func banner(title string) string {
	title = " " + title + " "
	side := (receiptWidth - utils.DisplayWidth(title)) / 2
	if side < 3 {
		side = 3
	}
	left := strings.Repeat("=", side)
	right := strings.Repeat("=", receiptWidth-side-utils.DisplayWidth(title))
	if len(right) < 3 {
		right = strings.Repeat("=", 3)
	}
	return left + title + right
}

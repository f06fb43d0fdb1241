package service

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"convenience-store/internal/domains/checkout/model"

	"github.com/rs/zerolog/log"
)

// Một token: [tên-số lượng]. Tên lấy tới dấu '-' cuối cùng.
var purchaseTokenPattern = regexp.MustCompile(`^\[([^\[\]]+)-([0-9]+)\]$`)

// ParsePurchase parse dòng mua hàng và kiểm tra với catalog
func (s *CheckoutService) ParsePurchase(input string) ([]*model.LineItem, error) {
	requests, err := parsePurchaseRequests(input)
	if err != nil {
		return nil, err
	}

	items := make([]*model.LineItem, 0, len(requests))
	for _, req := range requests {
		stock, err := s.store.FindStock(req.Name)
		if err != nil {
			return nil, model.NewProductNotFoundError(req.Name)
		}

		// Tổng tồn kho = batch khuyến mãi + batch thường
		if available := stock.TotalQuantity(); req.Quantity > available {
			return nil, model.NewInsufficientStockError(req.Name, req.Quantity, available)
		}

		// OverQuantity tạm tính, resolver sẽ quyết định cuối cùng
		over := req.Quantity - stock.PromotionalQuantity()
		if over < 0 {
			over = 0
		}

		items = append(items, &model.LineItem{
			Name:         req.Name,
			Quantity:     req.Quantity,
			OverQuantity: over,
		})
	}

	log.Debug().Int("items", len(items)).Msg("Purchase parsed")
	return items, nil
}

// parsePurchaseRequests chỉ kiểm tra cú pháp, không cần catalog.
// Tên trùng trong cùng một dòng được gộp lại, giữ vị trí xuất hiện đầu tiên.
func parsePurchaseRequests(input string) ([]model.PurchaseRequest, error) {
	line := strings.TrimSpace(input)
	if line == "" {
		return nil, model.NewFormatError(input)
	}

	var requests []model.PurchaseRequest
	position := make(map[string]int)

	for _, token := range strings.Split(line, ",") {
		match := purchaseTokenPattern.FindStringSubmatch(token)
		if match == nil {
			return nil, model.NewFormatError(input)
		}

		quantity, err := strconv.Atoi(match[2])
		if err != nil {
			return nil, model.NewFormatError(input)
		}

		req := model.PurchaseRequest{Name: match[1], Quantity: quantity}
		if err := req.Validate(); err != nil {
			return nil, model.NewFormatError(input)
		}

		if i, seen := position[req.Name]; seen {
			// Cộng bão hoà tại MaxInt: tổng không bao giờ tràn thành số âm,
			// kiểm tra tồn kho phía sau sẽ từ chối giá trị này
			if requests[i].Quantity > math.MaxInt-req.Quantity {
				requests[i].Quantity = math.MaxInt
			} else {
				requests[i].Quantity += req.Quantity
			}
			continue
		}
		position[req.Name] = len(requests)
		requests = append(requests, req)
	}

	return requests, nil
}

// ParseAnswer parse câu trả lời Y/N
func (s *CheckoutService) ParseAnswer(input string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	default:
		return false, model.NewFormatError(input)
	}
}

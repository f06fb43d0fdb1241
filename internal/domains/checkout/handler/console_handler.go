package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"convenience-store/internal/domains/catalog/repository"
	"convenience-store/internal/domains/checkout/model"
	"convenience-store/internal/domains/checkout/service"
	"convenience-store/pkg/logger"
)

const (
	promptPurchase   = "\nPlease enter the product name and quantity. (e.g. [Cola-2],[Chips-1])"
	promptShortage   = "\n%d unit(s) of %s cannot receive the promotion. Would you like to buy them at full price? (Y/N)"
	promptBonus      = "\nYou can get %d more %s for free. Would you like to add it? (Y/N)"
	promptMembership = "\nWould you like to apply the membership discount? (Y/N)"
	promptContinue   = "\nThank you for shopping. Would you like to buy anything else? (Y/N)"
)

// ConsoleHandler điều phối tương tác với khách qua console.
// Mọi lỗi input của user được xử lý tại đây bằng cách hỏi lại cùng câu hỏi.
type ConsoleHandler struct {
	service   service.ServiceInterface
	store     repository.RepositoryInterface
	storeName string

	scanner *bufio.Scanner
	out     io.Writer

	receipts []*model.Receipt
}

func NewConsoleHandler(
	svc service.ServiceInterface,
	store repository.RepositoryInterface,
	storeName string,
	in io.Reader,
	out io.Writer,
) *ConsoleHandler {
	return &ConsoleHandler{
		service:   svc,
		store:     store,
		storeName: storeName,
		scanner:   bufio.NewScanner(in),
		out:       out,
	}
}

// Run chạy vòng lặp mua hàng cho tới khi khách trả lời N, hết input, hoặc ctx bị huỷ.
// Chỉ trả về error khi có lỗi không phục hồi được (VD: ErrInvariantViolation).
func (h *ConsoleHandler) Run(ctx context.Context) error {
	for {
		receipt, err := h.RunTransaction(ctx)
		if isEndOfSession(err) {
			return nil
		}
		if err != nil {
			return err
		}
		h.receipts = append(h.receipts, receipt)

		more, err := h.askYesNo(ctx, promptContinue)
		if isEndOfSession(err) {
			return nil
		}
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// Receipts trả về các receipt đã thanh toán trong session
func (h *ConsoleHandler) Receipts() []*model.Receipt {
	return h.receipts
}

// RunTransaction xử lý một lượt mua hàng:
// 1. Hiển thị tồn kho
// 2. Đọc dòng mua hàng (hỏi lại nếu sai)
// 3. Resolve promotion
// 4. Xác nhận phần thiếu khuyến mãi → xác nhận quà tặng → xác nhận membership
// 5. Settle + in receipt
func (h *ConsoleHandler) RunTransaction(ctx context.Context) (*model.Receipt, error) {
	RenderInventory(h.out, h.storeName, h.store.Products())

	items, err := h.readPurchase(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.service.ResolvePromotions(items); err != nil {
		return nil, err
	}

	if err := h.confirmShortages(ctx, items); err != nil {
		return nil, err
	}
	if err := h.confirmBonuses(ctx, items); err != nil {
		return nil, err
	}

	membership, err := h.askYesNo(ctx, promptMembership)
	if err != nil {
		return nil, err
	}

	receipt, err := h.service.Settle(items, membership)
	if err != nil {
		logger.Error("Transaction aborted", err)
		fmt.Fprintln(h.out, "[ERROR] The transaction could not be completed and was cancelled.")
		return nil, err
	}

	RenderReceipt(h.out, h.storeName, receipt)
	return receipt, nil
}

func (h *ConsoleHandler) readPurchase(ctx context.Context) ([]*model.LineItem, error) {
	for {
		fmt.Fprintln(h.out, promptPurchase)
		line, err := h.readLine(ctx)
		if err != nil {
			return nil, err
		}

		items, err := h.service.ParsePurchase(line)
		if err == nil {
			return items, nil
		}
		if !model.IsUserInputError(err) {
			return nil, err
		}
		h.printInputError(err)
	}
}

// Pass 1: hỏi từng item có OverQuantity > 0
func (h *ConsoleHandler) confirmShortages(ctx context.Context, items []*model.LineItem) error {
	for _, item := range items {
		if !item.NeedsShortageConfirmation() {
			continue
		}
		accept, err := h.askYesNo(ctx, fmt.Sprintf(promptShortage, item.OverQuantity, item.Name))
		if err != nil {
			return err
		}
		if !accept {
			item.DeclineOverQuantity()
		}
	}
	return nil
}

// Pass 2: hỏi từng item đang đúng mốc buy
func (h *ConsoleHandler) confirmBonuses(ctx context.Context, items []*model.LineItem) error {
	for _, item := range items {
		if !item.NeedsBonusConfirmation() {
			continue
		}
		accept, err := h.askYesNo(ctx, fmt.Sprintf(promptBonus, item.AdditionalQuantity, item.Name))
		if err != nil {
			return err
		}
		if accept {
			item.AcceptBonus()
		} else {
			item.DeclineBonus()
		}
	}
	return nil
}

func (h *ConsoleHandler) askYesNo(ctx context.Context, prompt string) (bool, error) {
	for {
		fmt.Fprintln(h.out, prompt)
		line, err := h.readLine(ctx)
		if err != nil {
			return false, err
		}

		answer, err := h.service.ParseAnswer(line)
		if err == nil {
			return answer, nil
		}
		h.printInputError(err)
	}
}

func (h *ConsoleHandler) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !h.scanner.Scan() {
		if err := h.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(h.scanner.Text()), nil
}

func (h *ConsoleHandler) printInputError(err error) {
	logger.Debug(err.Error())

	switch {
	case errors.Is(err, model.ErrProductNotFound):
		fmt.Fprintln(h.out, "[ERROR] The product does not exist. Please try again.")
	case errors.Is(err, model.ErrInsufficientStock):
		fmt.Fprintln(h.out, "[ERROR] The quantity exceeds the available stock. Please try again.")
	default:
		fmt.Fprintln(h.out, "[ERROR] Invalid input format. Please try again.")
	}
}

func isEndOfSession(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

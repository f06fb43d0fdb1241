package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"convenience-store/internal/domains/catalog/model"
	"convenience-store/pkg/clock"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

var (
	decimalDigits = regexp.MustCompile(`^[0-9]+$`)

	productHeader   = []string{"name", "price", "quantity", "promotion"}
	promotionHeader = []string{"name", "buy", "get", "start_date", "end_date"}
)

// LoadFromFiles đọc 2 file inventory + promotion và build MemoryStore
func LoadFromFiles(productsPath, promotionsPath string) (*MemoryStore, error) {
	products, err := loadFile(productsPath, LoadProducts)
	if err != nil {
		return nil, err
	}
	promotions, err := loadFile(promotionsPath, LoadPromotions)
	if err != nil {
		return nil, err
	}

	store, err := NewMemoryStore(products, promotions)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("products", len(products)).
		Int("promotions", len(promotions)).
		Msg("Catalog loaded")

	return store, nil
}

func loadFile[T any](path string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	records, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// LoadProducts parse file inventory: name,price,quantity,promotion
func LoadProducts(r io.Reader) ([]model.Product, error) {
	records, err := readRecords(r, productHeader)
	if err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(records))
	for i, record := range records {
		rowNum := i + 2 // header là row 1
		p, err := parseProductRow(record)
		if err != nil {
			return nil, model.NewInvalidRowError(rowNum, err)
		}
		if err := p.Validate(); err != nil {
			return nil, model.NewInvalidRowError(rowNum, err)
		}
		products = append(products, p)
	}
	return products, nil
}

// LoadPromotions parse file promotion: name,buy,get,start_date,end_date
func LoadPromotions(r io.Reader) ([]model.Promotion, error) {
	records, err := readRecords(r, promotionHeader)
	if err != nil {
		return nil, err
	}

	promotions := make([]model.Promotion, 0, len(records))
	for i, record := range records {
		rowNum := i + 2
		p, err := parsePromotionRow(record)
		if err != nil {
			return nil, model.NewInvalidRowError(rowNum, err)
		}
		if err := p.Validate(); err != nil {
			return nil, model.NewInvalidRowError(rowNum, err)
		}
		promotions = append(promotions, p)
	}
	return promotions, nil
}

// readRecords đọc CSV, kiểm tra header khớp chính xác; trả về các data row.
// csv.Reader tự reject row có số cột khác header.
func readRecords(r io.Reader, header []string) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, model.NewInvalidRowError(parseErr.Line, parseErr.Err)
		}
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, model.ErrEmptyFile
	}

	actual := make([]string, len(records[0]))
	for i, col := range records[0] {
		actual[i] = strings.TrimSpace(col)
	}
	if !equalColumns(actual, header) {
		return nil, model.NewInvalidHeaderError(header, actual)
	}

	return records[1:], nil
}

func equalColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// parseCount chỉ nhận chữ số thập phân không dấu.
// cast đọc theo base 0 ("010" = 8, "0x10" = 16) nên bỏ số 0 đầu trước khi convert.
func parseCount(field string) (int64, error) {
	s := strings.TrimSpace(field)
	if !decimalDigits.MatchString(s) {
		return 0, fmt.Errorf("not a decimal number: %q", field)
	}
	if s = strings.TrimLeft(s, "0"); s == "" {
		s = "0"
	}
	n, err := cast.ToIntE(s)
	if err != nil {
		return 0, err
	}
	return int64(n), nil
}

func parseProductRow(record []string) (model.Product, error) {
	name := strings.TrimSpace(record[0])

	price, err := parseCount(record[1])
	if err != nil {
		return model.Product{}, fmt.Errorf("invalid price: %s", record[1])
	}
	quantity, err := parseCount(record[2])
	if err != nil {
		return model.Product{}, fmt.Errorf("invalid quantity: %s", record[2])
	}

	promotion := strings.TrimSpace(record[3])
	if promotion == model.NoPromotion {
		promotion = ""
	}

	return model.Product{
		Name:          name,
		Price:         decimal.NewFromInt(price),
		Quantity:      int(quantity),
		PromotionName: promotion,
	}, nil
}

func parsePromotionRow(record []string) (model.Promotion, error) {
	buy, err := parseCount(record[1])
	if err != nil {
		return model.Promotion{}, fmt.Errorf("invalid buy: %s", record[1])
	}
	get, err := parseCount(record[2])
	if err != nil {
		return model.Promotion{}, fmt.Errorf("invalid get: %s", record[2])
	}
	start, err := time.Parse(clock.DateLayout, strings.TrimSpace(record[3]))
	if err != nil {
		return model.Promotion{}, fmt.Errorf("invalid start_date: %s", record[3])
	}
	end, err := time.Parse(clock.DateLayout, strings.TrimSpace(record[4]))
	if err != nil {
		return model.Promotion{}, fmt.Errorf("invalid end_date: %s", record[4])
	}

	return model.Promotion{
		Name:      strings.TrimSpace(record[0]),
		Buy:       int(buy),
		Get:       int(get),
		StartDate: start,
		EndDate:   end,
	}, nil
}

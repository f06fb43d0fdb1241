package report

import (
	"fmt"

	catalogModel "convenience-store/internal/domains/catalog/model"
	checkoutModel "convenience-store/internal/domains/checkout/model"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const (
	inventorySheet = "Inventory"
	salesSheet     = "Sales"
)

// ExcelExporter ghi báo cáo cuối session ra file .xlsx:
// sheet "Inventory" là tồn kho sau session, sheet "Sales" là các receipt đã thanh toán.
type ExcelExporter struct{}

func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export build workbook và lưu vào path
func (e *ExcelExporter) Export(path string, products []catalogModel.Product, receipts []*checkoutModel.Receipt) error {
	f, err := e.Build(products, receipts)
	if err != nil {
		return fmt.Errorf("failed to build excel file: %w", err)
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save excel file: %w", err)
	}

	log.Info().
		Str("path", path).
		Int("products", len(products)).
		Int("receipts", len(receipts)).
		Msg("Session report exported")
	return nil
}

// Build tạo workbook trong memory
func (e *ExcelExporter) Build(products []catalogModel.Product, receipts []*checkoutModel.Receipt) (*excelize.File, error) {
	f := excelize.NewFile()

	// Rename default sheet
	if err := f.SetSheetName("Sheet1", inventorySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(salesSheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
	})
	if err != nil {
		return nil, err
	}

	// ---------- Inventory ----------
	inventoryHeaders := []string{"Name", "Price", "Quantity", "Promotion"}
	if err := writeHeader(f, inventorySheet, inventoryHeaders, headerStyle); err != nil {
		return nil, err
	}
	for i, p := range products {
		rowNum := i + 2
		values := []interface{}{p.Name, p.Price.IntPart(), p.Quantity, p.PromotionName}
		if err := writeRow(f, inventorySheet, rowNum, values); err != nil {
			return nil, err
		}
	}

	// ---------- Sales ----------
	salesHeaders := []string{
		"Receipt ID",
		"Issued At",
		"Total Quantity",
		"Total Amount",
		"Event Discount",
		"Membership Discount",
		"Final Amount",
	}
	if err := writeHeader(f, salesSheet, salesHeaders, headerStyle); err != nil {
		return nil, err
	}
	for i, r := range receipts {
		rowNum := i + 2
		values := []interface{}{
			r.ID.String(),
			r.IssuedAt.Format("2006-01-02 15:04:05"),
			r.TotalQuantity,
			r.TotalAmount.IntPart(),
			r.EventDiscount.IntPart(),
			r.MembershipDiscount.IntPart(),
			r.FinalAmount.IntPart(),
		}
		if err := writeRow(f, salesSheet, rowNum, values); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) error {
	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1) // (col, row=1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	return f.SetCellStyle(sheet, "A1", last, style)
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	for colIdx, v := range values {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowNum)
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

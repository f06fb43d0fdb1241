package container

import (
	"fmt"
	"io"

	"convenience-store/internal/config"
	"convenience-store/internal/domains/catalog/repository"
	checkoutHandler "convenience-store/internal/domains/checkout/handler"
	checkoutService "convenience-store/internal/domains/checkout/service"
	"convenience-store/internal/infrastructure/report"
	"convenience-store/pkg/clock"
	"convenience-store/pkg/logger"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Lifecycle: 1 instance cho mỗi lần chạy process
type Container struct {
	// Infrastructure
	Config   *config.Config
	Clock    clock.Clock
	Reporter *report.ExcelExporter

	// Repository
	Store repository.RepositoryInterface

	// Service
	CheckoutService checkoutService.ServiceInterface

	// Handler (console)
	CheckoutHandler *checkoutHandler.ConsoleHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer tạo và initialize toàn bộ dependency graph
//
// Thứ tự initialization:
// 1. Config (không phụ thuộc gì)
// 2. Clock - phụ thuộc Config
// 3. Store (load flat files) - phụ thuộc Config
// 4. Services - phụ thuộc Store + Clock
// 5. Handler - phụ thuộc Services + I/O
func NewContainer(in io.Reader, out io.Writer) (*Container, error) {
	c := &Container{}

	// STEP 1: LOAD CONFIGURATION
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)

	// STEP 2: CLOCK
	c.Clock = cfg.Clock()
	logger.Info("Clock configured", map[string]interface{}{
		"today": clock.Today(c.Clock).Format(clock.DateLayout),
		"fixed": cfg.Checkout.BusinessDate != "",
	})

	// STEP 3: LOAD CATALOG
	store, err := repository.LoadFromFiles(cfg.Catalog.ProductsFile, cfg.Catalog.PromotionsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	c.Store = store

	// STEP 4: SERVICES
	calculator := checkoutService.NewDiscountCalculator(
		cfg.Checkout.MembershipRate,
		cfg.Checkout.MembershipMaxDiscount,
	)
	c.CheckoutService = checkoutService.NewCheckoutService(c.Store, c.Clock, calculator)

	// STEP 5: HANDLER
	c.CheckoutHandler = checkoutHandler.NewConsoleHandler(c.CheckoutService, c.Store, cfg.App.Name, in, out)

	if cfg.Report.ExportPath != "" {
		c.Reporter = report.NewExcelExporter()
	}

	logger.Info("Container initialized", map[string]interface{}{
		"app":         cfg.App.Name,
		"environment": cfg.App.Environment,
	})
	return c, nil
}

// Cleanup chạy khi session kết thúc: xuất báo cáo nếu được cấu hình
func (c *Container) Cleanup() error {
	if c.Reporter == nil {
		return nil
	}
	return c.Reporter.Export(c.Config.Report.ExportPath, c.Store.Products(), c.CheckoutHandler.Receipts())
}

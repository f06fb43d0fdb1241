package config

import (
	"fmt"
	"os"

	"convenience-store/pkg/clock"
	"convenience-store/pkg/logger"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App      AppConfig
	Catalog  CatalogConfig
	Checkout CheckoutConfig
	Report   ReportConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, production
	LogLevel    string // debug, info, warn, error
}

type CatalogConfig struct {
	ProductsFile   string // name,price,quantity,promotion
	PromotionsFile string // name,buy,get,start_date,end_date
}

type CheckoutConfig struct {
	MembershipRate        decimal.Decimal // 0.3 = 30%
	MembershipMaxDiscount decimal.Decimal // 0 = không giới hạn
	BusinessDate          string          // YYYY-MM-DD, rỗng = ngày hệ thống
}

type ReportConfig struct {
	ExportPath string // rỗng = không xuất báo cáo
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "W Convenience Store"),
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "warn"),
		},
		Catalog: CatalogConfig{
			ProductsFile:   getEnv("PRODUCTS_FILE", "public/products.md"),
			PromotionsFile: getEnv("PROMOTIONS_FILE", "public/promotions.md"),
		},
		Checkout: CheckoutConfig{
			MembershipRate:        getEnvDecimal("MEMBERSHIP_RATE", decimal.NewFromFloat(0.3)),
			MembershipMaxDiscount: getEnvDecimal("MEMBERSHIP_MAX_DISCOUNT", decimal.Zero),
			BusinessDate:          getEnv("CHECKOUT_DATE", ""),
		},
		Report: ReportConfig{
			ExportPath: getEnv("REPORT_EXPORT_PATH", ""),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.App,
		validation.Field(&c.App.Name, validation.Required),
		validation.Field(&c.App.Environment, validation.In("development", "production")),
		validation.Field(&c.App.LogLevel, validation.In("trace", "debug", "info", "warn", "error", "disabled")),
	); err != nil {
		return err
	}

	if err := validation.ValidateStruct(&c.Catalog,
		validation.Field(&c.Catalog.ProductsFile, validation.Required),
		validation.Field(&c.Catalog.PromotionsFile, validation.Required),
	); err != nil {
		return err
	}

	// Rate phải trong [0, 1], cap không âm
	if c.Checkout.MembershipRate.IsNegative() || c.Checkout.MembershipRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("MEMBERSHIP_RATE must be between 0 and 1")
	}
	if c.Checkout.MembershipMaxDiscount.IsNegative() {
		return fmt.Errorf("MEMBERSHIP_MAX_DISCOUNT cannot be negative")
	}
	if c.Checkout.BusinessDate != "" {
		if _, err := clock.NewFixedDate(c.Checkout.BusinessDate); err != nil {
			return fmt.Errorf("CHECKOUT_DATE: %w", err)
		}
	}

	return nil
}

// Clock trả về clock theo CHECKOUT_DATE (nếu có), ngược lại dùng giờ hệ thống
func (c *Config) Clock() clock.Clock {
	if c.Checkout.BusinessDate == "" {
		return clock.System{}
	}
	fixed, err := clock.NewFixedDate(c.Checkout.BusinessDate)
	if err != nil {
		return clock.System{}
	}
	return fixed
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := decimal.NewFromString(valueStr)
	if err != nil {
		logger.Warn("Invalid decimal env value, using default", map[string]interface{}{
			"key":     key,
			"value":   valueStr,
			"default": defaultValue.String(),
		})
		return defaultValue
	}
	return value
}

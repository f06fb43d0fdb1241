package service

import (
	"testing"
	"time"

	catalogModel "convenience-store/internal/domains/catalog/model"
	"convenience-store/internal/domains/catalog/repository"
	"convenience-store/pkg/clock"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var testToday = clock.Fixed{At: time.Date(2026, time.October, 16, 14, 30, 0, 0, time.UTC)}

func product(name string, price int64, qty int, promo string) catalogModel.Product {
	return catalogModel.Product{
		Name:          name,
		Price:         decimal.NewFromInt(price),
		Quantity:      qty,
		PromotionName: promo,
	}
}

// newFixtureStore:
//   - Cola: batch khuyến mãi 10 (ColaPromo 1+1, đang hiệu lực) + batch thường 5
//   - Cider: batch khuyến mãi 3 (OldPromo, đã hết hạn) + batch thường 5
//   - Gum: tham chiếu promotion không tồn tại
//   - Water: chỉ có batch thường
//   - Choco-Pie: tên có dấu '-', Soda2+1
func newFixtureStore(t *testing.T) *repository.MemoryStore {
	t.Helper()

	store, err := repository.NewMemoryStore(
		[]catalogModel.Product{
			product("Cola", 1000, 10, "ColaPromo"),
			product("Cola", 1000, 5, ""),
			product("Cider", 1000, 3, "OldPromo"),
			product("Cider", 1000, 5, ""),
			product("Gum", 500, 4, "Ghost"),
			product("Water", 1000, 10, ""),
			product("Choco-Pie", 1500, 6, "Soda2+1"),
		},
		[]catalogModel.Promotion{
			{Name: "ColaPromo", Buy: 1, Get: 1, StartDate: date(2026, 1, 1), EndDate: date(2026, 12, 31)},
			{Name: "OldPromo", Buy: 1, Get: 1, StartDate: date(2025, 1, 1), EndDate: date(2025, 12, 31)},
			{Name: "Soda2+1", Buy: 2, Get: 1, StartDate: date(2026, 1, 1), EndDate: date(2026, 12, 31)},
		},
	)
	require.NoError(t, err)
	return store
}

func newFixtureService(t *testing.T) (*CheckoutService, *repository.MemoryStore) {
	t.Helper()

	store := newFixtureStore(t)
	svc := NewCheckoutService(store, testToday, nil).(*CheckoutService)
	return svc, store
}

func requireStock(t *testing.T, store repository.RepositoryInterface, name string, promotional, regular int) {
	t.Helper()

	stock, err := store.FindStock(name)
	require.NoError(t, err)
	require.Equal(t, promotional, stock.PromotionalQuantity(), "promotional stock of %s", name)
	require.Equal(t, regular, stock.RegularQuantity(), "regular stock of %s", name)
}

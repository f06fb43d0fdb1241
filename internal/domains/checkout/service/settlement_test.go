package service

import (
	"testing"

	"convenience-store/internal/domains/checkout/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prepare(t *testing.T, svc *CheckoutService, input string) []*model.LineItem {
	t.Helper()

	items, err := svc.ParsePurchase(input)
	require.NoError(t, err)
	require.NoError(t, svc.ResolvePromotions(items))
	return items
}

func TestSettle_ExactBundlesFromPromotionalBatch(t *testing.T) {
	svc, store := newFixtureService(t)

	items := prepare(t, svc, "[Cola-6]")
	require.Equal(t, 0, items[0].OverQuantity)
	require.Equal(t, 3, items[0].AdditionalQuantity)
	require.False(t, items[0].NeedsBonusConfirmation())

	receipt, err := svc.Settle(items, false)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, receipt.ID)
	assert.Equal(t, testToday.At, receipt.IssuedAt)
	assert.Equal(t, 6, receipt.TotalQuantity)
	requireDecimal(t, 6000, receipt.TotalAmount, "total")
	requireDecimal(t, 3000, receipt.EventDiscount, "event")
	requireDecimal(t, 3000, receipt.FinalAmount, "final")

	requireStock(t, store, "Cola", 4, 5)
}

func TestSettle_OverQuantityAcceptedDrainsPromotionalBatch(t *testing.T) {
	svc, store := newFixtureService(t)

	items := prepare(t, svc, "[Cola-11]")
	require.Equal(t, 1, items[0].OverQuantity)
	require.Equal(t, 5, items[0].AdditionalQuantity)

	receipt, err := svc.Settle(items, true)
	require.NoError(t, err)

	assert.Equal(t, 11, receipt.TotalQuantity)
	requireDecimal(t, 11000, receipt.TotalAmount, "total")
	requireDecimal(t, 5000, receipt.EventDiscount, "event")
	requireDecimal(t, 0, receipt.MembershipDiscount, "membership on promoted item")
	requireDecimal(t, 6000, receipt.FinalAmount, "final")

	requireStock(t, store, "Cola", 0, 4)
}

func TestSettle_OverQuantityDeclined(t *testing.T) {
	svc, store := newFixtureService(t)

	items := prepare(t, svc, "[Cola-11]")
	items[0].DeclineOverQuantity()

	receipt, err := svc.Settle(items, false)
	require.NoError(t, err)

	assert.Equal(t, 10, receipt.TotalQuantity)
	requireDecimal(t, 5000, receipt.EventDiscount, "event")
	requireStock(t, store, "Cola", 0, 5)
}

func TestSettle_BonusAcceptedAndDeclined(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		svc, store := newFixtureService(t)

		items := prepare(t, svc, "[Cola-1]")
		require.True(t, items[0].NeedsBonusConfirmation())
		items[0].AcceptBonus()

		receipt, err := svc.Settle(items, false)
		require.NoError(t, err)

		assert.Equal(t, 2, receipt.TotalQuantity)
		requireDecimal(t, 2000, receipt.TotalAmount, "total")
		requireDecimal(t, 1000, receipt.EventDiscount, "event")
		requireDecimal(t, 1000, receipt.FinalAmount, "final")
		requireStock(t, store, "Cola", 8, 5)
	})

	t.Run("declined", func(t *testing.T) {
		svc, store := newFixtureService(t)

		items := prepare(t, svc, "[Cola-1]")
		items[0].DeclineBonus()

		receipt, err := svc.Settle(items, false)
		require.NoError(t, err)

		assert.Equal(t, 1, receipt.TotalQuantity)
		requireDecimal(t, 0, receipt.EventDiscount, "event")
		assert.Empty(t, receipt.Bonuses)
		requireStock(t, store, "Cola", 9, 5)
	})
}

func TestSettle_MembershipOnPlainProduct(t *testing.T) {
	svc, store := newFixtureService(t)

	receipt, err := svc.Settle(prepare(t, svc, "[Water-3]"), true)
	require.NoError(t, err)

	requireDecimal(t, 3000, receipt.TotalAmount, "total")
	requireDecimal(t, 900, receipt.MembershipDiscount, "membership")
	requireDecimal(t, 2100, receipt.FinalAmount, "final")

	stock, err := store.FindStock("Water")
	require.NoError(t, err)
	assert.Nil(t, stock.Promotional)
	assert.Equal(t, 7, stock.RegularQuantity())
}

func TestSettle_ExpiredPromotionUsesBothBatches(t *testing.T) {
	svc, store := newFixtureService(t)

	items := prepare(t, svc, "[Cider-5]")
	require.Equal(t, 2, items[0].OverQuantity)

	receipt, err := svc.Settle(items, true)
	require.NoError(t, err)

	requireDecimal(t, 1500, receipt.MembershipDiscount, "membership")
	requireStock(t, store, "Cider", 0, 3)
}

func TestSettle_RemovedUnitsEqualSettledQuantity(t *testing.T) {
	inputs := []string{"[Cola-1]", "[Cola-6]", "[Cola-10]", "[Cola-11]", "[Cola-15]", "[Cider-8]", "[Choco-Pie-6]"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			svc, store := newFixtureService(t)

			items := prepare(t, svc, input)
			before, err := store.FindStock(items[0].Name)
			require.NoError(t, err)

			receipt, err := svc.Settle(items, false)
			require.NoError(t, err)

			after, err := store.FindStock(items[0].Name)
			require.NoError(t, err)

			assert.Equal(t, receipt.TotalQuantity, before.TotalQuantity()-after.TotalQuantity())
			assert.GreaterOrEqual(t, after.PromotionalQuantity(), 0)
			assert.GreaterOrEqual(t, after.RegularQuantity(), 0)
		})
	}
}

func TestSettle_StockPersistsAcrossTransactions(t *testing.T) {
	svc, store := newFixtureService(t)

	_, err := svc.Settle(prepare(t, svc, "[Cola-6]"), false)
	require.NoError(t, err)
	requireStock(t, store, "Cola", 4, 5)

	// Lần 2: batch khuyến mãi chỉ còn 4
	items := prepare(t, svc, "[Cola-6]")
	require.Equal(t, 2, items[0].OverQuantity)
	require.Equal(t, 2, items[0].AdditionalQuantity)

	_, err = svc.Settle(items, false)
	require.NoError(t, err)
	requireStock(t, store, "Cola", 0, 3)

	_, err = svc.ParsePurchase("[Cola-4]")
	assert.ErrorIs(t, err, model.ErrInsufficientStock)
}

func TestSettle_InvariantViolations(t *testing.T) {
	t.Run("negative stock", func(t *testing.T) {
		svc, store := newFixtureService(t)

		_, err := svc.Settle([]*model.LineItem{{Name: "Cola", Quantity: 16}}, false)
		require.ErrorIs(t, err, model.ErrInvariantViolation)
		requireStock(t, store, "Cola", 10, 5)
	})

	t.Run("no partial settlement", func(t *testing.T) {
		svc, store := newFixtureService(t)

		_, err := svc.Settle([]*model.LineItem{
			{Name: "Cola", Quantity: 2},
			{Name: "Water", Quantity: 999},
		}, false)
		require.ErrorIs(t, err, model.ErrInvariantViolation)
		requireStock(t, store, "Cola", 10, 5)
	})

	t.Run("negative final amount", func(t *testing.T) {
		svc, store := newFixtureService(t)

		_, err := svc.Settle([]*model.LineItem{
			{Name: "Cola", Quantity: 1, PromotionName: "ColaPromo", AdditionalQuantity: 5},
		}, false)
		require.ErrorIs(t, err, model.ErrInvariantViolation)
		assert.True(t, model.IsInvariantViolation(err))
		assert.False(t, model.IsUserInputError(err))
		requireStock(t, store, "Cola", 10, 5)
	})

	t.Run("unknown product", func(t *testing.T) {
		svc, _ := newFixtureService(t)

		_, err := svc.Settle([]*model.LineItem{{Name: "Pepsi", Quantity: 1}}, false)
		require.ErrorIs(t, err, model.ErrInvariantViolation)
	})
}

func TestSettle_SkipsZeroQuantityLines(t *testing.T) {
	svc, store := newFixtureService(t)

	receipt, err := svc.Settle([]*model.LineItem{
		{Name: "Cola", Quantity: 0},
		{Name: "Water", Quantity: 1},
	}, false)
	require.NoError(t, err)

	require.Len(t, receipt.Lines, 1)
	requireStock(t, store, "Cola", 10, 5)
}

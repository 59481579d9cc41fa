// internal/services/order_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/turhanbey/presetshop-backend/internal/models"
)

func newOrderFixture(t *testing.T) (*OrderService, *CatalogService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	cfg := newTestConfig(t)
	catalog := NewCatalogService(db, cfg)
	_, err := catalog.List() // seed
	require.NoError(t, err)
	return NewOrderService(db, cfg), catalog, db
}

func TestCheckoutSnapshotsCatalogValues(t *testing.T) {
	orders, _, _ := newOrderFixture(t)

	result, err := orders.Checkout(&CheckoutRequest{
		ProductID:     1,
		ProductTitle:  "Lying Client Title",
		Price:         0.01,
		BuyerName:     "Ada",
		BuyerEmail:    "ada@example.com",
		PaymentMethod: "trust_wallet",
	})
	require.NoError(t, err)

	assert.Equal(t, "Cinematic Text Presets", result.Order.ProductTitle)
	assert.Equal(t, 29.99, result.Order.Price)
	assert.Equal(t, models.OrderStatusPending, result.Order.Status)
	assert.Contains(t, result.TelegramURL, "https://t.me/turhanbeyadmin?text=")
	assert.Contains(t, result.TelegramURL, "I%20have%20paid%20for%20Cinematic%20Text%20Presets%20please%20confirm")
	assert.NotContains(t, result.TelegramURL, "+")
}

func TestCheckoutRejectsInvalidEmail(t *testing.T) {
	orders, _, _ := newOrderFixture(t)

	_, err := orders.Checkout(&CheckoutRequest{
		ProductID:     1,
		BuyerName:     "Ada",
		BuyerEmail:    "not-an-email",
		PaymentMethod: "paypal",
	})
	assert.ErrorIs(t, err, ErrValidation)

	list, err := orders.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCheckoutKeepsClientSnapshotForDeletedProduct(t *testing.T) {
	orders, catalog, _ := newOrderFixture(t)

	require.NoError(t, catalog.Delete(2))

	result, err := orders.Checkout(&CheckoutRequest{
		ProductID:     2,
		ProductTitle:  "Topaz Color Settings",
		Price:         19.99,
		BuyerName:     "Bora",
		BuyerEmail:    "bora@example.com",
		PaymentMethod: "binance",
	})
	require.NoError(t, err)
	assert.Equal(t, "Topaz Color Settings", result.Order.ProductTitle)
	assert.Equal(t, 19.99, result.Order.Price)

	// Without a usable snapshot the intent cannot be recorded.
	_, err = orders.Checkout(&CheckoutRequest{
		ProductID:     2,
		BuyerName:     "Bora",
		BuyerEmail:    "bora@example.com",
		PaymentMethod: "binance",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestOrderListNewestFirstWithStableTies(t *testing.T) {
	orders, _, db := newOrderFixture(t)

	instant := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, db.Create(&models.Order{
			BaseModel:     models.BaseModel{CreatedAt: instant},
			ProductID:     1,
			ProductTitle:  "Cinematic Text Presets",
			Price:         29.99,
			BuyerName:     name,
			BuyerEmail:    name + "@example.com",
			PaymentMethod: "paypal",
			Status:        models.OrderStatusPending,
		}).Error)
	}
	require.NoError(t, db.Create(&models.Order{
		BaseModel:     models.BaseModel{CreatedAt: instant.Add(time.Hour)},
		ProductID:     1,
		ProductTitle:  "Cinematic Text Presets",
		Price:         29.99,
		BuyerName:     "latest",
		BuyerEmail:    "latest@example.com",
		PaymentMethod: "paypal",
		Status:        models.OrderStatusPending,
	}).Error)

	list, err := orders.List()
	require.NoError(t, err)
	require.Len(t, list, 4)

	assert.Equal(t, "latest", list[0].BuyerName)
	// Same-instant orders keep arrival order.
	assert.Equal(t, "first", list[1].BuyerName)
	assert.Equal(t, "second", list[2].BuyerName)
	assert.Equal(t, "third", list[3].BuyerName)
}

func TestConfirmIsIdempotentAndTolerantOfMissingOrders(t *testing.T) {
	orders, _, _ := newOrderFixture(t)

	result, err := orders.Checkout(&CheckoutRequest{
		ProductID:     1,
		BuyerName:     "Ada",
		BuyerEmail:    "ada@example.com",
		PaymentMethod: "trust_wallet",
	})
	require.NoError(t, err)
	id := result.Order.ID

	confirmed, err := orders.Confirm(id)
	require.NoError(t, err)
	assert.True(t, confirmed)

	confirmed, err = orders.Confirm(id)
	require.NoError(t, err)
	assert.True(t, confirmed)

	order, err := orders.GetByID(id)
	require.NoError(t, err)
	assert.True(t, order.Confirmed())

	// Unknown id is a logged no-op, not an error.
	confirmed, err = orders.Confirm(99999)
	require.NoError(t, err)
	assert.False(t, confirmed)
}

func TestOrderDeleteIsIdempotent(t *testing.T) {
	orders, _, _ := newOrderFixture(t)

	result, err := orders.Checkout(&CheckoutRequest{
		ProductID:     1,
		BuyerName:     "Ada",
		BuyerEmail:    "ada@example.com",
		PaymentMethod: "paypal",
	})
	require.NoError(t, err)

	require.NoError(t, orders.Delete(result.Order.ID))
	require.NoError(t, orders.Delete(result.Order.ID))
	require.NoError(t, orders.Delete(99999))

	list, err := orders.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestHandoffLinkUsesConfiguredHandle(t *testing.T) {
	orders, _, db := newOrderFixture(t)

	require.NoError(t, db.Create(&models.PaymentSettings{
		ID:               models.SettingsRowID,
		TrustWallet:      "0xabc123",
		TelegramUsername: "preset_sales",
	}).Error)

	link := orders.HandoffLink(&models.Order{ProductTitle: "YouTube Export Bundle"})
	assert.Equal(t, "https://t.me/preset_sales?text=I%20have%20paid%20for%20YouTube%20Export%20Bundle%20please%20confirm", link)
}

func TestDashboardStats(t *testing.T) {
	orders, _, _ := newOrderFixture(t)

	for i := 0; i < 3; i++ {
		_, err := orders.Checkout(&CheckoutRequest{
			ProductID:     1,
			BuyerName:     "Ada",
			BuyerEmail:    "ada@example.com",
			PaymentMethod: "paypal",
		})
		require.NoError(t, err)
	}

	confirmed, err := orders.Confirm(1)
	require.NoError(t, err)
	require.True(t, confirmed)

	stats, err := orders.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalOrders)
	assert.Equal(t, int64(2), stats.PendingOrders)
	assert.Equal(t, int64(1), stats.ConfirmedOrders)
	assert.Equal(t, 29.99, stats.Revenue)
}

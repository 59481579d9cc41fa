// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/turhanbey/presetshop-backend/internal/config"
	"github.com/turhanbey/presetshop-backend/internal/models"
	"github.com/turhanbey/presetshop-backend/internal/utils"
)

// OrderService owns purchase records and the pending -> confirmed status
// transition.
type OrderService struct {
	db  *gorm.DB
	cfg *config.Config
}

type CheckoutRequest struct {
	ProductID     int64   `json:"product_id" validate:"required"`
	ProductTitle  string  `json:"product"`
	Price         float64 `json:"price"`
	BuyerName     string  `json:"buyer_name" validate:"required"`
	BuyerEmail    string  `json:"buyer_email" validate:"required,email"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
}

type CheckoutResult struct {
	Order *models.Order `json:"order"`
	// TelegramURL is the deep link the buyer opens to report the manual
	// payment. One-way handoff, no delivery confirmation.
	TelegramURL string `json:"telegram_url"`
}

func NewOrderService(db *gorm.DB, cfg *config.Config) *OrderService {
	return &OrderService{
		db:  db,
		cfg: cfg,
	}
}

// Checkout records a purchase intent. Title and price are snapshotted from
// the catalog when the product still exists; a product deleted between
// render and purchase keeps the client-claimed snapshot so the intent is
// still recorded.
func (s *OrderService) Checkout(req *CheckoutRequest) (*CheckoutResult, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	order := &models.Order{
		ProductID:     req.ProductID,
		ProductTitle:  req.ProductTitle,
		Price:         req.Price,
		BuyerName:     req.BuyerName,
		BuyerEmail:    req.BuyerEmail,
		PaymentMethod: req.PaymentMethod,
		Status:        models.OrderStatusPending,
	}

	var product models.Product
	if err := s.db.First(&product, req.ProductID).Error; err == nil {
		order.ProductTitle = product.Title
		order.Price = product.Price
	}

	if order.ProductTitle == "" || order.Price <= 0 {
		return nil, fmt.Errorf("%w: unknown product and no usable snapshot", ErrValidation)
	}

	if err := s.db.Create(order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return &CheckoutResult{
		Order:       order,
		TelegramURL: s.HandoffLink(order),
	}, nil
}

// List returns all orders newest first. Orders created at the same instant
// keep their arrival order.
func (s *OrderService) List() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Order("created_at DESC, id ASC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

// ListPage is the paginated admin view over the same ordering, with an
// optional status filter.
func (s *OrderService) ListPage(params utils.PaginationParams) ([]models.Order, int64, error) {
	query := s.db.Model(&models.Order{})

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query = query.Order("created_at DESC, id ASC")
	query = utils.ApplyPagination(query, params)

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, total, nil
}

// Confirm marks the order confirmed. A missing id is a logged, non-fatal
// no-op and confirming an already confirmed order changes nothing; the
// returned bool reports whether the order exists.
func (s *OrderService) Confirm(id int64) (bool, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithField("order_id", id).Warn("Confirm requested for unknown order")
			return false, nil
		}
		return false, fmt.Errorf("database error: %w", err)
	}

	if order.Confirmed() {
		return true, nil
	}

	if err := s.db.Model(&order).Update("status", models.OrderStatusConfirmed).Error; err != nil {
		return false, fmt.Errorf("failed to confirm order: %w", err)
	}

	return true, nil
}

// Delete removes the order with the given id, from either status. Deleting
// an absent id is a no-op.
func (s *OrderService) Delete(id int64) error {
	if err := s.db.Delete(&models.Order{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

func (s *OrderService) GetByID(id int64) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}

// ProductForOrder resolves the catalog product an order was placed against.
// Returns ErrNotFound when the product has been deleted since purchase.
func (s *OrderService) ProductForOrder(order *models.Order) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, order.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, order.ProductID)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

// HandoffLink builds the Telegram deep link embedding the buyer's claimed
// purchase as free text.
func (s *OrderService) HandoffLink(order *models.Order) string {
	handle := s.cfg.Checkout.DefaultTelegram

	var settings models.PaymentSettings
	if err := s.db.First(&settings, models.SettingsRowID).Error; err == nil && settings.TelegramUsername != "" {
		handle = settings.TelegramUsername
	}

	text := fmt.Sprintf("I have paid for %s please confirm", order.ProductTitle)
	encoded := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")

	return fmt.Sprintf("https://t.me/%s?text=%s", handle, encoded)
}

// DashboardStats is the admin panel summary.
type DashboardStats struct {
	TotalProducts   int64   `json:"total_products"`
	TotalOrders     int64   `json:"total_orders"`
	PendingOrders   int64   `json:"pending_orders"`
	ConfirmedOrders int64   `json:"confirmed_orders"`
	Revenue         float64 `json:"revenue"`
}

// Stats aggregates order counts and the revenue of confirmed orders.
func (s *OrderService) Stats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	s.db.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusPending).Count(&stats.PendingOrders)
	s.db.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusConfirmed).Count(&stats.ConfirmedOrders)
	s.db.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusConfirmed).
		Select("COALESCE(SUM(price), 0)").Scan(&stats.Revenue)

	return stats, nil
}

// internal/services/settings_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/turhanbey/presetshop-backend/internal/models"
	"github.com/turhanbey/presetshop-backend/internal/utils"
)

// SettingsService owns the singleton payment settings record.
type SettingsService struct {
	db *gorm.DB
}

type SaveSettingsRequest struct {
	TrustWallet      string `json:"trust_wallet"`
	PaypalEmail      string `json:"paypal_email" validate:"omitempty,email"`
	BinanceAddress   string `json:"binance_address"`
	TelegramUsername string `json:"telegram_username" validate:"omitempty,telegram_handle"`
}

// PaymentMethod is the public checkout view of one configured destination.
type PaymentMethod struct {
	Name    string `json:"name"`
	Key     string `json:"key"`
	Address string `json:"address"`
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{
		db: db,
	}
}

// Get returns the stored record, or an all-empty default when none has been
// saved yet.
func (s *SettingsService) Get() (*models.PaymentSettings, error) {
	var settings models.PaymentSettings
	if err := s.db.First(&settings, models.SettingsRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.PaymentSettings{ID: models.SettingsRowID}, nil
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &settings, nil
}

// Save overwrites the record wholesale. It fails when all three payment
// destinations are empty; the contact handle alone is not enough. On
// failure the previously stored record is left untouched.
func (s *SettingsService) Save(req *SaveSettingsRequest) (*models.PaymentSettings, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	settings := &models.PaymentSettings{
		ID:               models.SettingsRowID,
		TrustWallet:      req.TrustWallet,
		PaypalEmail:      req.PaypalEmail,
		BinanceAddress:   req.BinanceAddress,
		TelegramUsername: req.TelegramUsername,
	}

	if !settings.HasDestination() {
		return nil, fmt.Errorf("%w: at least one payment destination is required", ErrValidation)
	}

	if err := s.db.Save(settings).Error; err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return settings, nil
}

// ConfiguredMethods lists the destinations shown at checkout, addresses
// masked for display.
func (s *SettingsService) ConfiguredMethods() ([]PaymentMethod, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}

	candidates := []PaymentMethod{
		{Name: "Trust Wallet", Key: "trust_wallet", Address: settings.TrustWallet},
		{Name: "PayPal", Key: "paypal_email", Address: settings.PaypalEmail},
		{Name: "Binance", Key: "binance_address", Address: settings.BinanceAddress},
	}

	methods := make([]PaymentMethod, 0, len(candidates))
	for _, m := range candidates {
		if m.Address == "" {
			continue
		}
		m.Address = MaskAddress(m.Address)
		methods = append(methods, m)
	}

	return methods, nil
}

// MaskAddress shortens a payment address for display: "abcdef...wxyz".
// Short addresses are returned as is.
func MaskAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}

// internal/models/settings.go
package models

import "time"

// SettingsRowID is the fixed primary key of the singleton payment settings
// record. Saves overwrite this row wholesale.
const SettingsRowID int64 = 1

type PaymentSettings struct {
	ID               int64     `json:"-" gorm:"primaryKey"`
	TrustWallet      string    `json:"trust_wallet" gorm:"size:255"`
	PaypalEmail      string    `json:"paypal_email" gorm:"size:255"`
	BinanceAddress   string    `json:"binance_address" gorm:"size:255"`
	TelegramUsername string    `json:"telegram_username" gorm:"size:100"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// HasDestination reports whether at least one payment destination is
// configured. The contact handle does not count.
func (s *PaymentSettings) HasDestination() bool {
	return s.TrustWallet != "" || s.PaypalEmail != "" || s.BinanceAddress != ""
}

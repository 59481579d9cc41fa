// internal/services/settings_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaultWhenUnsaved(t *testing.T) {
	svc := NewSettingsService(newTestDB(t))

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Empty(t, settings.TrustWallet)
	assert.Empty(t, settings.PaypalEmail)
	assert.Empty(t, settings.BinanceAddress)
	assert.Empty(t, settings.TelegramUsername)
	assert.False(t, settings.HasDestination())
}

func TestSaveRequiresAPaymentDestination(t *testing.T) {
	svc := NewSettingsService(newTestDB(t))

	_, err := svc.Save(&SaveSettingsRequest{})
	assert.ErrorIs(t, err, ErrValidation)

	// The contact handle alone does not count as a destination.
	_, err = svc.Save(&SaveSettingsRequest{TelegramUsername: "preset_sales"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSaveFailureLeavesStoredRecordUntouched(t *testing.T) {
	svc := NewSettingsService(newTestDB(t))

	_, err := svc.Save(&SaveSettingsRequest{TrustWallet: "0x1234567890abcdef"})
	require.NoError(t, err)

	_, err = svc.Save(&SaveSettingsRequest{})
	require.ErrorIs(t, err, ErrValidation)

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "0x1234567890abcdef", settings.TrustWallet)
}

func TestSaveOverwritesWholesale(t *testing.T) {
	svc := NewSettingsService(newTestDB(t))

	_, err := svc.Save(&SaveSettingsRequest{
		TrustWallet: "0x1234567890abcdef",
		PaypalEmail: "seller@example.com",
	})
	require.NoError(t, err)

	_, err = svc.Save(&SaveSettingsRequest{BinanceAddress: "bnb1qxyzabcdef123456"})
	require.NoError(t, err)

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Empty(t, settings.TrustWallet)
	assert.Empty(t, settings.PaypalEmail)
	assert.Equal(t, "bnb1qxyzabcdef123456", settings.BinanceAddress)
}

func TestSaveValidatesFieldFormats(t *testing.T) {
	svc := NewSettingsService(newTestDB(t))

	_, err := svc.Save(&SaveSettingsRequest{
		TrustWallet: "0x1234567890abcdef",
		PaypalEmail: "not-an-email",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Save(&SaveSettingsRequest{
		TrustWallet:      "0x1234567890abcdef",
		TelegramUsername: "a b",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestConfiguredMethodsMasksAddresses(t *testing.T) {
	svc := NewSettingsService(newTestDB(t))

	_, err := svc.Save(&SaveSettingsRequest{
		TrustWallet: "0x1234567890abcdef",
		PaypalEmail: "pay@me.co",
	})
	require.NoError(t, err)

	methods, err := svc.ConfiguredMethods()
	require.NoError(t, err)
	require.Len(t, methods, 2)

	assert.Equal(t, "trust_wallet", methods[0].Key)
	assert.Equal(t, "0x1234...cdef", methods[0].Address)

	// Short addresses pass through unmasked.
	assert.Equal(t, "paypal_email", methods[1].Key)
	assert.Equal(t, "pay@me.co", methods[1].Address)
}

func TestMaskAddress(t *testing.T) {
	assert.Equal(t, "short", MaskAddress("short"))
	assert.Equal(t, "exactly10!", MaskAddress("exactly10!"))
	assert.Equal(t, "0x1234...cdef", MaskAddress("0x1234567890abcdef"))
}

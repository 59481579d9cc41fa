// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired      = "auth.required"
	KeyAuthInvalidToken  = "auth.invalid_token"
	KeyAuthTokenExpired  = "auth.token_expired"
	KeyAuthInvalidPIN    = "auth.invalid_pin"
	KeyAuthLoginSuccess  = "auth.login_success"
	KeyAuthLogoutSuccess = "auth.logout_success"

	// Products
	KeyProductCreated  = "product.created"
	KeyProductDeleted  = "product.deleted"
	KeyProductNotFound = "product.not_found"

	// Orders
	KeyOrderCreated        = "order.created"
	KeyOrderConfirmed      = "order.confirmed"
	KeyOrderDeleted        = "order.deleted"
	KeyOrderNotFound       = "order.not_found"
	KeyOrderNotConfirmed   = "order.not_confirmed"
	KeyOrderNoDownload     = "order.no_download"
	KeyOrderCheckoutThanks = "order.checkout_thanks"

	// Settings
	KeySettingsSaved      = "settings.saved"
	KeySettingsNeedMethod = "settings.need_method"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"
)

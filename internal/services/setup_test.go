// internal/services/setup_test.go
package services

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/turhanbey/presetshop-backend/internal/config"
	"github.com/turhanbey/presetshop-backend/internal/models"
)

// newTestDB opens an isolated in-memory database migrated with the full
// schema. The shared-cache DSN keeps the database alive across the pooled
// connections gorm opens.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Order{},
		&models.PaymentSettings{},
		&models.AdminSession{},
		&models.AuditLog{},
	))

	return db
}

// newTestConfig points the seed path at a missing file so the built-in
// default catalog is used.
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey: "test-secret",
			TokenTTL:  1,
		},
		Admin: config.AdminConfig{
			PIN: "41251250",
		},
		Catalog: config.CatalogConfig{
			SeedPath: filepath.Join(t.TempDir(), "missing.json"),
		},
		Checkout: config.CheckoutConfig{
			DefaultTelegram: "turhanbeyadmin",
		},
		AWS: config.AWSConfig{
			DownloadTTL: 60,
		},
	}
}

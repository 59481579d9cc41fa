// internal/services/seed.go
package services

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/turhanbey/presetshop-backend/internal/models"
)

type seedProduct struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	DownloadKey string  `json:"download_key,omitempty"`
}

// ensureSeeded populates an empty catalog with the seed products. The read
// failure path falls back to the hardcoded defaults without surfacing an
// error to the caller.
func (s *CatalogService) ensureSeeded() error {
	var count int64
	if err := s.db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	products := s.loadSeedCatalog()
	if err := s.db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	logrus.WithField("count", len(products)).Info("Seeded empty catalog")
	return nil
}

func (s *CatalogService) loadSeedCatalog() []models.Product {
	data, err := os.ReadFile(s.cfg.Catalog.SeedPath)
	if err != nil {
		logrus.WithError(err).WithField("path", s.cfg.Catalog.SeedPath).
			Warn("Seed catalog unreadable, using built-in defaults")
		return defaultCatalog()
	}

	var entries []seedProduct
	if err := json.Unmarshal(data, &entries); err != nil || len(entries) == 0 {
		logrus.WithError(err).WithField("path", s.cfg.Catalog.SeedPath).
			Warn("Seed catalog unparseable, using built-in defaults")
		return defaultCatalog()
	}

	products := make([]models.Product, 0, len(entries))
	for _, e := range entries {
		products = append(products, models.Product{
			Title:       e.Title,
			Description: e.Description,
			Price:       e.Price,
			Category:    e.Category,
			DownloadKey: e.DownloadKey,
		})
	}
	return products
}

func defaultCatalog() []models.Product {
	return []models.Product{
		{
			Title:       "Cinematic Text Presets",
			Description: "20 professional text animation presets for After Effects.",
			Price:       29.99,
			Category:    "presets",
		},
		{
			Title:       "Topaz Color Settings",
			Description: "15 optimized Topaz color grading profiles.",
			Price:       19.99,
			Category:    "topaz",
		},
		{
			Title:       "YouTube Export Bundle",
			Description: "Complete export settings for optimal YouTube quality.",
			Price:       14.99,
			Category:    "export",
		},
		{
			Title:       "Advanced Glitch Effects",
			Description: "10 cinematic glitch effect presets for After Effects.",
			Price:       24.99,
			Category:    "presets",
		},
		{
			Title:       "Topaz AI Upscaling Config",
			Description: "Professional settings for AI-powered video upscaling.",
			Price:       17.99,
			Category:    "topaz",
		},
		{
			Title:       "Multi-Platform Export Pack",
			Description: "Settings for YouTube, Vimeo, TikTok, Instagram, and more.",
			Price:       22.99,
			Category:    "export",
		},
	}
}

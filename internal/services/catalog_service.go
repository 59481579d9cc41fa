// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/turhanbey/presetshop-backend/internal/config"
	"github.com/turhanbey/presetshop-backend/internal/models"
	"github.com/turhanbey/presetshop-backend/internal/utils"
)

// CatalogService owns the product catalog. Products are immutable: there is
// no update operation, an edit is a delete followed by a recreate.
type CatalogService struct {
	db  *gorm.DB
	cfg *config.Config
}

type CreateProductRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required"`
	DownloadKey string  `json:"download_key,omitempty"`
}

func NewCatalogService(db *gorm.DB, cfg *config.Config) *CatalogService {
	return &CatalogService{
		db:  db,
		cfg: cfg,
	}
}

// List returns the full catalog in insertion order, seeding the default
// catalog first when the store is empty.
func (s *CatalogService) List() ([]models.Product, error) {
	if err := s.ensureSeeded(); err != nil {
		return nil, err
	}

	var products []models.Product
	if err := s.db.Order("id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, nil
}

// FilterByCategory returns the products tagged with category. The "all"
// sentinel (or an empty category) returns the unfiltered catalog.
func (s *CatalogService) FilterByCategory(category string) ([]models.Product, error) {
	if category == "" || category == "all" {
		return s.List()
	}

	if err := s.ensureSeeded(); err != nil {
		return nil, err
	}

	var products []models.Product
	if err := s.db.Where("category = ?", category).Order("id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, nil
}

func (s *CatalogService) Create(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	product := &models.Product{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		DownloadKey: req.DownloadKey,
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// Delete removes the product with the given id. Deleting an absent id is a
// no-op, not an error.
func (s *CatalogService) Delete(id int64) error {
	if err := s.db.Delete(&models.Product{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func (s *CatalogService) GetByID(id int64) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *CatalogService) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

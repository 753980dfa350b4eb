// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artisanhub/marketplace-backend/internal/domain"
	"github.com/artisanhub/marketplace-backend/internal/models"
	"github.com/artisanhub/marketplace-backend/internal/utils"
)

const similarProductsLimit = 8

type ProductService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required,max=100"`
	ArtisanName string  `json:"artisan_name" validate:"required,max=100"`
	ImageURL    string  `json:"image_url,omitempty"`
	Description string  `json:"description,omitempty"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// ListProducts returns every product newest-first. A non-empty category
// filters with a case-insensitive substring match, so "pottery" finds
// "Pottery" and "Pottery & Ceramics" alike.
func (s *ProductService) ListProducts(category string) ([]models.Product, error) {
	query := s.db.Model(&models.Product{})
	if category != "" {
		query = query.Where("category ILIKE ?", "%"+category+"%")
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *ProductService) GetProduct(id string) (*models.Product, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		// Checked before the lookup so a malformed id never reaches the
		// database as an invalid uuid cast.
		return nil, fmt.Errorf("%w: product not found", domain.ErrNotFound)
	}

	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

// ListCategories groups products by category, sorted by name ascending.
func (s *ProductService) ListCategories() ([]models.CategoryCount, error) {
	var categories []models.CategoryCount
	err := s.db.Model(&models.Product{}).
		Select("category AS name, COUNT(*) AS count").
		Group("category").
		Order("category ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate categories: %w", err)
	}
	return categories, nil
}

// ListSimilar returns up to eight other products in the same category,
// newest-first, display fields only.
func (s *ProductService) ListSimilar(id string) ([]models.ProductSummary, error) {
	source, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	var similar []models.ProductSummary
	err = s.db.Model(&models.Product{}).
		Select("id, name, price, category, artisan_name, image_url, description").
		Where("category = ? AND id <> ?", source.Category, source.ID).
		Order("created_at DESC").
		Limit(similarProductsLimit).
		Find(&similar).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list similar products: %w", err)
	}
	return similar, nil
}

func (s *ProductService) CreateProduct(sellerID uuid.UUID, req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadRequest, err)
	}

	var seller models.Account
	if err := s.db.First(&seller, sellerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: seller account not found", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !seller.IsSeller() {
		return nil, fmt.Errorf("%w: only sellers can add products", domain.ErrForbidden)
	}

	product := &models.Product{
		SellerID:    sellerID,
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		ArtisanName: req.ArtisanName,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// resolveProducts fetches the current records for a set of references
// and returns them keyed by id. References that no longer resolve are
// simply absent from the map; callers drop them from their views.
func resolveProducts(db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]models.Product, error) {
	resolved := make(map[uuid.UUID]models.Product, len(ids))
	if len(ids) == 0 {
		return resolved, nil
	}

	var products []models.Product
	if err := db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve products: %w", err)
	}
	for _, p := range products {
		resolved[p.ID] = p
	}
	return resolved, nil
}

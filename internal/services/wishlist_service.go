// internal/services/wishlist_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artisanhub/marketplace-backend/internal/domain"
	"github.com/artisanhub/marketplace-backend/internal/models"
)

type WishlistService struct {
	db *gorm.DB
}

func NewWishlistService(db *gorm.DB) *WishlistService {
	return &WishlistService{db: db}
}

// Add appends a product reference. A product already on the list is a
// Conflict; the (wishlist_id, product_id) unique index backs the check.
func (s *WishlistService) Add(accountID uuid.UUID, productID string) (*models.WishlistView, error) {
	pid, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid product id", domain.ErrBadRequest)
	}

	var product models.Product
	if err := s.db.First(&product, pid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var wishlist models.Wishlist
	if err := s.db.Where(models.Wishlist{AccountID: accountID}).FirstOrCreate(&wishlist).Error; err != nil {
		return nil, fmt.Errorf("failed to open wishlist: %w", err)
	}

	item := models.WishlistItem{WishlistID: wishlist.ID, ProductID: pid}
	if err := s.db.Create(&item).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: product already in wishlist", domain.ErrConflict)
		}
		return nil, fmt.Errorf("failed to add wishlist entry: %w", err)
	}

	return s.Fetch(accountID)
}

// Remove deletes the entry if present; an absent entry is a no-op.
func (s *WishlistService) Remove(accountID uuid.UUID, productID string) (*models.WishlistView, error) {
	pid, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid product id", domain.ErrBadRequest)
	}

	var wishlist models.Wishlist
	if err := s.db.Where("account_id = ?", accountID).First(&wishlist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return emptyWishlistView(accountID), nil
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Where("wishlist_id = ? AND product_id = ?", wishlist.ID, pid).
		Delete(&models.WishlistItem{}).Error; err != nil {
		return nil, fmt.Errorf("failed to remove wishlist entry: %w", err)
	}

	return s.Fetch(accountID)
}

// Fetch resolves every entry. No wishlist yields an empty view.
func (s *WishlistService) Fetch(accountID uuid.UUID) (*models.WishlistView, error) {
	var wishlist models.Wishlist
	if err := s.db.Where("account_id = ?", accountID).First(&wishlist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return emptyWishlistView(accountID), nil
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var items []models.WishlistItem
	if err := s.db.Where("wishlist_id = ?", wishlist.ID).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load wishlist entries: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	resolved, err := resolveProducts(s.db, ids)
	if err != nil {
		return nil, err
	}

	view := emptyWishlistView(accountID)
	for _, item := range items {
		if product, ok := resolved[item.ProductID]; ok {
			view.Items = append(view.Items, product)
		}
	}
	return view, nil
}

func emptyWishlistView(accountID uuid.UUID) *models.WishlistView {
	return &models.WishlistView{AccountID: accountID, Items: []models.Product{}}
}

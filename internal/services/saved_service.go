// internal/services/saved_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/artisanhub/marketplace-backend/internal/database"
	"github.com/artisanhub/marketplace-backend/internal/domain"
	"github.com/artisanhub/marketplace-backend/internal/models"
)

// SavedService moves lines between the cart and the saved-for-later
// list. Each move touches two documents, so both writes run inside one
// transaction; a crash can never strand the line in neither place.
type SavedService struct {
	db *gorm.DB
}

type SavedMoveResult struct {
	Cart  *models.CartView      `json:"cart"`
	Saved *models.SavedListView `json:"saved"`
}

func NewSavedService(db *gorm.DB) *SavedService {
	return &SavedService{db: db}
}

// Save moves an existing cart line to the saved list, carrying its
// quantity over verbatim.
func (s *SavedService) Save(accountID uuid.UUID, productID string) (*SavedMoveResult, error) {
	pid, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid product id", domain.ErrBadRequest)
	}

	err = database.WithTransaction(s.db, func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("account_id = ?", accountID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: cart not found", domain.ErrNotFound)
			}
			return fmt.Errorf("database error: %w", err)
		}

		var line models.CartItem
		if err := tx.Where("cart_id = ? AND product_id = ?", cart.ID, pid).First(&line).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: product not in cart", domain.ErrNotFound)
			}
			return fmt.Errorf("database error: %w", err)
		}

		if err := tx.Delete(&line).Error; err != nil {
			return fmt.Errorf("failed to remove cart line: %w", err)
		}

		var saved models.SavedList
		if err := tx.Where(models.SavedList{AccountID: accountID}).FirstOrCreate(&saved).Error; err != nil {
			return fmt.Errorf("failed to open saved list: %w", err)
		}

		entry := models.SavedItem{SavedListID: saved.ID, ProductID: pid, Quantity: line.Quantity}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "saved_list_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("saved_items.quantity + EXCLUDED.quantity"),
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to add saved entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.views(accountID)
}

// MoveToCart is the symmetric inverse: the saved entry is removed and
// merged into the cart through the same upsert-increment the cart uses,
// so a product never ends up on two cart lines.
func (s *SavedService) MoveToCart(accountID uuid.UUID, productID string) (*SavedMoveResult, error) {
	pid, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid product id", domain.ErrBadRequest)
	}

	err = database.WithTransaction(s.db, func(tx *gorm.DB) error {
		var saved models.SavedList
		if err := tx.Where("account_id = ?", accountID).First(&saved).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: saved list not found", domain.ErrNotFound)
			}
			return fmt.Errorf("database error: %w", err)
		}

		var entry models.SavedItem
		if err := tx.Where("saved_list_id = ? AND product_id = ?", saved.ID, pid).First(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: product not in saved list", domain.ErrNotFound)
			}
			return fmt.Errorf("database error: %w", err)
		}

		if err := tx.Delete(&entry).Error; err != nil {
			return fmt.Errorf("failed to remove saved entry: %w", err)
		}

		var cart models.Cart
		if err := tx.Where(models.Cart{AccountID: accountID}).FirstOrCreate(&cart).Error; err != nil {
			return fmt.Errorf("failed to open cart: %w", err)
		}

		line := models.CartItem{CartID: cart.ID, ProductID: pid, Quantity: entry.Quantity}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).Create(&line).Error; err != nil {
			return fmt.Errorf("failed to add cart line: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.views(accountID)
}

// Fetch resolves every saved entry. No list yields an empty view.
func (s *SavedService) Fetch(accountID uuid.UUID) (*models.SavedListView, error) {
	var saved models.SavedList
	if err := s.db.Where("account_id = ?", accountID).First(&saved).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return emptySavedView(accountID), nil
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var items []models.SavedItem
	if err := s.db.Where("saved_list_id = ?", saved.ID).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load saved entries: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	resolved, err := resolveProducts(s.db, ids)
	if err != nil {
		return nil, err
	}

	refs := make([]lineRef, 0, len(items))
	for _, item := range items {
		refs = append(refs, lineRef{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return &models.SavedListView{AccountID: accountID, Items: resolveLines(refs, resolved)}, nil
}

func (s *SavedService) views(accountID uuid.UUID) (*SavedMoveResult, error) {
	cartView, err := NewCartService(s.db).Fetch(accountID)
	if err != nil {
		return nil, err
	}
	savedView, err := s.Fetch(accountID)
	if err != nil {
		return nil, err
	}
	return &SavedMoveResult{Cart: cartView, Saved: savedView}, nil
}

func emptySavedView(accountID uuid.UUID) *models.SavedListView {
	return &models.SavedListView{AccountID: accountID, Items: []models.ResolvedLine{}}
}

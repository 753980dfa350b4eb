// internal/services/cart_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/artisanhub/marketplace-backend/internal/domain"
	"github.com/artisanhub/marketplace-backend/internal/models"
)

type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// Add puts a product into the account's cart, creating the cart on
// first use. The increment is a single upsert on the (cart_id,
// product_id) unique index, so concurrent adds for the same line never
// lose updates.
func (s *CartService) Add(accountID uuid.UUID, productID string, quantity int) (*models.CartView, error) {
	pid, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid product id", domain.ErrBadRequest)
	}
	if quantity < 1 {
		quantity = 1
	}

	var product models.Product
	if err := s.db.First(&product, pid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	cart, err := s.getOrCreateCart(s.db, accountID)
	if err != nil {
		return nil, err
	}

	item := models.CartItem{CartID: cart.ID, ProductID: pid, Quantity: quantity}
	err = s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
			"updated_at": gorm.Expr("NOW()"),
		}),
	}).Create(&item).Error
	if err != nil {
		return nil, fmt.Errorf("failed to add cart line: %w", err)
	}

	return s.Fetch(accountID)
}

// UpdateQuantity bumps a line by one in the given direction. Decrement
// floors at one: removing a line is an explicit operation, never a side
// effect of counting down.
func (s *CartService) UpdateQuantity(accountID uuid.UUID, productID string, direction models.QuantityDirection) (*models.CartView, error) {
	pid, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid product id", domain.ErrBadRequest)
	}

	cart, err := s.getCart(s.db, accountID)
	if err != nil {
		return nil, err
	}

	var expr string
	switch direction {
	case models.QuantityInc:
		expr = "quantity + 1"
	case models.QuantityDec:
		expr = "GREATEST(quantity - 1, 1)"
	default:
		return nil, fmt.Errorf("%w: direction must be inc or dec", domain.ErrBadRequest)
	}

	result := s.db.Model(&models.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cart.ID, pid).
		Update("quantity", gorm.Expr(expr))
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update quantity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: product not in cart", domain.ErrNotFound)
	}

	return s.Fetch(accountID)
}

// Remove deletes the matching line. An absent cart or line is not an
// error.
func (s *CartService) Remove(accountID uuid.UUID, productID string) (*models.CartView, error) {
	pid, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid product id", domain.ErrBadRequest)
	}

	cart, err := s.getCart(s.db, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return emptyCartView(accountID), nil
		}
		return nil, err
	}

	if err := s.db.Where("cart_id = ? AND product_id = ?", cart.ID, pid).
		Delete(&models.CartItem{}).Error; err != nil {
		return nil, fmt.Errorf("failed to remove cart line: %w", err)
	}

	return s.Fetch(accountID)
}

// Clear empties every line. An absent cart is not an error.
func (s *CartService) Clear(accountID uuid.UUID) (*models.CartView, error) {
	cart, err := s.getCart(s.db, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return emptyCartView(accountID), nil
		}
		return nil, err
	}

	if err := s.db.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	return emptyCartView(accountID), nil
}

// Fetch returns the cart with every line resolved to its current
// product record. No cart yields an empty view, never NotFound.
func (s *CartService) Fetch(accountID uuid.UUID) (*models.CartView, error) {
	cart, err := s.getCart(s.db, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return emptyCartView(accountID), nil
		}
		return nil, err
	}

	var items []models.CartItem
	if err := s.db.Where("cart_id = ?", cart.ID).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load cart lines: %w", err)
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
	return &models.CartView{AccountID: accountID, Items: resolveLines(refs, resolved)}, nil
}

func (s *CartService) getCart(db *gorm.DB, accountID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	if err := db.Where("account_id = ?", accountID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cart not found", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &cart, nil
}

func (s *CartService) getOrCreateCart(db *gorm.DB, accountID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := db.Where(models.Cart{AccountID: accountID}).FirstOrCreate(&cart).Error
	if err != nil {
		return nil, fmt.Errorf("failed to open cart: %w", err)
	}
	return &cart, nil
}

func emptyCartView(accountID uuid.UUID) *models.CartView {
	return &models.CartView{AccountID: accountID, Items: []models.ResolvedLine{}}
}

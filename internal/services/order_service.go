// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artisanhub/marketplace-backend/internal/database"
	"github.com/artisanhub/marketplace-backend/internal/domain"
	"github.com/artisanhub/marketplace-backend/internal/models"
)

// totalTolerance is the maximum allowed drift between the total the
// client displays and the total recomputed from current prices.
const totalTolerance = 0.01

type OrderService struct {
	db *gorm.DB
}

type CheckoutRequest struct {
	// TotalAmount is what the client showed the shopper. Zero means the
	// client defers to the server-computed total.
	TotalAmount float64 `json:"total_amount"`
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// Checkout snapshots the cart into an immutable order and clears the
// cart, both inside one transaction. The total is recomputed from
// current product prices; a client total that disagrees beyond a cent
// is rejected rather than trusted.
func (s *OrderService) Checkout(accountID uuid.UUID, req *CheckoutRequest) (*models.Order, error) {
	var order *models.Order

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("account_id = ?", accountID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: cart is empty", domain.ErrBadRequest)
			}
			return fmt.Errorf("database error: %w", err)
		}

		var lines []models.CartItem
		if err := tx.Where("cart_id = ?", cart.ID).Order("created_at ASC").Find(&lines).Error; err != nil {
			return fmt.Errorf("failed to load cart lines: %w", err)
		}
		if len(lines) == 0 {
			return fmt.Errorf("%w: cart is empty", domain.ErrBadRequest)
		}

		ids := make([]uuid.UUID, 0, len(lines))
		for _, line := range lines {
			ids = append(ids, line.ProductID)
		}
		resolved, err := resolveProducts(tx, ids)
		if err != nil {
			return err
		}

		total := 0.0
		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			product, ok := resolved[line.ProductID]
			if !ok {
				// Stale reference: the product vanished between add and
				// checkout. Skip it the same way cart views do.
				continue
			}
			total += product.Price * float64(line.Quantity)
			items = append(items, models.OrderItem{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
			})
		}
		if len(items) == 0 {
			return fmt.Errorf("%w: cart is empty", domain.ErrBadRequest)
		}
		total = math.Round(total*100) / 100

		if req.TotalAmount != 0 && math.Abs(req.TotalAmount-total) > totalTolerance {
			return fmt.Errorf("%w: total amount mismatch", domain.ErrBadRequest)
		}

		order = &models.Order{
			AccountID:   accountID,
			TotalAmount: total,
			Status:      models.OrderStatusPlaced,
			Items:       items,
		}
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrders returns the account's order history newest-first with
// every item resolved.
func (s *OrderService) ListOrders(accountID uuid.UUID) ([]models.OrderView, error) {
	var orders []models.Order
	err := s.db.Preload("Items").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	ids := make([]uuid.UUID, 0)
	for _, order := range orders {
		for _, item := range order.Items {
			ids = append(ids, item.ProductID)
		}
	}
	resolved, err := resolveProducts(s.db, ids)
	if err != nil {
		return nil, err
	}

	views := make([]models.OrderView, 0, len(orders))
	for _, order := range orders {
		refs := make([]lineRef, 0, len(order.Items))
		for _, item := range order.Items {
			refs = append(refs, lineRef{ProductID: item.ProductID, Quantity: item.Quantity})
		}
		views = append(views, models.OrderView{
			ID:          order.ID,
			AccountID:   order.AccountID,
			TotalAmount: order.TotalAmount,
			Status:      order.Status,
			CreatedAt:   order.CreatedAt,
			Items:       resolveLines(refs, resolved),
		})
	}
	return views, nil
}

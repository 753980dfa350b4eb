// internal/models/cart.go
package models

import (
	"github.com/google/uuid"
)

// Cart holds one shopper's open cart. One cart per account, created
// lazily on first write.
type Cart struct {
	BaseModel
	AccountID uuid.UUID  `json:"account_id" gorm:"type:uuid;not null;uniqueIndex"`
	Items     []CartItem `json:"items,omitempty" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// CartItem is a single (product, quantity) line. The
// (cart_id, product_id) pair is unique, so a product can never occupy
// two lines; increments go through an atomic upsert on that constraint.
type CartItem struct {
	LineModel
	CartID    uuid.UUID `json:"cart_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_cart_product"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_cart_product"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`
}

// ResolvedLine pairs a stored line with the current product record its
// reference points to.
type ResolvedLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartView is the API shape of a cart: every line resolved, lines whose
// product no longer exists omitted.
type CartView struct {
	AccountID uuid.UUID      `json:"account_id"`
	Items     []ResolvedLine `json:"items"`
}

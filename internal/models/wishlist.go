// internal/models/wishlist.go
package models

import (
	"github.com/google/uuid"
)

// Wishlist is a per-account set of product references.
type Wishlist struct {
	BaseModel
	AccountID uuid.UUID      `json:"account_id" gorm:"type:uuid;not null;uniqueIndex"`
	Items     []WishlistItem `json:"items,omitempty" gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE"`
}

type WishlistItem struct {
	LineModel
	WishlistID uuid.UUID `json:"wishlist_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_wishlist_product"`
	ProductID  uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_product"`
}

type WishlistView struct {
	AccountID uuid.UUID `json:"account_id"`
	Items     []Product `json:"items"`
}

// internal/models/saved.go
package models

import (
	"github.com/google/uuid"
)

// SavedList holds lines parked outside the cart. Entries keep the
// quantity they carried in the cart so a move back restores it.
type SavedList struct {
	BaseModel
	AccountID uuid.UUID   `json:"account_id" gorm:"type:uuid;not null;uniqueIndex"`
	Items     []SavedItem `json:"items,omitempty" gorm:"foreignKey:SavedListID;constraint:OnDelete:CASCADE"`
}

type SavedItem struct {
	LineModel
	SavedListID uuid.UUID `json:"saved_list_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_saved_product"`
	ProductID   uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_saved_product"`
	Quantity    int       `json:"quantity" gorm:"not null;default:1"`
}

type SavedListView struct {
	AccountID uuid.UUID      `json:"account_id"`
	Items     []ResolvedLine `json:"items"`
}

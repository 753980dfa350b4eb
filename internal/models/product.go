// internal/models/product.go
package models

import (
	"github.com/google/uuid"
)

type Product struct {
	BaseModel
	SellerID    uuid.UUID `json:"seller_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Price       float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Category    string    `json:"category" gorm:"size:100;index"`
	ArtisanName string    `json:"artisan_name" gorm:"size:100"`
	ImageURL    string    `json:"image_url" gorm:"type:text"`
	Description string    `json:"description" gorm:"type:text"`

	// Relationships
	Seller Account `json:"seller,omitempty" gorm:"foreignKey:SellerID"`
}

// ProductSummary is the trimmed view returned by the similar-products
// lookup: display fields only, no seller relationship.
type ProductSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	ArtisanName string    `json:"artisan_name"`
	ImageURL    string    `json:"image_url"`
	Description string    `json:"description"`
}

// CategoryCount is one row of the category aggregation.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

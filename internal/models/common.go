// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// LineModel is the base for list-entry rows (cart, wishlist, saved,
// order items). These are hard-deleted: a soft-deleted row would keep
// occupying its (list, product) unique slot and block re-adding the
// same product.
type LineModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Enums
type AccountKind string

const (
	AccountKindPersonal AccountKind = "personal"
	AccountKindSeller   AccountKind = "seller"
)

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type QuantityDirection string

const (
	QuantityInc QuantityDirection = "inc"
	QuantityDec QuantityDirection = "dec"
)

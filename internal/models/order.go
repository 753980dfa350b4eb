// internal/models/order.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is an immutable snapshot of a cart taken at checkout. Items are
// never updated after creation.
type Order struct {
	BaseModel
	AccountID   uuid.UUID   `json:"account_id" gorm:"type:uuid;not null;index"`
	TotalAmount float64     `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	Status      OrderStatus `json:"status" gorm:"type:varchar(20);default:'placed';index"`
	Items       []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	LineModel
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`
}

// OrderView resolves item references for the order history endpoint.
type OrderView struct {
	ID          uuid.UUID      `json:"id"`
	AccountID   uuid.UUID      `json:"account_id"`
	TotalAmount float64        `json:"total_amount"`
	Status      OrderStatus    `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	Items       []ResolvedLine `json:"items"`
}

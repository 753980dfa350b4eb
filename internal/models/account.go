// internal/models/account.go
package models

import (
	"golang.org/x/crypto/bcrypt"
)

// Account is the single identity record for both personal shoppers and
// sellers. The kind column discriminates the two; email uniqueness is a
// real database constraint, not an application-level pre-check.
type Account struct {
	BaseModel
	Name         string      `json:"name" gorm:"size:100;not null"`
	Email        string      `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string      `json:"-" gorm:"size:255;not null"`
	Kind         AccountKind `json:"kind" gorm:"type:varchar(20);not null;index"`

	// Seller profile, populated only when Kind == seller.
	ShopName string `json:"shop_name,omitempty" gorm:"size:100"`
	TaxID    string `json:"tax_id,omitempty" gorm:"size:50"`

	// Relationships
	Products []Product `json:"products,omitempty" gorm:"foreignKey:SellerID"`
	Orders   []Order   `json:"orders,omitempty" gorm:"foreignKey:AccountID"`
}

func (a *Account) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hashedPassword)
	return nil
}

func (a *Account) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password))
}

func (a *Account) IsSeller() bool {
	return a.Kind == AccountKindSeller
}

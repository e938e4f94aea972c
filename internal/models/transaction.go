package models

import "github.com/shopspring/decimal"

// Transaction represents a financial transaction owned by a single user.
// Amount is a non-negative decimal with two-decimal precision; float types
// are never used for money.
type Transaction struct {
	Base
	UserID     string          `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID string          `gorm:"type:uuid;not null;index" json:"category_id"`
	Title      string          `gorm:"size:255;not null" json:"title"`
	Amount     decimal.Decimal `gorm:"type:numeric(7,2);not null" json:"amount"`

	// Relationships
	User     User     `gorm:"foreignKey:UserID" json:"-"`
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// Month returns the calendar month (1-12) of the creation timestamp.
// It is derived on read and never persisted.
func (t *Transaction) Month() int {
	return int(t.CreatedAt.Month())
}

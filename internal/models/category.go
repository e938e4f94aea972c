package models

// Reserved category names the balance summary recognizes. Transactions in
// any other category are listed but contribute to neither total.
const (
	CategoryIncome  = "income"
	CategoryExpense = "expense"
)

// Category represents a transaction category. Categories are shared across
// users; names are normalized to lowercase at creation and lookup.
type Category struct {
	Base
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`

	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"transactions,omitempty"`
}

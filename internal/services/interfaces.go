package services

import (
	"time"

	"github.com/shopspring/decimal"

	"finledger/internal/models"
	"finledger/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, username, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// CategoryWithCount pairs a category with the requesting user's transaction
// count in it. The count is derived at query time and never stored.
type CategoryWithCount struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	TransactionCount int64  `json:"transaction_count"`
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(name string) (*models.Category, error)
	GetCategoryByName(name string) (*models.Category, error)
	GetCategoriesWithCounts(userID string) ([]CategoryWithCount, error)
	RenameCategory(categoryID, name string) (*models.Category, error)
}

// TransactionFilter holds optional filter parameters for listing transactions.
// All set criteria are ANDed together.
type TransactionFilter struct {
	CategoryID *string
	Month      *int
	Search     *string
}

// OrderField is a sortable transaction column.
type OrderField string

// Sortable fields for transaction listings.
const (
	OrderByCreatedAt OrderField = "created_at"
	OrderByAmount    OrderField = "amount"
	OrderByMonth     OrderField = "month"
)

// TransactionOrder describes the requested ordering of a transaction listing.
type TransactionOrder struct {
	Field      OrderField
	Descending bool
}

// DefaultTransactionOrder returns the default ordering: newest first.
func DefaultTransactionOrder() TransactionOrder {
	return TransactionOrder{Field: OrderByCreatedAt, Descending: true}
}

// TransactionUpdate holds the partial fields of a transaction update.
// Nil pointers leave the corresponding column untouched.
type TransactionUpdate struct {
	CategoryName *string
	Title        *string
	Amount       *decimal.Decimal
}

// Summary holds income/expense/balance totals over a filtered transaction set.
type Summary struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// TransactionItem is a single transaction as it appears in a listing page.
type TransactionItem struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	Month     int             `json:"month"`
}

// TransactionPage is the response envelope for a transaction listing: the
// total matching count, pagination cursors, totals over the entire filtered
// set, and the current page of items.
type TransactionPage struct {
	Count        int64             `json:"count"`
	Next         *int              `json:"next"`
	Previous     *int              `json:"previous"`
	Income       decimal.Decimal   `json:"income"`
	Expense      decimal.Decimal   `json:"expense"`
	Balance      decimal.Decimal   `json:"balance"`
	Transactions []TransactionItem `json:"transactions"`
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID, categoryName, title string, amount decimal.Decimal) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter, order TransactionOrder) (*TransactionPage, error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID string, fields TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}

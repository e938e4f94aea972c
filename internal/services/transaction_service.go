package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "finledger/internal/errors"
	"finledger/internal/models"
	"finledger/internal/pagination"
)

// maxAmount is the largest value a numeric(7,2) column can hold.
var maxAmount = decimal.New(9999999, -2) // 99999.99

// transactionService handles transaction-related business logic.
type transactionService struct {
	db              *gorm.DB
	categoryService CategoryServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, categoryService CategoryServicer) TransactionServicer {
	return &transactionService{
		db:              db,
		categoryService: categoryService,
	}
}

// validateAmount enforces the amount contract: non-negative, at most two
// decimal places, within numeric(7,2) range.
func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if amount.Exponent() < -2 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must have at most two decimal places")
	}
	if amount.GreaterThan(maxAmount) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount exceeds the maximum of 99999.99")
	}
	return nil
}

// resolveCategory maps a raw category name to the stored category, reporting
// an unknown name as a validation failure rather than a not-found.
func (s *transactionService) resolveCategory(name string) (*models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "select a category type")
	}
	category, err := s.categoryService.GetCategoryByName(name)
	if err != nil {
		if errors.Is(err, apperrors.ErrCategoryNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category does not exist")
		}
		return nil, err
	}
	return category, nil
}

// CreateTransaction creates a new transaction owned by the given user.
// The category name is matched case-insensitively against existing
// categories; an unknown name or a negative amount is a validation error.
func (s *transactionService) CreateTransaction(userID, categoryName, title string, amount decimal.Decimal) (*models.Transaction, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title is required")
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	category, err := s.resolveCategory(categoryName)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:     userID,
		CategoryID: category.ID,
		Title:      title,
		Amount:     amount,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	transaction.Category = *category
	return transaction, nil
}

// GetUserTransactions retrieves one page of the user's transactions matching
// the filter, together with the total count and income/expense/balance totals
// over the entire filtered set. The filter predicate is built once and shared
// by the count, aggregation, and list paths so all three agree on scope;
// totals therefore never degrade to per-page sums.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter, order TransactionOrder) (*TransactionPage, error) {
	if filter.Month != nil && (*filter.Month < 1 || *filter.Month > 12) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}

	page.Defaults()
	monthColumn := monthExpr(s.db)

	// One predicate, three consumers.
	filtered := func() *gorm.DB {
		q := s.db.Model(&models.Transaction{}).Where("transactions.user_id = ?", userID)
		return applyTransactionFilters(q, filter, monthColumn)
	}

	var totalItems int64
	if err := filtered().Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary, err := summarize(filtered())
	if err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	if err := filtered().
		Preload("Category").
		Order(orderClause(order, monthColumn)).
		Scopes(pagination.Paginate(page)).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	items := make([]TransactionItem, 0, len(transactions))
	for i := range transactions {
		t := &transactions[i]
		items = append(items, TransactionItem{
			ID:        t.ID,
			Category:  t.Category.Name,
			Title:     t.Title,
			Amount:    t.Amount,
			CreatedAt: t.CreatedAt,
			Month:     t.Month(),
		})
	}

	return &TransactionPage{
		Count:        totalItems,
		Next:         page.Next(totalItems),
		Previous:     page.Previous(),
		Income:       summary.Income,
		Expense:      summary.Expense,
		Balance:      summary.Balance,
		Transactions: items,
	}, nil
}

// applyTransactionFilters ANDs the set filter criteria onto the query.
func applyTransactionFilters(q *gorm.DB, f TransactionFilter, monthColumn string) *gorm.DB {
	if f.CategoryID != nil {
		q = q.Where("transactions.category_id = ?", *f.CategoryID)
	}
	if f.Month != nil {
		q = q.Where(monthColumn+" = ?", *f.Month)
	}
	if f.Search != nil && *f.Search != "" {
		q = q.Where("LOWER(transactions.title) LIKE ?", "%"+strings.ToLower(*f.Search)+"%")
	}
	return q
}

// monthExpr returns the SQL expression extracting the calendar month of
// created_at for the connected dialect. Month is derived, never stored.
func monthExpr(db *gorm.DB) string {
	if db.Dialector.Name() == "sqlite" {
		return "CAST(strftime('%m', transactions.created_at) AS INTEGER)"
	}
	return "EXTRACT(MONTH FROM transactions.created_at)"
}

// orderClause renders the requested ordering. Unknown fields fall back to the
// default so no caller input ever reaches the ORDER BY verbatim.
func orderClause(order TransactionOrder, monthColumn string) string {
	column := "transactions.created_at"
	switch order.Field {
	case OrderByAmount:
		column = "transactions.amount"
	case OrderByMonth:
		column = monthColumn
	}

	direction := "ASC"
	if order.Descending {
		direction = "DESC"
	}
	return fmt.Sprintf("%s %s", column, direction)
}

// GetTransactionByID retrieves a transaction by ID for a specific user.
// An id owned by another user is reported as not found.
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Preload("Category").
		Where("id = ? AND user_id = ?", transactionID, userID).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction applies a partial update to an existing transaction and
// touches its last_updated stamp. Amount and category are validated under the
// same rules as creation when present.
func (s *transactionService) UpdateTransaction(userID, transactionID string, fields TransactionUpdate) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if fields.Title != nil {
		if strings.TrimSpace(*fields.Title) == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title must not be empty")
		}
		updates["title"] = *fields.Title
	}

	if fields.Amount != nil {
		if err := validateAmount(*fields.Amount); err != nil {
			return nil, err
		}
		updates["amount"] = *fields.Amount
	}

	if fields.CategoryName != nil {
		category, err := s.resolveCategory(*fields.CategoryName)
		if err != nil {
			return nil, err
		}
		updates["category_id"] = category.ID
	}

	if len(updates) > 0 {
		if err := s.db.Model(transaction).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetTransactionByID(userID, transactionID)
}

// DeleteTransaction permanently removes a transaction row.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

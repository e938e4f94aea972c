package services

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "finledger/internal/errors"
	"finledger/internal/models"
)

// summaryRow is the projection the summary works over: one amount and the
// name of the category it belongs to.
type summaryRow struct {
	Amount       decimal.Decimal
	CategoryName string
}

// summarize computes income/expense/balance totals over every row matched by
// the given filtered transaction query, independent of any pagination window.
// The query must carry the same predicate as the count and list paths so all
// three agree on scope.
//
// Sums are carried out in Go with exact decimal arithmetic rather than a SQL
// SUM, so two-decimal amounts never pick up floating-point drift from the
// driver, and the result is identical across Postgres and SQLite.
func summarize(q *gorm.DB) (Summary, error) {
	var rows []summaryRow
	err := q.
		Select("transactions.amount AS amount, categories.name AS category_name").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Scan(&rows).Error
	if err != nil {
		return Summary{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return sumRows(rows), nil
}

// sumRows folds the projected rows into totals. Transactions in categories
// other than income/expense contribute to neither sum.
func sumRows(rows []summaryRow) Summary {
	income := decimal.Zero
	expense := decimal.Zero

	for _, row := range rows {
		switch strings.ToLower(row.CategoryName) {
		case models.CategoryIncome:
			income = income.Add(row.Amount)
		case models.CategoryExpense:
			expense = expense.Add(row.Amount)
		}
	}

	return Summary{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

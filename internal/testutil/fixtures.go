package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finledger/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Username: fmt.Sprintf("testuser%d", nextID()),
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a category with the given name.
func CreateTestCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction creates a transaction with the given decimal amount
// (e.g. "100.00").
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, categoryID, title, amount string) *models.Transaction {
	t.Helper()
	return CreateTestTransactionAt(t, db, userID, categoryID, title, amount, time.Time{})
}

// CreateTestTransactionAt creates a transaction with an explicit creation
// timestamp, for ordering and month-filter tests. A zero createdAt leaves the
// stamp to the database layer.
func CreateTestTransactionAt(t *testing.T, db *gorm.DB, userID, categoryID, title, amount string, createdAt time.Time) *models.Transaction {
	t.Helper()

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("invalid fixture amount %q: %v", amount, err)
	}

	tx := &models.Transaction{
		UserID:     userID,
		CategoryID: categoryID,
		Title:      title,
		Amount:     parsed,
	}
	tx.CreatedAt = createdAt

	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// RequireDecimal parses a decimal literal, failing the test on bad input.
func RequireDecimal(t *testing.T, value string) decimal.Decimal {
	t.Helper()

	parsed, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("invalid decimal literal %q: %v", value, err)
	}
	return parsed
}

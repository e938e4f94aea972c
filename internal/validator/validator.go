// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_order", validateTransactionOrder)
		_ = v.RegisterValidation("category_name", validateCategoryName)
	}
}

// validateTransactionOrder accepts an ordering field, optionally prefixed
// with '-' for descending order (e.g. "-created_at").
func validateTransactionOrder(fl validator.FieldLevel) bool {
	field := strings.TrimPrefix(fl.Field().String(), "-")
	switch field {
	case "created_at", "amount", "month":
		return true
	}
	return false
}

// validateCategoryName rejects names that would be empty once trimmed.
func validateCategoryName(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

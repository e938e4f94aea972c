package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "finledger/internal/errors"
	"finledger/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// normalizeCategoryName lowercases and trims a category name. All storage
// and lookups go through this, so matching is case-insensitive everywhere.
func normalizeCategoryName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CreateCategory creates a new category with a lowercase-normalized name.
func (s *categoryService) CreateCategory(name string) (*models.Category, error) {
	name = normalizeCategoryName(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	var count int64
	if err := s.db.Model(&models.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateCategory
	}

	category := &models.Category{Name: name}
	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// GetCategoryByName retrieves a category by its lowercase-normalized name.
func (s *categoryService) GetCategoryByName(name string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("name = ?", normalizeCategoryName(name)).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// GetCategoriesWithCounts returns every category together with the given
// user's transaction count in it. Categories the user has never used appear
// with a zero count; the count is computed at query time from a join, so the
// ownership scope lives in the join condition rather than a WHERE clause.
func (s *categoryService) GetCategoriesWithCounts(userID string) ([]CategoryWithCount, error) {
	var results []CategoryWithCount
	err := s.db.Model(&models.Category{}).
		Select("categories.id AS id, categories.name AS name, COUNT(transactions.id) AS transaction_count").
		Joins("LEFT JOIN transactions ON transactions.category_id = categories.id AND transactions.user_id = ?", userID).
		Group("categories.id, categories.name").
		Order("categories.name").
		Scan(&results).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if results == nil {
		results = []CategoryWithCount{}
	}
	return results, nil
}

// RenameCategory changes a category's name, preserving its id so existing
// transactions keep pointing at it.
func (s *categoryService) RenameCategory(categoryID, name string) (*models.Category, error) {
	name = normalizeCategoryName(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	var category models.Category
	if err := s.db.Where("id = ?", categoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var count int64
	if err := s.db.Model(&models.Category{}).
		Where("name = ? AND id <> ?", name, categoryID).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateCategory
	}

	if err := s.db.Model(&category).Update("name", name).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &category, nil
}

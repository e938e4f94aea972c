package pagination

import (
	"math"

	"gorm.io/gorm"
)

// PageRequest holds pagination parameters parsed from query strings.
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// Defaults fills in default values when page or page_size are not provided.
func (p *PageRequest) Defaults() {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = 20
	}
}

// Offset returns the SQL OFFSET for the current page.
func (p *PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// TotalPages returns the number of pages needed to hold totalItems.
func (p *PageRequest) TotalPages(totalItems int64) int {
	return int(math.Ceil(float64(totalItems) / float64(p.PageSize)))
}

// Next returns the following page number, or nil when the current page is the
// last one (or past the end) for the given total.
func (p *PageRequest) Next(totalItems int64) *int {
	if p.Page >= p.TotalPages(totalItems) {
		return nil
	}
	next := p.Page + 1
	return &next
}

// Previous returns the preceding page number, or nil on the first page.
func (p *PageRequest) Previous() *int {
	if p.Page <= 1 {
		return nil
	}
	prev := p.Page - 1
	return &prev
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the given page request.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Offset()).Limit(req.PageSize)
	}
}

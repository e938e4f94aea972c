package models

import (
	"time"

	"finledger/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for all tables. CreatedAt is stamped once at
// insert time and never changes; LastUpdated is touched on every mutation.
type Base struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `gorm:"autoUpdateTime" json:"last_updated"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}

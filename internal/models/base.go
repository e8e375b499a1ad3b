package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/example/vardhaman/internal/objectid"
)

// BaseModel provides shared columns for all tables.
type BaseModel struct {
	ID        string    `gorm:"type:char(24);primaryKey" json:"_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate ensures document identifiers are generated for new records.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = objectid.New()
	}
	return nil
}

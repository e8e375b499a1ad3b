package models

import "github.com/shopspring/decimal"

// PriceUpdate records the current price for a metal/material pair.
type PriceUpdate struct {
	BaseModel
	MetalID    string          `gorm:"type:char(24);index" json:"metalId"`
	MaterialID string          `gorm:"type:char(24);index" json:"materialId"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2)" json:"price"`
}

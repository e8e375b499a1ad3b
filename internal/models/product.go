package models

import "github.com/lib/pq"

// Media is the embedded media block of a product. It has no lifecycle of its
// own and lives in prefixed columns on the products table.
type Media struct {
	Images        pq.StringArray `gorm:"type:text[]" json:"images"`
	Video         string         `json:"video"`
	PreviewImages pq.StringArray `gorm:"type:text[]" json:"previewImages"`
}

// Product is the richest entity: taxonomy references, an embedded media
// block and a list of owned detail records.
type Product struct {
	BaseModel
	ProductName string          `gorm:"uniqueIndex" json:"productName"`
	Making      float64         `json:"making"`
	Discount    float64         `json:"discount"`
	ItemFor     pq.StringArray  `gorm:"type:text[]" json:"itemFor"`
	Category    pq.StringArray  `gorm:"type:text[]" json:"category"`
	MaterialID  string          `gorm:"type:char(24);index" json:"material"`
	MetalID     string          `gorm:"type:char(24);index" json:"metal"`
	Media       Media           `gorm:"embedded;embeddedPrefix:media_" json:"media"`
	Details     []ProductDetail `json:"details"`
	Description string          `json:"description"`
}

// ProductDetail is a size/weight variant owned by its product. Rows are
// replaced wholesale on product update and removed with the product.
type ProductDetail struct {
	BaseModel
	ProductID   string  `gorm:"type:char(24);index" json:"-"`
	Size        float64 `json:"size"`
	Weight      float64 `json:"weight"`
	Height      float64 `json:"height"`
	Stock       int     `json:"stock"`
	Description string  `json:"description"`
}

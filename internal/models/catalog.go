package models

// Category is a product grouping. The parent pointer is a weak link: it is
// validated at write time but deleting a parent does not touch its children.
type Category struct {
	BaseModel
	CategoryName     string  `gorm:"uniqueIndex" json:"categoryName"`
	ParentCategoryID *string `gorm:"type:char(24)" json:"parentCategoryId"`
}

// ItemFor tags who a piece of jewelry is intended for.
type ItemFor struct {
	BaseModel
	ItemForName string `gorm:"uniqueIndex" json:"itemForName"`
}

type Material struct {
	BaseModel
	MaterialName string `gorm:"uniqueIndex" json:"materialName"`
}

type Metal struct {
	BaseModel
	MetalName string `gorm:"uniqueIndex" json:"metalName"`
}

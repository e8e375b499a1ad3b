package models

// User is a dashboard administrator account.
type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
}

package models

import "time"

type User struct {
	BaseModel
	Username     string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(100);not null" json:"-"`
	Birthday     time.Time `json:"birthday"`
	IsAdmin      bool      `gorm:"default:false" json:"is_admin"`
	IsVerified   bool      `gorm:"default:false" json:"is_verified"`
	Icon         *string   `json:"icon"`

	// Relations
	Store        *Store        `gorm:"foreignKey:UserID" json:"store,omitempty"`
	Verification *Verification `gorm:"foreignKey:UserID" json:"-"`
}

// Verification - единственный живой тикет сброса пароля на пользователя.
// Повторный запрос перезаписывает код и метку времени, новая строка не создается.
type Verification struct {
	BaseModel
	UserID      uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Code        string    `gorm:"type:varchar(32);not null" json:"-"`
	LastRequest time.Time `gorm:"not null" json:"last_request"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

package dto

import (
	"time"

	"fleamarket_backend/internal/models"
)

// RegisterRequest - запрос регистрации
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Birthday string `json:"birthday" binding:"required,datetime=2006-01-02"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest - запрос обновления пары токенов
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ForgetPasswordRequest - запрос кода сброса пароля
type ForgetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ConfirmResetRequest - подтверждение сброса по коду
type ConfirmResetRequest struct {
	Code string `json:"code" binding:"required,len=32"`
}

// TokenPairResponse - ответ с парой токенов
type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthResponse - ответ входа/регистрации
type AuthResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	User         UserDTO `json:"user"`
}

// UserDTO - публичная информация о пользователе
type UserDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Birthday  time.Time `json:"birthday"`
	IsAdmin   bool      `json:"is_admin"`
	Icon      *string   `json:"icon,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserDTO собирает DTO из модели.
func NewUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Birthday:  user.Birthday,
		IsAdmin:   user.IsAdmin,
		Icon:      user.Icon,
		CreatedAt: user.CreatedAt,
	}
}

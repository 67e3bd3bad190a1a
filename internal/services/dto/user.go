package dto

// UpdateUserRequest - изменение профиля
type UpdateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Birthday string `json:"birthday" binding:"required,datetime=2006-01-02"`
}

// ChangePasswordRequest - смена пароля с подтверждением старого
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

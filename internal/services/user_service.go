package services

import (
	"errors"
	"time"

	"fleamarket_backend/internal/auth"
	"fleamarket_backend/internal/logger"
	"fleamarket_backend/internal/models"
	"fleamarket_backend/internal/repositories"
	"fleamarket_backend/internal/services/dto"
	"fleamarket_backend/pkg/apperrors"
)

// UserService - профиль пользователя: данные, пароль, иконка, удаление.
type UserService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// Profile - собственный профиль актора.
func (s *UserService) Profile(actor *models.User) dto.UserDTO {
	return dto.NewUserDTO(actor)
}

// UpdateProfile меняет имя, почту и дату рождения.
// Новые имя/почта не должны быть заняты кем-то другим.
func (s *UserService) UpdateProfile(actor *models.User, req dto.UpdateUserRequest) (*dto.UserDTO, error) {
	birthday, err := time.Parse("2006-01-02", req.Birthday)
	if err != nil {
		return nil, apperrors.ValidationError("Invalid birthday format")
	}

	taken, err := s.users.ExistsOtherWithUsernameOrEmail(actor.ID, req.Username, req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.ErrDuplicateCredentials
	}

	actor.Username = req.Username
	actor.Email = req.Email
	actor.Birthday = birthday
	if err := s.users.Update(actor); err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := dto.NewUserDTO(actor)
	return &out, nil
}

// ChangePassword меняет пароль после проверки старого.
func (s *UserService) ChangePassword(actor *models.User, req dto.ChangePasswordRequest) error {
	if !auth.CheckPasswordHash(req.OldPassword, actor.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.users.UpdatePassword(actor.ID, hash); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("password changed", "user_id", actor.ID)
	return nil
}

// UpdateIcon сохраняет имя файла иконки (сам файл уже на диске).
func (s *UserService) UpdateIcon(actor *models.User, filename string) error {
	if err := s.users.UpdateIcon(actor.ID, &filename); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// RemoveIcon сбрасывает иконку профиля.
func (s *UserService) RemoveIcon(actor *models.User) error {
	if err := s.users.UpdateIcon(actor.ID, nil); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// DeleteAccount удаляет пользователя вместе с тикетом сброса.
func (s *UserService) DeleteAccount(actor *models.User) error {
	if err := s.users.Delete(actor.ID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	logger.Info("account deleted", "user_id", actor.ID)
	return nil
}

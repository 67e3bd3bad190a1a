package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"fleamarket_backend/internal/auth"
	"fleamarket_backend/internal/email"
	"fleamarket_backend/internal/logger"
	"fleamarket_backend/internal/repositories"
	"fleamarket_backend/pkg/apperrors"
)

// PasswordResetService - сброс пароля по одноразовому коду.
// Код живет ровно одно окно свежести, у пользователя всегда не более
// одного живого тикета.
type PasswordResetService struct {
	users         repositories.UserRepository
	verifications repositories.VerificationRepository
	notifier      *email.Notifier
	codeTTL       time.Duration
	now           func() time.Time
}

func NewPasswordResetService(
	users repositories.UserRepository,
	verifications repositories.VerificationRepository,
	notifier *email.Notifier,
	codeTTL time.Duration,
) *PasswordResetService {
	return &PasswordResetService{
		users:         users,
		verifications: verifications,
		notifier:      notifier,
		codeTTL:       codeTTL,
		now:           time.Now,
	}
}

// StartReset выпускает код сброса и отправляет его на почту.
// Повторный вызов перезаписывает прежний код: старый перестает действовать.
func (s *PasswordResetService) StartReset(userEmail string) error {
	user, err := s.users.FindByEmail(userEmail)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	// 32 hex-символа uuid4 без дефисов.
	code := strings.ReplaceAll(uuid.NewString(), "-", "")

	if err := s.verifications.Upsert(user.ID, code, s.now()); err != nil {
		return apperrors.InternalError(err)
	}

	s.notifier.SendAsync(
		[]string{user.Email},
		"Password reset code",
		fmt.Sprintf("Hello %s!\n\nYour password reset code is: %s\nIt expires in %d minutes.",
			user.Username, code, int(s.codeTTL.Minutes())),
	)

	logger.Info("password reset requested", "user_id", user.ID)
	return nil
}

// ConfirmReset проверяет код, генерирует новый пароль и отправляет его
// на почту владельца. Тикет гасится в любом исходе проверки по коду.
func (s *PasswordResetService) ConfirmReset(code string) error {
	verification, err := s.verifications.FindByCode(code)
	if err != nil {
		if errors.Is(err, repositories.ErrVerificationNotFound) {
			return apperrors.ErrInvalidResetCode
		}
		return apperrors.InternalError(err)
	}

	// Код старше окна свежести не принимается. Граница включительная:
	// ровно TTL - уже просрочен.
	if s.now().Sub(verification.LastRequest) >= s.codeTTL {
		if err := s.verifications.Delete(verification); err != nil {
			return apperrors.InternalError(err)
		}
		return apperrors.ErrResetCodeExpired
	}

	newPassword, err := auth.GeneratePassword()
	if err != nil {
		return apperrors.InternalError(err)
	}
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.users.UpdatePassword(verification.UserID, hash); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.verifications.Delete(verification); err != nil {
		return apperrors.InternalError(err)
	}

	to := []string{}
	username := ""
	if verification.User != nil {
		to = append(to, verification.User.Email)
		username = verification.User.Username
	}
	s.notifier.SendAsync(
		to,
		"Your new password",
		fmt.Sprintf("Hello %s!\n\nYour new password is: %s\nPlease change it after logging in.",
			username, newPassword),
	)

	logger.Info("password reset confirmed", "user_id", verification.UserID)
	return nil
}

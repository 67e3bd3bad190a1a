package services

import (
	"errors"
	"time"

	"fleamarket_backend/internal/auth"
	"fleamarket_backend/internal/models"
	"fleamarket_backend/internal/repositories"
	"fleamarket_backend/internal/services/dto"
	"fleamarket_backend/pkg/apperrors"
)

// AuthService - регистрация, вход и жизненный цикл пары токенов.
type AuthService struct {
	users      repositories.UserRepository
	codec      *auth.TokenCodec
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewAuthService(
	users repositories.UserRepository,
	codec *auth.TokenCodec,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) *AuthService {
	return &AuthService{
		users:      users,
		codec:      codec,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// Register создает пользователя и сразу выдает пару токенов.
func (s *AuthService) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	birthday, err := time.Parse("2006-01-02", req.Birthday)
	if err != nil {
		return nil, apperrors.ValidationError("Invalid birthday format")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Birthday:     birthday,
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrDuplicateCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	pair, err := s.issueTokenPair(user.Username)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         dto.NewUserDTO(user),
	}, nil
}

// Login проверяет пару имя/пароль и выдает токены.
// Несуществующий пользователь и неверный пароль дают один и тот же ответ.
func (s *AuthService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	pair, err := s.issueTokenPair(user.Username)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         dto.NewUserDTO(user),
	}, nil
}

// Refresh обменивает refresh токен на новую пару. Access токен здесь
// не принимается: клейм "for" обязан быть refresh.
func (s *AuthService) Refresh(refreshToken string) (*dto.TokenPairResponse, error) {
	claims, err := s.codec.Decode(refreshToken)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}
	if claims.Purpose != auth.PurposeRefresh {
		return nil, apperrors.ErrUnauthenticated
	}

	// Пользователь мог быть удален после выдачи токена.
	user, err := s.users.FindByUsername(claims.Username)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}

	return s.issueTokenPair(user.Username)
}

// ResolveCaller превращает access токен в живого пользователя.
// Refresh токен для доступа к API не годится.
func (s *AuthService) ResolveCaller(accessToken string) (*models.User, error) {
	claims, err := s.codec.Decode(accessToken)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}
	if claims.Purpose != auth.PurposeAccess {
		return nil, apperrors.ErrUnauthenticated
	}

	user, err := s.users.FindByUsername(claims.Username)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}
	return user, nil
}

// RequireAdmin - ResolveCaller плюс проверка флага администратора.
func (s *AuthService) RequireAdmin(accessToken string) (*models.User, error) {
	user, err := s.ResolveCaller(accessToken)
	if err != nil {
		return nil, err
	}
	if !auth.IsAdmin(user) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return user, nil
}

func (s *AuthService) issueTokenPair(username string) (*dto.TokenPairResponse, error) {
	now := s.now()

	access, err := s.codec.Encode(username, auth.PurposeAccess, now.Add(s.accessTTL))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	refresh, err := s.codec.Encode(username, auth.PurposeRefresh, now.Add(s.refreshTTL))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TokenPairResponse{AccessToken: access, RefreshToken: refresh}, nil
}

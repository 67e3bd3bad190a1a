package repositories

import (
	"errors"

	"fleamarket_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserSortBy - допустимые ключи сортировки списка пользователей (админка).
type UserSortBy string

const (
	UserSortByID        UserSortBy = "id"
	UserSortByIsAdmin   UserSortBy = "is_admin"
	UserSortByUsername  UserSortBy = "username"
	UserSortByEmail     UserSortBy = "email"
	UserSortByBirthday  UserSortBy = "birthday"
	UserSortByCreatedAt UserSortBy = "created_at"
)

type UserFilter struct {
	SortBy   UserSortBy
	Desc     bool
	Page     int
	PageSize int
}

type UserRepository interface {
	FindByID(id uint) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	// ExistsWithUsernameOrEmail - проверка занятости для регистрации (один OR-запрос).
	ExistsWithUsernameOrEmail(username, email string) (bool, error)
	// ExistsOtherWithUsernameOrEmail - то же, но исключая самого пользователя (обновление профиля).
	ExistsOtherWithUsernameOrEmail(excludeID uint, username, email string) (bool, error)
	Create(user *models.User) error
	Update(user *models.User) error
	UpdatePassword(userID uint, passwordHash string) error
	UpdateIcon(userID uint, icon *string) error
	Delete(userID uint) error
	FindWithFilter(filter UserFilter) ([]models.User, int64, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Store").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) ExistsWithUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepositoryImpl) ExistsOtherWithUsernameOrEmail(excludeID uint, username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("id <> ?", excludeID).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	exists, err := r.ExistsWithUsernameOrEmail(user.Username, user.Email)
	if err != nil {
		return err
	}
	if exists {
		return ErrUserAlreadyExists
	}
	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	result := r.db.Model(user).Updates(map[string]interface{}{
		"username":      user.Username,
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"birthday":      user.Birthday,
		"is_admin":      user.IsAdmin,
		"is_verified":   user.IsVerified,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdatePassword(userID uint, passwordHash string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdateIcon(userID uint, icon *string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("icon", icon)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(userID uint) error {
	// Удаляем пользователя вместе с тикетом сброса в одной транзакции
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Verification{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", userID).Delete(&models.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}

func (r *UserRepositoryImpl) FindWithFilter(filter UserFilter) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	for _, clause := range BuildUserOrder(filter.SortBy, filter.Desc) {
		query = query.Order(clause)
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		if offset < 0 {
			offset = 0
		}
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var users []models.User
	err := query.Find(&users).Error
	return users, total, err
}

// BuildUserOrder возвращает ORDER BY клаузы списка пользователей.
// Неизвестный ключ дает сортировку по id по возрастанию.
func BuildUserOrder(sortBy UserSortBy, desc bool) []string {
	dir := func(d bool) string {
		if d {
			return "DESC"
		}
		return "ASC"
	}

	switch sortBy {
	case UserSortByID:
		return []string{"id " + dir(desc)}
	case UserSortByIsAdmin, UserSortByUsername, UserSortByEmail, UserSortByBirthday, UserSortByCreatedAt:
		return []string{string(sortBy) + " " + dir(desc)}
	default:
		return []string{"id ASC"}
	}
}

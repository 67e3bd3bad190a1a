package repositories

import (
	"errors"
	"time"

	"fleamarket_backend/internal/models"

	"gorm.io/gorm"
)

var ErrVerificationNotFound = errors.New("verification not found")

type VerificationRepository interface {
	FindByUserID(userID uint) (*models.Verification, error)
	// FindByCode подгружает владельца тикета.
	FindByCode(code string) (*models.Verification, error)
	// Upsert перезаписывает код и метку времени единственного тикета
	// пользователя, либо создает тикет, если его нет. Одна транзакция,
	// вторая строка на пользователя не появляется никогда.
	Upsert(userID uint, code string, lastRequest time.Time) error
	Delete(verification *models.Verification) error
}

type VerificationRepositoryImpl struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &VerificationRepositoryImpl{db: db}
}

func (r *VerificationRepositoryImpl) FindByUserID(userID uint) (*models.Verification, error) {
	var verification models.Verification
	err := r.db.First(&verification, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVerificationNotFound
		}
		return nil, err
	}
	return &verification, nil
}

func (r *VerificationRepositoryImpl) FindByCode(code string) (*models.Verification, error) {
	var verification models.Verification
	err := r.db.Preload("User").First(&verification, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVerificationNotFound
		}
		return nil, err
	}
	return &verification, nil
}

func (r *VerificationRepositoryImpl) Upsert(userID uint, code string, lastRequest time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Verification
		err := tx.First(&existing, "user_id = ?", userID).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			return tx.Create(&models.Verification{
				UserID:      userID,
				Code:        code,
				LastRequest: lastRequest,
			}).Error
		}

		return tx.Model(&existing).Updates(map[string]interface{}{
			"code":         code,
			"last_request": lastRequest,
		}).Error
	})
}

func (r *VerificationRepositoryImpl) Delete(verification *models.Verification) error {
	return r.db.Delete(verification).Error
}

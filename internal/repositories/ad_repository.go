package repositories

import (
	"errors"

	"fleamarket_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAdNotFound = errors.New("ad not found")

type AdRepository interface {
	FindByID(id uint) (*models.Ad, error)
	// LatestPool - последние limit объявлений по id DESC.
	LatestPool(limit int) ([]models.Ad, error)
	Create(ad *models.Ad) error
	Delete(adID uint) error
}

type AdRepositoryImpl struct {
	db *gorm.DB
}

func NewAdRepository(db *gorm.DB) AdRepository {
	return &AdRepositoryImpl{db: db}
}

func (r *AdRepositoryImpl) FindByID(id uint) (*models.Ad, error) {
	var ad models.Ad
	err := r.db.First(&ad, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdNotFound
		}
		return nil, err
	}
	return &ad, nil
}

func (r *AdRepositoryImpl) LatestPool(limit int) ([]models.Ad, error) {
	var ads []models.Ad
	err := r.db.Order("id DESC").Limit(limit).Find(&ads).Error
	return ads, err
}

func (r *AdRepositoryImpl) Create(ad *models.Ad) error {
	return r.db.Create(ad).Error
}

func (r *AdRepositoryImpl) Delete(adID uint) error {
	result := r.db.Where("id = ?", adID).Delete(&models.Ad{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdNotFound
	}
	return nil
}

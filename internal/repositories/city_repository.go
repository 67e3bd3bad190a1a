package repositories

import (
	"errors"

	"fleamarket_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCityNotFound     = errors.New("city not found")
	ErrDistrictNotFound = errors.New("district not found")
)

type CityRepository interface {
	FindAll() ([]models.City, error)
	FindByID(id uint) (*models.City, error)
	FindDistrictByID(id uint) (*models.District, error)
	FindDistrictsByCityID(cityID uint) ([]models.District, error)
	CreateCity(city *models.City) error
	CreateDistrict(district *models.District) error
	DeleteCity(cityID uint) error
	DeleteDistrict(districtID uint) error
}

type CityRepositoryImpl struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) CityRepository {
	return &CityRepositoryImpl{db: db}
}

func (r *CityRepositoryImpl) FindAll() ([]models.City, error) {
	var cities []models.City
	err := r.db.Preload("Districts").Order("id ASC").Find(&cities).Error
	return cities, err
}

func (r *CityRepositoryImpl) FindByID(id uint) (*models.City, error) {
	var city models.City
	err := r.db.Preload("Districts").First(&city, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCityNotFound
		}
		return nil, err
	}
	return &city, nil
}

func (r *CityRepositoryImpl) FindDistrictByID(id uint) (*models.District, error) {
	var district models.District
	err := r.db.First(&district, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDistrictNotFound
		}
		return nil, err
	}
	return &district, nil
}

func (r *CityRepositoryImpl) FindDistrictsByCityID(cityID uint) ([]models.District, error) {
	var districts []models.District
	err := r.db.Where("city_id = ?", cityID).Order("id ASC").Find(&districts).Error
	return districts, err
}

func (r *CityRepositoryImpl) CreateCity(city *models.City) error {
	return r.db.Create(city).Error
}

func (r *CityRepositoryImpl) CreateDistrict(district *models.District) error {
	return r.db.Create(district).Error
}

func (r *CityRepositoryImpl) DeleteCity(cityID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("city_id = ?", cityID).Delete(&models.District{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", cityID).Delete(&models.City{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCityNotFound
		}
		return nil
	})
}

func (r *CityRepositoryImpl) DeleteDistrict(districtID uint) error {
	result := r.db.Where("id = ?", districtID).Delete(&models.District{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDistrictNotFound
	}
	return nil
}

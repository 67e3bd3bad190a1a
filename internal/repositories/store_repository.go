package repositories

import (
	"errors"

	"fleamarket_backend/internal/models"

	"gorm.io/gorm"
)

var ErrStoreNotFound = errors.New("store not found")

type StoreRepository interface {
	FindByID(id uint) (*models.Store, error)
	FindByUserID(userID uint) (*models.Store, error)
	ExistsWithName(name string) (bool, error)
	ExistsOtherWithName(excludeID uint, name string) (bool, error)
	Create(store *models.Store) error
	Update(store *models.Store) error
	// Delete удаляет магазин вместе с его товарами.
	Delete(storeID uint) error
}

type StoreRepositoryImpl struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &StoreRepositoryImpl{db: db}
}

func (r *StoreRepositoryImpl) FindByID(id uint) (*models.Store, error) {
	var store models.Store
	err := r.db.Preload("Items").First(&store, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return &store, nil
}

func (r *StoreRepositoryImpl) FindByUserID(userID uint) (*models.Store, error) {
	var store models.Store
	err := r.db.Preload("Items").First(&store, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return &store, nil
}

func (r *StoreRepositoryImpl) ExistsWithName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Store{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *StoreRepositoryImpl) ExistsOtherWithName(excludeID uint, name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Store{}).
		Where("id <> ?", excludeID).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

func (r *StoreRepositoryImpl) Create(store *models.Store) error {
	return r.db.Create(store).Error
}

func (r *StoreRepositoryImpl) Update(store *models.Store) error {
	result := r.db.Model(store).Updates(map[string]interface{}{
		"name":         store.Name,
		"introduction": store.Introduction,
		"district_id":  store.DistrictID,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStoreNotFound
	}
	return nil
}

func (r *StoreRepositoryImpl) Delete(storeID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("store_id = ?", storeID).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", storeID).Delete(&models.Store{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrStoreNotFound
		}
		return nil
	})
}

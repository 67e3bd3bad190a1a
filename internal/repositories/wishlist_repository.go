package repositories

import (
	"errors"

	"fleamarket_backend/internal/models"

	"gorm.io/gorm"
)

var ErrWishlistItemNotFound = errors.New("wishlist item not found")

type WishlistRepository interface {
	FindByUserID(userID uint) ([]models.WishlistItem, error)
	FindByUserAndItem(userID, itemID uint) (*models.WishlistItem, error)
	Create(entry *models.WishlistItem) error
	// DeleteOwned удаляет запись только если она принадлежит userID.
	DeleteOwned(userID, entryID uint) error
}

type WishlistRepositoryImpl struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &WishlistRepositoryImpl{db: db}
}

func (r *WishlistRepositoryImpl) FindByUserID(userID uint) ([]models.WishlistItem, error) {
	var entries []models.WishlistItem
	err := r.db.Preload("Item").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}

func (r *WishlistRepositoryImpl) FindByUserAndItem(userID, itemID uint) (*models.WishlistItem, error) {
	var entry models.WishlistItem
	err := r.db.First(&entry, "user_id = ? AND item_id = ?", userID, itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWishlistItemNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *WishlistRepositoryImpl) Create(entry *models.WishlistItem) error {
	return r.db.Create(entry).Error
}

func (r *WishlistRepositoryImpl) DeleteOwned(userID, entryID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.WishlistItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWishlistItemNotFound
	}
	return nil
}

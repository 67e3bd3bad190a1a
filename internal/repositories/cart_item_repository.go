package repositories

import (
	"errors"

	"fleamarket_backend/internal/models"

	"gorm.io/gorm"
)

type CartItemRepository interface {
	FindByID(id uint) (*models.CartItem, error)
	FindByUserID(userID uint) ([]models.CartItem, error)
	FindByUserAndItem(userID, itemID uint) (*models.CartItem, error)
	Create(cartItem *models.CartItem) error
	UpdateCount(cartItemID uint, count int) error
	Delete(cartItemID uint) error
}

type CartItemRepositoryImpl struct {
	db *gorm.DB
}

func NewCartItemRepository(db *gorm.DB) CartItemRepository {
	return &CartItemRepositoryImpl{db: db}
}

func (r *CartItemRepositoryImpl) FindByID(id uint) (*models.CartItem, error) {
	var cartItem models.CartItem
	err := r.db.Preload("Item").First(&cartItem, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}
	return &cartItem, nil
}

func (r *CartItemRepositoryImpl) FindByUserID(userID uint) ([]models.CartItem, error) {
	var cartItems []models.CartItem
	err := r.db.Preload("Item").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&cartItems).Error
	return cartItems, err
}

func (r *CartItemRepositoryImpl) FindByUserAndItem(userID, itemID uint) (*models.CartItem, error) {
	var cartItem models.CartItem
	err := r.db.First(&cartItem, "user_id = ? AND item_id = ?", userID, itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}
	return &cartItem, nil
}

func (r *CartItemRepositoryImpl) Create(cartItem *models.CartItem) error {
	return r.db.Create(cartItem).Error
}

func (r *CartItemRepositoryImpl) UpdateCount(cartItemID uint, count int) error {
	result := r.db.Model(&models.CartItem{}).Where("id = ?", cartItemID).
		Update("count", count)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (r *CartItemRepositoryImpl) Delete(cartItemID uint) error {
	result := r.db.Where("id = ?", cartItemID).Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

package repositories

import (
	"errors"

	"fleamarket_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrCartItemNotFound = errors.New("cart item not found")
)

type OrderRepository interface {
	FindByID(id uint) (*models.Order, error)
	FindByUserID(userID uint) ([]models.Order, error)
	// CreateWithStockDecrement создает заказ и списывает остаток товара
	// в одной транзакции. Недостаток остатка - вся операция откатывается.
	CreateWithStockDecrement(order *models.Order, items ItemRepository) (bool, error)
	UpdateStatus(orderID uint, status models.OrderStatus) error
}

type OrderRepositoryImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

func (r *OrderRepositoryImpl) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Item").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) FindByUserID(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Item").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepositoryImpl) CreateWithStockDecrement(order *models.Order, items ItemRepository) (bool, error) {
	ok := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		decremented, err := items.DecrementStock(tx, order.ItemID, order.Count)
		if err != nil {
			return err
		}
		if !decremented {
			return nil
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		ok = true
		return nil
	})
	return ok, err
}

func (r *OrderRepositoryImpl) UpdateStatus(orderID uint, status models.OrderStatus) error {
	result := r.db.Model(&models.Order{}).Where("id = ?", orderID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

package database

import (
	"gorm.io/gorm"

	"fleamarket_backend/internal/models"
)

// Migrate прогоняет автомиграцию всех моделей.
// Порядок важен: таблицы со ссылками создаются после родительских.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Verification{},
		&models.City{},
		&models.District{},
		&models.Store{},
		&models.Item{},
		&models.Order{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.Comment{},
		&models.Ad{},
		&models.UserReport{},
		&models.ItemReport{},
	)
}

package services

import (
	"math/rand"
	"time"

	"gorm.io/gorm"

	"fleamarket_backend/internal/auth"
	"fleamarket_backend/internal/config"
	"fleamarket_backend/internal/email"
	"fleamarket_backend/internal/repositories"
)

// ServiceContainer собирает все сервисы приложения.
type ServiceContainer struct {
	Auth     *AuthService
	Reset    *PasswordResetService
	Catalog  *CatalogService
	User     *UserService
	Store    *StoreService
	Order    *OrderService
	Wishlist *WishlistService
	Report   *ReportService
	Admin    *AdminService
}

// NewServiceContainer строит репозитории и сервисы поверх подключения к БД.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, notifier *email.Notifier) *ServiceContainer {
	users := repositories.NewUserRepository(db)
	verifications := repositories.NewVerificationRepository(db)
	items := repositories.NewItemRepository(db)
	stores := repositories.NewStoreRepository(db)
	orders := repositories.NewOrderRepository(db)
	cartItems := repositories.NewCartItemRepository(db)
	comments := repositories.NewCommentRepository(db)
	ads := repositories.NewAdRepository(db)
	cities := repositories.NewCityRepository(db)
	reports := repositories.NewReportRepository(db)
	wishlist := repositories.NewWishlistRepository(db)

	codec := auth.NewTokenCodec(cfg.JWT.Secret)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	return &ServiceContainer{
		Auth: NewAuthService(
			users,
			codec,
			time.Duration(cfg.JWT.AccessTTLMinutes)*time.Minute,
			time.Duration(cfg.JWT.RefreshTTLDays)*24*time.Hour,
		),
		Reset: NewPasswordResetService(
			users,
			verifications,
			notifier,
			time.Duration(cfg.Reset.CodeTTLMinutes)*time.Minute,
		),
		Catalog:  NewCatalogService(items, ads, comments, cities, rng),
		User:     NewUserService(users),
		Store:    NewStoreService(stores, items, cities),
		Order:    NewOrderService(orders, cartItems, items),
		Wishlist: NewWishlistService(wishlist, items),
		Report:   NewReportService(reports, users, items),
		Admin:    NewAdminService(users, ads, cities, items),
	}
}

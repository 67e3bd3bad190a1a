package handlers

import (
	"fleamarket_backend/internal/config"
	"fleamarket_backend/internal/services"
	"fleamarket_backend/internal/validator"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler     *AuthHandler
	UserHandler     *UserHandler
	CatalogHandler  *CatalogHandler
	StoreHandler    *StoreHandler
	OrderHandler    *OrderHandler
	WishlistHandler *WishlistHandler
	ReportHandler   *ReportHandler
	AdminHandler    *AdminHandler
}

// NewAppHandlers собирает хэндлеры поверх контейнера сервисов.
func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator, cfg *config.Config) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:     NewAuthHandler(base, container.Auth, container.Reset),
		UserHandler:     NewUserHandler(base, container.User, container.Auth, cfg.Upload),
		CatalogHandler:  NewCatalogHandler(base, container.Catalog, container.Auth),
		StoreHandler:    NewStoreHandler(base, container.Store, container.Auth),
		OrderHandler:    NewOrderHandler(base, container.Order, container.Auth),
		WishlistHandler: NewWishlistHandler(base, container.Wishlist, container.Auth),
		ReportHandler:   NewReportHandler(base, container.Report, container.Auth),
		AdminHandler:    NewAdminHandler(base, container.Admin, container.Report, container.Auth),
	}
}

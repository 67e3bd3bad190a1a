package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleamarket_backend/internal/handlers"
)

// RegisterRoutes вешает все маршруты приложения на /api/v1.
func RegisterRoutes(r *gin.Engine, h *handlers.AppHandlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	h.AuthHandler.RegisterRoutes(api)
	h.UserHandler.RegisterRoutes(api)
	h.CatalogHandler.RegisterRoutes(api)
	h.StoreHandler.RegisterRoutes(api)
	h.OrderHandler.RegisterRoutes(api)
	h.WishlistHandler.RegisterRoutes(api)
	h.ReportHandler.RegisterRoutes(api)
	h.AdminHandler.RegisterRoutes(api)
}

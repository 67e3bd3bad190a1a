package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleamarket_backend/internal/middleware"
	"fleamarket_backend/internal/services"
	"fleamarket_backend/internal/services/dto"
)

type WishlistHandler struct {
	*BaseHandler
	wishlistService *services.WishlistService
	authService     *services.AuthService
}

func NewWishlistHandler(base *BaseHandler, wishlistService *services.WishlistService, authService *services.AuthService) *WishlistHandler {
	return &WishlistHandler{
		BaseHandler:     base,
		wishlistService: wishlistService,
		authService:     authService,
	}
}

func (h *WishlistHandler) RegisterRoutes(rg *gin.RouterGroup) {
	wishlist := rg.Group("/wishlist")
	wishlist.Use(middleware.AuthMiddleware(h.authService))
	{
		wishlist.GET("", h.List)
		wishlist.POST("", h.Add)
		wishlist.DELETE("/:id", h.Remove)
	}
}

func (h *WishlistHandler) List(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	entries, err := h.wishlistService.List(user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": entries})
}

func (h *WishlistHandler) Add(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	var req dto.AddWishlistItemRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	entry, err := h.wishlistService.Add(user, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *WishlistHandler) Remove(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	entryID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.wishlistService.Remove(user, entryID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Wishlist entry removed"})
}

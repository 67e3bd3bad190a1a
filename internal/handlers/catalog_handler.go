package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleamarket_backend/internal/middleware"
	"fleamarket_backend/internal/services"
	"fleamarket_backend/internal/services/dto"
)

type CatalogHandler struct {
	*BaseHandler
	catalogService *services.CatalogService
	authService    *services.AuthService
}

func NewCatalogHandler(base *BaseHandler, catalogService *services.CatalogService, authService *services.AuthService) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    base,
		catalogService: catalogService,
		authService:    authService,
	}
}

func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/items")
	{
		items.GET("", h.ListItems)
		items.GET("/hot", h.HotItems)
		items.GET("/best", h.BestItems)
		items.GET("/:id", h.GetItem)
		items.GET("/:id/comments", h.ListComments)
	}

	// Отзыв оставляет только аутентифицированный пользователь.
	authed := rg.Group("/items")
	authed.Use(middleware.AuthMiddleware(h.authService))
	{
		authed.PUT("/:id/comments", h.UpsertComment)
	}

	rg.GET("/ads", h.ListAds)
	rg.GET("/cities", h.Cities)
	rg.GET("/cities/:id/districts", h.Districts)
}

func (h *CatalogHandler) ListItems(c *gin.Context) {
	var query dto.ItemListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	page, err := h.catalogService.ListItems(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *CatalogHandler) HotItems(c *gin.Context) {
	items, err := h.catalogService.HotItems()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *CatalogHandler) BestItems(c *gin.Context) {
	items, err := h.catalogService.BestItems()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *CatalogHandler) GetItem(c *gin.Context) {
	itemID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	item, err := h.catalogService.GetItem(itemID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler) ListComments(c *gin.Context) {
	itemID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var page dto.PageQuery
	if !h.BindAndValidate_Query(c, &page) {
		return
	}

	comments, err := h.catalogService.ListComments(itemID, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *CatalogHandler) UpsertComment(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	itemID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.CommentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.catalogService.UpsertComment(user, itemID, req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment saved"})
}

func (h *CatalogHandler) ListAds(c *gin.Context) {
	ads, err := h.catalogService.ListAds()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ads": ads})
}

func (h *CatalogHandler) Cities(c *gin.Context) {
	cities, err := h.catalogService.Cities()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

func (h *CatalogHandler) Districts(c *gin.Context) {
	cityID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	districts, err := h.catalogService.Districts(cityID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"districts": districts})
}

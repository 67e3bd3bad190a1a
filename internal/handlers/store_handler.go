package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleamarket_backend/internal/middleware"
	"fleamarket_backend/internal/services"
	"fleamarket_backend/internal/services/dto"
)

type StoreHandler struct {
	*BaseHandler
	storeService *services.StoreService
	authService  *services.AuthService
}

func NewStoreHandler(base *BaseHandler, storeService *services.StoreService, authService *services.AuthService) *StoreHandler {
	return &StoreHandler{
		BaseHandler:  base,
		storeService: storeService,
		authService:  authService,
	}
}

func (h *StoreHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stores/:id", h.GetStore)

	stores := rg.Group("/stores")
	stores.Use(middleware.AuthMiddleware(h.authService))
	{
		stores.POST("", h.CreateStore)
		stores.GET("/me", h.MyStore)
		stores.PUT("/:id", h.UpdateStore)
		stores.DELETE("/:id", h.DeleteStore)
	}

	items := rg.Group("/store-items")
	items.Use(middleware.AuthMiddleware(h.authService))
	{
		items.POST("", h.CreateItem)
		items.PUT("/:id", h.UpdateItem)
		items.DELETE("/:id", h.DeleteItem)
	}
}

func (h *StoreHandler) GetStore(c *gin.Context) {
	storeID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	store, err := h.storeService.GetStore(storeID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, store)
}

func (h *StoreHandler) CreateStore(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateStoreRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	store, err := h.storeService.CreateStore(user, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, store)
}

func (h *StoreHandler) MyStore(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	store, err := h.storeService.MyStore(user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, store)
}

func (h *StoreHandler) UpdateStore(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	storeID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateStoreRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	store, err := h.storeService.UpdateStore(user, storeID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, store)
}

func (h *StoreHandler) DeleteStore(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	storeID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.storeService.DeleteStore(user, storeID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Store deleted"})
}

func (h *StoreHandler) CreateItem(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateItemRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	item, err := h.storeService.CreateItem(user, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *StoreHandler) UpdateItem(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	itemID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateItemRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	item, err := h.storeService.UpdateItem(user, itemID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *StoreHandler) DeleteItem(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	itemID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.storeService.DeleteItem(user, itemID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}

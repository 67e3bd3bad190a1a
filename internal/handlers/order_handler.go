package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleamarket_backend/internal/middleware"
	"fleamarket_backend/internal/models"
	"fleamarket_backend/internal/services"
	"fleamarket_backend/internal/services/dto"
)

type OrderHandler struct {
	*BaseHandler
	orderService *services.OrderService
	authService  *services.AuthService
}

func NewOrderHandler(base *BaseHandler, orderService *services.OrderService, authService *services.AuthService) *OrderHandler {
	return &OrderHandler{
		BaseHandler:  base,
		orderService: orderService,
		authService:  authService,
	}
}

func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(h.authService))
	{
		orders.POST("", h.PlaceOrder)
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
		orders.PUT("/:id/status", h.UpdateStatus)
	}

	cart := rg.Group("/cart")
	cart.Use(middleware.AuthMiddleware(h.authService))
	{
		cart.POST("", h.AddToCart)
		cart.GET("", h.ListCart)
		cart.PUT("/:id", h.UpdateCartItem)
		cart.DELETE("/:id", h.RemoveCartItem)
		cart.POST("/:id/checkout", h.CheckoutCartItem)
	}
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	var req dto.PlaceOrderRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	order, err := h.orderService.PlaceOrder(user, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	orders, err := h.orderService.ListOrders(user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	orderID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	order, err := h.orderService.GetOrder(user, orderID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	orderID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateOrderStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.orderService.UpdateOrderStatus(user, orderID, models.OrderStatus(req.Status)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}

func (h *OrderHandler) AddToCart(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	var req dto.AddCartItemRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.orderService.AddToCart(user, req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item added to cart"})
}

func (h *OrderHandler) ListCart(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	cart, err := h.orderService.ListCart(user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

func (h *OrderHandler) UpdateCartItem(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	cartItemID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateCartItemRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.orderService.UpdateCartItem(user, cartItemID, req.Count); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart item updated"})
}

func (h *OrderHandler) RemoveCartItem(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	cartItemID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.orderService.RemoveCartItem(user, cartItemID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
}

func (h *OrderHandler) CheckoutCartItem(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	cartItemID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	order, err := h.orderService.CheckoutCartItem(user, cartItemID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

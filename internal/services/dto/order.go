package dto

import (
	"time"

	"fleamarket_backend/internal/models"
)

// PlaceOrderRequest - оформление заказа
type PlaceOrderRequest struct {
	ItemID uint `json:"item_id" binding:"required"`
	Count  int  `json:"count" binding:"required,min=1"`
}

// UpdateOrderStatusRequest - смена статуса заказа
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=processing not_delivered delivered arrived done"`
}

// AddCartItemRequest - добавление товара в корзину
type AddCartItemRequest struct {
	ItemID uint `json:"item_id" binding:"required"`
	Count  int  `json:"count" binding:"required,min=1"`
}

// UpdateCartItemRequest - изменение количества в корзине
type UpdateCartItemRequest struct {
	Count int `json:"count" binding:"required,min=1"`
}

// OrderDTO - заказ с вложенным товаром
type OrderDTO struct {
	ID        uint               `json:"id"`
	ItemID    uint               `json:"item_id"`
	Count     int                `json:"count"`
	Status    models.OrderStatus `json:"status"`
	Item      *ItemDTO           `json:"item,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

// NewOrderDTO собирает DTO из модели.
func NewOrderDTO(order *models.Order) OrderDTO {
	out := OrderDTO{
		ID:        order.ID,
		ItemID:    order.ItemID,
		Count:     order.Count,
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
	}
	if order.Item != nil {
		item := NewItemDTO(order.Item)
		out.Item = &item
	}
	return out
}

// NewOrderDTOs собирает DTO списком.
func NewOrderDTOs(orders []models.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(orders))
	for i := range orders {
		out = append(out, NewOrderDTO(&orders[i]))
	}
	return out
}

// CartItemDTO - позиция корзины
type CartItemDTO struct {
	ID     uint     `json:"id"`
	ItemID uint     `json:"item_id"`
	Count  int      `json:"count"`
	Item   *ItemDTO `json:"item,omitempty"`
}

// NewCartItemDTOs собирает DTO списком.
func NewCartItemDTOs(cartItems []models.CartItem) []CartItemDTO {
	out := make([]CartItemDTO, 0, len(cartItems))
	for i := range cartItems {
		c := cartItems[i]
		d := CartItemDTO{ID: c.ID, ItemID: c.ItemID, Count: c.Count}
		if c.Item != nil {
			item := NewItemDTO(c.Item)
			d.Item = &item
		}
		out = append(out, d)
	}
	return out
}

package dto

import "fleamarket_backend/internal/models"

// AddWishlistItemRequest - откладывание товара
type AddWishlistItemRequest struct {
	ItemID uint `json:"item_id" binding:"required"`
}

// WishlistItemDTO - отложенный товар
type WishlistItemDTO struct {
	ID     uint     `json:"id"`
	ItemID uint     `json:"item_id"`
	Item   *ItemDTO `json:"item,omitempty"`
}

// NewWishlistItemDTO собирает DTO из модели.
func NewWishlistItemDTO(entry *models.WishlistItem) WishlistItemDTO {
	out := WishlistItemDTO{ID: entry.ID, ItemID: entry.ItemID}
	if entry.Item != nil {
		item := NewItemDTO(entry.Item)
		out.Item = &item
	}
	return out
}

// NewWishlistItemDTOs собирает DTO списком.
func NewWishlistItemDTOs(entries []models.WishlistItem) []WishlistItemDTO {
	out := make([]WishlistItemDTO, 0, len(entries))
	for i := range entries {
		out = append(out, NewWishlistItemDTO(&entries[i]))
	}
	return out
}

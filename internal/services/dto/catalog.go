package dto

import (
	"time"

	"fleamarket_backend/internal/models"
)

// ItemListQuery - параметры выборки каталога
type ItemListQuery struct {
	Name    string `form:"name"`
	Need18  *bool  `form:"need_18"`
	OrderBy string `form:"order_by" binding:"omitempty,oneof=id name store_id price hottest best"`
	Desc    bool   `form:"desc"`
	PageQuery
}

// ItemDTO - товар каталога
type ItemDTO struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Introduction  string  `json:"introduction"`
	Price         int     `json:"price"`
	Count         int     `json:"count"`
	Need18        bool    `json:"need_18"`
	StoreID       uint    `json:"store_id"`
	AverageStars  float64 `json:"average_stars"`
	CommentCounts int     `json:"comment_counts"`
}

// NewItemDTO собирает DTO из модели.
func NewItemDTO(item *models.Item) ItemDTO {
	return ItemDTO{
		ID:            item.ID,
		Name:          item.Name,
		Introduction:  item.Introduction,
		Price:         item.Price,
		Count:         item.Count,
		Need18:        item.Need18,
		StoreID:       item.StoreID,
		AverageStars:  item.AverageStars,
		CommentCounts: item.CommentCounts,
	}
}

// NewItemDTOs собирает DTO списком, сохраняя порядок.
func NewItemDTOs(items []models.Item) []ItemDTO {
	out := make([]ItemDTO, 0, len(items))
	for i := range items {
		out = append(out, NewItemDTO(&items[i]))
	}
	return out
}

// CommentRequest - создание или перезапись отзыва
type CommentRequest struct {
	Content string `json:"content" binding:"required,max=500"`
	Stars   int    `json:"stars" binding:"required,min=1,max=5"`
}

// CommentDTO - отзыв на товар
type CommentDTO struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	Stars     int       `json:"stars"`
	UserID    uint      `json:"user_id"`
	ItemID    uint      `json:"item_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCommentDTOs собирает DTO списком.
func NewCommentDTOs(comments []models.Comment) []CommentDTO {
	out := make([]CommentDTO, 0, len(comments))
	for _, c := range comments {
		out = append(out, CommentDTO{
			ID:        c.ID,
			Content:   c.Content,
			Stars:     c.Stars,
			UserID:    c.UserID,
			ItemID:    c.ItemID,
			CreatedAt: c.CreatedAt,
		})
	}
	return out
}

// AdDTO - рекламное объявление
type AdDTO struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Image  string `json:"image"`
	ItemID uint   `json:"item_id"`
}

// NewAdDTOs собирает DTO списком.
func NewAdDTOs(ads []models.Ad) []AdDTO {
	out := make([]AdDTO, 0, len(ads))
	for _, ad := range ads {
		out = append(out, AdDTO{ID: ad.ID, Name: ad.Name, Image: ad.Image, ItemID: ad.ItemID})
	}
	return out
}

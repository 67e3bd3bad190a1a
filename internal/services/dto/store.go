package dto

import "fleamarket_backend/internal/models"

// CreateStoreRequest - открытие магазина
type CreateStoreRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=20"`
	Introduction string `json:"introduction" binding:"required,max=500"`
	DistrictID   uint   `json:"district_id" binding:"required"`
}

// UpdateStoreRequest - изменение магазина
type UpdateStoreRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=20"`
	Introduction string `json:"introduction" binding:"required,max=500"`
	DistrictID   uint   `json:"district_id" binding:"required"`
}

// CreateItemRequest - выставление товара
type CreateItemRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=50"`
	Introduction string `json:"introduction" binding:"required,max=500"`
	Price        int    `json:"price" binding:"required,min=1"`
	Count        int    `json:"count" binding:"required,min=1"`
	Need18       bool   `json:"need_18"`
}

// UpdateItemRequest - изменение товара
type UpdateItemRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=50"`
	Introduction string `json:"introduction" binding:"required,max=500"`
	Price        int    `json:"price" binding:"required,min=1"`
	Count        int    `json:"count" binding:"min=0"`
	Need18       bool   `json:"need_18"`
}

// StoreDTO - магазин с товарами
type StoreDTO struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Introduction string    `json:"introduction"`
	UserID       uint      `json:"user_id"`
	DistrictID   uint      `json:"district_id"`
	Items        []ItemDTO `json:"items"`
}

// NewStoreDTO собирает DTO из модели.
func NewStoreDTO(store *models.Store) StoreDTO {
	return StoreDTO{
		ID:           store.ID,
		Name:         store.Name,
		Introduction: store.Introduction,
		UserID:       store.UserID,
		DistrictID:   store.DistrictID,
		Items:        NewItemDTOs(store.Items),
	}
}

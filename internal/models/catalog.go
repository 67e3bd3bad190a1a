package models

type City struct {
	BaseModel
	Name string `gorm:"type:varchar(10);not null" json:"name"`

	Districts []District `gorm:"foreignKey:CityID" json:"districts,omitempty"`
}

type District struct {
	BaseModel
	Name   string `gorm:"type:varchar(10);not null" json:"name"`
	CityID uint   `gorm:"not null" json:"city_id"`
}

// Store - витрина продавца, строго одна на пользователя.
type Store struct {
	BaseModel
	Name         string `gorm:"type:varchar(20);uniqueIndex;not null" json:"name"`
	Introduction string `gorm:"type:varchar(500);not null" json:"introduction"`
	UserID       uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	DistrictID   uint   `gorm:"not null" json:"district_id"`

	Items []Item `gorm:"foreignKey:StoreID" json:"items,omitempty"`
}

type Item struct {
	BaseModel
	Name         string `gorm:"type:varchar(50);not null" json:"name"`
	Introduction string `gorm:"type:varchar(500);not null" json:"introduction"`
	// Price в минимальных единицах валюты.
	Price         int     `gorm:"not null" json:"price"`
	Count         int     `gorm:"not null;default:0" json:"count"`
	Need18        bool    `gorm:"not null;default:false" json:"need_18"`
	StoreID       uint    `gorm:"not null;index" json:"store_id"`
	AverageStars  float64 `gorm:"not null;default:0" json:"average_stars"`
	CommentCounts int     `gorm:"not null;default:0" json:"comment_counts"`
}

type Comment struct {
	BaseModel
	Content string `gorm:"type:varchar(500);not null" json:"content"`
	Stars   int    `gorm:"not null" json:"stars"`
	UserID  uint   `gorm:"not null;uniqueIndex:idx_comments_user_item" json:"user_id"`
	ItemID  uint   `gorm:"not null;uniqueIndex:idx_comments_user_item" json:"item_id"`
}

type Ad struct {
	BaseModel
	Name   string `gorm:"type:varchar(50);not null" json:"name"`
	Image  string `gorm:"type:varchar(100);not null" json:"image"`
	ItemID uint   `gorm:"not null" json:"item_id"`
}

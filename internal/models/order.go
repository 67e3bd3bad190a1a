package models

type OrderStatus string

const (
	OrderStatusProcessing   OrderStatus = "processing"
	OrderStatusNotDelivered OrderStatus = "not_delivered"
	OrderStatusDelivered    OrderStatus = "delivered"
	OrderStatusArrived      OrderStatus = "arrived"
	OrderStatusDone         OrderStatus = "done"
)

type Order struct {
	BaseModel
	UserID uint        `gorm:"not null;index" json:"user_id"`
	ItemID uint        `gorm:"not null;index" json:"item_id"`
	Count  int         `gorm:"not null" json:"count"`
	Status OrderStatus `gorm:"type:varchar(20);default:'processing'" json:"status"`

	Item *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

type CartItem struct {
	BaseModel
	UserID uint `gorm:"not null;index" json:"user_id"`
	ItemID uint `gorm:"not null" json:"item_id"`
	Count  int  `gorm:"not null" json:"count"`

	Item *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

// WishlistItem - товар, отложенный "на следующий раз".
// На пару (пользователь, товар) не больше одной записи.
type WishlistItem struct {
	BaseModel
	UserID uint `gorm:"not null;uniqueIndex:idx_wishlist_user_item" json:"user_id"`
	ItemID uint `gorm:"not null;uniqueIndex:idx_wishlist_user_item" json:"item_id"`

	Item *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

package models

// UserReport - жалоба одного пользователя на другого.
type UserReport struct {
	BaseModel
	ReporterID     uint   `gorm:"not null;index" json:"reporter_id"`
	ReportedUserID uint   `gorm:"not null;index" json:"reported_user_id"`
	Reason         string `gorm:"type:varchar(500);not null" json:"reason"`
}

// ItemReport - жалоба на товар.
type ItemReport struct {
	BaseModel
	ReporterID     uint   `gorm:"not null;index" json:"reporter_id"`
	ReportedItemID uint   `gorm:"not null;index" json:"reported_item_id"`
	Reason         string `gorm:"type:varchar(500);not null" json:"reason"`
}

package dto

// AdminUserListQuery - выборка пользователей в админке
type AdminUserListQuery struct {
	OrderBy string `form:"order_by" binding:"omitempty,oneof=id is_admin username email birthday created_at"`
	Desc    bool   `form:"desc"`
	PageQuery
}

// UpdateUserFlagsRequest - смена админского флага пользователя.
// Указатель, чтобы отличать отсутствие поля от false.
type UpdateUserFlagsRequest struct {
	IsAdmin *bool `json:"is_admin" binding:"required"`
}

// CreateAdRequest - размещение рекламы
type CreateAdRequest struct {
	Name   string `json:"name" binding:"required,max=50"`
	Image  string `json:"image" binding:"required,max=100"`
	ItemID uint   `json:"item_id" binding:"required"`
}

// CreateCityRequest - добавление города
type CreateCityRequest struct {
	Name string `json:"name" binding:"required,max=10"`
}

// CreateDistrictRequest - добавление района
type CreateDistrictRequest struct {
	Name   string `json:"name" binding:"required,max=10"`
	CityID uint   `json:"city_id" binding:"required"`
}

package dto

import (
	"time"

	"fleamarket_backend/internal/models"
)

// ReportUserRequest - жалоба на пользователя
type ReportUserRequest struct {
	ReportedUserID uint   `json:"reported_user_id" binding:"required"`
	Reason         string `json:"reason" binding:"required,max=500"`
}

// ReportItemRequest - жалоба на товар
type ReportItemRequest struct {
	ReportedItemID uint   `json:"reported_item_id" binding:"required"`
	Reason         string `json:"reason" binding:"required,max=500"`
}

// UserReportDTO - жалоба на пользователя
type UserReportDTO struct {
	ID             uint      `json:"id"`
	ReporterID     uint      `json:"reporter_id"`
	ReportedUserID uint      `json:"reported_user_id"`
	Reason         string    `json:"reason"`
	CreatedAt      time.Time `json:"created_at"`
}

// ItemReportDTO - жалоба на товар
type ItemReportDTO struct {
	ID             uint      `json:"id"`
	ReporterID     uint      `json:"reporter_id"`
	ReportedItemID uint      `json:"reported_item_id"`
	Reason         string    `json:"reason"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewUserReportDTOs собирает DTO списком.
func NewUserReportDTOs(reports []models.UserReport) []UserReportDTO {
	out := make([]UserReportDTO, 0, len(reports))
	for _, r := range reports {
		out = append(out, UserReportDTO{
			ID:             r.ID,
			ReporterID:     r.ReporterID,
			ReportedUserID: r.ReportedUserID,
			Reason:         r.Reason,
			CreatedAt:      r.CreatedAt,
		})
	}
	return out
}

// NewItemReportDTOs собирает DTO списком.
func NewItemReportDTOs(reports []models.ItemReport) []ItemReportDTO {
	out := make([]ItemReportDTO, 0, len(reports))
	for _, r := range reports {
		out = append(out, ItemReportDTO{
			ID:             r.ID,
			ReporterID:     r.ReporterID,
			ReportedItemID: r.ReportedItemID,
			Reason:         r.Reason,
			CreatedAt:      r.CreatedAt,
		})
	}
	return out
}

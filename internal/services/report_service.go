package services

import (
	"errors"

	"fleamarket_backend/internal/models"
	"fleamarket_backend/internal/repositories"
	"fleamarket_backend/internal/services/dto"
	"fleamarket_backend/pkg/apperrors"
)

// ReportService - жалобы на пользователей и товары.
type ReportService struct {
	reports repositories.ReportRepository
	users   repositories.UserRepository
	items   repositories.ItemRepository
}

func NewReportService(
	reports repositories.ReportRepository,
	users repositories.UserRepository,
	items repositories.ItemRepository,
) *ReportService {
	return &ReportService{reports: reports, users: users, items: items}
}

// ReportUser - жалоба актора на другого пользователя.
func (s *ReportService) ReportUser(actor *models.User, req dto.ReportUserRequest) error {
	if req.ReportedUserID == actor.ID {
		return apperrors.NewBadRequestError("Cannot report yourself")
	}
	if _, err := s.users.FindByID(req.ReportedUserID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	report := &models.UserReport{
		ReporterID:     actor.ID,
		ReportedUserID: req.ReportedUserID,
		Reason:         req.Reason,
	}
	if err := s.reports.CreateUserReport(report); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ReportItem - жалоба актора на товар.
func (s *ReportService) ReportItem(actor *models.User, req dto.ReportItemRequest) error {
	if _, err := s.items.FindByID(req.ReportedItemID); err != nil {
		if errors.Is(err, repositories.ErrItemNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	report := &models.ItemReport{
		ReporterID:     actor.ID,
		ReportedItemID: req.ReportedItemID,
		Reason:         req.Reason,
	}
	if err := s.reports.CreateItemReport(report); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ListUserReports - жалобы на пользователей, новые первыми (админка).
func (s *ReportService) ListUserReports(page dto.PageQuery) (*dto.PageResponse, error) {
	page.Normalize()
	reports, total, err := s.reports.FindUserReports(page.Page, page.PageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.PageResponse{
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
		Items:    dto.NewUserReportDTOs(reports),
	}, nil
}

// ListItemReports - жалобы на товары, новые первыми (админка).
func (s *ReportService) ListItemReports(page dto.PageQuery) (*dto.PageResponse, error) {
	page.Normalize()
	reports, total, err := s.reports.FindItemReports(page.Page, page.PageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.PageResponse{
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
		Items:    dto.NewItemReportDTOs(reports),
	}, nil
}

// DismissUserReport закрывает жалобу на пользователя.
func (s *ReportService) DismissUserReport(reportID uint) error {
	if err := s.reports.DeleteUserReport(reportID); err != nil {
		if errors.Is(err, repositories.ErrReportNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// DismissItemReport закрывает жалобу на товар.
func (s *ReportService) DismissItemReport(reportID uint) error {
	if err := s.reports.DeleteItemReport(reportID); err != nil {
		if errors.Is(err, repositories.ErrReportNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

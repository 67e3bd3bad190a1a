package repositories

import (
	"errors"

	"fleamarket_backend/internal/models"

	"gorm.io/gorm"
)

var ErrReportNotFound = errors.New("report not found")

type ReportRepository interface {
	CreateUserReport(report *models.UserReport) error
	CreateItemReport(report *models.ItemReport) error
	FindUserReports(page, pageSize int) ([]models.UserReport, int64, error)
	FindItemReports(page, pageSize int) ([]models.ItemReport, int64, error)
	DeleteUserReport(reportID uint) error
	DeleteItemReport(reportID uint) error
}

type ReportRepositoryImpl struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &ReportRepositoryImpl{db: db}
}

func (r *ReportRepositoryImpl) CreateUserReport(report *models.UserReport) error {
	return r.db.Create(report).Error
}

func (r *ReportRepositoryImpl) CreateItemReport(report *models.ItemReport) error {
	return r.db.Create(report).Error
}

func (r *ReportRepositoryImpl) FindUserReports(page, pageSize int) ([]models.UserReport, int64, error) {
	dbQuery := r.db.Model(&models.UserReport{})

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	dbQuery = dbQuery.Order("id DESC")
	if pageSize > 0 {
		offset := (page - 1) * pageSize
		if offset < 0 {
			offset = 0
		}
		dbQuery = dbQuery.Offset(offset).Limit(pageSize)
	}

	var reports []models.UserReport
	err := dbQuery.Find(&reports).Error
	return reports, total, err
}

func (r *ReportRepositoryImpl) FindItemReports(page, pageSize int) ([]models.ItemReport, int64, error) {
	dbQuery := r.db.Model(&models.ItemReport{})

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	dbQuery = dbQuery.Order("id DESC")
	if pageSize > 0 {
		offset := (page - 1) * pageSize
		if offset < 0 {
			offset = 0
		}
		dbQuery = dbQuery.Offset(offset).Limit(pageSize)
	}

	var reports []models.ItemReport
	err := dbQuery.Find(&reports).Error
	return reports, total, err
}

func (r *ReportRepositoryImpl) DeleteUserReport(reportID uint) error {
	result := r.db.Where("id = ?", reportID).Delete(&models.UserReport{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}

func (r *ReportRepositoryImpl) DeleteItemReport(reportID uint) error {
	result := r.db.Where("id = ?", reportID).Delete(&models.ItemReport{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}

package services

import (
	"errors"

	"fleamarket_backend/internal/logger"
	"fleamarket_backend/internal/models"
	"fleamarket_backend/internal/repositories"
	"fleamarket_backend/internal/services/dto"
	"fleamarket_backend/pkg/apperrors"
)

// AdminService - админка: пользователи, реклама, справочник городов.
// Проверка прав выполняется до вызова (middleware), здесь только действия.
type AdminService struct {
	users  repositories.UserRepository
	ads    repositories.AdRepository
	cities repositories.CityRepository
	items  repositories.ItemRepository
}

func NewAdminService(
	users repositories.UserRepository,
	ads repositories.AdRepository,
	cities repositories.CityRepository,
	items repositories.ItemRepository,
) *AdminService {
	return &AdminService{users: users, ads: ads, cities: cities, items: items}
}

// ListUsers - постраничный список пользователей с сортировкой.
func (s *AdminService) ListUsers(query dto.AdminUserListQuery) (*dto.PageResponse, error) {
	query.Normalize()

	users, total, err := s.users.FindWithFilter(repositories.UserFilter{
		SortBy:   repositories.UserSortBy(query.OrderBy),
		Desc:     query.Desc,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserDTO(&users[i]))
	}
	return &dto.PageResponse{
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
		Items:    out,
	}, nil
}

// UpdateUserFlags меняет админский флаг пользователя. Остальные поля
// профиля не трогаем, ими распоряжается сам пользователь.
func (s *AdminService) UpdateUserFlags(userID uint, req dto.UpdateUserFlagsRequest) (*dto.UserDTO, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	user.IsAdmin = *req.IsAdmin
	if err := s.users.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user flags updated by admin", "user_id", userID, "is_admin", user.IsAdmin)
	out := dto.NewUserDTO(user)
	return &out, nil
}

// DeleteUser удаляет пользователя по решению администратора.
func (s *AdminService) DeleteUser(userID uint) error {
	if err := s.users.Delete(userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	logger.Info("user deleted by admin", "user_id", userID)
	return nil
}

// CreateAd размещает рекламное объявление на товар.
func (s *AdminService) CreateAd(req dto.CreateAdRequest) (*dto.AdDTO, error) {
	if _, err := s.items.FindByID(req.ItemID); err != nil {
		if errors.Is(err, repositories.ErrItemNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	ad := &models.Ad{Name: req.Name, Image: req.Image, ItemID: req.ItemID}
	if err := s.ads.Create(ad); err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := dto.AdDTO{ID: ad.ID, Name: ad.Name, Image: ad.Image, ItemID: ad.ItemID}
	return &out, nil
}

// DeleteAd снимает рекламу.
func (s *AdminService) DeleteAd(adID uint) error {
	if err := s.ads.Delete(adID); err != nil {
		if errors.Is(err, repositories.ErrAdNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// CreateCity добавляет город в справочник.
func (s *AdminService) CreateCity(req dto.CreateCityRequest) (*models.City, error) {
	city := &models.City{Name: req.Name}
	if err := s.cities.CreateCity(city); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return city, nil
}

// DeleteCity удаляет город вместе с районами.
func (s *AdminService) DeleteCity(cityID uint) error {
	if err := s.cities.DeleteCity(cityID); err != nil {
		if errors.Is(err, repositories.ErrCityNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// CreateDistrict добавляет район города.
func (s *AdminService) CreateDistrict(req dto.CreateDistrictRequest) (*models.District, error) {
	if _, err := s.cities.FindByID(req.CityID); err != nil {
		if errors.Is(err, repositories.ErrCityNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	district := &models.District{Name: req.Name, CityID: req.CityID}
	if err := s.cities.CreateDistrict(district); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return district, nil
}

// DeleteDistrict удаляет район.
func (s *AdminService) DeleteDistrict(districtID uint) error {
	if err := s.cities.DeleteDistrict(districtID); err != nil {
		if errors.Is(err, repositories.ErrDistrictNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

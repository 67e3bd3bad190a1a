package services

import (
	"errors"

	"fleamarket_backend/internal/auth"
	"fleamarket_backend/internal/models"
	"fleamarket_backend/internal/repositories"
	"fleamarket_backend/internal/services/dto"
	"fleamarket_backend/pkg/apperrors"
)

// StoreService - магазины и их товары. Один магазин на пользователя.
type StoreService struct {
	stores repositories.StoreRepository
	items  repositories.ItemRepository
	cities repositories.CityRepository
}

func NewStoreService(
	stores repositories.StoreRepository,
	items repositories.ItemRepository,
	cities repositories.CityRepository,
) *StoreService {
	return &StoreService{stores: stores, items: items, cities: cities}
}

// CreateStore открывает магазин актора.
func (s *StoreService) CreateStore(actor *models.User, req dto.CreateStoreRequest) (*dto.StoreDTO, error) {
	if _, err := s.stores.FindByUserID(actor.ID); err == nil {
		return nil, apperrors.ErrStoreAlreadyExists
	} else if !errors.Is(err, repositories.ErrStoreNotFound) {
		return nil, apperrors.InternalError(err)
	}

	taken, err := s.stores.ExistsWithName(req.Name)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.ErrStoreNameTaken
	}

	if _, err := s.cities.FindDistrictByID(req.DistrictID); err != nil {
		if errors.Is(err, repositories.ErrDistrictNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	store := &models.Store{
		Name:         req.Name,
		Introduction: req.Introduction,
		UserID:       actor.ID,
		DistrictID:   req.DistrictID,
	}
	if err := s.stores.Create(store); err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := dto.NewStoreDTO(store)
	return &out, nil
}

// GetStore - витрина магазина с товарами.
func (s *StoreService) GetStore(storeID uint) (*dto.StoreDTO, error) {
	store, err := s.stores.FindByID(storeID)
	if err != nil {
		if errors.Is(err, repositories.ErrStoreNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	out := dto.NewStoreDTO(store)
	return &out, nil
}

// MyStore - магазин актора.
func (s *StoreService) MyStore(actor *models.User) (*dto.StoreDTO, error) {
	store, err := s.stores.FindByUserID(actor.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrStoreNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	out := dto.NewStoreDTO(store)
	return &out, nil
}

// UpdateStore меняет данные магазина актора.
func (s *StoreService) UpdateStore(actor *models.User, storeID uint, req dto.UpdateStoreRequest) (*dto.StoreDTO, error) {
	store, err := s.stores.FindByID(storeID)
	if err != nil {
		if errors.Is(err, repositories.ErrStoreNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !auth.CanManageStore(actor, store) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	taken, err := s.stores.ExistsOtherWithName(store.ID, req.Name)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.ErrStoreNameTaken
	}

	if _, err := s.cities.FindDistrictByID(req.DistrictID); err != nil {
		if errors.Is(err, repositories.ErrDistrictNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	store.Name = req.Name
	store.Introduction = req.Introduction
	store.DistrictID = req.DistrictID
	if err := s.stores.Update(store); err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := dto.NewStoreDTO(store)
	return &out, nil
}

// DeleteStore закрывает магазин вместе с товарами.
func (s *StoreService) DeleteStore(actor *models.User, storeID uint) error {
	store, err := s.stores.FindByID(storeID)
	if err != nil {
		if errors.Is(err, repositories.ErrStoreNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if !auth.CanManageStore(actor, store) {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.stores.Delete(store.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// CreateItem выставляет товар в магазине актора.
func (s *StoreService) CreateItem(actor *models.User, req dto.CreateItemRequest) (*dto.ItemDTO, error) {
	store, err := s.stores.FindByUserID(actor.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrStoreNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	item := &models.Item{
		Name:         req.Name,
		Introduction: req.Introduction,
		Price:        req.Price,
		Count:        req.Count,
		Need18:       req.Need18,
		StoreID:      store.ID,
	}
	if err := s.items.Create(item); err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := dto.NewItemDTO(item)
	return &out, nil
}

// UpdateItem меняет товар, если он принадлежит магазину актора.
func (s *StoreService) UpdateItem(actor *models.User, itemID uint, req dto.UpdateItemRequest) (*dto.ItemDTO, error) {
	item, _, err := s.findManagedItem(actor, itemID)
	if err != nil {
		return nil, err
	}

	item.Name = req.Name
	item.Introduction = req.Introduction
	item.Price = req.Price
	item.Count = req.Count
	item.Need18 = req.Need18
	if err := s.items.Update(item); err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := dto.NewItemDTO(item)
	return &out, nil
}

// DeleteItem снимает товар с продажи.
func (s *StoreService) DeleteItem(actor *models.User, itemID uint) error {
	item, _, err := s.findManagedItem(actor, itemID)
	if err != nil {
		return err
	}

	if err := s.items.Delete(item.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *StoreService) findManagedItem(actor *models.User, itemID uint) (*models.Item, *models.Store, error) {
	item, err := s.items.FindByID(itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrItemNotFound) {
			return nil, nil, apperrors.ErrNotFound(err)
		}
		return nil, nil, apperrors.InternalError(err)
	}

	store, err := s.stores.FindByID(item.StoreID)
	if err != nil {
		if errors.Is(err, repositories.ErrStoreNotFound) {
			return nil, nil, apperrors.ErrNotFound(err)
		}
		return nil, nil, apperrors.InternalError(err)
	}

	if !auth.CanManageItem(actor, store, item) {
		return nil, nil, apperrors.ErrInsufficientPermissions
	}
	return item, store, nil
}

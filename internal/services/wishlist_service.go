package services

import (
	"errors"

	"fleamarket_backend/internal/models"
	"fleamarket_backend/internal/repositories"
	"fleamarket_backend/internal/services/dto"
	"fleamarket_backend/pkg/apperrors"
)

// WishlistService - отложенные товары пользователя.
type WishlistService struct {
	wishlist repositories.WishlistRepository
	items    repositories.ItemRepository
}

func NewWishlistService(wishlist repositories.WishlistRepository, items repositories.ItemRepository) *WishlistService {
	return &WishlistService{wishlist: wishlist, items: items}
}

// List - отложенные товары актора.
func (s *WishlistService) List(actor *models.User) ([]dto.WishlistItemDTO, error) {
	entries, err := s.wishlist.FindByUserID(actor.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewWishlistItemDTOs(entries), nil
}

// Add откладывает товар. Повторное откладывание того же товара не
// ошибка: возвращается уже существующая запись.
func (s *WishlistService) Add(actor *models.User, req dto.AddWishlistItemRequest) (*dto.WishlistItemDTO, error) {
	if _, err := s.items.FindByID(req.ItemID); err != nil {
		if errors.Is(err, repositories.ErrItemNotFound) {
			return nil, apperrors.NewBadRequestError("Item does not exist")
		}
		return nil, apperrors.InternalError(err)
	}

	existing, err := s.wishlist.FindByUserAndItem(actor.ID, req.ItemID)
	if err == nil {
		out := dto.NewWishlistItemDTO(existing)
		return &out, nil
	}
	if !errors.Is(err, repositories.ErrWishlistItemNotFound) {
		return nil, apperrors.InternalError(err)
	}

	entry := &models.WishlistItem{UserID: actor.ID, ItemID: req.ItemID}
	if err := s.wishlist.Create(entry); err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := dto.NewWishlistItemDTO(entry)
	return &out, nil
}

// Remove убирает запись; чужие записи недоступны.
func (s *WishlistService) Remove(actor *models.User, entryID uint) error {
	if err := s.wishlist.DeleteOwned(actor.ID, entryID); err != nil {
		if errors.Is(err, repositories.ErrWishlistItemNotFound) {
			return apperrors.NewBadRequestError("Wishlist entry not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

package services

import (
	"errors"
	"math/rand"
	"sort"
	"sync"

	"fleamarket_backend/internal/models"
	"fleamarket_backend/internal/repositories"
	"fleamarket_backend/internal/services/dto"
	"fleamarket_backend/pkg/apperrors"
)

// Размеры пулов и выборок витрины.
const (
	showcasePoolSize = 1000
	showcaseSize     = 20
	adPoolSize       = 10000
	adShowcaseSize   = 20
	commentPageLimit = 100
)

// CatalogService - выборки каталога: поиск, горячее, лучшее, реклама,
// отзывы и справочник городов. Источник случайности инжектируется,
// тесты подставляют детерминированный. rand.Rand не потокобезопасен,
// обращения к нему идут под мьютексом: хендлеры гоняют выборки
// конкурентно.
type CatalogService struct {
	items    repositories.ItemRepository
	ads      repositories.AdRepository
	comments repositories.CommentRepository
	cities   repositories.CityRepository

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewCatalogService(
	items repositories.ItemRepository,
	ads repositories.AdRepository,
	comments repositories.CommentRepository,
	cities repositories.CityRepository,
	rng *rand.Rand,
) *CatalogService {
	return &CatalogService{
		items:    items,
		ads:      ads,
		comments: comments,
		cities:   cities,
		rng:      rng,
	}
}

// ListItems - постраничный каталог с фильтрами и сортировкой.
func (s *CatalogService) ListItems(query dto.ItemListQuery) (*dto.PageResponse, error) {
	query.Normalize()

	items, total, err := s.items.Query(repositories.ItemQuery{
		Name:     query.Name,
		Need18:   query.Need18,
		OrderBy:  repositories.ItemSortBy(query.OrderBy),
		Desc:     query.Desc,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PageResponse{
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
		Items:    dto.NewItemDTOs(items),
	}, nil
}

// GetItem - карточка товара.
func (s *CatalogService) GetItem(itemID uint) (*dto.ItemDTO, error) {
	item, err := s.items.FindByID(itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrItemNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	out := dto.NewItemDTO(item)
	return &out, nil
}

// HotItems - случайные 20 из пула, итог отсортирован по id по возрастанию.
func (s *CatalogService) HotItems() ([]dto.ItemDTO, error) {
	pool, err := s.items.HotPool(showcasePoolSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	picked := s.sampleItems(pool, showcaseSize)
	sort.Slice(picked, func(i, j int) bool { return picked[i].ID < picked[j].ID })
	return dto.NewItemDTOs(picked), nil
}

// BestItems - случайные 20 из пула, итог отсортирован по id по убыванию.
func (s *CatalogService) BestItems() ([]dto.ItemDTO, error) {
	pool, err := s.items.BestPool(showcasePoolSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	picked := s.sampleItems(pool, showcaseSize)
	sort.Slice(picked, func(i, j int) bool { return picked[i].ID > picked[j].ID })
	return dto.NewItemDTOs(picked), nil
}

// ListAds - случайные 20 из последних 10000 объявлений.
func (s *CatalogService) ListAds() ([]dto.AdDTO, error) {
	pool, err := s.ads.LatestPool(adPoolSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.rngMu.Lock()
	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	s.rngMu.Unlock()
	n := adShowcaseSize
	if len(pool) < n {
		n = len(pool)
	}
	return dto.NewAdDTOs(pool[:n]), nil
}

// ListComments - отзывы товара, новые первыми.
func (s *CatalogService) ListComments(itemID uint, page dto.PageQuery) (*dto.PageResponse, error) {
	page.Normalize()
	if page.PageSize > commentPageLimit {
		page.PageSize = commentPageLimit
	}

	if _, err := s.items.FindByID(itemID); err != nil {
		if errors.Is(err, repositories.ErrItemNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	comments, total, err := s.comments.FindByItemID(itemID, page.Page, page.PageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PageResponse{
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
		Items:    dto.NewCommentDTOs(comments),
	}, nil
}

// UpsertComment - один отзыв на пару (пользователь, товар); повторный
// отзыв перезаписывает прежний.
func (s *CatalogService) UpsertComment(actor *models.User, itemID uint, req dto.CommentRequest) error {
	if _, err := s.items.FindByID(itemID); err != nil {
		if errors.Is(err, repositories.ErrItemNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	comment := &models.Comment{
		Content: req.Content,
		Stars:   req.Stars,
		UserID:  actor.ID,
		ItemID:  itemID,
	}
	if err := s.comments.Upsert(comment); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Cities - справочник городов с районами.
func (s *CatalogService) Cities() ([]models.City, error) {
	cities, err := s.cities.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return cities, nil
}

// Districts - районы одного города.
func (s *CatalogService) Districts(cityID uint) ([]models.District, error) {
	if _, err := s.cities.FindByID(cityID); err != nil {
		if errors.Is(err, repositories.ErrCityNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	districts, err := s.cities.FindDistrictsByCityID(cityID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return districts, nil
}

// sampleItems выбирает size случайных элементов пула без повторов.
// Пул меньше size возвращается целиком.
func (s *CatalogService) sampleItems(pool []models.Item, size int) []models.Item {
	if len(pool) <= size {
		out := make([]models.Item, len(pool))
		copy(out, pool)
		return out
	}

	s.rngMu.Lock()
	perm := s.rng.Perm(len(pool))
	s.rngMu.Unlock()

	picked := make([]models.Item, 0, size)
	for _, idx := range perm[:size] {
		picked = append(picked, pool[idx])
	}
	return picked
}

package repositories

import (
	"errors"
	"strings"

	"fleamarket_backend/internal/models"

	"gorm.io/gorm"
)

var ErrItemNotFound = errors.New("item not found")

// ItemSortBy - ключи сортировки каталога.
type ItemSortBy string

const (
	ItemSortByID      ItemSortBy = "id"
	ItemSortByName    ItemSortBy = "name"
	ItemSortByStoreID ItemSortBy = "store_id"
	ItemSortByPrice   ItemSortBy = "price"
	// Hottest сортирует по числу комментариев.
	ItemSortByHottest ItemSortBy = "hottest"
	// Best сортирует по среднему рейтингу.
	ItemSortByBest ItemSortBy = "best"
)

// ItemQuery - параметры выборки каталога. Отсутствующие параметры
// не ошибка: применяются значения по умолчанию.
type ItemQuery struct {
	// Name разбивается по пробелам; товар подходит, если имя содержит
	// ЛЮБОЙ из токенов (OR, чувствительно к регистру).
	Name string
	// Need18: nil - только need_18=false; задан - need_18=false OR need_18=<значение>.
	// Для false это дублирует невыставленный фильтр, поведение сохранено намеренно.
	Need18   *bool
	OrderBy  ItemSortBy
	Desc     bool
	Page     int
	PageSize int
}

type ItemRepository interface {
	FindByID(id uint) (*models.Item, error)
	FindByStoreID(storeID uint) ([]models.Item, error)
	Create(item *models.Item) error
	Update(item *models.Item) error
	Delete(itemID uint) error
	Query(query ItemQuery) ([]models.Item, int64, error)
	// HotPool - товары, присоединенные к заказам, по (количество в заказе ASC, id ASC),
	// не более limit строк. Пул наименее заказываемых: унаследовано от
	// исходной системы как есть.
	HotPool(limit int) ([]models.Item, error)
	// BestPool - первые limit товаров по id ASC.
	BestPool(limit int) ([]models.Item, error)
	// DecrementStock атомарно списывает count со склада; если остатка не
	// хватает, ничего не меняет и возвращает false.
	DecrementStock(tx *gorm.DB, itemID uint, count int) (bool, error)
}

type ItemRepositoryImpl struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &ItemRepositoryImpl{db: db}
}

func (r *ItemRepositoryImpl) FindByID(id uint) (*models.Item, error) {
	var item models.Item
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepositoryImpl) FindByStoreID(storeID uint) ([]models.Item, error) {
	var items []models.Item
	err := r.db.Where("store_id = ?", storeID).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *ItemRepositoryImpl) Create(item *models.Item) error {
	return r.db.Create(item).Error
}

func (r *ItemRepositoryImpl) Update(item *models.Item) error {
	result := r.db.Model(item).Updates(map[string]interface{}{
		"name":         item.Name,
		"introduction": item.Introduction,
		"price":        item.Price,
		"count":        item.Count,
		"need_18":      item.Need18,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *ItemRepositoryImpl) Delete(itemID uint) error {
	result := r.db.Where("id = ?", itemID).Delete(&models.Item{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *ItemRepositoryImpl) Query(query ItemQuery) ([]models.Item, int64, error) {
	dbQuery := r.db.Model(&models.Item{})

	clause, args := BuildItemNeed18Filter(query.Need18)
	dbQuery = dbQuery.Where(clause, args...)

	if nameClause, nameArgs := BuildItemNameFilter(query.Name); nameClause != "" {
		dbQuery = dbQuery.Where(nameClause, nameArgs...)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	for _, order := range BuildItemOrder(query.OrderBy, query.Desc) {
		dbQuery = dbQuery.Order(order)
	}

	if query.PageSize > 0 {
		offset := (query.Page - 1) * query.PageSize
		if offset < 0 {
			offset = 0
		}
		dbQuery = dbQuery.Offset(offset).Limit(query.PageSize)
	}

	var items []models.Item
	err := dbQuery.Find(&items).Error
	return items, total, err
}

func (r *ItemRepositoryImpl) HotPool(limit int) ([]models.Item, error) {
	var items []models.Item
	err := r.db.Model(&models.Item{}).
		Joins("LEFT JOIN orders ON orders.item_id = items.id").
		Order("orders.count ASC").
		Order("items.id ASC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *ItemRepositoryImpl) BestPool(limit int) ([]models.Item, error) {
	var items []models.Item
	err := r.db.Order("id ASC").Limit(limit).Find(&items).Error
	return items, err
}

func (r *ItemRepositoryImpl) DecrementStock(tx *gorm.DB, itemID uint, count int) (bool, error) {
	// Условный UPDATE закрывает гонку read-then-decrement исходной системы.
	result := tx.Model(&models.Item{}).
		Where("id = ? AND count >= ?", itemID, count).
		Update("count", gorm.Expr("count - ?", count))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// BuildItemNeed18Filter строит фильтр возрастного ограничения.
// Невыставленный параметр - только need_18=false; выставленный -
// need_18=false OR need_18=<значение>. Для false второе условие
// дублирует первое, поведение сохранено намеренно.
func BuildItemNeed18Filter(need18 *bool) (string, []interface{}) {
	if need18 == nil {
		return "need_18 = ?", []interface{}{false}
	}
	return "need_18 = ? OR need_18 = ?", []interface{}{false, *need18}
}

// BuildItemNameFilter разбивает поисковую строку на токены и строит
// OR из LIKE-подстрок. Пустая строка - фильтра нет.
func BuildItemNameFilter(name string) (string, []interface{}) {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return "", nil
	}

	clauses := make([]string, 0, len(tokens))
	args := make([]interface{}, 0, len(tokens))
	for _, token := range tokens {
		clauses = append(clauses, "name LIKE ?")
		args = append(args, "%"+token+"%")
	}
	return strings.Join(clauses, " OR "), args
}

// BuildItemOrder возвращает ORDER BY клаузы каталога.
// Для любого ключа кроме голого id добавляется вторичная сортировка по id
// в направлении, ПРОТИВОПОЛОЖНОМ основному: асимметрия унаследована от
// исходной системы и закреплена тестами.
// Без ключа - сортировка по id согласно флагу desc.
func BuildItemOrder(sortBy ItemSortBy, desc bool) []string {
	dir := "ASC"
	tieDir := "DESC"
	if desc {
		dir = "DESC"
		tieDir = "ASC"
	}

	switch sortBy {
	case ItemSortByID:
		return []string{"id " + dir}
	case ItemSortByName:
		return []string{"name " + dir, "id " + tieDir}
	case ItemSortByStoreID:
		return []string{"store_id " + dir, "id " + tieDir}
	case ItemSortByPrice:
		return []string{"price " + dir, "id " + tieDir}
	case ItemSortByHottest:
		return []string{"comment_counts " + dir, "id " + tieDir}
	case ItemSortByBest:
		return []string{"average_stars " + dir, "id " + tieDir}
	default:
		return []string{"id " + dir}
	}
}

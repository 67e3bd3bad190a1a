package auth

import (
	"fleamarket_backend/internal/models"
)

// Явные проверки прав (актор, ресурс) -> да/нет.
// Хендлеры не лазают по ORM-связям, решение принимается здесь.

// IsAdmin проверяет является ли пользователь администратором
func IsAdmin(user *models.User) bool {
	return user != nil && user.IsAdmin
}

// CanManageStore - владелец магазина или админ.
func CanManageStore(actor *models.User, store *models.Store) bool {
	if actor == nil || store == nil {
		return false
	}
	if actor.IsAdmin {
		return true
	}
	return store.UserID == actor.ID
}

// CanManageItem - товар принадлежит магазину актора, либо актор админ.
func CanManageItem(actor *models.User, store *models.Store, item *models.Item) bool {
	if item == nil || !CanManageStore(actor, store) {
		return false
	}
	return item.StoreID == store.ID
}

// CanAccessOrder - заказ принадлежит актору, либо актор админ.
func CanAccessOrder(actor *models.User, order *models.Order) bool {
	if actor == nil || order == nil {
		return false
	}
	if actor.IsAdmin {
		return true
	}
	return order.UserID == actor.ID
}

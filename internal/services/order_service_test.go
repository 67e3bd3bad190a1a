package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleamarket_backend/internal/models"
	"fleamarket_backend/internal/repositories"
	"fleamarket_backend/internal/services/dto"
	"fleamarket_backend/pkg/apperrors"
)

// Фейковый репозиторий заказов поверх fakeItemRepo: списание остатка
// повторяет контракт CreateWithStockDecrement.
type fakeOrderRepo struct {
	orders []models.Order
	nextID uint
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{nextID: 1}
}

func (f *fakeOrderRepo) FindByID(id uint) (*models.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			copied := o
			return &copied, nil
		}
	}
	return nil, repositories.ErrOrderNotFound
}

func (f *fakeOrderRepo) FindByUserID(userID uint) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) CreateWithStockDecrement(order *models.Order, items repositories.ItemRepository) (bool, error) {
	ok, err := items.DecrementStock(nil, order.ItemID, order.Count)
	if err != nil || !ok {
		return false, err
	}
	order.ID = f.nextID
	f.nextID++
	f.orders = append(f.orders, *order)
	return true, nil
}

func (f *fakeOrderRepo) UpdateStatus(orderID uint, status models.OrderStatus) error {
	for i, o := range f.orders {
		if o.ID == orderID {
			f.orders[i].Status = status
			return nil
		}
	}
	return repositories.ErrOrderNotFound
}

func newTestOrderService(t *testing.T) (*OrderService, *fakeItemRepo, *models.User) {
	t.Helper()

	items := newFakeItemRepo()
	require.NoError(t, items.Create(&models.Item{Name: "bike", Count: 3, StoreID: 1}))

	svc := NewOrderService(newFakeOrderRepo(), newFakeCartItemRepo(), items)

	actor := &models.User{}
	actor.ID = 7
	return svc, items, actor
}

func TestOrderService_PlaceOrderDecrementsStock(t *testing.T) {
	svc, items, actor := newTestOrderService(t)

	order, err := svc.PlaceOrder(actor, dto.PlaceOrderRequest{ItemID: 1, Count: 2})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusProcessing, order.Status)

	item, err := items.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Count)
}

func TestOrderService_PlaceOrderNotEnoughStock(t *testing.T) {
	svc, items, actor := newTestOrderService(t)

	_, err := svc.PlaceOrder(actor, dto.PlaceOrderRequest{ItemID: 1, Count: 5})
	assert.ErrorIs(t, err, apperrors.ErrNotEnoughStock)

	// Остаток не тронут, заказ не создан.
	item, err := items.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, 3, item.Count)

	orders, err := svc.ListOrders(actor)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_GetOrderForeignOrder(t *testing.T) {
	svc, _, actor := newTestOrderService(t)

	order, err := svc.PlaceOrder(actor, dto.PlaceOrderRequest{ItemID: 1, Count: 1})
	require.NoError(t, err)

	stranger := &models.User{}
	stranger.ID = 8
	_, err = svc.GetOrder(stranger, order.ID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	// Админ видит любой заказ.
	admin := &models.User{IsAdmin: true}
	admin.ID = 9
	got, err := svc.GetOrder(admin, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestOrderService_CartMergesRepeatedAdds(t *testing.T) {
	svc, _, actor := newTestOrderService(t)

	require.NoError(t, svc.AddToCart(actor, dto.AddCartItemRequest{ItemID: 1, Count: 1}))
	require.NoError(t, svc.AddToCart(actor, dto.AddCartItemRequest{ItemID: 1, Count: 2}))

	cart, err := svc.ListCart(actor)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].Count)
}

func TestOrderService_CheckoutCartItem(t *testing.T) {
	svc, items, actor := newTestOrderService(t)

	require.NoError(t, svc.AddToCart(actor, dto.AddCartItemRequest{ItemID: 1, Count: 2}))
	cart, err := svc.ListCart(actor)
	require.NoError(t, err)
	require.Len(t, cart, 1)

	order, err := svc.CheckoutCartItem(actor, cart[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 2, order.Count)

	// Корзина пуста, остаток списан.
	cart, err = svc.ListCart(actor)
	require.NoError(t, err)
	assert.Empty(t, cart)

	item, err := items.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Count)
}

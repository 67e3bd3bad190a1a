package services

import (
	"errors"

	"fleamarket_backend/internal/auth"
	"fleamarket_backend/internal/logger"
	"fleamarket_backend/internal/models"
	"fleamarket_backend/internal/repositories"
	"fleamarket_backend/internal/services/dto"
	"fleamarket_backend/pkg/apperrors"
)

// OrderService - заказы и корзина.
type OrderService struct {
	orders    repositories.OrderRepository
	cartItems repositories.CartItemRepository
	items     repositories.ItemRepository
}

func NewOrderService(
	orders repositories.OrderRepository,
	cartItems repositories.CartItemRepository,
	items repositories.ItemRepository,
) *OrderService {
	return &OrderService{orders: orders, cartItems: cartItems, items: items}
}

// PlaceOrder оформляет заказ, атомарно списывая остаток.
// Остатка не хватило - заказ не создается.
func (s *OrderService) PlaceOrder(actor *models.User, req dto.PlaceOrderRequest) (*dto.OrderDTO, error) {
	if _, err := s.items.FindByID(req.ItemID); err != nil {
		if errors.Is(err, repositories.ErrItemNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	order := &models.Order{
		UserID: actor.ID,
		ItemID: req.ItemID,
		Count:  req.Count,
		Status: models.OrderStatusProcessing,
	}
	ok, err := s.orders.CreateWithStockDecrement(order, s.items)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !ok {
		return nil, apperrors.ErrNotEnoughStock
	}

	logger.Info("order placed", "order_id", order.ID, "user_id", actor.ID, "item_id", order.ItemID)

	out := dto.NewOrderDTO(order)
	return &out, nil
}

// ListOrders - заказы актора, новые первыми.
func (s *OrderService) ListOrders(actor *models.User) ([]dto.OrderDTO, error) {
	orders, err := s.orders.FindByUserID(actor.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewOrderDTOs(orders), nil
}

// GetOrder - заказ, доступный актору.
func (s *OrderService) GetOrder(actor *models.User, orderID uint) (*dto.OrderDTO, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !auth.CanAccessOrder(actor, order) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	out := dto.NewOrderDTO(order)
	return &out, nil
}

// UpdateOrderStatus меняет статус заказа, доступного актору.
func (s *OrderService) UpdateOrderStatus(actor *models.User, orderID uint, status models.OrderStatus) error {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if !auth.CanAccessOrder(actor, order) {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.orders.UpdateStatus(order.ID, status); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// AddToCart кладет товар в корзину; повторное добавление суммирует количество.
func (s *OrderService) AddToCart(actor *models.User, req dto.AddCartItemRequest) error {
	if _, err := s.items.FindByID(req.ItemID); err != nil {
		if errors.Is(err, repositories.ErrItemNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	existing, err := s.cartItems.FindByUserAndItem(actor.ID, req.ItemID)
	switch {
	case err == nil:
		if err := s.cartItems.UpdateCount(existing.ID, existing.Count+req.Count); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	case errors.Is(err, repositories.ErrCartItemNotFound):
		cartItem := &models.CartItem{
			UserID: actor.ID,
			ItemID: req.ItemID,
			Count:  req.Count,
		}
		if err := s.cartItems.Create(cartItem); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	default:
		return apperrors.InternalError(err)
	}
}

// ListCart - корзина актора.
func (s *OrderService) ListCart(actor *models.User) ([]dto.CartItemDTO, error) {
	cartItems, err := s.cartItems.FindByUserID(actor.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewCartItemDTOs(cartItems), nil
}

// UpdateCartItem меняет количество позиции корзины актора.
func (s *OrderService) UpdateCartItem(actor *models.User, cartItemID uint, count int) error {
	cartItem, err := s.findOwnCartItem(actor, cartItemID)
	if err != nil {
		return err
	}
	if err := s.cartItems.UpdateCount(cartItem.ID, count); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// RemoveCartItem убирает позицию из корзины актора.
func (s *OrderService) RemoveCartItem(actor *models.User, cartItemID uint) error {
	cartItem, err := s.findOwnCartItem(actor, cartItemID)
	if err != nil {
		return err
	}
	if err := s.cartItems.Delete(cartItem.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// CheckoutCartItem превращает позицию корзины в заказ и убирает ее из корзины.
func (s *OrderService) CheckoutCartItem(actor *models.User, cartItemID uint) (*dto.OrderDTO, error) {
	cartItem, err := s.findOwnCartItem(actor, cartItemID)
	if err != nil {
		return nil, err
	}

	order, err := s.PlaceOrder(actor, dto.PlaceOrderRequest{
		ItemID: cartItem.ItemID,
		Count:  cartItem.Count,
	})
	if err != nil {
		return nil, err
	}

	if err := s.cartItems.Delete(cartItem.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return order, nil
}

func (s *OrderService) findOwnCartItem(actor *models.User, cartItemID uint) (*models.CartItem, error) {
	cartItem, err := s.cartItems.FindByID(cartItemID)
	if err != nil {
		if errors.Is(err, repositories.ErrCartItemNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if cartItem.UserID != actor.ID && !auth.IsAdmin(actor) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return cartItem, nil
}

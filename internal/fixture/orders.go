package fixture

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"wokstore/internal/domain"
	"wokstore/internal/service"
)

const deliveryFee = 5.0

// OrderSource keeps orders in memory and computes totals the same way the
// real orders service does: subtotal from the item lines, delivery fee only
// for delivery orders.
type OrderSource struct {
	mu     sync.Mutex
	orders []domain.Order
}

func NewOrderSource() *OrderSource {
	return &OrderSource{}
}

func (s *OrderSource) CreateOrder(ctx context.Context, data domain.CreateOrderData) (*domain.Order, error) {
	simulateLatency(ctx)

	subtotal := 0.0
	for _, item := range data.Items {
		subtotal += item.Subtotal
	}

	fee := 0.0
	if data.DeliveryType == domain.DeliveryTypeDelivery {
		fee = deliveryFee
	}

	order := domain.Order{
		ID:              uuid.NewString(),
		UserID:          data.UserID,
		StoreID:         data.StoreID,
		Items:           data.Items,
		Subtotal:        subtotal,
		DeliveryFee:     fee,
		Total:           subtotal + fee,
		DeliveryType:    data.DeliveryType,
		DeliveryAddress: data.DeliveryAddress,
		Status:          domain.OrderStatusPending,
		PaymentMethod:   data.PaymentMethod,
		Notes:           data.Notes,
		CreatedAt:       time.Now(),
	}

	s.mu.Lock()
	s.orders = append(s.orders, order)
	s.mu.Unlock()

	return &order, nil
}

func (s *OrderSource) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	simulateLatency(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, order := range s.orders {
		if order.ID == id {
			found := order
			return &found, nil
		}
	}
	return nil, service.ErrNotFound
}

func (s *OrderSource) ListUserOrders(ctx context.Context, userID string, page, limit int) ([]domain.Order, error) {
	simulateLatency(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []domain.Order
	for _, order := range s.orders {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	start := (page - 1) * limit
	if start >= len(orders) {
		return nil, nil
	}
	end := start + limit
	if end > len(orders) {
		end = len(orders)
	}
	return orders[start:end], nil
}

func (s *OrderSource) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	simulateLatency(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			s.orders[i].UpdatedAt = time.Now()
			found := s.orders[i]
			return &found, nil
		}
	}
	return nil, service.ErrNotFound
}

func (s *OrderSource) CancelOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.UpdateOrderStatus(ctx, id, domain.OrderStatusCancelled)
}

var _ service.OrderSource = (*OrderSource)(nil)

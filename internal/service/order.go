package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wokstore/internal/domain"
)

var ErrInvalidOrder = errors.New("invalid order payload")

// OrderService wraps an OrderSource with event publishing and pickup QR
// generation. The publisher is optional; a nil publisher skips events.
type OrderService struct {
	source    OrderSource
	publisher OrderPublisher
	qrEncoder QRGenerator
}

func NewOrderService(source OrderSource, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{source: source, publisher: publisher, qrEncoder: qr}
}

func (s *OrderService) Place(ctx context.Context, data domain.CreateOrderData) (*domain.Order, error) {
	if data.StoreID == "" || len(data.Items) == 0 {
		return nil, ErrInvalidOrder
	}

	order, err := s.source.CreateOrder(ctx, data)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "order_created", order)
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.source.GetOrder(ctx, id)
}

func (s *OrderService) ListForUser(ctx context.Context, userID string, page, limit int) ([]domain.Order, error) {
	return s.source.ListUserOrders(ctx, userID, page, limit)
}

func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.source.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "order_status_changed", order)
	return order, nil
}

func (s *OrderService) Cancel(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.source.CancelOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "order_cancelled", order)
	return order, nil
}

// QRCode generates the pickup QR for an existing order.
func (s *OrderService) QRCode(ctx context.Context, id string) ([]byte, error) {
	if _, err := s.source.GetOrder(ctx, id); err != nil {
		return nil, err
	}
	return s.qrEncoder.Generate(id)
}

func (s *OrderService) QRLink(id string) string {
	return fmt.Sprintf("/api/orders/%s/qrcode", id)
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
		Type:      eventType,
		OrderID:   order.ID,
		UserID:    order.UserID,
		StoreID:   order.StoreID,
		Total:     order.Total,
		Status:    string(order.Status),
		Timestamp: time.Now(),
	})
}

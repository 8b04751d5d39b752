package remote

import (
	"context"
	"fmt"
	"net/http"

	"wokstore/internal/domain"
	"wokstore/internal/service"
)

type OrderSource struct {
	client *Client
}

func NewOrderSource(client *Client) *OrderSource {
	return &OrderSource{client: client}
}

func (s *OrderSource) CreateOrder(ctx context.Context, data domain.CreateOrderData) (*domain.Order, error) {
	var order domain.Order
	if err := s.client.do(ctx, http.MethodPost, "/orders", data, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderSource) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	if err := s.client.do(ctx, http.MethodGet, "/orders/"+id, nil, &order); err != nil {
		if IsStatus(err, http.StatusNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (s *OrderSource) ListUserOrders(ctx context.Context, userID string, page, limit int) ([]domain.Order, error) {
	path := fmt.Sprintf("/orders?user_id=%s&page=%d&limit=%d", userID, page, limit)
	var orders []domain.Order
	if err := s.client.do(ctx, http.MethodGet, path, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderSource) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	payload := map[string]domain.OrderStatus{"status": status}
	var order domain.Order
	if err := s.client.do(ctx, http.MethodPatch, "/orders/"+id+"/status", payload, &order); err != nil {
		if IsStatus(err, http.StatusNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (s *OrderSource) CancelOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.UpdateOrderStatus(ctx, id, domain.OrderStatusCancelled)
}

var _ service.OrderSource = (*OrderSource)(nil)

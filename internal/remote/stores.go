package remote

import (
	"context"
	"net/http"
	"net/url"

	"wokstore/internal/domain"
	"wokstore/internal/service"
)

type StoreSource struct {
	client *Client
}

func NewStoreSource(client *Client) *StoreSource {
	return &StoreSource{client: client}
}

func (s *StoreSource) ListStores(ctx context.Context, filters domain.StoreFilters) ([]domain.Store, error) {
	query := url.Values{}
	if filters.City != "" {
		query.Set("city", filters.City)
	}
	if filters.District != "" {
		query.Set("district", filters.District)
	}
	if filters.DeliveryType != "" {
		query.Set("delivery_type", string(filters.DeliveryType))
	}

	path := "/stores"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var stores []domain.Store
	if err := s.client.do(ctx, http.MethodGet, path, nil, &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

func (s *StoreSource) GetStore(ctx context.Context, id string) (*domain.Store, error) {
	var store domain.Store
	if err := s.client.do(ctx, http.MethodGet, "/stores/"+id, nil, &store); err != nil {
		if IsStatus(err, http.StatusNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &store, nil
}

// DeliveryOptions is static client-side data in both implementations.
func (s *StoreSource) DeliveryOptions() []domain.DeliveryOption {
	return []domain.DeliveryOption{
		{Type: domain.DeliveryTypeDelivery, Label: "Delivery", Description: "Entrega a domicilio"},
		{Type: domain.DeliveryTypePickup, Label: "Retiro en Tienda", Description: "Recoge tu pedido en local"},
	}
}

var _ service.StoreSource = (*StoreSource)(nil)

package fixture

import (
	"context"

	"wokstore/internal/domain"
	"wokstore/internal/service"
)

var fixtureStores = []domain.Store{
	{
		ID: "1", Name: "Wokstore Miraflores",
		Address: "Av. Larco 812", District: "Miraflores", City: "Lima",
		Phone:         "612-8001",
		DeliveryTypes: []domain.DeliveryType{domain.DeliveryTypeDelivery, domain.DeliveryTypePickup},
		IsActive:      true,
	},
	{
		ID: "2", Name: "Wokstore San Isidro",
		Address: "Av. Conquistadores 145", District: "San Isidro", City: "Lima",
		Phone:         "612-8002",
		DeliveryTypes: []domain.DeliveryType{domain.DeliveryTypeDelivery, domain.DeliveryTypePickup},
		IsActive:      true,
	},
	{
		ID: "3", Name: "Wokstore Surco",
		Address: "Av. Primavera 1050", District: "Santiago de Surco", City: "Lima",
		Phone:         "612-8003",
		DeliveryTypes: []domain.DeliveryType{domain.DeliveryTypePickup},
		IsActive:      true,
	},
	{
		ID: "4", Name: "Wokstore Arequipa Centro",
		Address: "Calle Mercaderes 300", District: "Cercado", City: "Arequipa",
		Phone:         "054-280100",
		DeliveryTypes: []domain.DeliveryType{domain.DeliveryTypeDelivery},
		IsActive:      false,
	},
}

var deliveryOptions = []domain.DeliveryOption{
	{Type: domain.DeliveryTypeDelivery, Label: "Delivery", Description: "Entrega a domicilio"},
	{Type: domain.DeliveryTypePickup, Label: "Retiro en Tienda", Description: "Recoge tu pedido en local"},
}

type StoreSource struct{}

func NewStoreSource() *StoreSource {
	return &StoreSource{}
}

func (s *StoreSource) ListStores(ctx context.Context, filters domain.StoreFilters) ([]domain.Store, error) {
	simulateLatency(ctx)

	var stores []domain.Store
	for _, store := range fixtureStores {
		if !store.IsActive {
			continue
		}
		if filters.City != "" && store.City != filters.City {
			continue
		}
		if filters.District != "" && store.District != filters.District {
			continue
		}
		if filters.DeliveryType != "" && !supportsDelivery(store, filters.DeliveryType) {
			continue
		}
		stores = append(stores, store)
	}
	return stores, nil
}

func supportsDelivery(store domain.Store, deliveryType domain.DeliveryType) bool {
	for _, t := range store.DeliveryTypes {
		if t == deliveryType {
			return true
		}
	}
	return false
}

func (s *StoreSource) GetStore(ctx context.Context, id string) (*domain.Store, error) {
	simulateLatency(ctx)

	for _, store := range fixtureStores {
		if store.ID == id {
			found := store
			return &found, nil
		}
	}
	return nil, service.ErrNotFound
}

func (s *StoreSource) DeliveryOptions() []domain.DeliveryOption {
	return deliveryOptions
}

var _ service.StoreSource = (*StoreSource)(nil)

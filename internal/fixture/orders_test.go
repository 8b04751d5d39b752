package fixture

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wokstore/internal/domain"
	"wokstore/internal/service"
)

func orderData(deliveryType domain.DeliveryType) domain.CreateOrderData {
	return domain.CreateOrderData{
		UserID:       "1",
		StoreID:      "1",
		DeliveryType: deliveryType,
		Items: []domain.OrderItem{
			{ProductID: "1", ProductName: "Arroz Chaufa", Quantity: 2, Price: 18.90, Subtotal: 37.80},
			{ProductID: "6", ProductName: "Bebida 500ml", Quantity: 1, Price: 5.50, Subtotal: 5.50},
		},
	}
}

func TestOrdersCreateDeliveryAddsFee(t *testing.T) {
	source := NewOrderSource()

	order, err := source.CreateOrder(context.Background(), orderData(domain.DeliveryTypeDelivery))
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.InDelta(t, 43.30, order.Subtotal, 0.001)
	assert.Equal(t, 5.0, order.DeliveryFee)
	assert.InDelta(t, 48.30, order.Total, 0.001)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
}

func TestOrdersCreatePickupHasNoFee(t *testing.T) {
	source := NewOrderSource()

	order, err := source.CreateOrder(context.Background(), orderData(domain.DeliveryTypePickup))
	require.NoError(t, err)

	assert.Equal(t, 0.0, order.DeliveryFee)
	assert.Equal(t, order.Subtotal, order.Total)
}

func TestOrdersStatusTransitions(t *testing.T) {
	source := NewOrderSource()
	ctx := context.Background()

	order, err := source.CreateOrder(ctx, orderData(domain.DeliveryTypePickup))
	require.NoError(t, err)

	updated, err := source.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusReady)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusReady, updated.Status)
	assert.False(t, updated.UpdatedAt.IsZero())

	cancelled, err := source.CancelOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, cancelled.Status)

	fetched, err := source.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, fetched.Status)
}

func TestOrdersUnknownIDReturnsNotFound(t *testing.T) {
	source := NewOrderSource()
	ctx := context.Background()

	_, err := source.GetOrder(ctx, "ghost")
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = source.UpdateOrderStatus(ctx, "ghost", domain.OrderStatusReady)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestOrdersListUserOrdersPaginates(t *testing.T) {
	source := NewOrderSource()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := source.CreateOrder(ctx, orderData(domain.DeliveryTypePickup))
		require.NoError(t, err)
	}

	page1, err := source.ListUserOrders(ctx, "1", 1, 2)
	require.NoError(t, err)
	assert.Len(t, page1, 2)

	page3, err := source.ListUserOrders(ctx, "1", 3, 2)
	require.NoError(t, err)
	assert.Len(t, page3, 1)

	empty, err := source.ListUserOrders(ctx, "1", 4, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)

	other, err := source.ListUserOrders(ctx, "someone-else", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, other)
}

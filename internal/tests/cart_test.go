package tests

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"wokstore/internal/domain"
	"wokstore/internal/service"
	"wokstore/internal/storage"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestCart(t *testing.T) (*service.CartManager, *storage.MemoryStore) {
	t.Helper()
	kv := storage.NewMemoryStore()
	return service.NewCartManager(context.Background(), kv, newTestLogger()), kv
}

func chaufa() domain.CartItem {
	return domain.CartItem{
		ID:    "1",
		Name:  "Arroz Chaufa",
		Image: "/img/menu/arroz-chaufa.webp",
		Price: 10.00,
		Type:  domain.ItemTypeProduct,
	}
}

func bebida() domain.CartItem {
	return domain.CartItem{
		ID:          "6",
		Name:        "Bebida 500ml",
		Price:       5.50,
		Type:        domain.ItemTypeProduct,
		MaxQuantity: 3,
	}
}

func TestCartManager_AddMergesQuantities(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()

	assert.True(t, cart.AddItem(ctx, chaufa(), 1))
	assert.True(t, cart.AddItem(ctx, chaufa(), 2))
	assert.True(t, cart.AddItem(ctx, chaufa(), 4))

	assert.Equal(t, 7, cart.GetItemQuantity("1"))
	assert.Len(t, cart.Cart().Items, 1)
}

func TestCartManager_AddDefaultsToOne(t *testing.T) {
	cart, _ := newTestCart(t)

	assert.True(t, cart.AddItem(context.Background(), chaufa(), 0))
	assert.Equal(t, 1, cart.GetItemQuantity("1"))
}

func TestCartManager_AddOverMaxRejectsWholeMerge(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()

	assert.True(t, cart.AddItem(ctx, bebida(), 2))
	assert.False(t, cart.AddItem(ctx, bebida(), 2))

	// Reject in full: the existing quantity is untouched.
	assert.Equal(t, 2, cart.GetItemQuantity("6"))
}

func TestCartManager_UpdateOverMaxClampsToCap(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()

	cart.AddItem(ctx, bebida(), 1)
	cart.UpdateItemQuantity(ctx, "6", 10)

	assert.Equal(t, 3, cart.GetItemQuantity("6"))
}

func TestCartManager_UpdateToZeroRemoves(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()

	cart.AddItem(ctx, chaufa(), 2)
	cart.UpdateItemQuantity(ctx, "1", 0)

	assert.Equal(t, 0, cart.GetItemQuantity("1"))
	assert.Empty(t, cart.Cart().Items)
}

func TestCartManager_UpdateAbsentIsNoOp(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()

	cart.UpdateItemQuantity(ctx, "ghost", 5)

	assert.Equal(t, 0, cart.GetItemQuantity("ghost"))
	assert.Empty(t, cart.Cart().Items)
}

func TestCartManager_RemoveAbsentIsNoOp(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()

	cart.AddItem(ctx, chaufa(), 1)
	cart.RemoveItem(ctx, "ghost")

	assert.Equal(t, 1, cart.GetItemQuantity("1"))
}

func TestCartManager_Totals(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()

	empty := cart.Cart()
	assert.Equal(t, 0.0, empty.Subtotal)
	assert.Equal(t, 0.0, empty.DeliveryFee)
	assert.Equal(t, 0.0, empty.Total)

	cart.AddItem(ctx, chaufa(), 2)

	got := cart.Cart()
	assert.Equal(t, 20.00, got.Subtotal)
	assert.Equal(t, 5.00, got.DeliveryFee)
	assert.Equal(t, 25.00, got.Total)
}

func TestCartManager_TotalsRounding(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()

	item := chaufa()
	item.Price = 3.33
	cart.AddItem(ctx, item, 3)

	got := cart.Cart()
	assert.Equal(t, 9.99, got.Subtotal)
	assert.Equal(t, 14.99, got.Total)
}

func TestCartManager_ItemCount(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()

	assert.Equal(t, 0, cart.ItemCount())

	cart.AddItem(ctx, chaufa(), 2)
	cart.AddItem(ctx, bebida(), 3)

	assert.Equal(t, 5, cart.ItemCount())
}

func TestCartManager_ClearDeletesPersistedRecord(t *testing.T) {
	cart, kv := newTestCart(t)
	ctx := context.Background()

	cart.AddItem(ctx, chaufa(), 2)
	_, ok, _ := kv.Get(ctx, storage.KeyCartItems)
	assert.True(t, ok)

	cart.ClearCart(ctx)

	_, ok, _ = kv.Get(ctx, storage.KeyCartItems)
	assert.False(t, ok, "persisted record must be removed, not rewritten empty")

	reloaded := service.NewCartManager(ctx, kv, newTestLogger())
	assert.Empty(t, reloaded.Cart().Items)
}

func TestCartManager_RoundTrip(t *testing.T) {
	cart, kv := newTestCart(t)
	ctx := context.Background()

	cart.AddItem(ctx, chaufa(), 2)
	cart.AddItem(ctx, bebida(), 1)
	combo := domain.CartItem{ID: "c1", Name: "Combo Personal", Price: 24.90, Type: domain.ItemTypeCombo}
	cart.AddItem(ctx, combo, 1)

	reloaded := service.NewCartManager(ctx, kv, newTestLogger())

	assert.Equal(t, cart.Cart().Items, reloaded.Cart().Items)
	assert.Equal(t, []string{"1", "6", "c1"}, itemIDs(reloaded.Cart().Items))
}

func itemIDs(items []domain.CartItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestCartManager_CorruptPersistedDataLoadsEmpty(t *testing.T) {
	kv := storage.NewMemoryStore()
	ctx := context.Background()
	_ = kv.Set(ctx, storage.KeyCartItems, "{not valid json")

	cart := service.NewCartManager(ctx, kv, newTestLogger())

	assert.Empty(t, cart.Cart().Items)
	assert.Equal(t, 0, cart.ItemCount())
}

func TestCartManager_SubscribeNotifiesOnMutation(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()

	notified := 0
	unsubscribe := cart.Subscribe(func() { notified++ })

	cart.AddItem(ctx, chaufa(), 1)
	cart.UpdateItemQuantity(ctx, "1", 3)
	cart.RemoveItem(ctx, "1")
	assert.Equal(t, 3, notified)

	unsubscribe()
	cart.AddItem(ctx, chaufa(), 1)
	assert.Equal(t, 3, notified)
}

func TestCartManager_MaxQuantityScenario(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()

	item := domain.CartItem{ID: "b", Name: "Producto B", Price: 5.50, Type: domain.ItemTypeProduct, MaxQuantity: 3}
	assert.True(t, cart.AddItem(ctx, item, 2))
	assert.False(t, cart.AddItem(ctx, item, 2))
	assert.Equal(t, 2, cart.GetItemQuantity("b"))
}

package service

import (
	"context"
	"encoding/json"
	"math"
	"sync"

	"github.com/sirupsen/logrus"

	"wokstore/internal/domain"
	"wokstore/internal/storage"
)

// DeliveryFee is the flat surcharge applied to non-empty carts.
const DeliveryFee = 5.0

// CartManager owns the shopping cart. Every mutation writes the full item
// collection back to the key-value store; derived reads (Cart, ItemCount)
// only touch the in-memory collection.
type CartManager struct {
	mu      sync.Mutex
	kv      storage.KeyValueStore
	log     *logrus.Logger
	items   []domain.CartItem
	subs    map[int]func()
	nextSub int
}

func NewCartManager(ctx context.Context, kv storage.KeyValueStore, log *logrus.Logger) *CartManager {
	m := &CartManager{
		kv:   kv,
		log:  log,
		subs: make(map[int]func()),
	}
	m.load(ctx)
	return m
}

// load restores the persisted collection. Absent or corrupt data yields an
// empty cart, never an error.
func (m *CartManager) load(ctx context.Context) {
	raw, ok, err := m.kv.Get(ctx, storage.KeyCartItems)
	if err != nil {
		m.log.WithError(err).Warn("cart: failed to read persisted cart, starting empty")
		return
	}
	if !ok {
		return
	}
	var items []domain.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		m.log.WithError(err).Warn("cart: corrupt persisted cart, starting empty")
		return
	}
	m.items = items
}

func (m *CartManager) persist(ctx context.Context) {
	raw, err := json.Marshal(m.items)
	if err != nil {
		m.log.WithError(err).Error("cart: failed to encode cart")
		return
	}
	if err := m.kv.Set(ctx, storage.KeyCartItems, string(raw)); err != nil {
		m.log.WithError(err).Warn("cart: failed to persist cart")
	}
}

// AddItem merges the given quantity into the cart. When the item already
// exists the quantities are added; if the merged result would exceed the
// item's MaxQuantity the whole merge is rejected and the existing entry is
// left unchanged. Returns false only for a rejected merge. The incoming
// item's Quantity field is ignored; quantity <= 0 defaults to 1.
func (m *CartManager) AddItem(ctx context.Context, item domain.CartItem, quantity int) bool {
	if quantity <= 0 {
		quantity = 1
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ID != item.ID {
			continue
		}
		merged := m.items[i].Quantity + quantity
		if m.items[i].MaxQuantity > 0 && merged > m.items[i].MaxQuantity {
			m.log.WithFields(logrus.Fields{
				"item": item.Name,
				"max":  m.items[i].MaxQuantity,
			}).Warn("cart: max quantity reached, add rejected")
			return false
		}
		m.items[i].Quantity = merged
		m.persist(ctx)
		m.notify()
		return true
	}

	item.Quantity = quantity
	m.items = append(m.items, item)
	m.persist(ctx)
	m.notify()
	return true
}

// RemoveItem removes the entry with the given id. Unknown ids are a no-op.
func (m *CartManager) RemoveItem(ctx context.Context, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeLocked(ctx, id)
}

func (m *CartManager) removeLocked(ctx context.Context, id string) {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			m.persist(ctx)
			m.notify()
			return
		}
	}
}

// UpdateItemQuantity sets the quantity for an existing item. A quantity of
// zero or less removes the item. Quantities above the item's MaxQuantity are
// clamped to the cap (unlike AddItem, which rejects the merge outright).
// Unknown ids are a no-op.
func (m *CartManager) UpdateItemQuantity(ctx context.Context, id string, quantity int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if quantity <= 0 {
		m.removeLocked(ctx, id)
		return
	}

	for i := range m.items {
		if m.items[i].ID != id {
			continue
		}
		if m.items[i].MaxQuantity > 0 && quantity > m.items[i].MaxQuantity {
			m.log.WithFields(logrus.Fields{
				"item": m.items[i].Name,
				"max":  m.items[i].MaxQuantity,
			}).Warn("cart: quantity clamped to max")
			quantity = m.items[i].MaxQuantity
		}
		m.items[i].Quantity = quantity
		m.persist(ctx)
		m.notify()
		return
	}
}

// ClearCart empties the collection and deletes the persisted record.
func (m *CartManager) ClearCart(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = nil
	if err := m.kv.Delete(ctx, storage.KeyCartItems); err != nil {
		m.log.WithError(err).Warn("cart: failed to delete persisted cart")
	}
	m.notify()
}

// GetItemQuantity returns the stored quantity for an id, or 0 when absent.
func (m *CartManager) GetItemQuantity(id string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ID == id {
			return m.items[i].Quantity
		}
	}
	return 0
}

// ItemCount is the sum of all quantities across items.
func (m *CartManager) ItemCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for i := range m.items {
		count += m.items[i].Quantity
	}
	return count
}

// Cart returns the derived aggregate, recomputed from the current items.
func (m *CartManager) Cart() domain.Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := make([]domain.CartItem, len(m.items))
	copy(items, m.items)

	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	deliveryFee := 0.0
	if len(items) > 0 {
		deliveryFee = DeliveryFee
	}

	return domain.Cart{
		Items:       items,
		Subtotal:    round2(subtotal),
		DeliveryFee: deliveryFee,
		Total:       round2(subtotal + deliveryFee),
	}
}

// Subscribe registers a change listener and returns its unsubscribe func.
// Listeners run synchronously inside the mutating call.
func (m *CartManager) Subscribe(fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

func (m *CartManager) notify() {
	for _, fn := range m.subs {
		fn()
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

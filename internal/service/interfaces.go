package service

import (
	"context"

	"wokstore/internal/domain"
)

// UserSource mediates credential and profile operations against the users
// microservice (or its fixture stand-in).
type UserSource interface {
	Register(ctx context.Context, data domain.RegisterData) (*domain.AuthResponse, error)
	Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error)
	Logout(ctx context.Context) error
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, patch domain.UserPatch) (*domain.User, error)
}

// CatalogSource serves the browsable menu: products, combos and offers.
type CatalogSource interface {
	ListProducts(ctx context.Context, category string) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
	ListCombos(ctx context.Context) ([]domain.Combo, error)
	GetCombo(ctx context.Context, id string) (*domain.Combo, error)
	ListCombosByType(ctx context.Context, comboType string) ([]domain.Combo, error)
	ListOffers(ctx context.Context) ([]domain.Offer, error)
	GetOffer(ctx context.Context, id string) (*domain.Offer, error)
	OffersForProduct(ctx context.Context, productID string) ([]domain.Offer, error)
}

// StoreSource serves the store directory.
type StoreSource interface {
	ListStores(ctx context.Context, filters domain.StoreFilters) ([]domain.Store, error)
	GetStore(ctx context.Context, id string) (*domain.Store, error)
	DeliveryOptions() []domain.DeliveryOption
}

// OrderSource mediates order lifecycle operations against the orders
// microservice (or its fixture stand-in).
type OrderSource interface {
	CreateOrder(ctx context.Context, data domain.CreateOrderData) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListUserOrders(ctx context.Context, userID string, page, limit int) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	CancelOrder(ctx context.Context, id string) (*domain.Order, error)
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type CartManagerInterface interface {
	AddItem(ctx context.Context, item domain.CartItem, quantity int) bool
	RemoveItem(ctx context.Context, id string)
	UpdateItemQuantity(ctx context.Context, id string, quantity int)
	ClearCart(ctx context.Context)
	GetItemQuantity(id string) int
	ItemCount() int
	Cart() domain.Cart
	Subscribe(fn func()) func()
}

type AuthManagerInterface interface {
	Load(ctx context.Context)
	Login(ctx context.Context, creds domain.Credentials) error
	Register(ctx context.Context, data domain.RegisterData) error
	Logout(ctx context.Context)
	UpdateUser(ctx context.Context, patch domain.UserPatch)
	State() AuthState
	CurrentUser() *domain.User
	IsAuthenticated() bool
	IsLoading() bool
	Subscribe(fn func()) func()
}

type OrderServiceInterface interface {
	Place(ctx context.Context, data domain.CreateOrderData) (*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	ListForUser(ctx context.Context, userID string, page, limit int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	Cancel(ctx context.Context, id string) (*domain.Order, error)
	QRCode(ctx context.Context, id string) ([]byte, error)
	QRLink(id string) string
}

var _ CartManagerInterface = (*CartManager)(nil)
var _ AuthManagerInterface = (*AuthManager)(nil)
var _ OrderServiceInterface = (*OrderService)(nil)

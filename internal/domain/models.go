package domain

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "administrator"
)

type Address struct {
	Street    string `json:"street"`
	District  string `json:"district"`
	City      string `json:"city"`
	Reference string `json:"reference,omitempty"`
}

type User struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Phone     string   `json:"phone"`
	Role      Role     `json:"role"`
	Address   *Address `json:"address,omitempty"`
}

// UserPatch carries a partial profile update. Nil fields are left untouched.
type UserPatch struct {
	Email     *string  `json:"email,omitempty"`
	FirstName *string  `json:"first_name,omitempty"`
	LastName  *string  `json:"last_name,omitempty"`
	Phone     *string  `json:"phone,omitempty"`
	Address   *Address `json:"address,omitempty"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterData struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

type DeliveryOption struct {
	Type        DeliveryType `json:"type"`
	Label       string       `json:"label"`
	Description string       `json:"description"`
}

type Store struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Address       string         `json:"address"`
	District      string         `json:"district"`
	City          string         `json:"city"`
	Phone         string         `json:"phone"`
	DeliveryTypes []DeliveryType `json:"delivery_types"`
	IsActive      bool           `json:"is_active"`
}

type StoreFilters struct {
	City         string
	District     string
	DeliveryType DeliveryType
}

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Discount    float64 `json:"discount,omitempty"`
	IsAvailable bool    `json:"is_available"`
	IsNew       bool    `json:"is_new,omitempty"`
}

type ComboProduct struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

type Combo struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	Price       float64        `json:"price"`
	Products    []ComboProduct `json:"products"`
	Discount    float64        `json:"discount,omitempty"`
	IsAvailable bool           `json:"is_available"`
}

type Offer struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Image              string    `json:"image"`
	DiscountPercentage float64   `json:"discount_percentage"`
	ValidFrom          time.Time `json:"valid_from"`
	ValidUntil         time.Time `json:"valid_until"`
	Products           []string  `json:"products"`
	IsActive           bool      `json:"is_active"`
}

// ActiveAt reports whether the offer can be shown at the given moment.
func (o Offer) ActiveAt(now time.Time) bool {
	return o.IsActive && !now.Before(o.ValidFrom) && !now.After(o.ValidUntil)
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusPreparing  OrderStatus = "preparing"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusDelivering OrderStatus = "delivering"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type OrderItem struct {
	ProductID    string   `json:"product_id"`
	ProductName  string   `json:"product_name"`
	ProductImage string   `json:"product_image"`
	Quantity     int      `json:"quantity"`
	Price        float64  `json:"price"`
	Subtotal     float64  `json:"subtotal"`
	Type         ItemType `json:"type"`
}

type Order struct {
	ID              string       `json:"id"`
	UserID          string       `json:"user_id"`
	StoreID         string       `json:"store_id"`
	Items           []OrderItem  `json:"items"`
	Subtotal        float64      `json:"subtotal"`
	DeliveryFee     float64      `json:"delivery_fee"`
	Total           float64      `json:"total"`
	DeliveryType    DeliveryType `json:"delivery_type"`
	DeliveryAddress *Address     `json:"delivery_address,omitempty"`
	Status          OrderStatus  `json:"status"`
	PaymentMethod   string       `json:"payment_method,omitempty"`
	Notes           string       `json:"notes,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at,omitempty"`
}

type CreateOrderData struct {
	UserID          string       `json:"user_id"`
	StoreID         string       `json:"store_id"`
	Items           []OrderItem  `json:"items"`
	DeliveryType    DeliveryType `json:"delivery_type"`
	DeliveryAddress *Address     `json:"delivery_address,omitempty"`
	PaymentMethod   string       `json:"payment_method"`
	Notes           string       `json:"notes,omitempty"`
}

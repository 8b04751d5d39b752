package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"wokstore/internal/domain"
	"wokstore/internal/service"
)

type Handler struct {
	Catalog service.CatalogSource
	Stores  service.StoreSource
	Cart    service.CartManagerInterface
	Auth    service.AuthManagerInterface
	Orders  service.OrderServiceInterface
}

func NewHandler(
	catalog service.CatalogSource,
	stores service.StoreSource,
	cart service.CartManagerInterface,
	auth service.AuthManagerInterface,
	orders service.OrderServiceInterface,
) *Handler {
	return &Handler{Catalog: catalog, Stores: stores, Cart: cart, Auth: auth, Orders: orders}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/products/categories", h.listCategories).Methods("GET")
	r.HandleFunc("/api/products/search", h.searchProducts).Methods("GET")
	r.HandleFunc("/api/products", h.listProducts).Methods("GET")
	r.HandleFunc("/api/products/{id}", h.getProduct).Methods("GET")
	r.HandleFunc("/api/products/{id}/offers", h.offersForProduct).Methods("GET")

	r.HandleFunc("/api/combos", h.listCombos).Methods("GET")
	r.HandleFunc("/api/combos/{id}", h.getCombo).Methods("GET")
	r.HandleFunc("/api/offers", h.listOffers).Methods("GET")
	r.HandleFunc("/api/offers/{id}", h.getOffer).Methods("GET")

	r.HandleFunc("/api/stores", h.listStores).Methods("GET")
	r.HandleFunc("/api/stores/{id}", h.getStore).Methods("GET")
	r.HandleFunc("/api/delivery-options", h.deliveryOptions).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{id}", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/api/cart/items/{id}", h.removeCartItem).Methods("DELETE")

	r.HandleFunc("/api/auth/register", h.register).Methods("POST")
	r.HandleFunc("/api/auth/login", h.login).Methods("POST")
	r.HandleFunc("/api/auth/logout", h.logout).Methods("POST")
	r.HandleFunc("/api/auth/session", h.getSession).Methods("GET")
	r.HandleFunc("/api/auth/profile", h.updateProfile).Methods("PATCH")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PATCH")
	r.HandleFunc("/api/orders/{id}/cancel", h.cancelOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "storefront",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Catalog.ListProducts(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.Catalog.GetProduct(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, service.ErrNotFound) {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Catalog.ListCategories(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) searchProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Catalog.SearchProducts(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) offersForProduct(w http.ResponseWriter, r *http.Request) {
	offers, err := h.Catalog.OffersForProduct(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, offers)
}

func (h *Handler) listCombos(w http.ResponseWriter, r *http.Request) {
	comboType := r.URL.Query().Get("type")

	var combos []domain.Combo
	var err error
	if comboType != "" {
		combos, err = h.Catalog.ListCombosByType(r.Context(), comboType)
	} else {
		combos, err = h.Catalog.ListCombos(r.Context())
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, combos)
}

func (h *Handler) getCombo(w http.ResponseWriter, r *http.Request) {
	combo, err := h.Catalog.GetCombo(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, service.ErrNotFound) {
		http.Error(w, "Combo not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, combo)
}

func (h *Handler) listOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.Catalog.ListOffers(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, offers)
}

func (h *Handler) getOffer(w http.ResponseWriter, r *http.Request) {
	offer, err := h.Catalog.GetOffer(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, service.ErrNotFound) {
		http.Error(w, "Offer not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, offer)
}

func (h *Handler) listStores(w http.ResponseWriter, r *http.Request) {
	filters := domain.StoreFilters{
		City:         r.URL.Query().Get("city"),
		District:     r.URL.Query().Get("district"),
		DeliveryType: domain.DeliveryType(r.URL.Query().Get("delivery_type")),
	}
	stores, err := h.Stores.ListStores(r.Context(), filters)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stores)
}

func (h *Handler) getStore(w http.ResponseWriter, r *http.Request) {
	store, err := h.Stores.GetStore(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, service.ErrNotFound) {
		http.Error(w, "Store not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, store)
}

func (h *Handler) deliveryOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Stores.DeliveryOptions())
}

type cartResponse struct {
	Cart      domain.Cart `json:"cart"`
	ItemCount int         `json:"item_count"`
}

func (h *Handler) cartState() cartResponse {
	return cartResponse{Cart: h.Cart.Cart(), ItemCount: h.Cart.ItemCount()}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cartState())
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Item     domain.CartItem `json:"item"`
		Quantity int             `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	if payload.Item.ID == "" {
		http.Error(w, "Missing item id", http.StatusBadRequest)
		return
	}

	added := h.Cart.AddItem(r.Context(), payload.Item, payload.Quantity)

	// A rejected merge (max quantity) is a warning, not an error: the cart
	// is returned unchanged with added=false.
	writeJSON(w, http.StatusOK, struct {
		Added bool `json:"added"`
		cartResponse
	}{Added: added, cartResponse: h.cartState()})
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	h.Cart.UpdateItemQuantity(r.Context(), mux.Vars(r)["id"], payload.Quantity)
	writeJSON(w, http.StatusOK, h.cartState())
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	h.Cart.RemoveItem(r.Context(), mux.Vars(r)["id"])
	writeJSON(w, http.StatusOK, h.cartState())
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.Cart.ClearCart(r.Context())
	writeJSON(w, http.StatusOK, h.cartState())
}

type sessionResponse struct {
	State           string       `json:"state"`
	IsAuthenticated bool         `json:"is_authenticated"`
	IsLoading       bool         `json:"is_loading"`
	User            *domain.User `json:"user,omitempty"`
}

func (h *Handler) session() sessionResponse {
	return sessionResponse{
		State:           h.Auth.State().String(),
		IsAuthenticated: h.Auth.IsAuthenticated(),
		IsLoading:       h.Auth.IsLoading(),
		User:            h.Auth.CurrentUser(),
	}
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var data domain.RegisterData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	if data.Email == "" || data.Password == "" {
		http.Error(w, "Missing email or password", http.StatusBadRequest)
		return
	}

	if err := h.Auth.Register(r.Context(), data); err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusCreated, h.session())
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	if err := h.Auth.Login(r.Context(), creds); err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, h.session())
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.Auth.Logout(r.Context())
	writeJSON(w, http.StatusOK, h.session())
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session())
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var patch domain.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	h.Auth.UpdateUser(r.Context(), patch)
	writeJSON(w, http.StatusOK, h.session())
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var data domain.CreateOrderData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	order, err := h.Orders.Place(r.Context(), data)
	if errors.Is(err, service.ErrInvalidOrder) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	orders, err := h.Orders.ListForUser(r.Context(), r.URL.Query().Get("user_id"), page, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, service.ErrNotFound) {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Status == "" {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	order, err := h.Orders.UpdateStatus(r.Context(), mux.Vars(r)["id"], payload.Status)
	if errors.Is(err, service.ErrNotFound) {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Cancel(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, service.ErrNotFound) {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qr, err := h.Orders.QRCode(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, service.ErrNotFound) {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

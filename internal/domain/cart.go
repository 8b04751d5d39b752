package domain

type ItemType string

const (
	ItemTypeProduct ItemType = "product"
	ItemTypeCombo   ItemType = "combo"
	ItemTypeOffer   ItemType = "offer"
)

// CartItem is one line of the cart. ID is the merge key: the id of the
// underlying product, combo or offer.
type CartItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Image       string   `json:"image"`
	Price       float64  `json:"price"`
	Quantity    int      `json:"quantity"`
	Type        ItemType `json:"type"`
	MaxQuantity int      `json:"max_quantity,omitempty"`
}

// Cart is a read-only aggregate derived from the item collection. It is never
// stored; totals are recomputed from the items on every read.
type Cart struct {
	Items       []CartItem `json:"items"`
	Subtotal    float64    `json:"subtotal"`
	DeliveryFee float64    `json:"delivery_fee"`
	Total       float64    `json:"total"`
}

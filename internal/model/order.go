package model

import "time"

// CartItem is one line in a user's cart.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// ShippingInfo is the checkout form payload. Payment fields are accepted but
// never charged; checkout is simulated.
type ShippingInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ZipCode   string `json:"zipCode"`
}

// OrderTotals breaks down the checkout math.
type OrderTotals struct {
	Subtotal  float64 `json:"subtotal"`
	Shipping  float64 `json:"shipping"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
}

// Order is a completed (simulated) checkout.
type Order struct {
	ID        string       `json:"id"`
	UserID    string       `json:"userId"`
	Items     []CartItem   `json:"items"`
	Shipping  ShippingInfo `json:"shipping"`
	Totals    OrderTotals  `json:"totals"`
	CreatedAt time.Time    `json:"createdAt"`
}

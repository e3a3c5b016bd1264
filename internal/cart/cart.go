// Package cart persists per-user shopping carts and turns them into
// simulated orders.
package cart

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hunkymanie/shoply/internal/catalog"
	"github.com/hunkymanie/shoply/internal/kv"
	"github.com/hunkymanie/shoply/internal/model"
)

const (
	freeShippingThreshold = 75.0
	flatShipping          = 9.99
	taxRate               = 0.08

	ordersKey = "orders"
)

// Service stores carts under "cart_<userID>" and completed orders under a
// single shared key, mirroring the rest of the persisted state.
type Service struct {
	store kv.Store
	now   func() time.Time
}

func NewService(store kv.Store) *Service {
	return &Service{store: store, now: time.Now}
}

func cartKey(userID string) string {
	return "cart_" + userID
}

// Items returns the user's cart, empty if none was saved.
func (s *Service) Items(userID string) ([]model.CartItem, error) {
	raw, found, err := s.store.Get(cartKey(userID))
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if !found {
		return nil, nil
	}
	var items []model.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("parse cart: %w", err)
	}
	return items, nil
}

func (s *Service) save(userID string, items []model.CartItem) error {
	if len(items) == 0 {
		return s.store.Delete(cartKey(userID))
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	return s.store.Set(cartKey(userID), string(raw))
}

// Add puts quantity more of a product into the cart, merging with an
// existing line for the same product.
func (s *Service) Add(userID, productID string, quantity int) ([]model.CartItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	if catalog.ByID(catalog.Products, productID) == nil {
		return nil, fmt.Errorf("unknown product %q", productID)
	}

	items, err := s.Items(userID)
	if err != nil {
		return nil, err
	}
	merged := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, model.CartItem{ProductID: productID, Quantity: quantity})
	}
	return items, s.save(userID, items)
}

// SetQuantity replaces a line's quantity. Zero or less removes the line.
func (s *Service) SetQuantity(userID, productID string, quantity int) ([]model.CartItem, error) {
	items, err := s.Items(userID)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return s.removeLine(userID, items, productID)
	}
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			return items, s.save(userID, items)
		}
	}
	return nil, fmt.Errorf("product %q not in cart", productID)
}

// Remove drops a product from the cart. Removing an absent product is a
// no-op.
func (s *Service) Remove(userID, productID string) ([]model.CartItem, error) {
	items, err := s.Items(userID)
	if err != nil {
		return nil, err
	}
	return s.removeLine(userID, items, productID)
}

func (s *Service) removeLine(userID string, items []model.CartItem, productID string) ([]model.CartItem, error) {
	kept := items[:0]
	for _, it := range items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	return kept, s.save(userID, kept)
}

// Clear empties the user's cart.
func (s *Service) Clear(userID string) error {
	return s.store.Delete(cartKey(userID))
}

// Totals computes the checkout breakdown: subtotal at effective (sale)
// prices, free shipping at $75 and a flat $9.99 below it, 8% tax on the
// subtotal.
func Totals(items []model.CartItem) model.OrderTotals {
	var t model.OrderTotals
	for _, it := range items {
		p := catalog.ByID(catalog.Products, it.ProductID)
		if p == nil {
			continue
		}
		t.Subtotal += p.EffectivePrice() * float64(it.Quantity)
		t.ItemCount += it.Quantity
	}
	if t.Subtotal > 0 && t.Subtotal < freeShippingThreshold {
		t.Shipping = flatShipping
	}
	t.Tax = t.Subtotal * taxRate
	t.Total = t.Subtotal + t.Shipping + t.Tax
	return t
}

// Checkout turns the cart into an order, records it, and clears the cart.
// Payment details are never collected; the order is simulated.
func (s *Service) Checkout(userID string, shipping model.ShippingInfo) (*model.Order, error) {
	items, err := s.Items(userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	order := model.Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		Items:     items,
		Shipping:  shipping,
		Totals:    Totals(items),
		CreatedAt: s.now().UTC(),
	}

	orders, err := s.Orders()
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(append(orders, order))
	if err != nil {
		return nil, fmt.Errorf("encode orders: %w", err)
	}
	if err := s.store.Set(ordersKey, string(raw)); err != nil {
		return nil, fmt.Errorf("save orders: %w", err)
	}
	if err := s.Clear(userID); err != nil {
		return nil, err
	}
	return &order, nil
}

// Orders returns every recorded order.
func (s *Service) Orders() ([]model.Order, error) {
	raw, found, err := s.store.Get(ordersKey)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	if !found {
		return nil, nil
	}
	var orders []model.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		return nil, fmt.Errorf("parse orders: %w", err)
	}
	return orders, nil
}

// OrdersFor filters recorded orders down to one user.
func (s *Service) OrdersFor(userID string) ([]model.Order, error) {
	all, err := s.Orders()
	if err != nil {
		return nil, err
	}
	var mine []model.Order
	for _, o := range all {
		if o.UserID == userID {
			mine = append(mine, o)
		}
	}
	return mine, nil
}

package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hunkymanie/shoply/internal/auth"
	"github.com/hunkymanie/shoply/internal/cart"
	"github.com/hunkymanie/shoply/internal/model"
)

type CartHandler struct {
	carts  *cart.Service
	logger *slog.Logger
}

func NewCartHandler(carts *cart.Service, logger *slog.Logger) *CartHandler {
	return &CartHandler{carts: carts, logger: logger}
}

type cartResponse struct {
	Items  []model.CartItem  `json:"items"`
	Totals model.OrderTotals `json:"totals"`
}

func (h *CartHandler) respond(w http.ResponseWriter, items []model.CartItem) {
	if items == nil {
		items = []model.CartItem{}
	}
	writeJSON(w, http.StatusOK, cartResponse{Items: items, Totals: cart.Totals(items)})
}

// Get handles GET /api/cart
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	items, err := h.carts.Items(auth.UserID(r.Context()))
	if err != nil {
		h.logger.Error("load cart", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}
	h.respond(w, items)
}

type cartLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Add handles POST /api/cart
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req cartLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	items, err := h.carts.Add(auth.UserID(r.Context()), req.ProductID, req.Quantity)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respond(w, items)
}

// Update handles PUT /api/cart/{productId}
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	items, err := h.carts.SetQuantity(auth.UserID(r.Context()), r.PathValue("productId"), req.Quantity)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respond(w, items)
}

// Remove handles DELETE /api/cart/{productId}
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	items, err := h.carts.Remove(auth.UserID(r.Context()), r.PathValue("productId"))
	if err != nil {
		h.logger.Error("remove cart line", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update cart")
		return
	}
	h.respond(w, items)
}

// Clear handles DELETE /api/cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.carts.Clear(auth.UserID(r.Context())); err != nil {
		h.logger.Error("clear cart", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to clear cart")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Checkout handles POST /api/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var shipping model.ShippingInfo
	if err := json.NewDecoder(r.Body).Decode(&shipping); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if shipping.FirstName == "" || shipping.Email == "" || shipping.Address == "" {
		writeError(w, http.StatusBadRequest, "firstName, email, and address are required")
		return
	}
	order, err := h.carts.Checkout(auth.UserID(r.Context()), shipping)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// Orders handles GET /api/orders
func (h *CartHandler) Orders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.carts.OrdersFor(auth.UserID(r.Context()))
	if err != nil {
		h.logger.Error("load orders", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

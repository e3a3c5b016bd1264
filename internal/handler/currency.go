package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hunkymanie/shoply/internal/currency"
)

type CurrencyHandler struct {
	svc *currency.Service
}

func NewCurrencyHandler(svc *currency.Service) *CurrencyHandler {
	return &CurrencyHandler{svc: svc}
}

// Get handles GET /api/currency
func (h *CurrencyHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"preferred": h.svc.Preferred(),
		"rate":      h.svc.Rate(r.Context()),
	})
}

// SetPreferred handles PUT /api/currency
func (h *CurrencyHandler) SetPreferred(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Currency currency.Code `json:"currency"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := h.svc.SetPreferred(req.Currency); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"preferred": h.svc.Preferred()})
}

package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/hunkymanie/shoply/internal/catalog"
)

type ProductHandler struct{}

func NewProductHandler() *ProductHandler {
	return &ProductHandler{}
}

// filtersFromQuery builds a filter specification from URL query parameters,
// starting from the defaults so absent parameters keep their default value.
func filtersFromQuery(r *http.Request) catalog.Filters {
	f := catalog.DefaultFilters()
	q := r.URL.Query()

	if v := q.Get("q"); v != "" {
		f.Query = v
	}
	if v := q.Get("category"); v != "" {
		f.Category = v
	}
	if v := q.Get("priceMin"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.PriceMin = n
		}
	}
	if v := q.Get("priceMax"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.PriceMax = n
		}
	}
	if v := q.Get("colors"); v != "" {
		f.Colors = strings.Split(v, ",")
	}
	if v := q.Get("sizes"); v != "" {
		f.Sizes = strings.Split(v, ",")
	}
	if v := q.Get("brands"); v != "" {
		f.Brands = strings.Split(v, ",")
	}
	f.InStock = q.Get("inStock") == "true"
	f.IsNew = q.Get("isNew") == "true"
	f.IsSale = q.Get("isSale") == "true"
	if v := q.Get("sortBy"); v != "" {
		f.SortBy = catalog.SortKey(v)
	}
	return f
}

// List handles GET /api/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	f := filtersFromQuery(r)
	results := catalog.ApplyFilters(catalog.Products, f)
	writeJSON(w, http.StatusOK, map[string]any{
		"products": results,
		"total":    len(results),
		"filters":  f,
	})
}

// Get handles GET /api/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	p := catalog.ByID(catalog.Products, r.PathValue("id"))
	if p == nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Facets handles GET /api/products/facets
func (h *ProductHandler) Facets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Options(catalog.Products))
}

// Collections handles GET /api/collections
func (h *ProductHandler) Collections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"featured":    catalog.Featured(catalog.Products),
		"newArrivals": catalog.NewArrivals(catalog.Products),
		"sale":        catalog.SaleItems(catalog.Products),
	})
}

package catalog

import (
	"sort"
	"strings"

	"github.com/hunkymanie/shoply/internal/model"
)

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortName      SortKey = "name"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

// Filters is the query the search engine evaluates. All dimensions are
// conjunctive; within a facet (Colors, Sizes, Brands) matching is any-of.
type Filters struct {
	Query    string   `json:"query"`
	Category string   `json:"category"`
	PriceMin float64  `json:"priceMin"`
	PriceMax float64  `json:"priceMax"`
	Colors   []string `json:"colors"`
	Sizes    []string `json:"sizes"`
	Brands   []string `json:"brands"`
	InStock  bool     `json:"inStock"`
	IsNew    bool     `json:"isNew"`
	IsSale   bool     `json:"isSale"`
	SortBy   SortKey  `json:"sortBy"`
}

// DefaultFilters returns the full default specification: empty query, full
// price range, no facet selections, name sort.
func DefaultFilters() Filters {
	return Filters{
		PriceMin: 0,
		PriceMax: 1000,
		SortBy:   SortName,
	}
}

// FilterUpdate is a partial filter change; nil fields keep their value.
type FilterUpdate struct {
	Query    *string   `json:"query,omitempty"`
	Category *string   `json:"category,omitempty"`
	PriceMin *float64  `json:"priceMin,omitempty"`
	PriceMax *float64  `json:"priceMax,omitempty"`
	Colors   *[]string `json:"colors,omitempty"`
	Sizes    *[]string `json:"sizes,omitempty"`
	Brands   *[]string `json:"brands,omitempty"`
	InStock  *bool     `json:"inStock,omitempty"`
	IsNew    *bool     `json:"isNew,omitempty"`
	IsSale   *bool     `json:"isSale,omitempty"`
	SortBy   *SortKey  `json:"sortBy,omitempty"`
}

// With returns a copy of f with the non-nil fields of u merged in.
func (f Filters) With(u FilterUpdate) Filters {
	if u.Query != nil {
		f.Query = *u.Query
	}
	if u.Category != nil {
		f.Category = *u.Category
	}
	if u.PriceMin != nil {
		f.PriceMin = *u.PriceMin
	}
	if u.PriceMax != nil {
		f.PriceMax = *u.PriceMax
	}
	if u.Colors != nil {
		f.Colors = *u.Colors
	}
	if u.Sizes != nil {
		f.Sizes = *u.Sizes
	}
	if u.Brands != nil {
		f.Brands = *u.Brands
	}
	if u.InStock != nil {
		f.InStock = *u.InStock
	}
	if u.IsNew != nil {
		f.IsNew = *u.IsNew
	}
	if u.IsSale != nil {
		f.IsSale = *u.IsSale
	}
	if u.SortBy != nil {
		f.SortBy = *u.SortBy
	}
	return f
}

// ApplyFilters returns the filtered, sorted view of products. The input slice
// is never mutated.
func ApplyFilters(products []model.Product, f Filters) []model.Product {
	result := make([]model.Product, 0, len(products))
	for _, p := range products {
		if matches(p, f) {
			result = append(result, p)
		}
	}
	sortProducts(result, f.SortBy)
	return result
}

func matches(p model.Product, f Filters) bool {
	if f.Query != "" && !matchesQuery(p, strings.ToLower(f.Query)) {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	price := p.EffectivePrice()
	if price < f.PriceMin || price > f.PriceMax {
		return false
	}
	if len(f.Colors) > 0 && !anyOf(p.Colors, f.Colors) {
		return false
	}
	if len(f.Sizes) > 0 && !anyOf(p.Sizes, f.Sizes) {
		return false
	}
	if len(f.Brands) > 0 && !contains(f.Brands, p.Brand) {
		return false
	}
	if f.InStock && !p.InStock {
		return false
	}
	if f.IsNew && !p.IsNew {
		return false
	}
	if f.IsSale && !p.IsSale {
		return false
	}
	return true
}

// matchesQuery does a case-insensitive substring match against name,
// description, tags, and brand.
func matchesQuery(p model.Product, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return p.Brand != "" && strings.Contains(strings.ToLower(p.Brand), query)
}

func anyOf(have, want []string) bool {
	for _, h := range have {
		if contains(want, h) {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// sortProducts orders in place. Ties keep the original order; "newest" has no
// secondary key, so new-flagged items group before the rest and are otherwise
// stable.
func sortProducts(products []model.Product, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() < products[j].EffectivePrice()
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() > products[j].EffectivePrice()
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsNew && !products[j].IsNew
		})
	default: // SortName
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	}
}

// FacetOptions are the distinct values present in a product list, for
// populating filter controls. Values keep first-seen order.
type FacetOptions struct {
	Categories []string `json:"categories"`
	Colors     []string `json:"colors"`
	Sizes      []string `json:"sizes"`
	Brands     []string `json:"brands"`
}

// Options computes the facet values for the given product list.
func Options(products []model.Product) FacetOptions {
	var opts FacetOptions
	seenCategory := map[string]bool{}
	seenColor := map[string]bool{}
	seenSize := map[string]bool{}
	seenBrand := map[string]bool{}

	for _, p := range products {
		if p.Category != "" && !seenCategory[p.Category] {
			seenCategory[p.Category] = true
			opts.Categories = append(opts.Categories, p.Category)
		}
		for _, c := range p.Colors {
			if !seenColor[c] {
				seenColor[c] = true
				opts.Colors = append(opts.Colors, c)
			}
		}
		for _, s := range p.Sizes {
			if !seenSize[s] {
				seenSize[s] = true
				opts.Sizes = append(opts.Sizes, s)
			}
		}
		if p.Brand != "" && !seenBrand[p.Brand] {
			seenBrand[p.Brand] = true
			opts.Brands = append(opts.Brands, p.Brand)
		}
	}
	return opts
}

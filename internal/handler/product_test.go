package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hunkymanie/shoply/internal/catalog"
	"github.com/hunkymanie/shoply/internal/model"
)

func TestProductList(t *testing.T) {
	h := NewProductHandler()

	req := httptest.NewRequest("GET", "/api/products", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Products []model.Product `json:"products"`
		Total    int             `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Total != len(catalog.Products) {
		t.Errorf("total = %d, want %d", body.Total, len(catalog.Products))
	}
}

func TestProductListFiltered(t *testing.T) {
	h := NewProductHandler()

	req := httptest.NewRequest("GET", "/api/products?category=Shoes&isSale=true", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	var body struct {
		Products []model.Product `json:"products"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Products) == 0 {
		t.Fatal("no sale shoes returned")
	}
	for _, p := range body.Products {
		if !p.IsSale {
			t.Errorf("product %s is not on sale", p.ID)
		}
	}
}

func TestProductListSort(t *testing.T) {
	h := NewProductHandler()

	req := httptest.NewRequest("GET", "/api/products?sortBy=price-low", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	var body struct {
		Products []model.Product `json:"products"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(body.Products); i++ {
		if body.Products[i].EffectivePrice() < body.Products[i-1].EffectivePrice() {
			t.Fatalf("products not sorted by ascending price at index %d", i)
		}
	}
}

func TestProductGet(t *testing.T) {
	h := NewProductHandler()

	req := httptest.NewRequest("GET", "/api/products/1", nil)
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()
	h.Get(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var p model.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatal(err)
	}
	if p.ID != "1" {
		t.Errorf("product ID = %q, want 1", p.ID)
	}

	req = httptest.NewRequest("GET", "/api/products/999", nil)
	req.SetPathValue("id", "999")
	rec = httptest.NewRecorder()
	h.Get(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown product status = %d, want 404", rec.Code)
	}
}

func TestProductFacets(t *testing.T) {
	h := NewProductHandler()

	rec := httptest.NewRecorder()
	h.Facets(rec, httptest.NewRequest("GET", "/api/products/facets", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var opts catalog.FacetOptions
	if err := json.Unmarshal(rec.Body.Bytes(), &opts); err != nil {
		t.Fatal(err)
	}
	if len(opts.Categories) == 0 || len(opts.Brands) == 0 {
		t.Errorf("facets = %+v, want populated", opts)
	}
}

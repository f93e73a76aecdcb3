package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/shopvibe/storefront-backend/internal/catalog"
	"github.com/shopvibe/storefront-backend/pkg/types"
)

func testCatalog(t *testing.T) catalog.Service {
	t.Helper()
	original := int64(14999)
	svc, err := catalog.NewService([]catalog.Product{
		{ID: "1", Name: "Wireless Headphones", Price: 10999, OriginalPrice: &original, Category: "Electronics", Rating: 4.5, ReviewCount: 128, InStock: true, Featured: true},
		{ID: "2", Name: "Smartphone", Price: 65999, Category: "Electronics", Rating: 4.8, ReviewCount: 256, InStock: true},
		{ID: "3", Name: "Running Sneakers", Price: 7499, Category: "Fashion", Rating: 4.3, ReviewCount: 89, InStock: false},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return svc
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	var envelope types.SuccessEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	raw, err := json.Marshal(envelope.Data)
	if err != nil {
		t.Fatalf("re-marshal data: %v", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func TestProductListAppliesFilters(t *testing.T) {
	t.Parallel()
	handler := ProductList(testCatalog(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/products?categories=Electronics&price_max=20000&sort=price-low", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	var body productListResponse
	decodeData(t, rec, &body)
	if body.Total != 1 || len(body.Items) != 1 || body.Items[0].ID != "1" {
		t.Fatalf("unexpected listing %+v", body)
	}
}

func TestProductListRejectsInvertedPriceRange(t *testing.T) {
	t.Parallel()
	handler := ProductList(testCatalog(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/products?price_min=500&price_max=100", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestProductListUnknownSortFallsBack(t *testing.T) {
	t.Parallel()
	handler := ProductList(testCatalog(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/products?sort=bogus", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var body productListResponse
	decodeData(t, rec, &body)
	if body.Total != 3 || body.Items[0].ID != "1" {
		t.Fatalf("expected catalog order, got %+v", body)
	}
}

func TestProductDetail(t *testing.T) {
	t.Parallel()
	r := chi.NewRouter()
	r.Get("/products/{productId}", ProductDetail(testCatalog(t), nil))

	req := httptest.NewRequest(http.MethodGet, "/products/1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var body struct {
		ID              string `json:"id"`
		DiscountPercent int    `json:"discountPercent"`
	}
	decodeData(t, rec, &body)
	if body.ID != "1" || body.DiscountPercent != 27 {
		t.Fatalf("unexpected detail %+v", body)
	}
}

func TestProductDetailNotFound(t *testing.T) {
	t.Parallel()
	r := chi.NewRouter()
	r.Get("/products/{productId}", ProductDetail(testCatalog(t), nil))

	req := httptest.NewRequest(http.MethodGet, "/products/ghost", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestProductsFeaturedAndCategories(t *testing.T) {
	t.Parallel()
	svc := testCatalog(t)

	rec := httptest.NewRecorder()
	ProductsFeatured(svc, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/featured", nil))
	var featured productListResponse
	decodeData(t, rec, &featured)
	if featured.Total != 1 || featured.Items[0].ID != "1" {
		t.Fatalf("unexpected featured %+v", featured)
	}

	rec = httptest.NewRecorder()
	ProductCategories(svc, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/categories", nil))
	var categories struct {
		Categories []string `json:"categories"`
	}
	decodeData(t, rec, &categories)
	if len(categories.Categories) != 2 || categories.Categories[0] != "Electronics" {
		t.Fatalf("unexpected categories %+v", categories)
	}
}

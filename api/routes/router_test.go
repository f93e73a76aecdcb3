package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/shopvibe/storefront-backend/internal/accounts"
	cartsvc "github.com/shopvibe/storefront-backend/internal/cart"
	"github.com/shopvibe/storefront-backend/internal/catalog"
	checkoutsvc "github.com/shopvibe/storefront-backend/internal/checkout"
	"github.com/shopvibe/storefront-backend/pkg/config"
	"github.com/shopvibe/storefront-backend/pkg/metrics"
	"github.com/shopvibe/storefront-backend/pkg/types"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type memCartStore struct {
	carts map[string]cartsvc.Cart
}

func (m *memCartStore) Load(ctx context.Context, sessionID string) (cartsvc.Cart, error) {
	return append(cartsvc.Cart{}, m.carts[sessionID]...), nil
}

func (m *memCartStore) Save(ctx context.Context, sessionID string, cart cartsvc.Cart) error {
	m.carts[sessionID] = append(cartsvc.Cart{}, cart...)
	return nil
}

func (m *memCartStore) Delete(ctx context.Context, sessionID string) error {
	delete(m.carts, sessionID)
	return nil
}

type stubWishlist struct{}

func (stubWishlist) List(ctx context.Context, sessionID string) ([]catalog.Product, error) {
	return []catalog.Product{}, nil
}

func (stubWishlist) Add(ctx context.Context, sessionID, productID string) error {
	return nil
}

func (stubWishlist) Remove(ctx context.Context, sessionID, productID string) error {
	return nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{Env: "development"},
		Checkout: config.CheckoutConfig{
			TaxRate:               0.18,
			ShippingFlatFee:       99,
			FreeShippingThreshold: 999,
			CouponCode:            "save10",
			CouponPercent:         10,
		},
	}

	catalogService, err := catalog.NewService(catalog.DefaultProducts)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	cartService, err := cartsvc.NewService(&memCartStore{carts: map[string]cartsvc.Cart{}})
	if err != nil {
		t.Fatalf("build cart: %v", err)
	}
	accountService := accounts.NewService()
	checkoutService, err := checkoutsvc.NewService(cartService, accountService, checkoutsvc.RulesFromConfig(cfg.Checkout), 0)
	if err != nil {
		t.Fatalf("build checkout: %v", err)
	}

	registry := prometheus.NewRegistry()
	return NewRouter(
		cfg,
		nil,
		stubPinger{},
		registry,
		metrics.NewHTTPMetrics(registry),
		catalogService,
		cartService,
		checkoutService,
		accountService,
		stubWishlist{},
	)
}

func TestRouterHealthAndPing(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	for _, path := range []string{"/health/live", "/health/ready", "/api/public/ping", "/metrics"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, rec.Code)
		}
	}
}

func TestRouterMintsSessionID(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if rec.Header().Get("X-Session-Id") == "" {
		t.Fatal("expected a session id on the response")
	}
}

func TestRouterCartFlow(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	add := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", bytes.NewBufferString(`{"productId":"1"}`))
	add.Header.Set("X-Session-Id", "sess-router")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, add)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add: expected 201 got %d: %s", rec.Code, rec.Body.String())
	}

	fetch := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	fetch.Header.Set("X-Session-Id", "sess-router")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, fetch)
	if rec.Code != http.StatusOK {
		t.Fatalf("fetch: expected 200 got %d", rec.Code)
	}

	var envelope types.SuccessEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	data, ok := envelope.Data.(map[string]any)
	if !ok {
		t.Fatalf("unexpected payload %T", envelope.Data)
	}
	if count, _ := data["itemCount"].(float64); count != 1 {
		t.Fatalf("expected one unit in the cart, got %v", data["itemCount"])
	}

	// A different session sees an empty cart.
	other := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	other.Header.Set("X-Session-Id", "sess-other")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, other)
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	data = envelope.Data.(map[string]any)
	if count, _ := data["itemCount"].(float64); count != 0 {
		t.Fatalf("expected empty cart for other session, got %v", data["itemCount"])
	}
}

func TestRouterCheckoutFlow(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	add := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", bytes.NewBufferString(`{"productId":"2"}`))
	add.Header.Set("X-Session-Id", "sess-checkout")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, add)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add: expected 201 got %d", rec.Code)
	}

	order := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", bytes.NewBufferString(`{
		"email":"shopper@example.com","firstName":"Asha","lastName":"Rao",
		"phone":"9999999999","address":"12 MG Road","city":"Bengaluru",
		"state":"KA","pincode":"560001","paymentMethod":"upi","upiId":"asha@upi"}`))
	order.Header.Set("X-Session-Id", "sess-checkout")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, order)
	if rec.Code != http.StatusCreated {
		t.Fatalf("checkout: expected 201 got %d: %s", rec.Code, rec.Body.String())
	}

	// The cart is cleared and the order shows up in the history.
	fetch := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	fetch.Header.Set("X-Session-Id", "sess-checkout")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, fetch)
	var envelope types.SuccessEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	data := envelope.Data.(map[string]any)
	if count, _ := data["itemCount"].(float64); count != 0 {
		t.Fatalf("expected cleared cart, got %v", data["itemCount"])
	}

	orders := httptest.NewRequest(http.MethodGet, "/api/v1/account/orders", nil)
	orders.Header.Set("X-Session-Id", "sess-checkout")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, orders)
	if rec.Code != http.StatusOK {
		t.Fatalf("orders: expected 200 got %d", rec.Code)
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	history := envelope.Data.(map[string]any)["orders"].([]any)
	if len(history) != 1 {
		t.Fatalf("expected one recorded order, got %d", len(history))
	}
}

package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopvibe/storefront-backend/internal/accounts"
)

func TestAccountRegister(t *testing.T) {
	t.Parallel()
	handler := AccountRegister(accounts.NewService(), nil)

	payload := bytes.NewBufferString(`{"firstName":"Asha","lastName":"Rao","email":"asha@example.com","password":"secret","confirmPassword":"secret"}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/account/register", payload), "sess-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	var profile accounts.Profile
	decodeData(t, rec, &profile)
	if profile.Email != "asha@example.com" || profile.FirstName != "Asha" {
		t.Fatalf("unexpected profile %+v", profile)
	}
}

func TestAccountRegisterPasswordMismatch(t *testing.T) {
	t.Parallel()
	handler := AccountRegister(accounts.NewService(), nil)

	payload := bytes.NewBufferString(`{"firstName":"Asha","email":"asha@example.com","password":"secret","confirmPassword":"other"}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/account/register", payload), "sess-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAccountLogin(t *testing.T) {
	t.Parallel()
	handler := AccountLogin(accounts.NewService(), nil)

	payload := bytes.NewBufferString(`{"email":"asha@example.com","password":"whatever"}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/account/login", payload), "sess-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	var profile accounts.Profile
	decodeData(t, rec, &profile)
	if profile.Email != "asha@example.com" {
		t.Fatalf("unexpected profile %+v", profile)
	}
}

func TestAccountOrdersEmptyHistory(t *testing.T) {
	t.Parallel()
	handler := AccountOrders(accounts.NewService(), nil)

	req := withSession(httptest.NewRequest(http.MethodGet, "/account/orders", nil), "sess-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Orders []accounts.OrderRecord `json:"orders"`
	}
	decodeData(t, rec, &body)
	if len(body.Orders) != 0 {
		t.Fatalf("expected empty history, got %+v", body.Orders)
	}
}

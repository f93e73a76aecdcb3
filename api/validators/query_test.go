package validators

import (
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/shopvibe/storefront-backend/pkg/errors"
)

func TestParseQueryInt64Ptr(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/?price_min=500", nil)
	value, err := ParseQueryInt64Ptr(r, "price_min")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if value == nil || *value != 500 {
		t.Fatalf("expected 500, got %v", value)
	}

	r = httptest.NewRequest("GET", "/", nil)
	value, err = ParseQueryInt64Ptr(r, "price_min")
	if err != nil || value != nil {
		t.Fatalf("absent parameter must yield nil, got %v %v", value, err)
	}

	r = httptest.NewRequest("GET", "/?price_min=abc", nil)
	_, err = ParseQueryInt64Ptr(r, "price_min")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseQueryList(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/?categories=Electronics,Fashion,%20Home", nil)
	values := ParseQueryList(r, "categories")
	if len(values) != 3 || values[0] != "Electronics" || values[2] != "Home" {
		t.Fatalf("unexpected list %v", values)
	}

	r = httptest.NewRequest("GET", "/", nil)
	if got := ParseQueryList(r, "categories"); got != nil {
		t.Fatalf("absent parameter must yield nil, got %v", got)
	}
}

func TestParseQueryFloatList(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/?ratings=4,4.5", nil)
	values, err := ParseQueryFloatList(r, "ratings")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(values) != 2 || values[1] != 4.5 {
		t.Fatalf("unexpected floats %v", values)
	}

	r = httptest.NewRequest("GET", "/?ratings=four", nil)
	if _, err := ParseQueryFloatList(r, "ratings"); err == nil {
		t.Fatal("expected error for non-numeric list")
	}
}

func TestParseQueryBool(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/?in_stock=true", nil)
	value, err := ParseQueryBool(r, "in_stock")
	if err != nil || !value {
		t.Fatalf("expected true, got %v %v", value, err)
	}

	r = httptest.NewRequest("GET", "/", nil)
	value, err = ParseQueryBool(r, "in_stock")
	if err != nil || value {
		t.Fatalf("absent parameter must yield false, got %v %v", value, err)
	}
}

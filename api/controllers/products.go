package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/shopvibe/storefront-backend/api/responses"
	"github.com/shopvibe/storefront-backend/api/validators"
	"github.com/shopvibe/storefront-backend/internal/catalog"
	pkgerrors "github.com/shopvibe/storefront-backend/pkg/errors"
	"github.com/shopvibe/storefront-backend/pkg/logger"
)

type productListResponse struct {
	Items []catalog.Product `json:"items"`
	Total int               `json:"total"`
}

type productDetailResponse struct {
	catalog.Product
	DiscountPercent int `json:"discountPercent,omitempty"`
}

// ProductList serves the browse page: every query parameter is optional and
// combines conjunctively with the others.
func ProductList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		params, err := listParamsFromQuery(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		items := svc.List(params)
		responses.WriteSuccess(w, productListResponse{Items: items, Total: len(items)})
	}
}

func listParamsFromQuery(r *http.Request) (catalog.ListParams, error) {
	priceMin, err := validators.ParseQueryInt64Ptr(r, "price_min")
	if err != nil {
		return catalog.ListParams{}, err
	}
	priceMax, err := validators.ParseQueryInt64Ptr(r, "price_max")
	if err != nil {
		return catalog.ListParams{}, err
	}
	if priceMin != nil && priceMax != nil && *priceMin > *priceMax {
		return catalog.ListParams{}, pkgerrors.New(pkgerrors.CodeValidation, "price_min must not exceed price_max")
	}
	ratings, err := validators.ParseQueryFloatList(r, "ratings")
	if err != nil {
		return catalog.ListParams{}, err
	}
	inStock, err := validators.ParseQueryBool(r, "in_stock")
	if err != nil {
		return catalog.ListParams{}, err
	}

	return catalog.ListParams{
		Search:      strings.TrimSpace(r.URL.Query().Get("search")),
		PriceMin:    priceMin,
		PriceMax:    priceMax,
		Categories:  validators.ParseQueryList(r, "categories"),
		MinRatings:  ratings,
		InStockOnly: inStock,
		SortBy:      catalog.ParseSortKey(r.URL.Query().Get("sort")),
	}, nil
}

// ProductDetail returns one product plus its derived discount percentage.
func ProductDetail(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		productID := chi.URLParam(r, "productId")
		product, err := svc.Get(productID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, productDetailResponse{
			Product:         product,
			DiscountPercent: product.DiscountPercent(),
		})
	}
}

// ProductsFeatured returns the home-page picks in catalog order.
func ProductsFeatured(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		items := svc.Featured()
		responses.WriteSuccess(w, productListResponse{Items: items, Total: len(items)})
	}
}

// ProductCategories returns the distinct categories in catalog order.
func ProductCategories(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		responses.WriteSuccess(w, map[string]any{"categories": svc.Categories()})
	}
}

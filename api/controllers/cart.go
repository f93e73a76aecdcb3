package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopvibe/storefront-backend/api/middleware"
	"github.com/shopvibe/storefront-backend/api/responses"
	"github.com/shopvibe/storefront-backend/api/validators"
	cartsvc "github.com/shopvibe/storefront-backend/internal/cart"
	"github.com/shopvibe/storefront-backend/internal/catalog"
	checkoutsvc "github.com/shopvibe/storefront-backend/internal/checkout"
	pkgerrors "github.com/shopvibe/storefront-backend/pkg/errors"
	"github.com/shopvibe/storefront-backend/pkg/logger"
)

type cartResponse struct {
	Items     cartsvc.Cart      `json:"items"`
	ItemCount int               `json:"itemCount"`
	Summary   checkoutsvc.Quote `json:"summary"`
}

type addCartItemPayload struct {
	ProductID string `json:"productId" validate:"required"`
}

type updateCartItemPayload struct {
	Quantity int `json:"quantity"`
}

// CartFetch returns the session's entries plus a coupon-free summary quote.
func CartFetch(svc cartsvc.Service, quoter checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil || quoter == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		items, err := svc.Get(ctx, sessionID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		summary, err := quoter.Quote(ctx, sessionID, "")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, cartResponse{Items: items, ItemCount: items.ItemCount(), Summary: summary})
	}
}

// CartAddItem resolves the product against the catalog and adds one unit.
func CartAddItem(svc cartsvc.Service, products catalog.Service, quoter checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil || products == nil || quoter == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload addCartItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product, err := products.Get(payload.ProductID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		items, err := svc.Add(ctx, sessionID, product)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		summary, err := quoter.Quote(ctx, sessionID, "")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, cartResponse{Items: items, ItemCount: items.ItemCount(), Summary: summary})
	}
}

// CartUpdateItem sets the quantity for an entry. Zero or negative removes it.
func CartUpdateItem(svc cartsvc.Service, quoter checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil || quoter == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload updateCartItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		productID := chi.URLParam(r, "productId")
		items, err := svc.UpdateQuantity(ctx, sessionID, productID, payload.Quantity)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		summary, err := quoter.Quote(ctx, sessionID, "")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, cartResponse{Items: items, ItemCount: items.ItemCount(), Summary: summary})
	}
}

// CartRemoveItem drops the entry outright, whatever its quantity.
func CartRemoveItem(svc cartsvc.Service, quoter checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil || quoter == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		productID := chi.URLParam(r, "productId")
		items, err := svc.Remove(ctx, sessionID, productID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		summary, err := quoter.Quote(ctx, sessionID, "")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, cartResponse{Items: items, ItemCount: items.ItemCount(), Summary: summary})
	}
}

// CartSummary returns just the derived totals, optionally with a coupon
// applied via the ?coupon= query parameter.
func CartSummary(quoter checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if quoter == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		summary, err := quoter.Quote(ctx, sessionID, r.URL.Query().Get("coupon"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, summary)
	}
}

// CartClear empties the session's cart.
func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		if err := svc.Clear(ctx, sessionID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "cleared"})
	}
}

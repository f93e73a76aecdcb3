package controllers

import (
	"net/http"

	"github.com/shopvibe/storefront-backend/api/middleware"
	"github.com/shopvibe/storefront-backend/api/responses"
	"github.com/shopvibe/storefront-backend/api/validators"
	checkoutsvc "github.com/shopvibe/storefront-backend/internal/checkout"
	pkgerrors "github.com/shopvibe/storefront-backend/pkg/errors"
	"github.com/shopvibe/storefront-backend/pkg/logger"
)

type quotePayload struct {
	CouponCode string `json:"couponCode" validate:"omitempty,max=32"`
}

type placeOrderPayload struct {
	Email         string `json:"email" validate:"required,email"`
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	Phone         string `json:"phone" validate:"required,min=10,max=15"`
	Address       string `json:"address" validate:"required"`
	Landmark      string `json:"landmark" validate:"omitempty"`
	City          string `json:"city" validate:"required"`
	State         string `json:"state" validate:"required"`
	Pincode       string `json:"pincode" validate:"required,len=6,numeric"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=card upi cod"`
	CardNumber    string `json:"cardNumber" validate:"required_if=PaymentMethod card,omitempty,len=16,numeric"`
	CardExpiry    string `json:"cardExpiry" validate:"required_if=PaymentMethod card"`
	CardCVV       string `json:"cardCvv" validate:"required_if=PaymentMethod card,omitempty,len=3,numeric"`
	UPIID         string `json:"upiId" validate:"required_if=PaymentMethod upi"`
	CouponCode    string `json:"couponCode" validate:"omitempty,max=32"`
}

func (p placeOrderPayload) toOrderForm() checkoutsvc.OrderForm {
	return checkoutsvc.OrderForm{
		Email:         p.Email,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Phone:         p.Phone,
		Address:       p.Address,
		Landmark:      p.Landmark,
		City:          p.City,
		State:         p.State,
		Pincode:       p.Pincode,
		PaymentMethod: p.PaymentMethod,
		CouponCode:    p.CouponCode,
	}
}

// CheckoutQuote derives the order total breakdown for the current cart,
// optionally applying a coupon.
func CheckoutQuote(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var payload quotePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		quote, err := svc.Quote(ctx, sessionID, payload.CouponCode)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, quote)
	}
}

// CheckoutPlaceOrder validates the shipping form, places the order, and
// returns the confirmation with the follow-up navigation intent.
func CheckoutPlaceOrder(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var payload placeOrderPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		confirmation, err := svc.PlaceOrder(ctx, sessionID, payload.toOrderForm())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, confirmation)
	}
}

package checkout

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/shopvibe/storefront-backend/internal/cart"
	"github.com/shopvibe/storefront-backend/pkg/config"
	pkgerrors "github.com/shopvibe/storefront-backend/pkg/errors"
)

// Rules carries the pricing constants applied to every quote.
type Rules struct {
	TaxRate               decimal.Decimal
	ShippingFlatFee       int64
	FreeShippingThreshold int64
	CouponCode            string
	CouponPercent         int64
}

// RulesFromConfig lifts the env-backed checkout settings into quote rules.
func RulesFromConfig(cfg config.CheckoutConfig) Rules {
	return Rules{
		TaxRate:               decimal.NewFromFloat(cfg.TaxRate),
		ShippingFlatFee:       cfg.ShippingFlatFee,
		FreeShippingThreshold: cfg.FreeShippingThreshold,
		CouponCode:            cfg.CouponCode,
		CouponPercent:         cfg.CouponPercent,
	}
}

// Quote is the derived order total breakdown. All amounts are integer minor
// units; fractional tax and discount round half away from zero.
type Quote struct {
	Subtotal       int64   `json:"subtotal"`
	ItemCount      int     `json:"itemCount"`
	Shipping       int64   `json:"shipping"`
	Tax            int64   `json:"tax"`
	CouponDiscount int64   `json:"couponDiscount"`
	AppliedCoupon  *string `json:"appliedCoupon"`
	Total          int64   `json:"total"`
}

// ComputeQuote derives the order totals for the given cart. An empty coupon
// code means no coupon; an unknown code is rejected without touching the
// rest of the quote.
func ComputeQuote(entries cart.Cart, couponCode string, rules Rules) (Quote, error) {
	subtotal := entries.Total()

	quote := Quote{
		Subtotal:  subtotal,
		ItemCount: entries.ItemCount(),
		Shipping:  rules.ShippingFlatFee,
	}
	if subtotal > rules.FreeShippingThreshold {
		quote.Shipping = 0
	}

	quote.Tax = decimal.NewFromInt(subtotal).Mul(rules.TaxRate).Round(0).IntPart()

	if couponCode != "" {
		if !strings.EqualFold(couponCode, rules.CouponCode) {
			return Quote{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid coupon code")
		}
		applied := couponCode
		quote.AppliedCoupon = &applied
		quote.CouponDiscount = decimal.NewFromInt(subtotal).
			Mul(decimal.NewFromInt(rules.CouponPercent)).
			Div(decimal.NewFromInt(100)).
			Round(0).
			IntPart()
	}

	quote.Total = quote.Subtotal + quote.Shipping + quote.Tax - quote.CouponDiscount
	return quote, nil
}

package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopvibe/storefront-backend/internal/accounts"
	"github.com/shopvibe/storefront-backend/internal/cart"
	pkgerrors "github.com/shopvibe/storefront-backend/pkg/errors"
)

type cartLedger interface {
	Get(ctx context.Context, sessionID string) (cart.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

type orderRecorder interface {
	RecordOrder(ctx context.Context, sessionID string, order accounts.OrderRecord) error
}

// OrderForm is the validated shipping/payment payload for order placement.
// Field-level validation happens at the HTTP boundary; the service only
// enforces cross-field business rules.
type OrderForm struct {
	Email         string
	FirstName     string
	LastName      string
	Phone         string
	Address       string
	Landmark      string
	City          string
	State         string
	Pincode       string
	PaymentMethod string
	CouponCode    string
}

// Confirmation is the result of a placed order, including the navigation
// intent the storefront acts on afterwards.
type Confirmation struct {
	OrderNumber string    `json:"orderNumber"`
	PlacedAt    time.Time `json:"placedAt"`
	Quote       Quote     `json:"quote"`
	NextPage    string    `json:"nextPage"`
}

// Service derives order totals and executes order placement.
type Service interface {
	Quote(ctx context.Context, sessionID, couponCode string) (Quote, error)
	PlaceOrder(ctx context.Context, sessionID string, form OrderForm) (*Confirmation, error)
}

type service struct {
	ledger          cartLedger
	history         orderRecorder
	rules           Rules
	processingDelay time.Duration
	now             func() time.Time
}

// NewService builds the checkout service.
func NewService(ledger cartLedger, history orderRecorder, rules Rules, processingDelay time.Duration) (Service, error) {
	if ledger == nil {
		return nil, fmt.Errorf("cart ledger required")
	}
	if history == nil {
		return nil, fmt.Errorf("order recorder required")
	}
	return &service{
		ledger:          ledger,
		history:         history,
		rules:           rules,
		processingDelay: processingDelay,
		now:             time.Now,
	}, nil
}

// Quote recomputes the total breakdown from the current cart state. Nothing
// is cached: every call reflects the ledger as it stands.
func (s *service) Quote(ctx context.Context, sessionID, couponCode string) (Quote, error) {
	entries, err := s.ledger.Get(ctx, sessionID)
	if err != nil {
		return Quote{}, err
	}
	return ComputeQuote(entries, couponCode, s.rules)
}

// PlaceOrder validates cart state, derives the final quote, simulates the
// cosmetic processing step, records the order, and empties the cart. The
// returned confirmation carries the "home" navigation intent.
func (s *service) PlaceOrder(ctx context.Context, sessionID string, form OrderForm) (*Confirmation, error) {
	entries, err := s.ledger.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty")
	}

	quote, err := ComputeQuote(entries, form.CouponCode, s.rules)
	if err != nil {
		return nil, err
	}

	if err := s.simulateProcessing(ctx); err != nil {
		return nil, err
	}

	confirmation := &Confirmation{
		OrderNumber: uuid.NewString(),
		PlacedAt:    s.now(),
		Quote:       quote,
		NextPage:    "home",
	}

	record := accounts.OrderRecord{
		OrderNumber: confirmation.OrderNumber,
		PlacedAt:    confirmation.PlacedAt,
		Status:      "confirmed",
		Total:       quote.Total,
		Items:       make([]accounts.OrderItem, 0, len(entries)),
	}
	for _, entry := range entries {
		record.Items = append(record.Items, accounts.OrderItem{
			ProductID: entry.ID,
			Name:      entry.Name,
			Price:     entry.Price,
			Quantity:  entry.Quantity,
		})
	}
	if err := s.history.RecordOrder(ctx, sessionID, record); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record order")
	}

	if err := s.ledger.Clear(ctx, sessionID); err != nil {
		return nil, err
	}

	return confirmation, nil
}

// simulateProcessing is the fixed-delay "processing" step. It has no retry
// or cancellation semantics beyond honoring the request context.
func (s *service) simulateProcessing(ctx context.Context) error {
	if s.processingDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.processingDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return pkgerrors.Wrap(pkgerrors.CodeDependency, ctx.Err(), "checkout interrupted")
	}
}

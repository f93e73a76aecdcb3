package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopvibe/storefront-backend/internal/catalog"
	pkgerrors "github.com/shopvibe/storefront-backend/pkg/errors"
)

// Service is the cart ledger: it owns the entry list for every session and
// is the only writer of cart state. Every mutation flushes the full list to
// the store before returning.
type Service interface {
	Get(ctx context.Context, sessionID string) (Cart, error)
	Add(ctx context.Context, sessionID string, product catalog.Product) (Cart, error)
	Remove(ctx context.Context, sessionID, productID string) (Cart, error)
	UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

type service struct {
	store Store

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService builds the ledger on top of a persistence store.
func NewService(store Store) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	return &service{
		store: store,
		locks: map[string]*sync.Mutex{},
	}, nil
}

// sessionLock serializes mutations per session so there is exactly one
// logical writer per ledger.
func (s *service) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	return lock
}

// Get returns the current entry list for the session.
func (s *service) Get(ctx context.Context, sessionID string) (Cart, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return cart, nil
}

// Add inserts a quantity-1 entry for a new product or increments the
// existing entry. It always succeeds against valid storage.
func (s *service) Add(ctx context.Context, sessionID string, product catalog.Product) (Cart, error) {
	if product.ID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	return s.mutate(ctx, sessionID, func(cart Cart) Cart {
		if i := cart.indexOf(product.ID); i >= 0 {
			cart[i].Quantity++
			return cart
		}
		return append(cart, Entry{Product: product, Quantity: 1})
	})
}

// Remove deletes the entry with the given identifier. Removing an absent
// product is a no-op, not an error.
func (s *service) Remove(ctx context.Context, sessionID, productID string) (Cart, error) {
	return s.mutate(ctx, sessionID, func(cart Cart) Cart {
		return removeEntry(cart, productID)
	})
}

// UpdateQuantity sets the entry's quantity. A quantity of zero or less
// behaves as Remove; an unknown product is a no-op.
func (s *service) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (Cart, error) {
	if quantity <= 0 {
		return s.Remove(ctx, sessionID, productID)
	}
	return s.mutate(ctx, sessionID, func(cart Cart) Cart {
		if i := cart.indexOf(productID); i >= 0 {
			cart[i].Quantity = quantity
		}
		return cart
	})
}

// Clear drops the session's ledger entirely.
func (s *service) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.store.Delete(ctx, sessionID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}

func (s *service) mutate(ctx context.Context, sessionID string, apply func(Cart) Cart) (Cart, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	cart = apply(cart)

	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart")
	}
	return cart, nil
}

func removeEntry(cart Cart, productID string) Cart {
	kept := cart[:0]
	for _, entry := range cart {
		if entry.ID != productID {
			kept = append(kept, entry)
		}
	}
	return kept
}

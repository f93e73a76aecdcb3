package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/shopvibe/storefront-backend/internal/catalog"
	pkgerrors "github.com/shopvibe/storefront-backend/pkg/errors"
)

type memStore struct {
	carts   map[string]Cart
	saves   int
	loadErr error
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{carts: map[string]Cart{}}
}

func (m *memStore) Load(ctx context.Context, sessionID string) (Cart, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append(Cart(nil), m.carts[sessionID]...), nil
}

func (m *memStore) Save(ctx context.Context, sessionID string, cart Cart) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.carts[sessionID] = append(Cart(nil), cart...)
	return nil
}

func (m *memStore) Delete(ctx context.Context, sessionID string) error {
	delete(m.carts, sessionID)
	return nil
}

func headphones() catalog.Product {
	return catalog.Product{ID: "1", Name: "Wireless Bluetooth Headphones", Price: 10999, InStock: true}
}

func phone() catalog.Product {
	return catalog.Product{ID: "2", Name: "Premium Smartphone", Price: 65999, InStock: true}
}

func newLedger(t *testing.T, store Store) Service {
	t.Helper()
	svc, err := NewService(store)
	if err != nil {
		t.Fatalf("build ledger: %v", err)
	}
	return svc
}

func TestAddSameProductIncrementsSingleEntry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newLedger(t, newMemStore())

	var cart Cart
	var err error
	for i := 0; i < 5; i++ {
		cart, err = svc.Add(ctx, "sess", headphones())
		if err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}

	if len(cart) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(cart))
	}
	if cart.ItemCount() != 5 {
		t.Fatalf("expected item count 5, got %d", cart.ItemCount())
	}
}

func TestTotalMatchesPriceTimesQuantity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newLedger(t, newMemStore())

	if _, err := svc.Add(ctx, "sess", headphones()); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(ctx, "sess", phone()); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, err := svc.Add(ctx, "sess", phone())
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	// 10999*1 + 65999*2
	if got := cart.Total(); got != 142997 {
		t.Fatalf("expected total 142997, got %d", got)
	}
}

func TestTotalInvariantUnderReordering(t *testing.T) {
	t.Parallel()

	a := Cart{
		{Product: headphones(), Quantity: 1},
		{Product: phone(), Quantity: 2},
	}
	b := Cart{
		{Product: phone(), Quantity: 2},
		{Product: headphones(), Quantity: 1},
	}
	if a.Total() != b.Total() {
		t.Fatalf("totals diverged: %d vs %d", a.Total(), b.Total())
	}
}

func TestUpdateQuantityZeroAndNegativeRemove(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for _, qty := range []int{0, -1} {
		svc := newLedger(t, newMemStore())
		if _, err := svc.Add(ctx, "sess", headphones()); err != nil {
			t.Fatalf("add: %v", err)
		}
		cart, err := svc.UpdateQuantity(ctx, "sess", "1", qty)
		if err != nil {
			t.Fatalf("update qty %d: %v", qty, err)
		}
		if len(cart) != 0 {
			t.Fatalf("quantity %d should remove the entry, got %+v", qty, cart)
		}
	}
}

func TestUpdateQuantitySetsValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newLedger(t, newMemStore())

	if _, err := svc.Add(ctx, "sess", headphones()); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, err := svc.UpdateQuantity(ctx, "sess", "1", 7)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if cart.ItemCount() != 7 {
		t.Fatalf("expected quantity 7, got %d", cart.ItemCount())
	}
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newLedger(t, newMemStore())

	if _, err := svc.Add(ctx, "sess", headphones()); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, err := svc.UpdateQuantity(ctx, "sess", "ghost", 3)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(cart) != 1 || cart[0].Quantity != 1 {
		t.Fatalf("unknown product update must not change state, got %+v", cart)
	}
}

func TestRemoveAbsentProductIsNoop(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newLedger(t, newMemStore())

	if _, err := svc.Add(ctx, "sess", headphones()); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, err := svc.Remove(ctx, "sess", "ghost")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(cart) != 1 {
		t.Fatalf("expected untouched cart, got %+v", cart)
	}
}

func TestEveryMutationPersists(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newMemStore()
	svc := newLedger(t, store)

	if _, err := svc.Add(ctx, "sess", headphones()); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.UpdateQuantity(ctx, "sess", "1", 3); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := svc.Remove(ctx, "sess", "1"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if store.saves != 3 {
		t.Fatalf("expected a persistence write per mutation, got %d", store.saves)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newLedger(t, newMemStore())

	if _, err := svc.Add(ctx, "alice", headphones()); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, err := svc.Get(ctx, "bob")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(cart) != 0 {
		t.Fatalf("bob's cart should be empty, got %+v", cart)
	}
}

func TestStoreFailureSurfacesAsDependencyError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newMemStore()
	store.saveErr = errors.New("redis down")
	svc := newLedger(t, store)

	_, err := svc.Add(ctx, "sess", headphones())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

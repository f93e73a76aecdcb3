package wishlist

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopvibe/storefront-backend/internal/catalog"
	pkgerrors "github.com/shopvibe/storefront-backend/pkg/errors"
	"github.com/shopvibe/storefront-backend/pkg/redis"
)

type productLoader interface {
	Get(productID string) (catalog.Product, error)
}

type kvClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	WishlistKey(sessionID string) string
}

// Service manages the session-scoped set of liked products.
type Service interface {
	List(ctx context.Context, sessionID string) ([]catalog.Product, error)
	Add(ctx context.Context, sessionID, productID string) error
	Remove(ctx context.Context, sessionID, productID string) error
}

type service struct {
	kv      kvClient
	catalog productLoader
}

// NewService builds the wishlist service on the shared redis client.
func NewService(client *redis.Client, catalogSvc catalog.Service) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	if catalogSvc == nil {
		return nil, fmt.Errorf("catalog service required")
	}
	return &service{kv: client, catalog: catalogSvc}, nil
}

// List resolves the liked IDs against the catalog. IDs that no longer match
// a product are silently dropped.
func (s *service) List(ctx context.Context, sessionID string) ([]catalog.Product, error) {
	ids, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	products := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		product, err := s.catalog.Get(id)
		if err != nil {
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

// Add verifies the product exists and stores the liked ID. Re-adding is a
// no-op.
func (s *service) Add(ctx context.Context, sessionID, productID string) error {
	if _, err := s.catalog.Get(productID); err != nil {
		return err
	}
	ids, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == productID {
			return nil
		}
	}
	return s.save(ctx, sessionID, append(ids, productID))
}

// Remove drops the liked ID regardless of prior state.
func (s *service) Remove(ctx context.Context, sessionID, productID string) error {
	ids, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	kept := ids[:0]
	for _, id := range ids {
		if id != productID {
			kept = append(kept, id)
		}
	}
	return s.save(ctx, sessionID, kept)
}

func (s *service) load(ctx context.Context, sessionID string) ([]string, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	raw, err := s.kv.Get(ctx, s.kv.WishlistKey(sessionID))
	if err != nil {
		if redis.IsMissing(err) {
			return []string{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load wishlist")
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return []string{}, nil
	}
	return ids, nil
}

func (s *service) save(ctx context.Context, sessionID string, ids []string) error {
	blob, err := json.Marshal(ids)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode wishlist")
	}
	if err := s.kv.Set(ctx, s.kv.WishlistKey(sessionID), string(blob), 0); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist wishlist")
	}
	return nil
}

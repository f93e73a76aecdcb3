package cart

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopvibe/storefront-backend/pkg/logger"
	"github.com/shopvibe/storefront-backend/pkg/redis"
)

// Store persists the full entry list for a session. Writes overwrite the
// whole blob; there is no incremental update.
type Store interface {
	Load(ctx context.Context, sessionID string) (Cart, error)
	Save(ctx context.Context, sessionID string, cart Cart) error
	Delete(ctx context.Context, sessionID string) error
}

type kvClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CartKey(sessionID string) string
}

// RedisStore keeps cart blobs in Redis under sv:cart:<session>.
type RedisStore struct {
	client kvClient
	logg   *logger.Logger
}

// NewRedisStore wires the cart store to the shared redis client.
func NewRedisStore(client *redis.Client, logg *logger.Logger) *RedisStore {
	return &RedisStore{client: client, logg: logg}
}

// Load reads and parses the persisted blob. A missing or unparseable value
// yields an empty cart, never an error: corrupt state degrades to "empty".
func (s *RedisStore) Load(ctx context.Context, sessionID string) (Cart, error) {
	raw, err := s.client.Get(ctx, s.client.CartKey(sessionID))
	if err != nil {
		if redis.IsMissing(err) {
			return Cart{}, nil
		}
		return nil, err
	}

	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), "unparseable cart blob, starting empty")
		}
		return Cart{}, nil
	}
	return cart, nil
}

// Save overwrites the persisted blob with the full entry list.
func (s *RedisStore) Save(ctx context.Context, sessionID string, cart Cart) error {
	if cart == nil {
		cart = Cart{}
	}
	blob, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.client.CartKey(sessionID), string(blob), 0)
}

// Delete removes the persisted blob entirely.
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.client.CartKey(sessionID))
}

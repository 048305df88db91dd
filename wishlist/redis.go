package wishlist

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/abduulthecoder/fam-vans-parts-store/models"
)

const defaultKey = "wishlist"

// RedisStore keeps the wishlist under a single Redis key as a JSON array,
// the server-side stand-in for the browser's local storage slot.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore builds a store on the given client. An empty key uses the
// default "wishlist" slot.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = defaultKey
	}
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) Items(ctx context.Context) ([]models.Product, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return []models.Product{}, nil
	}
	if err != nil {
		return nil, err
	}
	return decode(raw)
}

func (s *RedisStore) Add(ctx context.Context, p models.Product) (bool, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return false, err
	}
	items, changed := addItem(items, p)
	if !changed {
		return false, nil
	}
	return true, s.write(ctx, items)
}

func (s *RedisStore) Remove(ctx context.Context, partNumber string) (bool, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return false, err
	}
	items, changed := removeItem(items, partNumber)
	if !changed {
		return false, nil
	}
	return true, s.write(ctx, items)
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}

func (s *RedisStore) write(ctx context.Context, items []models.Product) error {
	raw, err := encode(items)
	if err != nil {
		return err
	}
	// No TTL: the wishlist survives across sessions until cleared.
	return s.client.Set(ctx, s.key, raw, 0).Err()
}

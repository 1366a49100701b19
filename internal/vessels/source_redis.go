package vessels

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"marineval/pkg/platform/sentinel"
)

// RedisSource reads vessel names from a redis list, letting deployments share
// one allowed-vessel list across instances. The list is read once at startup;
// the registry built from it never changes afterwards.
type RedisSource struct {
	client *redis.Client
	key    string
}

// NewRedisSource constructs a source reading the given list key.
func NewRedisSource(client *redis.Client, key string) *RedisSource {
	return &RedisSource{client: client, key: key}
}

// Names fetches the full list in insertion order, preserving the
// first-occurrence-wins dedupe semantics of registry construction.
func (s *RedisSource) Names(ctx context.Context) ([]string, error) {
	names, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read vessel list %q: %v: %w", s.key, err, sentinel.ErrUnavailable)
	}
	return names, nil
}

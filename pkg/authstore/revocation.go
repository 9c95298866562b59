package authstore

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// RevocationList remembers signed-out token ids until they would have
// expired anyway.
type RevocationList interface {
	Revoke(ctx context.Context, tokenId string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenId string) (bool, error)
}

type memoryRevocationList struct {
	cache *cache.Cache
}

// NewMemoryRevocationList is enough for a single instance.
func NewMemoryRevocationList() RevocationList {
	return &memoryRevocationList{cache: cache.New(24*time.Hour, 10*time.Minute)}
}

func (l *memoryRevocationList) Revoke(_ context.Context, tokenId string, ttl time.Duration) error {
	l.cache.Set(tokenId, struct{}{}, ttl)
	return nil
}

func (l *memoryRevocationList) IsRevoked(_ context.Context, tokenId string) (bool, error) {
	_, found := l.cache.Get(tokenId)
	return found, nil
}

type redisRevocationList struct {
	rdb *redis.Client
}

func NewRedisRevocationList(rdb *redis.Client) RevocationList {
	return &redisRevocationList{rdb: rdb}
}

func revocationKey(tokenId string) string {
	return "auth:revoked:" + tokenId
}

func (l *redisRevocationList) Revoke(ctx context.Context, tokenId string, ttl time.Duration) error {
	return l.rdb.Set(ctx, revocationKey(tokenId), 1, ttl).Err()
}

func (l *redisRevocationList) IsRevoked(ctx context.Context, tokenId string) (bool, error) {
	n, err := l.rdb.Exists(ctx, revocationKey(tokenId)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

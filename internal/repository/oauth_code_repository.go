package repository

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// OAuthCodeRepository remembers authorization codes that were already
// exchanged. Claim reports true only the first time a code is seen.
type OAuthCodeRepository interface {
	Claim(ctx context.Context, code string, ttl time.Duration) (bool, error)
	PurgeExpired(ctx context.Context, now time.Time) int
}

type memoryCodeRepository struct {
	mu    sync.Mutex
	codes map[string]time.Time
}

func NewMemoryCodeRepository() OAuthCodeRepository {
	return &memoryCodeRepository{codes: map[string]time.Time{}}
}

func (r *memoryCodeRepository) Claim(ctx context.Context, code string, ttl time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if exp, ok := r.codes[code]; ok && now.Before(exp) {
		return false, nil
	}
	r.codes[code] = now.Add(ttl)
	return true, nil
}

func (r *memoryCodeRepository) PurgeExpired(ctx context.Context, now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	purged := 0
	for code, exp := range r.codes {
		if !now.Before(exp) {
			delete(r.codes, code)
			purged++
		}
	}
	return purged
}

type redisCodeRepository struct {
	rdb *redis.Client
}

// NewRedisCodeRepository shares the ledger between processes. Keys expire
// on their own, so PurgeExpired has nothing to do.
func NewRedisCodeRepository(rdb *redis.Client) OAuthCodeRepository {
	return &redisCodeRepository{rdb: rdb}
}

func (r *redisCodeRepository) Claim(ctx context.Context, code string, ttl time.Duration) (bool, error) {
	return r.rdb.SetNX(ctx, "oauth:code:"+code, 1, ttl).Result()
}

func (r *redisCodeRepository) PurgeExpired(ctx context.Context, now time.Time) int {
	return 0
}

package names

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const keyPrefix = "gamebank:player-name:"

// CachedResolver keeps resolved names in Redis. Redis errors only cost a
// lookup; they never fail the resolution.
type CachedResolver struct {
	next Resolver
	rdb  redis.Cmdable
	ttl  time.Duration
}

func NewCachedResolver(next Resolver, rdb redis.Cmdable, ttl time.Duration) *CachedResolver {
	return &CachedResolver{
		next: next,
		rdb:  rdb,
		ttl:  ttl,
	}
}

func (r *CachedResolver) ResolveName(ctx context.Context, accountID string) (string, error) {
	key := keyPrefix + accountID

	name, err := r.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		return name, nil
	case !errors.Is(err, redis.Nil):
		zap.L().Warn("player name cache read failed", zap.String("account", accountID), zap.Error(err))
	}

	name, err = r.next.ResolveName(ctx, accountID)
	if err != nil {
		return "", err
	}
	if err := r.rdb.Set(ctx, key, name, r.ttl).Err(); err != nil {
		zap.L().Warn("player name cache write failed", zap.String("account", accountID), zap.Error(err))
	}
	return name, nil
}

package memory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	pkgLog "travel-assistant/pkg/log"
)

// RedisStore keeps session documents in Redis with a sliding TTL.
type RedisStore struct {
	rdb redis.UniversalClient
	ttl time.Duration
	l   pkgLog.Logger
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(rdb redis.UniversalClient, l pkgLog.Logger, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &RedisStore{rdb: rdb, ttl: ttl, l: l}
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrEmptySessionID
	}
	data, err := r.rdb.Get(ctx, RedisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", LogPrefixRedisStore, ErrMsgRedisGet, err)
	}
	return Unmarshal(data)
}

func (r *RedisStore) Save(ctx context.Context, id string, s *Session) error {
	if id == "" {
		return ErrEmptySessionID
	}
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	if err := r.rdb.Set(ctx, RedisKeyPrefix+id, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("%s: %s: %w", LogPrefixRedisStore, ErrMsgRedisSet, err)
	}
	r.l.Debugf(ctx, "%s: saved session %s (%d interactions)", LogPrefixRedisStore, id, s.Len())
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptySessionID
	}
	if err := r.rdb.Del(ctx, RedisKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("%s: %s: %w", LogPrefixRedisStore, ErrMsgRedisDel, err)
	}
	return nil
}

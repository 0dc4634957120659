package queue

import (
	"context"
	"time"

	"github.com/redis/rueidis"
)

// RedisQuota shares creation counters across API instances. Each key is an
// INCR counter that expires when its window closes.
type RedisQuota struct {
	client rueidis.Client
	prefix string
	limit  int64
	window time.Duration
}

func NewRedisQuota(client rueidis.Client, prefix string, limit int, window time.Duration) *RedisQuota {
	return &RedisQuota{
		client: client,
		prefix: prefix,
		limit:  int64(limit),
		window: window,
	}
}

func (r *RedisQuota) key(key string) string {
	return r.prefix + ":" + key
}

func (r *RedisQuota) Acquire(ctx context.Context, key string) error {
	k := r.key(key)

	count, err := r.client.Do(ctx, r.client.B().Incr().Key(k).Build()).AsInt64()
	if err != nil {
		return err
	}

	if count == 1 {
		cmd := r.client.B().Pexpire().Key(k).Milliseconds(r.window.Milliseconds()).Build()
		if err := r.client.Do(ctx, cmd).Error(); err != nil {
			return err
		}
	}

	if count > r.limit {
		return ErrQuotaExceeded
	}

	return nil
}

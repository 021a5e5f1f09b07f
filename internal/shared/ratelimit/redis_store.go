package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ Limiter = (*RedisLimiter)(nil)

const incrementScript = `
local current = tonumber(redis.call('INCR', KEYS[1]))
if current == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return {current, redis.call('PTTL', KEYS[1])}
`

var increment = redis.NewScript(incrementScript)

// RedisLimiter is a fixed window counter stored in Redis.
// Safe for multi-instance deployments.
type RedisLimiter struct {
	client redis.UniversalClient
	config Config
	now    func() time.Time
}

// NewRedisLimiter creates a limiter over client. Prefix defaults to "ratelimit".
func NewRedisLimiter(client redis.UniversalClient, config Config) (*RedisLimiter, error) {
	if client == nil {
		return nil, errors.New("ratelimit: redis client is required")
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	if config.Prefix == "" {
		config.Prefix = "ratelimit"
	}
	return &RedisLimiter{client: client, config: config, now: time.Now}, nil
}

func (l *RedisLimiter) key(key string) string {
	return l.config.Prefix + ":" + key
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	values, err := increment.Run(ctx, l.client, []string{l.key(key)}, l.config.Window.Milliseconds()).Int64Slice()
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit: redis eval failed: %w", err)
	}
	if len(values) != 2 {
		return Result{}, fmt.Errorf("ratelimit: unexpected script reply of %d values", len(values))
	}

	result := evaluate(values[0], values[1], l.config, l.now())
	if !result.Allowed && l.config.OnLimited != nil {
		l.config.OnLimited(ctx, key, result)
	}
	return result, nil
}

func (l *RedisLimiter) Peek(ctx context.Context, key string) (Result, error) {
	fullKey := l.key(key)

	pipe := l.client.Pipeline()
	countCmd := pipe.Get(ctx, fullKey)
	ttlCmd := pipe.PTTL(ctx, fullKey)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return Result{}, fmt.Errorf("ratelimit: redis peek failed: %w", err)
	}

	count, err := countCmd.Int64()
	if errors.Is(err, redis.Nil) {
		count = 0
	} else if err != nil {
		return Result{}, fmt.Errorf("ratelimit: invalid counter for %q: %w", key, err)
	}

	// The next event must still fit, so a full counter is already limited.
	result := evaluate(count+1, ttlCmd.Val().Milliseconds(), l.config, l.now())
	if result.Allowed {
		result.Remaining++
	}
	return result, nil
}

func (l *RedisLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.key(key)).Err(); err != nil {
		return fmt.Errorf("ratelimit: redis reset failed: %w", err)
	}
	return nil
}

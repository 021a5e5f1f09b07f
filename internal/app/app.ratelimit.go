package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/joshuarp/passhash-api/internal/shared/config"
	sharedratelimit "github.com/joshuarp/passhash-api/internal/shared/ratelimit"
)

func provideRedisClient(cfg config.ConfigProvider) *redis.Client {
	host := strings.TrimSpace(cfg.GetString("redis.host"))
	if host == "" {
		host = "localhost"
	}

	port := cfg.GetInt("redis.port")
	if port == 0 {
		port = 6379
	}

	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: cfg.GetString("redis.password"),
		DB:       cfg.GetInt("redis.db"),
	})
}

// provideLoginAttemptsLimiter counts failed logins per email.
func provideLoginAttemptsLimiter(cfg config.ConfigProvider, redisClient *redis.Client, logger *slog.Logger) (sharedratelimit.Limiter, error) {
	return newScopedLimiter(cfg, redisClient, logger, limiterScope{
		name:          "login",
		limitKey:      "rate_limit.login.max_attempts",
		windowKey:     "rate_limit.login.window",
		defaultLimit:  5,
		defaultWindow: 15 * time.Minute,
	})
}

func provideHashVerifyLimiter(cfg config.ConfigProvider, redisClient *redis.Client, logger *slog.Logger) (sharedratelimit.Limiter, error) {
	return newScopedLimiter(cfg, redisClient, logger, limiterScope{
		name:          "hash_verify",
		limitKey:      "rate_limit.hash_verify.limit",
		windowKey:     "rate_limit.hash_verify.window",
		defaultLimit:  30,
		defaultWindow: time.Minute,
	})
}

type limiterScope struct {
	name          string
	limitKey      string
	windowKey     string
	defaultLimit  int
	defaultWindow time.Duration
}

func newScopedLimiter(cfg config.ConfigProvider, redisClient *redis.Client, logger *slog.Logger, scope limiterScope) (sharedratelimit.Limiter, error) {
	if redisClient == nil {
		return nil, fmt.Errorf("app: redis client is required for %s rate limiter", scope.name)
	}

	limit := cfg.GetInt(scope.limitKey)
	if limit <= 0 {
		limit = scope.defaultLimit
	}

	window := cfg.GetDuration(scope.windowKey)
	if window <= 0 {
		window = scope.defaultWindow
	}

	limiter, err := sharedratelimit.NewRedisLimiter(redisClient, sharedratelimit.Config{
		Limit:  int64(limit),
		Window: window,
		Prefix: "passhash:" + scope.name,
		OnLimited: func(_ context.Context, key string, result sharedratelimit.Result) {
			if logger != nil {
				logger.Warn("rate limit exceeded", "scope", scope.name, "key", key, "limit", result.Limit)
			}
		},
	})
	if err != nil {
		return nil, fmt.Errorf("app: failed to init %s rate limiter: %w", scope.name, err)
	}

	return limiter, nil
}

package auth

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/event-ops/coffee-orders/internal/config"
)

// LoginLimiter bounds passcode attempts per client address using a Redis
// counter with a rolling expiry. When Redis is unreachable the limiter
// fails open so the store outage does not lock everyone out.
type LoginLimiter struct {
	client *redis.Client
	logger *zap.Logger
	cfg    config.LoginConfig
}

// NewLoginLimiter constructs the limiter.
func NewLoginLimiter(client *redis.Client, logger *zap.Logger, cfg config.LoginConfig) *LoginLimiter {
	return &LoginLimiter{client: client, logger: logger, cfg: cfg}
}

// Allow records an attempt for the address and reports whether it is
// still within the configured budget.
func (l *LoginLimiter) Allow(ctx context.Context, addr string) bool {
	if l == nil || l.client == nil || l.cfg.MaxAttempts <= 0 {
		return true
	}

	key := fmt.Sprintf("login_attempts:%s", addr)
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		l.logger.Warn("login limiter unavailable", zap.Error(err))
		return true
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.cfg.Window()).Err(); err != nil {
			l.logger.Warn("login limiter expire failed", zap.Error(err))
		}
	}
	return count <= int64(l.cfg.MaxAttempts)
}

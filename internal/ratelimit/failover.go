package ratelimit

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"shareit/internal/lib/logger/sl"
)

const recoveryInterval = time.Minute

// FailoverLimiter serves from the primary limiter and switches to the
// fallback when the primary fails, probing the primary again after
// recoveryInterval.
type FailoverLimiter struct {
	primary  Limiter
	fallback Limiter
	log      *slog.Logger

	isDown    atomic.Bool
	lastCheck atomic.Int64
}

func NewFailoverLimiter(primary, fallback Limiter, log *slog.Logger) *FailoverLimiter {
	return &FailoverLimiter{
		primary:  primary,
		fallback: fallback,
		log:      log,
	}
}

func (l *FailoverLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if !l.isDown.Load() {
		allowed, err := l.primary.Allow(ctx, key)
		if err == nil {
			return allowed, nil
		}

		l.log.Error("primary rate limiter failed, falling back to memory", sl.Err(err))
		l.isDown.Store(true)
		l.lastCheck.Store(time.Now().UnixNano())
	}

	if l.isDown.Load() && time.Since(time.Unix(0, l.lastCheck.Load())) > recoveryInterval {
		allowed, err := l.primary.Allow(ctx, key)
		if err == nil {
			l.isDown.Store(false)
			return allowed, nil
		}

		l.lastCheck.Store(time.Now().UnixNano())
	}

	return l.fallback.Allow(ctx, key)
}

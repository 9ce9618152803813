package ratelimit

import "context"

// Limiter decides whether a caller identified by key may proceed.
// Implementations count requests within a fixed window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

package service

import (
	"context"
	"time"
)

// withStoreTimeout bounds a single store round-trip. A zero timeout leaves ctx unbounded.
func withStoreTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

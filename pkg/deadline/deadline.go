// Package deadline bounds calls to external stores.
package deadline

import (
	"context"
	"time"
)

// Bound derives a context that expires after timeout. A timeout <= 0 means
// unbounded: the context is only cancellable.
func Bound(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

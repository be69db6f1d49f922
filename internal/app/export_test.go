package app

import (
	"context"
	"time"
)

// WatchWithWindow runs Watch with a custom debounce window.
func (a *App) WatchWithWindow(ctx context.Context, opts RunOptions, window time.Duration) error {
	return a.watch(ctx, opts, window)
}

// Ignored exposes ignored for testing.
var Ignored = ignored

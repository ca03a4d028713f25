package app

import (
	"context"
	"log/slog"

	"nounform/internal/logging"
)

// cleanupStack manages shutdown functions in LIFO order.
// Resources are released in reverse order of acquisition.
type cleanupStack struct {
	items []cleanupItem
}

type cleanupItem struct {
	name string
	fn   func(context.Context) error
}

func (s *cleanupStack) push(name string, fn func(context.Context) error) {
	s.items = append(s.items, cleanupItem{name: name, fn: fn})
}

// run calls every cleanup function once and returns the first error.
func (s *cleanupStack) run(ctx context.Context, logger *logging.Logger) error {
	var first error
	for i := len(s.items) - 1; i >= 0; i-- {
		item := s.items[i]
		if logger != nil {
			logger.Debug("shutting down " + item.name)
		}
		if err := item.fn(ctx); err != nil {
			if first == nil {
				first = err
			}
			if logger != nil {
				logger.Warn("cleanup error",
					slog.String("component", item.name),
					slog.String("error", err.Error()),
				)
			}
		}
	}
	s.items = nil
	return first
}

// Shutdown flushes and releases metric and log providers. It is safe to
// call multiple times; only the first call does any work.
func (a *App) Shutdown(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var err error
	a.shutdownOnce.Do(func() {
		err = a.cleanup.run(ctx, a.logger)
	})
	return err
}

package store

import (
	"context"
	"log/slog"
	"time"
)

// cleanupInterval controls how often the TTL sweep runs.
const cleanupInterval = 10 * time.Minute

// StartCleanupWorker sweeps idle sessions in the background until ctx is
// canceled. Sweep failures are logged and retried on the next tick.
func StartCleanupWorker(ctx context.Context, repo Repository, ttl time.Duration) {
	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				slog.Info("Session cleanup worker stopped")
				return
			case <-ticker.C:
				deleted, err := repo.CleanupExpiredSessions(ctx, ttl)
				if err != nil {
					slog.Warn("Session cleanup failed", "error", err)
					continue
				}
				if deleted > 0 {
					slog.Info("Expired sessions removed", "count", deleted)
				}
			}
		}
	}()
}

package user

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// StartBlacklistSweeper periodically removes blacklist rows whose tokens
// have passed their own expiry; a revoked-but-expired token is rejected by
// signature verification anyway, so the row is redundant. Stops when ctx is
// cancelled.
func StartBlacklistSweeper(ctx context.Context, repo Repository, interval time.Duration, logger *zap.Logger) {
	if logger == nil {
		logger = zap.L()
	}
	logger = logger.Named("user.blacklist_sweeper")

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := repo.DeleteExpiredBlacklist(ctx, time.Now())
				if err != nil {
					logger.Error("blacklist sweep failed", zap.Error(err))
					continue
				}
				if n > 0 {
					logger.Info("blacklist swept", zap.Int64("removed", n))
				}
			}
		}
	}()
}

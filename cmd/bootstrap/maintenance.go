package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"airvoucher-admin/internal/usecase/commands"

	"go.uber.org/fx"
)

const idempotencyPurgeInterval = time.Hour

var MaintenanceModule = fx.Module("maintenance",
	fx.Invoke(StartIdempotencyPurge),
)

// StartIdempotencyPurge deletes expired upload idempotency keys on a fixed interval.
func StartIdempotencyPurge(lc fx.Lifecycle, cmds commands.MaintenanceCommands, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(idempotencyPurgeInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						purged, err := cmds.PurgeExpiredIdempotencyKeys(ctx)
						if err != nil {
							logger.Error("Failed to purge idempotency keys", "error", err)
							continue
						}
						if purged > 0 {
							logger.Info("Purged expired idempotency keys", "count", purged)
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}

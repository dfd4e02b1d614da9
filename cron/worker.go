package cron

import (
	"context"
	"time"

	"github.com/maksim-leskin/api-chik-chik/services/schedule"
	"github.com/maksim-leskin/api-chik-chik/utils"

	"go.uber.org/zap"
)

// StartScheduleWorker runs the availability rebuild cycle in the background:
// an immediate staleness check at startup, then one every checkPeriod. The
// ticker is owned by a single goroutine, so cycles can never overlap, and a
// failed cycle never stops the next one.
func StartScheduleWorker(ctx context.Context, svc schedule.ScheduleService, checkPeriod time.Duration) {
	logger := utils.GetLogger()

	go func() {
		runRebuildCycle(ctx, svc, logger)

		ticker := time.NewTicker(checkPeriod)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Info("Schedule worker shutdown signal received")
				return
			case <-ticker.C:
				runRebuildCycle(ctx, svc, logger)
			}
		}
	}()
}

func runRebuildCycle(ctx context.Context, svc schedule.ScheduleService, logger *zap.Logger) {
	if err := svc.RebuildIfStale(ctx); err != nil {
		logger.Error("Schedule rebuild cycle failed", zap.Error(err))
	}
}

package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Mukunt07/subramaniya-mess/internal/conf"
	"github.com/Mukunt07/subramaniya-mess/internal/dao/repository"
)

// ActivityLogPruner periodically deletes activity entries older than the
// configured retention. The trail is best-effort operational history, not an
// accounting record, so pruning it is safe.
type ActivityLogPruner struct {
	activityRepo repository.ActivityLogRepository
	logger       *zap.Logger
	interval     time.Duration
	retention    time.Duration
}

// NewActivityLogPruner creates a new instance of the pruner worker.
func NewActivityLogPruner(activityRepo repository.ActivityLogRepository, logger *zap.Logger, cfg *conf.WorkerConfig) *ActivityLogPruner {
	return &ActivityLogPruner{
		activityRepo: activityRepo,
		logger:       logger.Named("ActivityLogPruner"),
		interval:     time.Duration(cfg.ActivityLogPruner.IntervalSeconds) * time.Second,
		retention:    time.Duration(cfg.ActivityLogPruner.RetentionDays) * 24 * time.Hour,
	}
}

// Start begins the worker's polling loop. It respects the context for
// graceful shutdown.
func (p *ActivityLogPruner) Start(ctx context.Context) {
	p.logger.Info("Activity log pruner started",
		zap.Duration("interval", p.interval),
		zap.Duration("retention", p.retention))
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.prune(ctx)
		case <-ctx.Done():
			p.logger.Info("Activity log pruner shutting down")
			return
		}
	}
}

func (p *ActivityLogPruner) prune(ctx context.Context) {
	cutoff := time.Now().Add(-p.retention)
	deleted, err := p.activityRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		p.logger.Error("Failed to prune activity log", zap.Error(err))
		return
	}
	if deleted > 0 {
		p.logger.Info("Pruned activity log entries", zap.Int64("deleted", deleted), zap.Time("cutoff", cutoff))
	}
}

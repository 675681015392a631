package jobs

import (
	"context"
	"fmt"
)

type ReconcileCountersConfig struct {
	SkipIdeas bool `mapstructure:"skip_ideas"`
}

// ReconcileCounters repairs denormalized counters that drifted because a side
// effect failed after its primary write committed.
func (h *handler) ReconcileCounters(ctx context.Context, c Config) error {
	var cfg ReconcileCountersConfig
	if err := c.Decode(&cfg); err != nil {
		return fmt.Errorf("invalid config for %s job: %w", TypeReconcileCounters, err)
	}

	h.logger.Info(ctx, "running reconcile counters job")

	corrected, err := h.commentService.ReconcileAggregates(ctx)
	if err != nil {
		return fmt.Errorf("reconciling comment aggregates: %w", err)
	}
	h.logger.Info(ctx, "comment aggregates reconciled", "corrected", corrected)

	if cfg.SkipIdeas {
		return nil
	}

	corrected, err = h.ideaCounter.ReconcileIdeaCommentCounts(ctx)
	if err != nil {
		return fmt.Errorf("reconciling idea comment counts: %w", err)
	}
	h.logger.Info(ctx, "idea comment counts reconciled", "corrected", corrected)
	return nil
}

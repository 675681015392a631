package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/goto/discuss/core/report"
	"github.com/goto/discuss/domain"
)

var TimeNow = time.Now

type FlaggedCommentsReminderConfig struct {
	// Moderators overrides the moderators configured for the comment service
	Moderators []string `mapstructure:"moderators"`
	// MinAge only counts comments whose latest flag is at least this old
	MinAge time.Duration `mapstructure:"min_age"`
}

func (h *handler) FlaggedCommentsReminder(ctx context.Context, c Config) error {
	var cfg FlaggedCommentsReminderConfig
	if err := c.Decode(&cfg); err != nil {
		return fmt.Errorf("invalid config for %s job: %w", TypeFlaggedCommentsReminder, err)
	}

	h.logger.Info(ctx, "running flagged comments reminder job")

	filter := &report.FlaggedCommentsFilter{
		Statuses: []string{domain.CommentStatusFlagged.String()},
	}
	if cfg.MinAge > 0 {
		before := TimeNow().Add(-cfg.MinAge)
		filter.FlaggedBefore = &before
	}

	count, err := h.reportService.CountFlaggedComments(ctx, filter)
	if err != nil {
		h.logger.Info(ctx, "failed to count flagged comments")
		return err
	}
	h.logger.Info(ctx, "counted flagged comments", "count", count)
	if count == 0 {
		return nil
	}

	moderators := cfg.Moderators
	if len(moderators) == 0 {
		moderators = h.moderators
	}

	notifications := make([]domain.Notification, 0, len(moderators))
	for _, m := range moderators {
		notifications = append(notifications, domain.Notification{
			User: m,
			Message: domain.NotificationMessage{
				Type: domain.NotificationTypeFlaggedCommentsReminder,
				Variables: map[string]interface{}{
					"flagged_count": count,
				},
			},
		})
	}

	if errs := h.notifier.Notify(ctx, notifications); errs != nil {
		for _, e := range errs {
			h.logger.Error(ctx, "failed to send notifications", "error", e)
		}
	}

	h.logger.Info(ctx, "flagged comments reminders sent", "moderators", len(notifications))
	return nil
}

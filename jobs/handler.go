package jobs

import (
	"context"

	"github.com/goto/discuss/core/report"
	"github.com/goto/discuss/domain"
	"github.com/goto/discuss/pkg/log"
)

//go:generate mockery --name=commentService --exported --with-expecter
type commentService interface {
	ReconcileAggregates(context.Context) (int64, error)
}

//go:generate mockery --name=ideaCounter --exported --with-expecter
type ideaCounter interface {
	ReconcileIdeaCommentCounts(context.Context) (int64, error)
}

//go:generate mockery --name=reportService --exported --with-expecter
type reportService interface {
	CountFlaggedComments(context.Context, *report.FlaggedCommentsFilter) (int64, error)
}

//go:generate mockery --name=notifier --exported --with-expecter
type notifier interface {
	Notify(context.Context, []domain.Notification) []error
}

type handler struct {
	logger         log.Logger
	commentService commentService
	ideaCounter    ideaCounter
	reportService  reportService
	notifier       notifier
	moderators     []string
}

func NewHandler(
	logger log.Logger,
	commentService commentService,
	ideaCounter ideaCounter,
	reportService reportService,
	notifier notifier,
	moderators []string,
) *handler {
	return &handler{
		logger:         logger,
		commentService: commentService,
		ideaCounter:    ideaCounter,
		reportService:  reportService,
		notifier:       notifier,
		moderators:     moderators,
	}
}

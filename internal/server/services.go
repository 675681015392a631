package server

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/goto/discuss/core/comment"
	"github.com/goto/discuss/core/event"
	"github.com/goto/discuss/core/mention"
	"github.com/goto/discuss/core/report"
	"github.com/goto/discuss/internal/store/postgres"
	"github.com/goto/discuss/pkg/audit"
	"github.com/goto/discuss/pkg/log"
	"github.com/goto/discuss/pkg/markdown"
	"github.com/goto/discuss/plugins/attachments"
	"github.com/goto/discuss/plugins/notifiers"
)

type ServiceDeps struct {
	Config    *Config
	Logger    log.Logger
	Validator *validator.Validate
	Notifier  notifiers.Client
}

type Services struct {
	Store             *postgres.Store
	CommentService    *comment.Service
	ReportService     *report.Service
	EventService      *event.Service
	ContentRepository *postgres.ContentRepository
}

// Close releases the database connection pool
func (s *Services) Close() error {
	return s.Store.Close()
}

func InitServices(ctx context.Context, deps ServiceDeps) (*Services, error) {
	st, err := postgres.NewClient(deps.Config.DB)
	if err != nil {
		return nil, fmt.Errorf("initializing store: %w", err)
	}
	db := st.DB()

	commentRepository := postgres.NewCommentRepository(db)
	contentRepository := postgres.NewContentRepository(db)
	identityRepository := postgres.NewIdentityRepository(db)
	auditLogRepository := postgres.NewAuditLogRepository(db)
	reportRepository := report.NewRepository(db)

	commentDeps := comment.ServiceDeps{
		Repository:      commentRepository,
		TargetService:   contentRepository,
		MentionResolver: mention.NewResolver(identityRepository, deps.Config.Mention, deps.Logger),
		Renderer:        markdown.NewRenderer(),
		Notifier:        deps.Notifier,
		Logger:          deps.Logger,
		AuditLogger:     audit.New(auditLogRepository),
		Validator:       deps.Validator,
		Config:          &deps.Config.Comment,
	}

	attachmentStore, err := attachments.New(ctx, deps.Config.Attachments)
	if err != nil {
		st.Close() //nolint:errcheck
		return nil, fmt.Errorf("initializing attachment store: %w", err)
	}
	if attachmentStore != nil {
		commentDeps.AttachmentStore = attachmentStore
	}

	return &Services{
		Store:          st,
		CommentService: comment.NewService(commentDeps),
		ReportService: report.NewService(report.ServiceDeps{
			Repository: reportRepository,
			Validator:  deps.Validator,
		}),
		EventService:      event.NewService(auditLogRepository, deps.Validator, deps.Logger),
		ContentRepository: contentRepository,
	}, nil
}

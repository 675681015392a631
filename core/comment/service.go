package comment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/goto/discuss/domain"
	"github.com/goto/discuss/pkg/log"
	"github.com/goto/discuss/pkg/retry"
)

const (
	AuditKeyCreate   = "comment.create"
	AuditKeyReply    = "comment.reply"
	AuditKeyEdit     = "comment.edit"
	AuditKeyDelete   = "comment.delete"
	AuditKeyFlag     = "comment.flag"
	AuditKeyAutoFlag = "comment.autoFlag"
	AuditKeyModerate = "comment.moderate"
)

var TimeNow = time.Now

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	Create(context.Context, *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	List(context.Context, domain.ListCommentsFilter) ([]*domain.Comment, error)
	Count(context.Context, domain.ListCommentsFilter) (int64, error)
	ListByParentIDs(ctx context.Context, parentIDs []string) ([]*domain.Comment, error)
	Search(context.Context, domain.SearchCommentsFilter) ([]*domain.Comment, int64, error)
	UpdateContent(context.Context, domain.CommentContentUpdate) (*domain.Comment, error)
	SoftDelete(ctx context.Context, id, placeholder string, deletedAt time.Time) (bool, error)
	ToggleLike(ctx context.Context, commentID, userID string) (bool, int, error)
	AddFlag(context.Context, *domain.CommentFlag) (bool, int, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.CommentStatus) (bool, error)
	ReconcileAggregates(context.Context) (int64, error)
}

//go:generate mockery --name=targetService --exported --with-expecter
type targetService interface {
	Exists(context.Context, domain.CommentTarget) (bool, error)
	AdjustCommentCount(ctx context.Context, ideaID string, delta int) error
}

//go:generate mockery --name=mentionResolver --exported --with-expecter
type mentionResolver interface {
	Resolve(ctx context.Context, content string) ([]string, error)
}

//go:generate mockery --name=attachmentStore --exported --with-expecter
type attachmentStore interface {
	Upload(context.Context, *domain.AttachmentUpload) (*domain.Attachment, error)
}

//go:generate mockery --name=notifier --exported --with-expecter
type notifier interface {
	Notify(context.Context, []domain.Notification) []error
}

//go:generate mockery --name=auditLogger --exported --with-expecter
type auditLogger interface {
	Log(ctx context.Context, action string, data interface{}) error
}

type renderer interface {
	Render(source string) string
}

type Service struct {
	repo            repository
	targetService   targetService
	mentionResolver mentionResolver
	attachmentStore attachmentStore
	renderer        renderer

	notifier    notifier
	logger      log.Logger
	auditLogger auditLogger
	validator   *validator.Validate
	metrics     *metrics
	config      Config
}

type ServiceDeps struct {
	Repository      repository
	TargetService   targetService
	MentionResolver mentionResolver
	// AttachmentStore is optional, uploads are rejected without it
	AttachmentStore attachmentStore
	// Renderer is optional, ContentHTML stays empty without it
	Renderer renderer

	Notifier    notifier
	Logger      log.Logger
	AuditLogger auditLogger
	Validator   *validator.Validate
	Config      *Config
}

func NewService(deps ServiceDeps) *Service {
	cfg := DefaultConfig()
	if deps.Config != nil {
		cfg = *deps.Config
	}
	v := deps.Validator
	if v == nil {
		v = validator.New()
	}

	return &Service{
		repo:            deps.Repository,
		targetService:   deps.TargetService,
		mentionResolver: deps.MentionResolver,
		attachmentStore: deps.AttachmentStore,
		renderer:        deps.Renderer,

		notifier:    deps.Notifier,
		logger:      deps.Logger,
		auditLogger: deps.AuditLogger,
		validator:   v,
		metrics:     newMetrics(),
		config:      cfg,
	}
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	if id == "" {
		return nil, ErrCommentNotFound
	}
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.storeError(ctx, "getting comment", err, "comment_id", id)
	}
	s.render(c)
	return c, nil
}

// ListByAuthor returns a page of live comments written by an author, newest first
func (s *Service) ListByAuthor(ctx context.Context, filter domain.ListAuthorCommentsFilter) (*domain.CommentPage, error) {
	if err := s.validator.Struct(filter); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err)
	}

	listFilter := domain.ListCommentsFilter{
		Author:   filter.Author,
		Statuses: []domain.CommentStatus{domain.CommentStatusActive},
		Size:     s.config.pageSize(filter.Size),
		Offset:   filter.Offset,
		OrderBy:  domain.SortOrderToOrderBy(domain.SortOrderNewest),
	}

	var (
		comments []*domain.Comment
		total    int64
	)
	eg, egctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		comments, err = s.repo.List(egctx, listFilter)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(egctx, listFilter)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, s.storeError(ctx, "listing author comments", err, "author", filter.Author)
	}

	s.render(comments...)
	return domain.NewCommentPage(comments, offsetPage(listFilter.Offset, listFilter.Size), listFilter.Size, total), nil
}

// Search matches the query against the content of live comments
func (s *Service) Search(ctx context.Context, filter domain.SearchCommentsFilter) (*domain.CommentPage, error) {
	if err := s.validator.Struct(filter); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err)
	}
	filter.Size = s.config.pageSize(filter.Size)

	comments, total, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, s.storeError(ctx, "searching comments", err, "query", filter.Query)
	}
	s.render(comments...)
	return domain.NewCommentPage(comments, offsetPage(filter.Offset, filter.Size), filter.Size, total), nil
}

// offsetPage converts an offset into the 1-based page it falls on
func offsetPage(offset, size int) int {
	if size <= 0 {
		return 1
	}
	return offset/size + 1
}

// ReconcileAggregates recomputes reply and like counts from the stored rows
// and returns the number of corrected comments
func (s *Service) ReconcileAggregates(ctx context.Context) (int64, error) {
	updated, err := s.repo.ReconcileAggregates(ctx)
	if err != nil {
		return 0, s.storeError(ctx, "reconciling aggregates", err)
	}
	if updated > 0 {
		s.logger.Warn(ctx, "comment aggregates drifted and were corrected", "count", updated)
	}
	return updated, nil
}

// storeError passes taxonomy errors through and hides anything else behind
// ErrInternal
func (s *Service) storeError(ctx context.Context, op string, err error, kv ...interface{}) error {
	if IsKnownError(err) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	s.logger.Error(ctx, "comment store failure", append([]interface{}{"op", op, "error", err}, kv...)...)
	return fmt.Errorf("%w: %s", ErrInternal, op)
}

func (s *Service) render(comments ...*domain.Comment) {
	if s.renderer == nil {
		return
	}
	for _, c := range comments {
		if c == nil {
			continue
		}
		if c.IsDeleted {
			c.ContentHTML = ""
		} else {
			c.ContentHTML = s.renderer.Render(c.Content)
		}
		s.render(c.Replies...)
	}
}

func (s *Service) resolveMentions(ctx context.Context, content string) []string {
	if s.mentionResolver == nil {
		return nil
	}
	mentions, err := s.mentionResolver.Resolve(ctx, content)
	if err != nil {
		s.logger.Warn(ctx, "failed to resolve mentions", "error", err)
		return nil
	}
	return mentions
}

// adjustIdeaCommentCount updates the idea counter outside of the comment
// write. Failures are logged and left for the reconcile job.
func (s *Service) adjustIdeaCommentCount(ctx context.Context, ideaID string, delta int) {
	err := retry.Do(ctx, s.config.SideEffectRetry, func(ctx context.Context) error {
		err := s.targetService.AdjustCommentCount(ctx, ideaID, delta)
		if errors.Is(err, ErrNotFound) {
			return retry.Permanent(err)
		}
		return err
	})
	if err != nil {
		s.metrics.sideEffectFailed(ctx, "idea_comment_count")
		s.logger.Error(ctx, "failed to adjust idea comment count", "error", err, "idea_id", ideaID, "delta", delta)
	}
}

func (s *Service) audit(ctx context.Context, o options, action string, data interface{}) {
	if o.skipAuditLog || s.auditLogger == nil {
		return
	}
	if err := s.auditLogger.Log(ctx, action, data); err != nil {
		s.logger.Error(ctx, "failed to record audit log", "error", err, "action", action)
	}
}

func validateContent(content string) error {
	if domain.IsBlankContent(content) {
		return ErrEmptyCommentContent
	}
	if domain.ContentLength(content) > domain.CommentContentMaxLength {
		return ErrCommentTooLong
	}
	return nil
}

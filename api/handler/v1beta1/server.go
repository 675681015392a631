package v1beta1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"

	"github.com/goto/discuss/core/comment"
	"github.com/goto/discuss/core/moderation"
	"github.com/goto/discuss/core/report"
	"github.com/goto/discuss/domain"
	"github.com/goto/discuss/pkg/audit"
	"github.com/goto/discuss/pkg/log"
)

//go:generate mockery --name=commentService --exported --with-expecter
type commentService interface {
	CreateRoot(context.Context, comment.CreateRootRequest) (*domain.Comment, error)
	CreateReply(context.Context, comment.CreateReplyRequest) (*domain.Comment, error)
	Edit(ctx context.Context, id string, requester domain.Actor, content string) (*domain.Comment, error)
	Delete(ctx context.Context, id string, requester domain.Actor, opts ...comment.Option) (*domain.Comment, error)
	ToggleLike(ctx context.Context, id string, userID string) (*domain.LikeResult, error)
	AddFlag(ctx context.Context, req comment.FlagRequest, opts ...comment.Option) (*domain.Comment, error)
	Moderate(ctx context.Context, id string, requester domain.Actor, event moderation.Event, opts ...comment.Option) (*domain.Comment, error)

	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	GetThreadPage(context.Context, domain.ThreadPageFilter) (*domain.CommentPage, error)
	GetReplies(context.Context, domain.ReplyPageFilter) (*domain.CommentPage, error)
	GetFullThread(ctx context.Context, id string) (*domain.Comment, error)
	Search(context.Context, domain.SearchCommentsFilter) (*domain.CommentPage, error)
	ListByAuthor(context.Context, domain.ListAuthorCommentsFilter) (*domain.CommentPage, error)
}

//go:generate mockery --name=reportService --exported --with-expecter
type reportService interface {
	GetFlaggedComments(context.Context, *report.FlaggedCommentsFilter) ([]*report.FlaggedComment, error)
	CountFlaggedComments(context.Context, *report.FlaggedCommentsFilter) (int64, error)
}

//go:generate mockery --name=eventService --exported --with-expecter
type eventService interface {
	List(context.Context, domain.ListEventsFilter) ([]*domain.Event, error)
}

type HTTPServer struct {
	commentService commentService
	reportService  reportService
	eventService   eventService
	logger         log.Logger

	moderators map[string]struct{}
}

func NewHTTPServer(
	commentService commentService,
	reportService reportService,
	eventService eventService,
	logger log.Logger,
	moderators []string,
) *HTTPServer {
	m := make(map[string]struct{}, len(moderators))
	for _, id := range moderators {
		m[id] = struct{}{}
	}
	return &HTTPServer{
		commentService: commentService,
		reportService:  reportService,
		eventService:   eventService,
		logger:         logger,
		moderators:     m,
	}
}

type route struct {
	method  string
	pattern string
	handler runtime.HandlerFunc
}

func (s *HTTPServer) routes() []route {
	return []route{
		{http.MethodGet, "/v1beta1/targets/{target_kind}/{target_id}/comments", s.GetThreadPage},
		{http.MethodPost, "/v1beta1/targets/{target_kind}/{target_id}/comments", s.CreateRootComment},

		{http.MethodGet, "/v1beta1/comments", s.SearchComments},
		{http.MethodGet, "/v1beta1/comments/{id}", s.GetComment},
		{http.MethodPatch, "/v1beta1/comments/{id}", s.EditComment},
		{http.MethodDelete, "/v1beta1/comments/{id}", s.DeleteComment},
		{http.MethodGet, "/v1beta1/comments/{id}/thread", s.GetFullThread},
		{http.MethodGet, "/v1beta1/comments/{id}/replies", s.GetReplies},
		{http.MethodPost, "/v1beta1/comments/{id}/replies", s.CreateReply},
		{http.MethodPost, "/v1beta1/comments/{id}/like", s.ToggleLike},
		{http.MethodPost, "/v1beta1/comments/{id}/flags", s.FlagComment},
		{http.MethodPost, "/v1beta1/comments/{id}/moderate", s.ModerateComment},
		{http.MethodGet, "/v1beta1/comments/{id}/events", s.ListCommentEvents},

		{http.MethodGet, "/v1beta1/users/{author}/comments", s.ListUserComments},
		{http.MethodGet, "/v1beta1/reports/flagged", s.ListFlaggedComments},
	}
}

// Register binds every comment route to mux
func (s *HTTPServer) Register(mux *runtime.ServeMux) error {
	for _, r := range s.routes() {
		if err := mux.HandlePath(r.method, r.pattern, r.handler); err != nil {
			return fmt.Errorf("registering %s %s: %w", r.method, r.pattern, err)
		}
	}
	return nil
}

func (s *HTTPServer) getUser(ctx context.Context) (domain.Actor, error) {
	userID := audit.ActorFromContext(ctx)
	if userID == "" {
		return domain.Actor{}, errUnauthenticated
	}

	role := domain.ActorRoleUser
	if _, ok := s.moderators[userID]; ok {
		role = domain.ActorRoleAdmin
	}
	return domain.Actor{ID: userID, Role: role}, nil
}

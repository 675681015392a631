package audit

import (
	"context"
	"time"

	"github.com/goto/salt/audit"
)

type AuditLogger interface {
	Log(ctx context.Context, action string, data interface{}) error
}

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	Insert(context.Context, *audit.Log) error
}

type actorContextKey struct{}

// WithActor attaches the acting user id to ctx
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

func ActorFromContext(ctx context.Context) string {
	actor, _ := ctx.Value(actorContextKey{}).(string)
	return actor
}

// Service records audit entries through a repository
type Service struct {
	repo repository
	now  func() time.Time
}

func New(repo repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Log(ctx context.Context, action string, data interface{}) error {
	return s.repo.Insert(ctx, &audit.Log{
		Timestamp: s.now(),
		Action:    action,
		Actor:     ActorFromContext(ctx),
		Data:      data,
	})
}

// Noop discards every entry
type Noop struct{}

func (Noop) Log(context.Context, string, interface{}) error { return nil }

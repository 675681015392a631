package event

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/goto/salt/audit"

	"github.com/goto/discuss/domain"
	"github.com/goto/discuss/pkg/log"
)

const defaultSize = 100

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	List(context.Context, *domain.ListAuditLogFilter) ([]*audit.Log, error)
}

type Service struct {
	repo      repository
	validator *validator.Validate
	log       log.Logger
}

func NewService(repo repository, validator *validator.Validate, log log.Logger) *Service {
	return &Service{repo: repo, validator: validator, log: log}
}

// List returns the activity history of a comment, newest first. Entries that
// can't be parsed are skipped.
func (s *Service) List(ctx context.Context, filter domain.ListEventsFilter) ([]*domain.Event, error) {
	if err := s.validator.Struct(filter); err != nil {
		return nil, fmt.Errorf("validating filter: %w", err)
	}
	size := filter.Size
	if size == 0 {
		size = defaultSize
	}

	logs, err := s.repo.List(ctx, &domain.ListAuditLogFilter{
		Actions:   filter.Types,
		CommentID: filter.CommentID,
		Size:      size,
	})
	if err != nil {
		return nil, err
	}

	events := make([]*domain.Event, 0, len(logs))
	for _, l := range logs {
		e := new(domain.Event)
		if err := e.FromAuditLog(l); err != nil {
			s.log.Warn(ctx, "skipping unparseable audit log", "action", l.Action, "error", err)
			continue
		}
		events = append(events, e)
	}

	return events, nil
}

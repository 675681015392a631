package report

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/goto/discuss/domain"
)

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	GetFlaggedComments(context.Context, *FlaggedCommentsFilter) ([]*FlaggedComment, error)
	CountFlaggedComments(context.Context, *FlaggedCommentsFilter) (int64, error)
}

type ServiceDeps struct {
	Repository repository
	Validator  *validator.Validate
}

type Service struct {
	repo      repository
	validator *validator.Validate
}

func NewService(deps ServiceDeps) *Service {
	v := deps.Validator
	if v == nil {
		v = validator.New()
	}
	return &Service{
		repo:      deps.Repository,
		validator: v,
	}
}

// GetFlaggedComments lists the moderation queue. Without explicit statuses
// only comments currently in the flagged status are returned.
func (s *Service) GetFlaggedComments(ctx context.Context, filter *FlaggedCommentsFilter) ([]*FlaggedComment, error) {
	f, err := s.normalize(filter)
	if err != nil {
		return nil, err
	}
	return s.repo.GetFlaggedComments(ctx, f)
}

func (s *Service) CountFlaggedComments(ctx context.Context, filter *FlaggedCommentsFilter) (int64, error) {
	f, err := s.normalize(filter)
	if err != nil {
		return 0, err
	}
	return s.repo.CountFlaggedComments(ctx, f)
}

func (s *Service) normalize(filter *FlaggedCommentsFilter) (*FlaggedCommentsFilter, error) {
	f := FlaggedCommentsFilter{}
	if filter != nil {
		f = *filter
	}
	if err := s.validator.Struct(f); err != nil {
		return nil, err
	}
	if len(f.Statuses) == 0 {
		f.Statuses = []string{domain.CommentStatusFlagged.String()}
	}
	return &f, nil
}

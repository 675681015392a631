package postgres

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/goto/discuss/domain"
)

type user struct {
	ID     string
	Handle string
	Name   string
}

func (user) TableName() string {
	return "users"
}

type IdentityRepository struct {
	db *gorm.DB
}

func NewIdentityRepository(db *gorm.DB) *IdentityRepository {
	return &IdentityRepository{db}
}

// ResolveHandles looks up users by handle, case insensitively. The result is
// keyed by the lowercased handle and omits unknown handles.
func (r *IdentityRepository) ResolveHandles(ctx context.Context, handles []string) (map[string]*domain.Identity, error) {
	identities := make(map[string]*domain.Identity, len(handles))
	if len(handles) == 0 {
		return identities, nil
	}

	lowered := make([]string, 0, len(handles))
	for _, h := range handles {
		lowered = append(lowered, strings.ToLower(h))
	}

	var users []*user
	if err := r.db.WithContext(ctx).Where("lower(handle) IN ?", lowered).Find(&users).Error; err != nil {
		return nil, err
	}

	for _, u := range users {
		identities[strings.ToLower(u.Handle)] = &domain.Identity{
			ID:     u.ID,
			Handle: u.Handle,
			Name:   u.Name,
		}
	}
	return identities, nil
}

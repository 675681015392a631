package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/goto/discuss/core/comment"
	"github.com/goto/discuss/domain"
)

const reconcileIdeaCommentCountsQuery = `
UPDATE ideas
SET comment_count = counts.comment_count
FROM (
	SELECT i.id,
		(SELECT count(*) FROM comments c
			WHERE c.target_kind = 'idea' AND c.target_id = i.id
				AND c.parent_id IS NULL AND c.is_deleted = false) AS comment_count
	FROM ideas i
) counts
WHERE ideas.id = counts.id AND ideas.comment_count <> counts.comment_count`

// ContentRepository reads the parent content owned by the ideas and domains
// services. Only the comment counter of an idea is written here.
type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db}
}

func (r *ContentRepository) Exists(ctx context.Context, target domain.CommentTarget) (bool, error) {
	var query string
	var id interface{} = target.ID
	switch target.Kind {
	case domain.CommentTargetKindIdea:
		query = `SELECT EXISTS(SELECT 1 FROM ideas WHERE id = ?)`
	case domain.CommentTargetKindDomain:
		query = `SELECT EXISTS(SELECT 1 FROM domains WHERE id = ?)`
	case domain.CommentTargetKindComment:
		parsed, err := uuid.Parse(target.ID)
		if err != nil {
			return false, nil
		}
		id = parsed
		query = `SELECT EXISTS(SELECT 1 FROM comments WHERE id = ? AND is_deleted = false)`
	default:
		return false, fmt.Errorf("%w: %q", comment.ErrInvalidTargetKind, target.Kind)
	}

	var exists bool
	if err := r.db.WithContext(ctx).Raw(query, id).Scan(&exists).Error; err != nil {
		return false, err
	}
	return exists, nil
}

// AdjustCommentCount moves the idea's comment counter by delta, never below
// zero.
func (r *ContentRepository) AdjustCommentCount(ctx context.Context, ideaID string, delta int) error {
	res := r.db.WithContext(ctx).
		Exec(`UPDATE ideas SET comment_count = GREATEST(comment_count + ?, 0) WHERE id = ?`, delta, ideaID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return comment.ErrTargetNotFound
	}
	return nil
}

// ReconcileIdeaCommentCounts recomputes every idea's comment counter from its
// live root comments and returns the number of ideas corrected.
func (r *ContentRepository) ReconcileIdeaCommentCounts(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Exec(reconcileIdeaCommentCountsQuery)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

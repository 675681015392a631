package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/goto/discuss/core/comment"
	"github.com/goto/discuss/core/moderation"
	"github.com/goto/discuss/domain"
	"github.com/goto/discuss/internal/store/postgres/model"
)

var errInvalidID = errors.New("invalid id")

const reconcileCommentAggregatesQuery = `
WITH counts AS (
	SELECT c.id,
		(SELECT count(*) FROM comments r WHERE r.parent_id = c.id AND r.is_deleted = false AND r.status = 'active') AS reply_count,
		(SELECT count(*) FROM comment_likes l WHERE l.comment_id = c.id) AS like_count,
		(SELECT count(*) FROM comment_flags f WHERE f.comment_id = c.id) AS flag_count
	FROM comments c
)
UPDATE comments
SET reply_count = counts.reply_count, like_count = counts.like_count, flag_count = counts.flag_count
FROM counts
WHERE comments.id = counts.id
	AND (comments.reply_count <> counts.reply_count
		OR comments.like_count <> counts.like_count
		OR comments.flag_count <> counts.flag_count)`

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db}
}

// Create inserts c and, for replies, bumps the parent's reply count in the
// same transaction so concurrent replies never lose an increment.
func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	if c.Status == "" {
		c.Status = domain.CommentStatusActive
	}
	m := &model.Comment{}
	if err := m.FromDomain(c); err != nil {
		return fmt.Errorf("%w: %s", comment.ErrValidationFailed, err)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if m.ParentID != nil {
			res := tx.Model(&model.Comment{}).
				Where("id = ? AND is_deleted = false", *m.ParentID).
				UpdateColumn("reply_count", gorm.Expr("reply_count + 1"))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return comment.ErrParentNotFound
			}
		}

		if err := tx.Omit(clause.Associations).Create(m).Error; err != nil {
			switch pgErrorCode(err) {
			case pgUniqueViolationErrorCode:
				return fmt.Errorf("%w: comment %q already exists", comment.ErrConflict, c.ID)
			case pgForeignKeyViolationErrorCode:
				return comment.ErrParentNotFound
			}
			return err
		}

		created, err := m.ToDomain()
		if err != nil {
			return err
		}
		*c = *created
		return nil
	})
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	return getCommentByID(r.db.WithContext(ctx), id)
}

func getCommentByID(db *gorm.DB, id string) (*domain.Comment, error) {
	commentID, err := uuid.Parse(id)
	if err != nil {
		return nil, comment.ErrCommentNotFound
	}

	var m model.Comment
	if err := db.
		Preload("Likes", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		Preload("Flags", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		Preload("Edits", func(db *gorm.DB) *gorm.DB { return db.Order("edited_at") }).
		First(&m, "id = ?", commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, err
	}

	return m.ToDomain()
}

func (r *CommentRepository) List(ctx context.Context, filter domain.ListCommentsFilter) ([]*domain.Comment, error) {
	db, err := applyCommentsFilter(r.db.WithContext(ctx), filter)
	if err != nil {
		if errors.Is(err, errInvalidID) {
			return []*domain.Comment{}, nil
		}
		return nil, err
	}

	for _, o := range filter.OrderBy {
		db = addOrderBy(db, o)
	}
	db = db.Order("id")
	if filter.Size > 0 {
		db = db.Limit(filter.Size)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	var models []*model.Comment
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}
	return toDomainComments(models)
}

func (r *CommentRepository) Count(ctx context.Context, filter domain.ListCommentsFilter) (int64, error) {
	db, err := applyCommentsFilter(r.db.WithContext(ctx).Model(&model.Comment{}), filter)
	if err != nil {
		if errors.Is(err, errInvalidID) {
			return 0, nil
		}
		return 0, err
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListByParentIDs returns every direct child of the given parents, oldest
// first, regardless of status or deletion.
func (r *CommentRepository) ListByParentIDs(ctx context.Context, parentIDs []string) ([]*domain.Comment, error) {
	ids := make([]uuid.UUID, 0, len(parentIDs))
	for _, id := range parentIDs {
		if parsed, err := uuid.Parse(id); err == nil {
			ids = append(ids, parsed)
		}
	}
	if len(ids) == 0 {
		return []*domain.Comment{}, nil
	}

	var models []*model.Comment
	if err := r.db.WithContext(ctx).
		Where("parent_id IN ?", ids).
		Order("created_at").Order("id").
		Find(&models).Error; err != nil {
		return nil, err
	}
	return toDomainComments(models)
}

// Search matches live comments against a full text query and returns the
// requested slice of results along with the total number of matches.
func (r *CommentRepository) Search(ctx context.Context, filter domain.SearchCommentsFilter) ([]*domain.Comment, int64, error) {
	db := r.db.WithContext(ctx).
		Where("to_tsvector('simple', content) @@ plainto_tsquery('simple', ?)", filter.Query).
		Where("is_deleted = false AND status = ?", domain.CommentStatusActive.String())

	if filter.TargetKind != "" {
		if filter.TargetKind == domain.CommentTargetKindComment {
			parentID, err := uuid.Parse(filter.TargetID)
			if err != nil {
				return []*domain.Comment{}, 0, nil
			}
			db = db.Where("parent_id = ?", parentID)
		} else {
			db = db.Where("target_kind = ? AND target_id = ?", filter.TargetKind.String(), filter.TargetID)
		}
	}
	db = db.Session(&gorm.Session{})

	var total int64
	if err := db.Model(&model.Comment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []*domain.Comment{}, 0, nil
	}

	db = db.Clauses(clause.OrderBy{
		Expression: clause.Expr{
			SQL:                "ts_rank(to_tsvector('simple', content), plainto_tsquery('simple', ?)) DESC, created_at DESC",
			Vars:               []interface{}{filter.Query},
			WithoutParentheses: true,
		},
	})
	if filter.Size > 0 {
		db = db.Limit(filter.Size)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	var models []*model.Comment
	if err := db.Find(&models).Error; err != nil {
		return nil, 0, err
	}
	comments, err := toDomainComments(models)
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

// UpdateContent replaces the content and keeps the previous version in the
// edit history.
func (r *CommentRepository) UpdateContent(ctx context.Context, u domain.CommentContentUpdate) (*domain.Comment, error) {
	var updated *domain.Comment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := lockComment(tx, u.CommentID)
		if err != nil {
			return err
		}
		if m.IsDeleted {
			return comment.ErrCommentDeleted
		}

		edit := &model.CommentEdit{
			CommentID: m.ID,
			Content:   m.Content,
			EditedAt:  u.EditedAt,
		}
		if err := tx.Create(edit).Error; err != nil {
			return err
		}

		if err := tx.Model(m).Updates(map[string]interface{}{
			"content":    u.Content,
			"mentions":   pq.StringArray(u.Mentions),
			"is_edited":  true,
			"updated_at": u.EditedAt,
		}).Error; err != nil {
			return err
		}

		updated, err = getCommentByID(tx, u.CommentID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// SoftDelete replaces the content with placeholder and keeps the row so
// replies stay attached. It reports false when the comment was already
// deleted.
func (r *CommentRepository) SoftDelete(ctx context.Context, id, placeholder string, deletedAt time.Time) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := lockComment(tx, id)
		if err != nil {
			return err
		}
		if m.IsDeleted {
			return nil
		}

		if err := tx.Model(m).Updates(map[string]interface{}{
			"content":    placeholder,
			"is_deleted": true,
			"deleted_at": deletedAt,
			"updated_at": deletedAt,
		}).Error; err != nil {
			return err
		}

		if m.ParentID != nil && m.Status == domain.CommentStatusActive.String() {
			if err := adjustReplyCount(tx, *m.ParentID, -1); err != nil {
				return err
			}
		}

		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// ToggleLike adds the user's like when absent and removes it otherwise. It
// returns whether the user now likes the comment and the new like count.
func (r *CommentRepository) ToggleLike(ctx context.Context, commentID, userID string) (bool, int, error) {
	var liked bool
	var likeCount int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := lockComment(tx, commentID)
		if err != nil {
			return err
		}
		if m.IsDeleted {
			return comment.ErrCommentDeleted
		}

		res := tx.Where("comment_id = ? AND user_id = ?", m.ID, userID).Delete(&model.CommentLike{})
		if res.Error != nil {
			return res.Error
		}

		delta := -1
		if res.RowsAffected == 0 {
			if err := tx.Create(&model.CommentLike{CommentID: m.ID, UserID: userID}).Error; err != nil {
				return err
			}
			delta = 1
		}

		if err := tx.Model(m).
			UpdateColumn("like_count", gorm.Expr("GREATEST(like_count + ?, 0)", delta)).Error; err != nil {
			return err
		}

		liked = delta > 0
		likeCount = max(m.LikeCount+delta, 0)
		return nil
	})
	if err != nil {
		return false, 0, err
	}
	return liked, likeCount, nil
}

// AddFlag records the flag once per user. It returns whether a new flag was
// stored and the resulting flag count.
func (r *CommentRepository) AddFlag(ctx context.Context, f *domain.CommentFlag) (bool, int, error) {
	flag := &model.CommentFlag{}
	if err := flag.FromDomain(f); err != nil {
		return false, 0, comment.ErrCommentNotFound
	}

	var added bool
	var flagCount int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := lockComment(tx, f.CommentID)
		if err != nil {
			return err
		}
		if m.IsDeleted {
			return comment.ErrCommentDeleted
		}

		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(flag)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			flagCount = m.FlagCount
			return nil
		}

		if err := tx.Model(m).
			UpdateColumn("flag_count", gorm.Expr("flag_count + 1")).Error; err != nil {
			return err
		}

		added = true
		flagCount = m.FlagCount + 1
		return nil
	})
	if err != nil {
		return false, 0, err
	}
	return added, flagCount, nil
}

// UpdateStatus moves the comment from one status to another only when it is
// still in the expected status, adjusting the parent's reply count when the
// comment enters or leaves the active status.
func (r *CommentRepository) UpdateStatus(ctx context.Context, id string, from, to domain.CommentStatus) (bool, error) {
	updated := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := lockComment(tx, id)
		if err != nil {
			return err
		}
		if m.Status != from.String() {
			return nil
		}

		if err := tx.Model(m).Update("status", to.String()).Error; err != nil {
			return err
		}

		if m.ParentID != nil && !m.IsDeleted {
			if delta := moderation.ReplyCountDelta(from, to); delta != 0 {
				if err := adjustReplyCount(tx, *m.ParentID, delta); err != nil {
					return err
				}
			}
		}

		updated = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}

// ReconcileAggregates recomputes every denormalized counter from the source
// rows and returns the number of comments corrected.
func (r *CommentRepository) ReconcileAggregates(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Exec(reconcileCommentAggregatesQuery)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func applyCommentsFilter(db *gorm.DB, filter domain.ListCommentsFilter) (*gorm.DB, error) {
	if filter.TargetKind != "" {
		db = db.Where(`"target_kind" = ?`, filter.TargetKind.String())
	}
	if filter.TargetID != "" {
		db = db.Where(`"target_id" = ?`, filter.TargetID)
	}
	if filter.ParentID != "" {
		parentID, err := uuid.Parse(filter.ParentID)
		if err != nil {
			return nil, errInvalidID
		}
		db = db.Where(`"parent_id" = ?`, parentID)
	}
	if filter.RootsOnly {
		db = db.Where(`"parent_id" IS NULL`)
	}
	if filter.Author != "" {
		db = db.Where(`"author" = ?`, filter.Author)
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			statuses = append(statuses, status.String())
		}
		db = db.Where(`"status" IN ?`, statuses)
	}
	if !filter.IncludeDeleted {
		db = db.Where(`"is_deleted" = false`)
	}
	return db, nil
}

func lockComment(tx *gorm.DB, id string) (*model.Comment, error) {
	commentID, err := uuid.Parse(id)
	if err != nil {
		return nil, comment.ErrCommentNotFound
	}

	var m model.Comment
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, "id = ?", commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, err
	}
	return &m, nil
}

func adjustReplyCount(tx *gorm.DB, parentID uuid.UUID, delta int) error {
	return tx.Model(&model.Comment{}).
		Where("id = ?", parentID).
		UpdateColumn("reply_count", gorm.Expr("GREATEST(reply_count + ?, 0)", delta)).Error
}

func toDomainComments(models []*model.Comment) ([]*domain.Comment, error) {
	comments := make([]*domain.Comment, 0, len(models))
	for _, m := range models {
		c, err := m.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("parsing comment %q: %w", m.ID, err)
		}
		comments = append(comments, c)
	}
	return comments, nil
}

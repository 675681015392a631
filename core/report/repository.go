package report

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

const reasonsSeparator = "\x1f"

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db}
}

func (r *Repository) GetFlaggedComments(ctx context.Context, filter *FlaggedCommentsFilter) ([]*FlaggedComment, error) {
	db := applyFlaggedCommentsFilter(r.db.WithContext(ctx), filter).
		Select(`c.id AS comment_id, c.author, c.target_kind, c.target_id, c.content, c.status, c.flag_count,
			string_agg(DISTINCT f.reason, ?) AS reasons, max(f.created_at) AS latest_flag_at, c.created_at`, reasonsSeparator).
		Order("c.flag_count DESC").
		Order("latest_flag_at DESC")
	if filter.Size > 0 {
		db = db.Limit(filter.Size)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	records := []*flaggedCommentModel{}
	if err := db.Scan(&records).Error; err != nil {
		return nil, err
	}

	result := make([]*FlaggedComment, 0, len(records))
	for _, m := range records {
		var reasons []string
		if m.Reasons != "" {
			reasons = strings.Split(m.Reasons, reasonsSeparator)
		}
		result = append(result, &FlaggedComment{
			CommentID:    m.CommentID,
			Author:       m.Author,
			TargetKind:   m.TargetKind,
			TargetID:     m.TargetID,
			Content:      m.Content,
			Status:       m.Status,
			FlagCount:    m.FlagCount,
			Reasons:      reasons,
			LatestFlagAt: m.LatestFlagAt,
			CreatedAt:    m.CreatedAt,
		})
	}
	return result, nil
}

func (r *Repository) CountFlaggedComments(ctx context.Context, filter *FlaggedCommentsFilter) (int64, error) {
	var count int64
	sub := applyFlaggedCommentsFilter(r.db.WithContext(ctx), filter).Select("c.id")
	if err := r.db.WithContext(ctx).Table("(?) AS flagged", sub).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func applyFlaggedCommentsFilter(db *gorm.DB, filter *FlaggedCommentsFilter) *gorm.DB {
	db = db.Table("comments AS c").
		Joins("JOIN comment_flags f ON f.comment_id = c.id").
		Where("c.is_deleted = false")

	if len(filter.Statuses) > 0 {
		db = db.Where("c.status IN ?", filter.Statuses)
	}
	if filter.MinFlagCount > 0 {
		db = db.Where("c.flag_count >= ?", filter.MinFlagCount)
	}
	if filter.TargetKind != "" {
		db = db.Where("c.target_kind = ? AND c.target_id = ?", filter.TargetKind, filter.TargetID)
	}

	db = db.Group("c.id")
	if filter.FlaggedBefore != nil {
		db = db.Having("max(f.created_at) < ?", *filter.FlaggedBefore)
	}
	return db
}

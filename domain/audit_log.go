package domain

type ListAuditLogFilter struct {
	Actions   []string `mapstructure:"actions" validate:"omitempty,min=1"`
	CommentID string   `mapstructure:"comment_id"`
	Actor     string   `mapstructure:"actor"`
	Size      int      `mapstructure:"size" validate:"omitempty,min=1"`
}

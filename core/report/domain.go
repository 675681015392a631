package report

import "time"

// FlaggedComment is one row of the moderation queue.
type FlaggedComment struct {
	CommentID    string    `json:"comment_id" yaml:"comment_id"`
	Author       string    `json:"author" yaml:"author"`
	TargetKind   string    `json:"target_kind" yaml:"target_kind"`
	TargetID     string    `json:"target_id" yaml:"target_id"`
	Content      string    `json:"content" yaml:"content"`
	Status       string    `json:"status" yaml:"status"`
	FlagCount    int       `json:"flag_count" yaml:"flag_count"`
	Reasons      []string  `json:"reasons" yaml:"reasons"`
	LatestFlagAt time.Time `json:"latest_flag_at" yaml:"latest_flag_at"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
}

type FlaggedCommentsFilter struct {
	Statuses     []string `mapstructure:"statuses" validate:"omitempty,min=1,dive,oneof=active flagged hidden spam"`
	MinFlagCount int      `mapstructure:"min_flag_count" validate:"omitempty,min=1"`
	TargetKind   string   `mapstructure:"target_kind" validate:"omitempty,oneof=idea domain comment"`
	TargetID     string   `mapstructure:"target_id" validate:"required_with=TargetKind"`
	// FlaggedBefore keeps only comments whose latest flag is older than this
	FlaggedBefore *time.Time `mapstructure:"flagged_before"`
	Size          int        `mapstructure:"size" validate:"omitempty,min=1"`
	Offset        int        `mapstructure:"offset" validate:"omitempty,min=0"`
}

type flaggedCommentModel struct {
	CommentID    string
	Author       string
	TargetKind   string
	TargetID     string
	Content      string
	Status       string
	FlagCount    int
	Reasons      string
	LatestFlagAt time.Time
	CreatedAt    time.Time
}

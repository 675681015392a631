package comment

import (
	"time"

	"github.com/goto/discuss/domain"
	"github.com/goto/discuss/pkg/retry"
)

type Config struct {
	FlagThreshold      int           `mapstructure:"flag_threshold" default:"5" validate:"min=1"`
	EditWindow         time.Duration `mapstructure:"edit_window" default:"24h"`
	DeletedPlaceholder string        `mapstructure:"deleted_placeholder" default:"[This comment has been deleted]"`

	MaxAttachments    int   `mapstructure:"max_attachments" default:"5"`
	MaxAttachmentSize int64 `mapstructure:"max_attachment_size" default:"10485760"`

	DefaultPageSize      int `mapstructure:"default_page_size" default:"20"`
	MaxPageSize          int `mapstructure:"max_page_size" default:"100"`
	DefaultReplyPageSize int `mapstructure:"default_reply_page_size" default:"3"`
	MaxReplyPageSize     int `mapstructure:"max_reply_page_size" default:"50"`
	FullThreadMaxNodes   int `mapstructure:"full_thread_max_nodes" default:"500"`

	// Moderators receive a notification when a comment gets flagged automatically
	Moderators []string `mapstructure:"moderators"`

	SideEffectRetry retry.Config `mapstructure:"side_effect_retry"`
}

// DefaultConfig mirrors the default tags, for callers that build a service
// without a config file
func DefaultConfig() Config {
	return Config{
		FlagThreshold:        domain.DefaultFlagThreshold,
		EditWindow:           domain.DefaultEditWindow,
		DeletedPlaceholder:   domain.DefaultDeletedCommentPlaceholder,
		MaxAttachments:       5,
		MaxAttachmentSize:    10 << 20,
		DefaultPageSize:      20,
		MaxPageSize:          100,
		DefaultReplyPageSize: 3,
		MaxReplyPageSize:     50,
		FullThreadMaxNodes:   500,
		SideEffectRetry: retry.Config{
			MaxRetries: 3,
			BaseDelay:  100 * time.Millisecond,
			MaxDelay:   2 * time.Second,
			Jitter:     true,
		},
	}
}

func (c Config) pageSize(size int) int {
	if size <= 0 {
		return c.DefaultPageSize
	}
	if c.MaxPageSize > 0 && size > c.MaxPageSize {
		return c.MaxPageSize
	}
	return size
}

func (c Config) replyPageSize(size int) int {
	if size <= 0 {
		return c.DefaultReplyPageSize
	}
	return c.capReplyPageSize(size)
}

// attachedReplyCount is the number of replies attached under each root of a
// thread page. An explicit 0 attaches none.
func (c Config) attachedReplyCount(size *int) int {
	if size == nil {
		return c.DefaultReplyPageSize
	}
	if *size <= 0 {
		return 0
	}
	return c.capReplyPageSize(*size)
}

func (c Config) capReplyPageSize(size int) int {
	if c.MaxReplyPageSize > 0 && size > c.MaxReplyPageSize {
		return c.MaxReplyPageSize
	}
	return size
}

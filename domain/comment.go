package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// MaxThreadLevel is the deepest level a reply can be placed at. Replies to a
	// node already at this level are placed at the same level.
	MaxThreadLevel = 5

	CommentContentMinLength = 1
	CommentContentMaxLength = 2000

	DefaultDeletedCommentPlaceholder = "[This comment has been deleted]"
	DefaultFlagThreshold             = 5
	DefaultEditWindow                = 24 * time.Hour
)

type CommentTargetKind string

const (
	CommentTargetKindIdea    CommentTargetKind = "idea"
	CommentTargetKindDomain  CommentTargetKind = "domain"
	CommentTargetKindComment CommentTargetKind = "comment"
)

func (k CommentTargetKind) String() string {
	return string(k)
}

// IsParentContent reports whether comments of this kind are root comments
// attached to external parent content.
func (k CommentTargetKind) IsParentContent() bool {
	switch k {
	case CommentTargetKindIdea, CommentTargetKindDomain:
		return true
	default:
		return false
	}
}

func (k CommentTargetKind) IsValid() bool {
	switch k {
	case CommentTargetKindIdea, CommentTargetKindDomain, CommentTargetKindComment:
		return true
	default:
		return false
	}
}

// CommentTarget identifies what a comment is attached to. When Kind is
// CommentTargetKindComment the comment is a reply and ID is the parent id.
type CommentTarget struct {
	Kind CommentTargetKind `json:"kind" yaml:"kind"`
	ID   string            `json:"id" yaml:"id"`
}

type CommentStatus string

const (
	CommentStatusActive  CommentStatus = "active"
	CommentStatusFlagged CommentStatus = "flagged"
	CommentStatusHidden  CommentStatus = "hidden"
	CommentStatusSpam    CommentStatus = "spam"
)

func (s CommentStatus) String() string {
	return string(s)
}

func (s CommentStatus) IsValid() bool {
	switch s {
	case CommentStatusActive, CommentStatusFlagged, CommentStatusHidden, CommentStatusSpam:
		return true
	default:
		return false
	}
}

type Comment struct {
	ID          string        `json:"id" yaml:"id"`
	Content     string        `json:"content" yaml:"content"`
	ContentHTML string        `json:"content_html,omitempty" yaml:"content_html,omitempty"`
	Author      string        `json:"author" yaml:"author"`
	Target      CommentTarget `json:"target" yaml:"target"`
	ParentID    string        `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
	ThreadLevel int           `json:"thread_level" yaml:"thread_level"`

	ReplyCount int `json:"reply_count" yaml:"reply_count"`
	LikeCount  int `json:"like_count" yaml:"like_count"`
	FlagCount  int `json:"flag_count" yaml:"flag_count"`

	Likes []*CommentLike `json:"likes,omitempty" yaml:"likes,omitempty"`
	Flags []*CommentFlag `json:"flags,omitempty" yaml:"flags,omitempty"`

	Status    CommentStatus `json:"status" yaml:"status"`
	IsDeleted bool          `json:"is_deleted" yaml:"is_deleted"`
	DeletedAt *time.Time    `json:"deleted_at,omitempty" yaml:"deleted_at,omitempty"`

	IsEdited    bool           `json:"is_edited" yaml:"is_edited"`
	EditHistory []*CommentEdit `json:"edit_history,omitempty" yaml:"edit_history,omitempty"`

	Mentions    []string      `json:"mentions,omitempty" yaml:"mentions,omitempty"`
	Attachments []*Attachment `json:"attachments,omitempty" yaml:"attachments,omitempty"`

	// Replies is only populated by read-side assembly.
	Replies        []*Comment `json:"replies,omitempty" yaml:"replies,omitempty"`
	HasMoreReplies bool       `json:"has_more_replies,omitempty" yaml:"has_more_replies,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

func (c *Comment) IsRoot() bool {
	return c.ParentID == ""
}

// IsLive reports whether the comment counts towards its parent's reply count
// and shows up in listings.
func (c *Comment) IsLive() bool {
	return !c.IsDeleted && c.Status == CommentStatusActive
}

// ReplyThreadLevel returns the thread level for a direct reply to c.
func (c *Comment) ReplyThreadLevel() int {
	if c.ThreadLevel+1 > MaxThreadLevel {
		return MaxThreadLevel
	}
	return c.ThreadLevel + 1
}

// ReplyTarget returns the target a direct reply to c is attached to.
func (c *Comment) ReplyTarget() CommentTarget {
	return CommentTarget{Kind: CommentTargetKindComment, ID: c.ID}
}

// IsEditableAt reports whether the edit window is still open at t.
func (c *Comment) IsEditableAt(t time.Time, window time.Duration) bool {
	return t.Sub(c.CreatedAt) <= window
}

func (c *Comment) IsLikedBy(userID string) bool {
	for _, l := range c.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}

func (c *Comment) GetFlagBy(userID string) *CommentFlag {
	for _, f := range c.Flags {
		if f.UserID == userID {
			return f
		}
	}
	return nil
}

// ContentLength returns the length of the content as stored, in characters.
func ContentLength(content string) int {
	return utf8.RuneCountInString(content)
}

// IsBlankContent reports whether the content has nothing but whitespace.
func IsBlankContent(content string) bool {
	return strings.TrimSpace(content) == ""
}

type CommentLike struct {
	CommentID string    `json:"comment_id" yaml:"comment_id"`
	UserID    string    `json:"user_id" yaml:"user_id"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

type CommentFlag struct {
	CommentID   string    `json:"comment_id" yaml:"comment_id"`
	UserID      string    `json:"user_id" yaml:"user_id"`
	Reason      string    `json:"reason" yaml:"reason"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// CommentEdit is a snapshot of content replaced by an edit.
type CommentEdit struct {
	Content  string    `json:"content" yaml:"content"`
	EditedAt time.Time `json:"edited_at" yaml:"edited_at"`
}

// CommentContentUpdate carries an edit to the store.
type CommentContentUpdate struct {
	CommentID string
	Content   string
	Mentions  []string
	EditedAt  time.Time
}

type LikeResult struct {
	CommentID string `json:"comment_id" yaml:"comment_id"`
	Liked     bool   `json:"liked" yaml:"liked"`
	LikeCount int    `json:"like_count" yaml:"like_count"`
}

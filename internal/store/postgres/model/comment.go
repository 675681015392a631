package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"github.com/goto/discuss/domain"
)

type Comment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	TargetKind  string    `gorm:"type:varchar(16)"`
	TargetID    string
	ParentID    *uuid.UUID `gorm:"type:uuid"`
	Author      string
	Content     string
	ThreadLevel int
	ReplyCount  int
	LikeCount   int
	FlagCount   int
	Status      string `gorm:"type:varchar(16);default:active"`
	IsDeleted   bool
	DeletedAt   *time.Time
	IsEdited    bool
	Mentions    pq.StringArray `gorm:"type:text[]"`
	Attachments datatypes.JSON

	Likes []*CommentLike `gorm:"foreignKey:CommentID"`
	Flags []*CommentFlag `gorm:"foreignKey:CommentID"`
	Edits []*CommentEdit `gorm:"foreignKey:CommentID"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Comment) TableName() string {
	return "comments"
}

func (m *Comment) FromDomain(c *domain.Comment) error {
	if c.ID != "" {
		id, err := uuid.Parse(c.ID)
		if err != nil {
			return fmt.Errorf("parsing comment id %q: %w", c.ID, err)
		}
		m.ID = id
	}

	if c.ParentID != "" {
		parentID, err := uuid.Parse(c.ParentID)
		if err != nil {
			return fmt.Errorf("parsing parent id %q: %w", c.ParentID, err)
		}
		m.ParentID = &parentID
	}

	if c.Attachments != nil {
		attachments, err := json.Marshal(c.Attachments)
		if err != nil {
			return fmt.Errorf("marshalling attachments: %w", err)
		}
		m.Attachments = datatypes.JSON(attachments)
	}

	m.TargetKind = c.Target.Kind.String()
	m.TargetID = c.Target.ID
	m.Author = c.Author
	m.Content = c.Content
	m.ThreadLevel = c.ThreadLevel
	m.ReplyCount = c.ReplyCount
	m.LikeCount = c.LikeCount
	m.FlagCount = c.FlagCount
	m.Status = c.Status.String()
	m.IsDeleted = c.IsDeleted
	m.DeletedAt = c.DeletedAt
	m.IsEdited = c.IsEdited
	m.Mentions = pq.StringArray(c.Mentions)
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt

	return nil
}

func (m *Comment) ToDomain() (*domain.Comment, error) {
	c := &domain.Comment{
		ID:          m.ID.String(),
		Content:     m.Content,
		Author:      m.Author,
		Target:      domain.CommentTarget{Kind: domain.CommentTargetKind(m.TargetKind), ID: m.TargetID},
		ThreadLevel: m.ThreadLevel,
		ReplyCount:  m.ReplyCount,
		LikeCount:   m.LikeCount,
		FlagCount:   m.FlagCount,
		Status:      domain.CommentStatus(m.Status),
		IsDeleted:   m.IsDeleted,
		DeletedAt:   m.DeletedAt,
		IsEdited:    m.IsEdited,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.ParentID != nil {
		c.ParentID = m.ParentID.String()
	}
	if len(m.Mentions) > 0 {
		c.Mentions = []string(m.Mentions)
	}

	if len(m.Attachments) > 0 {
		var attachments []*domain.Attachment
		if err := json.Unmarshal(m.Attachments, &attachments); err != nil {
			return nil, fmt.Errorf("parsing attachments: %w", err)
		}
		c.Attachments = attachments
	}

	for _, l := range m.Likes {
		c.Likes = append(c.Likes, l.ToDomain())
	}
	for _, f := range m.Flags {
		c.Flags = append(c.Flags, f.ToDomain())
	}
	for _, e := range m.Edits {
		c.EditHistory = append(c.EditHistory, e.ToDomain())
	}

	return c, nil
}

type CommentLike struct {
	CommentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}

func (m *CommentLike) ToDomain() *domain.CommentLike {
	return &domain.CommentLike{
		CommentID: m.CommentID.String(),
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

type CommentFlag struct {
	CommentID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      string    `gorm:"primaryKey"`
	Reason      string
	Description string
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (CommentFlag) TableName() string {
	return "comment_flags"
}

func (m *CommentFlag) FromDomain(f *domain.CommentFlag) error {
	commentID, err := uuid.Parse(f.CommentID)
	if err != nil {
		return fmt.Errorf("parsing comment id %q: %w", f.CommentID, err)
	}
	m.CommentID = commentID
	m.UserID = f.UserID
	m.Reason = f.Reason
	m.Description = f.Description
	m.CreatedAt = f.CreatedAt
	return nil
}

func (m *CommentFlag) ToDomain() *domain.CommentFlag {
	return &domain.CommentFlag{
		CommentID:   m.CommentID.String(),
		UserID:      m.UserID,
		Reason:      m.Reason,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

type CommentEdit struct {
	ID        uint      `gorm:"primaryKey"`
	CommentID uuid.UUID `gorm:"type:uuid"`
	Content   string
	EditedAt  time.Time
}

func (CommentEdit) TableName() string {
	return "comment_edits"
}

func (m *CommentEdit) ToDomain() *domain.CommentEdit {
	return &domain.CommentEdit{
		Content:  m.Content,
		EditedAt: m.EditedAt,
	}
}

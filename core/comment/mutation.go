package comment

import (
	"context"
	"errors"
	"fmt"

	"github.com/goto/discuss/core/moderation"
	"github.com/goto/discuss/domain"
	"github.com/goto/discuss/pkg/diff"
)

type CreateRootRequest struct {
	Target      domain.CommentTarget
	Author      string
	Content     string
	Attachments []*domain.AttachmentUpload
}

type CreateReplyRequest struct {
	ParentID string
	Author   string
	Content  string
}

// editSnapshot holds the fields an edit can change, for the audit changelog
type editSnapshot struct {
	Content  string   `json:"content"`
	Mentions []string `json:"mentions,omitempty"`
	IsEdited bool     `json:"is_edited"`
}

func newEditSnapshot(c *domain.Comment) editSnapshot {
	return editSnapshot{Content: c.Content, Mentions: c.Mentions, IsEdited: c.IsEdited}
}

type FlagRequest struct {
	CommentID   string
	UserID      string
	Reason      string
	Description string
}

// CreateRoot attaches a new top-level comment to an idea or a domain
func (s *Service) CreateRoot(ctx context.Context, req CreateRootRequest) (*domain.Comment, error) {
	if req.Author == "" {
		return nil, ErrEmptyCommentAuthor
	}
	if err := validateContent(req.Content); err != nil {
		return nil, err
	}
	switch req.Target.Kind {
	case domain.CommentTargetKindIdea, domain.CommentTargetKindDomain:
	default:
		return nil, ErrInvalidTargetKind
	}
	if req.Target.ID == "" {
		return nil, ErrEmptyTargetID
	}
	if err := s.validateAttachments(req.Attachments); err != nil {
		return nil, err
	}

	exists, err := s.targetService.Exists(ctx, req.Target)
	if err != nil {
		return nil, s.storeError(ctx, "checking comment target", err, "target_kind", req.Target.Kind, "target_id", req.Target.ID)
	}
	if !exists {
		return nil, ErrTargetNotFound
	}

	attachments, err := s.uploadAttachments(ctx, req.Attachments)
	if err != nil {
		return nil, err
	}

	now := TimeNow()
	c := &domain.Comment{
		Content:     req.Content,
		Author:      req.Author,
		Target:      req.Target,
		ThreadLevel: 0,
		Status:      domain.CommentStatusActive,
		Mentions:    s.resolveMentions(ctx, req.Content),
		Attachments: attachments,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		s.metrics.mutation(ctx, "create_root", err)
		return nil, s.storeError(ctx, "creating root comment", err, "target_id", req.Target.ID)
	}
	s.metrics.mutation(ctx, "create_root", nil)

	if c.Target.Kind == domain.CommentTargetKindIdea {
		s.adjustIdeaCommentCount(ctx, c.Target.ID, 1)
	}
	s.audit(ctx, options{}, AuditKeyCreate, c)

	s.render(c)
	return c, nil
}

// CreateReply adds a comment under an existing, not deleted comment. The
// parent reply count is incremented in the same write.
func (s *Service) CreateReply(ctx context.Context, req CreateReplyRequest) (*domain.Comment, error) {
	if req.Author == "" {
		return nil, ErrEmptyCommentAuthor
	}
	if req.ParentID == "" {
		return nil, ErrEmptyParentID
	}
	if err := validateContent(req.Content); err != nil {
		return nil, err
	}

	parent, err := s.repo.GetByID(ctx, req.ParentID)
	if err != nil {
		if errors.Is(err, ErrCommentNotFound) {
			return nil, ErrParentNotFound
		}
		return nil, s.storeError(ctx, "getting parent comment", err, "parent_id", req.ParentID)
	}
	if parent.IsDeleted {
		return nil, ErrParentNotFound
	}

	now := TimeNow()
	c := &domain.Comment{
		Content:     req.Content,
		Author:      req.Author,
		Target:      parent.ReplyTarget(),
		ParentID:    parent.ID,
		ThreadLevel: parent.ReplyThreadLevel(),
		Status:      domain.CommentStatusActive,
		Mentions:    s.resolveMentions(ctx, req.Content),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		s.metrics.mutation(ctx, "create_reply", err)
		return nil, s.storeError(ctx, "creating reply", err, "parent_id", req.ParentID)
	}
	s.metrics.mutation(ctx, "create_reply", nil)
	s.audit(ctx, options{}, AuditKeyReply, c)

	s.render(c)
	return c, nil
}

// Edit replaces the content of a comment. Only the author can edit, and only
// within the edit window. The previous content is kept in the edit history.
func (s *Service) Edit(ctx context.Context, id string, requester domain.Actor, content string) (*domain.Comment, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.storeError(ctx, "getting comment", err, "comment_id", id)
	}
	if c.IsDeleted {
		return nil, ErrCommentDeleted
	}
	if c.Author != requester.ID {
		return nil, ErrNotCommentAuthor
	}
	now := TimeNow()
	if !c.IsEditableAt(now, s.config.EditWindow) {
		return nil, ErrEditWindowExpired
	}

	updated, err := s.repo.UpdateContent(ctx, domain.CommentContentUpdate{
		CommentID: id,
		Content:   content,
		Mentions:  s.resolveMentions(ctx, content),
		EditedAt:  now,
	})
	if err != nil {
		s.metrics.mutation(ctx, "edit", err)
		return nil, s.storeError(ctx, "updating comment content", err, "comment_id", id)
	}
	s.metrics.mutation(ctx, "edit", nil)
	auditData := map[string]interface{}{
		"comment_id":  id,
		"old_content": c.Content,
		"new_content": content,
	}
	if updated != nil {
		changes, err := diff.GetChangelog(newEditSnapshot(c), newEditSnapshot(updated))
		if err != nil {
			s.logger.Warn(ctx, "failed to compute edit changelog", "error", err, "comment_id", id)
		} else {
			auditData["changes"] = diff.WithActor(changes, requester.ID)
		}
	}
	s.audit(ctx, options{}, AuditKeyEdit, auditData)

	s.render(updated)
	return updated, nil
}

// Delete soft-deletes a comment. The node stays in the tree with its content
// replaced by the placeholder.
func (s *Service) Delete(ctx context.Context, id string, requester domain.Actor, opts ...Option) (*domain.Comment, error) {
	o := s.getOptions(opts...)

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.storeError(ctx, "getting comment", err, "comment_id", id)
	}
	if c.Author != requester.ID && !requester.IsAdmin() {
		return nil, ErrNotAllowedToDelete
	}
	if c.IsDeleted {
		return nil, ErrCommentDeleted
	}

	now := TimeNow()
	deleted, err := s.repo.SoftDelete(ctx, id, s.config.DeletedPlaceholder, now)
	if err != nil {
		s.metrics.mutation(ctx, "delete", err)
		return nil, s.storeError(ctx, "deleting comment", err, "comment_id", id)
	}
	if !deleted {
		return nil, ErrCommentDeleted
	}
	s.metrics.mutation(ctx, "delete", nil)

	if c.IsRoot() && c.Target.Kind == domain.CommentTargetKindIdea {
		s.adjustIdeaCommentCount(ctx, c.Target.ID, -1)
	}
	s.audit(ctx, o, AuditKeyDelete, map[string]interface{}{
		"comment_id": id,
		"author":     c.Author,
		"deleted_by": requester.ID,
		"content":    c.Content,
	})

	c.Content = s.config.DeletedPlaceholder
	c.ContentHTML = ""
	c.IsDeleted = true
	c.DeletedAt = &now
	c.UpdatedAt = now
	return c, nil
}

// ToggleLike likes the comment for the user, or removes the like if it
// already exists. Calling it twice restores the original state.
func (s *Service) ToggleLike(ctx context.Context, id, userID string) (*domain.LikeResult, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.storeError(ctx, "getting comment", err, "comment_id", id)
	}
	if c.IsDeleted {
		return nil, ErrCommentDeleted
	}

	liked, likeCount, err := s.repo.ToggleLike(ctx, id, userID)
	if err != nil {
		s.metrics.mutation(ctx, "toggle_like", err)
		return nil, s.storeError(ctx, "toggling like", err, "comment_id", id, "user_id", userID)
	}
	s.metrics.mutation(ctx, "toggle_like", nil)

	return &domain.LikeResult{
		CommentID: id,
		Liked:     liked,
		LikeCount: likeCount,
	}, nil
}

// AddFlag records a user's report against a comment. A repeated flag from the
// same user is ignored. Reaching the flag threshold moves an active comment to
// flagged and notifies the moderators.
func (s *Service) AddFlag(ctx context.Context, req FlagRequest, opts ...Option) (*domain.Comment, error) {
	o := s.getOptions(opts...)
	if req.UserID == "" {
		return nil, ErrEmptyUserID
	}
	if req.Reason == "" {
		return nil, ErrEmptyFlagReason
	}

	c, err := s.repo.GetByID(ctx, req.CommentID)
	if err != nil {
		return nil, s.storeError(ctx, "getting comment", err, "comment_id", req.CommentID)
	}
	if c.IsDeleted {
		return nil, ErrCommentDeleted
	}
	if c.Author == req.UserID {
		return nil, ErrSelfFlag
	}

	added, flagCount, err := s.repo.AddFlag(ctx, &domain.CommentFlag{
		CommentID:   req.CommentID,
		UserID:      req.UserID,
		Reason:      req.Reason,
		Description: req.Description,
		CreatedAt:   TimeNow(),
	})
	if err != nil {
		s.metrics.mutation(ctx, "add_flag", err)
		return nil, s.storeError(ctx, "adding flag", err, "comment_id", req.CommentID, "user_id", req.UserID)
	}
	if !added {
		s.logger.Debug(ctx, "duplicate flag ignored", "comment_id", req.CommentID, "user_id", req.UserID)
		s.render(c)
		return c, nil
	}
	s.metrics.mutation(ctx, "add_flag", nil)
	s.audit(ctx, o, AuditKeyFlag, map[string]interface{}{
		"comment_id": req.CommentID,
		"user_id":    req.UserID,
		"reason":     req.Reason,
	})

	if flagCount >= s.config.FlagThreshold {
		if err := s.applyFlagThreshold(ctx, c, flagCount, o); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.GetByID(ctx, req.CommentID)
	if err != nil {
		return nil, s.storeError(ctx, "getting comment", err, "comment_id", req.CommentID)
	}
	s.render(updated)
	return updated, nil
}

func (s *Service) applyFlagThreshold(ctx context.Context, c *domain.Comment, flagCount int, o options) error {
	to, changed, err := moderation.Transition(c.Status, moderation.EventFlagThresholdReached)
	if err != nil || !changed {
		return nil
	}

	updated, err := s.repo.UpdateStatus(ctx, c.ID, c.Status, to)
	if err != nil {
		return s.storeError(ctx, "updating comment status", err, "comment_id", c.ID)
	}
	if !updated {
		// another writer moved the status first
		return nil
	}
	s.metrics.moderation(ctx, moderation.EventFlagThresholdReached, c.Status, to)
	s.logger.Info(ctx, "comment flagged automatically", "comment_id", c.ID, "flag_count", flagCount)

	s.audit(ctx, o, AuditKeyAutoFlag, map[string]interface{}{
		"comment_id": c.ID,
		"flag_count": flagCount,
		"from":       c.Status,
		"to":         to,
	})
	if !o.skipNotification {
		s.notifyModerators(ctx, c, flagCount)
	}
	return nil
}

func (s *Service) notifyModerators(ctx context.Context, c *domain.Comment, flagCount int) {
	if s.notifier == nil || len(s.config.Moderators) == 0 {
		return
	}

	notifications := make([]domain.Notification, 0, len(s.config.Moderators))
	for _, moderator := range s.config.Moderators {
		notifications = append(notifications, domain.Notification{
			User: moderator,
			Message: domain.NotificationMessage{
				Type: domain.NotificationTypeCommentFlagged,
				Variables: map[string]interface{}{
					"comment_id":  c.ID,
					"author":      c.Author,
					"flag_count":  flagCount,
					"target_kind": c.Target.Kind,
					"target_id":   c.Target.ID,
				},
			},
		})
	}
	if errs := s.notifier.Notify(ctx, notifications); errs != nil {
		for _, err := range errs {
			s.logger.Error(ctx, "failed to send notifications", "error", err.Error(), "comment_id", c.ID)
		}
	}
}

// Moderate applies an administrative moderation event to a comment
func (s *Service) Moderate(ctx context.Context, id string, requester domain.Actor, event moderation.Event, opts ...Option) (*domain.Comment, error) {
	o := s.getOptions(opts...)
	if !event.IsValid() || !event.RequiresAdmin() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidModeration, event)
	}
	if !requester.IsAdmin() {
		return nil, ErrNotModerator
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.storeError(ctx, "getting comment", err, "comment_id", id)
	}

	from := c.Status
	to, changed, err := moderation.Transition(from, event)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrModerationTransition, err)
	}
	if !changed {
		s.render(c)
		return c, nil
	}

	updated, err := s.repo.UpdateStatus(ctx, id, from, to)
	if err != nil {
		return nil, s.storeError(ctx, "updating comment status", err, "comment_id", id)
	}
	if !updated {
		return nil, ErrStatusChanged
	}
	s.metrics.moderation(ctx, event, from, to)
	s.audit(ctx, o, AuditKeyModerate, map[string]interface{}{
		"comment_id": id,
		"event":      event,
		"from":       from,
		"to":         to,
		"actor":      requester.ID,
	})

	c.Status = to
	c.UpdatedAt = TimeNow()
	s.render(c)
	return c, nil
}

func (s *Service) validateAttachments(uploads []*domain.AttachmentUpload) error {
	if len(uploads) == 0 {
		return nil
	}
	if s.attachmentStore == nil {
		return ErrAttachmentsNotSupported
	}
	if len(uploads) > s.config.MaxAttachments {
		return ErrTooManyAttachments
	}
	for _, u := range uploads {
		if u == nil || u.Body == nil || u.Filename == "" {
			return fmt.Errorf("%w: attachment content and filename are required", ErrValidationFailed)
		}
		if u.Size > s.config.MaxAttachmentSize {
			return fmt.Errorf("%w: %q", ErrAttachmentTooLarge, u.Filename)
		}
	}
	return nil
}

func (s *Service) uploadAttachments(ctx context.Context, uploads []*domain.AttachmentUpload) ([]*domain.Attachment, error) {
	if len(uploads) == 0 {
		return nil, nil
	}
	attachments := make([]*domain.Attachment, 0, len(uploads))
	for _, u := range uploads {
		a, err := s.attachmentStore.Upload(ctx, u)
		if err != nil {
			return nil, s.storeError(ctx, "uploading attachment", err, "filename", u.Filename)
		}
		attachments = append(attachments, a)
	}
	return attachments, nil
}

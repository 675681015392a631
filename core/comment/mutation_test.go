package comment_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/goto/discuss/core/comment"
	"github.com/goto/discuss/core/moderation"
	"github.com/goto/discuss/domain"
	"github.com/goto/discuss/pkg/diff"
)

func (s *ServiceTestSuite) TestCreateRoot() {
	ideaTarget := domain.CommentTarget{Kind: domain.CommentTargetKindIdea, ID: "idea-1"}

	s.Run("should return validation errors for invalid requests", func() {
		testCases := []struct {
			name        string
			req         comment.CreateRootRequest
			expectedErr error
		}{
			{"empty author", comment.CreateRootRequest{Target: ideaTarget, Content: "hi"}, comment.ErrEmptyCommentAuthor},
			{"empty content", comment.CreateRootRequest{Target: ideaTarget, Author: "u-1", Content: "   "}, comment.ErrEmptyCommentContent},
			{"content too long", comment.CreateRootRequest{Target: ideaTarget, Author: "u-1", Content: strings.Repeat("a", 2001)}, comment.ErrCommentTooLong},
			{"content too long with surrounding whitespace", comment.CreateRootRequest{Target: ideaTarget, Author: "u-1", Content: " " + strings.Repeat("a", 2000) + "\n"}, comment.ErrCommentTooLong},
			{"comment target", comment.CreateRootRequest{Target: domain.CommentTarget{Kind: domain.CommentTargetKindComment, ID: "c-1"}, Author: "u-1", Content: "hi"}, comment.ErrInvalidTargetKind},
			{"empty target id", comment.CreateRootRequest{Target: domain.CommentTarget{Kind: domain.CommentTargetKindDomain}, Author: "u-1", Content: "hi"}, comment.ErrEmptyTargetID},
			{"too many attachments", comment.CreateRootRequest{Target: ideaTarget, Author: "u-1", Content: "hi", Attachments: make([]*domain.AttachmentUpload, 6)}, comment.ErrTooManyAttachments},
		}
		for _, tc := range testCases {
			actual, err := s.service.CreateRoot(context.Background(), tc.req)

			s.ErrorIs(err, tc.expectedErr, tc.name)
			s.ErrorIs(err, comment.ErrValidationFailed, tc.name)
			s.Nil(actual)
		}
	})

	s.Run("should accept content of exactly the maximum length in characters", func() {
		content := strings.Repeat("é", domain.CommentContentMaxLength)
		s.mockTargetService.EXPECT().Exists(mock.Anything, ideaTarget).Return(true, nil).Once()
		s.mockMentionResolver.EXPECT().Resolve(mock.Anything, content).Return(nil, nil).Once()
		s.mockRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Comment")).Return(nil).Once()
		s.mockTargetService.EXPECT().AdjustCommentCount(mock.Anything, "idea-1", 1).Return(nil).Once()
		s.mockAuditLogger.EXPECT().Log(mock.Anything, comment.AuditKeyCreate, mock.Anything).Return(nil).Once()

		_, err := s.service.CreateRoot(context.Background(), comment.CreateRootRequest{Target: ideaTarget, Author: "u-1", Content: content})

		s.NoError(err)
	})

	s.Run("should return target not found when target does not exist", func() {
		s.mockTargetService.EXPECT().Exists(mock.Anything, ideaTarget).Return(false, nil).Once()

		actual, err := s.service.CreateRoot(context.Background(), comment.CreateRootRequest{Target: ideaTarget, Author: "u-1", Content: "hi"})

		s.ErrorIs(err, comment.ErrTargetNotFound)
		s.ErrorIs(err, comment.ErrNotFound)
		s.Nil(actual)
	})

	s.Run("should create root comment on idea and increment idea counter", func() {
		s.mockTargetService.EXPECT().Exists(mock.Anything, ideaTarget).Return(true, nil).Once()
		s.mockMentionResolver.EXPECT().Resolve(mock.Anything, "hello @bob").Return([]string{"u-bob"}, nil).Once()
		s.mockRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Comment")).
			Run(func(_ context.Context, c *domain.Comment) {
				s.Equal(ideaTarget, c.Target)
				s.Equal("u-1", c.Author)
				s.Equal(0, c.ThreadLevel)
				s.Empty(c.ParentID)
				s.Equal(domain.CommentStatusActive, c.Status)
				s.Equal([]string{"u-bob"}, c.Mentions)
				s.Equal(s.now, c.CreatedAt)
				c.ID = "c-1"
			}).
			Return(nil).Once()
		s.mockTargetService.EXPECT().AdjustCommentCount(mock.Anything, "idea-1", 1).Return(nil).Once()
		s.mockAuditLogger.EXPECT().Log(mock.Anything, comment.AuditKeyCreate, mock.AnythingOfType("*domain.Comment")).Return(nil).Once()

		actual, err := s.service.CreateRoot(context.Background(), comment.CreateRootRequest{Target: ideaTarget, Author: "u-1", Content: "hello @bob"})

		s.NoError(err)
		s.Equal("c-1", actual.ID)
	})

	s.Run("should not touch any counter for domain targets", func() {
		target := domain.CommentTarget{Kind: domain.CommentTargetKindDomain, ID: "domain-1"}
		s.mockTargetService.EXPECT().Exists(mock.Anything, target).Return(true, nil).Once()
		s.mockMentionResolver.EXPECT().Resolve(mock.Anything, "hi").Return(nil, nil).Once()
		s.mockRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Comment")).Return(nil).Once()
		s.mockAuditLogger.EXPECT().Log(mock.Anything, comment.AuditKeyCreate, mock.Anything).Return(nil).Once()

		_, err := s.service.CreateRoot(context.Background(), comment.CreateRootRequest{Target: target, Author: "u-1", Content: "hi"})

		s.NoError(err)
	})

	s.Run("should keep the comment when the idea counter update keeps failing", func() {
		s.mockTargetService.EXPECT().Exists(mock.Anything, ideaTarget).Return(true, nil).Once()
		s.mockMentionResolver.EXPECT().Resolve(mock.Anything, "hi").Return(nil, errors.New("identity service down")).Once()
		s.mockRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Comment")).
			Run(func(_ context.Context, c *domain.Comment) {
				s.Nil(c.Mentions)
				c.ID = "c-1"
			}).
			Return(nil).Once()
		s.mockTargetService.EXPECT().AdjustCommentCount(mock.Anything, "idea-1", 1).Return(errors.New("unavailable")).Times(2)
		s.mockAuditLogger.EXPECT().Log(mock.Anything, comment.AuditKeyCreate, mock.Anything).Return(errors.New("audit down")).Once()

		actual, err := s.service.CreateRoot(context.Background(), comment.CreateRootRequest{Target: ideaTarget, Author: "u-1", Content: "hi"})

		s.NoError(err)
		s.Equal("c-1", actual.ID)
	})

	s.Run("should not retry the idea counter when the idea is gone", func() {
		s.mockTargetService.EXPECT().Exists(mock.Anything, ideaTarget).Return(true, nil).Once()
		s.mockMentionResolver.EXPECT().Resolve(mock.Anything, "hi").Return(nil, nil).Once()
		s.mockRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Comment")).Return(nil).Once()
		s.mockTargetService.EXPECT().AdjustCommentCount(mock.Anything, "idea-1", 1).Return(comment.ErrTargetNotFound).Once()
		s.mockAuditLogger.EXPECT().Log(mock.Anything, comment.AuditKeyCreate, mock.Anything).Return(nil).Once()

		_, err := s.service.CreateRoot(context.Background(), comment.CreateRootRequest{Target: ideaTarget, Author: "u-1", Content: "hi"})

		s.NoError(err)
	})

	s.Run("should upload attachments and keep only their references", func() {
		upload := &domain.AttachmentUpload{Filename: "a.png", ContentType: "image/png", Size: 3, Body: strings.NewReader("png")}
		attachment := &domain.Attachment{URL: "http://cdn/a.png", Type: "image/png", Filename: "a.png", Size: 3}
		s.mockTargetService.EXPECT().Exists(mock.Anything, ideaTarget).Return(true, nil).Once()
		s.mockAttachmentStore.EXPECT().Upload(mock.Anything, upload).Return(attachment, nil).Once()
		s.mockMentionResolver.EXPECT().Resolve(mock.Anything, "look").Return(nil, nil).Once()
		s.mockRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Comment")).
			Run(func(_ context.Context, c *domain.Comment) {
				s.Equal([]*domain.Attachment{attachment}, c.Attachments)
			}).
			Return(nil).Once()
		s.mockTargetService.EXPECT().AdjustCommentCount(mock.Anything, "idea-1", 1).Return(nil).Once()
		s.mockAuditLogger.EXPECT().Log(mock.Anything, comment.AuditKeyCreate, mock.Anything).Return(nil).Once()

		_, err := s.service.CreateRoot(context.Background(), comment.CreateRootRequest{
			Target: ideaTarget, Author: "u-1", Content: "look", Attachments: []*domain.AttachmentUpload{upload},
		})

		s.NoError(err)
	})

	s.Run("should reject attachments above the size limit", func() {
		upload := &domain.AttachmentUpload{Filename: "big.bin", Size: s.config.MaxAttachmentSize + 1, Body: strings.NewReader("x")}

		_, err := s.service.CreateRoot(context.Background(), comment.CreateRootRequest{
			Target: ideaTarget, Author: "u-1", Content: "big", Attachments: []*domain.AttachmentUpload{upload},
		})

		s.ErrorIs(err, comment.ErrAttachmentTooLarge)
	})
}

func (s *ServiceTestSuite) TestCreateReply() {
	s.Run("should return parent not found when parent does not exist", func() {
		s.mockRepo.EXPECT().GetByID(mock.Anything, "p-1").Return(nil, comment.ErrCommentNotFound).Once()

		actual, err := s.service.CreateReply(context.Background(), comment.CreateReplyRequest{ParentID: "p-1", Author: "u-1", Content: "hi"})

		s.ErrorIs(err, comment.ErrParentNotFound)
		s.ErrorIs(err, comment.ErrNotFound)
		s.Nil(actual)
	})

	s.Run("should return parent not found when parent is deleted", func() {
		s.mockRepo.EXPECT().GetByID(mock.Anything, "p-1").Return(&domain.Comment{ID: "p-1", IsDeleted: true}, nil).Once()

		actual, err := s.service.CreateReply(context.Background(), comment.CreateReplyRequest{ParentID: "p-1", Author: "u-1", Content: "hi"})

		s.ErrorIs(err, comment.ErrParentNotFound)
		s.Nil(actual)
	})

	s.Run("should place reply one level below its parent", func() {
		for parentLevel, expectedLevel := range map[int]int{0: 1, 3: 4, 4: 5, 5: 5} {
			s.mockRepo.EXPECT().GetByID(mock.Anything, "p-1").
				Return(&domain.Comment{ID: "p-1", ThreadLevel: parentLevel, Status: domain.CommentStatusActive}, nil).Once()
			s.mockMentionResolver.EXPECT().Resolve(mock.Anything, "hi").Return(nil, nil).Once()
			s.mockRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Comment")).
				Run(func(_ context.Context, c *domain.Comment) {
					s.Equal(domain.CommentTarget{Kind: domain.CommentTargetKindComment, ID: "p-1"}, c.Target)
					s.Equal("p-1", c.ParentID)
				}).
				Return(nil).Once()
			s.mockAuditLogger.EXPECT().Log(mock.Anything, comment.AuditKeyReply, mock.Anything).Return(nil).Once()

			actual, err := s.service.CreateReply(context.Background(), comment.CreateReplyRequest{ParentID: "p-1", Author: "u-1", Content: "hi"})

			s.NoError(err)
			s.Equal(expectedLevel, actual.ThreadLevel, "parent level %d", parentLevel)
		}
	})

	s.Run("should return parent not found when the parent is deleted before the write", func() {
		s.mockRepo.EXPECT().GetByID(mock.Anything, "p-1").Return(&domain.Comment{ID: "p-1"}, nil).Once()
		s.mockMentionResolver.EXPECT().Resolve(mock.Anything, "hi").Return(nil, nil).Once()
		s.mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(comment.ErrParentNotFound).Once()

		_, err := s.service.CreateReply(context.Background(), comment.CreateReplyRequest{ParentID: "p-1", Author: "u-1", Content: "hi"})

		s.ErrorIs(err, comment.ErrParentNotFound)
	})
}

func (s *ServiceTestSuite) TestEdit() {
	author := domain.Actor{ID: "u-1", Role: domain.ActorRoleUser}

	s.Run("should allow edits within the edit window", func() {
		for _, age := range []time.Duration{time.Minute, 23*time.Hour + 59*time.Minute, 24 * time.Hour} {
			existing := &domain.Comment{ID: "c-1", Author: "u-1", Content: "old", CreatedAt: s.now.Add(-age)}
			updated := &domain.Comment{ID: "c-1", Author: "u-1", Content: "new", IsEdited: true}
			s.mockRepo.EXPECT().GetByID(mock.Anything, "c-1").Return(existing, nil).Once()
			s.mockMentionResolver.EXPECT().Resolve(mock.Anything, "new").Return([]string{"u-2"}, nil).Once()
			s.mockRepo.EXPECT().UpdateContent(mock.Anything, domain.CommentContentUpdate{
				CommentID: "c-1",
				Content:   "new",
				Mentions:  []string{"u-2"},
				EditedAt:  s.now,
			}).Return(updated, nil).Once()
			s.mockAuditLogger.EXPECT().Log(mock.Anything, comment.AuditKeyEdit, mock.Anything).Return(nil).Once()

			actual, err := s.service.Edit(context.Background(), "c-1", author, "new")

			s.NoError(err, age.String())
			s.Equal(updated, actual)
		}
	})

	s.Run("should record the changelog of the edit in the audit log", func() {
		existing := &domain.Comment{ID: "c-1", Author: "u-1", Content: "old", CreatedAt: s.now}
		updated := &domain.Comment{ID: "c-1", Author: "u-1", Content: "new", IsEdited: true}
		s.mockRepo.EXPECT().GetByID(mock.Anything, "c-1").Return(existing, nil).Once()
		s.mockMentionResolver.EXPECT().Resolve(mock.Anything, "new").Return(nil, nil).Once()
		s.mockRepo.EXPECT().UpdateContent(mock.Anything, mock.Anything).Return(updated, nil).Once()
		s.mockAuditLogger.EXPECT().Log(mock.Anything, comment.AuditKeyEdit, mock.Anything).
			Run(func(_ context.Context, _ string, data interface{}) {
				m, ok := data.(map[string]interface{})
				s.Require().True(ok)
				changes, ok := m["changes"].([]*diff.PatchOp)
				s.Require().True(ok)
				s.Len(changes, 2)
				for _, c := range changes {
					s.Equal("u-1", c.Actor)
					if c.Path == "content" {
						s.Equal("old", c.OldValue)
						s.Equal("new", c.NewValue)
					}
				}
			}).
			Return(nil).Once()

		_, err := s.service.Edit(context.Background(), "c-1", author, "new")

		s.NoError(err)
	})

	s.Run("should return edit window expired after the window", func() {
		existing := &domain.Comment{ID: "c-1", Author: "u-1", CreatedAt: s.now.Add(-(24*time.Hour + time.Second))}
		s.mockRepo.EXPECT().GetByID(mock.Anything, "c-1").Return(existing, nil).Once()

		actual, err := s.service.Edit(context.Background(), "c-1", author, "new")

		s.ErrorIs(err, comment.ErrEditWindowExpired)
		s.Nil(actual)
	})

	s.Run("should return forbidden when requester is not the author", func() {
		existing := &domain.Comment{ID: "c-1", Author: "u-1", CreatedAt: s.now}
		s.mockRepo.EXPECT().GetByID(mock.Anything, "c-1").Return(existing, nil).Once()

		_, err := s.service.Edit(context.Background(), "c-1", domain.Actor{ID: "admin", Role: domain.ActorRoleAdmin}, "new")

		s.ErrorIs(err, comment.ErrNotCommentAuthor)
		s.ErrorIs(err, comment.ErrForbidden)
	})

	s.Run("should reject edits of deleted comments", func() {
		s.mockRepo.EXPECT().GetByID(mock.Anything, "c-1").Return(&domain.Comment{ID: "c-1", Author: "u-1", IsDeleted: true}, nil).Once()

		_, err := s.service.Edit(context.Background(), "c-1", author, "new")

		s.ErrorIs(err, comment.ErrCommentDeleted)
	})

	s.Run("should validate content before reading the comment", func() {
		_, err := s.service.Edit(context.Background(), "c-1", author, "")

		s.ErrorIs(err, comment.ErrEmptyCommentContent)
	})
}

func (s *ServiceTestSuite) TestDelete() {
	root := func() *domain.Comment {
		return &domain.Comment{
			ID:      "c-1",
			Author:  "u-1",
			Content: "original",
			Target:  domain.CommentTarget{Kind: domain.CommentTargetKindIdea, ID: "idea-1"},
			Status:  domain.CommentStatusActive,
		}
	}

	s.Run("should soft delete root comment and decrement idea counter", func() {
		s.mockRepo.EXPECT().GetByID(mock.Anything, "c-1").Return(root(), nil).Once()
		s.mockRepo.EXPECT().SoftDelete(mock.Anything, "c-1", s.config.DeletedPlaceholder, s.now).Return(true, nil).Once()
		s.mockTargetService.EXPECT().AdjustCommentCount(mock.Anything, "idea-1", -1).Return(nil).Once()
		s.mockAuditLogger.EXPECT().Log(mock.Anything, comment.AuditKeyDelete, mock.Anything).Return(nil).Once()

		actual, err := s.service.Delete(context.Background(), "c-1", domain.Actor{ID: "u-1"})

		s.NoError(err)
		s.True(actual.IsDeleted)
		s.Equal(s.config.DeletedPlaceholder, actual.Content)
		s.Equal(&s.now, actual.DeletedAt)
		s.Equal("c-1", actual.ID)
		s.Equal(domain.CommentStatusActive, actual.Status)
	})

	s.Run("should allow administrators to delete replies without touching idea counter", func() {
		reply := &domain.Comment{ID: "r-1", Author: "u-1", ParentID: "c-1", Target: domain.CommentTarget{Kind: domain.CommentTargetKindComment, ID: "c-1"}}
		s.mockRepo.EXPECT().GetByID(mock.Anything, "r-1").Return(reply, nil).Once()
		s.mockRepo.EXPECT().SoftDelete(mock.Anything, "r-1", s.config.DeletedPlaceholder, s.now).Return(true, nil).Once()

		_, err := s.service.Delete(context.Background(), "r-1", domain.Actor{ID: "admin", Role: domain.ActorRoleAdmin}, comment.SkipAuditLog())

		s.NoError(err)
	})

	s.Run("should return forbidden for other users", func() {
		s.mockRepo.EXPECT().GetByID(mock.Anything, "c-1").Return(root(), nil).Once()

		_, err := s.service.Delete(context.Background(), "c-1", domain.Actor{ID: "u-2"})

		s.ErrorIs(err, comment.ErrNotAllowedToDelete)
		s.ErrorIs(err, comment.ErrForbidden)
	})

	s.Run("should return invalid operation when comment is already deleted", func() {
		deleted := root()
		deleted.IsDeleted = true
		s.mockRepo.EXPECT().GetByID(mock.Anything, "c-1").Return(deleted, nil).Once()

		_, err := s.service.Delete(context.Background(), "c-1", domain.Actor{ID: "u-1"})

		s.ErrorIs(err, comment.ErrCommentDeleted)
		s.ErrorIs(err, comment.ErrInvalidOperation)
	})

	s.Run("should return invalid operation when a concurrent delete won", func() {
		s.mockRepo.EXPECT().GetByID(mock.Anything, "c-1").Return(root(), nil).Once()
		s.mockRepo.EXPECT().SoftDelete(mock.Anything, "c-1", s.config.DeletedPlaceholder, s.now).Return(false, nil).Once()

		_, err := s.service.Delete(context.Background(), "c-1", domain.Actor{ID: "u-1"})

		s.ErrorIs(err, comment.ErrCommentDeleted)
	})
}

func (s *ServiceTestSuite) TestToggleLike() {
	s.Run("should like then unlike", func() {
		c := &domain.Comment{ID: "c-1", Author: "u-2", Status: domain.CommentStatusActive}
		s.mockRepo.EXPECT().GetByID(mock.Anything, "c-1").Return(c, nil).Times(2)
		s.mockRepo.EXPECT().ToggleLike(mock.Anything, "c-1", "u-1").Return(true, 1, nil).Once()
		s.mockRepo.EXPECT().ToggleLike(mock.Anything, "c-1", "u-1").Return(false, 0, nil).Once()

		first, err := s.service.ToggleLike(context.Background(), "c-1", "u-1")
		s.NoError(err)
		second, err := s.service.ToggleLike(context.Background(), "c-1", "u-1")
		s.NoError(err)

		s.Equal(&domain.LikeResult{CommentID: "c-1", Liked: true, LikeCount: 1}, first)
		s.Equal(&domain.LikeResult{CommentID: "c-1", Liked: false, LikeCount: 0}, second)
	})

	s.Run("should reject likes on deleted comments", func() {
		s.mockRepo.EXPECT().GetByID(mock.Anything, "c-1").Return(&domain.Comment{ID: "c-1", IsDeleted: true}, nil).Once()

		actual, err := s.service.ToggleLike(context.Background(), "c-1", "u-1")

		s.ErrorIs(err, comment.ErrInvalidOperation)
		s.Nil(actual)
	})

	s.Run("should require a user", func() {
		_, err := s.service.ToggleLike(context.Background(), "c-1", "")

		s.ErrorIs(err, comment.ErrEmptyUserID)
	})
}

func (s *ServiceTestSuite) TestAddFlag() {
	active := func() *domain.Comment {
		return &domain.Comment{
			ID:     "c-1",
			Author: "author",
			Target: domain.CommentTarget{Kind: domain.CommentTargetKindIdea, ID: "idea-1"},
			Status: domain.CommentStatusActive,
		}
	}

	s.Run("should reject flags on own comment", func() {
		s.mockRepo.EXPECT().GetByID(mock.Anything, "c-1").Return(active(), nil).Once()

		actual, err := s.service.AddFlag(context.Background(), comment.FlagRequest{CommentID: "c-1", UserID: "author", Reason: "spam"})

		s.ErrorIs(err, comment.ErrSelfFlag)
		s.ErrorIs(err, comment.ErrInvalidOperation)
		s.Nil(actual)
	})

	s.Run("should reject flags on deleted comments", func() {
		deleted := active()
		deleted.IsDeleted = true
		s.mockRepo.EXPECT().GetByID(mock.Anything, "c-1").Return(deleted, nil).Once()

		_, err := s.service.AddFlag(context.Background(), comment.FlagRequest{CommentID: "c-1", UserID: "u-1", Reason: "spam"})

		s.ErrorIs(err, comment.ErrCommentDeleted)
	})

	s.Run("should ignore a second flag from the same user", func() {
		existing := active()
		existing.FlagCount = 1
		existing.Flags = []*domain.CommentFlag{{CommentID: "c-1", UserID: "u-1", Reason: "spam"}}
		s.mockRepo.EXPECT().GetByID(mock.Anything, "c-1").Return(existing, nil).Once()
		s.mockRepo.EXPECT().AddFlag(mock.Anything, mock.AnythingOfType("*domain.CommentFlag")).Return(false, 1, nil).Once()

		actual, err := s.service.AddFlag(context.Background(), comment.FlagRequest{CommentID: "c-1", UserID: "u-1", Reason: "harassment"})

		s.NoError(err)
		s.Len(actual.Flags, 1)
		s.Equal("spam", actual.Flags[0].Reason)
	})

	s.Run("should keep status below the threshold", func() {
		flagged := active()
		flagged.FlagCount = 4
		s.mockRepo.EXPECT().GetByID(mock.Anything, "c-1").Return(active(), nil).Once()
		s.mockRepo.EXPECT().AddFlag(mock.Anything, mock.AnythingOfType("*domain.CommentFlag")).
			Run(func(_ context.Context, f *domain.CommentFlag) {
				s.Equal("u-4", f.UserID)
				s.Equal("spam", f.Reason)
				s.Equal(s.now, f.CreatedAt)
			}).
			Return(true, 4, nil).Once()
		s.mockAuditLogger.EXPECT().Log(mock.Anything, comment.AuditKeyFlag, mock.Anything).Return(nil).Once()
		s.mockRepo.EXPECT().GetByID(mock.Anything, "c-1").Return(flagged, nil).Once()

		actual, err := s.service.AddFlag(context.Background(), comment.FlagRequest{CommentID: "c-1", UserID: "u-4", Reason: "spam"})

		s.NoError(err)
		s.Equal(domain.CommentStatusActive, actual.Status)
		s.Equal(4, actual.FlagCount)
	})

	s.Run("should move comment to flagged and notify moderators at the threshold", func() {
		flagged := active()
		flagged.FlagCount = 5
		flagged.Status = domain.CommentStatusFlagged
		s.mockRepo.EXPECT().GetByID(mock.Anything, "c-1").Return(active(), nil).Once()
		s.mockRepo.EXPECT().AddFlag(mock.Anything, mock.AnythingOfType("*domain.CommentFlag")).Return(true, 5, nil).Once()
		s.mockAuditLogger.EXPECT().Log(mock.Anything, comment.AuditKeyFlag, mock.Anything).Return(nil).Once()
		s.mockRepo.EXPECT().UpdateStatus(mock.Anything, "c-1", domain.CommentStatusActive, domain.CommentStatusFlagged).Return(true, nil).Once()
		s.mockAuditLogger.EXPECT().Log(mock.Anything, comment.AuditKeyAutoFlag, mock.Anything).Return(nil).Once()
		s.mockNotifier.EXPECT().
			Notify(mock.Anything, mock.MatchedBy(func(n []domain.Notification) bool {
				return len(n) == 1 &&
					n[0].User == "moderator@example.com" &&
					n[0].Message.Type == domain.NotificationTypeCommentFlagged &&
					n[0].Message.Variables["flag_count"] == 5
			})).
			Return(nil).Once()
		s.mockRepo.EXPECT().GetByID(mock.Anything, "c-1").Return(flagged, nil).Once()

		actual, err := s.service.AddFlag(context.Background(), comment.FlagRequest{CommentID: "c-1", UserID: "u-5", Reason: "spam"})

		s.NoError(err)
		s.Equal(domain.CommentStatusFlagged, actual.Status)
	})

	s.Run("should not notify when another writer already flagged the comment", func() {
		s.mockRepo.EXPECT().GetByID(mock.Anything, "c-1").Return(active(), nil).Once()
		s.mockRepo.EXPECT().AddFlag(mock.Anything, mock.Anything).Return(true, 6, nil).Once()
		s.mockAuditLogger.EXPECT().Log(mock.Anything, comment.AuditKeyFlag, mock.Anything).Return(nil).Once()
		s.mockRepo.EXPECT().UpdateStatus(mock.Anything, "c-1", domain.CommentStatusActive, domain.CommentStatusFlagged).Return(false, nil).Once()
		s.mockRepo.EXPECT().GetByID(mock.Anything, "c-1").Return(active(), nil).Once()

		_, err := s.service.AddFlag(context.Background(), comment.FlagRequest{CommentID: "c-1", UserID: "u-6", Reason: "spam"})

		s.NoError(err)
	})

	s.Run("should skip notifications when asked to", func() {
		s.mockRepo.EXPECT().GetByID(mock.Anything, "c-1").Return(active(), nil).Once()
		s.mockRepo.EXPECT().AddFlag(mock.Anything, mock.Anything).Return(true, 5, nil).Once()
		s.mockRepo.EXPECT().UpdateStatus(mock.Anything, "c-1", domain.CommentStatusActive, domain.CommentStatusFlagged).Return(true, nil).Once()
		s.mockRepo.EXPECT().GetByID(mock.Anything, "c-1").Return(active(), nil).Once()

		_, err := s.service.AddFlag(context.Background(),
			comment.FlagRequest{CommentID: "c-1", UserID: "u-5", Reason: "spam"},
			comment.SkipNotifications(), comment.SkipAuditLog())

		s.NoError(err)
	})
}

func (s *ServiceTestSuite) TestModerate() {
	admin := domain.Actor{ID: "admin", Role: domain.ActorRoleAdmin}

	s.Run("should return forbidden for non administrators", func() {
		_, err := s.service.Moderate(context.Background(), "c-1", domain.Actor{ID: "u-1"}, moderation.EventHide)

		s.ErrorIs(err, comment.ErrNotModerator)
		s.ErrorIs(err, comment.ErrForbidden)
	})

	s.Run("should reject the system threshold event", func() {
		_, err := s.service.Moderate(context.Background(), "c-1", admin, moderation.EventFlagThresholdReached)

		s.ErrorIs(err, comment.ErrValidationFailed)
	})

	s.Run("should apply the transition with compare and set", func() {
		s.mockRepo.EXPECT().GetByID(mock.Anything, "c-1").Return(&domain.Comment{ID: "c-1", Status: domain.CommentStatusFlagged}, nil).Once()
		s.mockRepo.EXPECT().UpdateStatus(mock.Anything, "c-1", domain.CommentStatusFlagged, domain.CommentStatusActive).Return(true, nil).Once()
		s.mockAuditLogger.EXPECT().Log(mock.Anything, comment.AuditKeyModerate, mock.Anything).Return(nil).Once()

		actual, err := s.service.Moderate(context.Background(), "c-1", admin, moderation.EventRestore)

		s.NoError(err)
		s.Equal(domain.CommentStatusActive, actual.Status)
	})

	s.Run("should not write when status does not change", func() {
		s.mockRepo.EXPECT().GetByID(mock.Anything, "c-1").Return(&domain.Comment{ID: "c-1", Status: domain.CommentStatusHidden}, nil).Once()

		actual, err := s.service.Moderate(context.Background(), "c-1", admin, moderation.EventHide)

		s.NoError(err)
		s.Equal(domain.CommentStatusHidden, actual.Status)
	})

	s.Run("should return conflict when the status changed concurrently", func() {
		s.mockRepo.EXPECT().GetByID(mock.Anything, "c-1").Return(&domain.Comment{ID: "c-1", Status: domain.CommentStatusActive}, nil).Once()
		s.mockRepo.EXPECT().UpdateStatus(mock.Anything, "c-1", domain.CommentStatusActive, domain.CommentStatusSpam).Return(false, nil).Once()

		_, err := s.service.Moderate(context.Background(), "c-1", admin, moderation.EventMarkSpam)

		s.ErrorIs(err, comment.ErrStatusChanged)
		s.ErrorIs(err, comment.ErrConflict)
	})

	s.Run("should reject admin flag on hidden comments", func() {
		s.mockRepo.EXPECT().GetByID(mock.Anything, "c-1").Return(&domain.Comment{ID: "c-1", Status: domain.CommentStatusHidden}, nil).Once()

		_, err := s.service.Moderate(context.Background(), "c-1", admin, moderation.EventFlag)

		s.ErrorIs(err, comment.ErrInvalidOperation)
	})
}

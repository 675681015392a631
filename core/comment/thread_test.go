package comment_test

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"github.com/goto/discuss/core/comment"
	"github.com/goto/discuss/domain"
)

func (s *ServiceTestSuite) TestGetThreadPage() {
	live := []domain.CommentStatus{domain.CommentStatusActive}

	s.Run("should return validation error for reply targets", func() {
		_, err := s.service.GetThreadPage(context.Background(), domain.ThreadPageFilter{
			TargetKind: domain.CommentTargetKindComment,
			TargetID:   "c-1",
		})

		s.ErrorIs(err, comment.ErrValidationFailed)
	})

	s.Run("should count roots only and attach the first replies", func() {
		rootsFilter := domain.ListCommentsFilter{
			TargetKind: domain.CommentTargetKindIdea,
			TargetID:   "idea-1",
			RootsOnly:  true,
			Statuses:   live,
		}
		r1 := &domain.Comment{ID: "r-1", ReplyCount: 3}
		r2 := &domain.Comment{ID: "r-2", ReplyCount: 1}
		r3 := &domain.Comment{ID: "r-3", ReplyCount: 0}
		s.mockRepo.EXPECT().Count(mock.Anything, rootsFilter).Return(int64(12), nil).Once()

		pageFilter := rootsFilter
		pageFilter.Size = 5
		pageFilter.Offset = 5
		pageFilter.OrderBy = []string{"created_at:asc"}
		s.mockRepo.EXPECT().List(mock.Anything, pageFilter).Return([]*domain.Comment{r1, r2, r3}, nil).Once()
		s.mockRepo.EXPECT().List(mock.Anything, domain.ListCommentsFilter{
			ParentID: "r-1", Statuses: live, Size: 2, OrderBy: []string{"created_at:asc"},
		}).Return([]*domain.Comment{{ID: "a"}, {ID: "b"}}, nil).Once()
		s.mockRepo.EXPECT().List(mock.Anything, domain.ListCommentsFilter{
			ParentID: "r-2", Statuses: live, Size: 2, OrderBy: []string{"created_at:asc"},
		}).Return([]*domain.Comment{{ID: "c"}}, nil).Once()

		replyPageSize := 2
		actual, err := s.service.GetThreadPage(context.Background(), domain.ThreadPageFilter{
			TargetKind:    domain.CommentTargetKindIdea,
			TargetID:      "idea-1",
			Page:          2,
			PageSize:      5,
			ReplyPageSize: &replyPageSize,
			SortOrder:     domain.SortOrderOldest,
		})

		s.NoError(err)
		s.Equal(int64(12), actual.Total)
		s.Equal(3, actual.TotalPages)
		s.Equal(2, actual.Page)
		s.Len(actual.Comments, 3)
		s.Len(r1.Replies, 2)
		s.True(r1.HasMoreReplies)
		s.Len(r2.Replies, 1)
		s.False(r2.HasMoreReplies)
		s.Nil(r3.Replies)
	})

	s.Run("should attach no replies when reply page size is zero", func() {
		root := &domain.Comment{ID: "r-1", ReplyCount: 4}
		s.mockRepo.EXPECT().Count(mock.Anything, mock.Anything).Return(int64(1), nil).Once()
		s.mockRepo.EXPECT().List(mock.Anything, mock.MatchedBy(func(f domain.ListCommentsFilter) bool { return f.RootsOnly })).
			Return([]*domain.Comment{root}, nil).Once()

		noReplies := 0
		actual, err := s.service.GetThreadPage(context.Background(), domain.ThreadPageFilter{
			TargetKind:    domain.CommentTargetKindIdea,
			TargetID:      "idea-1",
			ReplyPageSize: &noReplies,
		})

		s.NoError(err)
		s.Require().Len(actual.Comments, 1)
		s.Nil(root.Replies)
		s.True(root.HasMoreReplies)
		s.Equal(4, root.ReplyCount)
	})

	s.Run("should use the default reply page size when it is not set", func() {
		s.mockRepo.EXPECT().Count(mock.Anything, mock.Anything).Return(int64(1), nil).Once()
		s.mockRepo.EXPECT().List(mock.Anything, mock.MatchedBy(func(f domain.ListCommentsFilter) bool { return f.RootsOnly })).
			Return([]*domain.Comment{{ID: "r-1", ReplyCount: 1}}, nil).Once()
		s.mockRepo.EXPECT().List(mock.Anything, mock.MatchedBy(func(f domain.ListCommentsFilter) bool {
			return f.ParentID == "r-1" && f.Size == s.config.DefaultReplyPageSize
		})).Return([]*domain.Comment{{ID: "a"}}, nil).Once()

		_, err := s.service.GetThreadPage(context.Background(), domain.ThreadPageFilter{
			TargetKind: domain.CommentTargetKindIdea,
			TargetID:   "idea-1",
		})

		s.NoError(err)
	})

	s.Run("should return validation error for a negative reply page size", func() {
		negative := -1
		_, err := s.service.GetThreadPage(context.Background(), domain.ThreadPageFilter{
			TargetKind:    domain.CommentTargetKindIdea,
			TargetID:      "idea-1",
			ReplyPageSize: &negative,
		})

		s.ErrorIs(err, comment.ErrValidationFailed)
	})

	s.Run("should return an empty page", func() {
		s.mockRepo.EXPECT().Count(mock.Anything, mock.Anything).Return(int64(0), nil).Once()
		s.mockRepo.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil).Once()

		actual, err := s.service.GetThreadPage(context.Background(), domain.ThreadPageFilter{
			TargetKind: domain.CommentTargetKindDomain,
			TargetID:   "domain-1",
		})

		s.NoError(err)
		s.Empty(actual.Comments)
		s.NotNil(actual.Comments)
		s.Equal(1, actual.Page)
		s.Equal(s.config.DefaultPageSize, actual.PageSize)
		s.False(actual.HasNextPage())
	})

	s.Run("should return internal error when a reply listing fails", func() {
		s.mockRepo.EXPECT().Count(mock.Anything, mock.Anything).Return(int64(1), nil).Once()
		s.mockRepo.EXPECT().List(mock.Anything, mock.MatchedBy(func(f domain.ListCommentsFilter) bool { return f.RootsOnly })).
			Return([]*domain.Comment{{ID: "r-1", ReplyCount: 1}}, nil).Once()
		s.mockRepo.EXPECT().List(mock.Anything, mock.MatchedBy(func(f domain.ListCommentsFilter) bool { return f.ParentID == "r-1" })).
			Return(nil, errors.New("connection reset")).Once()

		_, err := s.service.GetThreadPage(context.Background(), domain.ThreadPageFilter{
			TargetKind: domain.CommentTargetKindIdea,
			TargetID:   "idea-1",
		})

		s.ErrorIs(err, comment.ErrInternal)
	})
}

func (s *ServiceTestSuite) TestGetReplies() {
	s.Run("should return not found when parent does not exist", func() {
		s.mockRepo.EXPECT().GetByID(mock.Anything, "p-1").Return(nil, comment.ErrCommentNotFound).Once()

		_, err := s.service.GetReplies(context.Background(), domain.ReplyPageFilter{ParentID: "p-1"})

		s.ErrorIs(err, comment.ErrNotFound)
	})

	s.Run("should list live replies of a deleted parent", func() {
		live := []domain.CommentStatus{domain.CommentStatusActive}
		s.mockRepo.EXPECT().GetByID(mock.Anything, "p-1").Return(&domain.Comment{ID: "p-1", IsDeleted: true}, nil).Once()
		s.mockRepo.EXPECT().Count(mock.Anything, domain.ListCommentsFilter{ParentID: "p-1", Statuses: live}).Return(int64(3), nil).Once()
		s.mockRepo.EXPECT().List(mock.Anything, domain.ListCommentsFilter{
			ParentID: "p-1", Statuses: live, Size: 3, Offset: 0, OrderBy: []string{"created_at:desc"},
		}).Return([]*domain.Comment{{ID: "a", ReplyCount: 2}, {ID: "b"}, {ID: "c"}}, nil).Once()

		actual, err := s.service.GetReplies(context.Background(), domain.ReplyPageFilter{ParentID: "p-1"})

		s.NoError(err)
		s.Len(actual.Comments, 3)
		s.True(actual.Comments[0].HasMoreReplies)
		s.False(actual.Comments[1].HasMoreReplies)
		s.Equal(1, actual.TotalPages)
	})
}

func (s *ServiceTestSuite) TestGetFullThread() {
	s.Run("should expand descendants generation by generation", func() {
		root := &domain.Comment{ID: "r", ThreadLevel: 0, Status: domain.CommentStatusActive}
		a := &domain.Comment{ID: "a", ParentID: "r", ThreadLevel: 1, Status: domain.CommentStatusActive}
		hidden := &domain.Comment{ID: "h", ParentID: "r", ThreadLevel: 1, Status: domain.CommentStatusHidden}
		deleted := &domain.Comment{ID: "d", ParentID: "r", ThreadLevel: 1, Status: domain.CommentStatusActive, IsDeleted: true}
		a1 := &domain.Comment{ID: "a1", ParentID: "a", ThreadLevel: 2, Status: domain.CommentStatusActive}
		d1 := &domain.Comment{ID: "d1", ParentID: "d", ThreadLevel: 2, Status: domain.CommentStatusActive}

		s.mockRepo.EXPECT().GetByID(mock.Anything, "r").Return(root, nil).Once()
		s.mockRepo.EXPECT().ListByParentIDs(mock.Anything, []string{"r"}).Return([]*domain.Comment{a, hidden, deleted}, nil).Once()
		s.mockRepo.EXPECT().ListByParentIDs(mock.Anything, []string{"a", "d"}).Return([]*domain.Comment{a1, d1}, nil).Once()
		s.mockRepo.EXPECT().ListByParentIDs(mock.Anything, []string{"a1", "d1"}).Return(nil, nil).Once()

		actual, err := s.service.GetFullThread(context.Background(), "r")

		s.NoError(err)
		s.Equal([]*domain.Comment{a, deleted}, actual.Replies)
		s.Equal([]*domain.Comment{a1}, a.Replies)
		s.Equal([]*domain.Comment{d1}, deleted.Replies)
	})

	s.Run("should flatten replies beyond the depth cap", func() {
		x := &domain.Comment{ID: "x", ThreadLevel: 4, Status: domain.CommentStatusActive}
		y := &domain.Comment{ID: "y", ParentID: "x", ThreadLevel: 5, Status: domain.CommentStatusActive}
		z := &domain.Comment{ID: "z", ParentID: "y", ThreadLevel: 5, Status: domain.CommentStatusActive}
		w := &domain.Comment{ID: "w", ParentID: "z", ThreadLevel: 5, Status: domain.CommentStatusActive}

		s.mockRepo.EXPECT().GetByID(mock.Anything, "x").Return(x, nil).Once()
		s.mockRepo.EXPECT().ListByParentIDs(mock.Anything, []string{"x"}).Return([]*domain.Comment{y}, nil).Once()
		s.mockRepo.EXPECT().ListByParentIDs(mock.Anything, []string{"y"}).Return([]*domain.Comment{z}, nil).Once()
		s.mockRepo.EXPECT().ListByParentIDs(mock.Anything, []string{"z"}).Return([]*domain.Comment{w}, nil).Once()
		s.mockRepo.EXPECT().ListByParentIDs(mock.Anything, []string{"w"}).Return(nil, nil).Once()

		actual, err := s.service.GetFullThread(context.Background(), "x")

		s.NoError(err)
		s.Equal([]*domain.Comment{y, z, w}, actual.Replies)
		s.Nil(y.Replies)
		s.Nil(z.Replies)
		for _, r := range actual.Replies {
			s.LessOrEqual(r.ThreadLevel, domain.MaxThreadLevel)
		}
	})

	s.Run("should stop at the node limit", func() {
		cfg := s.config
		cfg.FullThreadMaxNodes = 2
		svc := s.newService(cfg)
		root := &domain.Comment{ID: "r", Status: domain.CommentStatusActive}
		a := &domain.Comment{ID: "a", ParentID: "r", ThreadLevel: 1, Status: domain.CommentStatusActive}
		b := &domain.Comment{ID: "b", ParentID: "r", ThreadLevel: 1, Status: domain.CommentStatusActive}

		s.mockRepo.EXPECT().GetByID(mock.Anything, "r").Return(root, nil).Once()
		s.mockRepo.EXPECT().ListByParentIDs(mock.Anything, []string{"r"}).Return([]*domain.Comment{a, b}, nil).Once()
		s.mockRepo.EXPECT().ListByParentIDs(mock.Anything, []string{"a"}).Return(nil, nil).Once()

		actual, err := svc.GetFullThread(context.Background(), "r")

		s.NoError(err)
		s.Equal([]*domain.Comment{a}, actual.Replies)
		s.True(actual.HasMoreReplies)
	})
}

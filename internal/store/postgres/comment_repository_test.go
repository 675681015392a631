package postgres_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/suite"

	"github.com/goto/discuss/core/comment"
	"github.com/goto/discuss/domain"
	"github.com/goto/discuss/internal/store/postgres"
	"github.com/goto/discuss/pkg/log"
	"github.com/goto/discuss/pkg/postgrestest"
)

type CommentRepositorySuite struct {
	suite.Suite
	store      *postgres.Store
	pool       *dockertest.Pool
	resource   *dockertest.Resource
	repository *postgres.CommentRepository

	ideaTarget domain.CommentTarget
}

func TestCommentRepository(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(CommentRepositorySuite))
}

func (s *CommentRepositorySuite) SetupSuite() {
	var err error
	logger := log.NewCtxLogger("debug", []string{"test"})
	s.store, s.pool, s.resource, err = postgrestest.NewTestStore(logger)
	if err != nil {
		s.T().Fatal(err)
	}

	s.repository = postgres.NewCommentRepository(s.store.DB())
	s.ideaTarget = domain.CommentTarget{Kind: domain.CommentTargetKindIdea, ID: "idea-1"}
}

func (s *CommentRepositorySuite) SetupTest() {
	err := postgrestest.Truncate(s.store, "comment_edits", "comment_flags", "comment_likes", "comments")
	s.Require().NoError(err)
}

func (s *CommentRepositorySuite) TearDownSuite() {
	db, err := s.store.DB().DB()
	if err != nil {
		s.T().Fatal(err)
	}
	err = db.Close()
	if err != nil {
		s.T().Fatal(err)
	}

	err = postgrestest.PurgeTestDocker(s.pool, s.resource)
	if err != nil {
		s.T().Fatal(err)
	}
}

func (s *CommentRepositorySuite) createRoot(author, content string) *domain.Comment {
	c := &domain.Comment{
		Author:  author,
		Content: content,
		Target:  s.ideaTarget,
		Status:  domain.CommentStatusActive,
	}
	s.Require().NoError(s.repository.Create(context.Background(), c))
	return c
}

func (s *CommentRepositorySuite) createReply(parent *domain.Comment, author, content string) *domain.Comment {
	c := &domain.Comment{
		Author:      author,
		Content:     content,
		Target:      parent.ReplyTarget(),
		ParentID:    parent.ID,
		ThreadLevel: parent.ReplyThreadLevel(),
		Status:      domain.CommentStatusActive,
	}
	s.Require().NoError(s.repository.Create(context.Background(), c))
	return c
}

func (s *CommentRepositorySuite) reload(id string) *domain.Comment {
	c, err := s.repository.GetByID(context.Background(), id)
	s.Require().NoError(err)
	return c
}

func (s *CommentRepositorySuite) TestCreate() {
	s.Run("should assign id and timestamps to a root comment", func() {
		c := s.createRoot("user-a", "hello")

		s.NotEmpty(c.ID)
		s.False(c.CreatedAt.IsZero())
		s.Equal(domain.CommentStatusActive, c.Status)
		s.Equal(0, c.ThreadLevel)
		s.Empty(c.ParentID)
	})

	s.Run("should persist mentions and attachments", func() {
		c := &domain.Comment{
			Author:   "user-a",
			Content:  "see @bob",
			Target:   s.ideaTarget,
			Mentions: []string{"user-b"},
			Attachments: []*domain.Attachment{
				{URL: "http://files/a.png", Type: "image/png", Filename: "a.png", Size: 10},
			},
		}
		s.Require().NoError(s.repository.Create(context.Background(), c))

		actual := s.reload(c.ID)
		s.Equal([]string{"user-b"}, actual.Mentions)
		s.Require().Len(actual.Attachments, 1)
		s.Equal("a.png", actual.Attachments[0].Filename)
	})

	s.Run("should increment parent reply count on reply", func() {
		root := s.createRoot("user-a", "root")
		s.createReply(root, "user-b", "reply")

		s.Equal(1, s.reload(root.ID).ReplyCount)
	})

	s.Run("should return error if parent does not exist", func() {
		c := &domain.Comment{
			Author:   "user-a",
			Content:  "orphan",
			Target:   domain.CommentTarget{Kind: domain.CommentTargetKindComment, ID: uuid.NewString()},
			ParentID: uuid.NewString(),
		}
		c.Target.ID = c.ParentID

		err := s.repository.Create(context.Background(), c)

		s.ErrorIs(err, comment.ErrParentNotFound)
	})

	s.Run("should return error if parent is deleted", func() {
		root := s.createRoot("user-a", "root")
		_, err := s.repository.SoftDelete(context.Background(), root.ID, "[deleted]", time.Now())
		s.Require().NoError(err)

		c := &domain.Comment{
			Author:      "user-b",
			Content:     "late reply",
			Target:      root.ReplyTarget(),
			ParentID:    root.ID,
			ThreadLevel: 1,
		}
		err = s.repository.Create(context.Background(), c)

		s.ErrorIs(err, comment.ErrParentNotFound)
	})
}

func (s *CommentRepositorySuite) TestConcurrentReplies() {
	root := s.createRoot("user-a", "root")
	replies := 20

	var wg sync.WaitGroup
	errs := make(chan error, replies)
	for i := 0; i < replies; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- s.repository.Create(context.Background(), &domain.Comment{
				Author:      fmt.Sprintf("user-%d", i),
				Content:     "reply",
				Target:      root.ReplyTarget(),
				ParentID:    root.ID,
				ThreadLevel: 1,
			})
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.NoError(err)
	}

	s.Equal(replies, s.reload(root.ID).ReplyCount)
}

func (s *CommentRepositorySuite) TestGetByID() {
	s.Run("should return not found for unknown or malformed id", func() {
		_, err := s.repository.GetByID(context.Background(), uuid.NewString())
		s.ErrorIs(err, comment.ErrCommentNotFound)

		_, err = s.repository.GetByID(context.Background(), "not-a-uuid")
		s.ErrorIs(err, comment.ErrCommentNotFound)
	})
}

func (s *CommentRepositorySuite) TestListAndCount() {
	first := s.createRoot("user-a", "first")
	second := s.createRoot("user-b", "second")
	hidden := s.createRoot("user-c", "hidden")
	_, err := s.repository.UpdateStatus(context.Background(), hidden.ID, domain.CommentStatusActive, domain.CommentStatusHidden)
	s.Require().NoError(err)
	deleted := s.createRoot("user-a", "deleted")
	_, err = s.repository.SoftDelete(context.Background(), deleted.ID, "[deleted]", time.Now())
	s.Require().NoError(err)
	s.createReply(first, "user-b", "reply")

	filter := domain.ListCommentsFilter{
		TargetKind: s.ideaTarget.Kind,
		TargetID:   s.ideaTarget.ID,
		RootsOnly:  true,
		Statuses:   []domain.CommentStatus{domain.CommentStatusActive},
		OrderBy:    []string{"created_at:asc"},
	}

	s.Run("should count live roots only", func() {
		total, err := s.repository.Count(context.Background(), filter)

		s.NoError(err)
		s.Equal(int64(2), total)
	})

	s.Run("should list live roots in requested order with pagination", func() {
		f := filter
		f.Size = 1
		page1, err := s.repository.List(context.Background(), f)
		s.Require().NoError(err)
		f.Offset = 1
		page2, err := s.repository.List(context.Background(), f)
		s.Require().NoError(err)

		s.Require().Len(page1, 1)
		s.Require().Len(page2, 1)
		s.Equal(first.ID, page1[0].ID)
		s.Equal(second.ID, page2[0].ID)
	})

	s.Run("should list by author", func() {
		comments, err := s.repository.List(context.Background(), domain.ListCommentsFilter{Author: "user-a"})

		s.NoError(err)
		s.Len(comments, 1)
	})

	s.Run("should return empty result for malformed parent id", func() {
		comments, err := s.repository.List(context.Background(), domain.ListCommentsFilter{ParentID: "x"})
		s.NoError(err)
		s.Empty(comments)

		total, err := s.repository.Count(context.Background(), domain.ListCommentsFilter{ParentID: "x"})
		s.NoError(err)
		s.Zero(total)
	})
}

func (s *CommentRepositorySuite) TestListByParentIDs() {
	root := s.createRoot("user-a", "root")
	a := s.createReply(root, "user-b", "a")
	b := s.createReply(root, "user-c", "b")
	_, err := s.repository.SoftDelete(context.Background(), a.ID, "[deleted]", time.Now())
	s.Require().NoError(err)
	nested := s.createReply(b, "user-a", "nested")

	children, err := s.repository.ListByParentIDs(context.Background(), []string{root.ID, b.ID, "invalid"})

	s.Require().NoError(err)
	s.Require().Len(children, 3)
	s.Equal(a.ID, children[0].ID)
	s.True(children[0].IsDeleted)
	s.Equal(b.ID, children[1].ID)
	s.Equal(nested.ID, children[2].ID)
}

func (s *CommentRepositorySuite) TestSearch() {
	s.createRoot("user-a", "the quick brown fox")
	s.createRoot("user-b", "lazy dog")
	hidden := s.createRoot("user-c", "another fox")
	_, err := s.repository.UpdateStatus(context.Background(), hidden.ID, domain.CommentStatusActive, domain.CommentStatusSpam)
	s.Require().NoError(err)

	results, total, err := s.repository.Search(context.Background(), domain.SearchCommentsFilter{
		Query:      "fox",
		TargetKind: s.ideaTarget.Kind,
		TargetID:   s.ideaTarget.ID,
		Size:       10,
	})

	s.NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(results, 1)
	s.Equal("the quick brown fox", results[0].Content)

	s.Run("should count matches beyond the requested page", func() {
		s.createRoot("user-d", "fox again")

		results, total, err := s.repository.Search(context.Background(), domain.SearchCommentsFilter{
			Query:      "fox",
			TargetKind: s.ideaTarget.Kind,
			TargetID:   s.ideaTarget.ID,
			Size:       1,
		})

		s.NoError(err)
		s.Equal(int64(2), total)
		s.Len(results, 1)
	})
}

func (s *CommentRepositorySuite) TestUpdateContent() {
	c := s.createRoot("user-a", "original")
	editedAt := time.Now().Add(time.Minute).UTC().Truncate(time.Microsecond)

	updated, err := s.repository.UpdateContent(context.Background(), domain.CommentContentUpdate{
		CommentID: c.ID,
		Content:   "changed",
		Mentions:  []string{"user-b"},
		EditedAt:  editedAt,
	})

	s.Require().NoError(err)
	s.Equal("changed", updated.Content)
	s.True(updated.IsEdited)
	s.Equal([]string{"user-b"}, updated.Mentions)
	s.Require().Len(updated.EditHistory, 1)
	s.Equal("original", updated.EditHistory[0].Content)
	s.True(editedAt.Equal(updated.EditHistory[0].EditedAt))

	s.Run("should reject edits of deleted comment", func() {
		_, err := s.repository.SoftDelete(context.Background(), c.ID, "[deleted]", time.Now())
		s.Require().NoError(err)

		_, err = s.repository.UpdateContent(context.Background(), domain.CommentContentUpdate{CommentID: c.ID, Content: "again"})

		s.ErrorIs(err, comment.ErrCommentDeleted)
	})
}

func (s *CommentRepositorySuite) TestSoftDelete() {
	root := s.createRoot("user-a", "root")
	reply := &domain.Comment{
		Author:      "user-b",
		Content:     "reply to @carol",
		Target:      root.ReplyTarget(),
		ParentID:    root.ID,
		ThreadLevel: root.ReplyThreadLevel(),
		Status:      domain.CommentStatusActive,
		Mentions:    []string{"user-c"},
		Attachments: []*domain.Attachment{{URL: "https://cdn.example.com/a.png", Type: "image/png", Filename: "a.png", Size: 42}},
	}
	s.Require().NoError(s.repository.Create(context.Background(), reply))
	s.createReply(reply, "user-c", "nested")

	deleted, err := s.repository.SoftDelete(context.Background(), reply.ID, "[deleted]", time.Now())
	s.Require().NoError(err)
	s.True(deleted)

	actual := s.reload(reply.ID)
	s.True(actual.IsDeleted)
	s.NotNil(actual.DeletedAt)
	s.Equal("[deleted]", actual.Content)
	s.Equal(1, actual.ReplyCount, "children stay attached")
	s.Equal(0, s.reload(root.ID).ReplyCount)
	s.Equal([]string{"user-c"}, actual.Mentions)
	s.Require().Len(actual.Attachments, 1)
	s.Equal("a.png", actual.Attachments[0].Filename)
	s.Equal(root.ID, actual.ParentID)

	s.Run("should report false when already deleted", func() {
		deleted, err := s.repository.SoftDelete(context.Background(), reply.ID, "[deleted]", time.Now())

		s.NoError(err)
		s.False(deleted)
		s.Equal(0, s.reload(root.ID).ReplyCount)
	})

	s.Run("should return not found for unknown id", func() {
		_, err := s.repository.SoftDelete(context.Background(), uuid.NewString(), "[deleted]", time.Now())

		s.ErrorIs(err, comment.ErrCommentNotFound)
	})
}

func (s *CommentRepositorySuite) TestToggleLike() {
	c := s.createRoot("user-a", "like me")

	liked, count, err := s.repository.ToggleLike(context.Background(), c.ID, "user-b")
	s.Require().NoError(err)
	s.True(liked)
	s.Equal(1, count)
	s.True(s.reload(c.ID).IsLikedBy("user-b"))

	liked, count, err = s.repository.ToggleLike(context.Background(), c.ID, "user-b")
	s.Require().NoError(err)
	s.False(liked)
	s.Equal(0, count)

	actual := s.reload(c.ID)
	s.Equal(0, actual.LikeCount)
	s.Empty(actual.Likes)
}

func (s *CommentRepositorySuite) TestConcurrentLikes() {
	c := s.createRoot("user-a", "popular")
	users := 15

	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, err := s.repository.ToggleLike(context.Background(), c.ID, fmt.Sprintf("user-%d", i))
			s.NoError(err)
		}(i)
	}
	wg.Wait()

	actual := s.reload(c.ID)
	s.Equal(users, actual.LikeCount)
	s.Len(actual.Likes, users)
}

func (s *CommentRepositorySuite) TestAddFlag() {
	c := s.createRoot("user-a", "flag me")
	flag := &domain.CommentFlag{CommentID: c.ID, UserID: "user-b", Reason: "spam"}

	added, count, err := s.repository.AddFlag(context.Background(), flag)
	s.Require().NoError(err)
	s.True(added)
	s.Equal(1, count)

	s.Run("should ignore repeated flag by the same user", func() {
		added, count, err := s.repository.AddFlag(context.Background(), &domain.CommentFlag{CommentID: c.ID, UserID: "user-b", Reason: "other"})

		s.NoError(err)
		s.False(added)
		s.Equal(1, count)
		actual := s.reload(c.ID)
		s.Require().Len(actual.Flags, 1)
		s.Equal("spam", actual.Flags[0].Reason)
	})

	s.Run("should return not found for unknown comment", func() {
		_, _, err := s.repository.AddFlag(context.Background(), &domain.CommentFlag{CommentID: uuid.NewString(), UserID: "user-b", Reason: "spam"})

		s.ErrorIs(err, comment.ErrCommentNotFound)
	})
}

func (s *CommentRepositorySuite) TestUpdateStatus() {
	root := s.createRoot("user-a", "root")
	reply := s.createReply(root, "user-b", "reply")

	s.Run("should move status and decrement parent reply count", func() {
		updated, err := s.repository.UpdateStatus(context.Background(), reply.ID, domain.CommentStatusActive, domain.CommentStatusFlagged)

		s.NoError(err)
		s.True(updated)
		s.Equal(domain.CommentStatusFlagged, s.reload(reply.ID).Status)
		s.Equal(0, s.reload(root.ID).ReplyCount)
	})

	s.Run("should not update when current status differs", func() {
		updated, err := s.repository.UpdateStatus(context.Background(), reply.ID, domain.CommentStatusActive, domain.CommentStatusHidden)

		s.NoError(err)
		s.False(updated)
		s.Equal(domain.CommentStatusFlagged, s.reload(reply.ID).Status)
	})

	s.Run("should restore parent reply count when reactivated", func() {
		updated, err := s.repository.UpdateStatus(context.Background(), reply.ID, domain.CommentStatusFlagged, domain.CommentStatusActive)

		s.NoError(err)
		s.True(updated)
		s.Equal(1, s.reload(root.ID).ReplyCount)
	})
}

func (s *CommentRepositorySuite) TestReconcileAggregates() {
	root := s.createRoot("user-a", "root")
	s.createReply(root, "user-b", "reply")
	_, _, err := s.repository.ToggleLike(context.Background(), root.ID, "user-b")
	s.Require().NoError(err)

	err = s.store.DB().Exec(`UPDATE comments SET reply_count = 7, like_count = 0 WHERE id = ?`, root.ID).Error
	s.Require().NoError(err)

	corrected, err := s.repository.ReconcileAggregates(context.Background())

	s.NoError(err)
	s.Equal(int64(1), corrected)
	actual := s.reload(root.ID)
	s.Equal(1, actual.ReplyCount)
	s.Equal(1, actual.LikeCount)

	s.Run("should be a no-op when counters are consistent", func() {
		corrected, err := s.repository.ReconcileAggregates(context.Background())

		s.NoError(err)
		s.Zero(corrected)
	})
}

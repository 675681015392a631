package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/goto/discuss/core/comment"
	"github.com/goto/discuss/domain"
	store "github.com/goto/discuss/internal/store/postgres"
)

type ContentRepositoryTestSuite struct {
	suite.Suite
	dbMock     sqlmock.Sqlmock
	repository *store.ContentRepository
}

func TestContentRepository(t *testing.T) {
	suite.Run(t, new(ContentRepositoryTestSuite))
}

func (s *ContentRepositoryTestSuite) SetupTest() {
	db, dbMock, err := sqlmock.New()
	s.Require().NoError(err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)

	s.dbMock = dbMock
	s.repository = store.NewContentRepository(gormDB)
}

func (s *ContentRepositoryTestSuite) TearDownTest() {
	s.NoError(s.dbMock.ExpectationsWereMet())
}

func (s *ContentRepositoryTestSuite) TestExists() {
	s.Run("should query ideas table for idea targets", func() {
		s.dbMock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM ideas WHERE id = $1)`)).
			WithArgs("idea-1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := s.repository.Exists(context.Background(), domain.CommentTarget{Kind: domain.CommentTargetKindIdea, ID: "idea-1"})

		s.NoError(err)
		s.True(exists)
	})

	s.Run("should query domains table for domain targets", func() {
		s.dbMock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM domains WHERE id = $1)`)).
			WithArgs("domain-1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		exists, err := s.repository.Exists(context.Background(), domain.CommentTarget{Kind: domain.CommentTargetKindDomain, ID: "domain-1"})

		s.NoError(err)
		s.False(exists)
	})

	s.Run("should return false without querying for malformed comment id", func() {
		exists, err := s.repository.Exists(context.Background(), domain.CommentTarget{Kind: domain.CommentTargetKindComment, ID: "x"})

		s.NoError(err)
		s.False(exists)
	})

	s.Run("should reject unknown target kind", func() {
		_, err := s.repository.Exists(context.Background(), domain.CommentTarget{Kind: "page", ID: "1"})

		s.ErrorIs(err, comment.ErrValidationFailed)
	})

	s.Run("should return query error", func() {
		expectedErr := errors.New("connection reset")
		s.dbMock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM ideas WHERE id = $1)`)).
			WillReturnError(expectedErr)

		_, err := s.repository.Exists(context.Background(), domain.CommentTarget{Kind: domain.CommentTargetKindIdea, ID: "idea-1"})

		s.ErrorIs(err, expectedErr)
	})
}

func (s *ContentRepositoryTestSuite) TestAdjustCommentCount() {
	query := regexp.QuoteMeta(`UPDATE ideas SET comment_count = GREATEST(comment_count + $1, 0) WHERE id = $2`)

	s.Run("should update idea counter", func() {
		s.dbMock.ExpectExec(query).
			WithArgs(-1, "idea-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := s.repository.AdjustCommentCount(context.Background(), "idea-1", -1)

		s.NoError(err)
	})

	s.Run("should return target not found when no idea matched", func() {
		s.dbMock.ExpectExec(query).
			WithArgs(1, "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := s.repository.AdjustCommentCount(context.Background(), "missing", 1)

		s.ErrorIs(err, comment.ErrTargetNotFound)
		s.ErrorIs(err, comment.ErrNotFound)
	})
}

func (s *ContentRepositoryTestSuite) TestReconcileIdeaCommentCounts() {
	s.dbMock.ExpectExec(regexp.QuoteMeta(`UPDATE ideas`)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	corrected, err := s.repository.ReconcileIdeaCommentCounts(context.Background())

	s.NoError(err)
	s.Equal(int64(3), corrected)
}

package log

import (
	"context"
	"testing"

	"github.com/goto/discuss/pkg/log/mocks"
)

func TestLogger(t *testing.T) {
	saltLogger := new(mocks.SaltLogger)
	l := NewCtxLoggerWithSaltLogger(saltLogger, []string{"request_id"})

	t.Run("nil context passes args through", func(t *testing.T) {
		args := []interface{}{"comment_id", "c-1"}
		saltLogger.EXPECT().Debug("resolving mentions", args).Once()
		saltLogger.EXPECT().Info("comment created", args).Once()
		saltLogger.EXPECT().Warn("notification failed", args).Once()
		saltLogger.EXPECT().Error("count adjustment failed", args).Once()
		saltLogger.EXPECT().Fatal("server stopped", args).Once()

		l.Debug(nil, "resolving mentions", "comment_id", "c-1")      //nolint:staticcheck
		l.Info(nil, "comment created", "comment_id", "c-1")          //nolint:staticcheck
		l.Warn(nil, "notification failed", "comment_id", "c-1")      //nolint:staticcheck
		l.Error(nil, "count adjustment failed", "comment_id", "c-1") //nolint:staticcheck
		l.Fatal(nil, "server stopped", "comment_id", "c-1")          //nolint:staticcheck
		saltLogger.AssertExpectations(t)
	})

	t.Run("configured context keys are appended", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), "request_id", "r-9") //nolint:staticcheck

		saltLogger.EXPECT().Info("comment liked", []interface{}{"comment_id", "c-1", "request_id", "r-9"}).Once()
		l.Info(ctx, "comment liked", "comment_id", "c-1")
		saltLogger.AssertExpectations(t)
	})

	t.Run("fields accumulate across WithFields calls", func(t *testing.T) {
		ctx := WithFields(context.Background(), "http_path", "/v1beta1/comments/c-1")
		ctx = WithFields(ctx, "actor", "u-1")

		saltLogger.EXPECT().Warn("request failed", []interface{}{"status", 500, "http_path", "/v1beta1/comments/c-1", "actor", "u-1"}).Once()
		l.Warn(ctx, "request failed", "status", 500)
		saltLogger.AssertExpectations(t)
	})
}

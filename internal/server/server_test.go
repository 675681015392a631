package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	handlerv1beta1 "github.com/goto/discuss/api/handler/v1beta1"
	"github.com/goto/discuss/api/handler/v1beta1/mocks"
	"github.com/goto/discuss/domain"
	"github.com/goto/discuss/jobs"
	"github.com/goto/discuss/pkg/audit"
	"github.com/goto/discuss/pkg/log"
)

func TestHeaderAuthMiddleware(t *testing.T) {
	t.Run("should put the header value in context as actor", func(t *testing.T) {
		var actor string
		h := headerAuthMiddleware("X-Auth-Email", http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			actor = audit.ActorFromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Auth-Email", "user@example.com")
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "user@example.com", actor)
	})

	t.Run("should leave context untouched without header", func(t *testing.T) {
		actor := "unset"
		h := headerAuthMiddleware("X-Auth-Email", http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			actor = audit.ActorFromContext(r.Context())
		}))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Empty(t, actor)
	})
}

func TestNewHandler(t *testing.T) {
	cfg := &Config{Auth: Auth{Default: DefaultAuth{HeaderKey: "X-Auth-Email"}}}
	commentService := mocks.NewCommentService(t)
	reportService := mocks.NewReportService(t)
	eventService := mocks.NewEventService(t)
	api := handlerv1beta1.NewHTTPServer(commentService, reportService, eventService, log.NewNoop(), nil)

	h, err := NewHandler(cfg, log.NewNoop(), api)
	require.NoError(t, err)

	t.Run("ping", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "pong", rec.Body.String())
	})

	t.Run("should authenticate api requests from header", func(t *testing.T) {
		commentService.EXPECT().
			ToggleLike(mock.Anything, "c-1", "user@example.com").
			Return(&domain.LikeResult{CommentID: "c-1", Liked: true, LikeCount: 1}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1beta1/comments/c-1/like", nil)
		req.Header.Set("X-Auth-Email", "user@example.com")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should reject mutations without the header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1beta1/comments/c-1/like", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("should load values from file and apply defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		content := `
port: 9090
log_level: debug
db:
  host: db.internal
  name: comments
comment:
  flag_threshold: 3
  moderators:
    - mod@example.com
jobs:
  reconcile_counters:
    enabled: true
    interval: "0 * * * *"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "db.internal", cfg.DB.Host)
		assert.Equal(t, "comments", cfg.DB.Name)
		assert.Equal(t, "5432", cfg.DB.Port)
		assert.Equal(t, 3, cfg.Comment.FlagThreshold)
		assert.Equal(t, 24*time.Hour, cfg.Comment.EditWindow)
		assert.Equal(t, []string{"mod@example.com"}, cfg.Comment.Moderators)
		assert.Equal(t, "X-Auth-Email", cfg.Auth.Default.HeaderKey)
		assert.True(t, cfg.Jobs[jobs.TypeReconcileCounters].Enabled)
	})

	t.Run("should not fail when the file does not exist", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.NoError(t, err)
	})
}

package lark_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goto/discuss/domain"
	"github.com/goto/discuss/pkg/log"
	"github.com/goto/discuss/plugins/notifiers/lark"
)

func TestNotifier_Notify(t *testing.T) {
	workspace := lark.LarkWorkspace{WorkspaceName: "default", ClientID: "app", ClientSecret: "secret"}
	notification := domain.Notification{
		User: "moderator@example.com",
		Message: domain.NotificationMessage{
			Type:      domain.NotificationTypeFlaggedCommentsReminder,
			Variables: map[string]interface{}{"flagged_count": 3},
		},
	}

	t.Run("should fetch tenant token once and send messages", func(t *testing.T) {
		tokenCalls := 0
		var sent []map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, "/open-apis/auth") {
				tokenCalls++
				w.Write([]byte(`{"code":0,"msg":"ok","tenant_access_token":"t-1","expire":7200}`))
				return
			}
			assert.Equal(t, "Bearer t-1", r.Header.Get("Authorization"))
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			sent = append(sent, body)
			w.Write([]byte(`{"code":0,"msg":"success"}`))
		}))
		defer server.Close()

		n := lark.NewNotifier(&lark.Config{Workspace: workspace, Host: server.URL}, server.Client(), log.NewNoop())

		errs := n.Notify(context.Background(), []domain.Notification{notification, notification})

		assert.Empty(t, errs)
		assert.Equal(t, 1, tokenCalls)
		require.Len(t, sent, 2)
		assert.Equal(t, "moderator@example.com", sent[0]["receive_id"])
		assert.Equal(t, `{"text":"3 flagged comments are waiting for review."}`, sent[0]["content"])
	})

	t.Run("should return error when token request is rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code":10003,"msg":"invalid app_secret"}`))
		}))
		defer server.Close()

		n := lark.NewNotifier(&lark.Config{Workspace: workspace, Host: server.URL}, server.Client(), log.NewNoop())

		errs := n.Notify(context.Background(), []domain.Notification{notification})

		require.Len(t, errs, 1)
		assert.ErrorContains(t, errs[0], "invalid app_secret")
	})

	t.Run("should not call api for empty batch", func(t *testing.T) {
		n := lark.NewNotifier(&lark.Config{Workspace: workspace, Host: "http://127.0.0.1:1"}, http.DefaultClient, log.NewNoop())

		assert.Empty(t, n.Notify(context.Background(), nil))
	})
}

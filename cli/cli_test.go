package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goto/discuss/domain"
	"github.com/goto/discuss/internal/server"
	"github.com/goto/discuss/pkg/audit"
)

func TestNew(t *testing.T) {
	root := New()

	for _, path := range [][]string{
		{"server", "start"},
		{"server", "migrate"},
		{"server", "rollback"},
		{"job", "list"},
		{"job", "run"},
		{"comment", "thread"},
		{"comment", "replies"},
		{"comment", "view"},
		{"comment", "create"},
		{"comment", "reply"},
		{"comment", "edit"},
		{"comment", "delete"},
		{"comment", "like"},
		{"comment", "flag"},
		{"comment", "moderate"},
		{"comment", "search"},
		{"comment", "list"},
		{"comment", "flagged"},
		{"comment", "events"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestAppActor(t *testing.T) {
	a := &app{config: server.Config{}}
	a.config.Comment.Moderators = []string{"mod@example.com"}

	_, err := a.actor(context.Background())
	assert.ErrorIs(t, err, errActorRequired)

	actor, err := a.actor(audit.WithActor(context.Background(), "user@example.com"))
	require.NoError(t, err)
	assert.Equal(t, domain.Actor{ID: "user@example.com", Role: domain.ActorRoleUser}, actor)

	actor, err = a.actor(audit.WithActor(context.Background(), "mod@example.com"))
	require.NoError(t, err)
	assert.True(t, actor.IsAdmin())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "line one line two", truncate("line one\nline two", 40))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}

func TestPrintPage(t *testing.T) {
	page := domain.NewCommentPage([]*domain.Comment{
		{
			ID:      "c-1",
			Author:  "alice",
			Content: "root",
			Status:  domain.CommentStatusActive,
			Replies: []*domain.Comment{
				{ID: "c-2", Author: "bob", ThreadLevel: 1, Content: "reply", Status: domain.CommentStatusActive},
			},
		},
	}, 1, 20, 1)

	newCmd := func(output string) (*cobra.Command, *bytes.Buffer) {
		cmd := &cobra.Command{}
		cmd.Flags().StringP("output", "o", output, "")
		buf := new(bytes.Buffer)
		cmd.SetOut(buf)
		return cmd, buf
	}

	t.Run("table", func(t *testing.T) {
		cmd, buf := newCmd(formatTable)
		require.NoError(t, printPage(cmd, page))
		assert.Contains(t, buf.String(), "c-1")
		assert.Contains(t, buf.String(), "c-2")
		assert.Contains(t, buf.String(), "page 1 of 1 (1 total)")
	})

	t.Run("json", func(t *testing.T) {
		cmd, buf := newCmd(formatJSON)
		require.NoError(t, printPage(cmd, page))
		assert.Contains(t, buf.String(), `"total_pages": 1`)
	})

	t.Run("yaml", func(t *testing.T) {
		cmd, buf := newCmd(formatYAML)
		require.NoError(t, printPage(cmd, page))
		assert.Contains(t, buf.String(), "total_pages: 1")
	})

	t.Run("unknown format", func(t *testing.T) {
		cmd, _ := newCmd("xml")
		assert.Error(t, printPage(cmd, page))
	})
}

func TestListJobs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
jobs:
  reconcile_counters:
    enabled: true
    interval: "0 * * * *"
  flagged_comments_reminder:
    enabled: false
    interval: "0 9 * * *"
`), 0o600))

	run := func(args ...string) string {
		root := New()
		buf := new(bytes.Buffer)
		root.SetOut(buf)
		root.SetArgs(append([]string{"job", "list", "-c", path}, args...))
		require.NoError(t, root.Execute())
		return buf.String()
	}

	t.Run("table", func(t *testing.T) {
		out := run()
		assert.Contains(t, out, "reconcile_counters")
		assert.Contains(t, out, "0 * * * *")
		assert.Contains(t, out, "flagged_comments_reminder")
	})

	t.Run("yaml", func(t *testing.T) {
		out := run("-o", "yaml")
		assert.Contains(t, out, "interval:")
		assert.Contains(t, out, "0 9 * * *")
	})
}

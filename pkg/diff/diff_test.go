package diff_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goto/discuss/pkg/diff"
)

type snapshot struct {
	Content  string   `json:"content"`
	Status   string   `json:"status,omitempty"`
	Mentions []string `json:"mentions,omitempty"`
}

func TestGetChangelog(t *testing.T) {
	testCases := []struct {
		name     string
		a        interface{}
		b        interface{}
		expected []*diff.PatchOp
	}{
		{
			name: "no diff",
			a:    snapshot{Content: "hello", Mentions: []string{"u-1"}},
			b:    snapshot{Content: "hello", Mentions: []string{"u-1"}},
		},
		{
			name: "content replaced",
			a:    snapshot{Content: "hello"},
			b:    snapshot{Content: "hello world"},
			expected: []*diff.PatchOp{
				{Op: "replace", Path: "content", OldValue: "hello", NewValue: "hello world"},
			},
		},
		{
			name: "field removed",
			a:    snapshot{Content: "hi", Status: "flagged"},
			b:    snapshot{Content: "hi"},
			expected: []*diff.PatchOp{
				{Op: "remove", Path: "status", OldValue: "flagged"},
			},
		},
		{
			name: "mention appended",
			a:    snapshot{Content: "hi", Mentions: []string{"u-1"}},
			b:    snapshot{Content: "hi", Mentions: []string{"u-1", "u-2"}},
			expected: []*diff.PatchOp{
				{Op: "add", Path: "mentions.-", NewValue: "u-2"},
			},
		},
		{
			name: "nested key with escaped pointer characters",
			a:    map[string]interface{}{"meta": map[string]interface{}{"a/b": 1}},
			b:    map[string]interface{}{"meta": map[string]interface{}{"a/b": 2}},
			expected: []*diff.PatchOp{
				{Op: "replace", Path: "meta.a/b", OldValue: float64(1), NewValue: float64(2)},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := diff.GetChangelog(tc.a, tc.b)

			require.NoError(t, err)
			if d := cmp.Diff(tc.expected, actual); d != "" {
				t.Errorf("unexpected changelog (-want +got):\n%s", d)
			}
		})
	}
}

func TestGetChangelogInvalidInput(t *testing.T) {
	_, err := diff.GetChangelog(make(chan int), snapshot{})
	assert.Error(t, err)
}

func TestWithActor(t *testing.T) {
	changes := diff.WithActor([]*diff.PatchOp{{Op: "replace", Path: "content"}}, "u-1")
	assert.Equal(t, "u-1", changes[0].Actor)
}

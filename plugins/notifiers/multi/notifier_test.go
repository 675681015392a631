package multi_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goto/discuss/domain"
	"github.com/goto/discuss/plugins/notifiers/multi"
)

type notifierFunc func(context.Context, []domain.Notification) []error

func (f notifierFunc) Notify(ctx context.Context, items []domain.Notification) []error {
	return f(ctx, items)
}

func TestNotifier_Notify(t *testing.T) {
	items := []domain.Notification{{User: "moderator@example.com"}}
	var calls []string

	first := notifierFunc(func(_ context.Context, got []domain.Notification) []error {
		calls = append(calls, "first")
		assert.Equal(t, items, got)
		return []error{errors.New("first failed")}
	})
	second := notifierFunc(func(_ context.Context, got []domain.Notification) []error {
		calls = append(calls, "second")
		return nil
	})

	errs := multi.NewNotifier(first, second).Notify(context.Background(), items)

	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Len(t, errs, 1)
}

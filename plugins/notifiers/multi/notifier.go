package multi

import (
	"context"

	"github.com/goto/discuss/domain"
)

type notifier interface {
	Notify(context.Context, []domain.Notification) []error
}

// Notifier fans every batch out to all wrapped notifiers.
type Notifier struct {
	notifiers []notifier
}

func NewNotifier(notifiers ...notifier) *Notifier {
	return &Notifier{notifiers: notifiers}
}

func (n *Notifier) Notify(ctx context.Context, items []domain.Notification) []error {
	errs := make([]error, 0)
	for _, child := range n.notifiers {
		errs = append(errs, child.Notify(ctx, items)...)
	}
	return errs
}

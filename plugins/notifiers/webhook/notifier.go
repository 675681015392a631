package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/goto/discuss/domain"
	"github.com/goto/discuss/pkg/log"
	"github.com/goto/discuss/plugins/notifiers/message"
)

type sender interface {
	Send(ctx context.Context, body []byte) (*http.Response, error)
}

type payload struct {
	Type      string                 `json:"type"`
	User      string                 `json:"user"`
	Text      string                 `json:"text"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// Notifier posts every notification as a JSON document to a single endpoint.
type Notifier struct {
	client   sender
	messages domain.NotificationMessages
	logger   log.Logger
}

func NewNotifier(client sender, messages domain.NotificationMessages, logger log.Logger) *Notifier {
	return &Notifier{
		client:   client,
		messages: messages,
		logger:   logger,
	}
}

func (n *Notifier) Notify(ctx context.Context, items []domain.Notification) []error {
	errs := make([]error, 0)
	for _, item := range items {
		text, err := message.Parse(item.Message, n.messages)
		if err != nil {
			errs = append(errs, fmt.Errorf("error parsing message: %w", err))
			continue
		}

		body, err := json.Marshal(payload{
			Type:      item.Message.Type,
			User:      item.User,
			Text:      text,
			Variables: item.Message.Variables,
		})
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := n.send(ctx, body); err != nil {
			errs = append(errs, fmt.Errorf("error sending webhook for %s: %w", item.User, err))
			continue
		}
		n.logger.Debug(ctx, "webhook notification sent", "user", item.User, "type", item.Message.Type)
	}
	return errs
}

func (n *Notifier) send(ctx context.Context, body []byte) error {
	resp, err := n.client.Send(ctx, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}
	return nil
}

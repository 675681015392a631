package slack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/goto/discuss/domain"
	"github.com/goto/discuss/pkg/log"
	"github.com/goto/discuss/plugins/notifiers/message"
)

const (
	defaultSlackHost = "https://slack.com"

	lookupByEmailPath = "/api/users.lookupByEmail"
	postMessagePath   = "/api/chat.postMessage"
)

type Config struct {
	AccessToken string `mapstructure:"access_token" validate:"required"`
	// Host overrides the Slack API host
	Host     string `mapstructure:"host"`
	Messages domain.NotificationMessages
}

type userResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
	User  struct {
		ID string `json:"id"`
	} `json:"user"`
}

type apiResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

type Notifier struct {
	accessToken string
	host        string
	messages    domain.NotificationMessages
	httpClient  *http.Client
	logger      log.Logger
}

func NewNotifier(config *Config, httpClient *http.Client, logger log.Logger) *Notifier {
	host := config.Host
	if host == "" {
		host = defaultSlackHost
	}
	return &Notifier{
		accessToken: config.AccessToken,
		host:        strings.TrimSuffix(host, "/"),
		messages:    config.Messages,
		httpClient:  httpClient,
		logger:      logger,
	}
}

// Notify sends every notification as a direct message to the Slack user
// whose email matches the notification's recipient.
func (n *Notifier) Notify(ctx context.Context, items []domain.Notification) []error {
	errs := make([]error, 0)
	for _, item := range items {
		n.logger.Debug(ctx, "sending slack notification", "user", item.User, "type", item.Message.Type)

		text, err := message.Parse(item.Message, n.messages)
		if err != nil {
			errs = append(errs, fmt.Errorf("error parsing message: %w", err))
			continue
		}

		slackID, err := n.findSlackIDByEmail(ctx, item.User)
		if err != nil {
			errs = append(errs, fmt.Errorf("error finding slack id for %s: %w", item.User, err))
			continue
		}

		if err := n.sendMessage(ctx, slackID, text); err != nil {
			errs = append(errs, fmt.Errorf("error sending message to %s: %w", item.User, err))
		}
	}
	return errs
}

func (n *Notifier) findSlackIDByEmail(ctx context.Context, email string) (string, error) {
	endpoint := n.host + lookupByEmailPath + "?" + url.Values{"email": []string{email}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	var result userResponse
	if err := n.do(req, &result); err != nil {
		return "", err
	}
	if !result.OK {
		return "", errors.New(result.Error)
	}
	if result.User.ID == "" {
		return "", fmt.Errorf("user not found")
	}
	return result.User.ID, nil
}

func (n *Notifier) sendMessage(ctx context.Context, channel, text string) error {
	payload, err := json.Marshal(map[string]string{
		"channel": channel,
		"text":    text,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.host+postMessagePath, strings.NewReader(string(payload)))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	var result apiResponse
	if err := n.do(req, &result); err != nil {
		return err
	}
	if !result.OK {
		return errors.New(result.Error)
	}
	return nil
}

func (n *Notifier) do(req *http.Request, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+n.accessToken)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("slack responded with status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

package lark

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/goto/discuss/domain"
	"github.com/goto/discuss/pkg/log"
	"github.com/goto/discuss/plugins/notifiers/message"
)

const (
	defaultLarkHost = "https://open.larksuite.com"

	tenantAccessTokenPath = "/open-apis/auth/v3/tenant_access_token/internal/"
	sendMessagePath       = "/open-apis/im/v1/messages?receive_id_type=email"
)

type tokenResponse struct {
	Msg    string `json:"msg"`
	Token  string `json:"tenant_access_token"`
	Code   int    `json:"code"`
	Expire int    `json:"expire"`
}

type messageResponse struct {
	Msg  string `json:"msg"`
	Code int    `json:"code"`
}

type Payload struct {
	AppID     string `json:"app_id"`
	AppSecret string `json:"app_secret"`
}

type LarkWorkspace struct {
	WorkspaceName string `mapstructure:"workspace" validate:"required"`
	ClientID      string `mapstructure:"client_id" validate:"required"`
	ClientSecret  string `mapstructure:"client_secret" validate:"required"`
}

type Config struct {
	Workspace LarkWorkspace
	// Host overrides the Lark open API host
	Host     string
	Messages domain.NotificationMessages
}

type Notifier struct {
	workspace  LarkWorkspace
	host       string
	messages   domain.NotificationMessages
	httpClient *http.Client
	logger     log.Logger
}

func NewNotifier(config *Config, httpClient *http.Client, logger log.Logger) *Notifier {
	host := config.Host
	if host == "" {
		host = defaultLarkHost
	}
	return &Notifier{
		workspace:  config.Workspace,
		host:       strings.TrimSuffix(host, "/"),
		messages:   config.Messages,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Notify sends each notification as a text message addressed by email. A
// tenant token is fetched once per batch.
func (n *Notifier) Notify(ctx context.Context, items []domain.Notification) []error {
	errs := make([]error, 0)
	if len(items) == 0 {
		return errs
	}

	token, err := n.findTenantAccessToken(ctx)
	if err != nil {
		return append(errs, err)
	}

	for _, item := range items {
		n.logger.Debug(ctx, "sending lark notification", "user", item.User, "type", item.Message.Type)

		text, err := message.Parse(item.Message, n.messages)
		if err != nil {
			errs = append(errs, fmt.Errorf("error parsing message: %w", err))
			continue
		}

		if err := n.sendMessage(ctx, token, item.User, text); err != nil {
			errs = append(errs, fmt.Errorf("error sending message to user:%s in workspace:%s | %w", item.User, n.workspace.WorkspaceName, err))
		}
	}
	return errs
}

func (n *Notifier) sendMessage(ctx context.Context, token, email, text string) error {
	content, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return err
	}
	data, err := json.Marshal(map[string]string{
		"receive_id": email,
		"msg_type":   "text",
		"content":    string(content),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.host+sendMessagePath, bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	req.Header.Add("Authorization", "Bearer "+token)
	req.Header.Add("Content-Type", "application/json")

	var result messageResponse
	if err := n.sendRequest(req, &result); err != nil {
		return err
	}
	if result.Code != 0 {
		return errors.New(result.Msg)
	}
	return nil
}

func (n *Notifier) findTenantAccessToken(ctx context.Context) (string, error) {
	data, err := json.Marshal(Payload{
		AppID:     n.workspace.ClientID,
		AppSecret: n.workspace.ClientSecret,
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.host+tenantAccessTokenPath, bytes.NewBuffer(data))
	if err != nil {
		return "", err
	}
	req.Header.Add("Content-Type", "application/json")

	var result tokenResponse
	if err := n.sendRequest(req, &result); err != nil {
		return "", fmt.Errorf("error get tenant access token for workspace: %s - %w", n.workspace.WorkspaceName, err)
	}
	if result.Code != 0 || result.Token == "" {
		return "", fmt.Errorf("could not get token for workspace: %s - %s", n.workspace.WorkspaceName, result.Msg)
	}
	return result.Token, nil
}

func (n *Notifier) sendRequest(req *http.Request, out interface{}) error {
	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(out)
}

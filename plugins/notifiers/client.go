package notifiers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goto/discuss/domain"
	pkghttp "github.com/goto/discuss/pkg/http"
	"github.com/goto/discuss/pkg/log"
	"github.com/goto/discuss/pkg/opentelemetry/otelhttpclient"
	"github.com/goto/discuss/plugins/notifiers/lark"
	"github.com/goto/discuss/plugins/notifiers/multi"
	"github.com/goto/discuss/plugins/notifiers/slack"
	"github.com/goto/discuss/plugins/notifiers/webhook"
)

type Client interface {
	Notify(context.Context, []domain.Notification) []error
}

const (
	ProviderTypeNoop      = "noop"
	ProviderTypeSlack     = "slack"
	ProviderTypeLark      = "lark"
	ProviderTypeSlackLark = "slacklark"
	ProviderTypeWebhook   = "webhook"
)

var ErrInvalidProvider = errors.New("invalid notifier provider type")

type Config struct {
	Provider string `mapstructure:"provider" default:"noop" validate:"omitempty,oneof=noop slack lark slacklark webhook"`

	// slack
	AccessToken string `mapstructure:"access_token"`
	SlackHost   string `mapstructure:"slack_host"`

	// lark
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	LarkHost     string `mapstructure:"lark_host"`

	// webhook
	Webhook *pkghttp.HTTPClientConfig `mapstructure:"webhook"`

	Timeout time.Duration `mapstructure:"timeout" default:"10s"`

	// custom messages
	Messages domain.NotificationMessages `mapstructure:"messages"`
}

func NewClient(config *Config, logger log.Logger) (Client, error) {
	switch config.Provider {
	case "", ProviderTypeNoop:
		return Noop{}, nil
	case ProviderTypeSlack:
		slackConfig, err := getSlackConfig(config)
		if err != nil {
			return nil, err
		}
		return slack.NewNotifier(slackConfig, newHTTPClient("slack", config.Timeout), logger), nil
	case ProviderTypeLark:
		larkConfig, err := getLarkConfig(config)
		if err != nil {
			return nil, err
		}
		return lark.NewNotifier(larkConfig, newHTTPClient("lark", config.Timeout), logger), nil
	case ProviderTypeSlackLark:
		slackConfig, err := getSlackConfig(config)
		if err != nil {
			return nil, err
		}
		larkConfig, err := getLarkConfig(config)
		if err != nil {
			return nil, err
		}
		return multi.NewNotifier(
			slack.NewNotifier(slackConfig, newHTTPClient("slack", config.Timeout), logger),
			lark.NewNotifier(larkConfig, newHTTPClient("lark", config.Timeout), logger),
		), nil
	case ProviderTypeWebhook:
		if config.Webhook == nil {
			return nil, errors.New("webhook config is required for webhook notifier")
		}
		webhookConfig := *config.Webhook
		if webhookConfig.HTTPClient == nil {
			webhookConfig.HTTPClient = otelhttpclient.New("webhook", config.Timeout, &pkghttp.RetryableTransport{
				Transport:  http.DefaultTransport,
				RetryCount: webhookConfig.RetryCount,
			})
		}
		client, err := pkghttp.NewHTTPClient(&webhookConfig)
		if err != nil {
			return nil, fmt.Errorf("invalid webhook config: %w", err)
		}
		return webhook.NewNotifier(client, config.Messages, logger), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidProvider, config.Provider)
}

func getSlackConfig(config *Config) (*slack.Config, error) {
	if config.AccessToken == "" {
		return nil, errors.New("access token is required for slack notifier")
	}
	return &slack.Config{
		AccessToken: config.AccessToken,
		Host:        config.SlackHost,
		Messages:    config.Messages,
	}, nil
}

func getLarkConfig(config *Config) (*lark.Config, error) {
	if config.ClientID == "" || config.ClientSecret == "" {
		return nil, errors.New("client id and client secret are required for lark notifier")
	}
	return &lark.Config{
		Workspace: lark.LarkWorkspace{
			WorkspaceName: config.Provider,
			ClientID:      config.ClientID,
			ClientSecret:  config.ClientSecret,
		},
		Host:     config.LarkHost,
		Messages: config.Messages,
	}, nil
}

func newHTTPClient(name string, timeout time.Duration) *http.Client {
	return otelhttpclient.New(name, timeout, nil)
}

// Noop drops every notification.
type Noop struct{}

func (Noop) Notify(context.Context, []domain.Notification) []error {
	return nil
}

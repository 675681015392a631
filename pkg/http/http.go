package http

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	validator "github.com/go-playground/validator/v10"
	defaults "github.com/mcuadros/go-defaults"
)

type HTTPAuthConfig struct {
	Type string `mapstructure:"type" json:"type" yaml:"type" validate:"required,oneof=basic api_key bearer"`

	// basic auth
	Username string `mapstructure:"username,omitempty" json:"username,omitempty" yaml:"username,omitempty" validate:"required_if=Type basic"`
	Password string `mapstructure:"password,omitempty" json:"password,omitempty" yaml:"password,omitempty" validate:"required_if=Type basic"`

	// api key
	In    string `mapstructure:"in,omitempty" json:"in,omitempty" yaml:"in,omitempty" validate:"required_if=Type api_key,omitempty,oneof=query header"`
	Key   string `mapstructure:"key,omitempty" json:"key,omitempty" yaml:"key,omitempty" validate:"required_if=Type api_key"`
	Value string `mapstructure:"value,omitempty" json:"value,omitempty" yaml:"value,omitempty" validate:"required_if=Type api_key"`

	// bearer
	Token string `mapstructure:"token,omitempty" json:"token,omitempty" yaml:"token,omitempty" validate:"required_if=Type bearer"`
}

// HTTPClientConfig configures a client posting to a single endpoint
type HTTPClientConfig struct {
	URL        string            `mapstructure:"url" json:"url" yaml:"url" validate:"required,url"`
	Headers    map[string]string `mapstructure:"headers,omitempty" json:"headers,omitempty" yaml:"headers,omitempty"`
	Auth       *HTTPAuthConfig   `mapstructure:"auth,omitempty" json:"auth,omitempty" yaml:"auth,omitempty" validate:"omitempty"`
	Method     string            `mapstructure:"method,omitempty" json:"method,omitempty" yaml:"method,omitempty" default:"POST" validate:"omitempty,oneof=GET POST PUT"`
	RetryCount int               `mapstructure:"retry_count,omitempty" json:"retry_count,omitempty" yaml:"retry_count,omitempty" default:"3"`
	HTTPClient *http.Client      `mapstructure:"-" json:"-" yaml:"-"`
}

type HTTPClient struct {
	httpClient *http.Client
	config     *HTTPClientConfig
}

func NewHTTPClient(config *HTTPClientConfig) (*HTTPClient, error) {
	defaults.SetDefaults(config)
	if err := validator.New().Struct(config); err != nil {
		return nil, err
	}
	if config.Auth != nil {
		if err := validator.New().Struct(config.Auth); err != nil {
			return nil, fmt.Errorf("invalid auth config: %w", err)
		}
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: &RetryableTransport{
				Transport:  http.DefaultTransport,
				RetryCount: config.RetryCount,
			},
		}
	}

	return &HTTPClient{
		httpClient: httpClient,
		config:     config,
	}, nil
}

func (c *HTTPClient) URL() string {
	return c.config.URL
}

func (c *HTTPClient) setAuth(req *http.Request) {
	if c.config.Auth != nil {
		switch c.config.Auth.Type {
		case "basic":
			req.SetBasicAuth(c.config.Auth.Username, c.config.Auth.Password)
		case "api_key":
			switch c.config.Auth.In {
			case "query":
				q := req.URL.Query()
				q.Add(c.config.Auth.Key, c.config.Auth.Value)
				req.URL.RawQuery = q.Encode()
			case "header":
				req.Header.Add(c.config.Auth.Key, c.config.Auth.Value)
			default:
			}
		case "bearer":
			req.Header.Add("Authorization", "Bearer "+c.config.Auth.Token)
		default:
		}
	}
}

// Send issues the configured request with body as JSON payload
func (c *HTTPClient) Send(ctx context.Context, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, c.config.Method, c.config.URL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.config.Headers {
		req.Header.Set(k, v)
	}
	c.setAuth(req)

	return c.httpClient.Do(req)
}

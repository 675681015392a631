package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goto/discuss/internal/server"
	"github.com/goto/discuss/pkg/log"
	"github.com/goto/discuss/plugins/notifiers"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
	formatJSON  = "json"
)

func loadConfig(cmd *cobra.Command) (server.Config, error) {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return server.Config{}, fmt.Errorf("getting config flag value: %w", err)
	}
	cfg, err := server.LoadConfig(configFile)
	if err != nil {
		return server.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

type app struct {
	config   server.Config
	logger   log.Logger
	notifier notifiers.Client
	services *server.Services
}

func (a *app) Close() error {
	return a.services.Close()
}

func initApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger := log.NewCtxLogger(cfg.LogLevel, nil)
	notifier, err := notifiers.NewClient(&cfg.Notifier, logger)
	if err != nil {
		return nil, err
	}

	services, err := server.InitServices(ctx, server.ServiceDeps{
		Config:    &cfg,
		Logger:    logger,
		Validator: validator.New(),
		Notifier:  notifier,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing services: %w", err)
	}

	return &app{
		config:   cfg,
		logger:   logger,
		notifier: notifier,
		services: services,
	}, nil
}

func printStructured(w io.Writer, format string, v interface{}) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML, "":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	}
	return fmt.Errorf("unsupported output format %q", format)
}

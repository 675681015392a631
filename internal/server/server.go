package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	handlerv1beta1 "github.com/goto/discuss/api/handler/v1beta1"
	"github.com/goto/discuss/pkg/log"
	"github.com/goto/discuss/pkg/opentelemetry"
	"github.com/goto/discuss/plugins/notifiers"
)

const readHeaderTimeout = 10 * time.Second

// NewHandler builds the http handler serving the comment api with the
// authentication, logging and tracing middlewares applied.
func NewHandler(cfg *Config, logger log.Logger, api *handlerv1beta1.HTTPServer) (http.Handler, error) {
	mux := runtime.NewServeMux()
	if err := api.Register(mux); err != nil {
		return nil, err
	}
	if err := mux.HandlePath(http.MethodGet, "/ping", func(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	}); err != nil {
		return nil, err
	}

	var h http.Handler = mux
	h = requestLogger(logger, h)
	h = enrichLogFields(h)
	h = headerAuthMiddleware(cfg.Auth.Default.HeaderKey, h)
	return otelhttp.NewHandler(h, "discuss.http"), nil
}

// RunServer starts the http api and blocks until SIGINT or SIGTERM
func RunServer(cfg *Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := log.NewCtxLogger(cfg.LogLevel, nil)

	shutdownOtel, err := opentelemetry.Init(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		if err := shutdownOtel(); err != nil {
			logger.Error(ctx, "failed to shutdown telemetry", "error", err)
		}
	}()

	notifier, err := notifiers.NewClient(&cfg.Notifier, logger)
	if err != nil {
		return fmt.Errorf("initializing notifier: %w", err)
	}

	services, err := InitServices(ctx, ServiceDeps{
		Config:    cfg,
		Logger:    logger,
		Validator: validator.New(),
		Notifier:  notifier,
	})
	if err != nil {
		return fmt.Errorf("initializing services: %w", err)
	}
	defer services.Close() //nolint:errcheck

	api := handlerv1beta1.NewHTTPServer(
		services.CommentService,
		services.ReportService,
		services.EventService,
		logger,
		cfg.Comment.Moderators,
	)
	handler, err := NewHandler(cfg, logger, api)
	if err != nil {
		return fmt.Errorf("registering routes: %w", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "server is running", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}

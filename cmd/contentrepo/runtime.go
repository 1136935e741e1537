package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/go-contentrepo/internal/adapters/clients"
	"github.com/jsamuelsen/go-contentrepo/internal/adapters/clients/acl"
	"github.com/jsamuelsen/go-contentrepo/internal/app"
	"github.com/jsamuelsen/go-contentrepo/internal/platform/config"
	"github.com/jsamuelsen/go-contentrepo/internal/platform/logging"
	"github.com/jsamuelsen/go-contentrepo/internal/platform/telemetry"
	"github.com/jsamuelsen/go-contentrepo/internal/ports"
)

// runtime is the wired client stack one command invocation works with.
type runtime struct {
	cfg       *config.Config
	logger    *slog.Logger
	telemetry *telemetry.Provider
	metrics   *prometheus.Registry

	buckets     *acl.BucketClient
	collections *acl.CollectionClient
	objects     *acl.ObjectClient
	status      *acl.StatusClient

	service *app.Service
	health  *ports.DefaultHealthRegistry
}

// newRuntime loads configuration and wires logging, telemetry, transport,
// executor, endpoint clients and the application service.
func newRuntime(ctx context.Context, opts *globalOptions) (*runtime, error) {
	// 1. Load and validate configuration (fail fast)
	cfg, err := config.LoadFrom(opts.configDir, opts.profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	opts.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// 2. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	// 3. Initialize telemetry (noop if disabled)
	tel, err := telemetry.New(ctx, telemetry.ConfigFrom(cfg))
	if err != nil {
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}

	// 4. Transport and executor
	client, err := clients.New(&clients.Config{
		ServiceName: acl.StatusCheckName,
		UserAgent:   cfg.Client.UserAgent,
		AuthToken:   cfg.Repository.AuthToken,
		Timeout:     cfg.Client.Timeout,
		Transport:   cfg.Client.Transport,
		Circuit:     cfg.Client.CircuitBreaker,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating HTTP client: %w", err)
	}

	metrics := prometheus.NewRegistry()

	exec, err := clients.NewExecutor(clients.ExecutorConfig{
		Transport:         client,
		Logger:            logger,
		Metrics:           metrics,
		MaxErrorBodyBytes: cfg.Client.MaxErrorBodyBytes,
	})
	if err != nil {
		return nil, fmt.Errorf("creating executor: %w", err)
	}

	// 5. Endpoint clients (ACL)
	requests, err := acl.NewRequestBuilder(cfg.Repository.BaseURL, cfg.Repository.Bucket)
	if err != nil {
		return nil, fmt.Errorf("creating request builder: %w", err)
	}

	rt := &runtime{
		cfg:         cfg,
		logger:      logger,
		telemetry:   tel,
		metrics:     metrics,
		buckets:     acl.NewBucketClient(exec, requests),
		collections: acl.NewCollectionClient(exec, requests),
		objects:     acl.NewObjectClient(exec, requests),
		status:      acl.NewStatusClient(exec, requests),
		health:      ports.NewHealthRegistry(),
	}

	// 6. Health checks
	if err := rt.health.Register(rt.status); err != nil {
		return nil, fmt.Errorf("registering repository health check: %w", err)
	}

	// 7. Application service
	rt.service = app.NewService(rt.buckets, rt.objects, rt.status, &app.ServiceConfig{Logger: logger})

	return rt, nil
}

// Close flushes telemetry.
func (r *runtime) Close(ctx context.Context) {
	if err := r.telemetry.Shutdown(ctx); err != nil {
		r.logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

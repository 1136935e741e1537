// Package app contains the use cases built on top of the repository ports.
// It coordinates several endpoint calls; single calls go straight to the ports.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/go-contentrepo/internal/domain"
	"github.com/jsamuelsen/go-contentrepo/internal/jsonvalue"
	"github.com/jsamuelsen/go-contentrepo/internal/ports"
)

// DefaultMaxConcurrency bounds Describe when ServiceConfig leaves it unset.
const DefaultMaxConcurrency = 4

// Service orchestrates repository use cases.
// It depends on port interfaces, not the acl clients.
type Service struct {
	buckets        ports.BucketService
	objects        ports.ObjectService
	status         ports.StatusService
	logger         *slog.Logger
	maxConcurrency int
}

// ServiceConfig holds optional configuration for the service.
type ServiceConfig struct {
	Logger *slog.Logger

	// MaxConcurrency bounds the requests Describe keeps in flight.
	MaxConcurrency int
}

// NewService creates a new application service with the given dependencies.
func NewService(
	buckets ports.BucketService,
	objects ports.ObjectService,
	status ports.StatusService,
	cfg *ServiceConfig,
) *Service {
	logger := slog.Default()
	maxConcurrency := DefaultMaxConcurrency

	if cfg != nil {
		if cfg.Logger != nil {
			logger = cfg.Logger
		}

		if cfg.MaxConcurrency > 0 {
			maxConcurrency = cfg.MaxConcurrency
		}
	}

	return &Service{
		buckets:        buckets,
		objects:        objects,
		status:         status,
		logger:         logger.With(slog.String("component", "app.Service")),
		maxConcurrency: maxConcurrency,
	}
}

// Overview is the bucket metadata alongside the server status.
type Overview struct {
	Bucket jsonvalue.Value
	Status jsonvalue.Value
}

// Overview fetches bucket metadata and server status concurrently.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	bucket, status, err := Parallel2(ctx, s.buckets.Metadata, s.status.Status)
	if err != nil {
		return nil, err
	}

	return &Overview{Bucket: bucket, Status: status}, nil
}

// Publish stores up as a new version of its object, creating the object when
// the repository reports it does not exist yet.
func (s *Service) Publish(ctx context.Context, up domain.Upload) (jsonvalue.Value, error) {
	logger := s.logger.With(slog.String("method", "Publish"), slog.String("key", up.Key))

	if err := up.Validate(); err != nil {
		return jsonvalue.Null(), err
	}

	v, err := s.objects.CreateVersion(ctx, up)
	if err == nil {
		logger.DebugContext(ctx, "published new version")
		return v, nil
	}

	if !domain.IsNotFound(err) {
		return jsonvalue.Null(), err
	}

	logger.DebugContext(ctx, "object not found, creating it")

	v, err = s.objects.Create(ctx, up)
	if err != nil {
		return jsonvalue.Null(), err
	}

	logger.InfoContext(ctx, "created object")

	return v, nil
}

// Described is the metadata lookup of one key.
type Described struct {
	Key      string
	Metadata jsonvalue.Value
	Err      error
}

// Describe fetches the metadata of every key with bounded concurrency. A
// failing key does not stop the others; results keep the order of keys.
func (s *Service) Describe(ctx context.Context, keys []string) []Described {
	fns := make([]func(context.Context) (jsonvalue.Value, error), len(keys))

	for i, key := range keys {
		fns[i] = func(ctx context.Context) (jsonvalue.Value, error) {
			return s.objects.Metadata(ctx, key)
		}
	}

	results := ParallelPartialLimit(ctx, s.maxConcurrency, fns...)
	out := make([]Described, len(keys))

	failed := 0

	for i, r := range results {
		out[i] = Described{Key: keys[i], Metadata: r.Value, Err: r.Err}
		if r.Err != nil {
			failed++
		}
	}

	if failed > 0 {
		s.logger.WarnContext(ctx, "some objects could not be described",
			slog.Int("failed", failed),
			slog.Int("total", len(keys)),
		)
	}

	return out
}

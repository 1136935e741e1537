// Package ports defines the contracts the application layer depends on.
// The content repository adapters in acl implement them.
//
// Every method takes a context first and returns a *domain.ClientError on
// failure. Responses are normalized JSON values.
package ports

import (
	"context"

	"github.com/jsamuelsen/go-contentrepo/internal/domain"
	"github.com/jsamuelsen/go-contentrepo/internal/jsonvalue"
)

// BucketService manages one repository bucket.
type BucketService interface {
	// List returns every bucket on the server.
	List(ctx context.Context) (jsonvalue.Value, error)

	// Metadata returns the bound bucket's metadata.
	Metadata(ctx context.Context) (jsonvalue.Value, error)

	// Create creates the bound bucket.
	Create(ctx context.Context) (jsonvalue.Value, error)

	// Delete deletes the bound bucket.
	Delete(ctx context.Context) error
}

// CollectionService manages versioned JSON collections.
type CollectionService interface {
	List(ctx context.Context, page domain.Pagination) (jsonvalue.Value, error)
	Get(ctx context.Context, key string) (jsonvalue.Value, error)
	Create(ctx context.Context, key string, doc []byte) (jsonvalue.Value, error)
	CreateVersion(ctx context.Context, key string, doc []byte) (jsonvalue.Value, error)
	Delete(ctx context.Context, key string) error
	Versions(ctx context.Context, key string) (jsonvalue.Value, error)
	Version(ctx context.Context, key string, n int) (jsonvalue.Value, error)
}

// ObjectService manages versioned binary objects.
type ObjectService interface {
	List(ctx context.Context, page domain.Pagination) (jsonvalue.Value, error)
	Metadata(ctx context.Context, key string) (jsonvalue.Value, error)
	Create(ctx context.Context, up domain.Upload) (jsonvalue.Value, error)
	CreateVersion(ctx context.Context, up domain.Upload) (jsonvalue.Value, error)
	Delete(ctx context.Context, key string) error

	// Content returns the raw bytes of a version. Version 0 is the latest.
	Content(ctx context.Context, key string, version int) ([]byte, error)

	Versions(ctx context.Context, key string) (jsonvalue.Value, error)
	Version(ctx context.Context, key string, n int) (jsonvalue.Value, error)
	VersionByID(ctx context.Context, versionID string) (jsonvalue.Value, error)
	Tag(ctx context.Context, key, tag string, version int) (jsonvalue.Value, error)
	ByTag(ctx context.Context, key, tag string) (jsonvalue.Value, error)
}

// StatusService reads server status and configuration.
type StatusService interface {
	Status(ctx context.Context) (jsonvalue.Value, error)
	Config(ctx context.Context) (jsonvalue.Value, error)
	UpdateConfig(ctx context.Context, doc []byte) (jsonvalue.Value, error)
}

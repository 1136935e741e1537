package acl

import (
	"context"
	"net/http"

	"github.com/jsamuelsen/go-contentrepo/internal/domain"
	"github.com/jsamuelsen/go-contentrepo/internal/jsonvalue"
)

// CollectionClient manages JSON collections within one bucket.
// Implements ports.CollectionService.
type CollectionClient struct {
	BaseAdapter
}

// NewCollectionClient creates a collection client.
func NewCollectionClient(exec Executor, requests *RequestBuilder) *CollectionClient {
	return &CollectionClient{BaseAdapter: NewBaseAdapter(exec, requests)}
}

// List returns one page of collections.
func (c *CollectionClient) List(ctx context.Context, page domain.Pagination) (jsonvalue.Value, error) {
	if err := page.Validate(); err != nil {
		return jsonvalue.Null(), err
	}

	return c.Fetch(ctx, domain.KindFetchingCollections, func(ctx context.Context) (*http.Request, error) {
		return c.requests.ListCollections(ctx, page)
	})
}

// Get returns the latest version of a collection.
func (c *CollectionClient) Get(ctx context.Context, key string) (jsonvalue.Value, error) {
	if err := domain.ValidateKey(key); err != nil {
		return jsonvalue.Null(), err
	}

	return c.Fetch(ctx, domain.KindFetchingCollection, func(ctx context.Context) (*http.Request, error) {
		return c.requests.Collection(ctx, key)
	})
}

// Create stores doc as the first version of a new collection.
func (c *CollectionClient) Create(ctx context.Context, key string, doc []byte) (jsonvalue.Value, error) {
	if err := validateCollection(domain.KindCreatingCollection, key, doc); err != nil {
		return jsonvalue.Null(), err
	}

	return c.Fetch(ctx, domain.KindCreatingCollection, func(ctx context.Context) (*http.Request, error) {
		return c.requests.CreateCollection(ctx, key, doc)
	})
}

// CreateVersion stores doc as a new version of an existing collection.
func (c *CollectionClient) CreateVersion(ctx context.Context, key string, doc []byte) (jsonvalue.Value, error) {
	if err := validateCollection(domain.KindCreatingCollectionVersion, key, doc); err != nil {
		return jsonvalue.Null(), err
	}

	return c.Fetch(ctx, domain.KindCreatingCollectionVersion, func(ctx context.Context) (*http.Request, error) {
		return c.requests.CreateCollectionVersion(ctx, key, doc)
	})
}

// Delete marks a collection deleted.
func (c *CollectionClient) Delete(ctx context.Context, key string) error {
	if err := domain.ValidateKey(key); err != nil {
		return err
	}

	return c.Send(ctx, domain.KindDeletingCollection, func(ctx context.Context) (*http.Request, error) {
		return c.requests.DeleteCollection(ctx, key)
	})
}

// Versions returns the version history of a collection.
func (c *CollectionClient) Versions(ctx context.Context, key string) (jsonvalue.Value, error) {
	if err := domain.ValidateKey(key); err != nil {
		return jsonvalue.Null(), err
	}

	return c.Fetch(ctx, domain.KindFetchingCollectionVersions, func(ctx context.Context) (*http.Request, error) {
		return c.requests.CollectionVersions(ctx, key)
	})
}

// Version returns version n of a collection.
func (c *CollectionClient) Version(ctx context.Context, key string, n int) (jsonvalue.Value, error) {
	if err := domain.ValidateKey(key); err != nil {
		return jsonvalue.Null(), err
	}

	if err := domain.ValidateVersion(key, n); err != nil {
		return jsonvalue.Null(), err
	}

	return c.Fetch(ctx, domain.KindFetchingCollectionVersion, func(ctx context.Context) (*http.Request, error) {
		return c.requests.CollectionVersion(ctx, key, n)
	})
}

func validateCollection(kind domain.Kind, key string, doc []byte) error {
	if err := domain.ValidateKey(key); err != nil {
		return err
	}

	return ValidateDocument(kind, key, doc)
}

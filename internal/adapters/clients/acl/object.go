package acl

import (
	"context"
	"net/http"

	"github.com/jsamuelsen/go-contentrepo/internal/domain"
	"github.com/jsamuelsen/go-contentrepo/internal/jsonvalue"
)

// ObjectClient manages versioned binary objects within one bucket.
// Implements ports.ObjectService.
type ObjectClient struct {
	BaseAdapter
}

// NewObjectClient creates an object client.
func NewObjectClient(exec Executor, requests *RequestBuilder) *ObjectClient {
	return &ObjectClient{BaseAdapter: NewBaseAdapter(exec, requests)}
}

// List returns one page of object metadata.
func (c *ObjectClient) List(ctx context.Context, page domain.Pagination) (jsonvalue.Value, error) {
	if err := page.Validate(); err != nil {
		return jsonvalue.Null(), err
	}

	return c.Fetch(ctx, domain.KindFetchingObjects, func(ctx context.Context) (*http.Request, error) {
		return c.requests.ListObjects(ctx, page)
	})
}

// Metadata returns the metadata of the latest object version.
func (c *ObjectClient) Metadata(ctx context.Context, key string) (jsonvalue.Value, error) {
	if err := domain.ValidateKey(key); err != nil {
		return jsonvalue.Null(), err
	}

	return c.Fetch(ctx, domain.KindFetchingObject, func(ctx context.Context) (*http.Request, error) {
		return c.requests.Object(ctx, key)
	})
}

// Create uploads the first version of a new object.
func (c *ObjectClient) Create(ctx context.Context, up domain.Upload) (jsonvalue.Value, error) {
	if err := up.Validate(); err != nil {
		return jsonvalue.Null(), err
	}

	return c.Fetch(ctx, domain.KindCreatingObject, func(ctx context.Context) (*http.Request, error) {
		return c.requests.CreateObject(ctx, up)
	})
}

// CreateVersion uploads a new version of an existing object.
func (c *ObjectClient) CreateVersion(ctx context.Context, up domain.Upload) (jsonvalue.Value, error) {
	if err := up.Validate(); err != nil {
		return jsonvalue.Null(), err
	}

	return c.Fetch(ctx, domain.KindCreatingObjectVersion, func(ctx context.Context) (*http.Request, error) {
		return c.requests.CreateObjectVersion(ctx, up)
	})
}

// Delete marks an object deleted.
func (c *ObjectClient) Delete(ctx context.Context, key string) error {
	if err := domain.ValidateKey(key); err != nil {
		return err
	}

	return c.Send(ctx, domain.KindDeletingObject, func(ctx context.Context) (*http.Request, error) {
		return c.requests.DeleteObject(ctx, key)
	})
}

// Content returns the raw bytes of an object version. Version 0 selects the
// latest version.
func (c *ObjectClient) Content(ctx context.Context, key string, version int) ([]byte, error) {
	if err := domain.ValidateKey(key); err != nil {
		return nil, err
	}

	if version != 0 {
		if err := domain.ValidateVersion(key, version); err != nil {
			return nil, err
		}
	}

	return c.FetchRaw(ctx, domain.KindFetchingObjectContent, func(ctx context.Context) (*http.Request, error) {
		return c.requests.ObjectContent(ctx, key, version)
	})
}

// Versions returns the version history of an object.
func (c *ObjectClient) Versions(ctx context.Context, key string) (jsonvalue.Value, error) {
	if err := domain.ValidateKey(key); err != nil {
		return jsonvalue.Null(), err
	}

	return c.Fetch(ctx, domain.KindFetchingObjectVersions, func(ctx context.Context) (*http.Request, error) {
		return c.requests.ObjectVersions(ctx, key)
	})
}

// Version returns the metadata of object version n.
func (c *ObjectClient) Version(ctx context.Context, key string, n int) (jsonvalue.Value, error) {
	if err := domain.ValidateKey(key); err != nil {
		return jsonvalue.Null(), err
	}

	if err := domain.ValidateVersion(key, n); err != nil {
		return jsonvalue.Null(), err
	}

	return c.Fetch(ctx, domain.KindFetchingObjectVersion, func(ctx context.Context) (*http.Request, error) {
		return c.requests.ObjectVersion(ctx, key, n)
	})
}

// VersionByID returns the metadata of the version with the server-assigned id.
func (c *ObjectClient) VersionByID(ctx context.Context, versionID string) (jsonvalue.Value, error) {
	if err := domain.ValidateKey(versionID); err != nil {
		return jsonvalue.Null(), err
	}

	return c.Fetch(ctx, domain.KindFetchingObjectVersion, func(ctx context.Context) (*http.Request, error) {
		return c.requests.VersionByID(ctx, versionID)
	})
}

// Tag attaches tag to version n of an object.
func (c *ObjectClient) Tag(ctx context.Context, key, tag string, version int) (jsonvalue.Value, error) {
	if err := domain.ValidateKey(key); err != nil {
		return jsonvalue.Null(), err
	}

	if err := domain.ValidateTag(key, tag); err != nil {
		return jsonvalue.Null(), err
	}

	if err := domain.ValidateVersion(key, version); err != nil {
		return jsonvalue.Null(), err
	}

	return c.Fetch(ctx, domain.KindTaggingObjectVersion, func(ctx context.Context) (*http.Request, error) {
		return c.requests.TagObjectVersion(ctx, key, tag, version)
	})
}

// ByTag returns the metadata of the object version carrying tag.
func (c *ObjectClient) ByTag(ctx context.Context, key, tag string) (jsonvalue.Value, error) {
	if err := domain.ValidateKey(key); err != nil {
		return jsonvalue.Null(), err
	}

	if err := domain.ValidateTag(key, tag); err != nil {
		return jsonvalue.Null(), err
	}

	return c.Fetch(ctx, domain.KindFetchingObjectByTag, func(ctx context.Context) (*http.Request, error) {
		return c.requests.ObjectByTag(ctx, key, tag)
	})
}

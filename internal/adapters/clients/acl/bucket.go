package acl

import (
	"context"

	"github.com/jsamuelsen/go-contentrepo/internal/domain"
	"github.com/jsamuelsen/go-contentrepo/internal/jsonvalue"
)

// BucketClient manages the bucket a RequestBuilder is bound to.
// Implements ports.BucketService.
type BucketClient struct {
	BaseAdapter
}

// NewBucketClient creates a bucket client.
func NewBucketClient(exec Executor, requests *RequestBuilder) *BucketClient {
	return &BucketClient{BaseAdapter: NewBaseAdapter(exec, requests)}
}

// List returns every bucket on the server.
func (c *BucketClient) List(ctx context.Context) (jsonvalue.Value, error) {
	return c.Fetch(ctx, domain.KindFetchingBuckets, c.requests.ListBuckets)
}

// Metadata returns the bucket's metadata.
func (c *BucketClient) Metadata(ctx context.Context) (jsonvalue.Value, error) {
	return c.Fetch(ctx, domain.KindFetchingBucket, c.requests.BucketMetadata)
}

// Create creates the bucket.
func (c *BucketClient) Create(ctx context.Context) (jsonvalue.Value, error) {
	return c.Fetch(ctx, domain.KindCreatingBucket, c.requests.CreateBucket)
}

// Delete deletes the bucket.
func (c *BucketClient) Delete(ctx context.Context) error {
	return c.Send(ctx, domain.KindDeletingBucket, c.requests.DeleteBucket)
}

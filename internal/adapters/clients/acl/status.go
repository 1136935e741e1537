package acl

import (
	"context"
	"net/http"

	"github.com/jsamuelsen/go-contentrepo/internal/domain"
	"github.com/jsamuelsen/go-contentrepo/internal/jsonvalue"
)

// StatusCheckName identifies the repository in health results.
const StatusCheckName = "content-repository"

// StatusClient reads server status and configuration.
// Implements ports.StatusService and ports.HealthChecker.
type StatusClient struct {
	BaseAdapter
}

// NewStatusClient creates a status client.
func NewStatusClient(exec Executor, requests *RequestBuilder) *StatusClient {
	return &StatusClient{BaseAdapter: NewBaseAdapter(exec, requests)}
}

// Status returns the server status document.
func (c *StatusClient) Status(ctx context.Context) (jsonvalue.Value, error) {
	return c.Fetch(ctx, domain.KindFetchingStatus, c.requests.Status)
}

// Config returns the server configuration.
func (c *StatusClient) Config(ctx context.Context) (jsonvalue.Value, error) {
	return c.Fetch(ctx, domain.KindFetchingConfig, c.requests.Config)
}

// UpdateConfig replaces the server configuration with doc.
func (c *StatusClient) UpdateConfig(ctx context.Context, doc []byte) (jsonvalue.Value, error) {
	if err := ValidateDocument(domain.KindUpdatingConfig, "", doc); err != nil {
		return jsonvalue.Null(), err
	}

	return c.Fetch(ctx, domain.KindUpdatingConfig, func(ctx context.Context) (*http.Request, error) {
		return c.requests.UpdateConfig(ctx, doc)
	})
}

// Name implements ports.HealthChecker.
func (c *StatusClient) Name() string {
	return StatusCheckName
}

// Check implements ports.HealthChecker. The repository is healthy when its
// status endpoint answers 200 or 201.
func (c *StatusClient) Check(ctx context.Context) error {
	return c.Send(ctx, domain.KindFetchingStatus, c.requests.Status)
}

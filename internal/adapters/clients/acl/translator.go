package acl

import (
	"context"
	"net/http"

	"github.com/jsamuelsen/go-contentrepo/internal/domain"
	"github.com/jsamuelsen/go-contentrepo/internal/jsonvalue"
)

// Executor runs one exchange under the repository status policy.
// *clients.Executor implements it.
type Executor interface {
	Execute(ctx context.Context, req *http.Request, kind domain.Kind) ([]byte, error)
}

// requestFunc builds the request for one endpoint call.
type requestFunc func(ctx context.Context) (*http.Request, error)

// BaseAdapter provides common functionality for the endpoint clients.
// Embed it in each client.
type BaseAdapter struct {
	exec     Executor
	requests *RequestBuilder
}

// NewBaseAdapter creates a base adapter sending requests built by requests through exec.
func NewBaseAdapter(exec Executor, requests *RequestBuilder) BaseAdapter {
	return BaseAdapter{
		exec:     exec,
		requests: requests,
	}
}

// Requests returns the request builder.
func (a *BaseAdapter) Requests() *RequestBuilder {
	return a.requests
}

// Bucket returns the bucket the adapter is bound to.
func (a *BaseAdapter) Bucket() string {
	return a.requests.Bucket()
}

// Fetch executes the request and normalizes the response body. An empty body
// normalizes to null. A body that is not JSON yields a ClientError of kind.
func (a *BaseAdapter) Fetch(ctx context.Context, kind domain.Kind, build requestFunc) (jsonvalue.Value, error) {
	req, err := build(ctx)
	if err != nil {
		return jsonvalue.Null(), domain.NewErrorBuilder(kind).WithCause(err).Build()
	}

	body, err := a.exec.Execute(ctx, req, kind)
	if err != nil {
		return jsonvalue.Null(), err
	}

	if len(body) == 0 {
		return jsonvalue.Null(), nil
	}

	v, err := jsonvalue.Parse(body)
	if err != nil {
		return jsonvalue.Null(), domain.NewErrorBuilder(kind).
			WithURL(req.URL.Redacted()).
			WithCause(err).
			Build()
	}

	return v, nil
}

// FetchRaw executes the request and returns the body unparsed.
func (a *BaseAdapter) FetchRaw(ctx context.Context, kind domain.Kind, build requestFunc) ([]byte, error) {
	req, err := build(ctx)
	if err != nil {
		return nil, domain.NewErrorBuilder(kind).WithCause(err).Build()
	}

	return a.exec.Execute(ctx, req, kind)
}

// Send executes the request and discards the body.
func (a *BaseAdapter) Send(ctx context.Context, kind domain.Kind, build requestFunc) error {
	_, err := a.FetchRaw(ctx, kind, build)
	return err
}

// ValidateDocument rejects a document that is not well-formed JSON before it
// is sent.
func ValidateDocument(kind domain.Kind, key string, doc []byte) error {
	if _, err := jsonvalue.Parse(doc); err != nil {
		b := domain.NewErrorBuilder(kind).WithCause(err)
		if key != "" {
			b.WithKey(key)
		}

		return b.Build()
	}

	return nil
}

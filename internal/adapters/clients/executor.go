package clients

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/go-contentrepo/internal/domain"
	"github.com/jsamuelsen/go-contentrepo/internal/platform/logging"
)

const (
	// DefaultMaxErrorBodyBytes bounds how much of a failed response is read
	// as the repository message.
	DefaultMaxErrorBodyBytes = 64 << 10

	// drainLimit bounds how much unread body is discarded before close so
	// the connection can return to the pool.
	drainLimit = 4 << 10

	reasonStatus    = "status"
	reasonTransport = "transport"
)

// errNilRequest is the cause recorded when Execute is handed no request.
var errNilRequest = errors.New("nil request")

// Transport sends one HTTP request. *Client implements it; tests and callers
// may substitute anything with the same shape.
type Transport interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// ExecutorConfig configures an Executor.
type ExecutorConfig struct {
	// Transport sends requests. Required.
	Transport Transport

	// Logger receives one record per failed request. If nil, slog.Default()
	// at construction time is used.
	Logger *slog.Logger

	// Metrics registers the failure counter. Optional.
	Metrics prometheus.Registerer

	// MaxErrorBodyBytes bounds the repository message read from a failed
	// response. Zero means DefaultMaxErrorBodyBytes.
	MaxErrorBodyBytes int64
}

// Executor runs one request/response exchange and applies the status policy:
// only 200 OK and 201 Created succeed. Every other outcome becomes a
// *domain.ClientError of the kind the caller supplies.
//
// Executor is safe for concurrent use.
type Executor struct {
	transport    Transport
	logger       *slog.Logger
	maxErrorBody int64
	failures     *prometheus.CounterVec
}

// NewExecutor creates an Executor.
func NewExecutor(cfg ExecutorConfig) (*Executor, error) {
	if cfg.Transport == nil {
		return nil, errors.New("transport is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	maxBody := cfg.MaxErrorBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxErrorBodyBytes
	}

	failures, err := registerFailures(cfg.Metrics)
	if err != nil {
		return nil, err
	}

	return &Executor{
		transport:    cfg.Transport,
		logger:       logger.With(slog.String("component", "clients.Executor")),
		maxErrorBody: maxBody,
		failures:     failures,
	}, nil
}

// registerFailures creates the failure counter, reusing one already
// registered under the same name.
func registerFailures(reg prometheus.Registerer) (*prometheus.CounterVec, error) {
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "contentrepo",
		Subsystem: "client",
		Name:      "failures_total",
		Help:      "Repository requests that did not end in 200 or 201, by error kind and reason.",
	}, []string{"kind", "reason"})

	if reg == nil {
		return failures, nil
	}

	if err := reg.Register(failures); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}

		return nil, err
	}

	return failures, nil
}

// Execute sends req exactly once and returns the response body when the
// status is 200 or 201. The response body is closed before Execute returns
// on every path.
//
// A non-success status yields a *domain.ClientError carrying kind, the
// request URL, the status and the response body as repository message.
// A transport failure yields one carrying kind, the URL and the cause.
func (e *Executor) Execute(ctx context.Context, req *http.Request, kind domain.Kind) ([]byte, error) {
	if req == nil || req.URL == nil {
		return nil, e.transportFailure(ctx, kind, "", errNilRequest)
	}

	url := req.URL.Redacted()

	resp, err := e.transport.Do(ctx, req)
	if resp != nil {
		defer e.release(ctx, resp)
	}

	if err != nil {
		return nil, e.transportFailure(ctx, kind, url, err)
	}

	if resp == nil {
		return nil, e.transportFailure(ctx, kind, url, ErrNilResponse)
	}

	if !isSuccess(resp.StatusCode) {
		return nil, e.statusFailure(ctx, kind, url, resp)
	}

	if resp.Body == nil {
		return []byte{}, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, e.transportFailure(ctx, kind, url, err)
	}

	return body, nil
}

// isSuccess is an allow-list, not a 2xx range check: 202 and 204 fail.
func isSuccess(status int) bool {
	return status == http.StatusOK || status == http.StatusCreated
}

func (e *Executor) statusFailure(ctx context.Context, kind domain.Kind, url string, resp *http.Response) error {
	err := domain.NewErrorBuilder(kind).
		WithURL(url).
		WithRepoMessage(e.readMessage(ctx, resp.Body)).
		WithStatus(resp.StatusCode).
		Build()

	e.failures.WithLabelValues(kind.Name(), reasonStatus).Inc()
	e.loggerFor(ctx).WarnContext(ctx, "repository request failed",
		slog.String("url", url),
		slog.Int("status", resp.StatusCode),
		slog.String("kind", kind.Name()),
		slog.String("error", err.Error()),
	)

	return err
}

// transportFailure omits the url field when there is no request URL.
func (e *Executor) transportFailure(ctx context.Context, kind domain.Kind, url string, cause error) error {
	b := domain.NewErrorBuilder(kind)
	if url != "" {
		b.WithURL(url)
	}

	err := b.WithCause(cause).Build()

	e.failures.WithLabelValues(kind.Name(), reasonTransport).Inc()
	e.loggerFor(ctx).ErrorContext(ctx, "repository request error",
		slog.String("url", url),
		slog.String("kind", kind.Name()),
		slog.String("error", err.Error()),
		slog.Any("cause", cause),
	)

	return err
}

// readMessage reads at most maxErrorBody bytes. A read error keeps whatever
// was read before it, possibly nothing.
func (e *Executor) readMessage(ctx context.Context, body io.Reader) string {
	if body == nil {
		return ""
	}

	data, err := io.ReadAll(io.LimitReader(body, e.maxErrorBody))
	if err != nil {
		e.loggerFor(ctx).DebugContext(ctx, "reading error body", slog.Any("error", err))
	}

	return string(data)
}

// release drains a bounded remainder and closes the body.
func (e *Executor) release(ctx context.Context, resp *http.Response) {
	if resp.Body == nil {
		return
	}

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, drainLimit))

	if err := resp.Body.Close(); err != nil {
		e.loggerFor(ctx).DebugContext(ctx, "closing response body", slog.Any("error", err))
	}
}

// loggerFor adds the request and correlation IDs carried by ctx.
func (e *Executor) loggerFor(ctx context.Context) *slog.Logger {
	logger := e.logger

	if id := logging.RequestIDFromContext(ctx); id != "" {
		logger = logger.With(slog.String("request_id", id))
	}

	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		logger = logger.With(slog.String("correlation_id", id))
	}

	return logger
}

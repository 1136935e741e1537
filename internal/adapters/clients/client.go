package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/go-contentrepo/internal/platform/config"
	"github.com/jsamuelsen/go-contentrepo/internal/platform/logging"
)

const (
	// instrumentationName is used for OpenTelemetry tracer and meter.
	instrumentationName = "github.com/jsamuelsen/go-contentrepo/internal/adapters/clients"

	// HeaderRequestID carries the per-request ID to the repository.
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID carries the caller's correlation ID to the repository.
	HeaderCorrelationID = "X-Correlation-ID"

	// httpStatusCategoryDivisor divides status code to get category (2xx, 4xx, 5xx).
	httpStatusCategoryDivisor = 100

	// defaultTimeout is the default request timeout if not configured.
	defaultTimeout = 30 * time.Second
)

// Config configures a Client.
type Config struct {
	// ServiceName identifies the repository for logging and tracing.
	ServiceName string

	// UserAgent is sent on every request.
	UserAgent string

	// AuthToken, when set, is sent as a bearer token.
	AuthToken string

	// Timeout bounds one exchange, including reading the response body.
	Timeout time.Duration

	// Transport sizes the connection pool.
	Transport config.TransportConfig

	// Circuit enables the optional circuit breaker.
	Circuit config.CircuitBreakerConfig

	// Logger is an optional logger. If nil, a default logger is used.
	Logger *slog.Logger

	// HTTPClient overrides the pooled client. Tests use it to reach httptest servers.
	HTTPClient *http.Client
}

// Client is an instrumented HTTP transport for the content repository.
// It adds request/correlation IDs, user agent, auth, tracing and metrics to
// every request and makes exactly one attempt. It satisfies Transport.
type Client struct {
	http        *http.Client
	serviceName string
	userAgent   string
	authToken   string
	logger      *slog.Logger
	cb          *CircuitBreaker

	tracer trace.Tracer

	requestDuration metric.Float64Histogram
	requestTotal    metric.Int64Counter
}

// New creates a new instrumented HTTP client.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	if cfg.ServiceName == "" {
		return nil, errors.New("service name is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(
		slog.String("component", "clients.Client"),
		slog.String("downstream", cfg.ServiceName),
	)

	var cb *CircuitBreaker
	if cfg.Circuit.Enabled {
		cb = NewCircuitBreaker(CircuitBreakerConfig{
			MaxFailures:   cfg.Circuit.MaxFailures,
			Timeout:       cfg.Circuit.Timeout,
			HalfOpenLimit: cfg.Circuit.HalfOpenLimit,
		})
		cb.OnStateChange(func(from, to State) {
			logger.Warn("circuit breaker state changed",
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		})
	}

	meter := otel.Meter(instrumentationName)

	requestDuration, err := meter.Float64Histogram(
		"http.client.request.duration",
		metric.WithDescription("Duration of HTTP client requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration metric: %w", err)
	}

	requestTotal, err := meter.Int64Counter(
		"http.client.request.total",
		metric.WithDescription("Total number of HTTP client requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request counter: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: newPooledTransport(cfg.Transport),
		}
	}

	return &Client{
		http:            httpClient,
		serviceName:     cfg.ServiceName,
		userAgent:       cfg.UserAgent,
		authToken:       cfg.AuthToken,
		logger:          logger,
		cb:              cb,
		tracer:          otel.Tracer(instrumentationName),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
	}, nil
}

func newPooledTransport(tc config.TransportConfig) *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert // stdlib default

	if tc.MaxIdleConns > 0 {
		t.MaxIdleConns = tc.MaxIdleConns
	}

	if tc.MaxIdleConnsPerHost > 0 {
		t.MaxIdleConnsPerHost = tc.MaxIdleConnsPerHost
	}

	if tc.IdleConnTimeout > 0 {
		t.IdleConnTimeout = tc.IdleConnTimeout
	}

	return t
}

// Do sends req once. A non-nil response is returned for every status code;
// status policy belongs to the caller. The caller must close the body.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	startTime := time.Now()

	ctx, requestID := ensureRequestID(ctx)

	logger := logging.FromContext(ctx).With(
		slog.String("downstream", c.serviceName),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)

	if c.cb != nil && !c.cb.Allow() {
		c.recordMetrics(ctx, req.Method, 0, time.Since(startTime), "circuit_open")
		logger.Warn("request blocked by circuit breaker")

		return nil, ErrCircuitOpen
	}

	ctx, span := c.tracer.Start(ctx, fmt.Sprintf("HTTP %s %s", req.Method, c.serviceName),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.serviceName),
		),
	)
	defer span.End()

	req = req.WithContext(ctx)
	c.injectHeaders(ctx, req, requestID)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)

	return c.recordResult(ctx, req, resp, err, span, logger, startTime)
}

// recordResult updates span, metrics and breaker for the single attempt.
func (c *Client) recordResult(ctx context.Context, req *http.Request, resp *http.Response, err error, span trace.Span, logger *slog.Logger, startTime time.Time) (*http.Response, error) {
	duration := time.Since(startTime)

	if err != nil {
		c.recordBreaker(false)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.recordMetrics(ctx, req.Method, 0, duration, resultForError(err))
		logger.Debug("request failed",
			slog.Duration("duration", duration),
			slog.Any("error", err),
		)

		return nil, err
	}

	c.recordBreaker(resp.StatusCode < http.StatusInternalServerError)
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", resp.StatusCode))
	}

	statusCategory := fmt.Sprintf("%dxx", resp.StatusCode/httpStatusCategoryDivisor)
	c.recordMetrics(ctx, req.Method, resp.StatusCode, duration, statusCategory)

	logger.Log(ctx, logging.LevelTrace, "request completed",
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", duration),
	)

	return resp, nil
}

func (c *Client) recordBreaker(ok bool) {
	if c.cb == nil {
		return
	}

	if ok {
		c.cb.RecordSuccess()
	} else {
		c.cb.RecordFailure()
	}
}

// CircuitState returns the breaker state, or StateClosed when it is disabled.
func (c *Client) CircuitState() State {
	if c.cb == nil {
		return StateClosed
	}

	return c.cb.State()
}

// ensureRequestID returns the context's request ID, generating and storing
// one when absent so logs and the outgoing header agree.
func ensureRequestID(ctx context.Context) (context.Context, string) {
	if id := logging.RequestIDFromContext(ctx); id != "" {
		return ctx, id
	}

	id := uuid.NewString()

	return logging.WithRequestID(ctx, id), id
}

// injectHeaders adds IDs, user agent and auth to the request.
func (c *Client) injectHeaders(ctx context.Context, req *http.Request, requestID string) {
	req.Header.Set(HeaderRequestID, requestID)

	if correlationID := logging.CorrelationIDFromContext(ctx); correlationID != "" {
		req.Header.Set(HeaderCorrelationID, correlationID)
	}

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}
}

// recordMetrics records request metrics.
func (c *Client) recordMetrics(ctx context.Context, method string, statusCode int, duration time.Duration, result string) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("peer.service", c.serviceName),
		attribute.String("result", result),
	}

	if statusCode > 0 {
		attrs = append(attrs, attribute.Int("http.status_code", statusCode))
	}

	c.requestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
	c.requestTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}

func resultForError(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "context_canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "error"
	}
}

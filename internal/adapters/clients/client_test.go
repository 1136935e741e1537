package clients

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/go-contentrepo/internal/platform/config"
	"github.com/jsamuelsen/go-contentrepo/internal/platform/logging"
)

func defaultConfig() *Config {
	return &Config{
		ServiceName: "content-repository",
		UserAgent:   "contentrepo-test",
		Timeout:     5 * time.Second,
	}
}

// closeBody is a test helper that closes the response body and fails the test on error.
func closeBody(t *testing.T, resp *http.Response) {
	t.Helper()

	if err := resp.Body.Close(); err != nil {
		t.Errorf("failed to close response body: %v", err)
	}
}

func newGet(t *testing.T, url string) *http.Request {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, http.NoBody)
	require.NoError(t, err)

	return req
}

func TestNew_RequiresConfig(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config is required")
}

func TestNew_RequiresServiceName(t *testing.T) {
	cfg := defaultConfig()
	cfg.ServiceName = ""

	_, err := New(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service name is required")
}

func TestNew_PooledTransport(t *testing.T) {
	cfg := defaultConfig()
	cfg.Transport = config.TransportConfig{
		MaxIdleConns:        7,
		MaxIdleConnsPerHost: 3,
		IdleConnTimeout:     time.Minute,
	}

	client, err := New(cfg)
	require.NoError(t, err)

	transport, ok := client.http.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, 7, transport.MaxIdleConns)
	assert.Equal(t, 3, transport.MaxIdleConnsPerHost)
	assert.Equal(t, time.Minute, transport.IdleConnTimeout)
	assert.Equal(t, 5*time.Second, client.http.Timeout)
}

func TestClient_HeaderPropagation(t *testing.T) {
	var got http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := defaultConfig()
	cfg.AuthToken = "s3cr3t"

	client, err := New(cfg)
	require.NoError(t, err)

	ctx := logging.WithRequestID(context.Background(), "req-123")
	ctx = logging.WithCorrelationID(ctx, "corr-456")

	resp, err := client.Do(ctx, newGet(t, server.URL+"/buckets/docs"))
	require.NoError(t, err)
	defer closeBody(t, resp)

	assert.Equal(t, "req-123", got.Get(HeaderRequestID))
	assert.Equal(t, "corr-456", got.Get(HeaderCorrelationID))
	assert.Equal(t, "contentrepo-test", got.Get("User-Agent"))
	assert.Equal(t, "Bearer s3cr3t", got.Get("Authorization"))
}

func TestClient_GeneratesRequestID(t *testing.T) {
	var got string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(HeaderRequestID)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := New(defaultConfig())
	require.NoError(t, err)

	resp, err := client.Do(context.Background(), newGet(t, server.URL))
	require.NoError(t, err)
	defer closeBody(t, resp)

	_, parseErr := uuid.Parse(got)
	assert.NoError(t, parseErr)
}

func TestClient_SingleAttemptOnServerError(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, err := New(defaultConfig())
	require.NoError(t, err)

	resp, err := client.Do(context.Background(), newGet(t, server.URL))
	require.NoError(t, err)
	defer closeBody(t, resp)

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_TransportErrorIsReturned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	client, err := New(defaultConfig())
	require.NoError(t, err)

	resp, err := client.Do(context.Background(), newGet(t, url))
	require.Error(t, err)
	assert.Nil(t, resp) //nolint:bodyclose // nil response
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := defaultConfig()
	cfg.Timeout = 20 * time.Millisecond

	client, err := New(cfg)
	require.NoError(t, err)

	_, err = client.Do(context.Background(), newGet(t, server.URL)) //nolint:bodyclose // error path
	require.Error(t, err)
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := New(defaultConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, http.NoBody)
	require.NoError(t, err)

	_, err = client.Do(ctx, req) //nolint:bodyclose // error path
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "context_canceled", resultForError(err))
}

func TestClient_CircuitBreakerDisabledByDefault(t *testing.T) {
	client, err := New(defaultConfig())
	require.NoError(t, err)

	assert.Nil(t, client.cb)
	assert.Equal(t, StateClosed, client.CircuitState())
}

func TestClient_CircuitBreakerShortCircuitsWhenOpen(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := defaultConfig()
	cfg.Circuit = config.CircuitBreakerConfig{
		Enabled:       true,
		MaxFailures:   2,
		Timeout:       time.Minute,
		HalfOpenLimit: 1,
	}

	client, err := New(cfg)
	require.NoError(t, err)

	for range 2 {
		resp, err := client.Do(context.Background(), newGet(t, server.URL))
		require.NoError(t, err)
		closeBody(t, resp)
	}

	assert.Equal(t, StateOpen, client.CircuitState())

	_, err = client.Do(context.Background(), newGet(t, server.URL)) //nolint:bodyclose // rejected before sending
	require.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(2), calls.Load())
}

func TestResultForError(t *testing.T) {
	assert.Equal(t, "timeout", resultForError(context.DeadlineExceeded))
	assert.Equal(t, "error", resultForError(errors.New("connection reset")))
}

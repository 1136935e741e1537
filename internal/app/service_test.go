package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/go-contentrepo/internal/domain"
	"github.com/jsamuelsen/go-contentrepo/internal/jsonvalue"
	"github.com/jsamuelsen/go-contentrepo/internal/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustParse(t *testing.T, doc string) jsonvalue.Value {
	t.Helper()

	v, err := jsonvalue.Parse([]byte(doc))
	require.NoError(t, err)

	return v
}

func repoError(kind domain.Kind, status int, msg string) error {
	return domain.NewErrorBuilder(kind).
		WithURL("http://repo/api").
		WithRepoMessage(msg).
		WithStatus(status).
		Build()
}

type serviceMocks struct {
	buckets *mocks.MockBucketService
	objects *mocks.MockObjectService
	status  *mocks.MockStatusService
}

func newTestService(t *testing.T, cfg *ServiceConfig) (*Service, serviceMocks) {
	t.Helper()

	m := serviceMocks{
		buckets: mocks.NewMockBucketService(t),
		objects: mocks.NewMockObjectService(t),
		status:  mocks.NewMockStatusService(t),
	}

	if cfg == nil {
		cfg = &ServiceConfig{}
	}

	if cfg.Logger == nil {
		cfg.Logger = discardLogger()
	}

	return NewService(m.buckets, m.objects, m.status, cfg), m
}

func TestNewService(t *testing.T) {
	tests := []struct {
		name            string
		cfg             *ServiceConfig
		wantConcurrency int
	}{
		{name: "nil config uses defaults", cfg: nil, wantConcurrency: DefaultMaxConcurrency},
		{name: "zero concurrency uses default", cfg: &ServiceConfig{Logger: discardLogger()}, wantConcurrency: DefaultMaxConcurrency},
		{name: "explicit concurrency", cfg: &ServiceConfig{MaxConcurrency: 9}, wantConcurrency: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(
				mocks.NewMockBucketService(t),
				mocks.NewMockObjectService(t),
				mocks.NewMockStatusService(t),
				tt.cfg,
			)

			require.NotNil(t, svc)
			assert.Equal(t, tt.wantConcurrency, svc.maxConcurrency)
		})
	}
}

func TestService_Overview(t *testing.T) {
	t.Run("returns both documents", func(t *testing.T) {
		svc, m := newTestService(t, nil)

		m.buckets.EXPECT().Metadata(mock.Anything).Return(mustParse(t, `{"name":"assets"}`), nil)
		m.status.EXPECT().Status(mock.Anything).Return(mustParse(t, `{"state":"up"}`), nil)

		ov, err := svc.Overview(context.Background())
		require.NoError(t, err)

		name, _ := ov.Bucket.Lookup("name")
		state, _ := ov.Status.Lookup("state")
		assert.True(t, jsonvalue.Equal(jsonvalue.String("assets"), name))
		assert.True(t, jsonvalue.Equal(jsonvalue.String("up"), state))
	})

	t.Run("fails with the repository error", func(t *testing.T) {
		svc, m := newTestService(t, nil)
		failure := repoError(domain.KindFetchingStatus, http.StatusServiceUnavailable, "maintenance")

		m.buckets.EXPECT().Metadata(mock.Anything).Return(mustParse(t, `{}`), nil).Maybe()
		m.status.EXPECT().Status(mock.Anything).Return(jsonvalue.Null(), failure)

		ov, err := svc.Overview(context.Background())
		require.Error(t, err)
		assert.Nil(t, ov)
		require.ErrorIs(t, err, domain.KindFetchingStatus)

		var ce *domain.ClientError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, http.StatusServiceUnavailable, ce.StatusCode())
	})
}

func TestService_Publish(t *testing.T) {
	up := domain.Upload{Key: "logo.png", ContentType: "image/png", Checksum: "abc", Content: []byte("png")}

	tests := []struct {
		name       string
		upload     domain.Upload
		setupMocks func(m serviceMocks)
		wantErr    domain.Kind
		wantDoc    string
	}{
		{
			name:   "new version of existing object",
			upload: up,
			setupMocks: func(m serviceMocks) {
				m.objects.EXPECT().CreateVersion(mock.Anything, up).Return(mustParse(t, `{"version":2}`), nil)
			},
			wantDoc: `{"version":2}`,
		},
		{
			name:   "missing object is created",
			upload: up,
			setupMocks: func(m serviceMocks) {
				m.objects.EXPECT().CreateVersion(mock.Anything, up).
					Return(jsonvalue.Null(), repoError(domain.KindCreatingObjectVersion, http.StatusNotFound, "no such object"))
				m.objects.EXPECT().Create(mock.Anything, up).Return(mustParse(t, `{"version":1}`), nil)
			},
			wantDoc: `{"version":1}`,
		},
		{
			name:   "create failure after fallback",
			upload: up,
			setupMocks: func(m serviceMocks) {
				m.objects.EXPECT().CreateVersion(mock.Anything, up).
					Return(jsonvalue.Null(), repoError(domain.KindCreatingObjectVersion, http.StatusNotFound, ""))
				m.objects.EXPECT().Create(mock.Anything, up).
					Return(jsonvalue.Null(), repoError(domain.KindCreatingObject, http.StatusConflict, "checksum mismatch"))
			},
			wantErr: domain.KindCreatingObject,
		},
		{
			name:   "other failures do not fall back",
			upload: up,
			setupMocks: func(m serviceMocks) {
				m.objects.EXPECT().CreateVersion(mock.Anything, up).
					Return(jsonvalue.Null(), repoError(domain.KindCreatingObjectVersion, http.StatusBadRequest, "bad checksum"))
			},
			wantErr: domain.KindCreatingObjectVersion,
		},
		{
			name:       "invalid upload is rejected locally",
			upload:     domain.Upload{Key: "logo.png", ContentType: "image/png"},
			setupMocks: func(serviceMocks) {},
			wantErr:    domain.KindEmptyChecksum,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t, nil)
			tt.setupMocks(m)

			v, err := svc.Publish(context.Background(), tt.upload)

			if tt.wantErr != 0 {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, v.IsNull())

				return
			}

			require.NoError(t, err)
			assert.True(t, jsonvalue.Equal(mustParse(t, tt.wantDoc), v))
		})
	}
}

func TestService_Describe(t *testing.T) {
	svc, m := newTestService(t, &ServiceConfig{MaxConcurrency: 2})

	missing := repoError(domain.KindFetchingObject, http.StatusNotFound, "no such object")

	m.objects.EXPECT().Metadata(mock.Anything, "a").Return(mustParse(t, `{"key":"a"}`), nil)
	m.objects.EXPECT().Metadata(mock.Anything, "b").Return(jsonvalue.Null(), missing)
	m.objects.EXPECT().Metadata(mock.Anything, "c").Return(mustParse(t, `{"key":"c"}`), nil)

	results := svc.Describe(context.Background(), []string{"a", "b", "c"})

	require.Len(t, results, 3)
	assert.Equal(t, "a", results[0].Key)
	require.NoError(t, results[0].Err)
	assert.Equal(t, "b", results[1].Key)
	require.ErrorIs(t, results[1].Err, domain.KindFetchingObject)
	assert.True(t, domain.IsNotFound(results[1].Err))
	assert.Equal(t, "c", results[2].Key)

	key, _ := results[2].Metadata.Lookup("key")
	assert.True(t, jsonvalue.Equal(jsonvalue.String("c"), key))
}

func TestService_DescribeRespectsConcurrencyLimit(t *testing.T) {
	svc, m := newTestService(t, &ServiceConfig{MaxConcurrency: 2})

	var inFlight, peak atomic.Int32

	m.objects.EXPECT().Metadata(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string) (jsonvalue.Value, error) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}

			time.Sleep(10 * time.Millisecond)
			inFlight.Add(-1)

			return jsonvalue.Null(), nil
		})

	results := svc.Describe(context.Background(), []string{"a", "b", "c", "d", "e", "f"})

	assert.Len(t, results, 6)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestParallel2_CancelsSibling(t *testing.T) {
	boom := errors.New("boom")

	_, _, err := Parallel2(context.Background(),
		func(context.Context) (int, error) { return 0, boom },
		func(ctx context.Context) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
	)

	require.ErrorIs(t, err, boom)
}

func TestParallelPartialLimit_KeepsOrder(t *testing.T) {
	fns := []func(context.Context) (int, error){
		func(context.Context) (int, error) { time.Sleep(5 * time.Millisecond); return 1, nil },
		func(context.Context) (int, error) { return 0, errors.New("second") },
		func(context.Context) (int, error) { return 3, nil },
	}

	results := ParallelPartialLimit(context.Background(), 0, fns...)

	require.Len(t, results, 3)
	assert.Equal(t, 1, results[0].Value)
	require.EqualError(t, results[1].Err, "second")
	assert.Equal(t, 3, results[2].Value)
}

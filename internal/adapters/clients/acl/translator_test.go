package acl

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/go-contentrepo/internal/domain"
	"github.com/jsamuelsen/go-contentrepo/internal/jsonvalue"
)

// stubExecutor records the calls it receives and answers with a fixed result.
type stubExecutor struct {
	body  []byte
	err   error
	calls []stubCall
}

type stubCall struct {
	method string
	url    string
	kind   domain.Kind
}

func (s *stubExecutor) Execute(_ context.Context, req *http.Request, kind domain.Kind) ([]byte, error) {
	s.calls = append(s.calls, stubCall{method: req.Method, url: req.URL.String(), kind: kind})
	return s.body, s.err
}

func newStubAdapter(t *testing.T, exec *stubExecutor) BaseAdapter {
	t.Helper()
	return NewBaseAdapter(exec, newTestBuilder(t))
}

func TestFetch_NormalizesBody(t *testing.T) {
	exec := &stubExecutor{body: []byte(`{"name":"assets","size":3}`)}
	a := newStubAdapter(t, exec)

	v, err := a.Fetch(context.Background(), domain.KindFetchingBucket, a.requests.BucketMetadata)
	require.NoError(t, err)

	m, ok := v.Map()
	require.True(t, ok)
	assert.Equal(t, []string{"name", "size"}, m.Keys())

	size, ok := v.Lookup("size")
	require.True(t, ok)
	n, _ := size.Number()
	assert.InDelta(t, 3.0, n, 0)

	require.Len(t, exec.calls, 1)
	assert.Equal(t, domain.KindFetchingBucket, exec.calls[0].kind)
}

func TestFetch_EmptyBodyIsNull(t *testing.T) {
	a := newStubAdapter(t, &stubExecutor{})

	v, err := a.Fetch(context.Background(), domain.KindCreatingBucket, a.requests.CreateBucket)
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func TestFetch_MalformedBody(t *testing.T) {
	a := newStubAdapter(t, &stubExecutor{body: []byte(`{"name":`)})

	_, err := a.Fetch(context.Background(), domain.KindFetchingBucket, a.requests.BucketMetadata)
	require.Error(t, err)

	require.ErrorIs(t, err, domain.KindFetchingBucket)
	assert.Equal(t,
		"Error fetching bucket metadata from server, url : http://repo.test:8080/api/buckets/assets",
		err.Error())

	var ce *domain.ClientError
	require.ErrorAs(t, err, &ce)
	require.Error(t, errors.Unwrap(ce))
	assert.Zero(t, ce.StatusCode())
}

func TestFetch_PassesExecutorErrorThrough(t *testing.T) {
	want := domain.NewErrorBuilder(domain.KindFetchingStatus).WithStatus(http.StatusBadGateway).Build()
	a := newStubAdapter(t, &stubExecutor{err: want})

	_, err := a.Fetch(context.Background(), domain.KindFetchingStatus, a.requests.Status)
	assert.Same(t, want, err)
}

func TestFetch_BuildFailureSkipsExecutor(t *testing.T) {
	exec := &stubExecutor{}
	a := newStubAdapter(t, exec)
	cause := errors.New("boom")

	_, err := a.Fetch(context.Background(), domain.KindFetchingObject, func(context.Context) (*http.Request, error) {
		return nil, cause
	})

	require.ErrorIs(t, err, domain.KindFetchingObject)
	require.ErrorIs(t, err, cause)
	assert.Empty(t, exec.calls)
}

func TestFetchRaw_ReturnsBytesUnparsed(t *testing.T) {
	a := newStubAdapter(t, &stubExecutor{body: []byte{0x89, 'P', 'N', 'G'}})

	data, err := a.FetchRaw(context.Background(), domain.KindFetchingObjectContent, a.requests.Status)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)
}

func TestValidateDocument(t *testing.T) {
	require.NoError(t, ValidateDocument(domain.KindCreatingCollection, "menu", []byte(`{"a":[1,2]}`)))

	err := ValidateDocument(domain.KindCreatingCollection, "menu", []byte(`{"a":`))
	require.ErrorIs(t, err, domain.KindCreatingCollection)
	assert.Equal(t, "Error creating collection on server, key : menu", err.Error())

	err = ValidateDocument(domain.KindUpdatingConfig, "", []byte(``))
	require.ErrorIs(t, err, domain.KindUpdatingConfig)
	assert.Equal(t, "Error updating config on server", err.Error())
}

func TestValidationRejectsBeforeRequest(t *testing.T) {
	exec := &stubExecutor{}
	requests := newTestBuilder(t)
	objects := NewObjectClient(exec, requests)
	collections := NewCollectionClient(exec, requests)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
		want domain.Kind
	}{
		{"empty object key", func() error { _, err := objects.Metadata(ctx, ""); return err }, domain.KindEmptyKey},
		{"missing checksum", func() error {
			_, err := objects.Create(ctx, domain.Upload{Key: "k", ContentType: "text/plain"})
			return err
		}, domain.KindEmptyChecksum},
		{"missing content type", func() error {
			_, err := objects.CreateVersion(ctx, domain.Upload{Key: "k", Checksum: "c"})
			return err
		}, domain.KindEmptyContentType},
		{"empty tag", func() error { _, err := objects.Tag(ctx, "k", "", 1); return err }, domain.KindEmptyTag},
		{"zero tag version", func() error { _, err := objects.Tag(ctx, "k", "live", 0); return err }, domain.KindInvalidVersion},
		{"negative content version", func() error { _, err := objects.Content(ctx, "k", -1); return err }, domain.KindInvalidVersion},
		{"negative offset", func() error {
			_, err := objects.List(ctx, domain.Pagination{Offset: -1})
			return err
		}, domain.KindInvalidPagination},
		{"empty version id", func() error { _, err := objects.VersionByID(ctx, ""); return err }, domain.KindEmptyKey},
		{"empty tag lookup", func() error { _, err := objects.ByTag(ctx, "k", ""); return err }, domain.KindEmptyTag},
		{"empty collection key", func() error { return collections.Delete(ctx, "") }, domain.KindEmptyKey},
		{"zero collection version", func() error { _, err := collections.Version(ctx, "menu", 0); return err }, domain.KindInvalidVersion},
		{"malformed collection", func() error {
			_, err := collections.Create(ctx, "menu", []byte(`[`))
			return err
		}, domain.KindCreatingCollection},
		{"negative limit", func() error {
			_, err := collections.List(ctx, domain.Pagination{Limit: -5})
			return err
		}, domain.KindInvalidPagination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.ErrorIs(t, err, tt.want)
		})
	}

	assert.Empty(t, exec.calls, "validation must fail before any request is sent")
}

func TestClients_UseFixedKinds(t *testing.T) {
	exec := &stubExecutor{body: []byte(`{}`)}
	requests := newTestBuilder(t)
	buckets := NewBucketClient(exec, requests)
	collections := NewCollectionClient(exec, requests)
	objects := NewObjectClient(exec, requests)
	status := NewStatusClient(exec, requests)
	ctx := context.Background()
	up := domain.Upload{Key: "k", ContentType: "text/plain", Checksum: "c", Content: []byte("x")}

	calls := []struct {
		call func() error
		want domain.Kind
	}{
		{func() error { _, err := buckets.List(ctx); return err }, domain.KindFetchingBuckets},
		{func() error { _, err := buckets.Metadata(ctx); return err }, domain.KindFetchingBucket},
		{func() error { _, err := buckets.Create(ctx); return err }, domain.KindCreatingBucket},
		{func() error { return buckets.Delete(ctx) }, domain.KindDeletingBucket},
		{func() error { _, err := collections.List(ctx, domain.Pagination{}); return err }, domain.KindFetchingCollections},
		{func() error { _, err := collections.Get(ctx, "c"); return err }, domain.KindFetchingCollection},
		{func() error { _, err := collections.Create(ctx, "c", []byte(`{}`)); return err }, domain.KindCreatingCollection},
		{func() error { _, err := collections.CreateVersion(ctx, "c", []byte(`{}`)); return err }, domain.KindCreatingCollectionVersion},
		{func() error { return collections.Delete(ctx, "c") }, domain.KindDeletingCollection},
		{func() error { _, err := collections.Versions(ctx, "c"); return err }, domain.KindFetchingCollectionVersions},
		{func() error { _, err := collections.Version(ctx, "c", 1); return err }, domain.KindFetchingCollectionVersion},
		{func() error { _, err := objects.List(ctx, domain.Pagination{}); return err }, domain.KindFetchingObjects},
		{func() error { _, err := objects.Metadata(ctx, "k"); return err }, domain.KindFetchingObject},
		{func() error { _, err := objects.Create(ctx, up); return err }, domain.KindCreatingObject},
		{func() error { _, err := objects.CreateVersion(ctx, up); return err }, domain.KindCreatingObjectVersion},
		{func() error { return objects.Delete(ctx, "k") }, domain.KindDeletingObject},
		{func() error { _, err := objects.Content(ctx, "k", 0); return err }, domain.KindFetchingObjectContent},
		{func() error { _, err := objects.Versions(ctx, "k"); return err }, domain.KindFetchingObjectVersions},
		{func() error { _, err := objects.Version(ctx, "k", 2); return err }, domain.KindFetchingObjectVersion},
		{func() error { _, err := objects.VersionByID(ctx, "v1"); return err }, domain.KindFetchingObjectVersion},
		{func() error { _, err := objects.Tag(ctx, "k", "live", 2); return err }, domain.KindTaggingObjectVersion},
		{func() error { _, err := objects.ByTag(ctx, "k", "live"); return err }, domain.KindFetchingObjectByTag},
		{func() error { _, err := status.Status(ctx); return err }, domain.KindFetchingStatus},
		{func() error { _, err := status.Config(ctx); return err }, domain.KindFetchingConfig},
		{func() error { _, err := status.UpdateConfig(ctx, []byte(`{}`)); return err }, domain.KindUpdatingConfig},
		{func() error { return status.Check(ctx) }, domain.KindFetchingStatus},
	}

	for i, c := range calls {
		require.NoError(t, c.call())
		require.Len(t, exec.calls, i+1)
		assert.Equal(t, c.want, exec.calls[i].kind, "call %d (%s)", i, exec.calls[i].url)
	}
}

func TestStatusClient_HealthChecker(t *testing.T) {
	down := domain.NewErrorBuilder(domain.KindFetchingStatus).WithStatus(http.StatusServiceUnavailable).Build()
	status := NewStatusClient(&stubExecutor{err: down}, newTestBuilder(t))

	assert.Equal(t, "content-repository", status.Name())
	require.ErrorIs(t, status.Check(context.Background()), domain.KindFetchingStatus)
}

func TestFetch_PreservesMemberOrder(t *testing.T) {
	a := newStubAdapter(t, &stubExecutor{body: []byte(`{"z":1,"a":{"y":true,"b":null},"m":[3,"x"]}`)})

	v, err := a.Fetch(context.Background(), domain.KindFetchingConfig, a.requests.Config)
	require.NoError(t, err)

	m, _ := v.Map()
	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())

	inner, ok := v.Lookup("a")
	require.True(t, ok)
	im, _ := inner.Map()
	assert.Equal(t, []string{"y", "b"}, im.Keys())

	seq, ok := v.Lookup("m")
	require.True(t, ok)
	s, _ := seq.Sequence()
	first, _ := s.At(0)
	assert.Equal(t, jsonvalue.KindNumber, first.Kind())
}

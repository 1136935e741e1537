package acl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jsamuelsen/go-contentrepo/internal/domain"
)

// Headers and query parameters understood by the repository.
const (
	HeaderChecksum = "X-Checksum"

	contentTypeJSON = "application/json"

	paramOffset         = "offset"
	paramLimit          = "limit"
	paramIncludeDeleted = "includeDeleted"
	paramVersion        = "version"
)

// RequestBuilder builds repository requests for one bucket. It is immutable
// and safe for concurrent use.
type RequestBuilder struct {
	base   *url.URL
	bucket string
}

// NewRequestBuilder parses baseURL and binds requests to bucket.
func NewRequestBuilder(baseURL, bucket string) (*RequestBuilder, error) {
	if bucket == "" {
		return nil, domain.NewValidationError(domain.KindEmptyBucketName, "")
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}

	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	base.Path = strings.TrimSuffix(base.Path, "/")
	base.RawPath = ""

	return &RequestBuilder{base: base, bucket: bucket}, nil
}

// Bucket returns the bucket requests are bound to.
func (b *RequestBuilder) Bucket() string {
	return b.bucket
}

// BaseURL returns the repository address.
func (b *RequestBuilder) BaseURL() string {
	return b.base.String()
}

// ListBuckets builds GET /buckets.
func (b *RequestBuilder) ListBuckets(ctx context.Context) (*http.Request, error) {
	return b.get(ctx, nil, "buckets")
}

// BucketMetadata builds GET /buckets/{bucket}.
func (b *RequestBuilder) BucketMetadata(ctx context.Context) (*http.Request, error) {
	return b.get(ctx, nil, b.bucketPath()...)
}

// CreateBucket builds POST /buckets/{bucket}.
func (b *RequestBuilder) CreateBucket(ctx context.Context) (*http.Request, error) {
	return b.build(ctx, http.MethodPost, nil, nil, "", b.bucketPath()...)
}

// DeleteBucket builds DELETE /buckets/{bucket}.
func (b *RequestBuilder) DeleteBucket(ctx context.Context) (*http.Request, error) {
	return b.build(ctx, http.MethodDelete, nil, nil, "", b.bucketPath()...)
}

// ListCollections builds GET /buckets/{bucket}/collections with paging.
func (b *RequestBuilder) ListCollections(ctx context.Context, page domain.Pagination) (*http.Request, error) {
	return b.get(ctx, pageQuery(page), b.bucketPath("collections")...)
}

// Collection builds GET /buckets/{bucket}/collections/{key}.
func (b *RequestBuilder) Collection(ctx context.Context, key string) (*http.Request, error) {
	return b.get(ctx, nil, b.bucketPath("collections", key)...)
}

// CreateCollection builds POST /buckets/{bucket}/collections/{key} with a JSON document.
func (b *RequestBuilder) CreateCollection(ctx context.Context, key string, doc []byte) (*http.Request, error) {
	return b.build(ctx, http.MethodPost, nil, doc, contentTypeJSON, b.bucketPath("collections", key)...)
}

// CreateCollectionVersion builds PUT /buckets/{bucket}/collections/{key} with a JSON document.
func (b *RequestBuilder) CreateCollectionVersion(ctx context.Context, key string, doc []byte) (*http.Request, error) {
	return b.build(ctx, http.MethodPut, nil, doc, contentTypeJSON, b.bucketPath("collections", key)...)
}

// DeleteCollection builds DELETE /buckets/{bucket}/collections/{key}.
func (b *RequestBuilder) DeleteCollection(ctx context.Context, key string) (*http.Request, error) {
	return b.build(ctx, http.MethodDelete, nil, nil, "", b.bucketPath("collections", key)...)
}

// CollectionVersions builds GET /buckets/{bucket}/collections/{key}/versions.
func (b *RequestBuilder) CollectionVersions(ctx context.Context, key string) (*http.Request, error) {
	return b.get(ctx, nil, b.bucketPath("collections", key, "versions")...)
}

// CollectionVersion builds GET /buckets/{bucket}/collections/{key}/versions/{n}.
func (b *RequestBuilder) CollectionVersion(ctx context.Context, key string, n int) (*http.Request, error) {
	return b.get(ctx, nil, b.bucketPath("collections", key, "versions", strconv.Itoa(n))...)
}

// ListObjects builds GET /buckets/{bucket}/objects with paging.
func (b *RequestBuilder) ListObjects(ctx context.Context, page domain.Pagination) (*http.Request, error) {
	return b.get(ctx, pageQuery(page), b.bucketPath("objects")...)
}

// Object builds GET /buckets/{bucket}/objects/{key} for the object's metadata.
func (b *RequestBuilder) Object(ctx context.Context, key string) (*http.Request, error) {
	return b.get(ctx, nil, b.bucketPath("objects", key)...)
}

// CreateObject builds POST /buckets/{bucket}/objects/{key} carrying the upload.
func (b *RequestBuilder) CreateObject(ctx context.Context, up domain.Upload) (*http.Request, error) {
	return b.upload(ctx, http.MethodPost, up)
}

// CreateObjectVersion builds PUT /buckets/{bucket}/objects/{key} carrying the upload.
func (b *RequestBuilder) CreateObjectVersion(ctx context.Context, up domain.Upload) (*http.Request, error) {
	return b.upload(ctx, http.MethodPut, up)
}

// DeleteObject builds DELETE /buckets/{bucket}/objects/{key}.
func (b *RequestBuilder) DeleteObject(ctx context.Context, key string) (*http.Request, error) {
	return b.build(ctx, http.MethodDelete, nil, nil, "", b.bucketPath("objects", key)...)
}

// ObjectContent builds GET /buckets/{bucket}/objects/{key}/content. A version
// below 1 selects the latest version.
func (b *RequestBuilder) ObjectContent(ctx context.Context, key string, version int) (*http.Request, error) {
	var q url.Values
	if version > 0 {
		q = url.Values{paramVersion: {strconv.Itoa(version)}}
	}

	req, err := b.build(ctx, http.MethodGet, q, nil, "", b.bucketPath("objects", key, "content")...)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "*/*")

	return req, nil
}

// ObjectVersions builds GET /buckets/{bucket}/objects/{key}/versions.
func (b *RequestBuilder) ObjectVersions(ctx context.Context, key string) (*http.Request, error) {
	return b.get(ctx, nil, b.bucketPath("objects", key, "versions")...)
}

// ObjectVersion builds GET /buckets/{bucket}/objects/{key}/versions/{n}.
func (b *RequestBuilder) ObjectVersion(ctx context.Context, key string, n int) (*http.Request, error) {
	return b.get(ctx, nil, b.bucketPath("objects", key, "versions", strconv.Itoa(n))...)
}

// VersionByID builds GET /buckets/{bucket}/versions/{versionID}.
func (b *RequestBuilder) VersionByID(ctx context.Context, versionID string) (*http.Request, error) {
	return b.get(ctx, nil, b.bucketPath("versions", versionID)...)
}

// TagObjectVersion builds PUT /buckets/{bucket}/objects/{key}/tags/{tag}?version={n}.
func (b *RequestBuilder) TagObjectVersion(ctx context.Context, key, tag string, version int) (*http.Request, error) {
	q := url.Values{paramVersion: {strconv.Itoa(version)}}

	return b.build(ctx, http.MethodPut, q, nil, "", b.bucketPath("objects", key, "tags", tag)...)
}

// ObjectByTag builds GET /buckets/{bucket}/objects/{key}/tags/{tag}.
func (b *RequestBuilder) ObjectByTag(ctx context.Context, key, tag string) (*http.Request, error) {
	return b.get(ctx, nil, b.bucketPath("objects", key, "tags", tag)...)
}

// Status builds GET /status.
func (b *RequestBuilder) Status(ctx context.Context) (*http.Request, error) {
	return b.get(ctx, nil, "status")
}

// Config builds GET /config.
func (b *RequestBuilder) Config(ctx context.Context) (*http.Request, error) {
	return b.get(ctx, nil, "config")
}

// UpdateConfig builds PUT /config with a JSON document.
func (b *RequestBuilder) UpdateConfig(ctx context.Context, doc []byte) (*http.Request, error) {
	return b.build(ctx, http.MethodPut, nil, doc, contentTypeJSON, "config")
}

func (b *RequestBuilder) bucketPath(segments ...string) []string {
	return append([]string{"buckets", b.bucket}, segments...)
}

func (b *RequestBuilder) upload(ctx context.Context, method string, up domain.Upload) (*http.Request, error) {
	req, err := b.build(ctx, method, nil, up.Content, up.ContentType, b.bucketPath("objects", up.Key)...)
	if err != nil {
		return nil, err
	}

	req.Header.Set(HeaderChecksum, up.Checksum)

	return req, nil
}

func (b *RequestBuilder) get(ctx context.Context, q url.Values, segments ...string) (*http.Request, error) {
	return b.build(ctx, http.MethodGet, q, nil, "", segments...)
}

// build joins escaped segments onto the base path. Every segment is escaped
// individually so keys containing "/" or "?" stay one segment.
func (b *RequestBuilder) build(ctx context.Context, method string, q url.Values, body []byte, contentType string, segments ...string) (*http.Request, error) {
	for _, s := range segments {
		if s == "" {
			return nil, errors.New("empty path segment")
		}
	}

	u := *b.base
	raw := make([]string, len(segments))
	plain := make([]string, len(segments))

	for i, s := range segments {
		raw[i] = url.PathEscape(s)
		plain[i] = s
	}

	u.Path = b.base.Path + "/" + strings.Join(plain, "/")
	u.RawPath = b.base.EscapedPath() + "/" + strings.Join(raw, "/")
	u.RawQuery = q.Encode()

	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", method, err)
	}

	req.Header.Set("Accept", contentTypeJSON)

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	return req, nil
}

func pageQuery(p domain.Pagination) url.Values {
	q := url.Values{}
	q.Set(paramOffset, strconv.Itoa(p.Offset))

	if p.Limit > 0 {
		q.Set(paramLimit, strconv.Itoa(p.Limit))
	}

	if p.IncludeDeleted {
		q.Set(paramIncludeDeleted, "true")
	}

	return q
}

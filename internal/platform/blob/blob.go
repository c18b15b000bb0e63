// Package blob wraps the object store holding the admin content document and
// uploaded media. A Google Cloud Storage bucket backs production; tests use
// the in-memory store.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

var (
	// ErrNotFound signals that the object does not exist.
	ErrNotFound = errors.New("blob: object not found")
	// ErrNotConfigured signals that no bucket is configured and writes must
	// fail loudly.
	ErrNotConfigured = errors.New("blob: bucket is not configured")

	errInvalidBucket = errors.New("blob: bucket name is required")
)

// ObjectInfo describes a stored object for streaming responses.
type ObjectInfo struct {
	ContentType string
	Size        int64
}

// Store is the object-store surface the studio layer depends on.
type Store interface {
	// Read returns the full object payload.
	Read(ctx context.Context, key string) ([]byte, error)
	// Write stores the payload under key with the given content type.
	Write(ctx context.Context, key string, data []byte, contentType string) error
	// Open streams the object for proxying to a response body.
	Open(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// PublicURL returns the direct URL for key, or "" when objects are not
	// publicly reachable and must be served through the media proxy.
	PublicURL(key string) string
}

// GCSStore persists objects in a Cloud Storage bucket.
type GCSStore struct {
	client *gcs.Client
	bucket string
	public bool
}

// GCSOption customises store behaviour.
type GCSOption func(*GCSStore)

// WithPublicObjects marks uploads world-readable and makes PublicURL return
// direct storage.googleapis.com links.
func WithPublicObjects(public bool) GCSOption {
	return func(s *GCSStore) {
		s.public = public
	}
}

// NewGCSStore opens a Cloud Storage-backed store for the bucket.
func NewGCSStore(ctx context.Context, bucket string, opts []option.ClientOption, storeOpts ...GCSOption) (*GCSStore, error) {
	if strings.TrimSpace(bucket) == "" {
		return nil, errInvalidBucket
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("blob: create storage client: %w", err)
	}
	store := &GCSStore{client: client, bucket: bucket}
	for _, opt := range storeOpts {
		if opt != nil {
			opt(store)
		}
	}
	return store, nil
}

func (s *GCSStore) Read(ctx context.Context, key string) ([]byte, error) {
	reader, err := s.client.Bucket(s.bucket).Object(key).NewReader(ctx)
	if err != nil {
		return nil, mapGCSError(err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("blob: read object %q: %w", key, err)
	}
	return data, nil
}

func (s *GCSStore) Write(ctx context.Context, key string, data []byte, contentType string) error {
	writer := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	writer.ContentType = contentType
	if s.public {
		writer.PredefinedACL = "publicRead"
	}
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("blob: write object %q: %w", key, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("blob: finalize object %q: %w", key, err)
	}
	return nil
}

func (s *GCSStore) Open(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	reader, err := s.client.Bucket(s.bucket).Object(key).NewReader(ctx)
	if err != nil {
		return nil, ObjectInfo{}, mapGCSError(err)
	}
	info := ObjectInfo{
		ContentType: reader.Attrs.ContentType,
		Size:        reader.Attrs.Size,
	}
	return reader, info, nil
}

func (s *GCSStore) PublicURL(key string) string {
	if !s.public {
		return ""
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, escapeKey(key))
}

// Close releases the underlying storage client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}

func mapGCSError(err error) error {
	if errors.Is(err, gcs.ErrObjectNotExist) || errors.Is(err, gcs.ErrBucketNotExist) {
		return ErrNotFound
	}
	return fmt.Errorf("blob: storage: %w", err)
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}

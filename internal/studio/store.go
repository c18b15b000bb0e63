// Package studio persists the admin panel's content document and media
// library in the blob store.
package studio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	domain "github.com/business-start/api/internal/domain"
	"github.com/business-start/api/internal/platform/blob"
)

const (
	// ContentKey is the blob key of the single admin content document.
	ContentKey = "startstudio/content.json"
	// MediaPrefix roots every uploaded media object.
	MediaPrefix = "startstudio/media"
	// MediaProxyPath serves private media through the API.
	MediaProxyPath = "/api/startstudio/media"

	maxMediaItems = 300
)

// ErrNotConfigured signals that writes were attempted without a blob bucket.
var ErrNotConfigured = errors.New("studio: blob store is not configured")

// ErrMissingFile signals an upload request without a file payload.
var ErrMissingFile = errors.New("studio: file payload is required")

// StoreDeps groups constructor parameters for the studio store.
type StoreDeps struct {
	// Blob may be nil when no bucket is configured; reads then return nil
	// and writes fail with ErrNotConfigured.
	Blob   blob.Store
	Logger *zap.Logger
	Clock  func() time.Time
	IDGen  func() string
}

// Store reads and writes the admin content document.
type Store struct {
	blob   blob.Store
	logger *zap.Logger
	clock  func() time.Time
	idGen  func() string
}

// NewStore constructs the studio store.
func NewStore(deps StoreDeps) *Store {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	idGen := deps.IDGen
	if idGen == nil {
		idGen = func() string { return ulid.Make().String() }
	}
	return &Store{
		blob:   deps.Blob,
		logger: logger,
		clock:  func() time.Time { return clock().UTC() },
		idGen:  idGen,
	}
}

// Configured reports whether a blob bucket backs the store.
func (s *Store) Configured() bool { return s.blob != nil }

// Read loads the content document. Any failure, including an unconfigured
// store or a malformed document, yields nil so page rendering degrades to
// catalog and CMS content instead of erroring.
func (s *Store) Read(ctx context.Context) *domain.StudioContent {
	if s.blob == nil {
		return nil
	}
	data, err := s.blob.Read(ctx, ContentKey)
	if err != nil {
		if !errors.Is(err, blob.ErrNotFound) {
			s.logger.Warn("studio content read failed", zap.Error(err))
		}
		return nil
	}
	var content domain.StudioContent
	if err := json.Unmarshal(data, &content); err != nil {
		s.logger.Warn("studio content document is malformed", zap.Error(err))
		return nil
	}
	if content.Locales == nil {
		content.Locales = map[domain.Locale]domain.StudioLocale{}
	}
	if content.MediaLibrary == nil {
		content.MediaLibrary = []domain.MediaItem{}
	}
	return &content
}

// DocumentURL returns the direct storage URL of the content document, or ""
// when the store is unconfigured or objects are private.
func (s *Store) DocumentURL() string {
	if s.blob == nil {
		return ""
	}
	return s.blob.PublicURL(ContentKey)
}

// Ensure returns the stored document, creating and persisting an empty one
// when none exists yet. Without a configured bucket the empty document is
// returned without persisting.
func (s *Store) Ensure(ctx context.Context) (*domain.StudioContent, error) {
	if current := s.Read(ctx); current != nil {
		return current, nil
	}
	fresh := domain.EmptyStudioContent(s.clock())
	if s.blob == nil {
		return fresh, nil
	}
	if err := s.Save(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

// Save persists the document, stamping updatedAt server-side and capping the
// media library. Fails loudly when no bucket is configured.
func (s *Store) Save(ctx context.Context, content *domain.StudioContent) error {
	if s.blob == nil {
		return ErrNotConfigured
	}
	if content.Locales == nil {
		content.Locales = map[domain.Locale]domain.StudioLocale{}
	}
	if content.MediaLibrary == nil {
		content.MediaLibrary = []domain.MediaItem{}
	}
	if len(content.MediaLibrary) > maxMediaItems {
		content.MediaLibrary = content.MediaLibrary[:maxMediaItems]
	}
	content.UpdatedAt = s.clock().Format(time.RFC3339)

	payload, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return fmt.Errorf("studio: encode content document: %w", err)
	}
	if err := s.blob.Write(ctx, ContentKey, payload, "application/json; charset=utf-8"); err != nil {
		return fmt.Errorf("studio: persist content document: %w", err)
	}
	return nil
}

// UploadInput describes one media upload.
type UploadInput struct {
	Locale      domain.Locale
	Title       string
	Filename    string
	ContentType string
	Data        []byte
}

// UploadMedia stores the payload under a fresh media key and returns the
// library entry. The caller is responsible for prepending the entry to the
// document and saving it.
func (s *Store) UploadMedia(ctx context.Context, in UploadInput) (domain.MediaItem, error) {
	if s.blob == nil {
		return domain.MediaItem{}, ErrNotConfigured
	}
	if len(in.Data) == 0 {
		return domain.MediaItem{}, ErrMissingFile
	}

	now := s.clock()
	pathname := fmt.Sprintf("%s/%s/%d-%s%s",
		MediaPrefix, in.Locale, now.UnixMilli(), s.idGen(), safeExtension(in.Filename))

	if err := s.blob.Write(ctx, pathname, in.Data, in.ContentType); err != nil {
		return domain.MediaItem{}, fmt.Errorf("studio: upload media: %w", err)
	}

	mediaType := domain.MediaImage
	if strings.HasPrefix(in.ContentType, "video/") {
		mediaType = domain.MediaVideo
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = in.Filename
	}

	item := domain.MediaItem{
		ID:        s.idGen(),
		Locale:    in.Locale,
		Type:      mediaType,
		Title:     title,
		CreatedAt: now.Format(time.RFC3339),
	}
	if direct := s.blob.PublicURL(pathname); direct != "" {
		item.URL = direct
	} else {
		item.URL = MediaProxyPath + "?pathname=" + url.QueryEscape(pathname)
		item.Pathname = pathname
	}
	item.RawURL = item.URL
	return item, nil
}

func safeExtension(filename string) string {
	ext := path.Ext(filename)
	if len(ext) > 10 {
		return ""
	}
	return ext
}

package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/business-start/api/internal/cms"
	domain "github.com/business-start/api/internal/domain"
)

// SnapshotSource yields the CMS snapshot for the current request, or nil when
// the CMS is unconfigured or unreachable. Callers treat nil as "render from
// static content".
type SnapshotSource interface {
	Snapshot(ctx context.Context) *domain.Snapshot
}

type snapshotCacheKey struct{}

type snapshotCache struct {
	once     sync.Once
	snapshot *domain.Snapshot
}

// WithSnapshotCache scopes snapshot memoization to the context. Handlers that
// touch the snapshot more than once per request (content plus landing lookups)
// install it so the CMS is queried at most once per request, never cached
// across requests.
func WithSnapshotCache(ctx context.Context) context.Context {
	return context.WithValue(ctx, snapshotCacheKey{}, &snapshotCache{})
}

// CMSSnapshotSourceDeps groups constructor parameters for the snapshot source.
type CMSSnapshotSourceDeps struct {
	Fetcher cms.SnapshotFetcher
	Logger  *zap.Logger
}

type cmsSnapshotSource struct {
	fetcher cms.SnapshotFetcher
	logger  *zap.Logger
}

// NewCMSSnapshotSource builds the snapshot source backed by the CMS client.
// A nil fetcher yields a source that always returns nil.
func NewCMSSnapshotSource(deps CMSSnapshotSourceDeps) SnapshotSource {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &cmsSnapshotSource{fetcher: deps.Fetcher, logger: logger}
}

func (s *cmsSnapshotSource) Snapshot(ctx context.Context) *domain.Snapshot {
	cache, _ := ctx.Value(snapshotCacheKey{}).(*snapshotCache)
	if cache == nil {
		return s.fetch(ctx)
	}
	cache.once.Do(func() {
		cache.snapshot = s.fetch(ctx)
	})
	return cache.snapshot
}

func (s *cmsSnapshotSource) fetch(ctx context.Context) *domain.Snapshot {
	if s.fetcher == nil || !s.fetcher.Configured() {
		return nil
	}
	snapshot, err := s.fetcher.FetchSnapshot(ctx)
	if err != nil {
		s.logger.Warn("cms snapshot fetch failed, serving static content", zap.Error(err))
		return nil
	}
	return snapshot
}

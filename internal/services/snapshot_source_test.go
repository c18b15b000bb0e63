package services

import (
	"context"
	"errors"
	"testing"

	domain "github.com/business-start/api/internal/domain"
)

type countingFetcher struct {
	configured bool
	snapshot   *domain.Snapshot
	err        error
	calls      int
}

func (f *countingFetcher) Configured() bool { return f.configured }

func (f *countingFetcher) FetchSnapshot(context.Context) (*domain.Snapshot, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshot, nil
}

func TestSnapshotNilWhenUnconfigured(t *testing.T) {
	fetcher := &countingFetcher{configured: false}
	source := NewCMSSnapshotSource(CMSSnapshotSourceDeps{Fetcher: fetcher})
	if source.Snapshot(context.Background()) != nil {
		t.Fatal("unconfigured fetcher should yield nil snapshot")
	}
	if fetcher.calls != 0 {
		t.Fatalf("fetch called %d times", fetcher.calls)
	}
}

func TestSnapshotNilOnFetchError(t *testing.T) {
	fetcher := &countingFetcher{configured: true, err: errors.New("network down")}
	source := NewCMSSnapshotSource(CMSSnapshotSourceDeps{Fetcher: fetcher})
	if source.Snapshot(context.Background()) != nil {
		t.Fatal("fetch failure should yield nil snapshot")
	}
}

func TestSnapshotMemoizedPerRequestContext(t *testing.T) {
	fetcher := &countingFetcher{configured: true, snapshot: &domain.Snapshot{}}
	source := NewCMSSnapshotSource(CMSSnapshotSourceDeps{Fetcher: fetcher})

	ctx := WithSnapshotCache(context.Background())
	first := source.Snapshot(ctx)
	second := source.Snapshot(ctx)
	if first == nil || first != second {
		t.Fatal("snapshot not memoized within request context")
	}
	if fetcher.calls != 1 {
		t.Fatalf("fetch called %d times, want 1", fetcher.calls)
	}

	// A fresh context fetches again: no cross-request caching.
	source.Snapshot(WithSnapshotCache(context.Background()))
	if fetcher.calls != 2 {
		t.Fatalf("fetch called %d times, want 2", fetcher.calls)
	}
}

func TestSnapshotWithoutCacheContextFetchesEachCall(t *testing.T) {
	fetcher := &countingFetcher{configured: true, snapshot: &domain.Snapshot{}}
	source := NewCMSSnapshotSource(CMSSnapshotSourceDeps{Fetcher: fetcher})

	source.Snapshot(context.Background())
	source.Snapshot(context.Background())
	if fetcher.calls != 2 {
		t.Fatalf("fetch called %d times, want 2", fetcher.calls)
	}
}

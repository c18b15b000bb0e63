package services

import (
	"context"
	"testing"

	domain "github.com/business-start/api/internal/domain"
)

func slugPair(he, en string) domain.SlugPair {
	return domain.SlugPair{He: he, En: en}
}

func TestLandingResolvesFromCMS(t *testing.T) {
	snapshot := &domain.Snapshot{
		Services: []domain.Service{
			{
				ID:               "svc-1",
				Title:            domain.LocalizedIn("צילום", "Photography"),
				Slug:             slugPair("tsilum", "photography"),
				FullDescription:  domain.PlainLocalized("Full story"),
				ShortDescription: domain.PlainLocalized("Short story"),
				Deliverables: []domain.Localized{
					domain.PlainLocalized("one"), domain.PlainLocalized("two"),
					domain.PlainLocalized("three"), domain.PlainLocalized("four"),
					domain.PlainLocalized("five"), domain.PlainLocalized("six"),
					domain.PlainLocalized("seven"),
				},
				PriceFrom: "From 1,000 ILS",
			},
		},
	}
	svc := NewLandingService(LandingServiceDeps{Snapshots: &stubSnapshotSource{snapshot: snapshot}})

	record := svc.Resolve(context.Background(), domain.LandingService, domain.LocaleEnglish, "photography")
	if record == nil {
		t.Fatal("expected CMS record")
	}
	if record.ID != "svc-1" || record.Title != "Photography" {
		t.Fatalf("record = %+v", record)
	}
	if record.Description != "Full story" {
		t.Fatalf("description = %q, want fullDescription first", record.Description)
	}
	if len(record.Bullets) != 6 {
		t.Fatalf("bullets capped at 6, got %d", len(record.Bullets))
	}
	if record.AlternateSlug != "tsilum" {
		t.Fatalf("alternateSlug = %q", record.AlternateSlug)
	}
	if record.SEOTitle != "Photography" || record.SEODescription != "Full story" {
		t.Fatalf("seo fallbacks wrong: %+v", record)
	}
}

func TestLandingSolutionDescriptionFallsBackToProblem(t *testing.T) {
	snapshot := &domain.Snapshot{
		Solutions: []domain.Solution{
			{
				ID:      "sol-1",
				Title:   domain.PlainLocalized("QR"),
				Slug:    slugPair("qr", "qr"),
				Problem: domain.PlainLocalized("Menus are slow"),
			},
		},
	}
	svc := NewLandingService(LandingServiceDeps{Snapshots: &stubSnapshotSource{snapshot: snapshot}})

	record := svc.Resolve(context.Background(), domain.LandingSolution, domain.LocaleHebrew, "qr")
	if record == nil {
		t.Fatal("expected CMS record")
	}
	if record.Description != "Menus are slow" {
		t.Fatalf("description = %q, want problem fallback", record.Description)
	}
}

func TestLandingEntitySEOOverrides(t *testing.T) {
	snapshot := &domain.Snapshot{
		Services: []domain.Service{
			{
				ID:    "svc-seo",
				Title: domain.PlainLocalized("Base"),
				Slug:  slugPair("base", "base"),
				SEO: &domain.EntitySEO{
					Title:       domain.PlainLocalized("SEO title"),
					Description: domain.PlainLocalized("SEO description"),
					Noindex:     true,
				},
			},
		},
	}
	svc := NewLandingService(LandingServiceDeps{Snapshots: &stubSnapshotSource{snapshot: snapshot}})

	record := svc.Resolve(context.Background(), domain.LandingService, domain.LocaleEnglish, "base")
	if record.SEOTitle != "SEO title" || record.SEODescription != "SEO description" {
		t.Fatalf("seo overrides not applied: %+v", record)
	}
	if !record.Noindex {
		t.Fatal("noindex not carried")
	}
}

func TestLandingFallsBackToStaticTable(t *testing.T) {
	svc := NewLandingService(LandingServiceDeps{})

	record := svc.Resolve(context.Background(), domain.LandingService, domain.LocaleHebrew, "food-photography")
	if record == nil {
		t.Fatal("expected static fallback record")
	}
	if record.Kind != domain.LandingService {
		t.Fatalf("kind = %s", record.Kind)
	}

	if svc.Resolve(context.Background(), domain.LandingService, domain.LocaleHebrew, "unknown") != nil {
		t.Fatal("unknown slug should resolve to nil")
	}
}

func TestLandingCMSMissEntityFallsBack(t *testing.T) {
	snapshot := &domain.Snapshot{
		Services: []domain.Service{
			{ID: "svc-x", Title: domain.PlainLocalized("X"), Slug: slugPair("x", "x")},
		},
	}
	svc := NewLandingService(LandingServiceDeps{Snapshots: &stubSnapshotSource{snapshot: snapshot}})

	record := svc.Resolve(context.Background(), domain.LandingService, domain.LocaleEnglish, "reels-content")
	if record == nil || record.ID != "svc-reels" {
		t.Fatalf("expected fallback record for unmatched slug, got %+v", record)
	}
}

func TestLandingParamsSkipNonRoutableSlugs(t *testing.T) {
	snapshot := &domain.Snapshot{
		Services: []domain.Service{
			{Slug: slugPair("shniim", "both")},
			{Slug: slugPair("", "en-only")},
		},
	}
	svc := NewLandingService(LandingServiceDeps{Snapshots: &stubSnapshotSource{snapshot: snapshot}})

	params := svc.Params(context.Background(), domain.LandingService)
	if len(params) != 2 {
		t.Fatalf("params = %d, want only the fully routable pair", len(params))
	}
	if params[0].Slug != "shniim" || params[1].Slug != "both" {
		t.Fatalf("params = %+v", params)
	}
}

func TestLandingParamsFallbackTable(t *testing.T) {
	svc := NewLandingService(LandingServiceDeps{})
	params := svc.Params(context.Background(), domain.LandingService)
	if len(params) != 6 {
		t.Fatalf("want 3 fallback services x 2 locales, got %d", len(params))
	}
}

func TestLocalePaths(t *testing.T) {
	svc := NewLandingService(LandingServiceDeps{})
	paths := svc.LocalePaths(context.Background(), domain.LocaleEnglish)
	if len(paths) != 5 {
		t.Fatalf("paths = %v", paths)
	}
	wantFirst := "/services/food-photography"
	if paths[0] != wantFirst {
		t.Fatalf("paths[0] = %q, want %q", paths[0], wantFirst)
	}
	wantLast := "/solutions/beauty-booking"
	if paths[len(paths)-1] != wantLast {
		t.Fatalf("last path = %q, want %q", paths[len(paths)-1], wantLast)
	}
}

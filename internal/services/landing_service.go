package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/business-start/api/internal/catalog"
	domain "github.com/business-start/api/internal/domain"
)

const maxLandingBullets = 6

// LandingServiceDeps groups constructor parameters for the landing service.
type LandingServiceDeps struct {
	Snapshots SnapshotSource
	Logger    *zap.Logger
}

// LandingService resolves dedicated service and solution pages: CMS entities
// first, then the static fallback table.
type LandingService struct {
	snapshots SnapshotSource
	logger    *zap.Logger
}

// NewLandingService constructs the landing service.
func NewLandingService(deps LandingServiceDeps) *LandingService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LandingService{snapshots: deps.Snapshots, logger: logger}
}

// Resolve returns the landing record for the locale, kind, and slug, or nil
// when neither the CMS nor the fallback table knows the slug.
func (s *LandingService) Resolve(ctx context.Context, kind domain.LandingKind, locale domain.Locale, slug string) *domain.LandingRecord {
	var snapshot *domain.Snapshot
	if s.snapshots != nil {
		snapshot = s.snapshots.Snapshot(ctx)
	}
	if snapshot != nil {
		switch kind {
		case domain.LandingService:
			if record := resolveServiceLanding(snapshot.Services, locale, slug); record != nil {
				return record
			}
		case domain.LandingSolution:
			if record := resolveSolutionLanding(snapshot.Solutions, locale, slug); record != nil {
				return record
			}
		}
	}
	return catalog.FallbackLanding(kind, locale, slug)
}

func resolveServiceLanding(services []domain.Service, locale domain.Locale, slug string) *domain.LandingRecord {
	for _, service := range services {
		if service.Slug.ForLocale(locale) != slug {
			continue
		}
		title := service.Title.Pick(locale)
		description := service.FullDescription.Pick(locale)
		if description == "" {
			description = service.ShortDescription.Pick(locale)
		}
		bullets := domain.PickAll(service.Deliverables, locale)
		if len(bullets) > maxLandingBullets {
			bullets = bullets[:maxLandingBullets]
		}
		record := &domain.LandingRecord{
			ID:             service.ID,
			Kind:           domain.LandingService,
			Slug:           service.Slug.ForLocale(locale),
			AlternateSlug:  service.Slug.Alternate(locale),
			Title:          title,
			Description:    description,
			Bullets:        bullets,
			Price:          service.PriceFrom,
			SEOTitle:       title,
			SEODescription: description,
		}
		applyEntitySEO(record, service.SEO, locale)
		return record
	}
	return nil
}

func resolveSolutionLanding(solutions []domain.Solution, locale domain.Locale, slug string) *domain.LandingRecord {
	for _, solution := range solutions {
		if solution.Slug.ForLocale(locale) != slug {
			continue
		}
		title := solution.Title.Pick(locale)
		description := solution.Outcome.Pick(locale)
		if description == "" {
			description = solution.Problem.Pick(locale)
		}
		bullets := domain.PickAll(solution.IncludedItems, locale)
		if len(bullets) > maxLandingBullets {
			bullets = bullets[:maxLandingBullets]
		}
		record := &domain.LandingRecord{
			ID:             solution.ID,
			Kind:           domain.LandingSolution,
			Slug:           solution.Slug.ForLocale(locale),
			AlternateSlug:  solution.Slug.Alternate(locale),
			Title:          title,
			Description:    description,
			Bullets:        bullets,
			Price:          solution.PriceFrom,
			SEOTitle:       title,
			SEODescription: description,
		}
		applyEntitySEO(record, solution.SEO, locale)
		return record
	}
	return nil
}

func applyEntitySEO(record *domain.LandingRecord, seo *domain.EntitySEO, locale domain.Locale) {
	if seo == nil {
		return
	}
	if v := seo.Title.Pick(locale); v != "" {
		record.SEOTitle = v
	}
	if v := seo.Description.Pick(locale); v != "" {
		record.SEODescription = v
	}
	record.Noindex = seo.Noindex
	record.OgImage = seo.OgImage.URL()
}

// Params enumerates the {locale, slug} pairs for the kind. With CMS entities
// present, only slugs routable in both locales are emitted; otherwise the
// static table drives path generation.
func (s *LandingService) Params(ctx context.Context, kind domain.LandingKind) []domain.LandingParam {
	pairs := s.SlugPairs(ctx, kind)
	params := make([]domain.LandingParam, 0, len(pairs)*2)
	for _, pair := range pairs {
		params = append(params,
			domain.LandingParam{Locale: domain.LocaleHebrew, Kind: kind, Slug: pair.ForLocale(domain.LocaleHebrew)},
			domain.LandingParam{Locale: domain.LocaleEnglish, Kind: kind, Slug: pair.ForLocale(domain.LocaleEnglish)},
		)
	}
	return params
}

// SlugPairs lists the routable slug pairs of the kind, preferring live CMS
// entities and falling back to the static table. Entities missing either
// locale slug are excluded.
func (s *LandingService) SlugPairs(ctx context.Context, kind domain.LandingKind) []domain.SlugPair {
	var snapshot *domain.Snapshot
	if s.snapshots != nil {
		snapshot = s.snapshots.Snapshot(ctx)
	}
	if snapshot != nil {
		switch kind {
		case domain.LandingService:
			if len(snapshot.Services) > 0 {
				pairs := make([]domain.SlugPair, 0, len(snapshot.Services))
				for _, service := range snapshot.Services {
					if service.Slug.Routable() {
						pairs = append(pairs, service.Slug)
					}
				}
				return pairs
			}
		case domain.LandingSolution:
			if len(snapshot.Solutions) > 0 {
				pairs := make([]domain.SlugPair, 0, len(snapshot.Solutions))
				for _, solution := range snapshot.Solutions {
					if solution.Slug.Routable() {
						pairs = append(pairs, solution.Slug)
					}
				}
				return pairs
			}
		}
	}
	return catalog.FallbackLandingSlugs(kind)
}

// LocalePaths lists the dynamic site paths for the locale, for sitemap and
// prerender manifests.
func (s *LandingService) LocalePaths(ctx context.Context, locale domain.Locale) []string {
	var paths []string
	for _, param := range s.Params(ctx, domain.LandingService) {
		if param.Locale == locale {
			paths = append(paths, "/services/"+param.Slug)
		}
	}
	for _, param := range s.Params(ctx, domain.LandingSolution) {
		if param.Locale == locale {
			paths = append(paths, "/solutions/"+param.Slug)
		}
	}
	return paths
}

package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/business-start/api/internal/domain"
	"github.com/business-start/api/internal/platform/httpx"
	"github.com/business-start/api/internal/platform/requestctx"
	"github.com/business-start/api/internal/seo"
	"github.com/business-start/api/internal/services"
)

// SiteHandlers serves the crawler-facing site documents.
type SiteHandlers struct {
	baseURL string
	landing *services.LandingService
	clock   func() time.Time
}

// NewSiteHandlers builds the sitemap and robots endpoints.
func NewSiteHandlers(baseURL string, landing *services.LandingService, clock func() time.Time) *SiteHandlers {
	if clock == nil {
		clock = time.Now
	}
	return &SiteHandlers{baseURL: baseURL, landing: landing, clock: clock}
}

// Routes registers the site documents on the root router.
func (h *SiteHandlers) Routes(r chi.Router) {
	r.Get("/sitemap.xml", h.Sitemap)
	r.Get("/robots.txt", h.Robots)
}

// Sitemap enumerates every static page and routable landing page in both
// locales, with hreflang alternates.
func (h *SiteHandlers) Sitemap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := h.clock()

	entries := seo.StaticEntries(h.baseURL, now)
	for _, kind := range []domain.LandingKind{domain.LandingService, domain.LandingSolution} {
		entries = append(entries, h.landingEntries(r, kind, now)...)
	}

	body, err := seo.RenderSitemap(entries)
	if err != nil {
		requestctx.Logger(ctx).Error("sitemap render failed", zap.Error(err))
		httpx.WriteError(ctx, w, httpx.Internal("could not render sitemap"))
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *SiteHandlers) landingEntries(r *http.Request, kind domain.LandingKind, now time.Time) []seo.SitemapEntry {
	pairs := h.landing.SlugPairs(r.Context(), kind)
	entries := make([]seo.SitemapEntry, 0, len(pairs)*len(domain.SupportedLocales))
	for _, pair := range pairs {
		alternates := []seo.AlternateLink{
			{Hreflang: "he", Href: h.landingURL(kind, domain.LocaleHebrew, pair)},
			{Hreflang: "en", Href: h.landingURL(kind, domain.LocaleEnglish, pair)},
			{Hreflang: "x-default", Href: seo.LocaleURL(h.baseURL, domain.DefaultLocale, "")},
		}
		for _, locale := range domain.SupportedLocales {
			entries = append(entries, seo.SitemapEntry{
				Loc:        h.landingURL(kind, locale, pair),
				LastMod:    now,
				ChangeFreq: "weekly",
				Priority:   0.7,
				Alternates: alternates,
			})
		}
	}
	return entries
}

func (h *SiteHandlers) landingURL(kind domain.LandingKind, locale domain.Locale, pair domain.SlugPair) string {
	return seo.LocaleURL(h.baseURL, locale, "/"+kind.PathSegment()+"/"+pair.ForLocale(locale))
}

// Robots serves the crawl policy.
func (h *SiteHandlers) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(seo.Robots(h.baseURL)))
}

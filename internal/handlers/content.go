package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/business-start/api/internal/domain"
	"github.com/business-start/api/internal/platform/httpx"
	"github.com/business-start/api/internal/platform/requestctx"
	"github.com/business-start/api/internal/services"
)

// ContentHandlers serves the public resolved-content endpoints.
type ContentHandlers struct {
	content *services.ContentService
	landing *services.LandingService
}

// NewContentHandlers builds the public content endpoints.
func NewContentHandlers(content *services.ContentService, landing *services.LandingService) *ContentHandlers {
	return &ContentHandlers{content: content, landing: landing}
}

// Routes registers the content endpoints on the router group.
func (h *ContentHandlers) Routes(r chi.Router) {
	r.Get("/paths", h.Paths)
	r.Get("/{locale}", h.Messages)
	r.Get("/{locale}/landing/{kind}/{slug}", h.Landing)
}

// Messages returns the fully resolved message tree for the locale.
func (h *ContentHandlers) Messages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	localeParam := chi.URLParam(r, "locale")
	if !domain.IsLocale(localeParam) {
		httpx.WriteError(ctx, w, httpx.BadRequest(fmt.Sprintf("unsupported locale %q", localeParam)))
		return
	}
	locale := domain.Locale(localeParam)
	requestctx.SetLocale(ctx, locale)

	httpx.WriteJSON(ctx, w, http.StatusOK, map[string]any{
		"locale":   locale,
		"dir":      locale.Direction(),
		"messages": h.content.Resolve(ctx, locale),
	})
}

// Landing returns the landing record for a service or solution slug.
func (h *ContentHandlers) Landing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	localeParam := chi.URLParam(r, "locale")
	if !domain.IsLocale(localeParam) {
		httpx.WriteError(ctx, w, httpx.BadRequest(fmt.Sprintf("unsupported locale %q", localeParam)))
		return
	}
	locale := domain.Locale(localeParam)
	requestctx.SetLocale(ctx, locale)

	kind, ok := landingKindFromPath(chi.URLParam(r, "kind"))
	if !ok {
		httpx.WriteError(ctx, w, httpx.BadRequest(fmt.Sprintf("unsupported landing kind %q", chi.URLParam(r, "kind"))))
		return
	}

	slug := chi.URLParam(r, "slug")
	record := h.landing.Resolve(ctx, kind, locale, slug)
	if record == nil {
		httpx.WriteError(ctx, w, httpx.NotFound("landing page not found"))
		return
	}

	alternate := locale.Alternate()
	httpx.WriteJSON(ctx, w, http.StatusOK, map[string]any{
		"locale": locale,
		"record": record,
		"alternate": map[string]any{
			"locale": alternate,
			"slug":   record.AlternateSlug,
			"path":   fmt.Sprintf("/%s/%s/%s", alternate, kind.PathSegment(), record.AlternateSlug),
		},
	})
}

// Paths enumerates the routable landing paths for prerendering, both kinds in
// both locales.
func (h *ContentHandlers) Paths(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	services := h.landing.Params(ctx, domain.LandingService)
	solutions := h.landing.Params(ctx, domain.LandingSolution)

	httpx.WriteJSON(ctx, w, http.StatusOK, map[string]any{
		"services":  services,
		"solutions": solutions,
	})
}

func landingKindFromPath(segment string) (domain.LandingKind, bool) {
	switch segment {
	case "services", string(domain.LandingService):
		return domain.LandingService, true
	case "solutions", string(domain.LandingSolution):
		return domain.LandingSolution, true
	}
	return "", false
}

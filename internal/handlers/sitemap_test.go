package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/business-start/api/internal/services"
)

func newSiteRouter(t *testing.T) chi.Router {
	t.Helper()

	landing := services.NewLandingService(services.LandingServiceDeps{})
	clock := func() time.Time { return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC) }
	h := NewSiteHandlers("https://example.com", landing, clock)
	return NewRouter(WithSiteRoutes(h.Routes))
}

func TestSitemap(t *testing.T) {
	router := newSiteRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); !strings.HasPrefix(got, "application/xml") {
		t.Fatalf("unexpected content type %q", got)
	}

	body := rr.Body.String()
	for _, fragment := range []string{
		"<loc>https://example.com/he</loc>",
		"<loc>https://example.com/en/pricing</loc>",
		"<loc>https://example.com/he/services/food-photography</loc>",
		"<loc>https://example.com/en/solutions/qr-menu</loc>",
		`hreflang="x-default" href="https://example.com/he"`,
		"<lastmod>2026-08-01</lastmod>",
	} {
		if !strings.Contains(body, fragment) {
			t.Fatalf("sitemap missing %q", fragment)
		}
	}
}

func TestRobots(t *testing.T) {
	router := newSiteRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/robots.txt", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Disallow: /api/") {
		t.Fatalf("robots.txt missing API disallow:\n%s", body)
	}
	if !strings.Contains(body, "Sitemap: https://example.com/sitemap.xml") {
		t.Fatalf("robots.txt missing sitemap line:\n%s", body)
	}
}

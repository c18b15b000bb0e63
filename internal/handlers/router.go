package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/business-start/api/internal/platform/httpx"
	"github.com/business-start/api/internal/services"
)

// RouteRegistrar registers a set of routes against the provided router.
type RouteRegistrar func(r chi.Router)

type routerConfig struct {
	middlewares []func(http.Handler) http.Handler
	health      *HealthHandlers

	content RouteRegistrar
	leads   RouteRegistrar
	studio  RouteRegistrar
	site    RouteRegistrar
}

// Option customises the router configuration before construction.
type Option func(*routerConfig)

const (
	apiPrefix      = "/api"
	defaultTimeout = 60 * time.Second
)

// NewRouter constructs the chi router with shared middleware and the expected
// route groups.
func NewRouter(opts ...Option) chi.Router {
	cfg := routerConfig{
		middlewares: []func(http.Handler) http.Handler{
			middleware.RequestID,
			middleware.RealIP,
			middleware.Timeout(defaultTimeout),
			snapshotCacheMiddleware,
		},
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	r := chi.NewRouter()

	if cfg.health == nil {
		cfg.health = NewHealthHandlers()
	}

	for _, mw := range cfg.middlewares {
		if mw != nil {
			r.Use(mw)
		}
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		httpx.WriteError(req.Context(), w, httpx.NewError("route_not_found", fmt.Sprintf("no route for %s", req.URL.Path), http.StatusNotFound))
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		httpx.WriteError(req.Context(), w, httpx.NewError("method_not_allowed", fmt.Sprintf("method %s not allowed on %s", req.Method, req.URL.Path), http.StatusMethodNotAllowed))
	})

	r.Get("/healthz", cfg.health.Healthz)
	r.Get("/readyz", cfg.health.Readyz)

	if cfg.site != nil {
		cfg.site(r)
	}

	r.Route(apiPrefix, func(api chi.Router) {
		mount := func(path string, registrar RouteRegistrar, name string) {
			api.Route(path, func(group chi.Router) {
				if registrar != nil {
					registrar(group)
					return
				}
				registerNotImplemented(group, name)
			})
		}

		mount("/content", cfg.content, "content")
		mount("/leads", cfg.leads, "leads")
		mount("/startstudio", cfg.studio, "startstudio")
	})

	return r
}

// WithMiddlewares appends additional global middleware to the router.
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(cfg *routerConfig) {
		cfg.middlewares = append(cfg.middlewares, mw...)
	}
}

// WithHealthHandlers overrides the handlers used for /healthz and /readyz.
func WithHealthHandlers(h *HealthHandlers) Option {
	return func(cfg *routerConfig) {
		cfg.health = h
	}
}

// WithContentRoutes configures the registrar for public content endpoints.
func WithContentRoutes(reg RouteRegistrar) Option {
	return func(cfg *routerConfig) {
		cfg.content = reg
	}
}

// WithLeadRoutes configures the registrar for the lead intake endpoint.
func WithLeadRoutes(reg RouteRegistrar) Option {
	return func(cfg *routerConfig) {
		cfg.leads = reg
	}
}

// WithStudioRoutes configures the registrar for the admin studio endpoints.
func WithStudioRoutes(reg RouteRegistrar) Option {
	return func(cfg *routerConfig) {
		cfg.studio = reg
	}
}

// WithSiteRoutes configures the registrar for root-level site documents
// (sitemap.xml, robots.txt).
func WithSiteRoutes(reg RouteRegistrar) Option {
	return func(cfg *routerConfig) {
		cfg.site = reg
	}
}

// snapshotCacheMiddleware arms the per-request CMS snapshot memo so every
// resolver call in one request shares a single fetch.
func snapshotCacheMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(services.WithSnapshotCache(r.Context())))
	})
}

func registerNotImplemented(r chi.Router, name string) {
	handler := func(w http.ResponseWriter, req *http.Request) {
		httpx.WriteError(req.Context(), w, httpx.NewError("not_implemented", fmt.Sprintf("%s routes not implemented", name), http.StatusNotImplemented))
	}
	r.HandleFunc("/*", handler)
	r.HandleFunc("/", handler)
	r.NotFound(handler)
	r.MethodNotAllowed(handler)
}

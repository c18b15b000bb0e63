// Package auth guards the admin panel endpoints with a shared header key.
package auth

import (
	"crypto/hmac"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/business-start/api/internal/platform/httpx"
	"github.com/business-start/api/internal/platform/requestctx"
)

// AdminKeyHeader carries the shared admin credential.
const AdminKeyHeader = "x-startstudio-key"

// AdminKeyGuard validates the admin header against a configured secret.
// With no secret configured the guard is open: local and preview
// environments run the panel without a credential.
type AdminKeyGuard struct {
	secret string
}

// NewAdminKeyGuard constructs the guard. An empty secret disables enforcement.
func NewAdminKeyGuard(secret string) *AdminKeyGuard {
	return &AdminKeyGuard{secret: strings.TrimSpace(secret)}
}

// Enforced reports whether a credential is required.
func (g *AdminKeyGuard) Enforced() bool { return g.secret != "" }

// Authorized reports whether the request may reach admin endpoints.
func (g *AdminKeyGuard) Authorized(r *http.Request) bool {
	if g.secret == "" {
		return true
	}
	provided := r.Header.Get(AdminKeyHeader)
	return hmac.Equal([]byte(provided), []byte(g.secret))
}

// Middleware rejects unauthorized requests with the JSON error envelope.
func (g *AdminKeyGuard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.Authorized(r) {
			requestctx.Logger(r.Context()).Warn("admin request rejected",
				zap.String("path", r.URL.Path))
			httpx.WriteError(r.Context(), w, httpx.Unauthorized("unauthorized"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

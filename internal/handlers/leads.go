package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/business-start/api/internal/domain"
	"github.com/business-start/api/internal/platform/httpx"
	"github.com/business-start/api/internal/platform/requestctx"
	"github.com/business-start/api/internal/services"
)

const (
	leadRateLimit  = 10
	leadRateWindow = time.Minute
	maxLeadBody    = 64 << 10
)

// LeadHandlers serves the public lead intake endpoint.
type LeadHandlers struct {
	leads    *services.LeadService
	throttle *leadThrottle
}

// NewLeadHandlers builds the lead intake endpoint with per-IP rate limiting.
func NewLeadHandlers(leads *services.LeadService) *LeadHandlers {
	return &LeadHandlers{
		leads:    leads,
		throttle: newLeadThrottle(leadRateLimit, leadRateWindow, time.Now),
	}
}

// Routes registers the lead endpoint on the router group.
func (h *LeadHandlers) Routes(r chi.Router) {
	r.Post("/", h.Submit)
}

// Submit accepts one contact-form submission.
func (h *LeadHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.throttle.Allow(r.RemoteAddr) {
		httpx.WriteError(ctx, w, httpx.NewError("rate_limited", "too many submissions, try again shortly", http.StatusTooManyRequests))
		return
	}

	var input services.LeadInput
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLeadBody))
	if err := decoder.Decode(&input); err != nil {
		httpx.WriteError(ctx, w, httpx.BadRequest("invalid payload"))
		return
	}

	outcome, err := h.leads.Submit(ctx, input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidLead) {
			httpx.WriteError(ctx, w, httpx.BadRequest("missing required fields"))
			return
		}
		requestctx.Logger(ctx).Error("lead persistence failed", zap.Error(err))
		httpx.WriteError(ctx, w, httpx.Internal("could not store lead"))
		return
	}

	status := http.StatusCreated
	if outcome == domain.LeadSkippedNoToken {
		status = http.StatusAccepted
	}
	httpx.WriteJSON(ctx, w, status, map[string]any{
		"ok":     true,
		"stored": outcome,
	})
}

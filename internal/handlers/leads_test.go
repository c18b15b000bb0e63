package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/business-start/api/internal/domain"
	"github.com/business-start/api/internal/services"
)

type stubLeadWriter struct {
	canWrite bool
	err      error
	leads    []domain.Lead
}

func (s *stubLeadWriter) CanWrite() bool { return s.canWrite }

func (s *stubLeadWriter) CreateLead(_ context.Context, lead domain.Lead) error {
	if s.err != nil {
		return s.err
	}
	s.leads = append(s.leads, lead)
	return nil
}

func newLeadRouter(writer *stubLeadWriter) chi.Router {
	svc := services.NewLeadService(services.LeadServiceDeps{Writer: writer})
	h := NewLeadHandlers(svc)
	return NewRouter(WithLeadRoutes(h.Routes))
}

func postLead(router chi.Router, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestLeadSubmitStored(t *testing.T) {
	writer := &stubLeadWriter{canWrite: true}
	router := newLeadRouter(writer)

	rr := postLead(router, `{"name":"Dana","phone":"0501234567","message":"hi","locale":"en","sourcePath":"/en/contact"}`)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body["ok"] != true || body["stored"] != "sanity" {
		t.Fatalf("unexpected body: %v", body)
	}
	if len(writer.leads) != 1 {
		t.Fatalf("expected one stored lead, got %d", len(writer.leads))
	}
	if writer.leads[0].SourcePath != "/en/contact" {
		t.Fatalf("unexpected sourcePath %q", writer.leads[0].SourcePath)
	}
}

func TestLeadSubmitSkippedWithoutToken(t *testing.T) {
	router := newLeadRouter(&stubLeadWriter{canWrite: false})

	rr := postLead(router, `{"name":"Dana","phone":"0501234567","message":"hi"}`)

	if rr.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rr.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body["stored"] != "skipped_no_write_token" {
		t.Fatalf("unexpected stored marker: %v", body["stored"])
	}
}

func TestLeadSubmitInvalidJSON(t *testing.T) {
	router := newLeadRouter(&stubLeadWriter{canWrite: true})

	rr := postLead(router, `{"name":`)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestLeadSubmitMissingFields(t *testing.T) {
	router := newLeadRouter(&stubLeadWriter{canWrite: true})

	rr := postLead(router, `{"name":"Dana","phone":"","message":"hi"}`)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestLeadSubmitPersistenceFailure(t *testing.T) {
	router := newLeadRouter(&stubLeadWriter{canWrite: true, err: errors.New("sanity down")})

	rr := postLead(router, `{"name":"Dana","phone":"0501234567","message":"hi"}`)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
}

func TestLeadSubmitRateLimited(t *testing.T) {
	router := newLeadRouter(&stubLeadWriter{canWrite: true})

	payload := `{"name":"Dana","phone":"0501234567","message":"hi"}`
	for i := 0; i < leadRateLimit; i++ {
		if rr := postLead(router, payload); rr.Code != http.StatusCreated {
			t.Fatalf("request %d: expected 201, got %d", i, rr.Code)
		}
	}

	rr := postLead(router, payload)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after %d submissions, got %d", leadRateLimit, rr.Code)
	}
}

func TestLeadThrottleWindowReset(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	throttle := newLeadThrottle(2, time.Minute, func() time.Time { return now })

	if !throttle.Allow("1.2.3.4") || !throttle.Allow("1.2.3.4") {
		t.Fatal("submissions within the limit should pass")
	}
	if throttle.Allow("1.2.3.4") {
		t.Fatal("expected third submission in the window to be blocked")
	}
	if !throttle.Allow("5.6.7.8") {
		t.Fatal("other submitters must not share the window")
	}

	now = now.Add(time.Minute + time.Second)
	if !throttle.Allow("1.2.3.4") {
		t.Fatal("expected a fresh window after the reset time")
	}
}

func TestLeadThrottleDisabled(t *testing.T) {
	if throttle := newLeadThrottle(0, time.Minute, nil); throttle != nil {
		t.Fatal("zero limit should disable throttling")
	}
	var disabled *leadThrottle
	if !disabled.Allow("1.2.3.4") {
		t.Fatal("nil throttle must allow everything")
	}
}

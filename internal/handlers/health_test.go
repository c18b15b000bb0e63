package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHealthzPayload(t *testing.T) {
	start := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	now := start
	handlers := NewHealthHandlers(WithHealthClock(func() time.Time { return now }))
	now = start.Add(90 * time.Second)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	handlers.Healthz(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("expected status ok, got %v", body["status"])
	}
	if body["uptime"] != "1m30s" {
		t.Fatalf("expected uptime 1m30s, got %v", body["uptime"])
	}
	if body["timestamp"] != "2026-08-01T12:01:30Z" {
		t.Fatalf("unexpected timestamp %v", body["timestamp"])
	}
}

func TestReadyzAllChecksPass(t *testing.T) {
	handlers := NewHealthHandlers(
		WithReadinessCheck("catalog", func(context.Context) error { return nil }),
		WithReadinessCheck("blob", func(context.Context) error { return nil }),
	)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rr := httptest.NewRecorder()
	handlers.Readyz(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.Status != "ok" {
		t.Fatalf("expected status ok, got %s", body.Status)
	}
	if body.Checks["catalog"] != "ok" || body.Checks["blob"] != "ok" {
		t.Fatalf("unexpected checks: %v", body.Checks)
	}
}

func TestReadyzFailingCheckReturns503(t *testing.T) {
	handlers := NewHealthHandlers(
		WithReadinessCheck("catalog", func(context.Context) error { return nil }),
		WithReadinessCheck("blob", func(context.Context) error { return errors.New("bucket unreachable") }),
	)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rr := httptest.NewRecorder()
	handlers.Readyz(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
	var body struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.Status != "degraded" {
		t.Fatalf("expected status degraded, got %s", body.Status)
	}
	if body.Checks["blob"] != "bucket unreachable" {
		t.Fatalf("expected failure message, got %q", body.Checks["blob"])
	}
}

package handlers

import (
	"strings"
	"sync"
	"time"
)

// leadThrottle caps contact-form submissions per source address over a fixed
// window. State is in-memory, so multi-instance deployments throttle per
// instance; that is acceptable for a contact form.
type leadThrottle struct {
	limit  int
	window time.Duration
	clock  func() time.Time

	mu      sync.Mutex
	windows map[string]submissionWindow
}

type submissionWindow struct {
	count   int
	resetAt time.Time
}

func newLeadThrottle(limit int, window time.Duration, clock func() time.Time) *leadThrottle {
	if limit <= 0 || window <= 0 {
		return nil
	}
	if clock == nil {
		clock = time.Now
	}
	return &leadThrottle{
		limit:   limit,
		window:  window,
		clock:   clock,
		windows: make(map[string]submissionWindow),
	}
}

// Allow reports whether the submitter may post another lead in the current
// window. Expired windows are pruned on each fresh window start.
func (t *leadThrottle) Allow(submitter string) bool {
	if t == nil {
		return true
	}
	submitter = strings.TrimSpace(submitter)
	if submitter == "" {
		submitter = "unknown"
	}
	now := t.clock()
	t.mu.Lock()
	defer t.mu.Unlock()

	win, ok := t.windows[submitter]
	if !ok || now.After(win.resetAt) {
		t.windows[submitter] = submissionWindow{count: 1, resetAt: now.Add(t.window)}
		for key, w := range t.windows {
			if now.After(w.resetAt) {
				delete(t.windows, key)
			}
		}
		return true
	}

	if win.count >= t.limit {
		return false
	}
	win.count++
	t.windows[submitter] = win
	return true
}

// Package ratelimit provides a per-session sliding-window call budget for
// the validation entry points.
package ratelimit

import (
	"sync"
	"time"
)

// Config holds the limiter's window parameters.
type Config struct {
	MaxCalls int
	Window   time.Duration
}

// DefaultConfig returns the standard budget: 10 calls per 60-second window.
func DefaultConfig() Config {
	return Config{MaxCalls: 10, Window: 60 * time.Second}
}

// Limiter tracks call timestamps per session id. Each session's window is
// an independently lockable unit, so sessions never block each other.
type Limiter struct {
	cfg Config
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]*sessionWindow
}

type sessionWindow struct {
	mu    sync.Mutex
	calls []time.Time
}

// New creates a Limiter with the given config.
func New(cfg Config) *Limiter {
	return &Limiter{
		cfg:      cfg,
		now:      time.Now,
		sessions: make(map[string]*sessionWindow),
	}
}

// SetClock overrides the limiter's time source. Intended for tests that
// need to simulate elapsed time without sleeping.
func (l *Limiter) SetClock(now func() time.Time) {
	l.now = now
}

// IsAllowed prunes the session's timestamps to the trailing window, then
// allows and records the call only if the budget has room. A rejected call
// is not recorded.
func (l *Limiter) IsAllowed(sessionID string) bool {
	now := l.now()
	sw := l.session(sessionID)

	sw.mu.Lock()
	defer sw.mu.Unlock()

	kept := sw.calls[:0]
	for _, t := range sw.calls {
		if now.Sub(t) < l.cfg.Window {
			kept = append(kept, t)
		}
	}
	sw.calls = kept

	if len(sw.calls) >= l.cfg.MaxCalls {
		return false
	}

	sw.calls = append(sw.calls, now)
	return true
}

// session returns the window for sessionID, creating it if needed. Only the
// map lookup holds the limiter-wide lock; the per-session lock serializes
// the actual window updates.
func (l *Limiter) session(sessionID string) *sessionWindow {
	l.mu.Lock()
	defer l.mu.Unlock()

	sw, ok := l.sessions[sessionID]
	if !ok {
		sw = &sessionWindow{}
		l.sessions[sessionID] = sw
	}
	return sw
}

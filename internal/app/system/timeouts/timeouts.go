// Package timeouts provides centralized timeout values for Garden API calls
// and local I/O.
//
// Timeouts can be configured at startup using Configure(). If not configured,
// the defaults below are used.
//
//   - Health: health checks (Mongo ping, Garden /health, admin server check)
//   - Fetch: GET requests that load a dashboard panel
//   - Action: POSTs that change state on the Garden server, and Mongo writes
//   - Report: report generation, which renders a PDF server-side
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultHealth = 2 * time.Second
	DefaultFetch  = 10 * time.Second
	DefaultAction = 15 * time.Second
	DefaultReport = 60 * time.Second
)

var mu sync.RWMutex

var (
	health = DefaultHealth
	fetch  = DefaultFetch
	action = DefaultAction
	report = DefaultReport
)

// Health returns the timeout for health checks.
func Health() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return health
}

// Fetch returns the timeout for loading a panel.
func Fetch() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return fetch
}

// Action returns the timeout for state-changing requests.
func Action() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return action
}

// Report returns the timeout for report downloads.
func Report() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return report
}

// Config holds timeout configuration values.
// Zero values are ignored (defaults are kept).
type Config struct {
	Health time.Duration
	Fetch  time.Duration
	Action time.Duration
	Report time.Duration
}

// Configure sets custom timeout values. Zero values are ignored.
// Call during startup before handlers are registered.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Health > 0 {
		health = cfg.Health
	}
	if cfg.Fetch > 0 {
		fetch = cfg.Fetch
	}
	if cfg.Action > 0 {
		action = cfg.Action
	}
	if cfg.Report > 0 {
		report = cfg.Report
	}
}

// Reset restores all timeouts to their default values.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	health = DefaultHealth
	fetch = DefaultFetch
	action = DefaultAction
	report = DefaultReport
}

// Current returns the current timeout configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{
		Health: health,
		Fetch:  fetch,
		Action: action,
		Report: report,
	}
}

// WithTimeout creates a context with timeout and returns a cancel function that
// logs a warning if the deadline was exceeded.
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Report(), h.Log, "generate report")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}

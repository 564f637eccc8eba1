// Package autorefresh runs a board refresh on a fixed interval.
//
// A Controller owns at most one ticker goroutine. Enable and Disable are
// idempotent; Disable waits for the goroutine to exit, so no tick starts
// after it returns. A tick that is still running when the user asks for a
// manual refresh simply overlaps with it.
package autorefresh

import (
	"context"
	"sync"
	"time"

	"github.com/dalemusser/gardenadmin/internal/app/system/apimetrics"
	"go.uber.org/zap"
)

// Interval bounds and default.
const (
	DefaultInterval = 30 * time.Second
	MinInterval     = 5 * time.Second
	MaxInterval     = time.Hour
)

// Refresher is refreshed on every tick.
type Refresher interface {
	Refresh(ctx context.Context)
}

// Options configures a Controller. Zero values take the package defaults.
type Options struct {
	Interval time.Duration
	Min      time.Duration
	Max      time.Duration
	Logger   *zap.Logger
	Metrics  *apimetrics.Recorder
}

// Controller turns periodic refresh on and off.
type Controller struct {
	target  Refresher
	log     *zap.Logger
	metrics *apimetrics.Recorder
	min     time.Duration
	max     time.Duration

	mu       sync.Mutex
	interval time.Duration
	cancel   context.CancelFunc
	doneCh   chan struct{}
}

// New creates a disabled Controller.
func New(target Refresher, opts Options) *Controller {
	c := &Controller{
		target:  target,
		log:     opts.Logger,
		metrics: opts.Metrics,
		min:     opts.Min,
		max:     opts.Max,
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	if c.min <= 0 {
		c.min = MinInterval
	}
	if c.max <= 0 {
		c.max = MaxInterval
	}
	c.interval = c.clamp(opts.Interval)
	return c
}

// clamp maps d into [min, max]; non-positive d means DefaultInterval.
func (c *Controller) clamp(d time.Duration) time.Duration {
	if d <= 0 {
		d = DefaultInterval
	}
	if d < c.min {
		return c.min
	}
	if d > c.max {
		return c.max
	}
	return d
}

// Enabled reports whether the ticker is running.
func (c *Controller) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancel != nil
}

// Interval returns the current tick interval.
func (c *Controller) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interval
}

// Enable starts ticking every interval. A non-positive interval keeps the
// current one. Calling Enable while enabled only changes the interval.
func (c *Controller) Enable(interval time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if interval > 0 {
		interval = c.clamp(interval)
	} else {
		interval = c.interval
	}

	if c.cancel != nil {
		if interval == c.interval {
			return
		}
		c.stopLocked()
	}
	c.interval = interval
	c.startLocked()
}

// Disable stops ticking and waits for the ticker goroutine to exit.
func (c *Controller) Disable() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel == nil {
		return
	}
	c.stopLocked()
	c.log.Info("auto-refresh disabled")
}

// Toggle flips the enabled state and returns the new state.
func (c *Controller) Toggle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.stopLocked()
		c.log.Info("auto-refresh disabled")
		return false
	}
	c.startLocked()
	return true
}

// SetInterval changes the interval, restarting the ticker when enabled.
func (c *Controller) SetInterval(interval time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	interval = c.clamp(interval)
	if interval == c.interval {
		return
	}
	c.interval = interval
	if c.cancel != nil {
		c.stopLocked()
		c.startLocked()
	}
}

func (c *Controller) startLocked() {
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.doneCh = make(chan struct{})
	go c.run(ctx, c.interval, c.doneCh)
	c.log.Info("auto-refresh enabled", zap.Duration("interval", c.interval))
}

func (c *Controller) stopLocked() {
	// Cancel before waiting so an in-flight tick aborts.
	c.cancel()
	<-c.doneCh
	c.cancel = nil
	c.doneCh = nil
}

func (c *Controller) run(ctx context.Context, interval time.Duration, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.tick(ctx)
		}
	}
}

func (c *Controller) tick(ctx context.Context) {
	c.metrics.RefreshTick()
	start := time.Now()
	c.target.Refresh(ctx)
	c.log.Debug("auto-refresh tick", zap.Duration("elapsed", time.Since(start)))
}

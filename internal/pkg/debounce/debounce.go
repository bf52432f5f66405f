// Package debounce coalesces bursts of saves into one trailing call per key
package debounce

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultDelay is the quiet period before a scheduled call runs
const DefaultDelay = time.Second

// Func is a deferred save
type Func func(ctx context.Context) error

// Config configures a Debouncer
type Config struct {
	// Delay after the last Schedule before the call runs (optional, defaults to 1s)
	Delay time.Duration
	// OnError receives failures of timer-driven calls (optional, logs by default)
	OnError func(key string, err error)
}

// Validate sets defaults for unset fields.
func (cfg *Config) Validate() error {
	if cfg.Delay <= 0 {
		cfg.Delay = DefaultDelay
	}
	if cfg.OnError == nil {
		cfg.OnError = func(key string, err error) {
			slog.Error("debounced call failed", "key", key, "error", err)
		}
	}
	return nil
}

type entry struct {
	gen   uint64
	timer *time.Timer
	fn    Func
}

// Debouncer keeps at most one pending call per key. Scheduling again before
// the delay elapses replaces the call and restarts the wait.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	onError func(string, error)
	gen     uint64
	pending map[string]*entry
}

// New creates a Debouncer
func New(cfg *Config) *Debouncer {
	if cfg == nil {
		cfg = &Config{}
	}
	_ = cfg.Validate()

	return &Debouncer{
		delay:   cfg.Delay,
		onError: cfg.OnError,
		pending: make(map[string]*entry),
	}
}

// Schedule queues fn under key, replacing any call still waiting there
func (d *Debouncer) Schedule(key string, fn Func) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if e, ok := d.pending[key]; ok {
		e.timer.Stop()
	}

	d.gen++
	gen := d.gen
	e := &entry{gen: gen, fn: fn}
	e.timer = time.AfterFunc(d.delay, func() { d.fire(key, gen) })
	d.pending[key] = e
}

func (d *Debouncer) fire(key string, gen uint64) {
	d.mu.Lock()
	e, ok := d.pending[key]
	if !ok || e.gen != gen {
		d.mu.Unlock()
		return
	}
	delete(d.pending, key)
	d.mu.Unlock()

	if err := e.fn(context.Background()); err != nil {
		d.onError(key, err)
	}
}

// Cancel drops the call waiting under key, if any. It reports whether one was dropped.
func (d *Debouncer) Cancel(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, ok := d.pending[key]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(d.pending, key)
	return true
}

// Pending reports how many calls are waiting
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// take removes every waiting call and stops its timer
func (d *Debouncer) take() map[string]Func {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make(map[string]Func, len(d.pending))
	for key, e := range d.pending {
		e.timer.Stop()
		out[key] = e.fn
	}
	d.pending = make(map[string]*entry)
	return out
}

// Flush runs every waiting call now, concurrently, and returns the first error
func (d *Debouncer) Flush(ctx context.Context) error {
	calls := d.take()
	if len(calls) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for key, fn := range calls {
		g.Go(func() error {
			if err := fn(gctx); err != nil {
				slog.Warn("flushed call failed", "key", key, "error", err)
				return err
			}
			return nil
		})
	}
	return g.Wait()
}

// Stop drops every waiting call without running it
func (d *Debouncer) Stop() {
	_ = d.take()
}

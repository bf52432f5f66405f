// Package notify carries user-facing messages out of the orchestrators.
package notify

import (
	"context"
	"log/slog"
	"sync"
)

// Level is the severity of a notification
type Level string

// Notification levels
const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is one message for the user
type Notification struct {
	Level   Level
	Message string
}

// Notifier receives notifications. Implementations must not block.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Func adapts a plain function to a Notifier
type Func func(ctx context.Context, n Notification)

// Notify calls f
func (f Func) Notify(ctx context.Context, n Notification) {
	f(ctx, n)
}

// Slog writes notifications to the default logger
type Slog struct{}

// Notify logs n at a level matching its severity
func (Slog) Notify(ctx context.Context, n Notification) {
	level := slog.LevelInfo
	switch n.Level {
	case LevelWarning:
		level = slog.LevelWarn
	case LevelError:
		level = slog.LevelError
	}
	slog.Log(ctx, level, n.Message, "notification", string(n.Level))
}

// Recorder keeps every notification, for tests
type Recorder struct {
	mu  sync.Mutex
	all []Notification
}

// Notify records n
func (r *Recorder) Notify(_ context.Context, n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.all = append(r.all, n)
}

// All returns the recorded notifications in order
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.all...)
}

// Last returns the most recent notification
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.all) == 0 {
		return Notification{}, false
	}
	return r.all[len(r.all)-1], true
}

// Reset drops everything recorded so far
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.all = nil
}

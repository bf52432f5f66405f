// Package rules implements the character build rules as pure functions over
// draft values. Nothing here performs I/O; every operation returns a new value
// and leaves its inputs untouched.
package rules

import (
	"github.com/KirkDiggler/echosheet/internal/ruleset"
)

// Engine evaluates build rules against a ruleset
type Engine struct {
	rs *ruleset.Ruleset
}

// New returns an engine over rs, or over the embedded tables when rs is nil
func New(rs *ruleset.Ruleset) *Engine {
	if rs == nil {
		rs = ruleset.Default()
	}
	return &Engine{rs: rs}
}

// Ruleset exposes the tables the engine reads
func (e *Engine) Ruleset() *ruleset.Ruleset {
	return e.rs
}

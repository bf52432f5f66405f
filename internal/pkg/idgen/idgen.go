// Package idgen provides ID generation utilities
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// UUIDGenerator generates random UUIDs with an optional prefix
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a UUID generator. Drafts use the "draft" prefix; autofill
// request tokens use none.
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate creates a new UUID-based ID
func (g *UUIDGenerator) Generate() string {
	id := uuid.NewString()
	if g.prefix != "" {
		return fmt.Sprintf("%s_%s", g.prefix, id)
	}
	return id
}

// SequentialGenerator yields predictable IDs for tests
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate creates a new sequential ID
func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s_%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}

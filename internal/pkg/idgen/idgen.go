// Package idgen provides ID generation utilities
package idgen

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/KirkDiggler/quest-chronicles/internal/pkg/clock"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// SequentialGenerator generates sequential IDs for testing
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

// UUIDGenerator generates UUIDs with optional prefix
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a new UUID generator with optional prefix
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate creates a new UUID-based ID
func (g *UUIDGenerator) Generate() string {
	id := uuid.New().String()
	if g.prefix != "" {
		return fmt.Sprintf("%s_%s", g.prefix, id)
	}
	return id
}

// ULIDGenerator generates lexically sortable IDs, so later saves sort after
// earlier ones.
type ULIDGenerator struct {
	clock clock.Clock

	mu      sync.Mutex
	entropy io.Reader
}

// NewULID creates a ULID generator. A nil clock uses the real clock.
func NewULID(c clock.Clock) *ULIDGenerator {
	if c == nil {
		c = clock.New()
	}
	return &ULIDGenerator{
		clock:   c,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(c.Now().UnixNano())), 0), // #nosec G404
	}
}

// Generate creates a new ULID
func (g *ULIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(g.clock.Now()), g.entropy).String()
}

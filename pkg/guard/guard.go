// Package guard keeps the organizer from being re-run on a file while it is
// being organized, during a short cooldown afterwards, and on content it
// wrote itself.
package guard

import (
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Guard tracks re-entrancy state per key, typically a file path
type Guard struct {
	mu       sync.Mutex
	cooldown time.Duration
	held     map[string]bool
	produced map[string]uint64
}

// New creates a Guard that keeps a key held for cooldown after it is released
func New(cooldown time.Duration) *Guard {
	return &Guard{
		cooldown: cooldown,
		held:     make(map[string]bool),
		produced: make(map[string]uint64),
	}
}

// Acquire marks key as held. It returns false when key is already held or
// when content is exactly what the caller last wrote for key.
func (g *Guard) Acquire(key string, content []byte) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.held[key] {
		return false
	}
	if sum, ok := g.produced[key]; ok && sum == xxhash.Sum64(content) {
		return false
	}
	g.held[key] = true
	return true
}

// Release records produced as the content written for key, if any, and
// frees key once the cooldown has passed
func (g *Guard) Release(key string, produced []byte) {
	g.mu.Lock()
	if produced != nil {
		g.produced[key] = xxhash.Sum64(produced)
	}
	g.mu.Unlock()

	if g.cooldown <= 0 {
		g.free(key)
		return
	}
	time.AfterFunc(g.cooldown, func() { g.free(key) })
}

// Held reports whether key is currently held
func (g *Guard) Held(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.held[key]
}

// Forget drops everything known about key
func (g *Guard) Forget(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.held, key)
	delete(g.produced, key)
}

func (g *Guard) free(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.held, key)
}

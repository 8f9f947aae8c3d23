package cache

import (
	"sync"
	"time"
)

// ProcessingGuard is an in-memory set of recently claimed keys with
// expiration. The webhook pipeline claims a meeting id before processing so
// rapid duplicate deliveries of the same notification are absorbed in
// process, before any provider call is made.
type ProcessingGuard struct {
	mu    sync.Mutex
	items map[string]time.Time
}

// NewProcessingGuard creates a new guard
func NewProcessingGuard() *ProcessingGuard {
	guard := &ProcessingGuard{
		items: make(map[string]time.Time),
	}

	// Cleanup goroutine to remove expired claims
	go guard.cleanupExpired()

	return guard
}

// TryClaim claims key for ttl. It returns false when the key is already
// held by an unexpired claim.
func (g *ProcessingGuard) TryClaim(key string, ttl time.Duration) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if expiry, exists := g.items[key]; exists && time.Now().Before(expiry) {
		return false
	}
	g.items[key] = time.Now().Add(ttl)
	return true
}

// Release drops the claim so a retry can reclaim the key immediately.
func (g *ProcessingGuard) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.items, key)
}

// cleanupExpired periodically removes expired claims
func (g *ProcessingGuard) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		g.mu.Lock()
		now := time.Now()
		for key, expiry := range g.items {
			if now.After(expiry) {
				delete(g.items, key)
			}
		}
		g.mu.Unlock()
	}
}

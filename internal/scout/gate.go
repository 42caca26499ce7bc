package scout

import (
	"sync"
	"sync/atomic"

	"coffee-scout/internal/metrics"
)

// LatestGate admits sequence numbers in increasing order only. A result
// whose sequence is not newer than the last one admitted is stale.
type LatestGate struct {
	latest atomic.Uint64
}

// Accept reports whether seq is newer than every sequence accepted so far,
// recording it if so.
func (g *LatestGate) Accept(seq uint64) bool {
	for {
		cur := g.latest.Load()
		if seq <= cur {
			return false
		}
		if g.latest.CompareAndSwap(cur, seq) {
			return true
		}
	}
}

// Latest returns the highest accepted sequence, zero if none.
func (g *LatestGate) Latest() uint64 {
	return g.latest.Load()
}

// Board holds the most recent recommendation. Searches that finish out of
// order never replace a newer one.
type Board struct {
	mu     sync.RWMutex
	gate   LatestGate
	latest *Recommendation
}

// Publish stores rec unless a newer recommendation is already on the board.
func (b *Board) Publish(rec *Recommendation) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.gate.Accept(rec.Sequence) {
		metrics.StaleResultsDiscarded.Inc()
		return false
	}
	b.latest = rec
	return true
}

// Latest returns the newest published recommendation.
func (b *Board) Latest() (*Recommendation, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.latest, b.latest != nil
}

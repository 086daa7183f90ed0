package lingo

import "sync"

// PendingSet tracks in-flight (locale, key) fill tokens so a burst of
// lookups for the same uncached key schedules exactly one provider call.
type PendingSet struct {
	mu     sync.Mutex
	tokens map[string]struct{}
}

// NewPendingSet creates an empty pending set.
func NewPendingSet() *PendingSet {
	return &PendingSet{
		tokens: make(map[string]struct{}),
	}
}

// TryReserve reserves token and returns true, or returns false if a fill for
// the token is already queued or running.
func (p *PendingSet) TryReserve(token string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.tokens[token]; ok {
		return false
	}
	p.tokens[token] = struct{}{}
	return true
}

// Release removes a reservation. Safe to call for an unreserved token.
func (p *PendingSet) Release(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.tokens, token)
}

// Len returns the number of in-flight reservations.
func (p *PendingSet) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.tokens)
}

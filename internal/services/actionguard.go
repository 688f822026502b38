package services

import (
	"sync"

	"servicehub_backend/pkg/apperrors"
)

// ActionGuard allows at most one in-flight transition per entity while
// leaving every other entity untouched. It is the server-side analogue of
// a per-row loading flag: action A on row X never blocks action B on
// row Y.
type ActionGuard struct {
	mu       sync.Mutex
	inflight map[string]bool
}

func NewActionGuard() *ActionGuard {
	return &ActionGuard{inflight: make(map[string]bool)}
}

// Begin claims the entity for one action. A second concurrent action on
// the same entity gets a conflict error.
func (g *ActionGuard) Begin(domain, entityID string) error {
	key := domain + ":" + entityID
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.inflight[key] {
		return apperrors.ErrActionInFlight(domain)
	}
	g.inflight[key] = true
	return nil
}

// End releases the entity. Always called, on success and on failure alike.
func (g *ActionGuard) End(domain, entityID string) {
	key := domain + ":" + entityID
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inflight, key)
}

// InFlight reports whether an action is currently running for the entity.
func (g *ActionGuard) InFlight(domain, entityID string) bool {
	key := domain + ":" + entityID
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.inflight[key]
}

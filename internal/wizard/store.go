package wizard

import (
	"context"
	"sync"

	"servicehub_backend/pkg/apperrors"
)

// ErrDraftNotFound is returned when a user has no draft with the given id.
var ErrDraftNotFound = apperrors.New(apperrors.CodeNotFound, "wizard", "Draft not found", 404)

// DraftStore persists wizard drafts between requests. Drafts are keyed by
// owner: a user can never read or mutate another user's draft.
type DraftStore interface {
	Get(ctx context.Context, userID, draftID string) (*Draft, error)
	Save(ctx context.Context, draft *Draft) error
	Delete(ctx context.Context, userID, draftID string) error
}

// MemoryDraftStore keeps drafts in process memory. It is the default when
// no Redis address is configured.
type MemoryDraftStore struct {
	mu     sync.RWMutex
	drafts map[string]*Draft
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: make(map[string]*Draft)}
}

func draftKey(userID, draftID string) string {
	return userID + ":" + draftID
}

func (s *MemoryDraftStore) Get(ctx context.Context, userID, draftID string) (*Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.drafts[draftKey(userID, draftID)]
	if !ok {
		return nil, ErrDraftNotFound
	}
	copied := *d
	return &copied, nil
}

func (s *MemoryDraftStore) Save(ctx context.Context, draft *Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *draft
	s.drafts[draftKey(draft.UserID, draft.ID)] = &copied
	return nil
}

func (s *MemoryDraftStore) Delete(ctx context.Context, userID, draftID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, draftKey(userID, draftID))
	return nil
}

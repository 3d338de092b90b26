package store

import (
	"sync"

	"rentello/internal/domains/booking/model"
)

// Store holds at most one booking draft per gateway session. Drafts are
// workflow scratch state, deliberately not persisted: a session that moves to
// another gateway instance simply starts a fresh draft, which matches how the
// workflow behaves across a browser reload.
type Store interface {
	Get(sessionID string) (model.Draft, bool)
	Save(sessionID string, draft model.Draft)
	Delete(sessionID string)
}

type storeImpl struct {
	mu     sync.RWMutex
	drafts map[string]model.Draft
}

func New() Store {
	return &storeImpl{
		drafts: make(map[string]model.Draft),
	}
}

func (s *storeImpl) Get(sessionID string) (model.Draft, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	draft, ok := s.drafts[sessionID]

	return draft, ok
}

func (s *storeImpl) Save(sessionID string, draft model.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drafts[sessionID] = draft
}

func (s *storeImpl) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.drafts, sessionID)
}

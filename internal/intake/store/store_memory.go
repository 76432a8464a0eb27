// Package store persists submitted applications. The in-memory variant backs
// development and tests; it keeps the same contract a database-backed store
// would honor.
package store

import (
	"context"
	"sort"
	"sync"

	"llm-intake/internal/intake/models"
	dErrors "llm-intake/pkg/domain-errors"
)

// ErrNotFound is returned when no application matches the lookup.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "application not found")

// MemoryStore is a thread-safe in-memory application store.
type MemoryStore struct {
	mu     sync.RWMutex
	byID   map[string]models.Application
	byRef  map[string]string
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:  make(map[string]models.Application),
		byRef: make(map[string]string),
	}
}

// Save stores a submitted application. A duplicate reference is a conflict.
func (s *MemoryStore) Save(_ context.Context, app models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byRef[app.Reference]; ok {
		return dErrors.New(dErrors.CodeConflict, "reference already exists")
	}
	s.byID[app.ID] = app
	s.byRef[app.Reference] = app.ID
	return nil
}

// FindByReference returns the application carrying the submission reference.
func (s *MemoryStore) FindByReference(_ context.Context, ref string) (models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byRef[ref]
	if !ok {
		return models.Application{}, ErrNotFound
	}
	return s.byID[id], nil
}

// List returns stored applications ordered by submission time, newest first.
func (s *MemoryStore) List(_ context.Context) ([]models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Application, 0, len(s.byID))
	for _, app := range s.byID {
		out = append(out, app)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out, nil
}

// Count returns the number of stored applications.
func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID), nil
}

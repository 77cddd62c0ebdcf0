package pipeline

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned when no record exists for a (project, stage)
// key.
var ErrNotFound = errors.New("pipeline: stage record not found")

// Store persists stage results. The runner treats records as opaque;
// implementations only need to key them by (projectID, stage).
type Store interface {
	Save(ctx context.Context, projectID string, stage Stage, result *StageResult) error
	Load(ctx context.Context, projectID string, stage Stage) (*StageResult, error)
}

// MemoryStore keeps stage results in memory. Safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*StageResult
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*StageResult)}
}

func storeKey(projectID string, stage Stage) string {
	return projectID + "/" + string(stage)
}

// Save stores the result, replacing any previous record for the key.
func (s *MemoryStore) Save(_ context.Context, projectID string, stage Stage, result *StageResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[storeKey(projectID, stage)] = result
	return nil
}

// Load returns the stored result or ErrNotFound.
func (s *MemoryStore) Load(_ context.Context, projectID string, stage Stage) (*StageResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.records[storeKey(projectID, stage)]
	if !ok {
		return nil, ErrNotFound
	}
	return result, nil
}

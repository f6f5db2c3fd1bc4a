package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/sangsom/minime/internal/domain/model"
	"github.com/sangsom/minime/internal/domain/types"
)

// memStore is a map-backed Store guarded by a read-write mutex. All state is
// per-session: nothing survives a restart.
type memStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemStore creates an empty in-memory store.
func NewMemStore(opts ...Option) Store {
	s := &memStore{
		records: make(map[string]Record),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *memStore) Upsert(ctx context.Context, p model.Profile, st types.Status) error {
	if p.ProfileID == "" {
		return ErrEmptyProfileID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[p.ProfileID] = Record{Profile: p, Status: st}
	return nil
}

func (s *memStore) Get(ctx context.Context, profileID string) (Record, error) {
	if profileID == "" {
		return Record{}, ErrEmptyProfileID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[profileID]
	if !ok {
		return Record{}, ErrNotFound
	}
	return r, nil
}

func (s *memStore) TopByExperience(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		return nil, nil
	}

	s.mu.RLock()
	all := make([]Record, 0, len(s.records))
	for _, r := range s.records {
		all = append(all, r)
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].Profile.Experience != all[j].Profile.Experience {
			return all[i].Profile.Experience > all[j].Profile.Experience
		}
		return all[i].Profile.ProfileID < all[j].Profile.ProfileID
	})

	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (s *memStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

package planet

import (
	"context"
	"sort"
	"sync"
	"time"

	"solar-system-server/internal/shared/errors"
)

// MemoryStore keeps the catalog in process. It backs tests and the
// populate command's --dry-run mode.
type MemoryStore struct {
	mu     sync.RWMutex
	txMu   sync.Mutex
	bodies map[int]CelestialBody
	nextID int
	now    func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bodies: map[int]CelestialBody{},
		nextID: 1,
		now:    time.Now,
	}
}

// NewMemoryStoreFrom copies bodies into a new store, keeping their IDs and timestamps
func NewMemoryStoreFrom(bodies []CelestialBody) *MemoryStore {
	s := NewMemoryStore()
	for _, b := range bodies {
		s.bodies[b.ID] = b.clone()
		if b.ID >= s.nextID {
			s.nextID = b.ID + 1
		}
	}
	return s
}

func (s *MemoryStore) sorted(keep func(CelestialBody) bool) []CelestialBody {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]CelestialBody, 0, len(s.bodies))
	for _, b := range s.bodies {
		if keep(b) {
			out = append(out, b.clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out
}

func (s *MemoryStore) ListActive(_ context.Context) ([]CelestialBody, error) {
	return s.sorted(func(b CelestialBody) bool { return b.IsActive }), nil
}

func (s *MemoryStore) ListActiveByType(_ context.Context, planetType PlanetType) ([]CelestialBody, error) {
	return s.sorted(func(b CelestialBody) bool { return b.IsActive && b.PlanetType == planetType }), nil
}

func (s *MemoryStore) ListActiveDwarfPlanets(_ context.Context) ([]CelestialBody, error) {
	return s.sorted(func(b CelestialBody) bool { return b.IsActive && b.IsDwarfPlanet }), nil
}

func (s *MemoryStore) ListAll(_ context.Context) ([]CelestialBody, error) {
	return s.sorted(func(CelestialBody) bool { return true }), nil
}

func (s *MemoryStore) GetActiveByID(_ context.Context, id int) (*CelestialBody, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bodies[id]
	if !ok || !b.IsActive {
		return nil, nil
	}
	b = b.clone()
	return &b, nil
}

func (s *MemoryStore) FindByName(_ context.Context, name string) (*CelestialBody, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bodies {
		if b.Name == name {
			b = b.clone()
			return &b, nil
		}
	}
	return nil, nil
}

// checkUnique must be called with mu held
func (s *MemoryStore) checkUnique(body *CelestialBody) error {
	for id, b := range s.bodies {
		if id == body.ID {
			continue
		}
		if b.Name == body.Name || b.DisplayOrder == body.DisplayOrder {
			return errors.Conflictf("planet %q or display order %d already exists", body.Name, body.DisplayOrder)
		}
	}
	return nil
}

func (s *MemoryStore) Create(_ context.Context, body *CelestialBody) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	body.ID = 0
	if err := s.checkUnique(body); err != nil {
		return err
	}

	now := s.now()
	body.ID = s.nextID
	body.CreatedAt = now
	body.UpdatedAt = now
	s.nextID++

	s.bodies[body.ID] = body.clone()
	return nil
}

func (s *MemoryStore) Update(_ context.Context, body *CelestialBody) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.bodies[body.ID]
	if !ok {
		return errors.NotFoundf("planet %d not found", body.ID)
	}
	if err := s.checkUnique(body); err != nil {
		return err
	}

	body.CreatedAt = existing.CreatedAt
	body.UpdatedAt = s.now()
	s.bodies[body.ID] = body.clone()
	return nil
}

func (s *MemoryStore) DeleteAll(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := int64(len(s.bodies))
	s.bodies = map[int]CelestialBody{}
	return deleted, nil
}

func (s *MemoryStore) SetActive(_ context.Context, names []string, active bool) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		wanted[n] = struct{}{}
	}

	var updated int64
	for id, b := range s.bodies {
		if _, ok := wanted[b.Name]; !ok {
			continue
		}
		b.IsActive = active
		b.UpdatedAt = s.now()
		s.bodies[id] = b
		updated++
	}
	return updated, nil
}

// InTx serializes transactions and restores the previous contents if fn fails.
// Readers outside the transaction can observe its intermediate writes.
func (s *MemoryStore) InTx(_ context.Context, fn func(Store) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := make(map[int]CelestialBody, len(s.bodies))
	for id, b := range s.bodies {
		snapshot[id] = b.clone()
	}
	nextID := s.nextID
	s.mu.RUnlock()

	if err := fn(memoryTx{s}); err != nil {
		s.mu.Lock()
		s.bodies = snapshot
		s.nextID = nextID
		s.mu.Unlock()
		return err
	}
	return nil
}

// memoryTx is the store as seen inside InTx. Nested InTx calls join the
// running transaction.
type memoryTx struct {
	*MemoryStore
}

func (t memoryTx) InTx(_ context.Context, fn func(Store) error) error {
	return fn(t)
}

package profiles

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/hikekeeper/internal/common"
	"github.com/dmitrijs2005/hikekeeper/internal/server/models"
)

// MemoryRepository is an in-memory Repository. It is safe for concurrent use.
type MemoryRepository struct {
	mu   sync.RWMutex
	byID map[string]models.Profile
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]models.Profile)}
}

func (r *MemoryRepository) Create(ctx context.Context, p *models.Profile) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; ok {
		return common.ErrAlreadyExists
	}
	r.byID[p.ID] = cloneProfile(*p)
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*models.Profile, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := cloneProfile(p)
	return &out, nil
}

func (r *MemoryRepository) UpdateMeasurements(ctx context.Context, id string, m models.Measurements) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return common.ErrNotFound
	}
	unit := m.Unit
	pref := m.TimePreference
	p.HeightMm = clonePtr(m.HeightMm)
	p.WeightGrams = clonePtr(m.WeightGrams)
	p.Unit = &unit
	p.TimePreference = &pref
	r.byID[id] = p
	return nil
}

func cloneProfile(p models.Profile) models.Profile {
	p.HeightMm = clonePtr(p.HeightMm)
	p.WeightGrams = clonePtr(p.WeightGrams)
	p.Unit = clonePtr(p.Unit)
	p.TimePreference = clonePtr(p.TimePreference)
	return p
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

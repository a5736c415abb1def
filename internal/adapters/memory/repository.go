// Package memory provides the in-process procedure store. It is the
// default store for the MCP server: procedures live for the session and
// durability is the caller's concern.
package memory

import (
	"sort"
	"sync"

	"ingrain/internal/domain"
	"ingrain/internal/ports"
)

// Repository implements ports.ProcedureRepository over a mutex-guarded
// map. Records are deep-copied on the way in and out, so callers can
// never mutate stored state except through Put and Update.
type Repository struct {
	mu         sync.RWMutex
	procedures map[string]*domain.Procedure
}

// Ensure Repository implements ProcedureRepository
var _ ports.ProcedureRepository = (*Repository)(nil)

// NewRepository creates an empty in-memory repository
func NewRepository() *Repository {
	return &Repository{
		procedures: make(map[string]*domain.Procedure),
	}
}

// Get retrieves a procedure by id, or (nil, nil) if unknown
func (r *Repository) Get(id string) (*domain.Procedure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.procedures[id]
	if !ok {
		return nil, nil
	}
	return p.Clone(), nil
}

// Put stores a procedure, replacing any existing record with the same id
func (r *Repository) Put(p *domain.Procedure) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.procedures[p.ID] = p.Clone()
	return nil
}

// List returns all procedures sorted by creation time, then id, so
// iteration order is stable for a fixed store state.
func (r *Repository) List() ([]*domain.Procedure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Procedure, 0, len(r.procedures))
	for _, p := range r.procedures {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Update applies fn to the stored record under the write lock. Returns
// (nil, nil) for an unknown id; an error from fn leaves the record
// untouched.
func (r *Repository) Update(id string, fn func(p *domain.Procedure) error) (*domain.Procedure, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.procedures[id]
	if !ok {
		return nil, nil
	}

	working := stored.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}

	r.procedures[id] = working
	return working.Clone(), nil
}

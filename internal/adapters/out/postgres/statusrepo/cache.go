package statusrepo

import (
	"context"
	"sync"

	"parcel/internal/core/domain/model/status"
	"parcel/internal/core/ports"
	"parcel/internal/pkg/errs"
)

// CachedStatusRepository serves catalog resolution from memory. The catalog
// changes only through administrator seeding, so the cache is refreshed on a
// schedule rather than invalidated per write. A miss falls through to the
// backing repository, which also repopulates the cache entry.
type CachedStatusRepository struct {
	backing ports.StatusRepository

	mu      sync.RWMutex
	byName  map[status.Name]status.Status
	ordered []status.Status
}

// NewCachedStatusRepository wraps a status repository with an in-memory cache.
// The cache starts cold; call Refresh during startup to warm it.
func NewCachedStatusRepository(backing ports.StatusRepository) *CachedStatusRepository {
	return &CachedStatusRepository{
		backing: backing,
		byName:  make(map[status.Name]status.Status),
	}
}

// GetByName resolves a catalog entry, serving from cache when possible.
func (r *CachedStatusRepository) GetByName(ctx context.Context, name status.Name) (status.Status, error) {
	if err := name.Validate(); err != nil {
		return status.Status{}, err
	}

	r.mu.RLock()
	st, ok := r.byName[name]
	r.mu.RUnlock()
	if ok {
		return st, nil
	}

	st, err := r.backing.GetByName(ctx, name)
	if err != nil {
		return status.Status{}, err
	}

	r.mu.Lock()
	r.byName[name] = st
	r.mu.Unlock()
	return st, nil
}

// GetAll returns the full catalog, from cache when warm.
func (r *CachedStatusRepository) GetAll(ctx context.Context) ([]status.Status, error) {
	r.mu.RLock()
	cached := r.ordered
	r.mu.RUnlock()
	if len(cached) > 0 {
		return cached, nil
	}

	if err := r.Refresh(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.ordered) == 0 {
		return nil, errs.NewObjectNotFoundError("statuses", "catalog is empty")
	}
	return r.ordered, nil
}

// Refresh reloads the whole catalog from the backing repository, replacing
// the cached view atomically.
func (r *CachedStatusRepository) Refresh(ctx context.Context) error {
	statuses, err := r.backing.GetAll(ctx)
	if err != nil {
		return err
	}

	byName := make(map[status.Name]status.Status, len(statuses))
	for _, st := range statuses {
		byName[st.Name()] = st
	}

	r.mu.Lock()
	r.byName = byName
	r.ordered = statuses
	r.mu.Unlock()
	return nil
}

package ports

import (
	"context"

	"parcel/internal/core/domain/model/status"
)

// StatusRepository resolves entries of the administrator-seeded status
// catalog. The catalog is read-mostly; implementations may serve from a cache
// refreshed out of band.
type StatusRepository interface {
	// GetByName resolves a catalog entry by its lifecycle name.
	// Returns errs.ObjectNotFoundError when the catalog has no such entry.
	GetByName(ctx context.Context, name status.Name) (status.Status, error)

	// GetAll returns the full catalog.
	GetAll(ctx context.Context) ([]status.Status, error)
}

package ports

import (
	"context"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// Add and Update also persist the aggregate's pending timeline entries in the
// same transaction as the parcel row; a failure on either side leaves neither
// written.
type ParcelRepository interface {
	// Add persists a new parcel aggregate. A duplicate tracking number
	// surfaces as errs.ConflictError.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel by its internal identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingNumber retrieves a parcel by its tracking number.
	// Returns errs.ObjectNotFoundError when no parcel carries the number.
	GetByTrackingNumber(ctx context.Context, trackingNumber parcel.TrackingNumber) (*parcel.Parcel, error)

	// GetByTrackingNumberForUpdate retrieves a parcel and locks its row for
	// the duration of the surrounding transaction. Lifecycle transitions load
	// through this method so concurrent transitions on the same parcel
	// serialize at the storage layer.
	GetByTrackingNumberForUpdate(ctx context.Context, trackingNumber parcel.TrackingNumber) (*parcel.Parcel, error)

	// GetTimeline retrieves a parcel's timeline entries ordered oldest first.
	GetTimeline(ctx context.Context, parcelID kernel.UUID) ([]parcel.TimelineEntry, error)
}

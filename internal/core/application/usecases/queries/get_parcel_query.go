package queries

import (
	"errors"

	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/pkg/guard"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

// GetParcelQuery retrieves a single parcel read model by tracking number.
type GetParcelQuery struct {
	trackingNumber parcel.TrackingNumber
	hydration      Hydration

	guard guard.ConstructorGuard
}

// NewGetParcelQuery creates a single parcel query.
func NewGetParcelQuery(trackingNumber parcel.TrackingNumber, hydration Hydration) (GetParcelQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return GetParcelQuery{}, err
	}

	return GetParcelQuery{
		trackingNumber: trackingNumber,
		hydration:      hydration,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// TrackingNumber returns the parcel to fetch.
func (q GetParcelQuery) TrackingNumber() parcel.TrackingNumber {
	return q.trackingNumber
}

// Hydration returns the requested hydration set.
func (q GetParcelQuery) Hydration() Hydration {
	return q.hydration
}

package queries

import (
	"errors"

	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/pkg/guard"
)

var ErrGetTimelineQueryIsNotConstructed = errors.New(
	"GetTimelineQuery must be created via NewGetTimelineQuery constructor",
)

// GetTimelineQuery retrieves a parcel's tracking history, oldest entry first.
type GetTimelineQuery struct {
	trackingNumber parcel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewGetTimelineQuery creates a timeline query.
func NewGetTimelineQuery(trackingNumber parcel.TrackingNumber) (GetTimelineQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return GetTimelineQuery{}, err
	}

	return GetTimelineQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTimelineQuery) Validate() error {
	return q.guard.Validate(ErrGetTimelineQueryIsNotConstructed)
}

// TrackingNumber returns the parcel whose history to fetch.
func (q GetTimelineQuery) TrackingNumber() parcel.TrackingNumber {
	return q.trackingNumber
}

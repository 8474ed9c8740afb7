package parcel

import (
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
)

// TimelineEntry is one immutable line in a parcel's audit trail: a
// human-readable message paired with the status the parcel held when the line
// was written. Entries are append-only; nothing in the system edits or removes
// one after it is committed.
type TimelineEntry struct {
	id        kernel.UUID
	parcelID  kernel.UUID
	message   string
	statusID  kernel.UUID
	createdAt time.Time
}

// NewTimelineEntry creates an entry for a transition that just happened on
// the given parcel.
func NewTimelineEntry(id, parcelID kernel.UUID, message string, statusID kernel.UUID, createdAt time.Time) (TimelineEntry, error) {
	if err := id.Validate(); err != nil {
		return TimelineEntry{}, err
	}
	if err := parcelID.Validate(); err != nil {
		return TimelineEntry{}, err
	}
	if message == "" {
		return TimelineEntry{}, errs.NewValueIsRequiredError("timeline message")
	}
	if err := statusID.Validate(); err != nil {
		return TimelineEntry{}, err
	}
	return TimelineEntry{
		id:        id,
		parcelID:  parcelID,
		message:   message,
		statusID:  statusID,
		createdAt: createdAt,
	}, nil
}

// ID returns the entry identifier.
func (e TimelineEntry) ID() kernel.UUID {
	return e.id
}

// ParcelID returns the identifier of the parcel the entry belongs to.
func (e TimelineEntry) ParcelID() kernel.UUID {
	return e.parcelID
}

// Message returns the human-readable event text.
func (e TimelineEntry) Message() string {
	return e.message
}

// StatusID returns the catalog identifier of the status the entry records.
func (e TimelineEntry) StatusID() kernel.UUID {
	return e.statusID
}

// CreatedAt returns when the entry was written.
func (e TimelineEntry) CreatedAt() time.Time {
	return e.createdAt
}

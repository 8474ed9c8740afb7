// Package status models the parcel status catalog: the fixed vocabulary of
// lifecycle states a parcel may occupy. The catalog is seeded by an
// administrator and read-only to the lifecycle engine; every transition
// resolves its target status through the catalog by name or identifier.
package status

import (
	"fmt"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
)

// Name is the unique, human-readable name of a catalog status.
//
// The engine references these names:
//
//	pending ──> picked_up ──> in_transit ──> delivered
//	   ^                                        │
//	   └──────────── (receive resets) ──────────┘
//	cancelled is reachable from every state except delivered
//
// A name the catalog does not contain is a configuration error, not a
// business rule violation.
type Name string

const (
	// Pending is the initial state: the merchant has requested a pickup and
	// no field handler holds the parcel.
	Pending Name = "pending"

	// PickedUp means a pickupman has physical custody of the parcel.
	PickedUp Name = "picked_up"

	// InTransit means a deliveryman is carrying the parcel to its recipient.
	InTransit Name = "in_transit"

	// Delivered is a terminal state: the parcel reached its recipient.
	Delivered Name = "delivered"

	// Cancelled is a terminal-by-request state: the requester withdrew the
	// parcel. The record is kept; cancellation is a status, not a deletion.
	Cancelled Name = "cancelled"
)

// KnownNames lists every status name the lifecycle engine references.
// The catalog seed writes exactly these rows.
func KnownNames() []Name {
	return []Name{Pending, PickedUp, InTransit, Delivered, Cancelled}
}

// Validate reports whether the name belongs to the engine vocabulary.
func (n Name) Validate() error {
	switch n {
	case Pending, PickedUp, InTransit, Delivered, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status name",
			fmt.Errorf("%q is not a known parcel status", string(n)))
	}
}

// InCustody reports whether a parcel in this status is in the physical
// custody of a field handler. The parcel invariant ties the handler link to
// exactly these states: a handler is assigned if and only if the status is
// picked_up or in_transit.
func (n Name) InCustody() bool {
	return n == PickedUp || n == InTransit
}

// String implements fmt.Stringer.
func (n Name) String() string {
	return string(n)
}

// ErrStatusIsNotConstructed is returned when a Status was not created through
// the NewStatus constructor.
var ErrStatusIsNotConstructed = errs.NewValueIsRequiredError("Status must be created via NewStatus")

// Status is a catalog entry: a stable identifier paired with a unique name.
// Entries are immutable after seeding. The lifecycle engine treats them as
// read-only reference data and stores the identifier on parcels and timeline
// entries.
type Status struct {
	id   kernel.UUID
	name Name
}

// NewStatus creates a catalog entry. Both the identifier and the name must be
// valid; the name must belong to the engine vocabulary.
func NewStatus(id kernel.UUID, name Name) (Status, error) {
	if err := id.Validate(); err != nil {
		return Status{}, err
	}
	if err := name.Validate(); err != nil {
		return Status{}, err
	}
	return Status{id: id, name: name}, nil
}

// ID returns the stable catalog identifier.
func (s Status) ID() kernel.UUID {
	return s.id
}

// Name returns the unique status name.
func (s Status) Name() Name {
	return s.name
}

// IsZero reports whether the entry is the zero value (not resolved from the
// catalog).
func (s Status) IsZero() bool {
	return s.id.Validate() != nil
}

// Validate ensures the entry was resolved through NewStatus.
func (s Status) Validate() error {
	if s.IsZero() {
		return ErrStatusIsNotConstructed
	}
	return s.name.Validate()
}

// IsEqual compares two catalog entries by identifier.
func (s Status) IsEqual(other Status) bool {
	return s.id.IsEqual(other.id)
}

package handler

import (
	"fmt"

	"parcel/internal/core/domain/model/status"
	"parcel/internal/pkg/errs"
)

// Role is a closed variant describing what kind of field work a package
// handler performs. Each variant carries the parcel status an assignment to
// that role targets and the timeline message template the assignment writes,
// so callers dispatch on the variant instead of branching on raw strings.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RolePickupman collects parcels from merchants. Assigning one moves the
	// parcel into picked_up.
	RolePickupman

	// RoleDeliveryman carries parcels to recipients. Assigning one moves the
	// parcel into in_transit.
	RoleDeliveryman

	// RoleOther is the fallback variant for assignment requests that name
	// neither field role. Its target status (pending) is not a custody state,
	// so the lifecycle engine refuses to link a handler through it.
	RoleOther
)

func roleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:     "unknown",
		RolePickupman:   "pickupman",
		RoleDeliveryman: "deliveryman",
		RoleOther:       "other",
	}
}

// ParseRole resolves a wire-level handler type string to its Role variant.
// Unrecognized strings map to RoleOther, mirroring the permissive request
// surface: the hard custody invariant, not string matching, is what rejects
// such assignments.
func ParseRole(s string) Role {
	switch s {
	case "pickupman":
		return RolePickupman
	case "deliveryman":
		return RoleDeliveryman
	default:
		return RoleOther
	}
}

// Validate reports whether the role is one of the defined variants.
func (r Role) Validate() error {
	switch r {
	case RolePickupman, RoleDeliveryman, RoleOther:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid handler role", int(r)))
	}
}

// Assignable reports whether handlers of this role may take custody of a
// parcel. Only the two field roles qualify.
func (r Role) Assignable() bool {
	return r == RolePickupman || r == RoleDeliveryman
}

// TargetStatus returns the status name an assignment to this role resolves.
func (r Role) TargetStatus() status.Name {
	switch r {
	case RolePickupman:
		return status.PickedUp
	case RoleDeliveryman:
		return status.InTransit
	default:
		return status.Pending
	}
}

// AssignmentMessage renders the timeline message an assignment to this role
// produces. The deliveryman variant embeds the agent's name and phone so the
// recipient-facing timeline identifies who is out with the parcel.
func (r Role) AssignmentMessage(name, phone string) string {
	if r == RoleDeliveryman {
		return fmt.Sprintf("Delivery Agent %s(%s) is out for delivery", name, phone)
	}
	return "Parcel assigned to a pickupman"
}

// ListingStatus returns the status name scoping the "assigned to me" listing
// for this role: a pickupman sees parcels in picked_up, a deliveryman sees
// parcels in in_transit.
func (r Role) ListingStatus() status.Name {
	return r.TargetStatus()
}

// String implements fmt.Stringer.
func (r Role) String() string {
	if s, ok := roleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

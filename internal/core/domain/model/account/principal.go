// Package account models the authenticated caller the identity provider hands
// to the parcel service. The service trusts the identity provider's output:
// a principal is an opaque {id, roles} pair, and ownership or role checks are
// the only authorization the lifecycle engine performs on top of it.
package account

import (
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
)

// Role names a capability group granted to an account.
type Role string

const (
	// RoleMerchant marks accounts that request pickups for their shops.
	RoleMerchant Role = "merchant"

	// RoleAdmin marks back-office operators who assign handlers, receive
	// parcels, and apply manual corrections.
	RoleAdmin Role = "admin"

	// RolePackageHandler marks field staff accounts (pickupmen and
	// deliverymen) that report pickups and deliveries.
	RolePackageHandler Role = "packagehandler"
)

// Principal is the authenticated caller of an operation.
type Principal struct {
	ID    kernel.UUID
	Roles []Role
}

// NewPrincipal creates a principal for the given account with its granted
// roles.
func NewPrincipal(id kernel.UUID, roles ...Role) (Principal, error) {
	if err := id.Validate(); err != nil {
		return Principal{}, err
	}
	return Principal{ID: id, Roles: roles}, nil
}

// Validate reports whether the principal carries a usable identity.
func (p Principal) Validate() error {
	if err := p.ID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("principal", err)
	}
	return nil
}

// HasRole reports whether the principal was granted the role.
func (p Principal) HasRole(role Role) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

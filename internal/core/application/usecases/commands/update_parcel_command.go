package commands

import (
	"errors"

	"parcel/internal/core/domain/model/account"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/core/domain/model/status"
	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var ErrUpdateParcelCommandIsNotConstructed = errors.New(
	"UpdateParcelCommand must be created via NewUpdateParcelCommand constructor",
)

// UpdateParcelCommand represents a back-office field merge on a parcel. Nil
// fields are left untouched. A status override additionally requires a
// human-written timeline message; the canned transition texts belong to the
// lifecycle transitions, not to manual corrections.
type UpdateParcelCommand struct { //nolint:recvcheck //using for validation
	principal      account.Principal
	trackingNumber parcel.TrackingNumber
	shopID         *kernel.UUID
	categoryID     *kernel.UUID
	pickupID       *kernel.UUID
	deliveryAreaID *kernel.UUID
	statusName     *status.Name
	message        string

	guard guard.ConstructorGuard
}

// NewUpdateParcelCommand creates a field merge command. All parcel fields are
// optional; passing no field at all is rejected as an empty update.
func NewUpdateParcelCommand(
	principal account.Principal,
	trackingNumber parcel.TrackingNumber,
	shopID, categoryID, pickupID, deliveryAreaID *kernel.UUID,
	statusName *status.Name,
	message string,
) (UpdateParcelCommand, error) {
	cmd := UpdateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrincipal(principal),
		cmd.setTrackingNumber(trackingNumber),
		cmd.setRef(&cmd.shopID, shopID, "shopId"),
		cmd.setRef(&cmd.categoryID, categoryID, "categoryId"),
		cmd.setRef(&cmd.pickupID, pickupID, "pickupId"),
		cmd.setRef(&cmd.deliveryAreaID, deliveryAreaID, "deliveryAreaId"),
		cmd.setStatus(statusName, message),
	); err != nil {
		return UpdateParcelCommand{}, err
	}

	if cmd.shopID == nil && cmd.categoryID == nil && cmd.pickupID == nil &&
		cmd.deliveryAreaID == nil && cmd.statusName == nil {
		return UpdateParcelCommand{}, errs.NewValueIsRequiredError("update fields")
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateParcelCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelCommandIsNotConstructed)
}

// Principal returns the authenticated caller.
func (c UpdateParcelCommand) Principal() account.Principal {
	return c.principal
}

// TrackingNumber returns the parcel to update.
func (c UpdateParcelCommand) TrackingNumber() parcel.TrackingNumber {
	return c.trackingNumber
}

// ShopID returns the new shop reference, or nil to keep the current one.
func (c UpdateParcelCommand) ShopID() *kernel.UUID {
	return c.shopID
}

// CategoryID returns the new category reference, or nil.
func (c UpdateParcelCommand) CategoryID() *kernel.UUID {
	return c.categoryID
}

// PickupID returns the new pickup address reference, or nil.
func (c UpdateParcelCommand) PickupID() *kernel.UUID {
	return c.pickupID
}

// DeliveryAreaID returns the new delivery area reference, or nil.
func (c UpdateParcelCommand) DeliveryAreaID() *kernel.UUID {
	return c.deliveryAreaID
}

// StatusName returns the status to force, or nil for no status change.
func (c UpdateParcelCommand) StatusName() *status.Name {
	return c.statusName
}

// Message returns the timeline message accompanying a status override.
func (c UpdateParcelCommand) Message() string {
	return c.message
}

func (c *UpdateParcelCommand) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}

func (c *UpdateParcelCommand) setTrackingNumber(trackingNumber parcel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *UpdateParcelCommand) setRef(field **kernel.UUID, id *kernel.UUID, name string) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	*field = id
	return nil
}

func (c *UpdateParcelCommand) setStatus(name *status.Name, message string) error {
	if name == nil {
		if message != "" {
			return errs.NewValueIsInvalidError("message")
		}
		return nil
	}
	// A name outside the catalog vocabulary is a lookup miss, not a malformed
	// request: it surfaces in the same category as a catalog row that is
	// missing at resolution time.
	if err := name.Validate(); err != nil {
		return errs.NewObjectNotFoundErrorWithCause("status", name.String(), err)
	}
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}

	c.statusName = name
	c.message = message
	return nil
}

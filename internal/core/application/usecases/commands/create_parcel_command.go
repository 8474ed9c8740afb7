package commands

import (
	"errors"

	"parcel/internal/core/domain/model/account"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand represents a merchant's request to have a parcel picked
// up from one of their shops. The requester is taken from the authenticated
// principal; any caller-supplied status is ignored, a new parcel always
// starts pending.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID       kernel.UUID
	principal      account.Principal
	shopID         kernel.UUID
	categoryID     kernel.UUID
	pickupID       kernel.UUID
	deliveryAreaID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a pickup request.
// Validates the principal and all reference identifiers.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	principal account.Principal,
	shopID, categoryID, pickupID, deliveryAreaID kernel.UUID,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setPrincipal(principal),
		cmd.setRef(&cmd.shopID, shopID, "shopId"),
		cmd.setRef(&cmd.categoryID, categoryID, "categoryId"),
		cmd.setRef(&cmd.pickupID, pickupID, "pickupId"),
		cmd.setRef(&cmd.deliveryAreaID, deliveryAreaID, "deliveryAreaId"),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier the new parcel will be stored under.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Principal returns the authenticated caller.
func (c CreateParcelCommand) Principal() account.Principal {
	return c.principal
}

// ShopID returns the shop the pickup is requested for.
func (c CreateParcelCommand) ShopID() kernel.UUID {
	return c.shopID
}

// CategoryID returns the product category reference.
func (c CreateParcelCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// PickupID returns the pickup address reference.
func (c CreateParcelCommand) PickupID() kernel.UUID {
	return c.pickupID
}

// DeliveryAreaID returns the delivery area reference.
func (c CreateParcelCommand) DeliveryAreaID() kernel.UUID {
	return c.deliveryAreaID
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}

func (c *CreateParcelCommand) setRef(field *kernel.UUID, id kernel.UUID, name string) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}

	*field = id
	return nil
}

package commands

import (
	"errors"

	"parcel/internal/core/domain/model/account"
	"parcel/internal/core/domain/model/handler"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var ErrAssignHandlerCommandIsNotConstructed = errors.New(
	"AssignHandlerCommand must be created via NewAssignHandlerCommand constructor",
)

// AssignHandlerCommand represents a back-office request to hand a parcel to a
// field handler. The role decides the transition: a pickupman takes a pending
// parcel into picked_up, a deliveryman takes a picked_up parcel out for
// delivery.
type AssignHandlerCommand struct { //nolint:recvcheck //using for validation
	principal      account.Principal
	trackingNumber parcel.TrackingNumber
	handlerID      kernel.UUID
	role           handler.Role

	guard guard.ConstructorGuard
}

// NewAssignHandlerCommand creates a command to assign a handler to a parcel.
// An unrecognized handler type parses to a non-assignable role and is
// rejected here, before any state is touched.
func NewAssignHandlerCommand(
	principal account.Principal,
	trackingNumber parcel.TrackingNumber,
	handlerID kernel.UUID,
	role handler.Role,
) (AssignHandlerCommand, error) {
	cmd := AssignHandlerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrincipal(principal),
		cmd.setTrackingNumber(trackingNumber),
		cmd.setHandlerID(handlerID),
		cmd.setRole(role),
	); err != nil {
		return AssignHandlerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignHandlerCommand) Validate() error {
	return c.guard.Validate(ErrAssignHandlerCommandIsNotConstructed)
}

// Principal returns the authenticated caller.
func (c AssignHandlerCommand) Principal() account.Principal {
	return c.principal
}

// TrackingNumber returns the parcel to assign.
func (c AssignHandlerCommand) TrackingNumber() parcel.TrackingNumber {
	return c.trackingNumber
}

// HandlerID returns the handler record to link.
func (c AssignHandlerCommand) HandlerID() kernel.UUID {
	return c.handlerID
}

// Role returns the assignment role.
func (c AssignHandlerCommand) Role() handler.Role {
	return c.role
}

func (c *AssignHandlerCommand) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}

func (c *AssignHandlerCommand) setTrackingNumber(trackingNumber parcel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *AssignHandlerCommand) setHandlerID(handlerID kernel.UUID) error {
	if err := handlerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("handlerId", err)
	}

	c.handlerID = handlerID
	return nil
}

func (c *AssignHandlerCommand) setRole(role handler.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if !role.Assignable() {
		return errs.NewValueIsInvalidError("handlerType")
	}

	c.role = role
	return nil
}

package commands

import (
	"errors"

	"parcel/internal/core/domain/model/account"
	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents a field handler reporting a completed
// delivery. Only the handler currently holding the parcel may close it out;
// that check needs the loaded aggregate and happens in the handler.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	principal      account.Principal
	trackingNumber parcel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to close out a delivery.
func NewMarkDeliveredCommand(principal account.Principal, trackingNumber parcel.TrackingNumber) (MarkDeliveredCommand, error) {
	cmd := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrincipal(principal),
		cmd.setTrackingNumber(trackingNumber),
	); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// Principal returns the authenticated caller.
func (c MarkDeliveredCommand) Principal() account.Principal {
	return c.principal
}

// TrackingNumber returns the parcel being delivered.
func (c MarkDeliveredCommand) TrackingNumber() parcel.TrackingNumber {
	return c.trackingNumber
}

func (c *MarkDeliveredCommand) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}

func (c *MarkDeliveredCommand) setTrackingNumber(trackingNumber parcel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	c.trackingNumber = trackingNumber
	return nil
}

package commands

import (
	"errors"

	"parcel/internal/core/domain/model/account"
	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/pkg/guard"
)

var ErrReceiveParcelCommandIsNotConstructed = errors.New(
	"ReceiveParcelCommand must be created via NewReceiveParcelCommand constructor",
)

// ReceiveParcelCommand represents a back-office request to take a parcel back
// into warehouse custody, resetting it to pending. It is the recovery path
// after a failed pickup or delivery attempt.
type ReceiveParcelCommand struct { //nolint:recvcheck //using for validation
	principal      account.Principal
	trackingNumber parcel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewReceiveParcelCommand creates a command to receive a parcel.
func NewReceiveParcelCommand(principal account.Principal, trackingNumber parcel.TrackingNumber) (ReceiveParcelCommand, error) {
	cmd := ReceiveParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrincipal(principal),
		cmd.setTrackingNumber(trackingNumber),
	); err != nil {
		return ReceiveParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceiveParcelCommand) Validate() error {
	return c.guard.Validate(ErrReceiveParcelCommandIsNotConstructed)
}

// Principal returns the authenticated caller.
func (c ReceiveParcelCommand) Principal() account.Principal {
	return c.principal
}

// TrackingNumber returns the parcel to receive.
func (c ReceiveParcelCommand) TrackingNumber() parcel.TrackingNumber {
	return c.trackingNumber
}

func (c *ReceiveParcelCommand) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}

func (c *ReceiveParcelCommand) setTrackingNumber(trackingNumber parcel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	c.trackingNumber = trackingNumber
	return nil
}

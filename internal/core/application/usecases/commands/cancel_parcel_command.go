package commands

import (
	"errors"

	"parcel/internal/core/domain/model/account"
	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/pkg/guard"
)

var ErrCancelParcelCommandIsNotConstructed = errors.New(
	"CancelParcelCommand must be created via NewCancelParcelCommand constructor",
)

// CancelParcelCommand represents a request to withdraw a parcel. Merchants
// may cancel their own parcels; ownership is checked against the loaded
// aggregate inside the handler.
type CancelParcelCommand struct { //nolint:recvcheck //using for validation
	principal      account.Principal
	trackingNumber parcel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewCancelParcelCommand creates a command to cancel a parcel.
func NewCancelParcelCommand(principal account.Principal, trackingNumber parcel.TrackingNumber) (CancelParcelCommand, error) {
	cmd := CancelParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrincipal(principal),
		cmd.setTrackingNumber(trackingNumber),
	); err != nil {
		return CancelParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelParcelCommand) Validate() error {
	return c.guard.Validate(ErrCancelParcelCommandIsNotConstructed)
}

// Principal returns the authenticated caller.
func (c CancelParcelCommand) Principal() account.Principal {
	return c.principal
}

// TrackingNumber returns the parcel to cancel.
func (c CancelParcelCommand) TrackingNumber() parcel.TrackingNumber {
	return c.trackingNumber
}

func (c *CancelParcelCommand) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}

func (c *CancelParcelCommand) setTrackingNumber(trackingNumber parcel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	c.trackingNumber = trackingNumber
	return nil
}

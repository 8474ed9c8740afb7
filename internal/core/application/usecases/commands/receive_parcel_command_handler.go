package commands

import (
	"context"

	"parcel/internal/core/domain/model/status"
	"parcel/internal/core/domain/services"
)

// ReceiveParcelCommandHandler handles the business logic for taking a parcel
// back into warehouse custody.
type ReceiveParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	policy     services.AccessPolicy
}

// NewReceiveParcelCommandHandler creates a handler for receive operations.
func NewReceiveParcelCommandHandler(uowFactory ParcelUoWFactory, policy services.AccessPolicy) ReceiveParcelCommandHandler {
	return ReceiveParcelCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the receive command. The parcel resets to pending with its
// handler link cleared; delivered and cancelled parcels are refused by the
// aggregate.
func (h *ReceiveParcelCommandHandler) Handle(ctx context.Context, cmd ReceiveParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanReceive(cmd.Principal()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.ParcelRepository().GetByTrackingNumberForUpdate(ctx, cmd.TrackingNumber())
	if err != nil {
		return err
	}

	pending, err := uow.StatusRepository().GetByName(ctx, status.Pending)
	if err != nil {
		return err
	}

	if err = aggregate.Receive(pending); err != nil {
		return err
	}

	if err = uow.ParcelRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

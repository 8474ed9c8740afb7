package commands

import (
	"context"

	"parcel/internal/core/domain/model/status"
	"parcel/internal/core/domain/services"
)

// CancelParcelCommandHandler handles the business logic for withdrawing a
// parcel. Ownership is checked after the aggregate loads, inside the same
// transaction that writes the cancellation.
type CancelParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	policy     services.AccessPolicy
}

// NewCancelParcelCommandHandler creates a handler for cancel operations.
func NewCancelParcelCommandHandler(uowFactory ParcelUoWFactory, policy services.AccessPolicy) CancelParcelCommandHandler {
	return CancelParcelCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the cancel command. Delivered parcels are refused by the
// aggregate; cancelling clears any handler link.
func (h *CancelParcelCommandHandler) Handle(ctx context.Context, cmd CancelParcelCommand) error {
	if err := cmd.Validate(); err != nil {
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

	if err = h.policy.CanCancel(cmd.Principal(), aggregate); err != nil {
		return err
	}

	cancelled, err := uow.StatusRepository().GetByName(ctx, status.Cancelled)
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(cancelled); err != nil {
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

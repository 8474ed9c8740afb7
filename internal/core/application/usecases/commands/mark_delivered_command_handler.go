package commands

import (
	"context"

	"parcel/internal/core/domain/model/status"
	"parcel/internal/core/domain/services"
)

// MarkDeliveredCommandHandler handles the business logic for closing out a
// delivery. The caller's handler record is resolved from their user account;
// the policy then requires it to match the parcel's current custody link.
type MarkDeliveredCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
}

// NewMarkDeliveredCommandHandler creates a handler for delivery close-out operations.
func NewMarkDeliveredCommandHandler(uowFactory UoWFactory, policy services.AccessPolicy) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the delivery close-out. Legal only from in_transit; the
// handler link is cleared and the closing timeline entry written atomically
// with the status change.
func (h *MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
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

	fieldHandler, err := uow.HandlerRepository().GetByUserID(ctx, cmd.Principal().ID)
	if err != nil {
		return err
	}

	if err = h.policy.CanMarkDelivered(cmd.Principal(), aggregate, fieldHandler.ID()); err != nil {
		return err
	}

	delivered, err := uow.StatusRepository().GetByName(ctx, status.Delivered)
	if err != nil {
		return err
	}

	if err = aggregate.MarkDelivered(delivered); err != nil {
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

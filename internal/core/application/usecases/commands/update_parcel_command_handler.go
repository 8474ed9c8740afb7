package commands

import (
	"context"

	"parcel/internal/core/domain/services"
)

// UpdateParcelCommandHandler handles the business logic for back-office
// corrections: repointing reference fields and, when requested, forcing a
// non-custody status with an operator-written timeline message.
type UpdateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateParcelCommandHandler creates a handler for parcel corrections.
func NewUpdateParcelCommandHandler(uowFactory ParcelUoWFactory, policy services.AccessPolicy) UpdateParcelCommandHandler {
	return UpdateParcelCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the field merge. Field updates and the optional status
// override commit together or not at all.
func (h *UpdateParcelCommandHandler) Handle(ctx context.Context, cmd UpdateParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanUpdate(cmd.Principal()); err != nil {
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

	if cmd.ShopID() != nil {
		if err = aggregate.UpdateShop(*cmd.ShopID()); err != nil {
			return err
		}
	}
	if cmd.CategoryID() != nil {
		if err = aggregate.UpdateCategory(*cmd.CategoryID()); err != nil {
			return err
		}
	}
	if cmd.PickupID() != nil {
		if err = aggregate.UpdatePickup(*cmd.PickupID()); err != nil {
			return err
		}
	}
	if cmd.DeliveryAreaID() != nil {
		if err = aggregate.UpdateDeliveryArea(*cmd.DeliveryAreaID()); err != nil {
			return err
		}
	}

	if cmd.StatusName() != nil {
		target, resolveErr := uow.StatusRepository().GetByName(ctx, *cmd.StatusName())
		if resolveErr != nil {
			return resolveErr
		}
		if err = aggregate.Override(target, cmd.Message()); err != nil {
			return err
		}
	}

	if err = uow.ParcelRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

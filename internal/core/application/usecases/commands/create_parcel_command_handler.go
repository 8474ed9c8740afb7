package commands

import (
	"context"

	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/core/domain/model/status"
	"parcel/internal/core/domain/services"
)

// CreateParcelCommandHandler handles the business logic for pickup requests.
// Issues a tracking number, forces the pending status, and writes the parcel
// together with its first timeline entry in one transaction.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	policy     services.AccessPolicy
}

// NewCreateParcelCommandHandler creates a handler for pickup request operations.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory, policy services.AccessPolicy) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the pickup request and returns the issued tracking number.
// A duplicate tracking number collision surfaces as errs.ConflictError from
// the repository; callers may retry with a fresh command.
func (h *CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (parcel.TrackingNumber, error) {
	if err := cmd.Validate(); err != nil {
		return parcel.TrackingNumber{}, err
	}

	if err := h.policy.CanCreate(cmd.Principal()); err != nil {
		return parcel.TrackingNumber{}, err
	}

	trackingNumber, err := parcel.NewTrackingNumber()
	if err != nil {
		return parcel.TrackingNumber{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return parcel.TrackingNumber{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pending, err := uow.StatusRepository().GetByName(ctx, status.Pending)
	if err != nil {
		return parcel.TrackingNumber{}, err
	}

	aggregate, err := parcel.NewParcel(
		cmd.ParcelID(),
		trackingNumber,
		cmd.Principal().ID,
		cmd.ShopID(),
		cmd.CategoryID(),
		cmd.PickupID(),
		cmd.DeliveryAreaID(),
		pending,
	)
	if err != nil {
		return parcel.TrackingNumber{}, err
	}

	if err = uow.ParcelRepository().Add(ctx, aggregate); err != nil {
		return parcel.TrackingNumber{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return parcel.TrackingNumber{}, err
	}

	return trackingNumber, nil
}

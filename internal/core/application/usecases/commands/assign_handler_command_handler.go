package commands

import (
	"context"
	"fmt"

	"parcel/internal/core/domain/services"
	"parcel/internal/pkg/errs"
)

// AssignHandlerCommandHandler handles the business logic for handler
// assignment. The parcel row is locked for the duration of the transaction,
// so of two concurrent assignments exactly one commits; the other reloads a
// parcel whose status no longer satisfies the transition precondition.
type AssignHandlerCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
}

// NewAssignHandlerCommandHandler creates a handler for assignment operations.
func NewAssignHandlerCommandHandler(uowFactory UoWFactory, policy services.AccessPolicy) AssignHandlerCommandHandler {
	return AssignHandlerCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the assignment command. The handler record must exist and
// carry the requested role; the target status is resolved from the catalog
// before the aggregate mutates, and parcel plus timeline persist atomically.
func (h *AssignHandlerCommandHandler) Handle(ctx context.Context, cmd AssignHandlerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanAssign(cmd.Principal()); err != nil {
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

	fieldHandler, err := uow.HandlerRepository().Get(ctx, cmd.HandlerID())
	if err != nil {
		return err
	}

	if fieldHandler.Role() != cmd.Role() {
		return errs.NewValueIsInvalidErrorWithCause("handlerId",
			fmt.Errorf("handler %s is a %s, not a %s", cmd.HandlerID(), fieldHandler.Role(), cmd.Role()))
	}

	target, err := uow.StatusRepository().GetByName(ctx, cmd.Role().TargetStatus())
	if err != nil {
		return err
	}

	if err = aggregate.AssignTo(fieldHandler, target); err != nil {
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

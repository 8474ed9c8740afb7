package commands_test

import (
	"testing"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/account"
	"parcel/internal/core/domain/model/handler"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/status"
	"parcel/internal/core/domain/services"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkDeliveredCommandHandler_Handle_AssignedHandlerDelivers(t *testing.T) {
	ctx := t.Context()
	caller := principalWith(t, account.RolePackageHandler)
	deliveryman, err := handler.NewHandler(kernel.NewUUID(), caller.ID, "Karim Uddin", "01711000002", handler.RoleDeliveryman)
	require.NoError(t, err)
	aggregate := inTransitParcelOf(t, deliveryman)

	cmd, err := commands.NewMarkDeliveredCommand(caller, aggregate.TrackingNumber())
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	statusRepo := new(MockStatusRepository)
	handlerRepo := new(MockHandlerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("GetByTrackingNumberForUpdate", mock.Anything, aggregate.TrackingNumber()).Return(aggregate, nil).Once(),
		uow.On("HandlerRepository").Return(handlerRepo).Once(),
		handlerRepo.On("GetByUserID", mock.Anything, caller.ID).Return(deliveryman, nil).Once(),
		uow.On("StatusRepository").Return(statusRepo).Once(),
		statusRepo.On("GetByName", mock.Anything, status.Delivered).Return(statusOf(t, status.Delivered), nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkDeliveredCommandHandler(factory, services.NewAccessPolicy())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, status.Delivered, aggregate.Status().Name())
	assert.Nil(t, aggregate.HandlerID())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkDeliveredCommandHandler_Handle_DeniesUnassignedHandler(t *testing.T) {
	ctx := t.Context()
	caller := principalWith(t, account.RolePackageHandler)
	other, err := handler.NewHandler(kernel.NewUUID(), caller.ID, "Karim Uddin", "01711000002", handler.RoleDeliveryman)
	require.NoError(t, err)
	aggregate := inTransitParcelOf(t, handlerOf(t, handler.RoleDeliveryman))

	cmd, err := commands.NewMarkDeliveredCommand(caller, aggregate.TrackingNumber())
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	handlerRepo := new(MockHandlerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("GetByTrackingNumberForUpdate", mock.Anything, aggregate.TrackingNumber()).Return(aggregate, nil).Once(),
		uow.On("HandlerRepository").Return(handlerRepo).Once(),
		handlerRepo.On("GetByUserID", mock.Anything, caller.ID).Return(other, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkDeliveredCommandHandler(factory, services.NewAccessPolicy())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	assert.Equal(t, status.InTransit, aggregate.Status().Name())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestMarkDeliveredCommandHandler_Handle_NoHandlerRecord(t *testing.T) {
	ctx := t.Context()
	caller := principalWith(t, account.RolePackageHandler)
	aggregate := inTransitParcelOf(t, handlerOf(t, handler.RoleDeliveryman))

	cmd, err := commands.NewMarkDeliveredCommand(caller, aggregate.TrackingNumber())
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	handlerRepo := new(MockHandlerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("GetByTrackingNumberForUpdate", mock.Anything, aggregate.TrackingNumber()).Return(aggregate, nil).Once(),
		uow.On("HandlerRepository").Return(handlerRepo).Once(),
		handlerRepo.On("GetByUserID", mock.Anything, caller.ID).
			Return(nil, errs.NewObjectNotFoundError("userId", caller.ID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkDeliveredCommandHandler(factory, services.NewAccessPolicy())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

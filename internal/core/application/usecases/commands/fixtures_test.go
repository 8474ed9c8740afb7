package commands_test

import (
	"testing"

	"parcel/internal/core/domain/model/account"
	"parcel/internal/core/domain/model/handler"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/core/domain/model/status"

	"github.com/stretchr/testify/require"
)

func principalWith(t *testing.T, roles ...account.Role) account.Principal {
	t.Helper()

	p, err := account.NewPrincipal(kernel.NewUUID(), roles...)
	require.NoError(t, err)
	return p
}

func statusOf(t *testing.T, name status.Name) status.Status {
	t.Helper()

	st, err := status.NewStatus(kernel.NewUUID(), name)
	require.NoError(t, err)
	return st
}

func trackingNumberOf(t *testing.T) parcel.TrackingNumber {
	t.Helper()

	tn, err := parcel.NewTrackingNumber()
	require.NoError(t, err)
	return tn
}

func pendingParcelOf(t *testing.T, requesterID kernel.UUID) *parcel.Parcel {
	t.Helper()

	p, err := parcel.NewParcel(
		kernel.NewUUID(), trackingNumberOf(t), requesterID,
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		statusOf(t, status.Pending),
	)
	require.NoError(t, err)
	p.DrainTimeline()
	return p
}

func handlerOf(t *testing.T, role handler.Role) *handler.Handler {
	t.Helper()

	h, err := handler.NewHandler(kernel.NewUUID(), kernel.NewUUID(), "Rahim Mia", "01711000001", role)
	require.NoError(t, err)
	return h
}

func inTransitParcelOf(t *testing.T, deliveryman *handler.Handler) *parcel.Parcel {
	t.Helper()

	p := pendingParcelOf(t, kernel.NewUUID())
	require.NoError(t, p.AssignTo(handlerOf(t, handler.RolePickupman), statusOf(t, status.PickedUp)))
	require.NoError(t, p.AssignTo(deliveryman, statusOf(t, status.InTransit)))
	p.DrainTimeline()
	return p
}

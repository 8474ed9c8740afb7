package status_test

import (
	"testing"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/status"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName_Validate(t *testing.T) {
	t.Run("known names are valid", func(t *testing.T) {
		for _, name := range status.KnownNames() {
			assert.NoError(t, name.Validate(), "expected %q to be valid", name)
		}
	})

	t.Run("unknown name is rejected", func(t *testing.T) {
		err := status.Name("lost_in_space").Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		require.Error(t, status.Name("").Validate())
	})
}

func TestName_InCustody(t *testing.T) {
	testCases := []struct {
		name      status.Name
		inCustody bool
	}{
		{status.Pending, false},
		{status.PickedUp, true},
		{status.InTransit, true},
		{status.Delivered, false},
		{status.Cancelled, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name.String(), func(t *testing.T) {
			assert.Equal(t, tc.inCustody, tc.name.InCustody())
		})
	}
}

func TestNewStatus(t *testing.T) {
	t.Run("creates catalog entry", func(t *testing.T) {
		id := kernel.NewUUID()

		st, err := status.NewStatus(id, status.Pending)

		require.NoError(t, err)
		assert.True(t, st.ID().IsEqual(id))
		assert.Equal(t, status.Pending, st.Name())
		assert.False(t, st.IsZero())
		assert.NoError(t, st.Validate())
	})

	t.Run("rejects zero identifier", func(t *testing.T) {
		_, err := status.NewStatus(kernel.UUID{}, status.Pending)
		require.Error(t, err)
	})

	t.Run("rejects unknown name", func(t *testing.T) {
		_, err := status.NewStatus(kernel.NewUUID(), status.Name("teleported"))
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_ZeroValue(t *testing.T) {
	var st status.Status

	assert.True(t, st.IsZero())
	require.Error(t, st.Validate())
	assert.Equal(t, status.ErrStatusIsNotConstructed, st.Validate())
}

func TestStatus_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	a, err := status.NewStatus(id, status.Pending)
	require.NoError(t, err)
	b, err := status.NewStatus(id, status.Pending)
	require.NoError(t, err)
	c, err := status.NewStatus(kernel.NewUUID(), status.Pending)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

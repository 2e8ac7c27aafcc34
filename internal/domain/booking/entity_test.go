package booking_test

import (
	"testing"

	"staybook/internal/domain/booking"
	"staybook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	actual, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, actual.ID())
	assert.Equal(t, booking.StatusConfirmed, actual.Status())
	assert.True(t, actual.Active())
	assert.True(t, actual.Blocks())
	assert.Equal(t, int64(48_000), actual.Total().Cents())
}

func TestBookingCancel(t *testing.T) {
	t.Run("future booking cancels and frees its range", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		today := date(2025, 12, 1)
		require.NoError(t, b.Cancel(today))

		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.False(t, b.Active())
		assert.False(t, b.Blocks())
	})

	t.Run("cancelling on the check-in day succeeds", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Cancel(b.Stay().CheckIn()))
		assert.True(t, b.IsCancelled())
	})

	t.Run("cancelling after the stay began fails", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		err = b.Cancel(b.Stay().CheckIn().AddDate(0, 0, 1))
		assert.ErrorIs(t, err, booking.ErrPastCheckIn)
		assert.True(t, b.Blocks(), "failed cancel must not change state")
	})

	t.Run("cancel is not repeatable", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		today := date(2025, 12, 1)
		require.NoError(t, b.Cancel(today))
		assert.ErrorIs(t, b.Cancel(today), booking.ErrAlreadyCancelled)
	})
}

func TestBookingStatusTransitions(t *testing.T) {
	t.Run("confirmed to checked-in to checked-out", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.BeginStay())
		assert.Equal(t, booking.StatusCheckedIn, b.Status())
		assert.True(t, b.Blocks())

		require.NoError(t, b.CompleteStay())
		assert.Equal(t, booking.StatusCheckedOut, b.Status())
		assert.False(t, b.Blocks(), "checked-out stays free the room")
	})

	t.Run("cannot complete a stay that never began", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, b.CompleteStay(), booking.ErrInvalidTransition)
	})

	t.Run("cannot cancel a checked-in stay", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.BeginStay())

		// Even on the check-in day: checked-in only transitions to
		// checked-out.
		err = b.Cancel(b.Stay().CheckIn())
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
		assert.True(t, b.Blocks(), "failed cancel must not change state")
	})

	t.Run("cannot cancel a checked-out stay", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.BeginStay())
		require.NoError(t, b.CompleteStay())

		err = b.Cancel(b.Stay().CheckIn())
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})
}

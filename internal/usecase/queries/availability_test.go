package queries_test

import (
	"context"
	"testing"
	"time"

	"staybook/internal/domain/room"
	"staybook/internal/infra/memstore"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/queries"
	"staybook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type availabilityEnv struct {
	avail queries.AvailabilityQueries
	store *memstore.Store
}

func newAvailabilityEnv(t *testing.T) *availabilityEnv {
	t.Helper()
	store := memstore.New(clock.NewMockClock(date(2025, 12, 1)))
	return &availabilityEnv{
		avail: queries.NewAvailabilityQueries(store.RoomReads(), store.Availability()),
		store: store,
	}
}

func (e *availabilityEnv) addRoom(t *testing.T, label string) *room.Room {
	t.Helper()
	r, err := builder.NewRoomBuilder().WithLabel(label).BuildDomain()
	require.NoError(t, err)
	require.NoError(t, e.store.Rooms().Insert(context.Background(), r))
	return r
}

func (e *availabilityEnv) addBooking(t *testing.T, roomID uuid.UUID, checkIn, checkOut time.Time) {
	t.Helper()
	b, err := builder.NewBookingBuilder().WithRoomID(roomID).WithStay(checkIn, checkOut).BuildDomain()
	require.NoError(t, err)
	require.NoError(t, e.store.Bookings().Insert(context.Background(), b))
}

func TestSearchAvailable(t *testing.T) {
	ctx := context.Background()

	t.Run("filters rooms with overlapping blocking bookings", func(t *testing.T) {
		env := newAvailabilityEnv(t)

		busy := env.addRoom(t, "101")
		free := env.addRoom(t, "102")
		boundary := env.addRoom(t, "103")

		inactive := env.addRoom(t, "104")
		inactive.Deactivate()
		require.NoError(t, env.store.Rooms().Update(ctx, inactive))

		env.addBooking(t, busy.ID(), date(2026, 1, 3), date(2026, 1, 6))
		// Ends exactly when the query range starts
		env.addBooking(t, boundary.ID(), date(2026, 1, 1), date(2026, 1, 4))

		views, err := env.avail.SearchAvailable(ctx, date(2026, 1, 4), date(2026, 1, 8))
		require.NoError(t, err)

		require.Len(t, views, 2)
		assert.Equal(t, free.ID(), views[0].ID)
		assert.Equal(t, boundary.ID(), views[1].ID)

		labels := make([]string, len(views))
		for i, v := range views {
			labels[i] = v.Label
		}
		assert.Equal(t, []string{"102", "103"}, labels, "ordered by label, busy and inactive rooms excluded")
	})

	t.Run("cancelled bookings do not block", func(t *testing.T) {
		env := newAvailabilityEnv(t)
		r := env.addRoom(t, "201")

		b, err := builder.NewBookingBuilder().
			WithRoomID(r.ID()).
			WithStay(date(2026, 1, 1), date(2026, 1, 5)).
			BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.Cancel(date(2025, 12, 1)))
		require.NoError(t, env.store.Bookings().Insert(ctx, b))

		views, err := env.avail.SearchAvailable(ctx, date(2026, 1, 1), date(2026, 1, 5))
		require.NoError(t, err)
		assert.Len(t, views, 1)
	})

	t.Run("invalid range", func(t *testing.T) {
		env := newAvailabilityEnv(t)

		_, err := env.avail.SearchAvailable(ctx, date(2026, 1, 5), date(2026, 1, 5))
		assert.True(t, errs.Is(err, queries.ErrInvalidStayRange))
	})
}

func TestIsAvailableForRange(t *testing.T) {
	ctx := context.Background()

	t.Run("free range", func(t *testing.T) {
		env := newAvailabilityEnv(t)
		r := env.addRoom(t, "101")
		env.addBooking(t, r.ID(), date(2026, 1, 1), date(2026, 1, 5))

		ok, err := env.avail.IsAvailableForRange(ctx, r.ID(), date(2026, 1, 5), date(2026, 1, 8))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("overlapping range", func(t *testing.T) {
		env := newAvailabilityEnv(t)
		r := env.addRoom(t, "101")
		env.addBooking(t, r.ID(), date(2026, 1, 1), date(2026, 1, 5))

		ok, err := env.avail.IsAvailableForRange(ctx, r.ID(), date(2026, 1, 4), date(2026, 1, 8))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("inactive room is never available", func(t *testing.T) {
		env := newAvailabilityEnv(t)
		r := env.addRoom(t, "101")
		r.Deactivate()
		require.NoError(t, env.store.Rooms().Update(ctx, r))

		ok, err := env.avail.IsAvailableForRange(ctx, r.ID(), date(2026, 1, 1), date(2026, 1, 5))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown room", func(t *testing.T) {
		env := newAvailabilityEnv(t)

		_, err := env.avail.IsAvailableForRange(ctx, uuid.New(), date(2026, 1, 1), date(2026, 1, 5))
		assert.True(t, errs.Is(err, queries.ErrRoomNotFound))
	})

	t.Run("invalid range", func(t *testing.T) {
		env := newAvailabilityEnv(t)
		r := env.addRoom(t, "101")

		_, err := env.avail.IsAvailableForRange(ctx, r.ID(), date(2026, 1, 5), date(2026, 1, 1))
		assert.True(t, errs.Is(err, queries.ErrInvalidStayRange))
	})
}

func TestIsAvailableNow(t *testing.T) {
	ctx := context.Background()

	env := newAvailabilityEnv(t)
	r := env.addRoom(t, "101")
	env.addBooking(t, r.ID(), date(2026, 1, 1), date(2026, 1, 5))

	t.Run("occupied during the stay", func(t *testing.T) {
		ok, err := env.avail.IsAvailableNow(ctx, r.ID(), date(2026, 1, 3))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("occupied on the check-in day", func(t *testing.T) {
		ok, err := env.avail.IsAvailableNow(ctx, r.ID(), time.Date(2026, 1, 1, 18, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("free on the check-out day", func(t *testing.T) {
		ok, err := env.avail.IsAvailableNow(ctx, r.ID(), date(2026, 1, 5))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("free before the stay", func(t *testing.T) {
		ok, err := env.avail.IsAvailableNow(ctx, r.ID(), date(2025, 12, 31))
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

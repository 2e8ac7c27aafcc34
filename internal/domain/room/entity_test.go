package room_test

import (
	"strings"
	"testing"

	"staybook/internal/domain/room"
	"staybook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "101", actual.Label())
		assert.Equal(t, room.CategoryDouble, actual.Category())
		assert.True(t, actual.IsActive())
	})

	t.Run("label is trimmed", func(t *testing.T) {
		actual, err := builder.NewRoomBuilder().WithLabel("  202  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "202", actual.Label())
	})

	cases := []struct {
		name   string
		mutate func(*builder.RoomBuilder)
		errIs  error
	}{
		{
			name:   "empty label",
			mutate: func(b *builder.RoomBuilder) { b.WithLabel("   ") },
			errIs:  room.ErrEmptyLabel,
		},
		{
			name:   "label too long",
			mutate: func(b *builder.RoomBuilder) { b.WithLabel(strings.Repeat("a", room.MaxLabelLength+1)) },
			errIs:  room.ErrLabelTooLong,
		},
		{
			name:   "unknown category",
			mutate: func(b *builder.RoomBuilder) { b.WithCategory("penthouse") },
			errIs:  room.ErrInvalidCategory,
		},
		{
			name:   "zero nightly rate",
			mutate: func(b *builder.RoomBuilder) { b.WithNightlyRateCents(0) },
			errIs:  room.ErrNonPositiveRate,
		},
		{
			name:   "negative nightly rate",
			mutate: func(b *builder.RoomBuilder) { b.WithNightlyRateCents(-100) },
			errIs:  room.ErrNonPositiveRate,
		},
		{
			name:   "zero capacity",
			mutate: func(b *builder.RoomBuilder) { b.WithCapacity(0) },
			errIs:  room.ErrNonPositiveCapacity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewRoomBuilder()
			tc.mutate(b)
			_, err := b.BuildDomain()
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestRoomApplyUpdate(t *testing.T) {
	t.Run("partial update keeps other fields", func(t *testing.T) {
		r, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)

		rate := int64(20_000)
		require.NoError(t, r.ApplyUpdate(room.UpdateSpec{NightlyRateCents: &rate}))

		assert.Equal(t, int64(20_000), r.NightlyRateCents())
		assert.Equal(t, "101", r.Label())
		assert.Equal(t, room.CategoryDouble, r.Category())
	})

	t.Run("invalid update leaves the room untouched", func(t *testing.T) {
		r, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)

		empty := " "
		rate := int64(20_000)
		err = r.ApplyUpdate(room.UpdateSpec{Label: &empty, NightlyRateCents: &rate})
		assert.ErrorIs(t, err, room.ErrEmptyLabel)
		assert.Equal(t, "101", r.Label())
		assert.Equal(t, int64(12_000), r.NightlyRateCents())
	})
}

func TestRoomDeactivate(t *testing.T) {
	r, err := builder.NewRoomBuilder().BuildDomain()
	require.NoError(t, err)

	r.Deactivate()
	assert.False(t, r.IsActive())

	// Idempotent
	r.Deactivate()
	assert.False(t, r.IsActive())
}

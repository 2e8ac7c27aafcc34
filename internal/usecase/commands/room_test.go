package commands_test

import (
	"context"
	"testing"

	"staybook/internal/infra/memstore"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/commands"
	"staybook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoomCommands(t *testing.T) (commands.RoomCommands, *memstore.Store) {
	t.Helper()
	store := memstore.New(clock.NewMockClock(date(2025, 12, 1)))
	return commands.NewRoomCommands(store.Rooms(), store.RoomReads()), store
}

func TestCreateRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("basic success case", func(t *testing.T) {
		cmds, _ := newRoomCommands(t)

		view, err := cmds.CreateRoom(ctx, builder.NewRoomBuilder().BuildCreateInput())
		require.NoError(t, err)

		assert.Equal(t, "101", view.Label)
		assert.Equal(t, "double", view.Category)
		assert.True(t, view.Active)
	})

	t.Run("duplicate label among active rooms", func(t *testing.T) {
		cmds, _ := newRoomCommands(t)

		_, err := cmds.CreateRoom(ctx, builder.NewRoomBuilder().BuildCreateInput())
		require.NoError(t, err)

		_, err = cmds.CreateRoom(ctx, builder.NewRoomBuilder().BuildCreateInput())
		assert.True(t, errs.Is(err, commands.ErrDuplicateLabel))
	})

	t.Run("deactivated room frees its label", func(t *testing.T) {
		cmds, _ := newRoomCommands(t)

		created, err := cmds.CreateRoom(ctx, builder.NewRoomBuilder().BuildCreateInput())
		require.NoError(t, err)

		_, err = cmds.DeactivateRoom(ctx, created.ID)
		require.NoError(t, err)

		_, err = cmds.CreateRoom(ctx, builder.NewRoomBuilder().BuildCreateInput())
		assert.NoError(t, err)
	})

	t.Run("invalid spec", func(t *testing.T) {
		cmds, _ := newRoomCommands(t)

		in := builder.NewRoomBuilder().WithNightlyRateCents(0).BuildCreateInput()
		_, err := cmds.CreateRoom(ctx, in)
		assert.True(t, errs.Is(err, commands.ErrInvalidRoom))
	})
}

func TestUpdateRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("renames onto a free label", func(t *testing.T) {
		cmds, _ := newRoomCommands(t)

		created, err := cmds.CreateRoom(ctx, builder.NewRoomBuilder().BuildCreateInput())
		require.NoError(t, err)

		label := "301"
		view, err := cmds.UpdateRoom(ctx, created.ID, commands.UpdateRoomInput{Label: &label})
		require.NoError(t, err)
		assert.Equal(t, "301", view.Label)
	})

	t.Run("renaming onto a taken label fails", func(t *testing.T) {
		cmds, _ := newRoomCommands(t)

		_, err := cmds.CreateRoom(ctx, builder.NewRoomBuilder().BuildCreateInput())
		require.NoError(t, err)

		second, err := cmds.CreateRoom(ctx, builder.NewRoomBuilder().WithLabel("102").BuildCreateInput())
		require.NoError(t, err)

		label := "101"
		_, err = cmds.UpdateRoom(ctx, second.ID, commands.UpdateRoomInput{Label: &label})
		assert.True(t, errs.Is(err, commands.ErrDuplicateLabel))
	})

	t.Run("keeping the current label is not a conflict", func(t *testing.T) {
		cmds, _ := newRoomCommands(t)

		created, err := cmds.CreateRoom(ctx, builder.NewRoomBuilder().BuildCreateInput())
		require.NoError(t, err)

		label := created.Label
		rate := int64(15_000)
		view, err := cmds.UpdateRoom(ctx, created.ID, commands.UpdateRoomInput{
			Label:            &label,
			NightlyRateCents: &rate,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(15_000), view.NightlyRateCents)
	})

	t.Run("unknown room", func(t *testing.T) {
		cmds, _ := newRoomCommands(t)

		label := "404"
		_, err := cmds.UpdateRoom(ctx, uuid.New(), commands.UpdateRoomInput{Label: &label})
		assert.True(t, errs.Is(err, commands.ErrRoomNotFound))
	})
}

func TestDeactivateRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("soft delete is idempotent", func(t *testing.T) {
		cmds, _ := newRoomCommands(t)

		created, err := cmds.CreateRoom(ctx, builder.NewRoomBuilder().BuildCreateInput())
		require.NoError(t, err)

		view, err := cmds.DeactivateRoom(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, view.Active)

		view, err = cmds.DeactivateRoom(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, view.Active)
	})

	t.Run("deactivated room remains readable", func(t *testing.T) {
		cmds, store := newRoomCommands(t)

		created, err := cmds.CreateRoom(ctx, builder.NewRoomBuilder().BuildCreateInput())
		require.NoError(t, err)

		_, err = cmds.DeactivateRoom(ctx, created.ID)
		require.NoError(t, err)

		view, err := store.RoomReads().FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, view.Active)
	})
}

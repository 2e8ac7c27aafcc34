package commands

import (
	"context"
	"log/slog"

	"staybook/internal/domain/room"
	"staybook/internal/infra"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrDuplicateLabel = errs.New("room label already in use")
	ErrInvalidRoom    = errs.New("invalid room spec")
)

type CreateRoomInput struct {
	Label            string
	Category         string
	NightlyRateCents int64
	Capacity         int
}

type UpdateRoomInput struct {
	Label            *string
	Category         *string
	NightlyRateCents *int64
	Capacity         *int
}

type RoomCommands interface {
	CreateRoom(ctx context.Context, in CreateRoomInput) (*queries.RoomView, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, in UpdateRoomInput) (*queries.RoomView, error)
	// DeactivateRoom is an idempotent soft delete: deactivating an already
	// inactive room succeeds. Historical bookings keep referencing the room.
	DeactivateRoom(ctx context.Context, id uuid.UUID) (*queries.RoomView, error)
}

type roomCommandsImpl struct {
	roomRepo  RoomRepository
	roomReads queries.RoomReadStore
}

func NewRoomCommands(roomRepo RoomRepository, roomReads queries.RoomReadStore) RoomCommands {
	return &roomCommandsImpl{
		roomRepo:  roomRepo,
		roomReads: roomReads,
	}
}

func (c *roomCommandsImpl) CreateRoom(ctx context.Context, in CreateRoomInput) (*queries.RoomView, error) {
	roomEntity, err := room.NewRoom(in.Label, room.Category(in.Category), in.NightlyRateCents, in.Capacity)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRoom)
	}

	if err := c.ensureLabelFree(ctx, roomEntity.Label(), uuid.Nil); err != nil {
		return nil, err
	}

	if err := c.roomRepo.Insert(ctx, roomEntity); err != nil {
		// Partial unique index over active labels closes the race between
		// the lookup above and this insert.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateLabel)
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	slog.Info("room created", "room_id", roomEntity.ID(), "label", roomEntity.Label())

	return c.roomReads.FindByID(ctx, roomEntity.ID())
}

func (c *roomCommandsImpl) UpdateRoom(ctx context.Context, id uuid.UUID, in UpdateRoomInput) (*queries.RoomView, error) {
	roomEntity, err := c.roomRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	spec := room.UpdateSpec{
		NightlyRateCents: in.NightlyRateCents,
		Capacity:         in.Capacity,
	}
	if in.Label != nil {
		spec.Label = in.Label
	}
	if in.Category != nil {
		cat := room.Category(*in.Category)
		spec.Category = &cat
	}

	if err := roomEntity.ApplyUpdate(spec); err != nil {
		return nil, errs.Mark(err, ErrInvalidRoom)
	}

	if in.Label != nil {
		if err := c.ensureLabelFree(ctx, roomEntity.Label(), id); err != nil {
			return nil, err
		}
	}

	if err := c.roomRepo.Update(ctx, roomEntity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateLabel)
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	return c.roomReads.FindByID(ctx, id)
}

func (c *roomCommandsImpl) DeactivateRoom(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	roomEntity, err := c.roomRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	if roomEntity.IsActive() {
		roomEntity.Deactivate()
		if err := c.roomRepo.Update(ctx, roomEntity); err != nil {
			return nil, errs.Mark(err, ErrStorageFailure)
		}
		slog.Info("room deactivated", "room_id", id, "label", roomEntity.Label())
	}

	return c.roomReads.FindByID(ctx, id)
}

// Labels are unique among active rooms only: a deactivated room's label may
// be reused by a new room.
func (c *roomCommandsImpl) ensureLabelFree(ctx context.Context, label string, selfID uuid.UUID) error {
	existing, err := c.roomRepo.FindActiveByLabel(ctx, label)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return errs.Mark(err, ErrStorageFailure)
	}
	if existing.ID() != selfID {
		return ErrDuplicateLabel
	}
	return nil
}

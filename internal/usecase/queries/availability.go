package queries

import (
	"context"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/infra"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStayRange = errs.New("invalid stay range")
	ErrRoomNotFound     = errs.New("room not found")
	ErrStorageFailure   = errs.New("storage failure")
)

type AvailabilityQueries interface {
	// IsAvailableNow reports whether the room is free at the given instant,
	// i.e. no blocking booking's stay contains it.
	IsAvailableNow(ctx context.Context, roomID uuid.UUID, asOf time.Time) (bool, error)
	// IsAvailableForRange reports whether the room is active and has no
	// blocking booking overlapping [checkIn, checkOut).
	IsAvailableForRange(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error)
	// SearchAvailable returns every active room free for the whole range,
	// ordered by label.
	SearchAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]*RoomView, error)
}

type availabilityQueriesImpl struct {
	rooms RoomReadStore
	avail AvailabilityReadStore
}

func NewAvailabilityQueries(rooms RoomReadStore, avail AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{rooms: rooms, avail: avail}
}

func (q *availabilityQueriesImpl) IsAvailableNow(ctx context.Context, roomID uuid.UUID, asOf time.Time) (bool, error) {
	occupied, err := q.avail.OccupiedAt(ctx, roomID, asOf)
	if err != nil {
		return false, errs.Mark(err, ErrStorageFailure)
	}
	return !occupied, nil
}

func (q *availabilityQueriesImpl) IsAvailableForRange(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	stay, err := booking.NewStayRange(checkIn, checkOut)
	if err != nil {
		return false, errs.Mark(err, ErrInvalidStayRange)
	}

	roomView, err := q.rooms.FindByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, errs.Mark(err, ErrRoomNotFound)
		}
		return false, errs.Mark(err, ErrStorageFailure)
	}
	if !roomView.Active {
		return false, nil
	}

	overlap, err := q.avail.HasOverlap(ctx, roomID, stay)
	if err != nil {
		return false, errs.Mark(err, ErrStorageFailure)
	}
	return !overlap, nil
}

// SearchAvailable is one set query for conflicted rooms plus one listing of
// active rooms: O(rooms + conflicting bookings), not a per-room conflict scan.
func (q *availabilityQueriesImpl) SearchAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]*RoomView, error) {
	stay, err := booking.NewStayRange(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayRange)
	}

	busyIDs, err := q.avail.RoomIDsWithOverlap(ctx, stay)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	busy := make(map[uuid.UUID]struct{}, len(busyIDs))
	for _, id := range busyIDs {
		busy[id] = struct{}{}
	}

	active, err := q.rooms.ListActive(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	available := make([]*RoomView, 0, len(active))
	for _, r := range active {
		if _, taken := busy[r.ID]; !taken {
			available = append(available, r)
		}
	}
	return available, nil
}

package memstore

import (
	"context"
	"sort"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/infra"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingStore implements the write-side booking port. Insert holds the
// room's mutex across its overlap re-check and the commit, mirroring the
// exclusion constraint the Postgres store relies on.
type BookingStore struct {
	s *Store
}

func (r *BookingStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	entity, ok := r.s.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return cloneBooking(entity), nil
}

func (r *BookingStore) ListOverlapping(ctx context.Context, roomID uuid.UUID, stay booking.StayRange, excludeID *uuid.UUID) ([]*booking.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := r.overlappingLocked(roomID, stay, excludeID)
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if !a.Stay().CheckIn().Equal(b.Stay().CheckIn()) {
			return a.Stay().CheckIn().Before(b.Stay().CheckIn())
		}
		return r.s.created[a.ID()] < r.s.created[b.ID()]
	})
	return result, nil
}

func (r *BookingStore) Insert(ctx context.Context, entity *booking.Booking) error {
	lk := r.s.roomLock(entity.RoomID())
	lk.Lock()
	defer lk.Unlock()

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if entity.Blocks() {
		if conflicts := r.overlappingLocked(entity.RoomID(), entity.Stay(), nil); len(conflicts) > 0 {
			return infra.WrapRepoErr("overlapping booking exists", nil, infra.KindConflict)
		}
	}

	now := r.s.clock.Now()
	r.s.bookings[entity.ID()] = reconstructAt(entity, now, now)
	r.s.created[entity.ID()] = r.s.nextSeq()
	return nil
}

func (r *BookingStore) Update(ctx context.Context, entity *booking.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.bookings[entity.ID()]
	if !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	r.s.bookings[entity.ID()] = reconstructAt(entity, existing.CreatedAt(), r.s.clock.Now())
	return nil
}

// overlappingLocked requires at least a read lock on s.mu.
func (r *BookingStore) overlappingLocked(roomID uuid.UUID, stay booking.StayRange, excludeID *uuid.UUID) []*booking.Booking {
	var result []*booking.Booking
	for _, entity := range r.s.bookings {
		if entity.RoomID() != roomID || !entity.Blocks() {
			continue
		}
		if excludeID != nil && entity.ID() == *excludeID {
			continue
		}
		if entity.Stay().Overlaps(stay) {
			result = append(result, cloneBooking(entity))
		}
	}
	return result
}

// BookingReads implements the read-side booking port.
type BookingReads struct {
	s *Store
}

func (r *BookingReads) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	entity, ok := r.s.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return r.viewLocked(entity), nil
}

func (r *BookingReads) ListActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]*queries.BookingView, error) {
	return r.list(func(b *booking.Booking) bool {
		return b.Active() && b.RoomID() == roomID
	}), nil
}

func (r *BookingReads) ListActiveByGuest(ctx context.Context, guestID uuid.UUID) ([]*queries.BookingView, error) {
	return r.list(func(b *booking.Booking) bool {
		return b.Active() && b.GuestID() == guestID
	}), nil
}

func (r *BookingReads) list(keep func(*booking.Booking) bool) []*queries.BookingView {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var kept []*booking.Booking
	for _, entity := range r.s.bookings {
		if keep(entity) {
			kept = append(kept, entity)
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if !a.Stay().CheckIn().Equal(b.Stay().CheckIn()) {
			return a.Stay().CheckIn().Before(b.Stay().CheckIn())
		}
		return r.s.created[a.ID()] < r.s.created[b.ID()]
	})

	result := make([]*queries.BookingView, 0, len(kept))
	for _, entity := range kept {
		result = append(result, r.viewLocked(entity))
	}
	return result
}

func (r *BookingReads) viewLocked(b *booking.Booking) *queries.BookingView {
	view := &queries.BookingView{
		ID:         b.ID(),
		RoomID:     b.RoomID(),
		GuestID:    b.GuestID(),
		GuestName:  b.Contact().Name(),
		GuestEmail: b.Contact().Email(),
		CheckIn:    b.Stay().CheckIn(),
		CheckOut:   b.Stay().CheckOut(),
		Status:     b.Status().String(),
		TotalCents: b.Total().Cents(),
		Active:     b.Active(),
		CreatedAt:  b.CreatedAt(),
		UpdatedAt:  b.UpdatedAt(),
	}
	if !b.Note().IsEmpty() {
		note := b.Note().String()
		view.Note = &note
	}
	if rm, ok := r.s.rooms[b.RoomID()]; ok {
		view.RoomLabel = rm.Label()
	}
	return view
}

// AvailabilityReads answers overlap questions against the in-memory ledger.
type AvailabilityReads struct {
	s *Store
}

func (r *AvailabilityReads) OccupiedAt(ctx context.Context, roomID uuid.UUID, at time.Time) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, entity := range r.s.bookings {
		if entity.RoomID() == roomID && entity.Blocks() && entity.Stay().Contains(at) {
			return true, nil
		}
	}
	return false, nil
}

func (r *AvailabilityReads) HasOverlap(ctx context.Context, roomID uuid.UUID, stay booking.StayRange) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, entity := range r.s.bookings {
		if entity.RoomID() == roomID && entity.Blocks() && entity.Stay().Overlaps(stay) {
			return true, nil
		}
	}
	return false, nil
}

func (r *AvailabilityReads) RoomIDsWithOverlap(ctx context.Context, stay booking.StayRange) ([]uuid.UUID, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, entity := range r.s.bookings {
		if !entity.Blocks() || !entity.Stay().Overlaps(stay) {
			continue
		}
		if _, ok := seen[entity.RoomID()]; ok {
			continue
		}
		seen[entity.RoomID()] = struct{}{}
		ids = append(ids, entity.RoomID())
	}
	return ids, nil
}

func cloneBooking(b *booking.Booking) *booking.Booking {
	return reconstructAt(b, b.CreatedAt(), b.UpdatedAt())
}

func reconstructAt(b *booking.Booking, createdAt, updatedAt time.Time) *booking.Booking {
	return booking.ReconstructBooking(
		b.ID(), b.RoomID(), b.GuestID(), b.Contact(), b.Stay(),
		b.Status(), b.Total(), b.Note(), b.Active(), createdAt, updatedAt,
	)
}

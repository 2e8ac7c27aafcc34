package commands

import (
	"context"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/guest"
	"staybook/internal/domain/room"

	"github.com/google/uuid"
)

// Write-side store ports. Implementations classify failures with
// infra.RepositoryError kinds; the commands layer never inspects store
// internals beyond those kinds.

type RoomRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	// FindActiveByLabel implements the label-uniqueness policy: labels are
	// unique among active rooms only.
	FindActiveByLabel(ctx context.Context, label string) (*room.Room, error)
	Insert(ctx context.Context, r *room.Room) error
	Update(ctx context.Context, r *room.Room) error
}

type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// ListOverlapping returns every blocking booking on the room whose stay
	// overlaps the given range, ordered by check-in. excludeID, when non-nil,
	// omits one booking (used when re-validating an existing booking).
	ListOverlapping(ctx context.Context, roomID uuid.UUID, stay booking.StayRange, excludeID *uuid.UUID) ([]*booking.Booking, error)
	// Insert atomically re-checks the no-overlap invariant for blocking
	// bookings. A lost race with a concurrent insert on the same room fails
	// with infra.KindConflict rather than corrupting the ledger.
	Insert(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
}

type GuestRepository interface {
	FindByEmail(ctx context.Context, email string) (*guest.Guest, error)
	Insert(ctx context.Context, g *guest.Guest) error
}

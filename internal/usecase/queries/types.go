package queries

import (
	"context"
	"time"

	"staybook/internal/domain/booking"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID         uuid.UUID `json:"id"`
	RoomID     uuid.UUID `json:"room_id"`
	RoomLabel  string    `json:"room_label"`
	GuestID    uuid.UUID `json:"guest_id"`
	GuestName  string    `json:"guest_name"`
	GuestEmail string    `json:"guest_email"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"total_cents"`
	Note       *string   `json:"note,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type RoomView struct {
	ID               uuid.UUID `json:"id"`
	Label            string    `json:"label"`
	Category         string    `json:"category"`
	NightlyRateCents int64     `json:"nightly_rate_cents"`
	Capacity         int32     `json:"capacity"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type GuestView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// BookingReadStore lists are ordered by check-in, then creation order.
type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]*BookingView, error)
	ListActiveByGuest(ctx context.Context, guestID uuid.UUID) ([]*BookingView, error)
}

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	// ListActive returns active rooms ordered by label.
	ListActive(ctx context.Context) ([]*RoomView, error)
	ListAll(ctx context.Context) ([]*RoomView, error)
}

// AvailabilityReadStore answers overlap questions as indexed range queries,
// never by scanning a room's full booking history in application code.
type AvailabilityReadStore interface {
	// OccupiedAt reports whether any blocking booking contains the given day.
	OccupiedAt(ctx context.Context, roomID uuid.UUID, at time.Time) (bool, error)
	// HasOverlap reports whether any blocking booking overlaps the stay.
	HasOverlap(ctx context.Context, roomID uuid.UUID, stay booking.StayRange) (bool, error)
	// RoomIDsWithOverlap returns, as one set operation, every room that has at
	// least one blocking booking overlapping the stay.
	RoomIDsWithOverlap(ctx context.Context, stay booking.StayRange) ([]uuid.UUID, error)
}

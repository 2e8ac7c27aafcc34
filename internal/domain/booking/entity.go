package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled  = errors.New("booking is already cancelled")
	ErrPastCheckIn       = errors.New("stay has already begun")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrNegativePrice     = errors.New("price cannot be negative")
)

// Booking is a confirmed half-open stay against one room. Check-in and
// check-out are immutable after creation; date changes go through
// cancel-and-rebook so the overlap invariant is only ever enforced in one
// place.
type Booking struct {
	id        uuid.UUID
	roomID    uuid.UUID
	guestID   uuid.UUID
	contact   GuestContact
	stay      StayRange
	status    Status
	total     Money
	note      Note
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(
	roomID, guestID uuid.UUID,
	contact GuestContact,
	stay StayRange,
	total Money,
	note Note,
) *Booking {
	return &Booking{
		id:      uuid.New(),
		roomID:  roomID,
		guestID: guestID,
		contact: contact,
		stay:    stay,
		status:  StatusConfirmed,
		total:   total,
		note:    note,
		active:  true,
	}
}

func ReconstructBooking(
	id, roomID, guestID uuid.UUID,
	contact GuestContact,
	stay StayRange,
	status Status,
	total Money,
	note Note,
	active bool,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		roomID:    roomID,
		guestID:   guestID,
		contact:   contact,
		stay:      stay,
		status:    status,
		total:     total,
		note:      note,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Cancel is the only irreversible transition. It is future-looking: once the
// stay has begun the booking can no longer be cancelled, only checked out.
// today must be a midnight-normalized calendar day.
func (b *Booking) Cancel(today time.Time) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if !b.status.canTransitionTo(StatusCancelled) {
		return ErrInvalidTransition
	}
	if b.stay.CheckIn().Before(today) {
		return ErrPastCheckIn
	}
	b.status = StatusCancelled
	b.active = false
	return nil
}

func (b *Booking) BeginStay() error {
	if !b.status.canTransitionTo(StatusCheckedIn) {
		return ErrInvalidTransition
	}
	b.status = StatusCheckedIn
	return nil
}

func (b *Booking) CompleteStay() error {
	if !b.status.canTransitionTo(StatusCheckedOut) {
		return ErrInvalidTransition
	}
	b.status = StatusCheckedOut
	return nil
}

// Blocks reports whether this booking currently holds its room's inventory
// for its stay range.
func (b *Booking) Blocks() bool {
	return b.active && b.status.BlocksAvailability()
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) RoomID() uuid.UUID     { return b.roomID }
func (b *Booking) GuestID() uuid.UUID    { return b.guestID }
func (b *Booking) Contact() GuestContact { return b.contact }
func (b *Booking) Stay() StayRange       { return b.stay }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) Total() Money          { return b.total }
func (b *Booking) Note() Note            { return b.note }
func (b *Booking) Active() bool          { return b.active }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }

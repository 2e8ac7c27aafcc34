package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/infra"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidStayRange = errs.New("invalid stay range")
	ErrInvalidGuestInfo = errs.New("invalid guest contact")
	ErrRoomNotFound     = errs.New("room not found")
	ErrRoomInactive     = errs.New("room is not bookable")
	ErrBookingConflict  = errs.New("booking conflict")
	ErrBookingNotFound  = errs.New("booking not found")
	ErrAlreadyCancelled = errs.New("booking already cancelled")
	ErrPastCheckIn      = errs.New("stay has already begun")
	ErrNotBookingHolder = errs.New("booking belongs to another guest")
	ErrStorageFailure   = errs.New("storage failure")
)

// ConflictError carries the conflicting booking for caller diagnostics.
// Match with errs.Is against ErrBookingConflict; recover details with
// errors.As.
type ConflictError struct {
	BookingID uuid.UUID
	CheckIn   time.Time
	CheckOut  time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("room already booked by %s for [%s,%s)",
		e.BookingID, e.CheckIn.Format(time.DateOnly), e.CheckOut.Format(time.DateOnly))
}

type CreateBookingInput struct {
	RoomID     uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	GuestName  string
	GuestEmail string
	Note       *string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, guestID uuid.UUID, in CreateBookingInput) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, guestID, bookingID uuid.UUID) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookingRepo    BookingRepository
	roomRepo       RoomRepository
	bookingReads   queries.BookingReadStore
	bookingFactory *booking.Factory
	clock          clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	bookingReads queries.BookingReadStore,
	bookingFactory *booking.Factory,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:    bookingRepo,
		roomRepo:       roomRepo,
		bookingReads:   bookingReads,
		bookingFactory: bookingFactory,
		clock:          clock,
	}
}

// CreateBooking validates the requested stay, prices it, and inserts it only
// if no blocking booking overlaps. The pre-insert conflict check produces a
// diagnosable rejection without a write; the store's insert re-checks the
// invariant atomically, so concurrent attempts on the same room cannot both
// succeed (one of them fails with ErrBookingConflict).
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, guestID uuid.UUID, in CreateBookingInput) (*queries.BookingView, error) {
	stay, err := booking.NewStayRange(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayRange)
	}

	contact, err := booking.NewGuestContact(in.GuestName, in.GuestEmail)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidGuestInfo)
	}

	roomEntity, err := c.roomRepo.FindByID(ctx, in.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	if !roomEntity.IsActive() {
		return nil, ErrRoomInactive
	}

	conflicts, err := c.bookingRepo.ListOverlapping(ctx, in.RoomID, stay, nil)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	if len(conflicts) > 0 {
		return nil, conflictError(conflicts[0])
	}

	note := booking.NewNote("")
	if in.Note != nil {
		note = booking.NewNote(*in.Note)
	}

	bookingEntity, err := c.bookingFactory.CreateBooking(roomEntity, guestID, contact, stay, note)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayRange)
	}

	if err := c.bookingRepo.Insert(ctx, bookingEntity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// Lost the race between check and insert; fetch the winner for
			// the caller's diagnostics.
			return nil, c.lostRaceError(ctx, in.RoomID, stay)
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	view, err := c.bookingReads.FindByID(ctx, bookingEntity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return view, nil
}

// CancelBooking soft-deletes a future booking, freeing its stay range. The
// transition is irreversible; rebooking creates a new record.
func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, guestID, bookingID uuid.UUID) (*queries.BookingView, error) {
	bookingEntity, err := c.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	if bookingEntity.GuestID() != guestID {
		return nil, ErrNotBookingHolder
	}

	if err := bookingEntity.Cancel(c.clock.Today()); err != nil {
		switch {
		case errs.Is(err, booking.ErrAlreadyCancelled):
			return nil, errs.Mark(err, ErrAlreadyCancelled)
		case errs.Is(err, booking.ErrPastCheckIn, booking.ErrInvalidTransition):
			// A checked-in or checked-out booking is past cancelling too.
			return nil, errs.Mark(err, ErrPastCheckIn)
		default:
			return nil, err
		}
	}

	if err := c.bookingRepo.Update(ctx, bookingEntity); err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	slog.Info("booking cancelled",
		"booking_id", bookingID,
		"room_id", bookingEntity.RoomID(),
		"stay", bookingEntity.Stay().String())

	view, err := c.bookingReads.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return view, nil
}

func (c *bookingCommandsImpl) lostRaceError(ctx context.Context, roomID uuid.UUID, stay booking.StayRange) error {
	conflicts, err := c.bookingRepo.ListOverlapping(ctx, roomID, stay, nil)
	if err != nil || len(conflicts) == 0 {
		return ErrBookingConflict
	}
	return conflictError(conflicts[0])
}

func conflictError(b *booking.Booking) error {
	return errs.Mark(&ConflictError{
		BookingID: b.ID(),
		CheckIn:   b.Stay().CheckIn(),
		CheckOut:  b.Stay().CheckOut(),
	}, ErrBookingConflict)
}

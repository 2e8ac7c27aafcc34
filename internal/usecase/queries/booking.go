package queries

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrForbidden       = errs.New("booking belongs to another guest")
)

type BookingQueries interface {
	// GetByID enforces that the actor holds the booking.
	GetByID(ctx context.Context, actorID, id uuid.UUID) (*BookingView, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*BookingView, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
}

func NewBookingQueries(bookings BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID, id uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	if view.GuestID != actorID {
		return nil, ErrForbidden
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*BookingView, error) {
	views, err := q.bookings.ListActiveByGuest(ctx, guestID)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return views, nil
}

func (q *bookingQueriesImpl) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*BookingView, error) {
	views, err := q.bookings.ListActiveByRoom(ctx, roomID)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return views, nil
}

package request

import (
	"time"

	"github.com/google/uuid"
)

// Stay dates travel as calendar days ("2006-01-02"); wall-clock components
// have no meaning at day granularity.
type CreateBookingRequest struct {
	RoomID     uuid.UUID `json:"room_id" binding:"required"`
	CheckIn    string    `json:"check_in" binding:"required"`
	CheckOut   string    `json:"check_out" binding:"required"`
	GuestName  string    `json:"guest_name" binding:"required"`
	GuestEmail string    `json:"guest_email" binding:"required,email"`
	Note       *string   `json:"note,omitempty"`
}

func (r CreateBookingRequest) StayDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(time.DateOnly, r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err = time.Parse(time.DateOnly, r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}

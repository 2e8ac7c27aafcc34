package builder

import (
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	RoomID     uuid.UUID
	GuestID    uuid.UUID
	GuestName  string
	GuestEmail string
	CheckIn    time.Time
	CheckOut   time.Time
	RateCents  int64
	Note       *string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		RoomID:     uuid.New(),
		GuestID:    uuid.New(),
		GuestName:  "Ada Lovelace",
		GuestEmail: "ada@example.com",
		CheckIn:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		RateCents:  12_000,
	}
}

func (b *BookingBuilder) WithRoomID(id uuid.UUID) *BookingBuilder {
	b.RoomID = id
	return b
}

func (b *BookingBuilder) WithGuestID(id uuid.UUID) *BookingBuilder {
	b.GuestID = id
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithNote(note string) *BookingBuilder {
	b.Note = &note
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	stay, err := booking.NewStayRange(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	contact, err := booking.NewGuestContact(b.GuestName, b.GuestEmail)
	if err != nil {
		return nil, err
	}
	total, err := booking.NewMoney(b.RateCents * int64(stay.Nights()))
	if err != nil {
		return nil, err
	}

	note := booking.NewNote("")
	if b.Note != nil {
		note = booking.NewNote(*b.Note)
	}

	return booking.NewBooking(b.RoomID, b.GuestID, contact, stay, total, note), nil
}

func (b *BookingBuilder) BuildCreateInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		RoomID:     b.RoomID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		Note:       b.Note,
	}
}

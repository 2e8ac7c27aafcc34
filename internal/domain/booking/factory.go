package booking

import (
	"staybook/internal/domain/room"

	"github.com/google/uuid"
)

// Factory assembles a new booking from a validated room and stay, pricing it
// at creation time. The computed total is immutable afterwards, so later rate
// changes never affect existing bookings.
type Factory struct {
	PriceCalculator PriceCalculator
}

func NewFactory(priceCalculator PriceCalculator) *Factory {
	return &Factory{PriceCalculator: priceCalculator}
}

func (f *Factory) CreateBooking(
	roomEntity *room.Room,
	guestID uuid.UUID,
	contact GuestContact,
	stay StayRange,
	note Note,
) (*Booking, error) {
	totalCents := f.PriceCalculator.TotalCents(roomEntity.NightlyRateCents(), stay)
	total, err := NewMoney(totalCents)
	if err != nil {
		return nil, ErrNegativePrice
	}

	return NewBooking(roomEntity.ID(), guestID, contact, stay, total, note), nil
}

package response

import (
	"time"

	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	RoomID     uuid.UUID `json:"roomId"`
	RoomLabel  string    `json:"roomLabel"`
	GuestName  string    `json:"guestName"`
	GuestEmail string    `json:"guestEmail"`
	CheckIn    string    `json:"checkIn"`
	CheckOut   string    `json:"checkOut"`
	Nights     int       `json:"nights"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"totalCents"`
	Note       *string   `json:"note,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:         view.ID,
		RoomID:     view.RoomID,
		RoomLabel:  view.RoomLabel,
		GuestName:  view.GuestName,
		GuestEmail: view.GuestEmail,
		CheckIn:    view.CheckIn.Format(time.DateOnly),
		CheckOut:   view.CheckOut.Format(time.DateOnly),
		Nights:     int(view.CheckOut.Sub(view.CheckIn) / (24 * time.Hour)),
		Status:     view.Status,
		TotalCents: view.TotalCents,
		Note:       view.Note,
		Active:     view.Active,
		CreatedAt:  view.CreatedAt,
		UpdatedAt:  view.UpdatedAt,
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	result := make([]*BookingResponse, len(views))
	for i, view := range views {
		result[i] = FromBookingView(view)
	}
	return result
}

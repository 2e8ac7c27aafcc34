package response

import (
	"time"

	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID               uuid.UUID `json:"id"`
	Label            string    `json:"label"`
	Category         string    `json:"category"`
	NightlyRateCents int64     `json:"nightlyRateCents"`
	Capacity         int32     `json:"capacity"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func FromRoomView(view *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:               view.ID,
		Label:            view.Label,
		Category:         view.Category,
		NightlyRateCents: view.NightlyRateCents,
		Capacity:         view.Capacity,
		Active:           view.Active,
		CreatedAt:        view.CreatedAt,
		UpdatedAt:        view.UpdatedAt,
	}
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	result := make([]*RoomResponse, len(views))
	for i, view := range views {
		result[i] = FromRoomView(view)
	}
	return result
}

package response

import (
	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	RoomID    uuid.UUID `json:"roomId"`
	Available bool      `json:"available"`
}

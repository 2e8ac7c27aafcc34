package request

type CreateRoomRequest struct {
	Label            string `json:"label" binding:"required"`
	Category         string `json:"category" binding:"required"`
	NightlyRateCents int64  `json:"nightly_rate_cents" binding:"required,gt=0"`
	Capacity         int    `json:"capacity" binding:"required,gt=0"`
}

type UpdateRoomRequest struct {
	Label            *string `json:"label,omitempty"`
	Category         *string `json:"category,omitempty"`
	NightlyRateCents *int64  `json:"nightly_rate_cents,omitempty"`
	Capacity         *int    `json:"capacity,omitempty"`
}

package response

import (
	"time"

	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type GuestResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AuthResponse struct {
	Token string        `json:"token"`
	Guest GuestResponse `json:"guest"`
}

func FromAuthResult(result *commands.AuthResult) *AuthResponse {
	return &AuthResponse{
		Token: result.Token,
		Guest: fromGuestView(result.Guest),
	}
}

func fromGuestView(view *queries.GuestView) GuestResponse {
	return GuestResponse{
		ID:          view.ID,
		Email:       view.Email,
		DisplayName: view.DisplayName,
		CreatedAt:   view.CreatedAt,
	}
}

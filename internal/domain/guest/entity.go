package guest

import (
	"time"

	"github.com/google/uuid"
)

// Guest is the account holder of bookings. Holder identity is passed
// explicitly into commands; nothing in the core reads ambient session state.
type Guest struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	displayName  string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewGuest(email Email, passwordHash, displayName string) *Guest {
	return &Guest{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
	}
}

func ReconstructGuest(id uuid.UUID, email Email, passwordHash, displayName string, createdAt, updatedAt time.Time) *Guest {
	return &Guest{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (g *Guest) ID() uuid.UUID        { return g.id }
func (g *Guest) Email() Email         { return g.email }
func (g *Guest) PasswordHash() string { return g.passwordHash }
func (g *Guest) DisplayName() string  { return g.displayName }
func (g *Guest) CreatedAt() time.Time { return g.createdAt }
func (g *Guest) UpdatedAt() time.Time { return g.updatedAt }

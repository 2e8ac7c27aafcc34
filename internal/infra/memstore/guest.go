package memstore

import (
	"context"

	"staybook/internal/domain/guest"
	"staybook/internal/infra"
)

// GuestStore implements the write-side guest port.
type GuestStore struct {
	s *Store
}

func (r *GuestStore) FindByEmail(ctx context.Context, email string) (*guest.Guest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.guestsByEmail[email]
	if !ok {
		return nil, infra.WrapRepoErr("guest not found", nil, infra.KindNotFound)
	}
	return cloneGuest(r.s.guests[id]), nil
}

func (r *GuestStore) Insert(ctx context.Context, entity *guest.Guest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	email := entity.Email().Value()
	if _, ok := r.s.guestsByEmail[email]; ok {
		return infra.WrapRepoErr("duplicate guest email", nil, infra.KindDuplicateKey)
	}

	now := r.s.clock.Now()
	r.s.guests[entity.ID()] = guest.ReconstructGuest(
		entity.ID(), entity.Email(), entity.PasswordHash(), entity.DisplayName(), now, now,
	)
	r.s.guestsByEmail[email] = entity.ID()
	return nil
}

func cloneGuest(g *guest.Guest) *guest.Guest {
	return guest.ReconstructGuest(
		g.ID(), g.Email(), g.PasswordHash(), g.DisplayName(), g.CreatedAt(), g.UpdatedAt(),
	)
}

package memstore

import (
	"context"
	"sort"

	"staybook/internal/domain/room"
	"staybook/internal/infra"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

// RoomStore implements the write-side room port.
type RoomStore struct {
	s *Store
}

func (r *RoomStore) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	entity, ok := r.s.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return cloneRoom(entity), nil
}

func (r *RoomStore) FindActiveByLabel(ctx context.Context, label string) (*room.Room, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, entity := range r.s.rooms {
		if entity.IsActive() && entity.Label() == label {
			return cloneRoom(entity), nil
		}
	}
	return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
}

func (r *RoomStore) Insert(ctx context.Context, entity *room.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.rooms {
		if existing.IsActive() && existing.Label() == entity.Label() {
			return infra.WrapRepoErr("duplicate room label", nil, infra.KindDuplicateKey)
		}
	}

	now := r.s.clock.Now()
	r.s.rooms[entity.ID()] = room.ReconstructRoom(
		entity.ID(), entity.Label(), entity.Category(),
		entity.NightlyRateCents(), entity.Capacity(), entity.IsActive(),
		now, now,
	)
	return nil
}

func (r *RoomStore) Update(ctx context.Context, entity *room.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.rooms[entity.ID()]
	if !ok {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}

	r.s.rooms[entity.ID()] = room.ReconstructRoom(
		entity.ID(), entity.Label(), entity.Category(),
		entity.NightlyRateCents(), entity.Capacity(), entity.IsActive(),
		existing.CreatedAt(), r.s.clock.Now(),
	)
	return nil
}

// RoomReads implements the read-side room port over the same state.
type RoomReads struct {
	s *Store
}

func (r *RoomReads) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	entity, ok := r.s.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return roomView(entity), nil
}

func (r *RoomReads) ListActive(ctx context.Context) ([]*queries.RoomView, error) {
	return r.list(func(entity *room.Room) bool { return entity.IsActive() }), nil
}

func (r *RoomReads) ListAll(ctx context.Context) ([]*queries.RoomView, error) {
	return r.list(func(*room.Room) bool { return true }), nil
}

func (r *RoomReads) list(keep func(*room.Room) bool) []*queries.RoomView {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var result []*queries.RoomView
	for _, entity := range r.s.rooms {
		if keep(entity) {
			result = append(result, roomView(entity))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Label < result[j].Label })
	return result
}

func cloneRoom(r *room.Room) *room.Room {
	return room.ReconstructRoom(
		r.ID(), r.Label(), r.Category(), r.NightlyRateCents(),
		r.Capacity(), r.IsActive(), r.CreatedAt(), r.UpdatedAt(),
	)
}

func roomView(r *room.Room) *queries.RoomView {
	return &queries.RoomView{
		ID:               r.ID(),
		Label:            r.Label(),
		Category:         r.Category().String(),
		NightlyRateCents: r.NightlyRateCents(),
		Capacity:         int32(r.Capacity()),
		Active:           r.IsActive(),
		CreatedAt:        r.CreatedAt(),
		UpdatedAt:        r.UpdatedAt(),
	}
}

// Package memstore is an in-memory implementation of the command and query
// store ports. It backs unit tests and local runs without Postgres while
// honoring the same contracts, including per-room serialization of the
// check-then-insert sequence via a lock table keyed by room id (no global
// booking lock).
package memstore

import (
	"sync"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/guest"
	"staybook/internal/domain/room"
	"staybook/internal/pkg/clock"

	"github.com/google/uuid"
)

type Store struct {
	mu    sync.RWMutex
	clock clock.Clock

	rooms         map[uuid.UUID]*room.Room
	guests        map[uuid.UUID]*guest.Guest
	guestsByEmail map[string]uuid.UUID
	bookings      map[uuid.UUID]*booking.Booking

	seq     uint64
	created map[uuid.UUID]uint64 // booking id -> insertion order

	roomLocks struct {
		mu    sync.Mutex
		locks map[uuid.UUID]*sync.Mutex
	}
}

func New(clk clock.Clock) *Store {
	s := &Store{
		clock:         clk,
		rooms:         make(map[uuid.UUID]*room.Room),
		guests:        make(map[uuid.UUID]*guest.Guest),
		guestsByEmail: make(map[string]uuid.UUID),
		bookings:      make(map[uuid.UUID]*booking.Booking),
		created:       make(map[uuid.UUID]uint64),
	}
	return s
}

// roomLock returns the mutex serializing booking writes for one room,
// creating it on first use.
func (s *Store) roomLock(roomID uuid.UUID) *sync.Mutex {
	s.roomLocks.mu.Lock()
	defer s.roomLocks.mu.Unlock()
	if s.roomLocks.locks == nil {
		s.roomLocks.locks = make(map[uuid.UUID]*sync.Mutex)
	}
	lk, ok := s.roomLocks.locks[roomID]
	if !ok {
		lk = &sync.Mutex{}
		s.roomLocks.locks[roomID] = lk
	}
	return lk
}

func (s *Store) nextSeq() uint64 {
	s.seq++
	return s.seq
}

func (s *Store) Rooms() *RoomStore           { return &RoomStore{s} }
func (s *Store) Bookings() *BookingStore     { return &BookingStore{s} }
func (s *Store) Guests() *GuestStore         { return &GuestStore{s} }
func (s *Store) RoomReads() *RoomReads       { return &RoomReads{s} }
func (s *Store) BookingReads() *BookingReads { return &BookingReads{s} }
func (s *Store) Availability() *AvailabilityReads {
	return &AvailabilityReads{s}
}

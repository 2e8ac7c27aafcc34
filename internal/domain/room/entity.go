package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyLabel          = errors.New("room label cannot be empty")
	ErrLabelTooLong        = errors.New("room label is too long (max 50 characters)")
	ErrInvalidCategory     = errors.New("invalid room category")
	ErrNonPositiveRate     = errors.New("nightly rate must be positive")
	ErrNonPositiveCapacity = errors.New("capacity must be positive")
)

const MaxLabelLength = 50

// Room is a bookable unit. Rooms are never hard-deleted: deactivation
// excludes a room from new bookings while historical bookings keep a valid
// reference.
type Room struct {
	id               uuid.UUID
	label            string
	category         Category
	nightlyRateCents int64
	capacity         int
	active           bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewRoom(label string, category Category, nightlyRateCents int64, capacity int) (*Room, error) {
	label = strings.TrimSpace(label)
	if err := validate(label, category, nightlyRateCents, capacity); err != nil {
		return nil, err
	}

	return &Room{
		id:               uuid.New(),
		label:            label,
		category:         category,
		nightlyRateCents: nightlyRateCents,
		capacity:         capacity,
		active:           true,
	}, nil
}

func ReconstructRoom(
	id uuid.UUID,
	label string,
	category Category,
	nightlyRateCents int64,
	capacity int,
	active bool,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:               id,
		label:            label,
		category:         category,
		nightlyRateCents: nightlyRateCents,
		capacity:         capacity,
		active:           active,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// UpdateSpec is a partial administrative update. Nil fields are left as-is.
type UpdateSpec struct {
	Label            *string
	Category         *Category
	NightlyRateCents *int64
	Capacity         *int
}

func (r *Room) ApplyUpdate(spec UpdateSpec) error {
	label := r.label
	if spec.Label != nil {
		label = strings.TrimSpace(*spec.Label)
	}
	category := r.category
	if spec.Category != nil {
		category = *spec.Category
	}
	rate := r.nightlyRateCents
	if spec.NightlyRateCents != nil {
		rate = *spec.NightlyRateCents
	}
	capacity := r.capacity
	if spec.Capacity != nil {
		capacity = *spec.Capacity
	}

	if err := validate(label, category, rate, capacity); err != nil {
		return err
	}

	r.label = label
	r.category = category
	r.nightlyRateCents = rate
	r.capacity = capacity
	return nil
}

// Deactivate is an idempotent soft delete.
func (r *Room) Deactivate() {
	r.active = false
}

func validate(label string, category Category, nightlyRateCents int64, capacity int) error {
	if label == "" {
		return ErrEmptyLabel
	}
	if len(label) > MaxLabelLength {
		return ErrLabelTooLong
	}
	if !category.IsValid() {
		return ErrInvalidCategory
	}
	if nightlyRateCents <= 0 {
		return ErrNonPositiveRate
	}
	if capacity <= 0 {
		return ErrNonPositiveCapacity
	}
	return nil
}

func (r *Room) ID() uuid.UUID           { return r.id }
func (r *Room) Label() string           { return r.label }
func (r *Room) Category() Category      { return r.category }
func (r *Room) NightlyRateCents() int64 { return r.nightlyRateCents }
func (r *Room) Capacity() int           { return r.capacity }
func (r *Room) IsActive() bool          { return r.active }
func (r *Room) CreatedAt() time.Time    { return r.createdAt }
func (r *Room) UpdatedAt() time.Time    { return r.updatedAt }

package builder

import (
	"staybook/internal/domain/room"
	"staybook/internal/usecase/commands"
)

type RoomBuilder struct {
	Label            string
	Category         room.Category
	NightlyRateCents int64
	Capacity         int
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		Label:            "101",
		Category:         room.CategoryDouble,
		NightlyRateCents: 12_000,
		Capacity:         2,
	}
}

func (b *RoomBuilder) WithLabel(label string) *RoomBuilder {
	b.Label = label
	return b
}

func (b *RoomBuilder) WithCategory(category room.Category) *RoomBuilder {
	b.Category = category
	return b
}

func (b *RoomBuilder) WithNightlyRateCents(cents int64) *RoomBuilder {
	b.NightlyRateCents = cents
	return b
}

func (b *RoomBuilder) WithCapacity(capacity int) *RoomBuilder {
	b.Capacity = capacity
	return b
}

func (b *RoomBuilder) BuildDomain() (*room.Room, error) {
	return room.NewRoom(b.Label, b.Category, b.NightlyRateCents, b.Capacity)
}

func (b *RoomBuilder) BuildCreateInput() commands.CreateRoomInput {
	return commands.CreateRoomInput{
		Label:            b.Label,
		Category:         b.Category.String(),
		NightlyRateCents: b.NightlyRateCents,
		Capacity:         b.Capacity,
	}
}

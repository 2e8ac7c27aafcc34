package repository

import (
	"context"
	"time"

	"staybook/internal/domain/room"
	"staybook/internal/infra"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const roomColumns = "id, label, category, nightly_rate_cents, capacity, active, created_at, updated_at"

type RoomRepository struct {
	pool *pgxpool.Pool
}

func NewRoomRepository(pool *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{pool: pool}
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	query, args, err := psql.Select(roomColumns).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, classify("failed to build room query", err)
	}

	return r.scanRoom(ctx, query, args, "room not found")
}

func (r *RoomRepository) FindActiveByLabel(ctx context.Context, label string) (*room.Room, error) {
	query, args, err := psql.Select(roomColumns).
		From("rooms").
		Where(squirrel.Eq{"label": label, "active": true}).
		ToSql()
	if err != nil {
		return nil, classify("failed to build room label query", err)
	}

	return r.scanRoom(ctx, query, args, "room not found by label")
}

func (r *RoomRepository) Insert(ctx context.Context, entity *room.Room) error {
	query, args, err := psql.Insert("rooms").
		Columns("id", "label", "category", "nightly_rate_cents", "capacity", "active").
		Values(entity.ID(), entity.Label(), entity.Category().String(), entity.NightlyRateCents(), entity.Capacity(), entity.IsActive()).
		ToSql()
	if err != nil {
		return classify("failed to build room insert", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return classify("failed to insert room", err)
	}
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, entity *room.Room) error {
	query, args, err := psql.Update("rooms").
		Set("label", entity.Label()).
		Set("category", entity.Category().String()).
		Set("nightly_rate_cents", entity.NightlyRateCents()).
		Set("capacity", entity.Capacity()).
		Set("active", entity.IsActive()).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": entity.ID()}).
		ToSql()
	if err != nil {
		return classify("failed to build room update", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return classify("failed to update room", err)
	}
	if ct.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", errNoRowsAffected, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) scanRoom(ctx context.Context, query string, args []any, notFoundMsg string) (*room.Room, error) {
	var (
		id                   uuid.UUID
		label, category      string
		rateCents            int64
		capacity             int
		active               bool
		createdAt, updatedAt time.Time
	)
	err := r.pool.QueryRow(ctx, query, args...).
		Scan(&id, &label, &category, &rateCents, &capacity, &active, &createdAt, &updatedAt)
	if err != nil {
		return nil, classify(notFoundMsg, err)
	}

	return room.ReconstructRoom(id, label, room.Category(category), rateCents, capacity, active, createdAt, updatedAt), nil
}

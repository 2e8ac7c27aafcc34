package readstore

import (
	"context"

	"staybook/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const roomViewColumns = "id, label, category, nightly_rate_cents, capacity, active, created_at, updated_at"

type RoomReadStore struct {
	pool *pgxpool.Pool
}

func NewRoomReadStore(pool *pgxpool.Pool) *RoomReadStore {
	return &RoomReadStore{pool: pool}
}

func (s *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	query, args, err := psql.Select(roomViewColumns).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, classify("failed to build room view query", err)
	}

	row := s.pool.QueryRow(ctx, query, args...)
	view := &queries.RoomView{}
	err = row.Scan(&view.ID, &view.Label, &view.Category, &view.NightlyRateCents,
		&view.Capacity, &view.Active, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		return nil, classify("room not found", err)
	}
	return view, nil
}

func (s *RoomReadStore) ListActive(ctx context.Context) ([]*queries.RoomView, error) {
	return s.list(ctx, psql.Select(roomViewColumns).
		From("rooms").
		Where(squirrel.Eq{"active": true}).
		OrderBy("label"))
}

func (s *RoomReadStore) ListAll(ctx context.Context) ([]*queries.RoomView, error) {
	return s.list(ctx, psql.Select(roomViewColumns).
		From("rooms").
		OrderBy("label"))
}

func (s *RoomReadStore) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*queries.RoomView, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, classify("failed to build room list query", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, classify("failed to list rooms", err)
	}
	defer rows.Close()

	var result []*queries.RoomView
	for rows.Next() {
		view := &queries.RoomView{}
		err := rows.Scan(&view.ID, &view.Label, &view.Category, &view.NightlyRateCents,
			&view.Capacity, &view.Active, &view.CreatedAt, &view.UpdatedAt)
		if err != nil {
			return nil, classify("failed to scan room row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("failed to read room rows", err)
	}
	return result, nil
}

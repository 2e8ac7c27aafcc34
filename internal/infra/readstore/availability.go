package readstore

import (
	"context"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/pkg/clock"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AvailabilityReadStore answers overlap questions with indexed range queries
// against the partial gist index on blocking bookings.
type AvailabilityReadStore struct {
	pool *pgxpool.Pool
}

func NewAvailabilityReadStore(pool *pgxpool.Pool) *AvailabilityReadStore {
	return &AvailabilityReadStore{pool: pool}
}

func blockingStatuses() []string {
	statuses := make([]string, len(booking.BlockingStatuses))
	for i, s := range booking.BlockingStatuses {
		statuses[i] = s.String()
	}
	return statuses
}

func (s *AvailabilityReadStore) OccupiedAt(ctx context.Context, roomID uuid.UUID, at time.Time) (bool, error) {
	// check_in <= at < check_out, day granularity.
	day := clock.Midnight(at)
	sub := psql.Select("1").
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID, "active": true}).
		Where(squirrel.Eq{"status": blockingStatuses()}).
		Where(squirrel.LtOrEq{"check_in": day}).
		Where(squirrel.Gt{"check_out": day})

	return s.exists(ctx, sub)
}

func (s *AvailabilityReadStore) HasOverlap(ctx context.Context, roomID uuid.UUID, stay booking.StayRange) (bool, error) {
	sub := psql.Select("1").
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID, "active": true}).
		Where(squirrel.Eq{"status": blockingStatuses()}).
		Where(squirrel.Lt{"check_in": stay.CheckOut()}).
		Where(squirrel.Gt{"check_out": stay.CheckIn()})

	return s.exists(ctx, sub)
}

// RoomIDsWithOverlap is the single set operation behind SearchAvailable.
func (s *AvailabilityReadStore) RoomIDsWithOverlap(ctx context.Context, stay booking.StayRange) ([]uuid.UUID, error) {
	query, args, err := psql.Select("DISTINCT room_id").
		From("bookings").
		Where(squirrel.Eq{"active": true}).
		Where(squirrel.Eq{"status": blockingStatuses()}).
		Where(squirrel.Lt{"check_in": stay.CheckOut()}).
		Where(squirrel.Gt{"check_out": stay.CheckIn()}).
		ToSql()
	if err != nil {
		return nil, classify("failed to build conflicted rooms query", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, classify("failed to query conflicted rooms", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, classify("failed to scan room id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("failed to read conflicted room rows", err)
	}
	return ids, nil
}

func (s *AvailabilityReadStore) exists(ctx context.Context, sub squirrel.SelectBuilder) (bool, error) {
	subSQL, args, err := sub.ToSql()
	if err != nil {
		return false, classify("failed to build existence query", err)
	}

	var exists bool
	err = s.pool.QueryRow(ctx, "SELECT EXISTS ("+subSQL+")", args...).Scan(&exists)
	if err != nil {
		return false, classify("failed to run existence query", err)
	}
	return exists, nil
}

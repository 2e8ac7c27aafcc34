package readstore

import (
	"context"

	"staybook/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingViewColumns = `b.id, b.room_id, r.label, b.guest_id, b.guest_name, b.guest_email,
b.check_in, b.check_out, b.status, b.total_cents, b.note, b.active, b.created_at, b.updated_at`

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query, args, err := s.base().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, classify("failed to build booking view query", err)
	}

	view, err := scanBookingView(s.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, classify("booking not found", err)
	}
	return view, nil
}

func (s *BookingReadStore) ListActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]*queries.BookingView, error) {
	return s.list(ctx, s.base().
		Where(squirrel.Eq{"b.room_id": roomID, "b.active": true}))
}

func (s *BookingReadStore) ListActiveByGuest(ctx context.Context, guestID uuid.UUID) ([]*queries.BookingView, error) {
	return s.list(ctx, s.base().
		Where(squirrel.Eq{"b.guest_id": guestID, "b.active": true}))
}

func (s *BookingReadStore) base() squirrel.SelectBuilder {
	return psql.Select(bookingViewColumns).
		From("bookings b").
		Join("rooms r ON b.room_id = r.id").
		OrderBy("b.check_in", "b.created_at")
}

func (s *BookingReadStore) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*queries.BookingView, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, classify("failed to build booking list query", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, classify("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, classify("failed to scan booking row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("failed to read booking rows", err)
	}
	return result, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	view := &queries.BookingView{}
	err := row.Scan(&view.ID, &view.RoomID, &view.RoomLabel, &view.GuestID,
		&view.GuestName, &view.GuestEmail, &view.CheckIn, &view.CheckOut,
		&view.Status, &view.TotalCents, &view.Note, &view.Active,
		&view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return view, nil
}

package repository

import (
	"context"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/infra"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = "id, room_id, guest_id, guest_name, guest_email, check_in, check_out, status, total_cents, note, active, created_at, updated_at"

// blockingStatuses mirrors booking.BlockingStatuses for SQL predicates.
func blockingStatuses() []string {
	statuses := make([]string, len(booking.BlockingStatuses))
	for i, s := range booking.BlockingStatuses {
		statuses[i] = s.String()
	}
	return statuses
}

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	query, args, err := psql.Select(bookingColumns).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, classify("failed to build booking query", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)
	entity, err := scanBooking(row)
	if err != nil {
		return nil, classify("booking not found", err)
	}
	return entity, nil
}

func (r *BookingRepository) ListOverlapping(ctx context.Context, roomID uuid.UUID, stay booking.StayRange, excludeID *uuid.UUID) ([]*booking.Booking, error) {
	// Half-open overlap: existing.check_in < new.check_out AND
	// existing.check_out > new.check_in. Served by the gist index over
	// (room_id, daterange); touching boundaries do not match.
	builder := psql.Select(bookingColumns).
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID, "active": true}).
		Where(squirrel.Eq{"status": blockingStatuses()}).
		Where(squirrel.Lt{"check_in": stay.CheckOut()}).
		Where(squirrel.Gt{"check_out": stay.CheckIn()}).
		OrderBy("check_in", "created_at")

	if excludeID != nil {
		builder = builder.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, classify("failed to build overlap query", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, classify("failed to list overlapping bookings", err)
	}
	defer rows.Close()

	var result []*booking.Booking
	for rows.Next() {
		entity, err := scanBooking(rows)
		if err != nil {
			return nil, classify("failed to scan booking row", err)
		}
		result = append(result, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("failed to read overlap rows", err)
	}
	return result, nil
}

// Insert relies on the bookings_no_overlap exclusion constraint: the database
// serializes conflicting inserts per room, so a lost race surfaces as
// KindConflict instead of a second overlapping row.
func (r *BookingRepository) Insert(ctx context.Context, entity *booking.Booking) error {
	query, args, err := psql.Insert("bookings").
		Columns("id", "room_id", "guest_id", "guest_name", "guest_email",
			"check_in", "check_out", "status", "total_cents", "note", "active").
		Values(entity.ID(), entity.RoomID(), entity.GuestID(),
			entity.Contact().Name(), entity.Contact().Email(),
			entity.Stay().CheckIn(), entity.Stay().CheckOut(),
			entity.Status().String(), entity.Total().Cents(),
			noteParam(entity.Note()), entity.Active()).
		ToSql()
	if err != nil {
		return classify("failed to build booking insert", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return classify("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, entity *booking.Booking) error {
	query, args, err := psql.Update("bookings").
		Set("status", entity.Status().String()).
		Set("active", entity.Active()).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": entity.ID()}).
		ToSql()
	if err != nil {
		return classify("failed to build booking update", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return classify("failed to update booking", err)
	}
	if ct.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", errNoRowsAffected, infra.KindNotFound)
	}
	return nil
}

func noteParam(n booking.Note) any {
	if n.IsEmpty() {
		return nil
	}
	return n.String()
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, roomID, guestID    uuid.UUID
		guestName, guestEmail  string
		checkIn, checkOut      time.Time
		status                 string
		totalCents             int64
		note                   *string
		active                 bool
		createdAt, updatedAt   time.Time
	)
	err := row.Scan(&id, &roomID, &guestID, &guestName, &guestEmail,
		&checkIn, &checkOut, &status, &totalCents, &note, &active,
		&createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	contact, err := booking.NewGuestContact(guestName, guestEmail)
	if err != nil {
		return nil, err
	}
	stay, err := booking.NewStayRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	total, err := booking.NewMoney(totalCents)
	if err != nil {
		return nil, err
	}

	noteVO := booking.NewNote("")
	if note != nil {
		noteVO = booking.NewNote(*note)
	}

	return booking.ReconstructBooking(id, roomID, guestID, contact, stay,
		booking.Status(status), total, noteVO, active, createdAt, updatedAt), nil
}

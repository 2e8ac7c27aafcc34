package repository

import (
	"context"
	"time"

	"staybook/internal/domain/guest"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GuestRepository struct {
	pool *pgxpool.Pool
}

func NewGuestRepository(pool *pgxpool.Pool) *GuestRepository {
	return &GuestRepository{pool: pool}
}

func (r *GuestRepository) FindByEmail(ctx context.Context, email string) (*guest.Guest, error) {
	query, args, err := psql.Select("id, email, password_hash, display_name, created_at, updated_at").
		From("guests").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, classify("failed to build guest query", err)
	}

	var (
		id                         uuid.UUID
		emailValue, hash, display  string
		createdAt, updatedAt       time.Time
	)
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&id, &emailValue, &hash, &display, &createdAt, &updatedAt)
	if err != nil {
		return nil, classify("guest not found", err)
	}

	emailVO, err := guest.NewEmail(emailValue)
	if err != nil {
		return nil, classify("stored guest email is invalid", err)
	}

	return guest.ReconstructGuest(id, emailVO, hash, display, createdAt, updatedAt), nil
}

func (r *GuestRepository) Insert(ctx context.Context, entity *guest.Guest) error {
	query, args, err := psql.Insert("guests").
		Columns("id", "email", "password_hash", "display_name").
		Values(entity.ID(), entity.Email().Value(), entity.PasswordHash(), entity.DisplayName()).
		ToSql()
	if err != nil {
		return classify("failed to build guest insert", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return classify("failed to insert guest", err)
	}
	return nil
}

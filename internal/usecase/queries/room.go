package queries

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	ListActive(ctx context.Context) ([]*RoomView, error)
	ListAll(ctx context.Context) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	rooms RoomReadStore
}

func NewRoomQueries(rooms RoomReadStore) RoomQueries {
	return &roomQueriesImpl{rooms: rooms}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	view, err := q.rooms.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return view, nil
}

func (q *roomQueriesImpl) ListActive(ctx context.Context) ([]*RoomView, error) {
	views, err := q.rooms.ListActive(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return views, nil
}

func (q *roomQueriesImpl) ListAll(ctx context.Context) ([]*RoomView, error) {
	views, err := q.rooms.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return views, nil
}

package queries

import (
	"context"

	"comma-backend/internal/infra"
	"comma-backend/internal/pkg/errs"
)

type RoomQueries interface {
	List(ctx context.Context, name *string) ([]*RoomView, error)
	GetByID(ctx context.Context, id int64) (*RoomView, error)
}

type RoomViewRepo interface {
	FindAll(ctx context.Context) ([]*RoomView, error)
	FindByName(ctx context.Context, name string) ([]*RoomView, error)
	FindByID(ctx context.Context, id int64) (*RoomView, error)
}

type roomQueriesImpl struct {
	repo RoomViewRepo
}

func NewRoomQueries(repo RoomViewRepo) RoomQueries {
	return &roomQueriesImpl{repo: repo}
}

func (q *roomQueriesImpl) List(ctx context.Context, name *string) ([]*RoomView, error) {
	if name != nil && *name != "" {
		return q.repo.FindByName(ctx, *name)
	}
	return q.repo.FindAll(ctx)
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id int64) (*RoomView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, err
	}
	return view, nil
}

package queries

import (
	"context"

	"comma-backend/internal/infra"
	"comma-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

type KitchenItemQueries interface {
	List(ctx context.Context) ([]*KitchenItemView, error)
	GetByID(ctx context.Context, id int64) (*KitchenItemView, error)
}

type KitchenItemViewRepo interface {
	FindAll(ctx context.Context) ([]*KitchenItemView, error)
	FindByID(ctx context.Context, id int64) (*KitchenItemView, error)
}

type kitchenItemQueriesImpl struct {
	repo KitchenItemViewRepo
}

func NewKitchenItemQueries(repo KitchenItemViewRepo) KitchenItemQueries {
	return &kitchenItemQueriesImpl{repo: repo}
}

func (q *kitchenItemQueriesImpl) List(ctx context.Context) ([]*KitchenItemView, error) {
	return q.repo.FindAll(ctx)
}

func (q *kitchenItemQueriesImpl) GetByID(ctx context.Context, id int64) (*KitchenItemView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrKitchenItemNotFound
		}
		return nil, err
	}
	return view, nil
}

type KitchenSaleQueries interface {
	List(ctx context.Context) ([]*KitchenSaleView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*KitchenSaleView, error)
	ListByRoom(ctx context.Context, roomID int64) ([]*KitchenSaleView, error)
}

type KitchenSaleViewRepo interface {
	FindAll(ctx context.Context) ([]*KitchenSaleView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*KitchenSaleView, error)
	FindByRoomID(ctx context.Context, roomID int64) ([]*KitchenSaleView, error)
}

type kitchenSaleQueriesImpl struct {
	repo KitchenSaleViewRepo
}

func NewKitchenSaleQueries(repo KitchenSaleViewRepo) KitchenSaleQueries {
	return &kitchenSaleQueriesImpl{repo: repo}
}

func (q *kitchenSaleQueriesImpl) List(ctx context.Context) ([]*KitchenSaleView, error) {
	return q.repo.FindAll(ctx)
}

func (q *kitchenSaleQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*KitchenSaleView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSaleNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *kitchenSaleQueriesImpl) ListByRoom(ctx context.Context, roomID int64) ([]*KitchenSaleView, error) {
	return q.repo.FindByRoomID(ctx, roomID)
}

package queries

import (
	"context"

	"comma-backend/internal/infra"
	"comma-backend/internal/pkg/errs"
)

type CustomerQueries interface {
	List(ctx context.Context) ([]*CustomerView, error)
	GetByID(ctx context.Context, id string) (*CustomerView, error)
}

type CustomerViewRepo interface {
	FindAll(ctx context.Context) ([]*CustomerView, error)
	FindByID(ctx context.Context, id string) (*CustomerView, error)
}

type customerQueriesImpl struct {
	repo CustomerViewRepo
}

func NewCustomerQueries(repo CustomerViewRepo) CustomerQueries {
	return &customerQueriesImpl{repo: repo}
}

func (q *customerQueriesImpl) List(ctx context.Context) ([]*CustomerView, error) {
	return q.repo.FindAll(ctx)
}

func (q *customerQueriesImpl) GetByID(ctx context.Context, id string) (*CustomerView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCustomerNotFound
		}
		return nil, err
	}
	return view, nil
}

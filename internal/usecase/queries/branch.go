package queries

import (
	"context"

	"comma-backend/internal/infra"
	"comma-backend/internal/pkg/errs"
)

type BranchQueries interface {
	List(ctx context.Context) ([]*BranchView, error)
	GetByID(ctx context.Context, id int64) (*BranchView, error)
}

type BranchViewRepo interface {
	FindAll(ctx context.Context) ([]*BranchView, error)
	FindByID(ctx context.Context, id int64) (*BranchView, error)
}

type branchQueriesImpl struct {
	repo BranchViewRepo
}

func NewBranchQueries(repo BranchViewRepo) BranchQueries {
	return &branchQueriesImpl{repo: repo}
}

func (q *branchQueriesImpl) List(ctx context.Context) ([]*BranchView, error) {
	return q.repo.FindAll(ctx)
}

func (q *branchQueriesImpl) GetByID(ctx context.Context, id int64) (*BranchView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBranchNotFound
		}
		return nil, err
	}
	return view, nil
}

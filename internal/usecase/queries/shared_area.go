package queries

import (
	"context"

	"comma-backend/internal/infra"
	"comma-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

type SharedAreaQueries interface {
	List(ctx context.Context) ([]*SharedAreaCheckinView, error)
	ListByType(ctx context.Context, areaType string) ([]*SharedAreaCheckinView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SharedAreaCheckinView, error)
	ActiveCustomers(ctx context.Context) ([]*ActiveCustomerView, error)
}

type SharedAreaViewRepo interface {
	FindAll(ctx context.Context) ([]*SharedAreaCheckinView, error)
	FindByType(ctx context.Context, areaType string) ([]*SharedAreaCheckinView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*SharedAreaCheckinView, error)
	FindActiveCustomers(ctx context.Context) ([]*ActiveCustomerView, error)
}

type sharedAreaQueriesImpl struct {
	repo SharedAreaViewRepo
}

func NewSharedAreaQueries(repo SharedAreaViewRepo) SharedAreaQueries {
	return &sharedAreaQueriesImpl{repo: repo}
}

func (q *sharedAreaQueriesImpl) List(ctx context.Context) ([]*SharedAreaCheckinView, error) {
	return q.repo.FindAll(ctx)
}

func (q *sharedAreaQueriesImpl) ListByType(ctx context.Context, areaType string) ([]*SharedAreaCheckinView, error) {
	return q.repo.FindByType(ctx, areaType)
}

func (q *sharedAreaQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SharedAreaCheckinView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCheckinNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *sharedAreaQueriesImpl) ActiveCustomers(ctx context.Context) ([]*ActiveCustomerView, error) {
	return q.repo.FindActiveCustomers(ctx)
}

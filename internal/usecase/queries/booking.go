package queries

import (
	"context"

	"comma-backend/internal/infra"
	"comma-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	List(ctx context.Context) ([]*BookingView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ActiveCustomers(ctx context.Context) ([]*ActiveCustomerView, error)
}

type BookingViewRepo interface {
	FindAll(ctx context.Context) ([]*BookingView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindActiveCustomers(ctx context.Context) ([]*ActiveCustomerView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) List(ctx context.Context) ([]*BookingView, error) {
	return q.repo.FindAll(ctx)
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ActiveCustomers(ctx context.Context) ([]*ActiveCustomerView, error) {
	return q.repo.FindActiveCustomers(ctx)
}

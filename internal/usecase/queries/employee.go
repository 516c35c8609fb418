package queries

import "context"

type EmployeeQueries interface {
	List(ctx context.Context) ([]*EmployeeView, error)
	Count(ctx context.Context) (int64, error)
}

type EmployeeViewRepo interface {
	FindAll(ctx context.Context) ([]*EmployeeView, error)
	CountAll(ctx context.Context) (int64, error)
}

type employeeQueriesImpl struct {
	repo EmployeeViewRepo
}

func NewEmployeeQueries(repo EmployeeViewRepo) EmployeeQueries {
	return &employeeQueriesImpl{repo: repo}
}

func (q *employeeQueriesImpl) List(ctx context.Context) ([]*EmployeeView, error) {
	return q.repo.FindAll(ctx)
}

func (q *employeeQueriesImpl) Count(ctx context.Context) (int64, error) {
	return q.repo.CountAll(ctx)
}

package readstore

import (
	"context"

	"comma-backend/internal/infra"
	"comma-backend/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type EmployeeReadStore struct {
	pool *pgxpool.Pool
}

func NewEmployeeReadStore(pool *pgxpool.Pool) queries.EmployeeViewRepo {
	return &EmployeeReadStore{pool: pool}
}

func (s *EmployeeReadStore) FindAll(ctx context.Context) ([]*queries.EmployeeView, error) {
	const query = `
		SELECT id, name, role, national_id, branch, age, faculty
		FROM employees
		ORDER BY id
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query employees", err)
	}
	defer rows.Close()

	var views []*queries.EmployeeView
	for rows.Next() {
		var v queries.EmployeeView
		if err := rows.Scan(&v.ID, &v.Name, &v.Role, &v.NationalID, &v.Branch, &v.Age, &v.Faculty); err != nil {
			return nil, infra.WrapRepoErr("failed to scan employee", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate employees", err)
	}
	return views, nil
}

func (s *EmployeeReadStore) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count employees", err)
	}
	return count, nil
}

package readstore

import (
	"context"

	"comma-backend/internal/infra"
	"comma-backend/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Customers carry no branch column; their branch membership is encoded in the
// code prefix, so the count matches on it.
const branchColumns = `
	br.id, br.name, br.location, br.phone,
	(SELECT COUNT(*) FROM rooms r WHERE r.branch_id = br.id),
	(SELECT COUNT(*) FROM employees e WHERE e.branch = br.name),
	(SELECT COUNT(*) FROM customers c WHERE c.id LIKE UPPER(LEFT(br.name, 3)) || '-%')
`

type BranchReadStore struct {
	pool *pgxpool.Pool
}

func NewBranchReadStore(pool *pgxpool.Pool) queries.BranchViewRepo {
	return &BranchReadStore{pool: pool}
}

func (s *BranchReadStore) FindAll(ctx context.Context) ([]*queries.BranchView, error) {
	query := `
		SELECT ` + branchColumns + `
		FROM branches br
		ORDER BY br.id
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query branches", err)
	}
	defer rows.Close()

	var views []*queries.BranchView
	for rows.Next() {
		var v queries.BranchView
		if err := rows.Scan(&v.ID, &v.Name, &v.Location, &v.Phone, &v.RoomsCount, &v.EmployeesCount, &v.CustomersCount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan branch", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate branches", err)
	}
	return views, nil
}

func (s *BranchReadStore) FindByID(ctx context.Context, id int64) (*queries.BranchView, error) {
	query := `
		SELECT ` + branchColumns + `
		FROM branches br
		WHERE br.id = $1
	`
	var v queries.BranchView
	err := s.pool.QueryRow(ctx, query, id).
		Scan(&v.ID, &v.Name, &v.Location, &v.Phone, &v.RoomsCount, &v.EmployeesCount, &v.CustomersCount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find branch", err)
	}
	return &v, nil
}

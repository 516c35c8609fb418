package readstore

import (
	"context"

	"comma-backend/internal/infra"
	"comma-backend/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerReadStore struct {
	pool *pgxpool.Pool
}

func NewCustomerReadStore(pool *pgxpool.Pool) queries.CustomerViewRepo {
	return &CustomerReadStore{pool: pool}
}

func (s *CustomerReadStore) FindAll(ctx context.Context) ([]*queries.CustomerView, error) {
	const query = `
		SELECT id, name, email, phone, national_id, warnings, is_active
		FROM customers
		ORDER BY id
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query customers", err)
	}
	defer rows.Close()

	var views []*queries.CustomerView
	for rows.Next() {
		var v queries.CustomerView
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Phone, &v.NationalID, &v.Warnings, &v.IsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan customer", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate customers", err)
	}
	return views, nil
}

func (s *CustomerReadStore) FindByID(ctx context.Context, id string) (*queries.CustomerView, error) {
	const query = `
		SELECT id, name, email, phone, national_id, warnings, is_active
		FROM customers
		WHERE id = $1
	`
	var v queries.CustomerView
	err := s.pool.QueryRow(ctx, query, id).
		Scan(&v.ID, &v.Name, &v.Email, &v.Phone, &v.NationalID, &v.Warnings, &v.IsActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}
	return &v, nil
}

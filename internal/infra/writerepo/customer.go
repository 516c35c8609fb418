package writerepo

import (
	"context"

	"comma-backend/internal/infra"
	"comma-backend/internal/infra/db"
	"comma-backend/internal/usecase/shared"
)

type CustomerRepository struct{}

func NewCustomerRepository() shared.CustomerRepository {
	return &CustomerRepository{}
}

func (r *CustomerRepository) Insert(ctx context.Context, dbtx db.DBTX, c shared.NewCustomer) error {
	const query = `
		INSERT INTO customers (id, name, email, phone, national_id, warnings, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := dbtx.Exec(ctx, query, c.ID, c.Name, c.Email, c.Phone, c.NationalID, c.Warnings, c.IsActive)
	if err != nil {
		return infra.WrapRepoErr("failed to insert customer", err)
	}
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, dbtx db.DBTX, c shared.NewCustomer) (int64, error) {
	const query = `
		UPDATE customers
		SET name = $2, email = $3, phone = $4, national_id = $5, warnings = $6, is_active = $7
		WHERE id = $1
	`
	tag, err := dbtx.Exec(ctx, query, c.ID, c.Name, c.Email, c.Phone, c.NationalID, c.Warnings, c.IsActive)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update customer", err)
	}
	return tag.RowsAffected(), nil
}

func (r *CustomerRepository) Delete(ctx context.Context, dbtx db.DBTX, id string) (int64, error) {
	tag, err := dbtx.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete customer", err)
	}
	return tag.RowsAffected(), nil
}

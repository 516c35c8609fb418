package writerepo

import (
	"context"

	"comma-backend/internal/infra"
	"comma-backend/internal/infra/db"
	"comma-backend/internal/usecase/commands"
)

type EmployeeRepository struct{}

func NewEmployeeRepository() commands.EmployeeWriteRepository {
	return &EmployeeRepository{}
}

func (r *EmployeeRepository) Insert(ctx context.Context, dbtx db.DBTX, e commands.NewEmployee) (int64, error) {
	const query = `
		INSERT INTO employees (name, password_hash, role, national_id, branch, age, faculty)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var id int64
	err := dbtx.QueryRow(ctx, query,
		e.Name, e.PasswordHash, e.Role, e.NationalID, e.Branch, e.Age, e.Faculty).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert employee", err)
	}
	return id, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, dbtx db.DBTX, id int64, e commands.NewEmployee) (int64, error) {
	const query = `
		UPDATE employees
		SET name = $2, password_hash = $3, role = $4, national_id = $5, branch = $6, age = $7, faculty = $8
		WHERE id = $1
	`
	tag, err := dbtx.Exec(ctx, query,
		id, e.Name, e.PasswordHash, e.Role, e.NationalID, e.Branch, e.Age, e.Faculty)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update employee", err)
	}
	return tag.RowsAffected(), nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, dbtx db.DBTX, id int64) (int64, error) {
	tag, err := dbtx.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete employee", err)
	}
	return tag.RowsAffected(), nil
}

package writerepo

import (
	"context"

	"comma-backend/internal/infra"
	"comma-backend/internal/infra/db"
	"comma-backend/internal/usecase/commands"
)

type BranchRepository struct{}

func NewBranchRepository() commands.BranchWriteRepository {
	return &BranchRepository{}
}

func (r *BranchRepository) Insert(ctx context.Context, dbtx db.DBTX, branch commands.NewBranch) (int64, error) {
	const query = `
		INSERT INTO branches (name, location, phone)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	err := dbtx.QueryRow(ctx, query, branch.Name, branch.Location, branch.Phone).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert branch", err)
	}
	return id, nil
}

func (r *BranchRepository) Update(ctx context.Context, dbtx db.DBTX, id int64, branch commands.NewBranch) (int64, error) {
	const query = `
		UPDATE branches
		SET name = $2, location = $3, phone = $4
		WHERE id = $1
	`
	tag, err := dbtx.Exec(ctx, query, id, branch.Name, branch.Location, branch.Phone)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update branch", err)
	}
	return tag.RowsAffected(), nil
}

func (r *BranchRepository) Delete(ctx context.Context, dbtx db.DBTX, id int64) (int64, error) {
	tag, err := dbtx.Exec(ctx, `DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete branch", err)
	}
	return tag.RowsAffected(), nil
}

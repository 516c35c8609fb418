package commands

import (
	"context"

	"comma-backend/internal/infra"
	"comma-backend/internal/infra/db"
	"comma-backend/internal/pkg/errs"
	"comma-backend/internal/usecase/queries"
	"comma-backend/internal/usecase/shared"
)

type NewBranch struct {
	Name     string
	Location string
	Phone    string
}

type BranchWriteRepository interface {
	Insert(ctx context.Context, dbtx db.DBTX, branch NewBranch) (int64, error)
	Update(ctx context.Context, dbtx db.DBTX, id int64, branch NewBranch) (int64, error)
	Delete(ctx context.Context, dbtx db.DBTX, id int64) (int64, error)
}

type BranchCommands interface {
	Create(ctx context.Context, branch NewBranch) (*queries.BranchView, error)
	Update(ctx context.Context, id int64, branch NewBranch) (*queries.BranchView, error)
	Delete(ctx context.Context, id int64) error
}

type branchUseCaseImpl struct {
	uow           shared.UnitOfWork
	branchRepo    BranchWriteRepository
	branchQueries queries.BranchQueries
}

func NewBranchUseCase(
	uow shared.UnitOfWork,
	branchRepo BranchWriteRepository,
	branchQueries queries.BranchQueries,
) BranchCommands {
	return &branchUseCaseImpl{
		uow:           uow,
		branchRepo:    branchRepo,
		branchQueries: branchQueries,
	}
}

func (b *branchUseCaseImpl) Create(ctx context.Context, branch NewBranch) (*queries.BranchView, error) {
	var branchID int64
	err := b.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		id, err := b.branchRepo.Insert(ctx, dbtx, branch)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		branchID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return b.branchQueries.GetByID(ctx, branchID)
}

func (b *branchUseCaseImpl) Update(ctx context.Context, id int64, branch NewBranch) (*queries.BranchView, error) {
	err := b.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		affected, err := b.branchRepo.Update(ctx, dbtx, id, branch)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return errs.ErrBranchNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return b.branchQueries.GetByID(ctx, id)
}

// Delete refuses to remove a branch that rooms or employees still reference.
func (b *branchUseCaseImpl) Delete(ctx context.Context, id int64) error {
	return b.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		affected, err := b.branchRepo.Delete(ctx, dbtx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.ErrBranchInUse
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return errs.ErrBranchNotFound
		}
		return nil
	})
}

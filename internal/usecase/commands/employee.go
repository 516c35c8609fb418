package commands

import (
	"context"

	"comma-backend/internal/domain/employee"
	"comma-backend/internal/infra"
	"comma-backend/internal/infra/db"
	"comma-backend/internal/pkg/errs"
	"comma-backend/internal/pkg/password"
	"comma-backend/internal/usecase/shared"
)

type CreateEmployeeInput struct {
	Name       string
	Password   string
	Role       string
	NationalID string
	Branch     string
	Age        *int32
	Faculty    *string
}

type UpdateEmployeeInput struct {
	ID         int64
	Name       string
	Role       string
	NationalID string
	Branch     string
	Age        *int32
	Faculty    *string
	Password   *string // nil keeps the current password
}

type NewEmployee struct {
	Name         string
	PasswordHash string
	Role         string
	NationalID   string
	Branch       string
	Age          *int32
	Faculty      *string
}

type EmployeeWriteRepository interface {
	Insert(ctx context.Context, dbtx db.DBTX, e NewEmployee) (int64, error)
	Update(ctx context.Context, dbtx db.DBTX, id int64, e NewEmployee) (int64, error)
	Delete(ctx context.Context, dbtx db.DBTX, id int64) (int64, error)
}

type EmployeeCommands interface {
	Create(ctx context.Context, input CreateEmployeeInput) (int64, error)
	Update(ctx context.Context, input UpdateEmployeeInput) error
	Delete(ctx context.Context, id int64) error
}

type employeeUseCaseImpl struct {
	uow          shared.UnitOfWork
	employeeRepo EmployeeWriteRepository
}

func NewEmployeeUseCase(
	uow shared.UnitOfWork,
	employeeRepo EmployeeWriteRepository,
) EmployeeCommands {
	return &employeeUseCaseImpl{
		uow:          uow,
		employeeRepo: employeeRepo,
	}
}

func (e *employeeUseCaseImpl) Create(ctx context.Context, input CreateEmployeeInput) (int64, error) {
	role, err := employee.NewRole(input.Role)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}

	hash, err := password.HashPassword(input.Password)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}

	var employeeID int64
	err = e.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		record := NewEmployee{
			Name:         input.Name,
			PasswordHash: hash,
			Role:         role.String(),
			NationalID:   input.NationalID,
			Branch:       input.Branch,
			Age:          input.Age,
			Faculty:      input.Faculty,
		}
		id, err := e.employeeRepo.Insert(ctx, dbtx, record)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrDuplicateNationalID
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		employeeID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return employeeID, nil
}

func (e *employeeUseCaseImpl) Update(ctx context.Context, input UpdateEmployeeInput) error {
	role, err := employee.NewRole(input.Role)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	current, err := e.uow.CommandReads().EmployeeByID(ctx, input.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrEmployeeNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	hash := current.PasswordHash
	if input.Password != nil {
		hash, err = password.HashPassword(*input.Password)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	return e.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		record := NewEmployee{
			Name:         input.Name,
			PasswordHash: hash,
			Role:         role.String(),
			NationalID:   input.NationalID,
			Branch:       input.Branch,
			Age:          input.Age,
			Faculty:      input.Faculty,
		}
		affected, err := e.employeeRepo.Update(ctx, dbtx, input.ID, record)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrDuplicateNationalID
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return errs.ErrEmployeeNotFound
		}
		return nil
	})
}

func (e *employeeUseCaseImpl) Delete(ctx context.Context, id int64) error {
	return e.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		affected, err := e.employeeRepo.Delete(ctx, dbtx, id)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return errs.ErrEmployeeNotFound
		}
		return nil
	})
}

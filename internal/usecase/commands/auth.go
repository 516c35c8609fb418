package commands

import (
	"context"

	"comma-backend/internal/domain/employee"
	"comma-backend/internal/infra"
	"comma-backend/internal/pkg/errs"
	"comma-backend/internal/pkg/jwt"
	"comma-backend/internal/pkg/password"
	"comma-backend/internal/usecase/shared"
)

type LoginResult struct {
	Token      string
	EmployeeID int64
	Name       string
	Role       string
	Branch     string
}

type AuthCommands interface {
	Login(ctx context.Context, nationalID, plainPassword string) (*LoginResult, error)
}

type authUseCaseImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewAuthUseCase(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authUseCaseImpl{
		uow:        uow,
		jwtService: jwtService,
	}
}

// Login authenticates by national ID and password. A missing employee and a
// wrong password both come back as invalid credentials so the response never
// confirms which national IDs exist.
func (a *authUseCaseImpl) Login(ctx context.Context, nationalID, plainPassword string) (*LoginResult, error) {
	emp, err := a.uow.CommandReads().EmployeeByNationalID(ctx, nationalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(emp.PasswordHash, plainPassword); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	role, err := employee.NewRole(emp.Role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	token, err := a.jwtService.GenerateToken(emp.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign token")
	}

	return &LoginResult{
		Token:      token,
		EmployeeID: emp.ID,
		Name:       emp.Name,
		Role:       role.String(),
		Branch:     emp.Branch,
	}, nil
}

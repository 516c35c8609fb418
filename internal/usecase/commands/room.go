package commands

import (
	"context"

	"comma-backend/internal/domain/billing"
	"comma-backend/internal/infra"
	"comma-backend/internal/infra/db"
	"comma-backend/internal/pkg/errs"
	"comma-backend/internal/usecase/queries"
	"comma-backend/internal/usecase/shared"
)

type NewRoom struct {
	Name      string
	BranchID  int64
	Type      string
	Capacity  int32
	Price     float64
	PriceType string
}

type RoomWriteRepository interface {
	Insert(ctx context.Context, dbtx db.DBTX, room NewRoom) (int64, error)
	Update(ctx context.Context, dbtx db.DBTX, id int64, room NewRoom) (int64, error)
	Delete(ctx context.Context, dbtx db.DBTX, id int64) (int64, error)
}

type RoomCommands interface {
	Create(ctx context.Context, room NewRoom) (*queries.RoomView, error)
	Update(ctx context.Context, id int64, room NewRoom) (*queries.RoomView, error)
	Delete(ctx context.Context, id int64) error
}

type roomUseCaseImpl struct {
	uow         shared.UnitOfWork
	roomRepo    RoomWriteRepository
	roomQueries queries.RoomQueries
}

func NewRoomUseCase(
	uow shared.UnitOfWork,
	roomRepo RoomWriteRepository,
	roomQueries queries.RoomQueries,
) RoomCommands {
	return &roomUseCaseImpl{
		uow:         uow,
		roomRepo:    roomRepo,
		roomQueries: roomQueries,
	}
}

func (r *roomUseCaseImpl) Create(ctx context.Context, room NewRoom) (*queries.RoomView, error) {
	if !billing.Tariff(room.PriceType).IsValid() {
		return nil, errs.Mark(errs.New("price type must be hour or day"), errs.ErrDomainValidation)
	}

	var roomID int64
	err := r.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		id, err := r.roomRepo.Insert(ctx, dbtx, room)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.ErrBranchNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		roomID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.roomQueries.GetByID(ctx, roomID)
}

func (r *roomUseCaseImpl) Update(ctx context.Context, id int64, room NewRoom) (*queries.RoomView, error) {
	if !billing.Tariff(room.PriceType).IsValid() {
		return nil, errs.Mark(errs.New("price type must be hour or day"), errs.ErrDomainValidation)
	}

	err := r.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		affected, err := r.roomRepo.Update(ctx, dbtx, id, room)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.ErrBranchNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return errs.ErrRoomNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.roomQueries.GetByID(ctx, id)
}

func (r *roomUseCaseImpl) Delete(ctx context.Context, id int64) error {
	return r.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		affected, err := r.roomRepo.Delete(ctx, dbtx, id)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return errs.ErrRoomNotFound
		}
		return nil
	})
}

package commands

import (
	"context"

	"comma-backend/internal/domain/billing"
	"comma-backend/internal/infra"
	"comma-backend/internal/pkg/errs"
	"comma-backend/internal/usecase/queries"
	"comma-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateKitchenSaleInput struct {
	RoomID int64
	Orders []KitchenOrderLine
}

type KitchenSaleCommands interface {
	Create(ctx context.Context, input CreateKitchenSaleInput) (*queries.KitchenSaleView, error)
}

type kitchenSaleUseCaseImpl struct {
	uow         shared.UnitOfWork
	saleQueries queries.KitchenSaleQueries
}

func NewKitchenSaleUseCase(
	uow shared.UnitOfWork,
	saleQueries queries.KitchenSaleQueries,
) KitchenSaleCommands {
	return &kitchenSaleUseCaseImpl{
		uow:         uow,
		saleQueries: saleQueries,
	}
}

// Create records a mid-stay kitchen order against the room's active booking.
// Every ordered item must exist in the catalog; orders are taken at the
// counter where an unknown item is an operator mistake, not stale data.
func (k *kitchenSaleUseCaseImpl) Create(ctx context.Context, input CreateKitchenSaleInput) (*queries.KitchenSaleView, error) {
	if len(input.Orders) == 0 {
		return nil, errs.Mark(errs.New("order must contain at least one item"), errs.ErrDomainValidation)
	}

	var saleID uuid.UUID
	err := k.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		booking, err := tx.Reads().ActiveBookingForRoom(ctx, input.RoomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrNoActiveBooking
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		ids := make([]int64, 0, len(input.Orders))
		for _, o := range input.Orders {
			if o.Quantity <= 0 {
				return errs.ErrInvalidQuantity
			}
			ids = append(ids, o.ItemID)
		}

		items, err := tx.Reads().KitchenItemsByIDs(ctx, ids)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		byID := make(map[int64]shared.KitchenItemSnapshot, len(items))
		for _, it := range items {
			byID[it.ID] = it
		}

		lines := make([]billing.KitchenLine, 0, len(input.Orders))
		for _, o := range input.Orders {
			item, ok := byID[o.ItemID]
			if !ok {
				return errs.ErrKitchenItemNotFound
			}
			lines = append(lines, billing.KitchenLine{
				ItemID:   item.ID,
				Name:     item.Name,
				Price:    item.Price,
				Quantity: o.Quantity,
			})
		}

		sale := shared.NewKitchenSale{
			ID:         uuid.New(),
			RoomID:     input.RoomID,
			CustomerID: booking.CustomerID,
			Items:      flattenKitchenLines(lines),
			TotalPrice: billing.SumKitchenLines(lines),
		}
		if err := tx.KitchenSales().Insert(ctx, tx.DB(), sale); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		saleID = sale.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return k.saleQueries.GetByID(ctx, saleID)
}

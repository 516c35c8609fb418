package commands

import (
	"context"
	"fmt"
	"strings"

	"comma-backend/internal/domain/billing"
	"comma-backend/internal/domain/session"
	"comma-backend/internal/infra"
	"comma-backend/internal/pkg/clock"
	"comma-backend/internal/pkg/errs"
	"comma-backend/internal/usecase/queries"
	"comma-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckInInput struct {
	CustomerID string
	RoomName   string
}

type KitchenOrderLine struct {
	ItemID   int64
	Quantity int
}

type CheckOutInput struct {
	BookingID          uuid.UUID
	DiscountPercentage float64
	KitchenOrders      []KitchenOrderLine
}

type CheckOutResult struct {
	Booking      *queries.BookingView
	RoomCost     float64
	KitchenCost  float64
	TotalMinutes int32
}

type BookingCommands interface {
	CheckIn(ctx context.Context, input CheckInInput) (*queries.BookingView, error)
	CheckOut(ctx context.Context, input CheckOutInput) (*CheckOutResult, error)
	Cancel(ctx context.Context, bookingID uuid.UUID, reason string) error
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	bookingQueries queries.BookingQueries,
	clock clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		clock:          clock,
	}
}

// CheckIn opens a booking for a room. The occupancy checks up front give
// callers precise errors; the partial unique indexes on the active rows are
// what actually close the race between two concurrent check-ins.
func (b *bookingUseCaseImpl) CheckIn(ctx context.Context, input CheckInInput) (*queries.BookingView, error) {
	customer, err := b.findCustomer(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	room, err := b.findRoom(ctx, input.RoomName)
	if err != nil {
		return nil, err
	}

	entity, err := session.NewSession(session.KindBooking, customer.ID, room.Name, b.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var bookingID uuid.UUID
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		occupied, err := tx.Reads().RoomOccupied(ctx, room.Name)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if occupied {
			return errs.ErrRoomOccupied
		}

		active, err := tx.Reads().HasActiveBooking(ctx, customer.ID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if active {
			return errs.ErrCustomerAlreadyActive
		}

		if err := tx.Bookings().Create(ctx, tx.DB(), entity, customer.Name); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrRoomOccupied
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		roomName := room.Name
		entry := shared.ActiveIndexEntry{
			CustomerID:  customer.ID,
			Name:        customer.Name,
			Phone:       customer.Phone,
			CheckInTime: entity.CheckInTime(),
			Room:        &roomName,
		}
		if err := tx.ActiveIndex().InsertBooking(ctx, tx.DB(), entry); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrCustomerAlreadyActive
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		bookingID = entity.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return b.bookingQueries.GetByID(ctx, bookingID)
}

// CheckOut settles an active booking: room time plus kitchen orders, minus
// the discount, in one transaction with the active index cleanup.
func (b *bookingUseCaseImpl) CheckOut(ctx context.Context, input CheckOutInput) (*CheckOutResult, error) {
	discount, err := billing.NewDiscount(input.DiscountPercentage)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDiscount)
	}

	var result CheckOutResult
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, input.BookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if snap.Status != session.StatusActive.String() {
			return errs.ErrSessionNotActive
		}

		room, err := tx.Reads().RoomByName(ctx, snap.Resource)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrRoomNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		entity := session.Reconstruct(
			snap.ID, session.KindBooking, snap.CustomerID, snap.Resource,
			snap.CheckInTime, nil, session.StatusActive, nil,
		)
		now := b.clock.Now()
		elapsed := entity.Elapsed(now)
		if err := entity.CheckOut(now); err != nil {
			return errs.Mark(err, errs.ErrSessionNotActive)
		}

		roomCost := billing.RoomCost(room.Price, billing.Tariff(room.PriceType), elapsed)

		lines, err := resolveKitchenLines(ctx, tx, input.KitchenOrders)
		if err != nil {
			return err
		}
		kitchenCost := billing.SumKitchenLines(lines)

		total := discount.Apply(roomCost + kitchenCost)
		totalMinutes := int32(elapsed.Minutes())

		affected, err := tx.Bookings().Close(ctx, tx.DB(), snap.ID, now, totalMinutes, total, discount.Percent())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return errs.ErrSessionNotActive
		}

		if err := tx.ActiveIndex().DeleteBooking(ctx, tx.DB(), snap.CustomerID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if len(lines) > 0 {
			sale := shared.NewKitchenSale{
				ID:         uuid.New(),
				RoomID:     room.ID,
				CustomerID: snap.CustomerID,
				Items:      flattenKitchenLines(lines),
				TotalPrice: kitchenCost,
			}
			if err := tx.KitchenSales().Insert(ctx, tx.DB(), sale); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		result.RoomCost = roomCost
		result.KitchenCost = kitchenCost
		result.TotalMinutes = totalMinutes
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := b.bookingQueries.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}
	result.Booking = view
	return &result, nil
}

// Cancel closes an active booking without billing and frees the room.
func (b *bookingUseCaseImpl) Cancel(ctx context.Context, bookingID uuid.UUID, reason string) error {
	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if snap.Status != session.StatusActive.String() {
			return errs.ErrSessionNotActive
		}

		affected, err := tx.Bookings().Cancel(ctx, tx.DB(), bookingID, reason)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return errs.ErrSessionNotActive
		}

		if err := tx.ActiveIndex().DeleteBooking(ctx, tx.DB(), snap.CustomerID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (b *bookingUseCaseImpl) findCustomer(ctx context.Context, id string) (*shared.CustomerSnapshot, error) {
	customer, err := b.uow.CommandReads().CustomerByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCustomerNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return customer, nil
}

func (b *bookingUseCaseImpl) findRoom(ctx context.Context, name string) (*shared.RoomSnapshot, error) {
	room, err := b.uow.CommandReads().RoomByName(ctx, name)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return room, nil
}

// resolveKitchenLines looks up catalog prices for the ordered items. Item IDs
// that no longer exist in the catalog are skipped rather than failing the
// whole checkout; non-positive quantities are rejected.
func resolveKitchenLines(
	ctx context.Context,
	tx shared.Tx,
	orders []KitchenOrderLine,
) ([]billing.KitchenLine, error) {
	if len(orders) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		if o.Quantity <= 0 {
			return nil, errs.ErrInvalidQuantity
		}
		ids = append(ids, o.ItemID)
	}

	items, err := tx.Reads().KitchenItemsByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	byID := make(map[int64]shared.KitchenItemSnapshot, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	lines := make([]billing.KitchenLine, 0, len(orders))
	for _, o := range orders {
		item, ok := byID[o.ItemID]
		if !ok {
			continue
		}
		lines = append(lines, billing.KitchenLine{
			ItemID:   item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: o.Quantity,
		})
	}
	return lines, nil
}

// flattenKitchenLines renders ordered items as "Name (Nx)" joined by commas,
// the display format the sales listing expects.
func flattenKitchenLines(lines []billing.KitchenLine) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, fmt.Sprintf("%s (%dx)", l.Name, l.Quantity))
	}
	return strings.Join(parts, ", ")
}

package commands

import (
	"context"

	"comma-backend/internal/domain/billing"
	"comma-backend/internal/domain/session"
	"comma-backend/internal/infra"
	"comma-backend/internal/pkg/clock"
	"comma-backend/internal/pkg/errs"
	"comma-backend/internal/usecase/queries"
	"comma-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type SharedAreaCheckInInput struct {
	CustomerID string
	AreaType   string
}

type SharedAreaCheckOutInput struct {
	CheckinID     uuid.UUID
	KitchenOrders []KitchenOrderLine
}

type SharedAreaCheckOutResult struct {
	Checkin      *queries.SharedAreaCheckinView
	AreaCost     float64
	KitchenCost  float64
	TotalMinutes int32
}

type SharedAreaCommands interface {
	CheckIn(ctx context.Context, input SharedAreaCheckInInput) (*queries.SharedAreaCheckinView, error)
	CheckOut(ctx context.Context, input SharedAreaCheckOutInput) (*SharedAreaCheckOutResult, error)
	Cancel(ctx context.Context, checkinID uuid.UUID, reason string) error
}

type sharedAreaUseCaseImpl struct {
	uow               shared.UnitOfWork
	sharedAreaQueries queries.SharedAreaQueries
	clock             clock.Clock
}

func NewSharedAreaUseCase(
	uow shared.UnitOfWork,
	sharedAreaQueries queries.SharedAreaQueries,
	clock clock.Clock,
) SharedAreaCommands {
	return &sharedAreaUseCaseImpl{
		uow:               uow,
		sharedAreaQueries: sharedAreaQueries,
		clock:             clock,
	}
}

// CheckIn opens a shared-area session. Area types are a closed set with
// fixed rates, so the area is validated here instead of against a table.
func (s *sharedAreaUseCaseImpl) CheckIn(ctx context.Context, input SharedAreaCheckInInput) (*queries.SharedAreaCheckinView, error) {
	area, err := billing.NewAreaType(input.AreaType)
	if err != nil {
		return nil, errs.ErrUnknownAreaType
	}

	customer, err := s.uow.CommandReads().CustomerByID(ctx, input.CustomerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCustomerNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entity, err := session.NewSession(session.KindSharedArea, customer.ID, string(area), s.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var checkinID uuid.UUID
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		active, err := tx.Reads().HasActiveCheckin(ctx, customer.ID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if active {
			return errs.ErrCustomerAlreadyActive
		}

		if err := tx.Checkins().Create(ctx, tx.DB(), entity, customer.Name); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrCustomerAlreadyActive
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		entry := shared.ActiveIndexEntry{
			CustomerID:  customer.ID,
			Name:        customer.Name,
			Phone:       customer.Phone,
			CheckInTime: entity.CheckInTime(),
		}
		if err := tx.ActiveIndex().InsertSharedArea(ctx, tx.DB(), entry); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrCustomerAlreadyActive
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		checkinID = entity.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.sharedAreaQueries.GetByID(ctx, checkinID)
}

// CheckOut settles an active shared-area session: the area's fixed rate for
// the elapsed time plus any kitchen orders brought to the till. Shared areas
// have no room, so no sale row is recorded; the orders land in the session's
// total cost only.
func (s *sharedAreaUseCaseImpl) CheckOut(ctx context.Context, input SharedAreaCheckOutInput) (*SharedAreaCheckOutResult, error) {
	var result SharedAreaCheckOutResult
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().CheckinByID(ctx, input.CheckinID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrCheckinNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if snap.Status != session.StatusActive.String() {
			return errs.ErrSessionNotActive
		}

		area, err := billing.NewAreaType(snap.Resource)
		if err != nil {
			return errs.ErrUnknownAreaType
		}

		entity := session.Reconstruct(
			snap.ID, session.KindSharedArea, snap.CustomerID, snap.Resource,
			snap.CheckInTime, nil, session.StatusActive, nil,
		)
		now := s.clock.Now()
		elapsed := entity.Elapsed(now)
		if err := entity.CheckOut(now); err != nil {
			return errs.Mark(err, errs.ErrSessionNotActive)
		}

		areaCost, err := billing.AreaCost(area, elapsed.Hours())
		if err != nil {
			return errs.ErrUnknownAreaType
		}

		lines, err := resolveKitchenLines(ctx, tx, input.KitchenOrders)
		if err != nil {
			return err
		}
		kitchenCost := billing.SumKitchenLines(lines)

		total := areaCost + kitchenCost
		totalMinutes := int32(elapsed.Minutes())

		affected, err := tx.Checkins().Close(ctx, tx.DB(), snap.ID, now, totalMinutes, total)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return errs.ErrSessionNotActive
		}

		if err := tx.ActiveIndex().DeleteSharedArea(ctx, tx.DB(), snap.CustomerID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result.AreaCost = areaCost
		result.KitchenCost = kitchenCost
		result.TotalMinutes = totalMinutes
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := s.sharedAreaQueries.GetByID(ctx, input.CheckinID)
	if err != nil {
		return nil, err
	}
	result.Checkin = view
	return &result, nil
}

// Cancel closes an active shared-area session without billing.
func (s *sharedAreaUseCaseImpl) Cancel(ctx context.Context, checkinID uuid.UUID, reason string) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().CheckinByID(ctx, checkinID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrCheckinNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if snap.Status != session.StatusActive.String() {
			return errs.ErrSessionNotActive
		}

		affected, err := tx.Checkins().Cancel(ctx, tx.DB(), checkinID, reason)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return errs.ErrSessionNotActive
		}

		if err := tx.ActiveIndex().DeleteSharedArea(ctx, tx.DB(), snap.CustomerID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

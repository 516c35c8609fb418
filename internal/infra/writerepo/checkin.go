package writerepo

import (
	"context"
	"time"

	"comma-backend/internal/domain/session"
	"comma-backend/internal/infra"
	"comma-backend/internal/infra/db"
	"comma-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckinRepository struct{}

func NewCheckinRepository() shared.CheckinRepository {
	return &CheckinRepository{}
}

func (r *CheckinRepository) Create(ctx context.Context, dbtx db.DBTX, s *session.Session, customerName string) error {
	const query = `
		INSERT INTO shared_area_checkins (id, customer_id, customer_name, type, check_in_time, status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := dbtx.Exec(ctx, query,
		s.ID(), s.CustomerID(), customerName, s.Resource(), s.CheckInTime(), s.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to create shared area check-in", err)
	}
	return nil
}

func (r *CheckinRepository) Close(ctx context.Context, dbtx db.DBTX, id uuid.UUID, checkOut time.Time, totalMinutes int32, totalCost float64) (int64, error) {
	const query = `
		UPDATE shared_area_checkins
		SET check_out_time = $2,
		    total_time_minutes = $3,
		    total_cost = $4,
		    status = 'checked_out'
		WHERE id = $1 AND status = 'active'
	`
	tag, err := dbtx.Exec(ctx, query, id, checkOut, totalMinutes, totalCost)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to close shared area check-in", err)
	}
	return tag.RowsAffected(), nil
}

func (r *CheckinRepository) Cancel(ctx context.Context, dbtx db.DBTX, id uuid.UUID, reason string) (int64, error) {
	const query = `
		UPDATE shared_area_checkins
		SET status = 'cancelled', cancellation_reason = $2
		WHERE id = $1 AND status = 'active'
	`
	tag, err := dbtx.Exec(ctx, query, id, reason)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel shared area check-in", err)
	}
	return tag.RowsAffected(), nil
}

func (r *CheckinRepository) DeleteByCustomer(ctx context.Context, dbtx db.DBTX, customerID string) error {
	_, err := dbtx.Exec(ctx, `DELETE FROM shared_area_checkins WHERE customer_id = $1`, customerID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete shared area check-ins for customer", err)
	}
	return nil
}

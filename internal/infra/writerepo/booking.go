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

type BookingRepository struct{}

func NewBookingRepository() shared.BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, s *session.Session, customerName string) error {
	const query = `
		INSERT INTO bookings (id, customer_id, customer_name, room, check_in_time, status, discount_percentage)
		VALUES ($1, $2, $3, $4, $5, $6, 0)
	`
	_, err := dbtx.Exec(ctx, query,
		s.ID(), s.CustomerID(), customerName, s.Resource(), s.CheckInTime(), s.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Close(ctx context.Context, dbtx db.DBTX, id uuid.UUID, checkOut time.Time, totalMinutes int32, totalCost float64, discount float64) (int64, error) {
	const query = `
		UPDATE bookings
		SET check_out_time = $2,
		    total_time_minutes = $3,
		    total_cost = $4,
		    discount_percentage = $5,
		    status = 'checked_out'
		WHERE id = $1 AND status = 'active'
	`
	tag, err := dbtx.Exec(ctx, query, id, checkOut, totalMinutes, totalCost, discount)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to close booking", err)
	}
	return tag.RowsAffected(), nil
}

func (r *BookingRepository) Cancel(ctx context.Context, dbtx db.DBTX, id uuid.UUID, reason string) (int64, error) {
	const query = `
		UPDATE bookings
		SET status = 'cancelled', cancellation_reason = $2
		WHERE id = $1 AND status = 'active'
	`
	tag, err := dbtx.Exec(ctx, query, id, reason)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel booking", err)
	}
	return tag.RowsAffected(), nil
}

func (r *BookingRepository) DeleteByCustomer(ctx context.Context, dbtx db.DBTX, customerID string) error {
	_, err := dbtx.Exec(ctx, `DELETE FROM bookings WHERE customer_id = $1`, customerID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete bookings for customer", err)
	}
	return nil
}

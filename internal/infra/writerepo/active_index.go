package writerepo

import (
	"context"

	"comma-backend/internal/infra"
	"comma-backend/internal/infra/db"
	"comma-backend/internal/usecase/shared"
)

// ActiveIndexRepository maintains the denormalized active-occupancy rows that
// back the "who is here right now" listings. The rows mirror the active
// session tables and are written in the same transaction.
type ActiveIndexRepository struct{}

func NewActiveIndexRepository() shared.ActiveIndexRepository {
	return &ActiveIndexRepository{}
}

func (r *ActiveIndexRepository) InsertBooking(ctx context.Context, dbtx db.DBTX, entry shared.ActiveIndexEntry) error {
	const query = `
		INSERT INTO active_customers (customer_id, name, phone, check_in_time, room)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := dbtx.Exec(ctx, query, entry.CustomerID, entry.Name, entry.Phone, entry.CheckInTime, entry.Room)
	if err != nil {
		return infra.WrapRepoErr("failed to insert active customer", err)
	}
	return nil
}

func (r *ActiveIndexRepository) DeleteBooking(ctx context.Context, dbtx db.DBTX, customerID string) error {
	_, err := dbtx.Exec(ctx, `DELETE FROM active_customers WHERE customer_id = $1`, customerID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete active customer", err)
	}
	return nil
}

func (r *ActiveIndexRepository) InsertSharedArea(ctx context.Context, dbtx db.DBTX, entry shared.ActiveIndexEntry) error {
	const query = `
		INSERT INTO active_shared_area_customers (customer_id, name, phone, check_in_time)
		VALUES ($1, $2, $3, $4)
	`
	_, err := dbtx.Exec(ctx, query, entry.CustomerID, entry.Name, entry.Phone, entry.CheckInTime)
	if err != nil {
		return infra.WrapRepoErr("failed to insert active shared area customer", err)
	}
	return nil
}

func (r *ActiveIndexRepository) DeleteSharedArea(ctx context.Context, dbtx db.DBTX, customerID string) error {
	_, err := dbtx.Exec(ctx, `DELETE FROM active_shared_area_customers WHERE customer_id = $1`, customerID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete active shared area customer", err)
	}
	return nil
}

func (r *ActiveIndexRepository) DeleteAllForCustomer(ctx context.Context, dbtx db.DBTX, customerID string) error {
	if err := r.DeleteBooking(ctx, dbtx, customerID); err != nil {
		return err
	}
	return r.DeleteSharedArea(ctx, dbtx, customerID)
}

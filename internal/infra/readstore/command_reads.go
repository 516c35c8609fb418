package readstore

import (
	"context"

	"comma-backend/internal/infra"
	"comma-backend/internal/infra/db"
	"comma-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommandReadStore serves the minimal lookups command usecases need for
// validation. It runs on whatever DBTX the caller holds, so reads inside a
// transaction see that transaction's writes.
type CommandReadStore struct {
	dbtx db.DBTX
}

func NewCommandReadStore(dbtx db.DBTX) shared.CommandReads {
	return &CommandReadStore{dbtx: dbtx}
}

func (s *CommandReadStore) CustomerByID(ctx context.Context, id string) (*shared.CustomerSnapshot, error) {
	const query = `SELECT id, name, phone, email FROM customers WHERE id = $1`
	var snap shared.CustomerSnapshot
	err := s.dbtx.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Name, &snap.Phone, &snap.Email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}
	return &snap, nil
}

func (s *CommandReadStore) RoomByName(ctx context.Context, name string) (*shared.RoomSnapshot, error) {
	const query = `SELECT id, name, price, price_type FROM rooms WHERE name = $1`
	var snap shared.RoomSnapshot
	err := s.dbtx.QueryRow(ctx, query, name).Scan(&snap.ID, &snap.Name, &snap.Price, &snap.PriceType)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room by name", err)
	}
	return &snap, nil
}

func (s *CommandReadStore) RoomByID(ctx context.Context, id int64) (*shared.RoomSnapshot, error) {
	const query = `SELECT id, name, price, price_type FROM rooms WHERE id = $1`
	var snap shared.RoomSnapshot
	err := s.dbtx.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Name, &snap.Price, &snap.PriceType)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return &snap, nil
}

func (s *CommandReadStore) BookingByID(ctx context.Context, id uuid.UUID) (*shared.SessionSnapshot, error) {
	const query = `SELECT id, customer_id, room, check_in_time, status FROM bookings WHERE id = $1`
	var snap shared.SessionSnapshot
	err := s.dbtx.QueryRow(ctx, query, id).
		Scan(&snap.ID, &snap.CustomerID, &snap.Resource, &snap.CheckInTime, &snap.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return &snap, nil
}

func (s *CommandReadStore) CheckinByID(ctx context.Context, id uuid.UUID) (*shared.SessionSnapshot, error) {
	const query = `SELECT id, customer_id, type, check_in_time, status FROM shared_area_checkins WHERE id = $1`
	var snap shared.SessionSnapshot
	err := s.dbtx.QueryRow(ctx, query, id).
		Scan(&snap.ID, &snap.CustomerID, &snap.Resource, &snap.CheckInTime, &snap.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find shared area check-in", err)
	}
	return &snap, nil
}

func (s *CommandReadStore) HasActiveBooking(ctx context.Context, customerID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM bookings WHERE customer_id = $1 AND status = 'active')`
	var exists bool
	if err := s.dbtx.QueryRow(ctx, query, customerID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check active booking", err)
	}
	return exists, nil
}

func (s *CommandReadStore) RoomOccupied(ctx context.Context, roomName string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM bookings WHERE room = $1 AND status = 'active')`
	var exists bool
	if err := s.dbtx.QueryRow(ctx, query, roomName).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check room occupancy", err)
	}
	return exists, nil
}

func (s *CommandReadStore) ActiveBookingForRoom(ctx context.Context, roomID int64) (*shared.SessionSnapshot, error) {
	const query = `
		SELECT b.id, b.customer_id, b.room, b.check_in_time, b.status
		FROM bookings b
		JOIN rooms r ON r.name = b.room
		WHERE r.id = $1 AND b.status = 'active'
	`
	var snap shared.SessionSnapshot
	err := s.dbtx.QueryRow(ctx, query, roomID).
		Scan(&snap.ID, &snap.CustomerID, &snap.Resource, &snap.CheckInTime, &snap.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find active booking for room", err)
	}
	return &snap, nil
}

func (s *CommandReadStore) HasActiveCheckin(ctx context.Context, customerID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM shared_area_checkins WHERE customer_id = $1 AND status = 'active')`
	var exists bool
	if err := s.dbtx.QueryRow(ctx, query, customerID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check active shared area check-in", err)
	}
	return exists, nil
}

func (s *CommandReadStore) KitchenItemsByIDs(ctx context.Context, ids []int64) ([]shared.KitchenItemSnapshot, error) {
	const query = `SELECT id, name, price FROM kitchen_items WHERE id = ANY($1)`
	rows, err := s.dbtx.Query(ctx, query, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query kitchen items by ids", err)
	}
	defer rows.Close()

	var snaps []shared.KitchenItemSnapshot
	for rows.Next() {
		var snap shared.KitchenItemSnapshot
		if err := rows.Scan(&snap.ID, &snap.Name, &snap.Price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan kitchen item", err)
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate kitchen items", err)
	}
	return snaps, nil
}

// LastCustomerCode returns the highest code for a branch prefix, ordering by
// the numeric suffix so "CAI-10" sorts after "CAI-9".
func (s *CommandReadStore) LastCustomerCode(ctx context.Context, prefix string) (string, error) {
	const query = `
		SELECT id FROM customers
		WHERE id LIKE $1 || '-%'
		ORDER BY LENGTH(id) DESC, id DESC
		LIMIT 1
	`
	var code string
	err := s.dbtx.QueryRow(ctx, query, prefix).Scan(&code)
	if err != nil {
		if infra.IsNoRows(err) {
			return "", nil
		}
		return "", infra.WrapRepoErr("failed to find last customer code", err)
	}
	return code, nil
}

func (s *CommandReadStore) EmployeeByNationalID(ctx context.Context, nationalID string) (*shared.EmployeeSnapshot, error) {
	const query = `
		SELECT id, name, password_hash, role, national_id, branch, age, faculty
		FROM employees
		WHERE national_id = $1
	`
	var snap shared.EmployeeSnapshot
	err := s.dbtx.QueryRow(ctx, query, nationalID).Scan(
		&snap.ID, &snap.Name, &snap.PasswordHash, &snap.Role, &snap.NationalID,
		&snap.Branch, &snap.Age, &snap.Faculty)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find employee by national id", err)
	}
	return &snap, nil
}

func (s *CommandReadStore) EmployeeByID(ctx context.Context, id int64) (*shared.EmployeeSnapshot, error) {
	const query = `
		SELECT id, name, password_hash, role, national_id, branch, age, faculty
		FROM employees
		WHERE id = $1
	`
	var snap shared.EmployeeSnapshot
	err := s.dbtx.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.Name, &snap.PasswordHash, &snap.Role, &snap.NationalID,
		&snap.Branch, &snap.Age, &snap.Faculty)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find employee", err)
	}
	return &snap, nil
}

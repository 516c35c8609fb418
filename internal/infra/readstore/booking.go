package readstore

import (
	"context"

	"comma-backend/internal/infra"
	"comma-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `
	b.id, b.customer_id, b.customer_name, b.room, b.check_in_time, b.check_out_time,
	b.total_time_minutes, b.total_cost, b.discount_percentage, b.status, b.cancellation_reason
`

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) queries.BookingViewRepo {
	return &BookingReadStore{pool: pool}
}

// FindAll lists bookings with active sessions first, newest check-in first
// within each group.
func (s *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingView, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		ORDER BY (b.status = 'active') DESC, b.check_in_time DESC
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		WHERE b.id = $1
	`
	row := s.pool.QueryRow(ctx, query, id)
	view, err := scanBooking(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return view, nil
}

func (s *BookingReadStore) FindActiveCustomers(ctx context.Context) ([]*queries.ActiveCustomerView, error) {
	const query = `
		SELECT ac.customer_id, ac.name, ac.phone, ac.check_in_time, ac.room, c.email
		FROM active_customers ac
		LEFT JOIN customers c ON c.id = ac.customer_id
		ORDER BY ac.check_in_time DESC
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query active customers", err)
	}
	defer rows.Close()

	var views []*queries.ActiveCustomerView
	for rows.Next() {
		var v queries.ActiveCustomerView
		if err := rows.Scan(&v.CustomerID, &v.Name, &v.Phone, &v.CheckInTime, &v.Room, &v.Email); err != nil {
			return nil, infra.WrapRepoErr("failed to scan active customer", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate active customers", err)
	}
	return views, nil
}

func scanBooking(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.CustomerID, &v.CustomerName, &v.Room, &v.CheckInTime, &v.CheckOutTime,
		&v.TotalTimeMinutes, &v.TotalCost, &v.DiscountPercentage, &v.Status, &v.CancellationReason,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func scanBookings(rows pgx.Rows) ([]*queries.BookingView, error) {
	var views []*queries.BookingView
	for rows.Next() {
		view, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return views, nil
}

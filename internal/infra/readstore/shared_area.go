package readstore

import (
	"context"

	"comma-backend/internal/infra"
	"comma-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const checkinColumns = `
	sc.id, sc.customer_id, sc.customer_name, sc.type, sc.check_in_time, sc.check_out_time,
	sc.total_time_minutes, sc.total_cost, sc.status, sc.cancellation_reason
`

type SharedAreaReadStore struct {
	pool *pgxpool.Pool
}

func NewSharedAreaReadStore(pool *pgxpool.Pool) queries.SharedAreaViewRepo {
	return &SharedAreaReadStore{pool: pool}
}

func (s *SharedAreaReadStore) FindAll(ctx context.Context) ([]*queries.SharedAreaCheckinView, error) {
	query := `
		SELECT ` + checkinColumns + `
		FROM shared_area_checkins sc
		ORDER BY (sc.status = 'active') DESC, sc.check_in_time DESC
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query shared area check-ins", err)
	}
	defer rows.Close()

	return scanCheckins(rows)
}

func (s *SharedAreaReadStore) FindByType(ctx context.Context, areaType string) ([]*queries.SharedAreaCheckinView, error) {
	query := `
		SELECT ` + checkinColumns + `
		FROM shared_area_checkins sc
		WHERE sc.type = $1
		ORDER BY (sc.status = 'active') DESC, sc.check_in_time DESC
	`
	rows, err := s.pool.Query(ctx, query, areaType)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query shared area check-ins by type", err)
	}
	defer rows.Close()

	return scanCheckins(rows)
}

func (s *SharedAreaReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SharedAreaCheckinView, error) {
	query := `
		SELECT ` + checkinColumns + `
		FROM shared_area_checkins sc
		WHERE sc.id = $1
	`
	row := s.pool.QueryRow(ctx, query, id)
	view, err := scanCheckin(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find shared area check-in", err)
	}
	return view, nil
}

func (s *SharedAreaReadStore) FindActiveCustomers(ctx context.Context) ([]*queries.ActiveCustomerView, error) {
	const query = `
		SELECT ac.customer_id, ac.name, ac.phone, ac.check_in_time, c.email
		FROM active_shared_area_customers ac
		LEFT JOIN customers c ON c.id = ac.customer_id
		ORDER BY ac.check_in_time DESC
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query active shared area customers", err)
	}
	defer rows.Close()

	var views []*queries.ActiveCustomerView
	for rows.Next() {
		var v queries.ActiveCustomerView
		if err := rows.Scan(&v.CustomerID, &v.Name, &v.Phone, &v.CheckInTime, &v.Email); err != nil {
			return nil, infra.WrapRepoErr("failed to scan active shared area customer", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate active shared area customers", err)
	}
	return views, nil
}

func scanCheckin(row pgx.Row) (*queries.SharedAreaCheckinView, error) {
	var v queries.SharedAreaCheckinView
	err := row.Scan(
		&v.ID, &v.CustomerID, &v.CustomerName, &v.Type, &v.CheckInTime, &v.CheckOutTime,
		&v.TotalTimeMinutes, &v.TotalCost, &v.Status, &v.CancellationReason,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func scanCheckins(rows pgx.Rows) ([]*queries.SharedAreaCheckinView, error) {
	var views []*queries.SharedAreaCheckinView
	for rows.Next() {
		view, err := scanCheckin(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan shared area check-in", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate shared area check-ins", err)
	}
	return views, nil
}

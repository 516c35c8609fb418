package readstore

import (
	"context"

	"comma-backend/internal/infra"
	"comma-backend/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const roomColumns = `
	r.id, r.name, br.name, r.type, r.capacity, r.price, r.price_type
`

type RoomReadStore struct {
	pool *pgxpool.Pool
}

func NewRoomReadStore(pool *pgxpool.Pool) queries.RoomViewRepo {
	return &RoomReadStore{pool: pool}
}

func (s *RoomReadStore) FindAll(ctx context.Context) ([]*queries.RoomView, error) {
	query := `
		SELECT ` + roomColumns + `
		FROM rooms r
		JOIN branches br ON br.id = r.branch_id
		ORDER BY r.id
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query rooms", err)
	}
	defer rows.Close()

	return scanRooms(rows)
}

func (s *RoomReadStore) FindByName(ctx context.Context, name string) ([]*queries.RoomView, error) {
	query := `
		SELECT ` + roomColumns + `
		FROM rooms r
		JOIN branches br ON br.id = r.branch_id
		WHERE r.name ILIKE '%' || $1 || '%'
		ORDER BY r.id
	`
	rows, err := s.pool.Query(ctx, query, name)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query rooms by name", err)
	}
	defer rows.Close()

	return scanRooms(rows)
}

func (s *RoomReadStore) FindByID(ctx context.Context, id int64) (*queries.RoomView, error) {
	query := `
		SELECT ` + roomColumns + `
		FROM rooms r
		JOIN branches br ON br.id = r.branch_id
		WHERE r.id = $1
	`
	var v queries.RoomView
	err := s.pool.QueryRow(ctx, query, id).
		Scan(&v.ID, &v.Name, &v.BranchName, &v.Type, &v.Capacity, &v.Price, &v.PriceType)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return &v, nil
}

func scanRooms(rows pgx.Rows) ([]*queries.RoomView, error) {
	var views []*queries.RoomView
	for rows.Next() {
		var v queries.RoomView
		if err := rows.Scan(&v.ID, &v.Name, &v.BranchName, &v.Type, &v.Capacity, &v.Price, &v.PriceType); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rooms", err)
	}
	return views, nil
}

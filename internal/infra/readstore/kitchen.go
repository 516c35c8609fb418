package readstore

import (
	"context"

	"comma-backend/internal/infra"
	"comma-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type KitchenItemReadStore struct {
	pool *pgxpool.Pool
}

func NewKitchenItemReadStore(pool *pgxpool.Pool) queries.KitchenItemViewRepo {
	return &KitchenItemReadStore{pool: pool}
}

func (s *KitchenItemReadStore) FindAll(ctx context.Context) ([]*queries.KitchenItemView, error) {
	const query = `
		SELECT id, name, price, category, availability
		FROM kitchen_items
		ORDER BY id
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query kitchen items", err)
	}
	defer rows.Close()

	var views []*queries.KitchenItemView
	for rows.Next() {
		var v queries.KitchenItemView
		if err := rows.Scan(&v.ID, &v.Name, &v.Price, &v.Category, &v.Availability); err != nil {
			return nil, infra.WrapRepoErr("failed to scan kitchen item", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate kitchen items", err)
	}
	return views, nil
}

func (s *KitchenItemReadStore) FindByID(ctx context.Context, id int64) (*queries.KitchenItemView, error) {
	const query = `
		SELECT id, name, price, category, availability
		FROM kitchen_items
		WHERE id = $1
	`
	var v queries.KitchenItemView
	err := s.pool.QueryRow(ctx, query, id).
		Scan(&v.ID, &v.Name, &v.Price, &v.Category, &v.Availability)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find kitchen item", err)
	}
	return &v, nil
}

const saleColumns = `
	ks.id, ks.room_id, r.name, ks.customer_id, ks.items, ks.total_price
`

type KitchenSaleReadStore struct {
	pool *pgxpool.Pool
}

func NewKitchenSaleReadStore(pool *pgxpool.Pool) queries.KitchenSaleViewRepo {
	return &KitchenSaleReadStore{pool: pool}
}

func (s *KitchenSaleReadStore) FindAll(ctx context.Context) ([]*queries.KitchenSaleView, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM kitchen_sales ks
		LEFT JOIN rooms r ON r.id = ks.room_id
		ORDER BY ks.created_at DESC
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query kitchen sales", err)
	}
	defer rows.Close()

	return scanSales(rows)
}

func (s *KitchenSaleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.KitchenSaleView, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM kitchen_sales ks
		LEFT JOIN rooms r ON r.id = ks.room_id
		WHERE ks.id = $1
	`
	var v queries.KitchenSaleView
	err := s.pool.QueryRow(ctx, query, id).
		Scan(&v.ID, &v.RoomID, &v.RoomName, &v.CustomerID, &v.Items, &v.TotalPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find kitchen sale", err)
	}
	return &v, nil
}

func (s *KitchenSaleReadStore) FindByRoomID(ctx context.Context, roomID int64) ([]*queries.KitchenSaleView, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM kitchen_sales ks
		LEFT JOIN rooms r ON r.id = ks.room_id
		WHERE ks.room_id = $1
		ORDER BY ks.created_at DESC
	`
	rows, err := s.pool.Query(ctx, query, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query kitchen sales by room", err)
	}
	defer rows.Close()

	return scanSales(rows)
}

func scanSales(rows pgx.Rows) ([]*queries.KitchenSaleView, error) {
	var views []*queries.KitchenSaleView
	for rows.Next() {
		var v queries.KitchenSaleView
		if err := rows.Scan(&v.ID, &v.RoomID, &v.RoomName, &v.CustomerID, &v.Items, &v.TotalPrice); err != nil {
			return nil, infra.WrapRepoErr("failed to scan kitchen sale", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate kitchen sales", err)
	}
	return views, nil
}

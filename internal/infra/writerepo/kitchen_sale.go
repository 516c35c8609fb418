package writerepo

import (
	"context"

	"comma-backend/internal/infra"
	"comma-backend/internal/infra/db"
	"comma-backend/internal/usecase/shared"
)

type KitchenSaleRepository struct{}

func NewKitchenSaleRepository() shared.KitchenSaleRepository {
	return &KitchenSaleRepository{}
}

func (r *KitchenSaleRepository) Insert(ctx context.Context, dbtx db.DBTX, sale shared.NewKitchenSale) error {
	const query = `
		INSERT INTO kitchen_sales (id, room_id, customer_id, items, total_price)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := dbtx.Exec(ctx, query, sale.ID, sale.RoomID, sale.CustomerID, sale.Items, sale.TotalPrice)
	if err != nil {
		return infra.WrapRepoErr("failed to insert kitchen sale", err)
	}
	return nil
}

func (r *KitchenSaleRepository) DeleteByCustomer(ctx context.Context, dbtx db.DBTX, customerID string) error {
	_, err := dbtx.Exec(ctx, `DELETE FROM kitchen_sales WHERE customer_id = $1`, customerID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete kitchen sales for customer", err)
	}
	return nil
}

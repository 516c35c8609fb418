package writerepo

import (
	"context"

	"comma-backend/internal/infra"
	"comma-backend/internal/infra/db"
	"comma-backend/internal/usecase/commands"
)

type KitchenItemRepository struct{}

func NewKitchenItemRepository() commands.KitchenItemWriteRepository {
	return &KitchenItemRepository{}
}

func (r *KitchenItemRepository) Insert(ctx context.Context, dbtx db.DBTX, item commands.NewKitchenItem) (int64, error) {
	const query = `
		INSERT INTO kitchen_items (name, price, category, availability)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int64
	err := dbtx.QueryRow(ctx, query, item.Name, item.Price, item.Category, item.Availability).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert kitchen item", err)
	}
	return id, nil
}

func (r *KitchenItemRepository) Update(ctx context.Context, dbtx db.DBTX, id int64, item commands.NewKitchenItem) (int64, error) {
	const query = `
		UPDATE kitchen_items
		SET name = $2, price = $3, category = $4, availability = $5
		WHERE id = $1
	`
	tag, err := dbtx.Exec(ctx, query, id, item.Name, item.Price, item.Category, item.Availability)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update kitchen item", err)
	}
	return tag.RowsAffected(), nil
}

func (r *KitchenItemRepository) Delete(ctx context.Context, dbtx db.DBTX, id int64) (int64, error) {
	tag, err := dbtx.Exec(ctx, `DELETE FROM kitchen_items WHERE id = $1`, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete kitchen item", err)
	}
	return tag.RowsAffected(), nil
}

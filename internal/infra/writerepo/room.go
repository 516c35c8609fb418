package writerepo

import (
	"context"

	"comma-backend/internal/infra"
	"comma-backend/internal/infra/db"
	"comma-backend/internal/usecase/commands"
)

type RoomRepository struct{}

func NewRoomRepository() commands.RoomWriteRepository {
	return &RoomRepository{}
}

func (r *RoomRepository) Insert(ctx context.Context, dbtx db.DBTX, room commands.NewRoom) (int64, error) {
	const query = `
		INSERT INTO rooms (name, branch_id, type, capacity, price, price_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	var id int64
	err := dbtx.QueryRow(ctx, query,
		room.Name, room.BranchID, room.Type, room.Capacity, room.Price, room.PriceType).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert room", err)
	}
	return id, nil
}

func (r *RoomRepository) Update(ctx context.Context, dbtx db.DBTX, id int64, room commands.NewRoom) (int64, error) {
	const query = `
		UPDATE rooms
		SET name = $2, branch_id = $3, type = $4, capacity = $5, price = $6, price_type = $7
		WHERE id = $1
	`
	tag, err := dbtx.Exec(ctx, query,
		id, room.Name, room.BranchID, room.Type, room.Capacity, room.Price, room.PriceType)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update room", err)
	}
	return tag.RowsAffected(), nil
}

func (r *RoomRepository) Delete(ctx context.Context, dbtx db.DBTX, id int64) (int64, error) {
	tag, err := dbtx.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete room", err)
	}
	return tag.RowsAffected(), nil
}

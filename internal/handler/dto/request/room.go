package request

import "comma-backend/internal/usecase/commands"

type RoomRequest struct {
	Name      string  `json:"name" binding:"required"`
	BranchID  int64   `json:"branch_id" binding:"required"`
	Type      string  `json:"type" binding:"required"`
	Capacity  int32   `json:"capacity" binding:"required"`
	Price     float64 `json:"price" binding:"required"`
	PriceType string  `json:"price_type" binding:"required,oneof=hour day"`
}

func (r RoomRequest) ToCommand() commands.NewRoom {
	return commands.NewRoom{
		Name:      r.Name,
		BranchID:  r.BranchID,
		Type:      r.Type,
		Capacity:  r.Capacity,
		Price:     r.Price,
		PriceType: r.PriceType,
	}
}

package request

import "comma-backend/internal/usecase/commands"

type KitchenItemRequest struct {
	Name         string  `json:"name" binding:"required"`
	Price        float64 `json:"price" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	Availability string  `json:"availability" binding:"omitempty,oneof=available unavailable"`
}

func (r KitchenItemRequest) ToCommand() commands.NewKitchenItem {
	availability := r.Availability
	if availability == "" {
		availability = "available"
	}
	return commands.NewKitchenItem{
		Name:         r.Name,
		Price:        r.Price,
		Category:     r.Category,
		Availability: availability,
	}
}

type CreateKitchenSaleRequest struct {
	RoomID int64                 `json:"room_id" binding:"required"`
	Orders []KitchenOrderRequest `json:"orders" binding:"required,min=1"`
}

func (r CreateKitchenSaleRequest) ToCommand() commands.CreateKitchenSaleInput {
	orders := make([]commands.KitchenOrderLine, len(r.Orders))
	for i, o := range r.Orders {
		orders[i] = commands.KitchenOrderLine{ItemID: o.ItemID, Quantity: o.Quantity}
	}
	return commands.CreateKitchenSaleInput{
		RoomID: r.RoomID,
		Orders: orders,
	}
}

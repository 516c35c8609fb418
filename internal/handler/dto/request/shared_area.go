package request

import "comma-backend/internal/usecase/commands"

type SharedAreaCheckInRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	Type       string `json:"type" binding:"required"`
}

type SharedAreaCheckOutRequest struct {
	KitchenOrders []KitchenOrderRequest `json:"kitchen_orders"`
}

func (r SharedAreaCheckOutRequest) ToOrders() []commands.KitchenOrderLine {
	if len(r.KitchenOrders) == 0 {
		return nil
	}
	orders := make([]commands.KitchenOrderLine, len(r.KitchenOrders))
	for i, o := range r.KitchenOrders {
		orders[i] = commands.KitchenOrderLine{ItemID: o.ItemID, Quantity: o.Quantity}
	}
	return orders
}

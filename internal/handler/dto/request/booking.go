package request

import "comma-backend/internal/usecase/commands"

type CheckInRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	Room       string `json:"room" binding:"required"`
}

type KitchenOrderRequest struct {
	ItemID   int64 `json:"item_id" binding:"required"`
	Quantity int   `json:"quantity" binding:"required"`
}

type CheckOutRequest struct {
	DiscountPercentage float64               `json:"discount_percentage"`
	KitchenOrders      []KitchenOrderRequest `json:"kitchen_orders"`
}

func (r CheckOutRequest) ToOrders() []commands.KitchenOrderLine {
	if len(r.KitchenOrders) == 0 {
		return nil
	}
	orders := make([]commands.KitchenOrderLine, len(r.KitchenOrders))
	for i, o := range r.KitchenOrders {
		orders[i] = commands.KitchenOrderLine{ItemID: o.ItemID, Quantity: o.Quantity}
	}
	return orders
}

type CancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}

package response

import (
	"comma-backend/internal/usecase/commands"
	"comma-backend/internal/usecase/queries"
)

type CheckInResponse struct {
	Booking         *queries.BookingView          `json:"booking"`
	ActiveCustomers []*queries.ActiveCustomerView `json:"active_customers"`
}

type SharedAreaCheckInResponse struct {
	Checkin         *queries.SharedAreaCheckinView `json:"checkin"`
	ActiveCustomers []*queries.ActiveCustomerView  `json:"active_customers"`
}

type CheckOutResponse struct {
	Booking      *queries.BookingView `json:"booking"`
	RoomCost     float64              `json:"room_cost"`
	KitchenCost  float64              `json:"kitchen_cost"`
	TotalMinutes int32                `json:"total_minutes"`
}

func FromCheckOutResult(result *commands.CheckOutResult) *CheckOutResponse {
	return &CheckOutResponse{
		Booking:      result.Booking,
		RoomCost:     result.RoomCost,
		KitchenCost:  result.KitchenCost,
		TotalMinutes: result.TotalMinutes,
	}
}

type SharedAreaCheckOutResponse struct {
	Checkin      *queries.SharedAreaCheckinView `json:"checkin"`
	AreaCost     float64                        `json:"area_cost"`
	KitchenCost  float64                        `json:"kitchen_cost"`
	TotalMinutes int32                          `json:"total_minutes"`
}

func FromSharedAreaCheckOutResult(result *commands.SharedAreaCheckOutResult) *SharedAreaCheckOutResponse {
	return &SharedAreaCheckOutResponse{
		Checkin:      result.Checkin,
		AreaCost:     result.AreaCost,
		KitchenCost:  result.KitchenCost,
		TotalMinutes: result.TotalMinutes,
	}
}

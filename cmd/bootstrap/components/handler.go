package components

import (
	"comma-backend/internal/handler"
	"comma-backend/internal/handler/api"
	"comma-backend/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		middleware.NewAuthMiddleware,

		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewSharedAreaHandler,
		api.NewCustomerHandler,
		api.NewRoomHandler,
		api.NewBranchHandler,
		api.NewKitchenHandler,
		api.NewEmployeeHandler,

		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	sharedArea *api.SharedAreaHandler,
	customer *api.CustomerHandler,
	room *api.RoomHandler,
	branch *api.BranchHandler,
	kitchen *api.KitchenHandler,
	employee *api.EmployeeHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:       auth,
		Booking:    booking,
		SharedArea: sharedArea,
		Customer:   customer,
		Room:       room,
		Branch:     branch,
		Kitchen:    kitchen,
		Employee:   employee,
	}
}

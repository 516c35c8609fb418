package components

import (
	"comma-backend/internal/pkg/clock"
	"comma-backend/internal/usecase/commands"
	"comma-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,

		queries.NewBookingQueries,
		queries.NewSharedAreaQueries,
		queries.NewCustomerQueries,
		queries.NewRoomQueries,
		queries.NewBranchQueries,
		queries.NewKitchenItemQueries,
		queries.NewKitchenSaleQueries,
		queries.NewEmployeeQueries,

		commands.NewAuthUseCase,
		commands.NewBookingUseCase,
		commands.NewSharedAreaUseCase,
		commands.NewCustomerUseCase,
		commands.NewRoomUseCase,
		commands.NewBranchUseCase,
		commands.NewKitchenItemUseCase,
		commands.NewKitchenSaleUseCase,
		commands.NewEmployeeUseCase,
	),
)

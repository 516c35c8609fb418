package components

import (
	"comma-backend/internal/infra/readstore"
	"comma-backend/internal/infra/uow"
	"comma-backend/internal/infra/writerepo"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		uow.NewPostgresUoW,

		writerepo.NewRoomRepository,
		writerepo.NewBranchRepository,
		writerepo.NewKitchenItemRepository,
		writerepo.NewEmployeeRepository,

		readstore.NewBookingReadStore,
		readstore.NewSharedAreaReadStore,
		readstore.NewCustomerReadStore,
		readstore.NewRoomReadStore,
		readstore.NewBranchReadStore,
		readstore.NewKitchenItemReadStore,
		readstore.NewKitchenSaleReadStore,
		readstore.NewEmployeeReadStore,
	),
)

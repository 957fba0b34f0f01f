package components

import (
	"timeshare-portal/internal/infra/readstore"
	repo_impl "timeshare-portal/internal/infra/repository"
	"timeshare-portal/internal/usecase/commands"
	"timeshare-portal/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewPropertyRepository,
			fx.As(new(commands.PropertyRepository)),
		),
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			repo_impl.NewExchangeRepository,
			fx.As(new(commands.ExchangeRepository)),
		),
		fx.Annotate(
			repo_impl.NewPointsRepository,
			fx.As(new(commands.PointsRepository)),
		),
		fx.Annotate(
			repo_impl.NewPricingRepository,
			fx.As(new(commands.PricingRepository)),
		),
		fx.Annotate(
			repo_impl.NewOwnerRepository,
			fx.As(new(commands.OwnerRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewCalendarReadStore,
			fx.As(new(queries.CalendarReadStore)),
		),
		fx.Annotate(
			readstore.NewPropertyReadStore,
			fx.As(new(queries.PropertyReadStore)),
		),
		fx.Annotate(
			readstore.NewOwnerReadStore,
			fx.As(new(queries.OwnerReadStore)),
		),
	),
)

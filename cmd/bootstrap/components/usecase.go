package components

import (
	"timeshare-portal/internal/pkg/clock"
	"timeshare-portal/internal/usecase"
	"timeshare-portal/internal/usecase/commands"
	"timeshare-portal/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewShareCommands,
		commands.NewReservationCommands,
		commands.NewExchangeCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPropertyQueries,
		queries.NewCalendarQueries,
		queries.NewOwnerQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

package components

import (
	"timeshare-portal/internal/handler"
	"timeshare-portal/internal/handler/api"
	"timeshare-portal/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPropertyHandler,
		api.NewReservationHandler,
		api.NewExchangeHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

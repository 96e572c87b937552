package components

import (
	"civic-hub/internal/handler"
	"civic-hub/internal/handler/api"
	"civic-hub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewResourceHandler,
		api.NewBookingHandler,
		api.NewAssetHandler,
		api.NewRequestHandler,
		api.NewHouseholdHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

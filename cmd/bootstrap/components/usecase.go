package components

import (
	"civic-hub/internal/domain/booking"
	"civic-hub/internal/pkg/clock"
	"civic-hub/internal/pkg/config"
	"civic-hub/internal/usecase"
	"civic-hub/internal/usecase/commands"
	"civic-hub/internal/usecase/queries"
	"civic-hub/internal/usecase/workflow"

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
	NewBusinessHours,
	func(clock clock.Clock, hours booking.BusinessHours) *booking.Services {
		return &booking.Services{
			Clock: clock,
			Hours: hours,
		}
	},
	workflow.NewDefaultRegistry,
)

func NewBusinessHours(cfg config.CalendarConfig) (booking.BusinessHours, error) {
	loc, err := cfg.Location()
	if err != nil {
		return booking.BusinessHours{}, err
	}
	return booking.NewBusinessHours(loc, cfg.EnforceBusinessHours), nil
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewResourceCommands,
		commands.NewBookingCommands,
		commands.NewAssetCommands,
		commands.NewRequestCommands,
		commands.NewHouseholdCommands,
		commands.NewNotificationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewResourceQueries,
		queries.NewBookingQueries,
		queries.NewAssetQueries,
		queries.NewRequestQueries,
		queries.NewHouseholdQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewSessionValidator,
	),
)

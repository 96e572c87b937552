package components

import (
	"civic-hub/internal/infra/readstore"
	sqlc "civic-hub/internal/infra/sqlc/generated"
	"civic-hub/internal/infra/uow"
	"civic-hub/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// PersistenceModule provides the read stores and the unit of work. Write
// repositories are only reachable through a transaction.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	fx.Provide(uow.NewPostgresUoW),
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Resource
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ResourceViewQueries)),
		),
		fx.Annotate(
			readstore.NewResourceReadStore,
			fx.As(new(queries.ResourceReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Asset
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AssetViewQueries)),
		),
		fx.Annotate(
			readstore.NewAssetReadStore,
			fx.As(new(queries.AssetReadStore)),
		),
		// Change request
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RequestViewQueries)),
		),
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
		),
		// Household
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.HouseholdViewQueries)),
		),
		fx.Annotate(
			readstore.NewHouseholdReadStore,
			fx.As(new(queries.HouseholdReadStore)),
		),
		// Notification
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.NotificationViewQueries)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

package shared

import (
	"context"
	"time"

	"civic-hub/internal/domain/asset"
	"civic-hub/internal/domain/booking"
	"civic-hub/internal/domain/changerequest"
	"civic-hub/internal/domain/household"
	"civic-hub/internal/domain/notification"
	"civic-hub/internal/domain/resource"
	sqlc "civic-hub/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in a READ COMMITTED transaction, retrying serialization
	// failures and deadlocks. Returning an error from fn rolls back.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Resources() ResourceRepository
	Bookings() BookingRepository
	Assets() AssetRepository
	BorrowLogs() BorrowLogRepository
	ChangeRequests() ChangeRequestRepository
	Households() HouseholdRepository
	Notifications() NotificationRepository
	DB() sqlc.DBTX
}

// Lock* methods take a row lock held until the transaction ends.

type ResourceRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *resource.Resource) error
	Update(ctx context.Context, tx sqlc.DBTX, r *resource.Resource) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*resource.Resource, error)
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*resource.Resource, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	ListApprovedOverlapping(ctx context.Context, tx sqlc.DBTX, resourceID uuid.UUID, window booking.Window) ([]*booking.Booking, error)
	CountActiveByResource(ctx context.Context, tx sqlc.DBTX, resourceID uuid.UUID, now time.Time) (int, error)
}

type AssetRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, a *asset.Asset) error
	Update(ctx context.Context, tx sqlc.DBTX, a *asset.Asset) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*asset.Asset, error)
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*asset.Asset, error)
}

type BorrowLogRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, l *asset.BorrowLog) error
	UpdateReturn(ctx context.Context, tx sqlc.DBTX, l *asset.BorrowLog) error
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*asset.BorrowLog, error)
	SumOpenQuantity(ctx context.Context, tx sqlc.DBTX, assetID uuid.UUID) (int, error)
	CountByAsset(ctx context.Context, tx sqlc.DBTX, assetID uuid.UUID) (int, error)
}

type ChangeRequestRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *changerequest.ChangeRequest) error
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*changerequest.ChangeRequest, error)
	UpdateDecision(ctx context.Context, tx sqlc.DBTX, r *changerequest.ChangeRequest) error
}

type HouseholdRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, h *household.Household) error
	AddMember(ctx context.Context, tx sqlc.DBTX, userID, householdID uuid.UUID, now time.Time) error
	FindByMember(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (*household.Household, error)
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*household.Household, error)
	Update(ctx context.Context, tx sqlc.DBTX, h *household.Household) error
	CreatePerson(ctx context.Context, tx sqlc.DBTX, p *household.Person) error
	FindPerson(ctx context.Context, tx sqlc.DBTX, householdID, personID uuid.UUID) (*household.Person, error)
	DeletePerson(ctx context.Context, tx sqlc.DBTX, personID uuid.UUID) error
}

type NotificationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, n *notification.Notification) error
	MarkRead(ctx context.Context, tx sqlc.DBTX, id, recipientID uuid.UUID) error
	MarkAllRead(ctx context.Context, tx sqlc.DBTX, recipientID uuid.UUID) (int64, error)
}

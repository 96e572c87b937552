package queries

//go:generate mockgen -source=asset.go -destination=../../../tests/mock/queries/asset_mock.go -package=queriesmock

import (
	"context"
	"time"

	"civic-hub/internal/domain/asset"
	"civic-hub/internal/domain/user"
	"civic-hub/internal/infra"

	"github.com/google/uuid"
)

type AssetView struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Description       *string   `json:"description"`
	TotalQuantity     int       `json:"quantity"`
	BorrowedQuantity  int       `json:"borrowedQuantity"`
	AvailableQuantity int       `json:"availableQuantity"`
	Status            string    `json:"status"`
	Location          *string   `json:"location"`
	Notes             *string   `json:"notes"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type BorrowLogView struct {
	ID              uuid.UUID  `json:"id"`
	AssetID         uuid.UUID  `json:"assetId"`
	AssetName       string     `json:"assetName"`
	BorrowerID      uuid.UUID  `json:"borrowerId"`
	BookingID       *uuid.UUID `json:"bookingId"`
	Quantity        int        `json:"quantity"`
	BorrowedAt      time.Time  `json:"borrowedAt"`
	ReturnedAt      *time.Time `json:"returnedAt"`
	Status          string     `json:"status"`
	ConditionBefore string     `json:"conditionBefore"`
	ConditionAfter  *string    `json:"conditionAfter"`
	Notes           *string    `json:"notes"`
}

type AssetFilter struct {
	Category *string
	Status   *string
	Search   *string
}

type BorrowLogFilter struct {
	Status     *string
	AssetID    *uuid.UUID
	BorrowerID *uuid.UUID
	Limit      int32
}

// Stores report borrowed quantities; available is derived here.
type AssetReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AssetView, error)
	List(ctx context.Context, filter AssetFilter) ([]*AssetView, error)
	FindBorrowLogByID(ctx context.Context, id uuid.UUID) (*BorrowLogView, error)
	ListBorrowLogs(ctx context.Context, filter BorrowLogFilter) ([]*BorrowLogView, error)
}

type AssetQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AssetView, error)
	List(ctx context.Context, filter AssetFilter) ([]*AssetView, error)
	GetBorrowLog(ctx context.Context, actor user.Actor, id uuid.UUID) (*BorrowLogView, error)
	ListBorrowLogs(ctx context.Context, actor user.Actor, filter BorrowLogFilter, limit int) ([]*BorrowLogView, error)
}

type assetQueriesImpl struct {
	store AssetReadStore
}

func NewAssetQueries(store AssetReadStore) AssetQueries {
	return &assetQueriesImpl{store: store}
}

func (q *assetQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AssetView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, asset.ErrAssetNotFound
		}
		return nil, err
	}
	withAvailable(v)
	return v, nil
}

func (q *assetQueriesImpl) List(ctx context.Context, filter AssetFilter) ([]*AssetView, error) {
	if filter.Category != nil {
		c, err := asset.ParseCategory(*filter.Category)
		if err != nil {
			return nil, err
		}
		s := c.String()
		filter.Category = &s
	}
	if filter.Status != nil {
		st, err := asset.ParseStatus(*filter.Status)
		if err != nil {
			return nil, err
		}
		s := st.String()
		filter.Status = &s
	}

	rows, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, v := range rows {
		withAvailable(v)
	}
	return rows, nil
}

func (q *assetQueriesImpl) GetBorrowLog(ctx context.Context, actor user.Actor, id uuid.UUID) (*BorrowLogView, error) {
	v, err := q.store.FindBorrowLogByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, asset.ErrBorrowLogNotFound
		}
		return nil, err
	}
	if !actor.CanManage(v.BorrowerID) {
		return nil, asset.ErrNotBorrower
	}
	return v, nil
}

// ListBorrowLogs shows residents their own logs and administrators every log.
func (q *assetQueriesImpl) ListBorrowLogs(ctx context.Context, actor user.Actor, filter BorrowLogFilter, limit int) ([]*BorrowLogView, error) {
	if filter.Status != nil {
		st, err := asset.ParseLogStatus(*filter.Status)
		if err != nil {
			return nil, err
		}
		s := st.String()
		filter.Status = &s
	}
	if !actor.IsAdmin() {
		id := actor.ID
		filter.BorrowerID = &id
	}
	filter.Limit = int32(ValidateLimit(limit))
	return q.store.ListBorrowLogs(ctx, filter)
}

func withAvailable(v *AssetView) {
	v.AvailableQuantity = asset.Available(v.TotalQuantity, v.BorrowedQuantity)
}

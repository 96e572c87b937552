package readstore

import (
	"context"

	"civic-hub/internal/infra"
	sqlc "civic-hub/internal/infra/sqlc/generated"
	"civic-hub/internal/pkg/pgconv"
	"civic-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type AssetViewQueries interface {
	GetAssetView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetAssetViewRow, error)
	ListAssetViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAssetViewsParams) ([]sqlc.ListAssetViewsRow, error)
	GetBorrowLogView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBorrowLogViewRow, error)
	ListBorrowLogViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBorrowLogViewsParams) ([]sqlc.ListBorrowLogViewsRow, error)
}

type AssetReadStore struct {
	queries AssetViewQueries
	db      sqlc.DBTX
}

func NewAssetReadStore(queries AssetViewQueries, db sqlc.DBTX) *AssetReadStore {
	return &AssetReadStore{queries: queries, db: db}
}

func (r *AssetReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AssetView, error) {
	row, err := r.queries.GetAssetView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("asset not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get asset view", err)
	}
	return toAssetView(sqlc.ListAssetViewsRow(row)), nil
}

func (r *AssetReadStore) List(ctx context.Context, filter queries.AssetFilter) ([]*queries.AssetView, error) {
	rows, err := r.queries.ListAssetViews(ctx, r.db, sqlc.ListAssetViewsParams{
		Category: pgconv.StringPtrToPgtype(filter.Category),
		Status:   pgconv.StringPtrToPgtype(filter.Status),
		Search:   pgconv.StringPtrToPgtype(filter.Search),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list assets", err)
	}
	result := make([]*queries.AssetView, len(rows))
	for i, row := range rows {
		result[i] = toAssetView(row)
	}
	return result, nil
}

func (r *AssetReadStore) FindBorrowLogByID(ctx context.Context, id uuid.UUID) (*queries.BorrowLogView, error) {
	row, err := r.queries.GetBorrowLogView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("borrow log not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get borrow log view", err)
	}
	return toBorrowLogView(sqlc.ListBorrowLogViewsRow(row)), nil
}

func (r *AssetReadStore) ListBorrowLogs(ctx context.Context, filter queries.BorrowLogFilter) ([]*queries.BorrowLogView, error) {
	rows, err := r.queries.ListBorrowLogViews(ctx, r.db, sqlc.ListBorrowLogViewsParams{
		BorrowerID: pgconv.UUIDPtrToPgtype(filter.BorrowerID),
		AssetID:    pgconv.UUIDPtrToPgtype(filter.AssetID),
		Status:     pgconv.StringPtrToPgtype(filter.Status),
		RowLimit:   filter.Limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list borrow logs", err)
	}
	result := make([]*queries.BorrowLogView, len(rows))
	for i, row := range rows {
		result[i] = toBorrowLogView(row)
	}
	return result, nil
}

func toAssetView(row sqlc.ListAssetViewsRow) *queries.AssetView {
	return &queries.AssetView{
		ID:               row.ID,
		Name:             row.Name,
		Category:         row.Category,
		Description:      pgconv.StringPtrFromPgtype(row.Description),
		TotalQuantity:    int(row.TotalQuantity),
		BorrowedQuantity: int(row.BorrowedQuantity),
		Status:           row.Status,
		Location:         pgconv.StringPtrFromPgtype(row.Location),
		Notes:            pgconv.StringPtrFromPgtype(row.Notes),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toBorrowLogView(row sqlc.ListBorrowLogViewsRow) *queries.BorrowLogView {
	return &queries.BorrowLogView{
		ID:              row.ID,
		AssetID:         row.AssetID,
		AssetName:       row.AssetName,
		BorrowerID:      row.BorrowerID,
		BookingID:       pgconv.UUIDPtrFromPgtype(row.BookingID),
		Quantity:        int(row.Quantity),
		BorrowedAt:      pgconv.TimeFromPgtype(row.BorrowedAt),
		ReturnedAt:      pgconv.TimePtrFromPgtype(row.ReturnedAt),
		Status:          row.Status,
		ConditionBefore: row.ConditionBefore,
		ConditionAfter:  pgconv.StringPtrFromPgtype(row.ConditionAfter),
		Notes:           pgconv.StringPtrFromPgtype(row.Notes),
	}
}

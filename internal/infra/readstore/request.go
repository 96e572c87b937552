package readstore

import (
	"context"
	"encoding/json"

	"civic-hub/internal/infra"
	sqlc "civic-hub/internal/infra/sqlc/generated"
	"civic-hub/internal/pkg/pgconv"
	"civic-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestViewQueries interface {
	GetChangeRequestView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetChangeRequestViewRow, error)
	ListChangeRequestViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListChangeRequestViewsParams) ([]sqlc.ListChangeRequestViewsRow, error)
}

type RequestReadStore struct {
	queries RequestViewQueries
	db      sqlc.DBTX
}

func NewRequestReadStore(queries RequestViewQueries, db sqlc.DBTX) *RequestReadStore {
	return &RequestReadStore{queries: queries, db: db}
}

func (r *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	row, err := r.queries.GetChangeRequestView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("change request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get change request view", err)
	}
	return toRequestView(sqlc.ListChangeRequestViewsRow(row)), nil
}

func (r *RequestReadStore) List(ctx context.Context, params queries.RequestListParams) ([]*queries.RequestView, error) {
	rows, err := r.queries.ListChangeRequestViews(ctx, r.db, sqlc.ListChangeRequestViewsParams{
		Status:         pgconv.StringPtrToPgtype(params.Status),
		Type:           pgconv.StringPtrToPgtype(params.Type),
		RequesterID:    pgconv.UUIDPtrToPgtype(params.RequesterID),
		AfterCreatedAt: pgconv.TimePtrToPgtype(params.AfterCreatedAt),
		AfterID:        pgconv.UUIDPtrToPgtype(params.AfterID),
		RowLimit:       params.Limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list change requests", err)
	}
	result := make([]*queries.RequestView, len(rows))
	for i, row := range rows {
		result[i] = toRequestView(row)
	}
	return result, nil
}

func toRequestView(row sqlc.ListChangeRequestViewsRow) *queries.RequestView {
	return &queries.RequestView{
		ID:            row.ID,
		Type:          row.Type,
		RequesterID:   row.RequesterID,
		HouseholdID:   pgconv.UUIDPtrFromPgtype(row.HouseholdID),
		HouseholdCode: pgconv.StringPtrFromPgtype(row.HouseholdCode),
		Description:   pgconv.StringPtrFromPgtype(row.Description),
		Payload:       json.RawMessage(row.Payload),
		Status:        row.Status,
		DecidedBy:     pgconv.UUIDPtrFromPgtype(row.DecidedBy),
		DecidedAt:     pgconv.TimePtrFromPgtype(row.DecidedAt),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

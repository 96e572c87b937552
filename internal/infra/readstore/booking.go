package readstore

import (
	"context"
	"time"

	"civic-hub/internal/infra"
	sqlc "civic-hub/internal/infra/sqlc/generated"
	"civic-hub/internal/pkg/pgconv"
	"civic-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewRow, error)
	ListBookingViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsParams) ([]sqlc.ListBookingViewsRow, error)
	ListApprovedBookingsInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListApprovedBookingsInRangeParams) ([]sqlc.ListApprovedBookingsInRangeRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{queries: queries, db: db}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view", err)
	}
	return toBookingView(sqlc.ListBookingViewsRow(row)), nil
}

func (r *BookingReadStore) List(ctx context.Context, params queries.BookingListParams) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViews(ctx, r.db, sqlc.ListBookingViewsParams{
		Status:         pgconv.StringPtrToPgtype(params.Status),
		ResourceID:     pgconv.UUIDPtrToPgtype(params.ResourceID),
		RequesterID:    pgconv.UUIDPtrToPgtype(params.RequesterID),
		IncludePrivate: params.IncludePrivate,
		ViewerID:       params.ViewerID,
		AfterCreatedAt: pgconv.TimePtrToPgtype(params.AfterCreatedAt),
		AfterID:        pgconv.UUIDPtrToPgtype(params.AfterID),
		RowLimit:       params.Limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = toBookingView(row)
	}
	return result, nil
}

// ListApprovedInRange returns approved bookings on the given resources that
// intersect [start, end).
func (r *BookingReadStore) ListApprovedInRange(ctx context.Context, resourceIDs []uuid.UUID, start, end time.Time) ([]*queries.CalendarBooking, error) {
	rows, err := r.queries.ListApprovedBookingsInRange(ctx, r.db, sqlc.ListApprovedBookingsInRangeParams{
		ResourceIds: resourceIDs,
		RangeEnd:    pgconv.TimeToPgtype(end),
		RangeStart:  pgconv.TimeToPgtype(start),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approved bookings in range", err)
	}
	result := make([]*queries.CalendarBooking, len(rows))
	for i, row := range rows {
		result[i] = &queries.CalendarBooking{
			ID:          row.ID,
			ResourceID:  row.ResourceID,
			RequesterID: row.RequesterID,
			Title:       row.Title,
			Visibility:  row.Visibility,
			StartTime:   pgconv.TimeFromPgtype(row.StartTime),
			EndTime:     pgconv.TimeFromPgtype(row.EndTime),
		}
	}
	return result, nil
}

func toBookingView(row sqlc.ListBookingViewsRow) *queries.BookingView {
	return &queries.BookingView{
		ID:                    row.ID,
		ResourceID:            row.ResourceID,
		ResourceName:          row.ResourceName,
		ResourceBuilding:      row.ResourceBuilding,
		RequesterID:           row.RequesterID,
		Title:                 row.Title,
		Description:           pgconv.StringPtrFromPgtype(row.Description),
		Purpose:               row.Purpose,
		StartTime:             pgconv.TimeFromPgtype(row.StartTime),
		EndTime:               pgconv.TimeFromPgtype(row.EndTime),
		Visibility:            row.Visibility,
		Status:                row.Status,
		CleaningCommitment:    row.CleaningCommitment,
		HandoverBeforeChecked: row.HandoverBeforeChecked,
		HandoverAfterChecked:  row.HandoverAfterChecked,
		HandoverNotes:         pgconv.StringPtrFromPgtype(row.HandoverNotes),
		CreatedAt:             pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:             pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

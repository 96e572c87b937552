package readstore

import (
	"context"

	"civic-hub/internal/infra"
	sqlc "civic-hub/internal/infra/sqlc/generated"
	"civic-hub/internal/pkg/pgconv"
	"civic-hub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type HouseholdViewQueries interface {
	GetHouseholdView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetHouseholdViewRow, error)
	GetHouseholdByMember(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.Households, error)
	ListHouseholdViews(ctx context.Context, db sqlc.DBTX, search pgtype.Text) ([]sqlc.ListHouseholdViewsRow, error)
	ListPersonsByHousehold(ctx context.Context, db sqlc.DBTX, householdID uuid.UUID) ([]sqlc.Persons, error)
}

type HouseholdReadStore struct {
	queries HouseholdViewQueries
	db      sqlc.DBTX
}

func NewHouseholdReadStore(queries HouseholdViewQueries, db sqlc.DBTX) *HouseholdReadStore {
	return &HouseholdReadStore{queries: queries, db: db}
}

func (r *HouseholdReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HouseholdView, error) {
	row, err := r.queries.GetHouseholdView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("household not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get household view", err)
	}
	return toHouseholdView(sqlc.ListHouseholdViewsRow(row)), nil
}

func (r *HouseholdReadStore) FindByMember(ctx context.Context, userID uuid.UUID) (*queries.HouseholdView, error) {
	hh, err := r.queries.GetHouseholdByMember(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user has no household", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get household by member", err)
	}
	return r.FindByID(ctx, hh.ID)
}

func (r *HouseholdReadStore) List(ctx context.Context, search *string) ([]*queries.HouseholdView, error) {
	rows, err := r.queries.ListHouseholdViews(ctx, r.db, pgconv.StringPtrToPgtype(search))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list households", err)
	}
	result := make([]*queries.HouseholdView, len(rows))
	for i, row := range rows {
		result[i] = toHouseholdView(row)
	}
	return result, nil
}

func (r *HouseholdReadStore) ListPersons(ctx context.Context, householdID uuid.UUID) ([]*queries.PersonView, error) {
	rows, err := r.queries.ListPersonsByHousehold(ctx, r.db, householdID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list persons", err)
	}
	result := make([]*queries.PersonView, len(rows))
	for i, row := range rows {
		result[i] = &queries.PersonView{
			ID:           row.ID,
			HouseholdID:  row.HouseholdID,
			FullName:     row.FullName,
			DateOfBirth:  pgconv.DatePtrFromPgtype(row.DateOfBirth),
			Gender:       pgconv.StringPtrFromPgtype(row.Gender),
			IDNumber:     pgconv.StringPtrFromPgtype(row.IDNumber),
			Relationship: pgconv.StringPtrFromPgtype(row.Relationship),
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func toHouseholdView(row sqlc.ListHouseholdViewsRow) *queries.HouseholdView {
	return &queries.HouseholdView{
		ID:          row.ID,
		Code:        row.Code,
		Address:     row.Address,
		PersonCount: int(row.PersonCount),
		MemberCount: int(row.MemberCount),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

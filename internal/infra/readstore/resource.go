package readstore

import (
	"context"

	"civic-hub/internal/infra"
	sqlc "civic-hub/internal/infra/sqlc/generated"
	"civic-hub/internal/pkg/pgconv"
	"civic-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceViewQueries interface {
	GetResourceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Resources, error)
	ListResources(ctx context.Context, db sqlc.DBTX, arg sqlc.ListResourcesParams) ([]sqlc.Resources, error)
}

type ResourceReadStore struct {
	queries ResourceViewQueries
	db      sqlc.DBTX
}

func NewResourceReadStore(queries ResourceViewQueries, db sqlc.DBTX) *ResourceReadStore {
	return &ResourceReadStore{queries: queries, db: db}
}

func (r *ResourceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ResourceView, error) {
	row, err := r.queries.GetResourceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get resource", err)
	}
	return toResourceView(row), nil
}

func (r *ResourceReadStore) List(ctx context.Context, filter queries.ResourceFilter) ([]*queries.ResourceView, error) {
	rows, err := r.queries.ListResources(ctx, r.db, sqlc.ListResourcesParams{
		Building: pgconv.StringPtrToPgtype(filter.Building),
		Ids:      filter.IDs,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resources", err)
	}
	result := make([]*queries.ResourceView, len(rows))
	for i, row := range rows {
		result[i] = toResourceView(row)
	}
	return result, nil
}

func toResourceView(row sqlc.Resources) *queries.ResourceView {
	return &queries.ResourceView{
		ID:          row.ID,
		Name:        row.Name,
		Building:    row.Building,
		Floor:       pgconv.IntPtrFromPgtype(row.Floor),
		Room:        pgconv.StringPtrFromPgtype(row.Room),
		Capacity:    int(row.Capacity),
		Description: pgconv.StringPtrFromPgtype(row.Description),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

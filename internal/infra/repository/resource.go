package repository

import (
	"context"

	"civic-hub/internal/domain/resource"
	"civic-hub/internal/infra"
	"civic-hub/internal/infra/repository/converter"
	sqlc "civic-hub/internal/infra/sqlc/generated"
	"civic-hub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ResourceWriteQueries interface {
	CreateResource(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateResourceParams) error
	UpdateResource(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateResourceParams) (int64, error)
	DeleteResource(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	GetResourceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Resources, error)
	LockResourceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Resources, error)
}

type ResourceRepository struct {
	queries ResourceWriteQueries
}

func NewResourceRepository(queries ResourceWriteQueries) *ResourceRepository {
	return &ResourceRepository{queries: queries}
}

func (r *ResourceRepository) Create(ctx context.Context, tx sqlc.DBTX, res *resource.Resource) error {
	if err := r.queries.CreateResource(ctx, tx, converter.ResourceToCreateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to create resource", err)
	}
	return nil
}

func (r *ResourceRepository) Update(ctx context.Context, tx sqlc.DBTX, res *resource.Resource) error {
	n, err := r.queries.UpdateResource(ctx, tx, converter.ResourceToUpdateParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update resource", err)
	}
	if n == 0 {
		return resource.ErrResourceNotFound
	}
	return nil
}

func (r *ResourceRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteResource(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete resource", err)
	}
	if n == 0 {
		return resource.ErrResourceNotFound
	}
	return nil
}

func (r *ResourceRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*resource.Resource, error) {
	row, err := r.queries.GetResourceByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, resource.ErrResourceNotFound
		}
		return nil, infra.WrapRepoErr("failed to find resource by ID", err)
	}
	return converter.ResourceFromRow(row), nil
}

func (r *ResourceRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*resource.Resource, error) {
	row, err := r.queries.LockResourceByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, resource.ErrResourceNotFound
		}
		return nil, infra.WrapRepoErr("failed to lock resource", err)
	}
	return converter.ResourceFromRow(row), nil
}

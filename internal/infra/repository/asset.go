package repository

import (
	"context"

	"civic-hub/internal/domain/asset"
	"civic-hub/internal/infra"
	"civic-hub/internal/infra/repository/converter"
	sqlc "civic-hub/internal/infra/sqlc/generated"
	"civic-hub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AssetWriteQueries interface {
	CreateAsset(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAssetParams) error
	UpdateAsset(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAssetParams) (int64, error)
	DeleteAsset(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	GetAssetByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Assets, error)
	LockAssetByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Assets, error)
}

type AssetRepository struct {
	queries AssetWriteQueries
}

func NewAssetRepository(queries AssetWriteQueries) *AssetRepository {
	return &AssetRepository{queries: queries}
}

func (r *AssetRepository) Create(ctx context.Context, tx sqlc.DBTX, a *asset.Asset) error {
	if err := r.queries.CreateAsset(ctx, tx, converter.AssetToCreateParams(a)); err != nil {
		return infra.WrapRepoErr("failed to create asset", err)
	}
	return nil
}

func (r *AssetRepository) Update(ctx context.Context, tx sqlc.DBTX, a *asset.Asset) error {
	n, err := r.queries.UpdateAsset(ctx, tx, converter.AssetToUpdateParams(a))
	if err != nil {
		return infra.WrapRepoErr("failed to update asset", err)
	}
	if n == 0 {
		return asset.ErrAssetNotFound
	}
	return nil
}

// Delete relies on the RESTRICT foreign key from borrow_logs as a backstop
// for the ledger-history rule.
func (r *AssetRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteAsset(ctx, tx, id)
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to delete asset", err)
		if infra.IsKind(wrapped, infra.KindForeignKeyViolated) {
			return asset.ErrAssetHasLedgerHistory
		}
		return wrapped
	}
	if n == 0 {
		return asset.ErrAssetNotFound
	}
	return nil
}

func (r *AssetRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*asset.Asset, error) {
	row, err := r.queries.GetAssetByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, asset.ErrAssetNotFound
		}
		return nil, infra.WrapRepoErr("failed to find asset by ID", err)
	}
	return converter.AssetFromRow(row), nil
}

func (r *AssetRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*asset.Asset, error) {
	row, err := r.queries.LockAssetByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, asset.ErrAssetNotFound
		}
		return nil, infra.WrapRepoErr("failed to lock asset", err)
	}
	return converter.AssetFromRow(row), nil
}

package repository

import (
	"context"

	"civic-hub/internal/domain/asset"
	"civic-hub/internal/domain/booking"
	"civic-hub/internal/infra"
	"civic-hub/internal/infra/repository/converter"
	sqlc "civic-hub/internal/infra/sqlc/generated"
	"civic-hub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BorrowLogWriteQueries interface {
	CreateBorrowLog(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBorrowLogParams) error
	UpdateBorrowLogReturn(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBorrowLogReturnParams) (int64, error)
	LockBorrowLogByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.BorrowLogs, error)
	SumOpenBorrowQuantity(ctx context.Context, db sqlc.DBTX, assetID uuid.UUID) (int64, error)
	CountBorrowLogsByAsset(ctx context.Context, db sqlc.DBTX, assetID uuid.UUID) (int64, error)
}

type BorrowLogRepository struct {
	queries BorrowLogWriteQueries
}

func NewBorrowLogRepository(queries BorrowLogWriteQueries) *BorrowLogRepository {
	return &BorrowLogRepository{queries: queries}
}

func (r *BorrowLogRepository) Create(ctx context.Context, tx sqlc.DBTX, l *asset.BorrowLog) error {
	err := r.queries.CreateBorrowLog(ctx, tx, converter.BorrowLogToCreateParams(l))
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to create borrow log", err)
		if infra.IsKind(wrapped, infra.KindForeignKeyViolated) && l.BookingID() != nil {
			return booking.ErrBookingNotFound
		}
		return wrapped
	}
	return nil
}

func (r *BorrowLogRepository) UpdateReturn(ctx context.Context, tx sqlc.DBTX, l *asset.BorrowLog) error {
	n, err := r.queries.UpdateBorrowLogReturn(ctx, tx, converter.BorrowLogToReturnParams(l))
	if err != nil {
		return infra.WrapRepoErr("failed to record borrow log return", err)
	}
	if n == 0 {
		return asset.ErrBorrowLogNotFound
	}
	return nil
}

func (r *BorrowLogRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*asset.BorrowLog, error) {
	row, err := r.queries.LockBorrowLogByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, asset.ErrBorrowLogNotFound
		}
		return nil, infra.WrapRepoErr("failed to lock borrow log", err)
	}
	return converter.BorrowLogFromRow(row), nil
}

func (r *BorrowLogRepository) SumOpenQuantity(ctx context.Context, tx sqlc.DBTX, assetID uuid.UUID) (int, error) {
	sum, err := r.queries.SumOpenBorrowQuantity(ctx, tx, assetID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum open borrow quantity", err)
	}
	return int(sum), nil
}

func (r *BorrowLogRepository) CountByAsset(ctx context.Context, tx sqlc.DBTX, assetID uuid.UUID) (int, error) {
	count, err := r.queries.CountBorrowLogsByAsset(ctx, tx, assetID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count borrow logs", err)
	}
	return int(count), nil
}

//go:build unit

package repository_test

import (
	"context"
	"testing"

	"civic-hub/internal/domain/asset"
	"civic-hub/internal/infra/repository"
	sqlc "civic-hub/internal/infra/sqlc/generated"
	repositorymock "civic-hub/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAssetRepository_Delete(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name    string
		rows    int64
		mockErr error
		wantErr error
	}{
		{name: "success: asset deleted", rows: 1},
		{name: "error: asset not found", rows: 0, wantErr: asset.ErrAssetNotFound},
		{
			name:    "error: ledger rows block deletion",
			mockErr: &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			wantErr: asset.ErrAssetHasLedgerHistory,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockAssetWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewAssetRepository(mockQueries)

			id := uuid.New()
			mockQueries.EXPECT().DeleteAsset(ctx, mockDB, id).Return(tc.rows, tc.mockErr)

			err := repo.Delete(ctx, mockDB, id)

			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestBorrowLogRepository_LockByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: open log is converted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBorrowLogWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBorrowLogRepository(mockQueries)

		id := uuid.New()
		mockQueries.EXPECT().LockBorrowLogByID(ctx, mockDB, id).Return(sqlc.BorrowLogs{
			ID:              id,
			AssetID:         uuid.New(),
			BorrowerID:      uuid.New(),
			Quantity:        3,
			Status:          "BORROWED",
			ConditionBefore: "GOOD",
		}, nil)

		l, err := repo.LockByID(ctx, mockDB, id)

		require.NoError(t, err)
		assert.Equal(t, 3, l.Quantity())
		assert.True(t, l.Status().IsOpen())
		assert.Nil(t, l.ReturnedAt())
		assert.Nil(t, l.BookingID())
	})

	t.Run("error: no rows maps to borrow log not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBorrowLogWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBorrowLogRepository(mockQueries)

		mockQueries.EXPECT().LockBorrowLogByID(ctx, mockDB, gomock.Any()).Return(sqlc.BorrowLogs{}, pgx.ErrNoRows)

		_, err := repo.LockByID(ctx, mockDB, uuid.New())

		assert.ErrorIs(t, err, asset.ErrBorrowLogNotFound)
	})
}

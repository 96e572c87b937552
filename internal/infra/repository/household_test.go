//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"civic-hub/internal/domain/household"
	"civic-hub/internal/infra"
	"civic-hub/internal/infra/repository"
	"civic-hub/internal/pkg/errs"
	repositorymock "civic-hub/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHouseholdRepository_CreatePerson(t *testing.T) {
	ctx := context.Background()
	idNumber := "079201000123"

	testCases := []struct {
		name     string
		mockErr  error
		wantErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success: person created"},
		{
			name:    "error: duplicate id number",
			mockErr: &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			wantErr: household.ErrDuplicateIDNumber,
		},
		{
			name:    "error: household missing",
			mockErr: &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			wantErr: household.ErrHouseholdNotFound,
		},
		{
			name:     "error: database error occurs",
			mockErr:  errors.New("database connection error"),
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockHouseholdWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewHouseholdRepository(mockQueries)

			p, err := household.NewPerson(uuid.New(), household.PersonAttributes{FullName: "Tran Van B", IDNumber: &idNumber}, time.Now())
			require.NoError(t, err)
			mockQueries.EXPECT().CreatePerson(ctx, mockDB, gomock.Any()).Return(tc.mockErr)

			err = repo.CreatePerson(ctx, mockDB, p)

			switch {
			case tc.wantErr != nil:
				assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
			case tc.wantKind != "":
				assert.True(t, infra.IsKind(err, tc.wantKind), "got %v", err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestHouseholdRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("error: duplicate code maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockHouseholdWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewHouseholdRepository(mockQueries)

		h, err := household.NewHousehold("HK-002", "12 Le Loi", time.Now())
		require.NoError(t, err)
		mockQueries.EXPECT().UpdateHousehold(ctx, mockDB, gomock.Any()).
			Return(int64(0), &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

		err = repo.Update(ctx, mockDB, h)

		assert.True(t, errs.Is(err, household.ErrDuplicateCode), "got %v", err)
		assert.Equal(t, errs.KindConflict, errs.KindOf(err))
	})

	t.Run("error: zero rows maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockHouseholdWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewHouseholdRepository(mockQueries)

		h, err := household.NewHousehold("HK-003", "1 Tran Hung Dao", time.Now())
		require.NoError(t, err)
		mockQueries.EXPECT().UpdateHousehold(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

		err = repo.Update(ctx, mockDB, h)

		assert.ErrorIs(t, err, household.ErrHouseholdNotFound)
	})
}

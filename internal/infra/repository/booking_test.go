//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"civic-hub/internal/domain/approval"
	"civic-hub/internal/domain/booking"
	"civic-hub/internal/domain/resource"
	"civic-hub/internal/infra"
	"civic-hub/internal/infra/repository"
	sqlc "civic-hub/internal/infra/sqlc/generated"
	"civic-hub/internal/pkg/errs"
	"civic-hub/internal/pkg/pgconv"
	repositorymock "civic-hub/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func approvedBooking(t *testing.T) *booking.Booking {
	t.Helper()
	start := time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)
	window, err := booking.NewWindow(start, start.Add(2*time.Hour))
	require.NoError(t, err)
	return booking.ReconstructBooking(
		uuid.New(), uuid.New(), uuid.New(),
		booking.Details{Title: "Choir rehearsal", Purpose: "weekly practice", Visibility: booking.VisibilityPublic},
		window,
		approval.StatusApproved,
		booking.Handover{},
		start.Add(-24*time.Hour), start.Add(-time.Hour),
	)
}

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		mockErr   error
		wantErr   error
		wantKind  infra.RepositoryErrorKind
		expectErr bool
	}{
		{name: "success: booking created"},
		{
			name:      "error: unknown resource",
			mockErr:   &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			wantErr:   resource.ErrResourceNotFound,
			expectErr: true,
		},
		{
			name:      "error: database error occurs",
			mockErr:   errors.New("database connection error"),
			wantKind:  infra.KindDBFailure,
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries)

			b := approvedBooking(t)
			mockQueries.EXPECT().CreateBooking(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) error {
					assert.Equal(t, b.ID(), arg.ID)
					assert.Equal(t, "APPROVED", arg.Status)
					assert.Equal(t, "PUBLIC", arg.Visibility)
					assert.True(t, arg.StartTime.Time.Equal(b.Window().Start()))
					return tc.mockErr
				})

			err := repo.Create(ctx, mockDB, b)

			if !tc.expectErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
			}
			if tc.wantKind != "" {
				assert.True(t, infra.IsKind(err, tc.wantKind), "got %v", err)
			}
		})
	}
}

func TestBookingRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		rows      int64
		mockErr   error
		wantErr   error
		wantKind  infra.RepositoryErrorKind
		expectErr bool
	}{
		{name: "success: booking updated", rows: 1},
		{
			name:      "error: exclusion constraint maps to booking conflict",
			mockErr:   &pgconn.PgError{Code: "23P01", Message: "conflicting key value violates exclusion constraint"},
			wantErr:   booking.ErrBookingConflict,
			expectErr: true,
		},
		{
			name:      "error: booking vanished",
			rows:      0,
			wantErr:   booking.ErrBookingNotFound,
			expectErr: true,
		},
		{
			name:      "error: database error occurs",
			mockErr:   errors.New("database connection error"),
			wantKind:  infra.KindDBFailure,
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries)

			mockQueries.EXPECT().UpdateBooking(ctx, mockDB, gomock.Any()).Return(tc.rows, tc.mockErr)

			err := repo.Update(ctx, mockDB, approvedBooking(t))

			if !tc.expectErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
				assert.Equal(t, errs.KindOf(tc.wantErr), errs.KindOf(err))
			}
			if tc.wantKind != "" {
				assert.True(t, infra.IsKind(err, tc.wantKind), "got %v", err)
			}
		})
	}
}

func TestBookingRepository_LockByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row is converted to the aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries)

		id := uuid.New()
		start := time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)
		notes := "keys returned"
		mockQueries.EXPECT().LockBookingByID(ctx, mockDB, id).Return(sqlc.Bookings{
			ID:                    id,
			ResourceID:            uuid.New(),
			RequesterID:           uuid.New(),
			Title:                 "Yoga",
			Purpose:               "community class",
			StartTime:             pgconv.TimeToPgtype(start),
			EndTime:               pgconv.TimeToPgtype(start.Add(time.Hour)),
			Visibility:            "PRIVATE",
			Status:                "PENDING",
			HandoverBeforeChecked: true,
			HandoverNotes:         pgconv.StringPtrToPgtype(&notes),
			CreatedAt:             pgconv.TimeToPgtype(start.Add(-time.Hour)),
			UpdatedAt:             pgconv.TimeToPgtype(start.Add(-time.Hour)),
		}, nil)

		b, err := repo.LockByID(ctx, mockDB, id)

		require.NoError(t, err)
		assert.Equal(t, id, b.ID())
		assert.Equal(t, approval.StatusPending, b.Status())
		assert.True(t, b.IsPrivate())
		assert.Equal(t, time.Hour, b.Window().Duration())
		assert.True(t, b.Handover().BeforeChecked)
		assert.Equal(t, &notes, b.Handover().Notes)
	})

	t.Run("error: no rows maps to booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries)

		mockQueries.EXPECT().LockBookingByID(ctx, mockDB, gomock.Any()).Return(sqlc.Bookings{}, pgx.ErrNoRows)

		_, err := repo.LockByID(ctx, mockDB, uuid.New())

		assert.ErrorIs(t, err, booking.ErrBookingNotFound)
	})
}

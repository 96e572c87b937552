//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"civic-hub/internal/infra"
	"civic-hub/internal/infra/readstore"
	sqlc "civic-hub/internal/infra/sqlc/generated"
	"civic-hub/internal/usecase/queries"
	readstoremock "civic-hub/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

func ts(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockBookingViewQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking found",
			setupMock: func(mock *readstoremock.MockBookingViewQueries) {
				mock.EXPECT().GetBookingView(ctx, gomock.Any(), bookingID).Return(sqlc.GetBookingViewRow{
					ID:               bookingID,
					ResourceID:       uuid.New(),
					RequesterID:      uuid.New(),
					Title:            "Choir rehearsal",
					Description:      pgtype.Text{String: "weekly", Valid: true},
					Purpose:          "MEETING",
					StartTime:        ts(start),
					EndTime:          ts(start.Add(2 * time.Hour)),
					Visibility:       "PUBLIC",
					Status:           "PENDING",
					ResourceName:     "Hall A",
					ResourceBuilding: "Main",
					CreatedAt:        ts(start.Add(-24 * time.Hour)),
					UpdatedAt:        ts(start.Add(-24 * time.Hour)),
				}, nil)
			},
		},
		{
			name: "error: booking not found",
			setupMock: func(mock *readstoremock.MockBookingViewQueries) {
				mock.EXPECT().GetBookingView(ctx, gomock.Any(), bookingID).Return(sqlc.GetBookingViewRow{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockBookingViewQueries) {
				mock.EXPECT().GetBookingView(ctx, gomock.Any(), bookingID).Return(sqlc.GetBookingViewRow{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
			store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			result, err := store.FindByID(ctx, bookingID)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, bookingID, result.ID)
			assert.Equal(t, "Hall A", result.ResourceName)
			assert.Equal(t, start, result.StartTime)
			require.NotNil(t, result.Description)
			assert.Equal(t, "weekly", *result.Description)
		})
	}
}

func TestBookingReadStore_List(t *testing.T) {
	ctx := context.Background()
	viewer := uuid.New()
	resourceID := uuid.New()
	afterAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	afterID := uuid.New()
	status := "APPROVED"

	t.Run("success: filters are forwarded as nullable params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListBookingViews(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListBookingViewsParams) ([]sqlc.ListBookingViewsRow, error) {
				assert.Equal(t, pgtype.Text{String: status, Valid: true}, arg.Status)
				assert.Equal(t, resourceID, uuid.UUID(arg.ResourceID.Bytes))
				assert.True(t, arg.ResourceID.Valid)
				assert.False(t, arg.RequesterID.Valid)
				assert.False(t, arg.IncludePrivate)
				assert.Equal(t, viewer, arg.ViewerID)
				assert.Equal(t, afterAt, arg.AfterCreatedAt.Time)
				assert.Equal(t, afterID, uuid.UUID(arg.AfterID.Bytes))
				assert.Equal(t, int32(21), arg.RowLimit)
				return []sqlc.ListBookingViewsRow{{ID: uuid.New()}, {ID: uuid.New()}}, nil
			})

		rows, err := store.List(ctx, queries.BookingListParams{
			Status:         &status,
			ResourceID:     &resourceID,
			ViewerID:       viewer,
			AfterCreatedAt: &afterAt,
			AfterID:        &afterID,
			Limit:          21,
		})

		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().ListBookingViews(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		rows, err := store.List(ctx, queries.BookingListParams{ViewerID: viewer, Limit: 10})

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, rows)
	})
}

func TestBookingReadStore_ListApprovedInRange(t *testing.T) {
	ctx := context.Background()
	resourceID := uuid.New()
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	end := start.Add(14 * time.Hour)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
	store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().ListApprovedBookingsInRange(ctx, gomock.Any(), sqlc.ListApprovedBookingsInRangeParams{
		ResourceIds: []uuid.UUID{resourceID},
		RangeStart:  ts(start),
		RangeEnd:    ts(end),
	}).Return([]sqlc.ListApprovedBookingsInRangeRow{{
		ID:         uuid.New(),
		ResourceID: resourceID,
		Title:      "Yoga",
		Visibility: "PRIVATE",
		StartTime:  ts(start.Add(time.Hour)),
		EndTime:    ts(start.Add(2 * time.Hour)),
	}}, nil)

	rows, err := store.ListApprovedInRange(ctx, []uuid.UUID{resourceID}, start, end)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "PRIVATE", rows[0].Visibility)
	assert.Equal(t, start.Add(time.Hour), rows[0].StartTime)
}

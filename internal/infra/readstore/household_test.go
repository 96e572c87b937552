//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"civic-hub/internal/infra"
	"civic-hub/internal/infra/readstore"
	sqlc "civic-hub/internal/infra/sqlc/generated"
	readstoremock "civic-hub/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHouseholdReadStore_FindByMember(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	householdID := uuid.New()
	created := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockHouseholdViewQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: member resolves to household view",
			setupMock: func(mock *readstoremock.MockHouseholdViewQueries) {
				mock.EXPECT().GetHouseholdByMember(ctx, gomock.Any(), userID).Return(sqlc.Households{ID: householdID, Code: "HH-001"}, nil)
				mock.EXPECT().GetHouseholdView(ctx, gomock.Any(), householdID).Return(sqlc.GetHouseholdViewRow{
					ID:          householdID,
					Code:        "HH-001",
					Address:     "12 Elm Street",
					PersonCount: 3,
					MemberCount: 1,
					CreatedAt:   ts(created),
					UpdatedAt:   ts(created),
				}, nil)
			},
		},
		{
			name: "error: user has no household",
			setupMock: func(mock *readstoremock.MockHouseholdViewQueries) {
				mock.EXPECT().GetHouseholdByMember(ctx, gomock.Any(), userID).Return(sqlc.Households{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockHouseholdViewQueries) {
				mock.EXPECT().GetHouseholdByMember(ctx, gomock.Any(), userID).Return(sqlc.Households{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockHouseholdViewQueries(ctrl)
			store := readstore.NewHouseholdReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			result, err := store.FindByMember(ctx, userID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, householdID, result.ID)
			assert.Equal(t, 3, result.PersonCount)
			assert.Equal(t, 1, result.MemberCount)
			assert.Equal(t, created, result.CreatedAt)
		})
	}
}

func TestHouseholdReadStore_ListPersons(t *testing.T) {
	ctx := context.Background()
	householdID := uuid.New()
	dob := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockHouseholdViewQueries(ctrl)
	store := readstore.NewHouseholdReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().ListPersonsByHousehold(ctx, gomock.Any(), householdID).Return([]sqlc.Persons{
		{
			ID:           uuid.New(),
			HouseholdID:  householdID,
			FullName:     "Mai Tran",
			DateOfBirth:  pgtype.Date{Time: dob, Valid: true},
			Relationship: pgtype.Text{String: "HEAD", Valid: true},
		},
		{
			ID:          uuid.New(),
			HouseholdID: householdID,
			FullName:    "Linh Tran",
		},
	}, nil)

	persons, err := store.ListPersons(ctx, householdID)

	require.NoError(t, err)
	require.Len(t, persons, 2)
	require.NotNil(t, persons[0].DateOfBirth)
	assert.Equal(t, dob, *persons[0].DateOfBirth)
	assert.Equal(t, "HEAD", *persons[0].Relationship)
	assert.Nil(t, persons[1].DateOfBirth)
	assert.Nil(t, persons[1].Gender)
}

func TestNotificationReadStore(t *testing.T) {
	ctx := context.Background()
	recipient := uuid.New()

	t.Run("success: list forwards unread filter and limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockNotificationViewQueries(ctrl)
		store := readstore.NewNotificationReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListNotifications(ctx, gomock.Any(), sqlc.ListNotificationsParams{
			RecipientID: recipient,
			UnreadOnly:  true,
			RowLimit:    20,
		}).Return([]sqlc.Notifications{{ID: uuid.New(), RecipientID: recipient, Title: "Booking approved"}}, nil)

		items, err := store.List(ctx, recipient, true, 20)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Booking approved", items[0].Title)
		assert.False(t, items[0].IsRead)
	})

	t.Run("success: count unread", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockNotificationViewQueries(ctrl)
		store := readstore.NewNotificationReadStore(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().CountUnreadNotifications(ctx, gomock.Any(), recipient).Return(int64(4), nil)

		n, err := store.CountUnread(ctx, recipient)

		require.NoError(t, err)
		assert.Equal(t, 4, n)
	})

	t.Run("error: count fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockNotificationViewQueries(ctrl)
		store := readstore.NewNotificationReadStore(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().CountUnreadNotifications(ctx, gomock.Any(), recipient).Return(int64(0), errDBConnectionLost)

		_, err := store.CountUnread(ctx, recipient)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

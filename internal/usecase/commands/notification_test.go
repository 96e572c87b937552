//go:build unit

package commands_test

import (
	"context"
	"testing"

	"civic-hub/internal/domain/approval"
	"civic-hub/internal/domain/notification"
	"civic-hub/internal/usecase/commands"
	"civic-hub/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationCommands(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*bookingFixture, commands.NotificationCommands, queries.NotificationQueries) {
		t.Helper()
		f := newBookingFixture(t)
		for _, title := range []string{"Choir", "Yoga"} {
			id := f.submit(t, resident, title, at(9), at(10), "")
			require.NoError(t, f.commands.Decide(ctx, admin, id, approval.DecisionReject))
		}
		return f, commands.NewNotificationCommands(f.store), queries.NewNotificationQueries(f.store.NotificationReadStore())
	}

	t.Run("success: decisions land in the requester's inbox", func(t *testing.T) {
		_, _, q := setup(t)

		inbox, err := q.List(ctx, resident, false, 0)
		require.NoError(t, err)
		assert.Len(t, inbox.Items, 2)
		assert.Equal(t, 2, inbox.UnreadCount)
		assert.Equal(t, "Booking rejected", inbox.Items[0].Title)

		other, err := q.List(ctx, neighbor, false, 0)
		require.NoError(t, err)
		assert.Empty(t, other.Items)
	})

	t.Run("success: mark one then all as read", func(t *testing.T) {
		_, uc, q := setup(t)
		inbox, err := q.List(ctx, resident, true, 0)
		require.NoError(t, err)
		require.Len(t, inbox.Items, 2)

		require.NoError(t, uc.MarkRead(ctx, resident, inbox.Items[0].ID))
		inbox, err = q.List(ctx, resident, true, 0)
		require.NoError(t, err)
		assert.Len(t, inbox.Items, 1)
		assert.Equal(t, 1, inbox.UnreadCount)

		n, err := uc.MarkAllRead(ctx, resident)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		inbox, err = q.List(ctx, resident, false, 0)
		require.NoError(t, err)
		assert.Len(t, inbox.Items, 2)
		assert.Zero(t, inbox.UnreadCount)
	})

	t.Run("error: another user's notification reads as missing", func(t *testing.T) {
		f, uc, q := setup(t)
		inbox, err := q.List(ctx, resident, false, 0)
		require.NoError(t, err)

		err = uc.MarkRead(ctx, neighbor, inbox.Items[0].ID)
		assert.ErrorIs(t, err, notification.ErrNotificationNotFound)
		assert.Len(t, f.store.Notifications(resident.ID), 2)
	})
}

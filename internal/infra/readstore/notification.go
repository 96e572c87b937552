package readstore

import (
	"context"

	"civic-hub/internal/infra"
	sqlc "civic-hub/internal/infra/sqlc/generated"
	"civic-hub/internal/pkg/pgconv"
	"civic-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationViewQueries interface {
	ListNotifications(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNotificationsParams) ([]sqlc.Notifications, error)
	CountUnreadNotifications(ctx context.Context, db sqlc.DBTX, recipientID uuid.UUID) (int64, error)
}

type NotificationReadStore struct {
	queries NotificationViewQueries
	db      sqlc.DBTX
}

func NewNotificationReadStore(queries NotificationViewQueries, db sqlc.DBTX) *NotificationReadStore {
	return &NotificationReadStore{queries: queries, db: db}
}

func (r *NotificationReadStore) List(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit int32) ([]*queries.NotificationView, error) {
	rows, err := r.queries.ListNotifications(ctx, r.db, sqlc.ListNotificationsParams{
		RecipientID: recipientID,
		UnreadOnly:  unreadOnly,
		RowLimit:    limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	result := make([]*queries.NotificationView, len(rows))
	for i, row := range rows {
		result[i] = &queries.NotificationView{
			ID:        row.ID,
			Title:     row.Title,
			Message:   row.Message,
			IsRead:    row.IsRead,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *NotificationReadStore) CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error) {
	n, err := r.queries.CountUnreadNotifications(ctx, r.db, recipientID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count unread notifications", err)
	}
	return int(n), nil
}

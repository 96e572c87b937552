package repository

import (
	"context"

	"civic-hub/internal/domain/notification"
	"civic-hub/internal/infra"
	"civic-hub/internal/infra/repository/converter"
	sqlc "civic-hub/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	CreateNotification(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationParams) error
	MarkNotificationRead(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationReadParams) (int64, error)
	MarkAllNotificationsRead(ctx context.Context, db sqlc.DBTX, recipientID uuid.UUID) (int64, error)
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) Create(ctx context.Context, tx sqlc.DBTX, n *notification.Notification) error {
	if err := r.queries.CreateNotification(ctx, tx, converter.NotificationToCreateParams(n)); err != nil {
		return infra.WrapRepoErr("failed to create notification", err)
	}
	return nil
}

// MarkRead reports NotFound both for unknown ids and for another user's notification.
func (r *NotificationRepository) MarkRead(ctx context.Context, tx sqlc.DBTX, id, recipientID uuid.UUID) error {
	n, err := r.queries.MarkNotificationRead(ctx, tx, sqlc.MarkNotificationReadParams{
		ID:          id,
		RecipientID: recipientID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification read", err)
	}
	if n == 0 {
		return notification.ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, tx sqlc.DBTX, recipientID uuid.UUID) (int64, error) {
	n, err := r.queries.MarkAllNotificationsRead(ctx, tx, recipientID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark all notifications read", err)
	}
	return n, nil
}

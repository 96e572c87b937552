package commands

//go:generate mockgen -source=notification.go -destination=../../../tests/mock/commands/notification_mock.go -package=commandsmock

import (
	"context"

	"civic-hub/internal/domain/user"
	"civic-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationCommands interface {
	MarkRead(ctx context.Context, actor user.Actor, id uuid.UUID) error
	MarkAllRead(ctx context.Context, actor user.Actor) (int64, error)
}

type notificationUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewNotificationCommands(uow shared.UnitOfWork) NotificationCommands {
	return &notificationUseCaseImpl{uow: uow}
}

// MarkRead only touches the caller's own notifications; another user's id
// reads as not found.
func (uc *notificationUseCaseImpl) MarkRead(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().MarkRead(ctx, tx.DB(), id, actor.ID)
	})
}

func (uc *notificationUseCaseImpl) MarkAllRead(ctx context.Context, actor user.Actor) (int64, error) {
	var n int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		n, err = tx.Notifications().MarkAllRead(ctx, tx.DB(), actor.ID)
		return err
	})
	return n, err
}

package queries

//go:generate mockgen -source=notification.go -destination=../../../tests/mock/queries/notification_mock.go -package=queriesmock

import (
	"context"
	"time"

	"civic-hub/internal/domain/user"

	"github.com/google/uuid"
)

type NotificationView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

type NotificationListView struct {
	Items       []*NotificationView `json:"items"`
	UnreadCount int                 `json:"unreadCount"`
}

type NotificationReadStore interface {
	List(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit int32) ([]*NotificationView, error)
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error)
}

type NotificationQueries interface {
	List(ctx context.Context, actor user.Actor, unreadOnly bool, limit int) (*NotificationListView, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) List(ctx context.Context, actor user.Actor, unreadOnly bool, limit int) (*NotificationListView, error) {
	items, err := q.store.List(ctx, actor.ID, unreadOnly, int32(ValidateLimit(limit)))
	if err != nil {
		return nil, err
	}
	unread, err := q.store.CountUnread(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return &NotificationListView{Items: items, UnreadCount: unread}, nil
}

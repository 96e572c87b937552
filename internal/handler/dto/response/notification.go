package response

import (
	"time"

	"civic-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

type NotificationListResponse struct {
	Items       []NotificationResponse `json:"items"`
	UnreadCount int                    `json:"unreadCount"`
}

func FromNotificationList(v *queries.NotificationListView) NotificationListResponse {
	resp := NotificationListResponse{Items: []NotificationResponse{}, UnreadCount: v.UnreadCount}
	if len(v.Items) > 0 {
		resp.Items = mapTo[[]NotificationResponse](v.Items)
	}
	return resp
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

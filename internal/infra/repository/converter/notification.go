package converter

import (
	"civic-hub/internal/domain/notification"
	sqlc "civic-hub/internal/infra/sqlc/generated"
	"civic-hub/internal/pkg/pgconv"
)

func NotificationToCreateParams(n *notification.Notification) sqlc.CreateNotificationParams {
	return sqlc.CreateNotificationParams{
		ID:          n.ID(),
		RecipientID: n.RecipientID(),
		Title:       n.Title(),
		Message:     n.Message(),
		IsRead:      n.IsRead(),
		CreatedAt:   pgconv.TimeToPgtype(n.CreatedAt()),
	}
}
